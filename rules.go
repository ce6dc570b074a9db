package asking

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Rule is one acceptance check over a parsed value. Pred must be pure: rules
// can run again on every retry, and a rule with observable side effects makes
// the retry loop unpredictable. Explanation is shown to the user when the
// rule rejects a value; leave it empty to reject silently.
type Rule[T any] struct {
	Pred        func(T) bool
	Explanation string
}

// RuleSet applies rules in insertion order.
type RuleSet[T any] []Rule[T]

// Evaluate runs the rules in order and stops at the first failure, returning
// its explanation. The empty set accepts every value. Rules with a nil Pred
// are skipped.
func (rs RuleSet[T]) Evaluate(v T) (explanation string, ok bool) {
	for _, r := range rs {
		if r.Pred == nil {
			continue
		}
		if !r.Pred(v) {
			return r.Explanation, false
		}
	}
	return "", true
}

// Min accepts values greater than or equal to limit.
func Min[T cmp.Ordered](limit T) Rule[T] {
	return MinMsg(limit, fmt.Sprintf("the value must be at least %v", limit))
}

// MinMsg is Min with a custom explanation.
func MinMsg[T cmp.Ordered](limit T, explanation string) Rule[T] {
	return Rule[T]{
		Pred:        func(v T) bool { return v >= limit },
		Explanation: explanation,
	}
}

// Max accepts values less than or equal to limit.
func Max[T cmp.Ordered](limit T) Rule[T] {
	return MaxMsg(limit, fmt.Sprintf("the value must be at most %v", limit))
}

// MaxMsg is Max with a custom explanation.
func MaxMsg[T cmp.Ordered](limit T, explanation string) Rule[T] {
	return Rule[T]{
		Pred:        func(v T) bool { return v <= limit },
		Explanation: explanation,
	}
}

// Between accepts values in the closed interval [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Rule[T] {
	return BetweenMsg(lo, hi, fmt.Sprintf("the value must be between %v and %v", lo, hi))
}

// BetweenMsg is Between with a custom explanation.
func BetweenMsg[T cmp.Ordered](lo, hi T, explanation string) Rule[T] {
	return Rule[T]{
		Pred:        func(v T) bool { return v >= lo && v <= hi },
		Explanation: explanation,
	}
}

// Not rejects exactly the given value.
func Not[T comparable](unwanted T) Rule[T] {
	return NotMsg(unwanted, "this value is not allowed")
}

// NotMsg is Not with a custom explanation.
func NotMsg[T comparable](unwanted T, explanation string) Rule[T] {
	return Rule[T]{
		Pred:        func(v T) bool { return v != unwanted },
		Explanation: explanation,
	}
}

// OneOf accepts only the listed options.
func OneOf[T comparable](options ...T) Rule[T] {
	parts := make([]string, len(options))
	for i, option := range options {
		parts[i] = fmt.Sprint(option)
	}
	return OneOfMsg(options, "the value must be one of: "+strings.Join(parts, ", "))
}

// OneOfMsg is OneOf with a custom explanation.
func OneOfMsg[T comparable](options []T, explanation string) Rule[T] {
	return Rule[T]{
		Pred:        func(v T) bool { return slices.Contains(options, v) },
		Explanation: explanation,
	}
}
