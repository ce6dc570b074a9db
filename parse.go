package asking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts one line of raw input into a value. The line arrives with
// its trailing line terminator already removed; interior and leading
// whitespace are preserved. An error return means the answer is rejected and,
// depending on the question's attempt budget, asked again.
type Parser[T any] func(input string) (T, error)

// DateLayout is the textual format accepted by Date questions.
const DateLayout = "2006-01-02"

// parseBool reads, after lowercasing: "true", "t", "yes" and "y" as true,
// and "false", "f", "no" and "n" as false.
func parseBool(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "true", "t", "yes", "y":
		return true, nil
	case "false", "f", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a yes or no answer", input)
	}
}

func parseDate(input string) (time.Time, error) {
	date, err := time.Parse(DateLayout, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a %s date", input, DateLayout)
	}
	return date, nil
}

func parseText(input string) (string, error) {
	return input, nil
}

func parseInt(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", input)
	}
	return n, nil
}

func parseFloat(input string) (float64, error) {
	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", input)
	}
	return f, nil
}
