// Package main demonstrates bounded attempts with a countdown on retries.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/saona-raimundo/asking"
)

func main() {
	loved, err := asking.YN().
		Message("Do you love me? (yes/no) ").
		AttemptsWithFeedback(3, func(remaining int) string {
			if remaining == 1 {
				return "Last chance: "
			}
			return fmt.Sprintf("I did not get that, %d attempts left: ", remaining)
		}).
		Feedback(func(value bool, err error) string {
			switch {
			case err != nil:
				return "I will take that as a no.\n"
			case value:
				return "Hurray!\n"
			default:
				return "Oh no...\n"
			}
		}).
		Ask()

	var attempts *asking.AttemptsError
	switch {
	case errors.As(err, &attempts):
		return
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("Answer on record: %v\n", loved)
}
