// Package main demonstrates silencing retry explanations entirely.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/saona-raimundo/asking"
)

func main() {
	n, err := asking.Int().
		Message("Guess my favorite number: ").
		Test(func(v int) bool { return v == 7 }).
		ErrorFormatter(func(error) string { return "" }).
		Attempts(3).
		Ask()

	var attempts *asking.AttemptsError
	switch {
	case errors.As(err, &attempts):
		fmt.Println("Out of guesses. It was 7 all along.")
		return
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("Yes, %d it is!\n", n)
}
