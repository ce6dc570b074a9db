// Package main is a guessing game built on repeated questions.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/saona-raimundo/asking"
)

func main() {
	fmt.Println("I am thinking of a number between 1 and 100.")

	secret := rand.IntN(100) + 1
	question := asking.Int().
		Message("Your guess: ").
		Rules(asking.Between(1, 100))

	for tries := 1; ; tries++ {
		guess, err := question.Ask()
		if err != nil {
			log.Fatal(err)
		}

		switch {
		case guess < secret:
			fmt.Println("Too small!")
		case guess > secret:
			fmt.Println("Too big!")
		default:
			fmt.Printf("You got it in %d tries!\n", tries)
			return
		}
	}
}
