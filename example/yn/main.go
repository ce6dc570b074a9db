// Package main demonstrates a yes/no question with a default answer.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/saona-raimundo/asking"
)

func main() {
	agreed, err := asking.YN().
		Message("Shall I continue? (y/n) ").
		Default(true).
		Timeout(30 * time.Second).
		Ask()

	var timeout *asking.TimeoutError
	switch {
	case errors.As(err, &timeout):
		fmt.Printf("\nNo answer after %s, assuming yes.\n", timeout.Elapsed.Round(time.Second))
		agreed = true
	case err != nil:
		log.Fatal(err)
	}

	if agreed {
		fmt.Println("Continuing!")
		return
	}
	fmt.Println("Stopping here.")
}
