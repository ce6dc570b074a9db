// Package main demonstrates a required answer under a deadline.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/saona-raimundo/asking"
)

func main() {
	name, err := asking.Text().
		Message("Quick, what is your name? ").
		Help("Any name will do, but you only have ten seconds. ").
		Required().
		Timeout(10 * time.Second).
		Ask()

	var timeout *asking.TimeoutError
	switch {
	case errors.As(err, &timeout):
		fmt.Println("\nToo slow!")
		return
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s!\n", name)
}
