// Package main demonstrates reading a secret without echoing it.
package main

import (
	"fmt"
	"log"

	"github.com/saona-raimundo/asking"
)

func main() {
	secret, err := asking.Password().
		Message("Passphrase: ").
		Required().
		Ask()
	if err != nil {
		log.Fatal(err)
	}

	// Nothing was echoed, so move past the prompt line ourselves.
	fmt.Printf("\nGot it, %d characters. Your secret is safe.\n", len(secret))
}
