// Package main demonstrates choosing among fixed options.
package main

import (
	"fmt"
	"log"

	"github.com/saona-raimundo/asking"
)

func main() {
	flavor, err := asking.Select("vanilla", "chocolate", "pistachio").
		Message("Pick a flavor: ").
		Help("One of vanilla, chocolate or pistachio. ").
		Ask()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("One scoop of %s coming up.\n", flavor)
}
