// Package main demonstrates answer validation with custom explanations.
package main

import (
	"fmt"
	"log"

	"github.com/saona-raimundo/asking"
)

func main() {
	n, err := asking.Int().
		Message("Give me a number between 2 and 4, but not 3: ").
		Rules(
			asking.MinMsg(2, "Too small, I accept nothing under 2. "),
			asking.NotMsg(3, "Anything but that one. "),
			asking.MaxMsg(4, "Too big, 4 is my limit. "),
		).
		Ask()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("A fine choice: %d\n", n)
}
