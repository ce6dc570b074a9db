// Package main demonstrates asking over files instead of the terminal.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/saona-raimundo/asking"
)

func main() {
	in, err := os.Open("in.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	out, err := os.Create("out.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	answer, err := asking.Text().
		Message("What does the file say? ").
		Reader(in).
		Writer(out).
		Ask()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("The file says: %s\n", answer)
}
