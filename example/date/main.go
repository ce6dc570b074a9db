// Package main demonstrates asking for a calendar date.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/saona-raimundo/asking"
)

func main() {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	when, err := asking.Date().
		Message("When should I remind you? ").
		Help("Use the YYYY-MM-DD form, today or later. ").
		TestMsg(func(d time.Time) bool { return !d.Before(today) },
			"That day has already passed. ").
		Ask()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Reminder set for %s.\n", when.Format(asking.DateLayout))
}
