package prof

import (
	"log"
	"time"
)

// Enabled gates all timing output; the demo turns it on with -timings.
var Enabled = true

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	if !Enabled {
		return
	}
	elapsed := time.Since(start)
	log.Printf("%s took %s", name, elapsed)
}
