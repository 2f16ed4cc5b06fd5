/*
hillclimb reports the fewest steps needed to climb a height map to its
summit.

The grid is read from the file named by the first argument, or from standard
input. Each line is a row; 'a'..'z' are elevations, 'S' marks the start and
'E' the summit. A step may go up, down, left or right and may climb at most
one unit, while any descent is allowed.

Two answers are printed: the distance from 'S' and the distance from the best
of all lowest cells.
*/
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("hillclimb failed")
		os.Exit(1)
	}
}
