// Command tangramkit reworks the coordinate data of tangram shape kits:
// it transforms path coordinates and derives vertex and segment records
// from shape outlines. Results go to stdout for pasting back into a kit.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
