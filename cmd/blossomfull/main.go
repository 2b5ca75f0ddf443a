// Command blossomfull computes a maximum-cardinality matching of a
// general graph using a nested-blossom-supernode solver, serving as the
// reference oracle for the other general-graph engines.
//
// Usage:
//
//	blossomfull [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("blossomfull", os.Args[1:]))
}
