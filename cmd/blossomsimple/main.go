// Command blossomsimple computes a maximum-cardinality matching of a
// general graph using a single-root-per-search BFS with virtual
// union-find blossoms.
//
// Usage:
//
//	blossomsimple [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("blossomsimple", os.Args[1:]))
}
