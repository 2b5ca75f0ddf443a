// Command gabowsimple computes a maximum-cardinality matching of a
// general graph using Gabow's O(VE) multi-source alternating-forest
// algorithm with epoch-tagged interleaved LCA.
//
// Usage:
//
//	gabowsimple [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("gabowsimple", os.Args[1:]))
}
