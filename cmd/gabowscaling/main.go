// Command gabowscaling computes a maximum-cardinality matching of a
// general graph using Gabow's two-phase scaling algorithm over
// Delta-levels.
//
// Usage:
//
//	gabowscaling [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("gabowscaling", os.Args[1:]))
}
