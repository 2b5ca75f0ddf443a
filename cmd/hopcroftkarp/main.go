// Command hopcroftkarp computes a maximum-cardinality matching of a
// bipartite graph using the Hopcroft-Karp BFS-layering/DFS-phase
// algorithm.
//
// Usage:
//
//	hopcroftkarp [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("hopcroftkarp", os.Args[1:]))
}
