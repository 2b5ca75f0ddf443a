// Command micalivazirani computes a maximum-cardinality matching of a
// general graph using Micali-Vazirani's Delta-level MIN phase followed
// by tenacity-bucketed bridge resolution.
//
// Usage:
//
//	micalivazirani [--greedy|--greedy-md] [--gen spec] [--json] [filename]
package main

import (
	"os"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run("micalivazirani", os.Args[1:]))
}
