package hopcroftkarp

import "errors"

// ErrNotBipartite is returned when Match is asked to run on a graph that
// fails two-coloring: the Hopcroft–Karp phase structure is only defined for
// bipartite input.
var ErrNotBipartite = errors.New("hopcroftkarp: graph is not bipartite")
