package greedy_test

import (
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/greedy"
	"github.com/katalvlaran/maxmatch/mate"
)

func TestFirstFitPath(t *testing.T) {
	g, _ := graph.New(4, [][2]int32{{0, 1}, {1, 2}, {2, 3}})
	m := mate.NewStore(4)
	n := greedy.FirstFit(g, m)
	if n != 2 {
		t.Fatalf("FirstFit count = %d; want 2", n)
	}
	if m.Mate(0) != 1 || m.Mate(2) != 3 {
		t.Errorf("unexpected pairing: mate(0)=%d mate(2)=%d", m.Mate(0), m.Mate(2))
	}
}

func TestMinDegreePrefersSmallestDegree(t *testing.T) {
	// Star: 0 is the hub connected to 1,2,3; 1-2 also connected.
	g, _ := graph.New(4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}})
	m := mate.NewStore(4)
	greedy.MinDegree(g, m)
	// Vertex 3 has degree 1 (only neighbor 0); it should be processed before
	// 1 and 2 (degree 2) and before 0 (degree 3), claiming 0 first.
	if m.Mate(3) != 0 {
		t.Errorf("mate(3) = %d; want 0 (smallest-degree vertex claims the hub)", m.Mate(3))
	}
}

func TestGreedyMonotonicityNeverExceedsMaximum(t *testing.T) {
	g, _ := graph.New(5, [][2]int32{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}})
	m := mate.NewStore(5)
	n := greedy.FirstFit(g, m)
	if n > 2 {
		t.Errorf("FirstFit produced %d pairs; maximum matching size is 2", n)
	}
}
