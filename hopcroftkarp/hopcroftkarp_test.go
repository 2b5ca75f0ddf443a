package hopcroftkarp_test

import (
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/hopcroftkarp"
)

func TestMatchSimpleBipartite(t *testing.T) {
	// Left {0,1,2}, right {3,4,5}: 0-3,0-4,1-4,1-5,2-5 — a path cover admitting
	// a perfect matching of size 3.
	g, err := graph.New(6, [][2]int32{{0, 3}, {0, 4}, {1, 4}, {1, 5}, {2, 5}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := hopcroftkarp.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d; want 3", m.Size())
	}
}

func TestMatchCompleteBipartite(t *testing.T) {
	// K_{3,3}.
	edges := [][2]int32{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			edges = append(edges, [2]int32{int32(i), int32(3 + j)})
		}
	}
	g, err := graph.New(6, edges)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := hopcroftkarp.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d; want 3", m.Size())
	}
}

func TestMatchRejectsNonBipartite(t *testing.T) {
	// Triangle: odd cycle, not bipartite.
	g, err := graph.New(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	if _, err := hopcroftkarp.Match(g); err != hopcroftkarp.ErrNotBipartite {
		t.Errorf("Match on a triangle: err = %v; want ErrNotBipartite", err)
	}
}

func TestMatchEmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := hopcroftkarp.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d; want 0", m.Size())
	}
}

func TestMatchUnbalancedBipartite(t *testing.T) {
	// Left {0,1} (2 vertices), right {2,3,4} (3 vertices); star from 0.
	g, err := graph.New(5, [][2]int32{{0, 2}, {0, 3}, {0, 4}, {1, 2}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := hopcroftkarp.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 2 {
		t.Errorf("Size() = %d; want 2", m.Size())
	}
}
