package blossomsimple_test

import (
	"testing"

	"github.com/katalvlaran/maxmatch/blossomsimple"
	"github.com/katalvlaran/maxmatch/graph"
)

func TestMatchTriangle(t *testing.T) {
	g, err := graph.New(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := blossomsimple.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 1 {
		t.Errorf("Size() = %d; want 1", m.Size())
	}
}

func TestMatchBlossomRequiresContraction(t *testing.T) {
	// Classic blossom example: a 5-cycle (0-1-2-3-4-0) plus a pendant 5
	// attached to 0. Without contracting the odd cycle, a naive DFS matcher
	// can strand vertex 5; the true maximum matching has size 3.
	g, err := graph.New(6, [][2]int32{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 5},
	})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := blossomsimple.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d; want 3", m.Size())
	}
}

func TestMatchPetersenIsPerfect(t *testing.T) {
	edges := [][2]int32{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	g, err := graph.New(10, edges)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := blossomsimple.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 5 {
		t.Errorf("Size() = %d; want 5 (perfect matching)", m.Size())
	}
}

func TestMatchEmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := blossomsimple.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d; want 0", m.Size())
	}
}

func TestMatchIsolatedVertices(t *testing.T) {
	g, err := graph.New(4, [][2]int32{{0, 1}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	m, err := blossomsimple.Match(g)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Size() != 1 {
		t.Errorf("Size() = %d; want 1", m.Size())
	}
}
