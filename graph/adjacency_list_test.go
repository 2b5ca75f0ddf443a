package graph_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
)

func TestNew_DropsSelfLoopsAndOutOfRange(t *testing.T) {
	g, err := graph.New(3, [][2]int32{{0, 0}, {0, 1}, {1, 2}, {2, 5}, {-1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int32{1}; !reflect.DeepEqual(g.Neighbors(0), want) {
		t.Errorf("Neighbors(0) = %v; want %v", g.Neighbors(0), want)
	}
	if want := []int32{0, 2}; !reflect.DeepEqual(g.Neighbors(1), want) {
		t.Errorf("Neighbors(1) = %v; want %v", g.Neighbors(1), want)
	}
	if want := []int32{1}; !reflect.DeepEqual(g.Neighbors(2), want) {
		t.Errorf("Neighbors(2) = %v; want %v", g.Neighbors(2), want)
	}
}

func TestNew_DedupesParallelEdges(t *testing.T) {
	g, err := graph.New(2, [][2]int32{{0, 1}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int32{1}; !reflect.DeepEqual(g.Neighbors(0), want) {
		t.Errorf("Neighbors(0) = %v; want %v", g.Neighbors(0), want)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d; want 1", got)
	}
}

func TestNew_NegativeSize(t *testing.T) {
	if _, err := graph.New(-1, nil); err != graph.ErrNegativeSize {
		t.Errorf("New(-1, nil) error = %v; want ErrNegativeSize", err)
	}
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.N() != 0 {
		t.Errorf("N() = %d; want 0", g.N())
	}
}

func TestDegreeAndNeighborsOutOfRange(t *testing.T) {
	g, _ := graph.New(2, [][2]int32{{0, 1}})
	if got := g.Degree(0); got != 1 {
		t.Errorf("Degree(0) = %d; want 1", got)
	}
	if got := g.Neighbors(5); got != nil {
		t.Errorf("Neighbors(5) = %v; want nil", got)
	}
}
