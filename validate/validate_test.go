package validate_test

import (
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/validate"
)

func TestCheckValidMatching(t *testing.T) {
	g, err := graph.New(4, [][2]int32{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	report := validate.Check(g, [][2]int32{{0, 1}, {2, 3}})
	if !report.Passed() {
		t.Errorf("Passed() = false; want true, report: %s", report)
	}
	if report.MatchingSize != 2 {
		t.Errorf("MatchingSize = %d; want 2", report.MatchingSize)
	}
	if report.MatchedVertices != 4 {
		t.Errorf("MatchedVertices = %d; want 4", report.MatchedVertices)
	}
}

func TestCheckRejectsNonEdge(t *testing.T) {
	g, err := graph.New(4, [][2]int32{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	report := validate.Check(g, [][2]int32{{0, 2}})
	if report.Passed() {
		t.Error("Passed() = true; want false (0-2 is not an edge)")
	}
	if len(report.BadEdges) != 1 {
		t.Errorf("len(BadEdges) = %d; want 1", len(report.BadEdges))
	}
}

func TestCheckRejectsOverMatchedVertex(t *testing.T) {
	g, err := graph.New(3, [][2]int32{{0, 1}, {0, 2}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	report := validate.Check(g, [][2]int32{{0, 1}, {0, 2}})
	if report.Passed() {
		t.Error("Passed() = true; want false (vertex 0 in two pairs)")
	}
	if len(report.OverMatched) != 1 || report.OverMatched[0] != 0 {
		t.Errorf("OverMatched = %v; want [0]", report.OverMatched)
	}
}

func TestCheckEmptyMatching(t *testing.T) {
	g, err := graph.New(3, [][2]int32{{0, 1}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	report := validate.Check(g, nil)
	if !report.Passed() {
		t.Error("Passed() = false; want true for empty matching")
	}
}
