package matchio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/maxmatch/matchio"
)

func TestReadEdgeListGeneralHeader(t *testing.T) {
	input := "4 3\n0 1\n1 2\n2 3\n"
	g, err := matchio.ReadEdgeList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.N() != 4 {
		t.Errorf("N() = %d; want 4", g.N())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d; want 3", g.EdgeCount())
	}
}

func TestReadEdgeListBipartiteHeader(t *testing.T) {
	input := "2 2 3\n0 2\n0 3\n1 2\n"
	g, err := matchio.ReadEdgeList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.N() != 4 {
		t.Errorf("N() = %d; want 4", g.N())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d; want 3", g.EdgeCount())
	}
}

func TestReadEdgeListMalformed(t *testing.T) {
	_, err := matchio.ReadEdgeList(strings.NewReader("not a number\n"))
	if err == nil {
		t.Fatal("expected an error for malformed header")
	}
}

func TestReadMatrixMarketBasic(t *testing.T) {
	input := "%%MatrixMarket matrix coordinate pattern symmetric\n" +
		"% a comment\n" +
		"4 4 3\n" +
		"2 1\n" +
		"3 2\n" +
		"4 3\n"
	g, err := matchio.ReadMatrixMarket(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadMatrixMarket: %v", err)
	}
	if g.N() != 4 {
		t.Errorf("N() = %d; want 4", g.N())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d; want 3", g.EdgeCount())
	}
}

func TestReadMatrixMarketDropsSelfLoopsAndDuplicates(t *testing.T) {
	input := "3 3 4\n" +
		"1 1\n" +
		"1 2\n" +
		"2 1\n" +
		"2 3\n"
	g, err := matchio.ReadMatrixMarket(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadMatrixMarket: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2 (self-loop + duplicate dropped)", g.EdgeCount())
	}
}
