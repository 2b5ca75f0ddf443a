package mate_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

func TestSetPairIsSymmetric(t *testing.T) {
	s := mate.NewStore(4)
	s.SetPair(0, 2)
	if got := s.Mate(0); got != 2 {
		t.Errorf("Mate(0) = %d; want 2", got)
	}
	if got := s.Mate(2); got != 0 {
		t.Errorf("Mate(2) = %d; want 0", got)
	}
	if !s.Unmatched(1) {
		t.Errorf("Unmatched(1) = false; want true")
	}
}

func TestEmitSortedUnique(t *testing.T) {
	s := mate.NewStore(4)
	s.SetPair(3, 1)
	s.SetPair(0, 2)
	want := [][2]int32{{0, 2}, {1, 3}}
	if got := s.Emit(); !reflect.DeepEqual(got, want) {
		t.Errorf("Emit() = %v; want %v", got, want)
	}
}

func TestClearUnmatchesBothSides(t *testing.T) {
	s := mate.NewStore(2)
	s.SetPair(0, 1)
	s.Clear(0)
	if s.Mate(0) != graph.NONE || s.Mate(1) != graph.NONE {
		t.Errorf("Clear did not unmatch both sides: mate(0)=%d mate(1)=%d", s.Mate(0), s.Mate(1))
	}
}

func TestSize(t *testing.T) {
	s := mate.NewStore(4)
	s.SetPair(0, 1)
	s.SetPair(2, 3)
	if got := s.Size(); got != 2 {
		t.Errorf("Size() = %d; want 2", got)
	}
}
