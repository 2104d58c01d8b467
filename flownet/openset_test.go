package flownet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpenSet_Open(t *testing.T) {
	s := NewOpenSet(3)

	if !s.Open(Opening{Node: 1, Agent: 0, Time: 2}) {
		t.Errorf("Open(1): want true, got false")
	}
	if s.Open(Opening{Node: 1, Agent: 1, Time: 4}) {
		t.Errorf("Open(1) twice: want false, got true")
	}

	wantTrail := []Opening{{1, 0, 2}}
	if diff := cmp.Diff(wantTrail, s.Trail()); diff != "" {
		t.Errorf("Trail(): mismatch (-want +got):\n%s", diff)
	}
	for n, want := range []bool{false, true, false} {
		if got := s.Contains(n); got != want {
			t.Errorf("Contains(%d): want %t, got %t", n, want, got)
		}
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len(): want 1, got %d", got)
	}
}

func TestOpenSet_Undo(t *testing.T) {
	s := NewOpenSet(5)
	s.Open(Opening{Node: 0, Time: 1})
	mark := s.Mark()
	s.Open(Opening{Node: 3, Time: 2})
	s.Open(Opening{Node: 4, Agent: 1, Time: 3})

	s.Undo(mark)

	wantTrail := []Opening{{0, 0, 1}}
	if diff := cmp.Diff(wantTrail, s.Trail()); diff != "" {
		t.Errorf("Trail(): mismatch (-want +got):\n%s", diff)
	}
	for n, want := range []bool{true, false, false, false, false} {
		if got := s.Contains(n); got != want {
			t.Errorf("Contains(%d): want %t, got %t", n, want, got)
		}
	}

	// Undone nodes can be opened again.
	if !s.Open(Opening{Node: 3, Time: 5}) {
		t.Errorf("Open(3) after Undo: want true, got false")
	}
}

func TestOpenSet_Undo_nested(t *testing.T) {
	s := NewOpenSet(4)
	outer := s.Mark()
	s.Open(Opening{Node: 1})
	inner := s.Mark()
	s.Open(Opening{Node: 2})
	s.Undo(inner)
	s.Open(Opening{Node: 3})

	if got := s.Len(); got != 2 {
		t.Errorf("Len(): want 2, got %d", got)
	}
	s.Undo(outer)
	if got := s.Len(); got != 0 {
		t.Errorf("Len() after Undo(outer): want 0, got %d", got)
	}
}

func TestOpenSet_Clear(t *testing.T) {
	s := NewOpenSet(3)
	s.Open(Opening{Node: 0})
	s.Open(Opening{Node: 2})

	s.Clear()

	if got := s.Len(); got != 0 {
		t.Errorf("Len(): want 0, got %d", got)
	}
	for n := 0; n < 3; n++ {
		if s.Contains(n) {
			t.Errorf("Contains(%d): want false, got true", n)
		}
	}
}
