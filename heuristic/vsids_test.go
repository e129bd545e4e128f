package heuristic

import (
	"testing"

	"github.com/cdclsat/solver/tribool"
)

func TestVSIDSSelectsHighestActivity(t *testing.T) {
	h := NewVSIDS(0.95)
	h.NewVar()
	h.NewVar()
	h.NewVar()

	h.Bump(1)
	h.Bump(1)
	h.Bump(2)

	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef, tribool.Undef}

	if l := h.Select(assigns); l.Var() != 2 {
		t.Fatalf("expected var 2 (highest activity), got %d", l.Var())
	}
}

func TestVSIDSSkipsAssigned(t *testing.T) {
	h := NewVSIDS(0.95)
	h.NewVar()
	h.NewVar()
	h.Bump(0)
	h.Bump(0)

	assigns := []tribool.Tribool{tribool.True, tribool.Undef}

	if l := h.Select(assigns); l.Var() != 2 {
		t.Fatalf("expected var 2 (the only unassigned var), got %d", l.Var())
	}
}

func TestVSIDSUnassignReinsertsVar(t *testing.T) {
	h := NewVSIDS(0.95)
	h.NewVar()
	assigns := []tribool.Tribool{tribool.Undef}

	l := h.Select(assigns)
	if l == -1 {
		t.Fatalf("expected a selection")
	}
	if l2 := h.Select(assigns); l2 != -1 {
		t.Fatalf("expected no more vars after popping the only one, got %d", l2.Var())
	}

	h.Unassign(0, tribool.True)
	if l3 := h.Select(assigns); l3.Var() != 1 {
		t.Fatalf("expected var to be selectable again after Unassign, got %d", l3.Var())
	}
}

func TestVSIDSDecayGrowsIncrement(t *testing.T) {
	h := NewVSIDS(0.5)
	before := h.inc
	h.Decay()

	if h.inc <= before {
		t.Fatalf("expected inc to grow after Decay, got %f from %f", h.inc, before)
	}
}

func TestVSIDSRescaleOnOverflow(t *testing.T) {
	h := NewVSIDS(0.95)
	h.NewVar()
	h.inc = rescaleThreshold * 2

	h.Bump(0)

	if h.activity[0] >= rescaleThreshold {
		t.Fatalf("expected activity to be rescaled, got %e", h.activity[0])
	}
}
