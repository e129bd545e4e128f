package heuristic

import (
	"testing"

	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

func TestJWPrefersShorterClauseLiteral(t *testing.T) {
	// var 1 appears alone in a unit clause (weight 2^-1), var 2 only in a
	// 3-literal clause (weight 2^-3): var 1 should score higher.
	clauses := [][]lit.Lit{
		{lit.New(0, false)},
		{lit.New(1, false), lit.New(2, false), lit.New(0, true)},
	}
	h := NewJW(3, clauses)
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef, tribool.Undef}

	l := h.Select(assigns)
	if l.Var() != 1 {
		t.Fatalf("expected var 1 (higher JW score), got %d", l.Var())
	}
	if l.Sign() {
		t.Fatalf("expected positive polarity (higher score side), got negative")
	}
}

func TestJWBumpAndDecayAreNoOps(t *testing.T) {
	h := NewJW(1, nil)
	before := append([]float64{}, h.posScore...)

	h.Bump(0)
	h.Decay()

	for i := range before {
		if h.posScore[i] != before[i] {
			t.Fatalf("expected static scores to be unaffected by Bump/Decay")
		}
	}
}

func TestJWRefreshRecomputesScores(t *testing.T) {
	h := NewJW(1, nil)
	if h.posScore[0] != 0 {
		t.Fatalf("expected zero initial score, got %f", h.posScore[0])
	}

	h.Refresh([][]lit.Lit{{lit.New(0, false)}})

	if h.posScore[0] != 0.5 {
		t.Fatalf("expected unit-clause weight 0.5, got %f", h.posScore[0])
	}
}
