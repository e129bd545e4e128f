package heuristic

import (
	"math"

	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

// JW is the static Jeroslow-Wang decision heuristic:
// score(L) = Σ 2^-|C| over clauses C containing literal L. Scores are
// computed once from the original clause set; Refresh may be called to
// fold in learnt clauses, but it isn't required and Bump/Decay (the
// per-conflict hooks the search driver calls unconditionally) are no-ops
// here.
type JW struct {
	posScore []float64
	negScore []float64
	heap     *varHeap
	phase    phaseBook
}

// NewJW returns a JW heuristic for nVars variables, with scores computed
// from clauses.
func NewJW(nVars int, clauses [][]lit.Lit) *JW {
	h := &JW{heap: newVarHeap()}
	for i := 0; i < nVars; i++ {
		h.NewVar()
	}
	h.Refresh(clauses)
	return h
}

func (h *JW) NewVar() {
	h.posScore = append(h.posScore, 0)
	h.negScore = append(h.negScore, 0)
	h.phase.newVar()
	v := len(h.posScore) - 1
	h.heap.ensureCapacity(v, func(i int) float64 { return -math.Max(h.posScore[i], h.negScore[i]) })
	h.heap.put(v, 0)
}

// Refresh recomputes every literal's static score from clauses, replacing
// whatever was computed before.
func (h *JW) Refresh(clauses [][]lit.Lit) {
	for i := range h.posScore {
		h.posScore[i] = 0
		h.negScore[i] = 0
	}
	for _, c := range clauses {
		weight := math.Pow(2, -float64(len(c)))
		for _, p := range c {
			if p.Sign() {
				h.negScore[p.Index()] += weight
			} else {
				h.posScore[p.Index()] += weight
			}
		}
	}
	for v := range h.posScore {
		if h.heap.contains(v) {
			h.heap.put(v, -math.Max(h.posScore[v], h.negScore[v]))
		}
	}
}

// Bump is a no-op: JW scores are static by definition.
func (h *JW) Bump(v int) {}

// Decay is a no-op for the same reason.
func (h *JW) Decay() {}

func (h *JW) Unassign(v int, val tribool.Tribool) {
	h.phase.record(v, val)
	h.heap.put(v, -math.Max(h.posScore[v], h.negScore[v]))
}

// Select returns the unassigned variable whose either-polarity literal
// has the highest score, with that polarity as the chosen literal. Ties
// fall back to phase saving.
func (h *JW) Select(assigns []tribool.Tribool) lit.Lit {
	v, ok := popUnassigned(h.heap, assigns)
	if !ok {
		return lit.Undef
	}
	switch {
	case h.posScore[v] > h.negScore[v]:
		return lit.New(v, false)
	case h.negScore[v] > h.posScore[v]:
		return lit.New(v, true)
	default:
		return h.phase.literalFor(v)
	}
}
