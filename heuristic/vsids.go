package heuristic

import (
	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

// rescaleThreshold and rescaleFactor bound VSIDS activity growth,
// rescaling before floating-point overflow becomes a risk.
const (
	rescaleThreshold = 1e100
	rescaleFactor    = 1e-100
)

// VSIDS is the classic activity-based decision heuristic: every
// variable touched during conflict analysis is bumped by inc, and inc
// grows by 1/decay after each conflict (equivalent to decaying every
// activity). Selection returns the unassigned variable with maximum
// activity, ties broken by lowest index (the heap's FIFO-on-equal-key
// behavior matches this for variables inserted in index order).
type VSIDS struct {
	activity []float64
	inc      float64
	decay    float64
	heap     *varHeap
	phase    phaseBook
}

// NewVSIDS returns a VSIDS heuristic with the given per-conflict decay
// factor (decay ∈ (0,1), typically 0.95).
func NewVSIDS(decay float64) *VSIDS {
	return &VSIDS{
		inc:   1.0,
		decay: decay,
		heap:  newVarHeap(),
	}
}

func (h *VSIDS) NewVar() {
	h.activity = append(h.activity, 0)
	h.phase.newVar()
	v := len(h.activity) - 1
	h.heap.ensureCapacity(v, func(i int) float64 { return -h.activity[i] })
	h.heap.put(v, -h.activity[v])
}

func (h *VSIDS) Bump(v int) {
	h.activity[v] += h.inc
	if h.activity[v] > rescaleThreshold {
		h.rescale()
	}
	if h.heap.contains(v) {
		h.heap.put(v, -h.activity[v])
	}
}

func (h *VSIDS) rescale() {
	for i := range h.activity {
		h.activity[i] *= rescaleFactor
		if h.heap.contains(i) {
			h.heap.put(i, -h.activity[i])
		}
	}
	h.inc *= rescaleFactor
}

func (h *VSIDS) Decay() {
	h.inc /= h.decay
}

func (h *VSIDS) Unassign(v int, val tribool.Tribool) {
	h.phase.record(v, val)
	h.heap.put(v, -h.activity[v])
}

func (h *VSIDS) Select(assigns []tribool.Tribool) lit.Lit {
	v, ok := popUnassigned(h.heap, assigns)
	if !ok {
		return lit.Undef
	}
	return h.phase.literalFor(v)
}
