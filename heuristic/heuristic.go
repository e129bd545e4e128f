// Package heuristic implements the decision-variable selection strategies
// of the CDCL search loop: activity-based VSIDS and static Jeroslow-Wang.
// Both share the same priority-queue plumbing so the search driver can
// swap between them without caring which one is in effect.
package heuristic

import (
	"github.com/rhartert/yagh"

	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

// Heuristic selects decision literals and tracks the information each
// strategy needs to do so: activity (VSIDS), static weight (JW), and the
// phase-saving memory both strategies consult for polarity.
type Heuristic interface {
	// Select returns the chosen decision literal, or lit.Undef if every
	// variable is already assigned.
	Select(assigns []tribool.Tribool) lit.Lit
	// NewVar registers a freshly introduced variable (0-indexed).
	NewVar()
	// Bump rewards a variable for participating in a learnt clause.
	Bump(v int)
	// Decay ages all activity once per conflict.
	Decay()
	// Unassign records the variable's value for phase saving and makes it
	// selectable again.
	Unassign(v int, val tribool.Tribool)
}

// initialHeapCapacity is the starting capacity for a varHeap.
// yagh.IntMap is a bounded integer priority queue sized at construction
// time, but variables here are discovered one at a time as clauses are
// parsed, not known upfront — varHeap grows past this as needed.
const initialHeapCapacity = 64

// varHeap wraps yagh.IntMap[float64], transparently rebuilding itself at
// double capacity whenever a variable index would otherwise fall outside
// the range it was constructed for.
type varHeap struct {
	heap     *yagh.IntMap[float64]
	resident []bool
	cap      int
}

func newVarHeap() *varHeap {
	return &varHeap{heap: yagh.New[float64](initialHeapCapacity), cap: initialHeapCapacity}
}

// ensureCapacity grows the heap, if necessary, so that v is a valid
// index. priority must return the current priority for any index still
// resident in the heap, since growing rebuilds the heap from scratch.
func (h *varHeap) ensureCapacity(v int, priority func(int) float64) {
	if v < h.cap {
		return
	}
	newCap := h.cap
	for v >= newCap {
		newCap *= 2
	}
	rebuilt := yagh.New[float64](newCap)
	for i, res := range h.resident {
		if res {
			rebuilt.Put(i, priority(i))
		}
	}
	h.heap = rebuilt
	h.cap = newCap
}

// put inserts or updates v's priority. v must already be within the
// heap's capacity (see ensureCapacity).
func (h *varHeap) put(v int, priority float64) {
	for v >= len(h.resident) {
		h.resident = append(h.resident, false)
	}
	h.resident[v] = true
	h.heap.Put(v, priority)
}

func (h *varHeap) contains(v int) bool {
	return v < len(h.resident) && h.resident[v]
}

// pop removes and returns the variable with the lowest priority value
// (callers negate activity/score so this means highest activity/score).
func (h *varHeap) pop() (int, bool) {
	e, ok := h.heap.Pop()
	if !ok {
		return 0, false
	}
	h.resident[e.Elem] = false
	return e.Elem, true
}

// phaseBook is the phase-saving memory shared by both heuristics: the
// value a variable held the last time it was unassigned, defaulting to
// negative for a variable that has never been assigned.
type phaseBook struct {
	phase []bool
}

func (p *phaseBook) newVar() {
	p.phase = append(p.phase, false)
}

func (p *phaseBook) record(v int, val tribool.Tribool) {
	if val.True() {
		p.phase[v] = true
	} else if val.False() {
		p.phase[v] = false
	}
}

// literalFor returns the decision literal for v given its saved phase.
func (p *phaseBook) literalFor(v int) lit.Lit {
	return lit.New(v, !p.phase[v])
}

// popUnassigned drains heap until it finds a variable that is still
// unassigned. Entries found to already be assigned are discarded rather
// than reinserted; they come back into the heap via Unassign once they
// are undone.
func popUnassigned(heap *varHeap, assigns []tribool.Tribool) (int, bool) {
	for {
		v, ok := heap.pop()
		if !ok {
			return 0, false
		}
		if assigns[v].Undef() {
			return v, true
		}
	}
}
