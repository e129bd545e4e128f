package solver

import (
	"sort"
	"strings"

	"github.com/cdclsat/solver/lit"
)

// Clause is a CNF clause. The first two positions are the watched
// positions; everything else is dereferenced only during propagation
// scans and conflict analysis.
type Clause struct {
	solver   *Solver
	lits     []lit.Lit
	learnt   bool
	activity float64
}

// newClause returns (nil, c) for an installed clause, (nil, nil) when
// the clause was vacuous (already true, or a tautology) or was a unit
// whose literal has been enqueued, (EmptyClause, nil) when the clause
// has no literals at all, or (TrivialConflict, nil) when every literal
// of the clause already contradicts an existing assignment at level 0
// (such as a unit clause whose negation is already a level-0 unit) —
// both error cases render the formula trivially unsatisfiable.
func newClause(s *Solver, lits []lit.Lit, learnt bool) (error, *Clause) {
	c := &Clause{
		solver: s,
		lits:   lits,
		learnt: learnt,
	}
	falsified := lit.Undef

	if !learnt {
		// Sorting is only safe for original clauses: a learnt clause's
		// literal order is meaningful (position 0 is the UIP analyze
		// produced, position 1 is chosen below) and must be preserved.
		sort.Sort(c)

		idx := 0
		last := lit.Undef

		for _, p := range c.lits {
			switch {
			case s.litValue(p).True():
				c.solver.vlogf("Literal %s already true", p)
				return nil, nil
			case p == last.Not():
				c.solver.vlogf("Tautology detected for %s", p)
				return nil, nil
			case p == last:
				c.solver.vlogf("Skipping duplicate literal %s", p)
				continue
			case s.litValue(p).False():
				c.solver.vlogf("Skipping false literal %s", p)
				falsified = p
				continue
			}
			c.lits[idx] = p
			last = p
			idx++
		}
		c.lits = c.lits[:idx]
	}

	switch c.Len() {
	case 0:
		if falsified != lit.Undef {
			return &TrivialConflict{Var: falsified.Var()}, nil
		}
		return &EmptyClause{}, nil
	case 1:
		c.solver.vlogf("Unit detected: %s", c.lits[0])

		if !s.enqueue(c.lits[0], c) {
			return &TrivialConflict{Var: c.lits[0].Var()}, nil
		}
		return nil, nil
	}

	if learnt {
		// Pick a second literal to watch: the one asserted at the highest
		// decision level, so that after backjump it becomes the false
		// watch.
		idx := c.highestDecisionLevelIdx()
		c.lits[1], c.lits[idx] = c.lits[idx], c.lits[1]

		c.solver.claBumpActivity(c)

		for i := 0; i < c.Len(); i++ {
			c.solver.heur.Bump(c.lits[i].Index())
		}
	}

	c.addToWatcher(c.lits[0].Not())
	c.addToWatcher(c.lits[1].Not())

	return nil, c
}

// locked returns true if c is currently serving as the reason for an
// assignment on the trail, meaning reduceDB must not remove it.
func (c *Clause) locked() bool {
	return c.solver.reason[c.lits[0].Index()] == c
}

// remove removes the clause from the solver's watch lists.
func (c *Clause) remove() {
	c.removeFromWatcher(c.lits[0].Not())
	c.removeFromWatcher(c.lits[1].Not())
}

// simplify attempts to simplify the clause against the current
// assignment, returning true if the clause is already satisfied (and so
// may be dropped at level 0).
func (c *Clause) simplify() bool {
	j := 0
	for i := 0; i < c.Len(); i++ {
		if c.solver.litValue(c.lits[i]).True() {
			return true
		}
		if c.solver.litValue(c.lits[i]).Undef() {
			c.lits[j] = c.lits[i]
			j++
		}
	}
	c.lits = c.lits[:j]

	return false
}

// propagate implements one step of the two-watched-literal algorithm for
// the literal p, whose complement has just become false: normalize the
// watch order, scan for a replacement watch, and otherwise either
// enqueue the clause as unit or report it as a conflict.
func (c *Clause) propagate(p lit.Lit) bool {
	if c.lits[0] == p.Not() {
		c.lits[0], c.lits[1] = c.lits[1], p.Not()
	}
	if c.solver.litValue(c.lits[0]).True() {
		c.solver.vlogf("Clause already satisfied: %s", c)
		c.addToWatcher(p)

		return true
	}
	for i := 2; i < c.Len(); i++ {
		if !c.solver.litValue(c.lits[i]).False() {
			c.lits[1], c.lits[i] = c.lits[i], p.Not()
			c.addToWatcher(c.lits[1].Not())

			return true
		}
	}
	c.solver.vlogf("Clause is unit: %s", c)
	c.addToWatcher(p)

	return c.solver.enqueue(c.lits[0], c)
}

// calcReason returns the reason p was propagated: every other literal in
// c, negated, forming the edges into p in the implicit implication
// graph. When p is lit.Undef (analyzing the conflicting clause itself,
// not a forced literal), all literals contribute.
func (c *Clause) calcReason(p lit.Lit) []lit.Lit {
	outReason := []lit.Lit{}
	offset := 1
	if p == lit.Undef {
		offset = 0
	}
	for i := offset; i < c.Len(); i++ {
		outReason = append(outReason, c.lits[i].Not())
	}
	if c.learnt {
		c.solver.claBumpActivity(c)
	}
	return outReason
}

// addToWatcher adds this clause to p's watch list.
func (c *Clause) addToWatcher(p lit.Lit) {
	c.solver.watches[p] = append(c.solver.watches[p], c)
}

// removeFromWatcher removes this clause from p's watch list.
func (c *Clause) removeFromWatcher(p lit.Lit) {
	for idx, clause := range c.solver.watches[p] {
		if clause == c {
			nWatches := len(c.solver.watches[p])
			c.solver.watches[p][idx] = c.solver.watches[p][nWatches-1]
			c.solver.watches[p] = c.solver.watches[p][:nWatches-1]
			return
		}
	}
}

// highestDecisionLevelIdx returns the index, among positions 1..end, of
// the literal assigned at the highest decision level, used to pick a
// learnt clause's second watch. Position 0 is excluded: it holds the
// UIP literal analyze produced, which is always at the clause's highest
// decision level by construction, and must stay in place.
func (c *Clause) highestDecisionLevelIdx() int {
	max := 0
	maxIdx := 1

	for idx := 1; idx < c.Len(); idx++ {
		dl := c.solver.level[c.lits[idx].Index()]

		if dl > max {
			maxIdx = idx
			max = dl
		}
	}
	return maxIdx
}

// asInts returns the clause as signed user-variable integers, for
// re-adding a clause set to a fresh solver instance (see SolveMany).
func (c *Clause) asInts() []int {
	ps := make([]int, c.Len())

	for i, l := range c.lits {
		v := c.solver.internalVars[l.Index()]
		if l.Sign() {
			ps[i] = -v
		} else {
			ps[i] = v
		}
	}
	return ps
}

// asStrings returns a clause as an array of strings.
func (c *Clause) asStrings() []string {
	litStrs := make([]string, len(c.lits))

	for i, l := range c.lits {
		litStrs[i] = l.String()
	}
	return litStrs
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), ",")
}

// Len returns the length of the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Swap swaps two literals within the clause.
func (c *Clause) Swap(i, j int) {
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
}

// Less compares two literals within the clause.
func (c *Clause) Less(i, j int) bool {
	return c.lits[i] < c.lits[j]
}
