package solver

import (
	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

// search assumes and propagates until a conflict is found, a model is
// found, or the configured budget runs out. When a conflict is found,
// it is analyzed, learnt, and backtracking is performed until the
// search can continue.
func (s *Solver) search() Outcome {
	// Reset model.
	s.model = map[int]bool{}

	for {
		if confl := s.propagate(); confl != nil {
			// Conflict detected.
			s.conflicts++

			// No more decisions can be made.
			if s.decisionLevel() == s.rootLevel {
				return Unsat
			}

			// Analyze the conflict and produce a learnt clause.
			learntClause, backtrackLevel := s.analyze(confl)

			// Perform backtracking.
			if backtrackLevel > s.rootLevel {
				s.cancelUntil(backtrackLevel)
			} else {
				s.cancelUntil(s.rootLevel)
			}

			// Record new learnt clause.
			s.record(learntClause)

			// Update heuristics.
			s.heur.Decay()
			s.decayClauseActivity()
			s.maxLearntsCtr -= 1
			if s.maxLearntsCtr == 0 {
				s.maxLearntsCtrInc *= s.maxLearntsCtrIncGrowth
				s.maxLearntsCtr = int(s.maxLearntsCtrInc)
				s.maxLearnts *= s.maxLearntsGrowth
			}

			if s.restart.OnConflict() {
				s.restarts++
				s.restart.OnRestart()
				if s.decisionLevel() > s.rootLevel {
					s.cancelUntil(s.rootLevel)
					// cancelUntil only undoes trail assignments; record()
					// above already enqueued the learnt clause's asserting
					// literal onto propQ before we knew a restart was coming,
					// and that entry must not survive past the cancel. When
					// the backjump already landed at the root level, nothing
					// is cancelled and the asserting literal keeps its entry.
					s.propQ.Clear()
				}

				if s.budgetExceeded() {
					return Unknown
				}
			}
		} else {
			// No conflict detected.
			if s.NAssigns() == s.NVars() {
				// All vars are assigned with no conflicts, so we know we have a model.
				for i := 0; i < s.NVars(); i++ {
					s.model[s.internalVars[i]] = s.assigns[i].True()
				}
				s.cancelUntil(s.rootLevel)

				return Sat
			}

			// Simplify problem clauses.
			if s.decisionLevel() == 0 {
				s.simplifyDB()
			}

			// Check if maxLearnts has been reached, and if so reduce the DB.
			if !s.config.DisableReduction && s.NLearnts()-s.NAssigns() >= int(s.maxLearnts) {
				s.reduceDB()
			}

			if s.budgetExceeded() {
				s.cancelUntil(s.rootLevel)

				return Unknown
			}

			next := s.heur.Select(s.assigns)
			if next == lit.Undef {
				invariantViolation("decision heuristic returned no literal with unassigned variables remaining")
			}
			s.assume(next)
			s.decisions++
		}
	}
}

// assume assumes a literal, returning false if immediate conflict.
func (s *Solver) assume(p lit.Lit) bool {
	s.trailLim = append(s.trailLim, s.NAssigns())

	return s.enqueue(p, nil)
}

// undoOne unbinds the last assigned variable, handing its prior value to
// the decision heuristic for phase saving.
func (s *Solver) undoOne() {
	p := s.trail[s.NAssigns()-1]
	v := p.Index()
	val := s.assigns[v]

	s.assigns[v] = tribool.Undef
	s.reason[v] = nil
	s.level[v] = -1
	s.trail = s.trail[:s.NAssigns()-1]
	s.heur.Unassign(v, val)
}

// cancel reverts all variable assignments since the last decision level.
func (s *Solver) cancel() {
	c := s.NAssigns() - s.trailLim[s.decisionLevel()-1]
	for ; c > 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:s.decisionLevel()-1]
}

// cancelUntil cancels all variable assignments since the referenced level.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

// decisionLevel returns a solver's decision level.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}
