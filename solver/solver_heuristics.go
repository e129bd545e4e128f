package solver

import "sort"

// claBumpActivity bumps a clause's activity.
func (s *Solver) claBumpActivity(c *Clause) {
	c.activity += s.claInc

	if c.activity+s.claInc > 1e20 {
		s.claRescaleActivity()
	}
}

// decayClauseActivity applies decay to claInc: dividing by claDecay
// (< 1) grows claInc every conflict, which is equivalent to decaying
// every existing clause's activity relative to it. Variable-activity
// decay is delegated to the configured Heuristic (see
// heuristic.Heuristic.Decay), which applies the same 1/decay growth.
func (s *Solver) decayClauseActivity() {
	s.claInc /= s.claDecay
}

// claRescaleActivity rescales clause activity to avoid float overflow.
func (s *Solver) claRescaleActivity() {
	for i := 0; i < s.NLearnts(); i++ {
		s.learnts[i].activity *= 1e-20
	}
	s.claInc *= 1e-20
}

// sortLearnts sorts learnts by ascending activity, so reduceDB can drop
// the least active half.
func (s *Solver) sortLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.learnts[i].activity < s.learnts[j].activity
	})
}
