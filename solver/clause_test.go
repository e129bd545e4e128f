package solver

import (
	"testing"

	"github.com/cdclsat/solver/config"
	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

func TestDetectClauseTrue(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(0, false)}
	addLits(s, lits)
	s.assigns[0] = tribool.True

	if err, _ := newClause(s, lits, false); err != nil {
		t.Fatalf("Did not detect already true clause")
	}
}

func TestDetectClauseTautology(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(0, true)}
	addLits(s, lits)

	if err, _ := newClause(s, lits, false); err != nil {
		t.Fatalf("Did not detect tautology")
	}
}

func TestDetectClauseEmpty(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{}

	if err, _ := newClause(s, lits, false); err == nil {
		t.Fatalf("Did not detect empty clause")
	} else if _, ok := err.(*EmptyClause); !ok {
		t.Fatalf("expected *EmptyClause, got %T", err)
	}
}

func TestDetectClauseFalseLits(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, true)}
	addLits(s, lits)
	s.assigns[1] = tribool.False

	if _, c := newClause(s, lits, false); c.Len() != 2 {
		t.Fatalf("Did not remove false literals")
	}
}

func TestDetectClauseDuplicates(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(0, false), lit.New(1, true)}
	addLits(s, lits)

	if _, c := newClause(s, lits, false); c.Len() != 2 {
		t.Fatalf("Did not remove duplicates")
	}
}

func TestClauseLockedWhenReasonForTrailLiteral(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false)}
	addLits(s, lits)

	_, c := newClause(s, []lit.Lit{lits[0], lits[1]}, false)
	if c == nil {
		t.Fatalf("expected clause to be installed")
	}
	s.reason[lits[0].Index()] = c

	if !c.locked() {
		t.Fatalf("expected clause to be locked when it is lits[0]'s reason")
	}

	s.reason[lits[0].Index()] = nil
	if c.locked() {
		t.Fatalf("expected clause to be unlocked once it is no longer a reason")
	}
}

func addLits(s *Solver, lits []lit.Lit) {
	for _, l := range lits {
		s.newVar(l)
	}
}