// Package solver implements the CDCL (conflict-driven clause learning)
// decision engine: two-watched-literal propagation, First-UIP conflict
// analysis, non-chronological backjumping, clause learning, and a
// pluggable decision heuristic and restart policy.
package solver

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/cdclsat/solver/config"
	"github.com/cdclsat/solver/heuristic"
	"github.com/cdclsat/solver/lit"
	"github.com/cdclsat/solver/tribool"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Outcome is the result of a search: Sat, Unsat, or Unknown when a
// conflict/time budget is exhausted before either is decided.
type Outcome int

const (
	Unsat Outcome = iota
	Sat
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver is the SAT solver.
type Solver struct {
	config *config.Config
	logger *log.Logger

	// Model Database Fields

	userVars     map[int]int
	internalVars map[int]int
	model        map[int]bool

	// Constraint Database Fields

	constrs  []*Clause
	learnts  []*Clause
	claInc   float64
	claDecay float64

	// Decision Heuristic

	heur heuristic.Heuristic

	// Propagation Fields

	watches map[lit.Lit][]*Clause
	propQ   *lit.Queue

	// Assignment Fields

	assigns   []tribool.Tribool
	trail     []lit.Lit
	trailLim  []int
	reason    []*Clause
	level     []int
	rootLevel int

	// Restart Controller

	restart heuristic.RestartController

	// Reduction / growth bookkeeping for the learnt-clause database.

	maxLearnts             float64
	maxLearntsGrowth       float64
	maxLearntsCtr          int
	maxLearntsCtrInc       float64
	maxLearntsCtrIncGrowth float64

	// Budget

	conflictBudget int
	deadline       time.Time

	// Stats Fields

	propagations int
	conflicts    int
	restarts     int
	decisions    int
}

// New returns a new initialized solver.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:       c,
		logger:       c.Logger,
		userVars:     map[int]int{},
		internalVars: map[int]int{},
		model:        map[int]bool{},
		learnts:      []*Clause{},
		watches:      map[lit.Lit][]*Clause{},
		propQ:        lit.NewQueue(),
		assigns:      []tribool.Tribool{},
		trail:        []lit.Lit{},
		trailLim:     []int{},
		reason:       []*Clause{},
		level:        []int{},

		claInc:   1.0,
		claDecay: c.ClaDecay,

		conflictBudget: c.ConflictBudget,
		deadline:       c.Deadline,
	}
	switch c.Heuristic {
	case config.JeroslowWang:
		s.heur = heuristic.NewJW(0, nil)
	default:
		s.heur = heuristic.NewVSIDS(c.VarDecay)
	}
	s.restart = newRestartController(c)

	return s
}

func newRestartController(c *config.Config) heuristic.RestartController {
	switch c.RestartStrategy {
	case config.LubyRestarts:
		return heuristic.NewLubyRestart(32)
	default:
		return heuristic.NewFixedRestart(100, 2)
	}
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Solve accepts a list of assumptions and decides satisfiability,
// returning Sat, Unsat, or Unknown if the configured budget runs out
// first. ps is a list of DIMACS-style signed assumption integers,
// applied at the root decision level.
func (s *Solver) Solve(ps []int) Outcome {
	assumps := []lit.Lit{}

	s.claInc = 1.0
	s.maxLearnts = float64(s.NConstrs()) / 3.0
	s.maxLearntsGrowth = 1.1
	s.maxLearntsCtrInc = 100.0
	s.maxLearntsCtr = int(s.maxLearntsCtrInc)
	s.maxLearntsCtrIncGrowth = 1.5

	if !s.simplifyDB() {
		return Unsat
	}
	s.refreshStaticHeuristic()

	for _, p := range ps {
		assump := lit.NewFromInt(p)

		if _, ok := s.userVars[assump.Var()]; !ok {
			return Unsat
		}
		assumps = append(assumps, s.newVar(assump))
	}
	for i := 0; i < len(assumps); i++ {
		if !s.assume(assumps[i]) || s.propagate() != nil {
			s.cancelUntil(0)

			return Unsat
		}
	}
	s.rootLevel = s.decisionLevel()

	status := s.search()
	s.cancelUntil(0)

	return status
}

// SolveMany repeatedly solves, each time blocking the previously found
// model with a new clause, returning up to mCount distinct models.
func (s *Solver) SolveMany(ps []int, mCount uint) [][]int {
	models := [][]int{}

	for i := 0; i < int(mCount); i++ {
		if s.Solve(ps) == Sat {
			s.logger.Printf("Found %d/%d models", i+1, mCount)

			models = append(models, s.Answer())
			constrs := s.constrs

			s = New(s.config)

			for _, c := range constrs {
				s.AddClause(c.asInts())
			}
			for _, model := range models {
				newConstr := []int{}

				for _, l := range model {
					newConstr = append(newConstr, -l)
				}
				s.AddClause(newConstr)
			}
		} else {
			s.logger.Printf("No more models exist")
			break
		}
	}
	return models
}

// AddClause adds a new clause to the solver. It returns a non-nil error
// — EmptyClause or TrivialConflict — when the clause by itself already
// renders the formula trivially unsatisfiable at level 0; callers that
// care about that distinction (rather than discovering it only once
// Solve runs) should check it.
func (s *Solver) AddClause(ps []int) error {
	lits := []lit.Lit{}

	for _, p := range ps {
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}
	err, c := newClause(s, lits, false)
	if err != nil {
		s.logger.Print(err)
		return err
	}
	if c != nil {
		s.constrs = append(s.constrs, c)
	}
	return nil
}

// EnsureVars registers variables 1..n with the solver if they aren't
// already known from some clause, so that a variable declared in the
// problem header but never mentioned in a clause still receives a
// (phase-default) value in Answer.
func (s *Solver) EnsureVars(n int) {
	for v := 1; v <= n; v++ {
		s.newVar(lit.NewFromInt(v))
	}
}

// Answer returns the most recently found model as signed DIMACS
// integers, sorted by variable.
func (s *Solver) Answer() []int {
	ps := []int{}

	for p, val := range s.model {
		if val {
			ps = append(ps, p)
		} else {
			ps = append(ps, -p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		i, j = ps[i], ps[j]

		if i < 0 {
			i = -i
		}
		if j < 0 {
			j = -j
		}
		return i < j
	})
	return ps
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return len(s.assigns)
}

// NAssigns returns the number of assignments made.
func (s *Solver) NAssigns() int {
	return len(s.trail)
}

// NLearnts returns the number of learnt clauses.
func (s *Solver) NLearnts() int {
	return len(s.learnts)
}

// NConstrs returns the number of original constraints.
func (s *Solver) NConstrs() int {
	return len(s.constrs)
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NConflicts returns the number of conflicts that have occurred.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// NRestarts returns the number of restarts that have occurred.
func (s *Solver) NRestarts() int {
	return s.restarts
}

// NDecisions returns the number of decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// newVar adds a new variable to the solver, referenced thereafter by its
// internal index, returning the internal literal corresponding to p.
func (s *Solver) newVar(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		s.userVars[p.Var()] = s.NVars()
		s.internalVars[s.NVars()] = p.Var()
		s.reason = append(s.reason, nil)
		s.assigns = append(s.assigns, tribool.Undef)
		s.level = append(s.level, -1)
		s.heur.NewVar()
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// litValue returns p's value.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Index()].Not()
	}
	return s.assigns[p.Index()]
}

// vlogf logs tracing output when config.Verbose is set: frequent in the
// hot propagation/clause path (see clause.go), silent elsewhere.
func (s *Solver) vlogf(format string, args ...interface{}) {
	if s.config.Verbose {
		s.logger.Printf(format, args...)
	}
}

// refreshStaticHeuristic recomputes Jeroslow-Wang scores from the
// current original clause set. It is a no-op for VSIDS: the Heuristic
// interface has no Refresh method, so this relies on an optional
// interface check rather than a type switch on every concrete strategy.
func (s *Solver) refreshStaticHeuristic() {
	r, ok := s.heur.(interface{ Refresh([][]lit.Lit) })
	if !ok {
		return
	}
	clauses := make([][]lit.Lit, len(s.constrs))
	for i, c := range s.constrs {
		clauses[i] = c.lits
	}
	r.Refresh(clauses)
}

// budgetExceeded reports whether the configured conflict or time budget
// has run out. It is only ever consulted between BCP rounds.
func (s *Solver) budgetExceeded() bool {
	if s.conflictBudget > 0 && s.conflicts >= s.conflictBudget {
		return true
	}
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		return true
	}
	return false
}
