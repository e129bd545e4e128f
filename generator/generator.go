// Package generator produces random CNF instances for testing: sample
// num_clauses clauses without replacement from [min_len, max_len]
// distinct variables, sign each literal uniformly at random, then stamp
// the output with a leading satisfiability comment determined by an
// oracle.
//
// The oracle is this module's own solver package, run in-process rather
// than shelled out to an external binary.
package generator

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/cdclsat/solver/config"
	"github.com/cdclsat/solver/encoding"
	"github.com/cdclsat/solver/solver"
)

// Params describes one random instance to generate.
type Params struct {
	NumVars    int
	NumClauses int
	MinLen     int
	MaxLen     int
}

// Generator samples random CNF instances with a private source, so
// concurrent callers (or repeated calls with an explicit seed) don't
// share global math/rand state.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded deterministically by seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate samples one CNF instance per Params, and determines its
// satisfiability by running the package's own solver over it.
func (g *Generator) Generate(p Params) (*encoding.Problem, bool) {
	prob := &encoding.Problem{NVars: p.NumVars}

	for i := 0; i < p.NumClauses; i++ {
		length := p.MinLen
		if p.MaxLen > p.MinLen {
			length += g.rng.Intn(p.MaxLen - p.MinLen + 1)
		}
		prob.Clauses = append(prob.Clauses, g.sampleClause(p.NumVars, length))
	}
	prob.NClauses = len(prob.Clauses)

	sat := g.isSatisfiable(prob)

	return prob, sat
}

// sampleClause samples length distinct variables without replacement
// from [1, numVars] and assigns each a uniformly random sign.
func (g *Generator) sampleClause(numVars, length int) []int {
	if length > numVars {
		length = numVars
	}
	vars := g.rng.Perm(numVars)[:length]
	clause := make([]int, length)

	for i, v := range vars {
		lit := v + 1
		if g.rng.Float64() < 0.5 {
			lit = -lit
		}
		clause[i] = lit
	}
	return clause
}

// isSatisfiable runs the in-process CDCL solver as the oracle. Its
// logger is redirected to io.Discard: this runs once per sample during
// bulk generation, and the oracle's own per-clause tracing has no
// business on the generator's stdout.
func (g *Generator) isSatisfiable(p *encoding.Problem) bool {
	c := config.New()
	c.Logger = log.New(io.Discard, "", 0)
	s := solver.New(c)

	for _, clause := range p.Clauses {
		if err := s.AddClause(clause); err != nil {
			return false
		}
	}
	return s.Solve(nil) == solver.Sat
}

// Write serializes a generated instance: a leading
// "c SATISFIABLE"/"c UNSATISFIABLE" comment, then the standard DIMACS
// body.
func Write(out io.Writer, p *encoding.Problem, sat bool) error {
	label := "UNSATISFIABLE"
	if sat {
		label = "SATISFIABLE"
	}
	if _, err := fmt.Fprintf(out, "c %s\n", label); err != nil {
		return err
	}
	return encoding.Write(out, p)
}
