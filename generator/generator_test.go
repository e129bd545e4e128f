package generator

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateRespectsClauseCount(t *testing.T) {
	g := New(1)

	p, _ := g.Generate(Params{NumVars: 5, NumClauses: 10, MinLen: 2, MaxLen: 3})
	if len(p.Clauses) != 10 {
		t.Fatalf("expected 10 clauses, got %d", len(p.Clauses))
	}
	for _, c := range p.Clauses {
		if len(c) < 2 || len(c) > 3 {
			t.Fatalf("clause length %d out of [2,3]: %v", len(c), c)
		}
	}
}

func TestGenerateNoRepeatedVariableWithinClause(t *testing.T) {
	g := New(42)

	p, _ := g.Generate(Params{NumVars: 8, NumClauses: 20, MinLen: 3, MaxLen: 3})
	for _, c := range p.Clauses {
		seen := map[int]bool{}
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if seen[v] {
				t.Fatalf("variable %d sampled twice within clause %v", v, c)
			}
			seen[v] = true
		}
	}
}

func TestWriteIncludesSatisfiabilityComment(t *testing.T) {
	g := New(7)

	p, sat := g.Generate(Params{NumVars: 3, NumClauses: 1, MinLen: 1, MaxLen: 2})

	var buf bytes.Buffer
	if err := Write(&buf, p, sat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if first != "c SATISFIABLE" && first != "c UNSATISFIABLE" {
		t.Fatalf("unexpected leading comment: %q", first)
	}
}
