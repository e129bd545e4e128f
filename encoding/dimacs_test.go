package encoding

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	in := strings.NewReader("c comment\np cnf 3 2\n1 2 -3 0\n-1 -2 0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.NVars != 3 || p.NClauses != 2 {
		t.Fatalf("header mismatch: got NVars=%d NClauses=%d", p.NVars, p.NClauses)
	}
	if len(p.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(p.Clauses))
	}
}

func TestParseMultilineClause(t *testing.T) {
	in := strings.NewReader("p cnf 3 1\n1 2\n-3 0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Clauses) != 1 || len(p.Clauses[0]) != 3 {
		t.Fatalf("expected one 3-literal clause, got %v", p.Clauses)
	}
}

func TestParseVariableOutOfRange(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1 3 0\n")

	if _, err := Parse(in); err == nil {
		t.Fatalf("expected a ParseError for out-of-range variable")
	}
}

func TestParseMissingProblemLine(t *testing.T) {
	in := strings.NewReader("1 2 0\n")

	if _, err := Parse(in); err == nil {
		t.Fatalf("expected a ParseError for missing problem line")
	}
}

func TestParseDropsTautology(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1 -1 2 0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Clauses) != 0 {
		t.Fatalf("expected tautological clause to be dropped, got %v", p.Clauses)
	}
}

func TestParseMergesDuplicateLiterals(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1 1 2 0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Clauses) != 1 || len(p.Clauses[0]) != 2 {
		t.Fatalf("expected duplicate literal to be merged, got %v", p.Clauses)
	}
}

func TestParseEmptyClauseIsKept(t *testing.T) {
	in := strings.NewReader("p cnf 1 1\n0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Clauses) != 1 || len(p.Clauses[0]) != 0 {
		t.Fatalf("expected one empty clause, got %v", p.Clauses)
	}
}

func TestRoundTrip(t *testing.T) {
	in := strings.NewReader("p cnf 3 2\n1 2 -3 0\n-1 -2 0\n")

	p, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roundTripped, err := Parse(&buf)
	if err != nil {
		t.Fatalf("unexpected error re-parsing serialized output: %v", err)
	}
	if len(roundTripped.Clauses) != len(p.Clauses) {
		t.Fatalf("round trip changed clause count: got %d, want %d", len(roundTripped.Clauses), len(p.Clauses))
	}
}
