// Package encoding reads and writes the DIMACS CNF text format: a header
// line `p cnf N M`, `c` comment lines, and clauses given as
// whitespace-separated signed integers terminated by `0`, possibly
// spanning multiple lines.
package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Problem is a parsed DIMACS instance: the declared variable/clause
// counts from the header, and the clauses themselves as signed
// DIMACS-style integers (duplicate literals merged, tautologies dropped).
type Problem struct {
	NVars    int
	NClauses int
	Clauses  [][]int
}

// ParseError reports a malformed DIMACS input line. It is fatal: no
// search is performed.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs parse error at line %d: %s", e.Line, e.Reason)
}

// Parse reads a DIMACS CNF instance from in. Variables outside [1,N] are
// a ParseError. Duplicate literals within a clause are merged; a clause
// containing both a literal and its negation is a tautology and is
// dropped.
func Parse(in io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(in)
	p := &Problem{}
	headerSeen := false
	lineNo := 0
	pending := []int{}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "c":
			continue
		case "p":
			if headerSeen {
				return nil, &ParseError{Line: lineNo, Reason: "duplicate problem line"}
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, &ParseError{Line: lineNo, Reason: "malformed problem line, want \"p cnf N M\""}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Reason: "non-integer variable count"}
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Reason: "non-integer clause count"}
			}
			p.NVars, p.NClauses = n, m
			headerSeen = true
		default:
			if !headerSeen {
				return nil, &ParseError{Line: lineNo, Reason: "clause data before problem line"}
			}
			for _, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("non-integer literal %q", f)}
				}
				if v == 0 {
					clause, err := finalizeClause(pending)
					if err != nil {
						return nil, err
					}
					if clause != nil {
						p.Clauses = append(p.Clauses, clause)
					}
					pending = nil
					continue
				}
				av := v
				if av < 0 {
					av = -av
				}
				if av > p.NVars {
					return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("variable %d outside declared range [1,%d]", av, p.NVars)}
				}
				pending = append(pending, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, &ParseError{Line: lineNo, Reason: "missing problem line"}
	}
	if len(pending) > 0 {
		return nil, &ParseError{Line: lineNo, Reason: "clause not terminated by 0"}
	}
	return p, nil
}

// finalizeClause merges duplicate literals and drops tautologies.
// Returns a nil clause (not an error) when the clause was a tautology
// and should be silently discarded.
func finalizeClause(lits []int) ([]int, error) {
	if len(lits) == 0 {
		return []int{}, nil
	}
	deduped := lo.Uniq(lits)

	for _, l := range deduped {
		if lo.Contains(deduped, -l) {
			return nil, nil
		}
	}
	return deduped, nil
}

// Write serializes p back to DIMACS text (modulo clause/literal
// ordering, a round trip through Parse/Write is value-preserving).
func Write(out io.Writer, p *Problem) error {
	w := bufio.NewWriter(out)

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", p.NVars, len(p.Clauses)); err != nil {
		return err
	}
	for _, c := range p.Clauses {
		strs := make([]string, 0, len(c)+1)
		for _, lit := range c {
			strs = append(strs, strconv.Itoa(lit))
		}
		strs = append(strs, "0")

		if _, err := fmt.Fprintln(w, strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return w.Flush()
}
