package solver

import "fmt"

// EmptyClause is returned when the original formula contains an empty
// clause, making it trivially unsatisfiable.
type EmptyClause struct{}

func (e *EmptyClause) Error() string {
	return "formula contains an empty clause: trivially unsatisfiable"
}

// TrivialConflict is returned when a unit clause and its negation both
// appear at level 0.
type TrivialConflict struct {
	Var int
}

func (e *TrivialConflict) Error() string {
	return fmt.Sprintf("unit clause and its negation both assert variable %d at level 0", e.Var)
}

// InternalInvariantViolation signals a bug: a watch-list or trail
// invariant was breached. It is raised via panic
// (invariantViolation) rather than returned, since it indicates the
// solver's own bookkeeping is inconsistent and continuing would only
// produce nonsense results.
type InternalInvariantViolation struct {
	Reason string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violation: %s", e.Reason)
}

// invariantViolation panics with an InternalInvariantViolation carrying
// diagnostic context. Only the CLI boundary recovers from it.
func invariantViolation(reason string) {
	panic(&InternalInvariantViolation{Reason: reason})
}
