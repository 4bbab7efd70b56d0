package arco

import (
	"fmt"
	"strings"
)

// NotSatisfiable is the outcome reported when a problem has no solution:
// either propagation emptied a variable's domain, or search exhausted
// every branch. It lists the variables whose domains were emptied, when
// that is known; an exhausted search carries no culprits.
type NotSatisfiable []Identifier

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, id := range e {
		s[i] = id.String()
	}
	return fmt.Sprintf("%s: empty domain for %s", msg, strings.Join(s, ", "))
}

// Identifier values uniquely identify particular variables within
// a single problem.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// IdentifierFromString returns an Identifier based on a provided
// string.
func IdentifierFromString(s string) Identifier {
	return Identifier(s)
}

// Edge declares that a binary constraint holds between two variables.
// The pair is unordered: declaring (A, B) and declaring (B, A) describe
// the same constraint. The declared order is only used as the storage
// key for the constraint's compatibility set.
type Edge struct {
	A, B Identifier
}

func (e Edge) String() string {
	return fmt.Sprintf("(%s, %s)", e.A, e.B)
}

// AllDifferent returns the edges interconnecting every pair of the given
// variables, covering each 2-combination exactly once and never pairing a
// variable with itself. It is a pure helper for callers building
// "all different" groups (rows, columns, boxes, adjacent regions).
func AllDifferent(ids ...Identifier) []Edge {
	var edges []Edge
	for i := 0; i < len(ids)-1; i++ {
		for j := i + 1; j < len(ids); j++ {
			edges = append(edges, Edge{A: ids[i], B: ids[j]})
		}
	}
	return edges
}

// DuplicateVariableError indicates that the same variable was declared
// more than once in a problem's variable list.
type DuplicateVariableError Identifier

func (e DuplicateVariableError) Error() string {
	return fmt.Sprintf("duplicate variable %q in input", Identifier(e))
}

// UndeclaredVariableError indicates that an edge references a variable
// absent from the declared variable list.
type UndeclaredVariableError Identifier

func (e UndeclaredVariableError) Error() string {
	return fmt.Sprintf("edge references undeclared variable %q", Identifier(e))
}

// MissingDomainError indicates that a declared variable has no domain
// entry.
type MissingDomainError Identifier

func (e MissingDomainError) Error() string {
	return fmt.Sprintf("no domain declared for variable %q", Identifier(e))
}
