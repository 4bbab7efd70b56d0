package sat

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/go-arc/arco/internal/csp"
	"github.com/go-arc/arco/pkg/arco"
)

type inconsistentEncoding []error

func (inconsistentEncoding) Error() string {
	return "internal solver failure"
}

// encoding performs translation between a finite-domain problem and the
// boolean formula handed to the SAT engine. Each (variable, candidate)
// pair over the current domains owns one positive literal; a model of
// the formula selects exactly one candidate per variable.
type encoding[V comparable] struct {
	store  *csp.Store[V]
	order  []arco.Identifier
	values map[arco.Identifier][]V
	base   map[arco.Identifier]int
	errs   inconsistentEncoding
}

// newEncoding snapshots the store's current domains and numbers the
// literals. Propagating before encoding therefore shrinks the formula.
func newEncoding[V comparable](store *csp.Store[V]) *encoding[V] {
	e := &encoding[V]{
		store:  store,
		order:  store.Variables(),
		values: make(map[arco.Identifier][]V, len(store.Variables())),
		base:   make(map[arco.Identifier]int, len(store.Variables())),
	}
	next := 0
	for _, id := range e.order {
		e.values[id] = store.Domain(id).Values()
		e.base[id] = next
		next += len(e.values[id])
	}
	return e
}

// LitOf returns the literal standing for "id takes its i-th candidate".
func (e *encoding[V]) LitOf(id arco.Identifier, i int) z.Lit {
	return z.Var(e.base[id] + i + 1).Pos()
}

// AddClauses teaches the whole problem to the solver g: every variable
// takes at least one of its candidates, no variable takes two, and no
// constrained pair takes two incompatible values. A variable with an
// empty domain contributes an empty clause, which makes the formula
// trivially unsatisfiable.
func (e *encoding[V]) AddClauses(g inter.S) {
	for _, id := range e.order {
		for i := range e.values[id] {
			g.Add(e.LitOf(id, i))
		}
		g.Add(0)
	}
	for _, id := range e.order {
		for i := range e.values[id] {
			a := e.LitOf(id, i)
			for j := i + 1; j < len(e.values[id]); j++ {
				g.Add(a.Not())
				g.Add(e.LitOf(id, j).Not())
				g.Add(0)
			}
		}
	}
	for _, edge := range e.store.Edges() {
		for i, x := range e.values[edge.A] {
			for j, y := range e.values[edge.B] {
				if e.store.Compatible(edge.A, edge.B, x, y) {
					continue
				}
				g.Add(e.LitOf(edge.A, i).Not())
				g.Add(e.LitOf(edge.B, j).Not())
				g.Add(0)
			}
		}
	}
}

// Assignment reads a satisfying model back out of the solver. Exactly
// one candidate literal per variable is true in any model of the
// formula, so anything else indicates a defect in the encoding and is
// recorded rather than returned.
func (e *encoding[V]) Assignment(g inter.S) map[arco.Identifier]V {
	assignment := make(map[arco.Identifier]V, len(e.order))
	for _, id := range e.order {
		found := false
		for i, v := range e.values[id] {
			if g.Value(e.LitOf(id, i)) {
				assignment[id] = v
				found = true
				break
			}
		}
		if !found {
			e.errs = append(e.errs, fmt.Errorf("no candidate selected for %s", id))
		}
	}
	return assignment
}

// Error returns a single error aggregating everything that went wrong
// during the encoding's lifetime, or nil. A non-nil value indicates a
// bug in the encoding, not an unsatisfiable problem.
func (e *encoding[V]) Error() error {
	if len(e.errs) == 0 {
		return nil
	}
	s := make([]string, len(e.errs))
	for i, err := range e.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}
