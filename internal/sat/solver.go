package sat

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/go-arc/arco/internal/csp"
	"github.com/go-arc/arco/pkg/arco"
)

var ErrIncomplete = errors.New("search ended without an answer")

type Solver[V comparable] interface {
	Solve(context.Context) (map[arco.Identifier]V, error)
}

type solver[V comparable] struct {
	g   inter.S
	enc *encoding[V]
}

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// Solve hands the encoded problem to the SAT engine and decodes the
// model into an assignment. Unsatisfiable problems surface as a
// NotSatisfiable error. The engine runs to completion regardless of the
// provided Context.
func (s *solver[V]) Solve(_ context.Context) (map[arco.Identifier]V, error) {
	result, err := s.solve()

	// This likely indicates a bug, so discard whatever
	// return values were produced.
	if derr := s.enc.Error(); derr != nil {
		return nil, derr
	}

	return result, err
}

func (s *solver[V]) solve() (map[arco.Identifier]V, error) {
	s.enc.AddClauses(s.g)

	switch s.g.Solve() {
	case satisfiable:
		return s.enc.Assignment(s.g), nil
	case unsatisfiable:
		return nil, arco.NotSatisfiable(nil)
	}

	return nil, ErrIncomplete
}

func NewSolver[V comparable](options ...Option[V]) (Solver[V], error) {
	s := solver[V]{g: gini.New()}
	for _, option := range append(options, defaults[V]()...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option[V comparable] func(s *solver[V]) error

func WithStore[V comparable](store *csp.Store[V]) Option[V] {
	return func(s *solver[V]) error {
		s.enc = newEncoding(store)
		return nil
	}
}

func defaults[V comparable]() []Option[V] {
	return []Option[V]{
		func(s *solver[V]) error {
			if s.enc == nil {
				store, err := csp.NewStore[V](nil, map[arco.Identifier][]V{}, nil, nil)
				if err != nil {
					return err
				}
				s.enc = newEncoding(store)
			}
			return nil
		},
	}
}
