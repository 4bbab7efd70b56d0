package csp

import (
	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/relation"
)

// arc is a directed variable pair. It doubles as the storage key for a
// constraint's compatibility set and as a worklist entry during
// propagation. Each logical edge is stored exactly once, under the
// orientation in which it was first declared.
type arc struct {
	a, b arco.Identifier
}

type valuePair[V comparable] struct {
	a, b V
}

// Store holds a finite-domain binary problem: the declared variables,
// their mutable base domains, and one compatibility set per constrained
// pair. The compatibility sets are closed under value exchange, so a
// constraint admits (x, y) exactly when it admits (y, x); probing either
// key orientation gives the same answer.
type Store[V comparable] struct {
	variables   []arco.Identifier
	domains     map[arco.Identifier]*Domain[V]
	constraints map[arc]map[valuePair[V]]struct{}
	adjacency   map[arco.Identifier][]arco.Identifier
	edges       []arc
}

// NewStore validates the problem declaration and expands each edge's
// relation into an explicit compatibility set over the declared domains.
// The default relation is must-differ. Declaring several edges over the
// same pair conjoins them: a value pair survives only if every declared
// relation admits it.
func NewStore[V comparable](variables []arco.Identifier, domains map[arco.Identifier][]V, edges []arco.Edge, relations map[arco.Edge]relation.Relation[V]) (*Store[V], error) {
	s := &Store[V]{
		variables:   make([]arco.Identifier, 0, len(variables)),
		domains:     make(map[arco.Identifier]*Domain[V], len(variables)),
		constraints: make(map[arc]map[valuePair[V]]struct{}, len(edges)),
		adjacency:   make(map[arco.Identifier][]arco.Identifier, len(variables)),
	}
	for _, id := range variables {
		if _, ok := s.domains[id]; ok {
			return nil, arco.DuplicateVariableError(id)
		}
		values, ok := domains[id]
		if !ok {
			return nil, arco.MissingDomainError(id)
		}
		s.variables = append(s.variables, id)
		s.domains[id] = NewDomain(values)
	}
	for _, e := range edges {
		if _, ok := s.domains[e.A]; !ok {
			return nil, arco.UndeclaredVariableError(e.A)
		}
		if _, ok := s.domains[e.B]; !ok {
			return nil, arco.UndeclaredVariableError(e.B)
		}
		rel := relations[e]
		if rel == nil {
			rel = relation.NotEqual[V]()
		}
		s.addConstraint(e.A, e.B, rel)
	}
	return s, nil
}

// addConstraint merges a relation into the compatibility set of the
// (A, B) pair, creating the set under the declared orientation on first
// sight. Insertion is symmetric: admitting (a, b) also admits (b, a).
func (s *Store[V]) addConstraint(a, b arco.Identifier, rel relation.Relation[V]) {
	key, ok := s.constraintKey(a, b)
	if !ok {
		key = arc{a, b}
		s.edges = append(s.edges, key)
		s.adjacency[a] = append(s.adjacency[a], b)
		s.adjacency[b] = append(s.adjacency[b], a)
	}
	admitted := make(map[valuePair[V]]struct{})
	for _, x := range s.domains[a].Values() {
		for _, y := range s.domains[b].Values() {
			if rel(x, y) {
				admitted[valuePair[V]{x, y}] = struct{}{}
				admitted[valuePair[V]{y, x}] = struct{}{}
			}
		}
	}
	existing, declared := s.constraints[key]
	if !declared {
		s.constraints[key] = admitted
		return
	}
	for p := range existing {
		if _, ok := admitted[p]; !ok {
			delete(existing, p)
		}
	}
}

// constraintKey finds the stored orientation of the pair, if any.
func (s *Store[V]) constraintKey(a, b arco.Identifier) (arc, bool) {
	if _, ok := s.constraints[arc{a, b}]; ok {
		return arc{a, b}, true
	}
	if _, ok := s.constraints[arc{b, a}]; ok {
		return arc{b, a}, true
	}
	return arc{}, false
}

// Variables returns the declared variables in declaration order.
func (s *Store[V]) Variables() []arco.Identifier {
	return s.variables
}

// Edges returns the constrained pairs in the order they were first
// declared, one entry per pair regardless of how many relations were
// declared over it.
func (s *Store[V]) Edges() []arco.Edge {
	edges := make([]arco.Edge, len(s.edges))
	for i, e := range s.edges {
		edges[i] = arco.Edge{A: e.a, B: e.b}
	}
	return edges
}

// Domain returns the live base domain of a variable, or nil when the
// variable was never declared. Propagation shrinks these in place.
func (s *Store[V]) Domain(id arco.Identifier) *Domain[V] {
	return s.domains[id]
}

// Neighbors returns the variables sharing a constraint with id, in the
// order their edges were declared. Each neighbor appears once no matter
// how many relations were declared over the pair.
func (s *Store[V]) Neighbors(id arco.Identifier) []arco.Identifier {
	return s.adjacency[id]
}

// Compatible reports whether assigning a to u and b to v violates no
// constraint between them. An unconstrained pair is always compatible.
func (s *Store[V]) Compatible(u, v arco.Identifier, a, b V) bool {
	key, ok := s.constraintKey(u, v)
	if !ok {
		return true
	}
	set := s.constraints[key]
	if key.a == u {
		_, ok = set[valuePair[V]{a, b}]
	} else {
		_, ok = set[valuePair[V]{b, a}]
	}
	return ok
}

// Revise makes xi arc consistent with respect to xj, removing from xi's
// base domain every value with no support left in xj's domain. It
// reports whether anything was removed. An unconstrained pair never
// changes anything.
func (s *Store[V]) Revise(xi, xj arco.Identifier) bool {
	return s.revise(xi, xj) > 0
}

func (s *Store[V]) revise(xi, xj arco.Identifier) int {
	key, ok := s.constraintKey(xi, xj)
	if !ok {
		return 0
	}
	set := s.constraints[key]
	di, dj := s.domains[xi], s.domains[xj]
	var unsupported []V
	for _, x := range di.Values() {
		supported := false
		for _, y := range dj.Values() {
			if _, ok := set[valuePair[V]{x, y}]; ok {
				supported = true
				break
			}
		}
		if !supported {
			unsupported = append(unsupported, x)
		}
	}
	for _, x := range unsupported {
		di.Remove(x)
	}
	return len(unsupported)
}
