package input

import (
	"context"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/relation"
)

// Source produces the problem model to be solved
type Source[V comparable] interface {
	GetModel(ctx context.Context) (*Model[V], error)
}

var _ Source[int] = &Model[int]{}

// Model is a mutable problem description: variables with their candidate
// values and the constrained pairs between them. It accumulates
// declarations in order and performs no validation; the solver rejects
// malformed models when it builds its store. A Model is its own Source,
// so it can be handed to the solver directly.
type Model[V comparable] struct {
	variables []arco.Identifier
	domains   map[arco.Identifier][]V
	edges     []arco.Edge
	relations map[arco.Edge]relation.Relation[V]
}

func NewModel[V comparable]() *Model[V] {
	return &Model[V]{
		domains:   map[arco.Identifier][]V{},
		relations: map[arco.Edge]relation.Relation[V]{},
	}
}

// AddVariable declares a variable with its candidate values, in the
// order they should be tried.
func (m *Model[V]) AddVariable(id arco.Identifier, values ...V) {
	m.variables = append(m.variables, id)
	m.domains[id] = values
}

// AddEdge declares a must-differ constraint between two variables.
func (m *Model[V]) AddEdge(a, b arco.Identifier) {
	m.Constrain(a, b, relation.NotEqual[V]())
}

// Constrain declares a constraint between two variables under the given
// relation, evaluated with a drawn from a's domain and b from b's.
// Constraining the same ordered pair again conjoins the relations.
func (m *Model[V]) Constrain(a, b arco.Identifier, rel relation.Relation[V]) {
	e := arco.Edge{A: a, B: b}
	if existing, ok := m.relations[e]; ok {
		m.relations[e] = relation.And(existing, rel)
		return
	}
	m.edges = append(m.edges, e)
	m.relations[e] = rel
}

// AddAllDifferent declares must-differ edges over every pair of the
// given variables.
func (m *Model[V]) AddAllDifferent(ids ...arco.Identifier) {
	for _, e := range arco.AllDifferent(ids...) {
		m.AddEdge(e.A, e.B)
	}
}

// Variables returns the declared variables in declaration order.
func (m *Model[V]) Variables() []arco.Identifier {
	return m.variables
}

// Domains returns the candidate values keyed by variable.
func (m *Model[V]) Domains() map[arco.Identifier][]V {
	return m.domains
}

// Edges returns the declared constraints in declaration order.
func (m *Model[V]) Edges() []arco.Edge {
	return m.edges
}

// Relations returns the declared relations keyed by edge. Edges absent
// from the map carry the default must-differ relation.
func (m *Model[V]) Relations() map[arco.Edge]relation.Relation[V] {
	return m.relations
}

// GetModel makes the model its own Source.
func (m *Model[V]) GetModel(_ context.Context) (*Model[V], error) {
	return m, nil
}
