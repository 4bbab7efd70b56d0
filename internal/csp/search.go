package csp

import (
	"context"

	"github.com/go-arc/arco/pkg/arco"
)

// SearchStats counts the work done by a single search run.
type SearchStats struct {
	// Calls is the number of search steps taken, the initial one included.
	Calls int

	// Failures is the number of dead ends: steps that exhausted every
	// candidate of their variable without finding a solution below.
	Failures int
}

// Search runs depth-first backtracking over a private copy of the
// current base domains and returns the first complete assignment found,
// in declaration order for both variables and values. A nil assignment
// means the problem has no solution. The returned error is non-nil only
// when ctx is cancelled, in which case the search is abandoned
// mid-branch and the assignment is nil.
//
// The store itself is not written to: repeated searches start from the
// same (possibly propagated) base domains, and concurrent searches on
// one store are safe.
func (s *Store[V]) Search(ctx context.Context, tracer arco.Tracer) (map[arco.Identifier]V, SearchStats, error) {
	if tracer == nil {
		tracer = arco.DefaultTracer{}
	}
	b := &searcher[V]{
		store:      s,
		domains:    make(map[arco.Identifier]*Domain[V], len(s.domains)),
		assignment: make(map[arco.Identifier]V, len(s.variables)),
		tracer:     tracer,
	}
	for id, d := range s.domains {
		b.domains[id] = d.Clone()
	}
	assignment, err := b.backtrack(ctx, 0)
	if err != nil {
		return nil, b.stats, err
	}
	return assignment, b.stats, nil
}

type searcher[V comparable] struct {
	store      *Store[V]
	domains    map[arco.Identifier]*Domain[V]
	assignment map[arco.Identifier]V
	tracer     arco.Tracer
	stats      SearchStats
}

func (b *searcher[V]) backtrack(ctx context.Context, depth int) (map[arco.Identifier]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.stats.Calls++
	if len(b.assignment) == len(b.store.variables) {
		return b.assignment, nil
	}
	id := b.nextUnassigned()
	for _, v := range b.domains[id].Values() {
		if !b.consistent(id, v) {
			continue
		}
		b.assignment[id] = v
		b.tracer.Assigned(id, v, depth)
		solution, err := b.backtrack(ctx, depth+1)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
		delete(b.assignment, id)
		b.tracer.Backtracked(id, v, depth)
	}
	b.stats.Failures++
	return nil, nil
}

// nextUnassigned picks the first declared variable without a value.
// Calling it with a complete assignment is a bug in the searcher, not a
// solvable condition, so it panics.
func (b *searcher[V]) nextUnassigned() arco.Identifier {
	for _, id := range b.store.variables {
		if _, ok := b.assignment[id]; !ok {
			return id
		}
	}
	panic("csp: no unassigned variable remains")
}

// consistent reports whether value v on id is compatible with every
// already assigned neighbor. Candidates are drawn from the searcher's
// domain copy, so membership in the current domain holds by
// construction.
func (b *searcher[V]) consistent(id arco.Identifier, v V) bool {
	for _, n := range b.store.adjacency[id] {
		nv, assigned := b.assignment[n]
		if !assigned {
			continue
		}
		if !b.store.Compatible(id, n, v, nv) {
			return false
		}
	}
	return true
}
