package solver

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/go-arc/arco/internal/csp"
	"github.com/go-arc/arco/internal/sat"
	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/input"
)

// Solution is returned by the Solver when solving executed successfully.
// A successful execution can still end in an error when the problem
// admits no assignment.
type Solution[V comparable] struct {
	err        error
	assignment map[arco.Identifier]V
	stats      Stats
	domains    map[arco.Identifier][]V
}

// Error returns the resolution error when the problem is unsatisfiable;
// on a solved problem it returns nil.
func (s *Solution[V]) Error() error {
	return s.err
}

// Assignment returns the value chosen for every variable, or nil when
// no assignment exists.
func (s *Solution[V]) Assignment() map[arco.Identifier]V {
	return s.assignment
}

// Value returns the value assigned to the variable, if any.
func (s *Solution[V]) Value(id arco.Identifier) (V, bool) {
	v, ok := s.assignment[id]
	return v, ok
}

// Stats describes the work done to produce the solution.
func (s *Solution[V]) Stats() Stats {
	return s.stats
}

// Domains returns the candidates each variable had left after
// propagation. Note: this is only present if the WithDomainSnapshot
// option was passed to the Solve call that generated the solution.
func (s *Solution[V]) Domains() map[arco.Identifier][]V {
	return s.domains
}

// Stats counts the work done by a Solve call. Calls and Failures are
// zero when the SAT engine produced the assignment, and Removed is zero
// when propagation was disabled.
type Stats struct {
	Calls           int
	Failures        int
	Removed         int
	PropagationTime time.Duration
	SearchTime      time.Duration
	TotalTime       time.Duration
}

type solveOptions struct {
	tracer          arco.Tracer
	propagate       bool
	search          bool
	useSAT          bool
	snapshotDomains bool
}

func (s *solveOptions) apply(options ...Option) *solveOptions {
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

func defaultSolveOptions() *solveOptions {
	return &solveOptions{
		tracer:    arco.DefaultTracer{},
		propagate: true,
		search:    true,
	}
}

type Option func(solveOptions *solveOptions)

// WithTracer routes propagation and search events to t.
func WithTracer(t arco.Tracer) Option {
	return func(solveOptions *solveOptions) {
		solveOptions.tracer = t
	}
}

// WithoutPropagation skips arc consistency and hands the declared
// domains to the search untouched.
func WithoutPropagation() Option {
	return func(solveOptions *solveOptions) {
		solveOptions.propagate = false
	}
}

// WithoutSearch stops after propagation. The solution then carries no
// assignment; combine with WithDomainSnapshot to inspect the pruned
// domains.
func WithoutSearch() Option {
	return func(solveOptions *solveOptions) {
		solveOptions.search = false
	}
}

// WithSATEngine produces the assignment with the SAT engine instead of
// backtracking search.
func WithSATEngine() Option {
	return func(solveOptions *solveOptions) {
		solveOptions.useSAT = true
	}
}

// WithDomainSnapshot records each variable's remaining candidates after
// propagation on the solution.
func WithDomainSnapshot() Option {
	return func(solveOptions *solveOptions) {
		solveOptions.snapshotDomains = true
	}
}

// Solver runs constraint propagation and search over the model produced
// by a Source. Every Solve call builds its own working state from the
// model, so concurrent calls are independent.
type Solver[V comparable] struct {
	source input.Source[V]
}

func New[V comparable](source input.Source[V]) *Solver[V] {
	return &Solver[V]{
		source: source,
	}
}

func (s Solver[V]) Solve(ctx context.Context, options ...Option) (*Solution[V], error) {
	solveOpts := defaultSolveOptions().apply(options...)

	model, err := s.source.GetModel(ctx)
	if err != nil {
		return nil, err
	}

	store, err := csp.NewStore(model.Variables(), model.Domains(), model.Edges(), model.Relations())
	if err != nil {
		return nil, err
	}

	solution := &Solution[V]{}
	started := time.Now()

	if solveOpts.propagate {
		before := domainSize(store)
		ok := store.AC3(solveOpts.tracer)
		solution.stats.PropagationTime = time.Since(started)
		solution.stats.Removed = before - domainSize(store)
		if !ok {
			solution.err = arco.NotSatisfiable(emptied(store))
		}
	}

	if solveOpts.snapshotDomains {
		solution.domains = snapshot(store)
	}

	if solution.err == nil && solveOpts.search {
		searchStarted := time.Now()
		if solveOpts.useSAT {
			if err := s.solveSAT(ctx, store, solution); err != nil {
				return nil, err
			}
		} else {
			if err := s.solveBacktracking(ctx, store, solveOpts.tracer, solution); err != nil {
				return nil, err
			}
		}
		solution.stats.SearchTime = time.Since(searchStarted)
	}

	solution.stats.TotalTime = time.Since(started)
	return solution, nil
}

func (s Solver[V]) solveSAT(ctx context.Context, store *csp.Store[V], solution *Solution[V]) error {
	engine, err := sat.NewSolver(sat.WithStore(store))
	if err != nil {
		return err
	}

	assignment, err := engine.Solve(ctx)
	if err != nil && !errors.As(err, &arco.NotSatisfiable{}) {
		return err
	}

	solution.assignment = assignment
	if err != nil {
		unsatError := arco.NotSatisfiable{}
		errors.As(err, &unsatError)
		solution.err = unsatError
	}
	return nil
}

func (s Solver[V]) solveBacktracking(ctx context.Context, store *csp.Store[V], tracer arco.Tracer, solution *Solution[V]) error {
	assignment, stats, err := store.Search(ctx, tracer)
	if err != nil {
		return err
	}

	solution.assignment = assignment
	solution.stats.Calls = stats.Calls
	solution.stats.Failures = stats.Failures
	if assignment == nil {
		solution.err = arco.NotSatisfiable(nil)
	}
	return nil
}

func domainSize[V comparable](store *csp.Store[V]) int {
	return lo.SumBy(store.Variables(), func(id arco.Identifier) int {
		return store.Domain(id).Len()
	})
}

func emptied[V comparable](store *csp.Store[V]) []arco.Identifier {
	return lo.Filter(store.Variables(), func(id arco.Identifier, _ int) bool {
		return store.Domain(id).Empty()
	})
}

func snapshot[V comparable](store *csp.Store[V]) map[arco.Identifier][]V {
	return lo.SliceToMap(store.Variables(), func(id arco.Identifier) (arco.Identifier, []V) {
		return id, store.Domain(id).Values()
	})
}
