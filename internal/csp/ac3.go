package csp

import (
	"github.com/go-arc/arco/pkg/arco"
)

// AC3 enforces arc consistency over the base domains, in place. Every
// directed arc of every declared edge is revised until no revision
// changes anything. It returns false as soon as some domain empties,
// which proves the problem unsatisfiable; true means every remaining
// value has support on every constraint. Running AC3 again on an
// already consistent store removes nothing.
func (s *Store[V]) AC3(tracer arco.Tracer) bool {
	if tracer == nil {
		tracer = arco.DefaultTracer{}
	}
	worklist := make([]arc, 0, 2*len(s.edges))
	for _, e := range s.edges {
		worklist = append(worklist, arc{e.a, e.b}, arc{e.b, e.a})
	}
	for len(worklist) > 0 {
		a := worklist[0]
		worklist = worklist[1:]
		removed := s.revise(a.a, a.b)
		if removed == 0 {
			continue
		}
		di := s.domains[a.a]
		tracer.Pruned(a.a, removed, di.Len())
		if di.Empty() {
			return false
		}
		for _, k := range s.adjacency[a.a] {
			if k == a.b {
				continue
			}
			worklist = append(worklist, arc{k, a.a})
		}
	}
	return true
}
