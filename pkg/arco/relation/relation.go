package relation

// Relation reports whether a pair of values is compatible under a binary
// constraint. Relations are evaluated once per value pair at construction
// time, when the store expands each edge into its compatibility set; they
// are never consulted during propagation or search.
type Relation[V comparable] func(a, b V) bool

// NotEqual returns the default edge relation: two values are compatible
// exactly when they differ.
func NotEqual[V comparable]() Relation[V] {
	return func(a, b V) bool {
		return a != b
	}
}

// Equal returns a relation under which two values are compatible exactly
// when they are the same.
func Equal[V comparable]() Relation[V] {
	return func(a, b V) bool {
		return a == b
	}
}

// Pair is an ordered value pair for use with Allowed.
type Pair[V comparable] struct {
	A, B V
}

// Allowed returns a relation that permits exactly the listed pairs.
// A pair (a, b) admits a for the edge's first declared variable and b for
// the second. Constraints are logically symmetric: the store closes the
// resulting compatibility set under value exchange, so listing (a, b)
// also admits (b, a).
func Allowed[V comparable](pairs ...Pair[V]) Relation[V] {
	allowed := make(map[Pair[V]]struct{}, len(pairs))
	for _, p := range pairs {
		allowed[p] = struct{}{}
	}
	return func(a, b V) bool {
		_, ok := allowed[Pair[V]{A: a, B: b}]
		return ok
	}
}

// And returns the conjunction of the given relations. With no arguments
// every pair is compatible.
func And[V comparable](relations ...Relation[V]) Relation[V] {
	return func(a, b V) bool {
		for _, rel := range relations {
			if !rel(a, b) {
				return false
			}
		}
		return true
	}
}
