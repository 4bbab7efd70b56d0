package csp

// Domain is the mutable candidate set of a single variable. The values
// keep their declaration order, and removal preserves the relative order
// of the survivors, so iteration order is deterministic for the lifetime
// of the store. A domain only ever shrinks: it is always a subset of the
// values it was declared with.
type Domain[V comparable] struct {
	declared []V
	present  map[V]struct{}
}

// NewDomain builds a domain from the declared candidate values.
// Duplicates collapse onto their first occurrence.
func NewDomain[V comparable](values []V) *Domain[V] {
	d := &Domain[V]{
		declared: make([]V, 0, len(values)),
		present:  make(map[V]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := d.present[v]; ok {
			continue
		}
		d.declared = append(d.declared, v)
		d.present[v] = struct{}{}
	}
	return d
}

func (d *Domain[V]) Len() int {
	return len(d.present)
}

func (d *Domain[V]) Empty() bool {
	return len(d.present) == 0
}

func (d *Domain[V]) Has(v V) bool {
	_, ok := d.present[v]
	return ok
}

// Remove deletes v from the domain and reports whether it was present.
func (d *Domain[V]) Remove(v V) bool {
	if _, ok := d.present[v]; !ok {
		return false
	}
	delete(d.present, v)
	return true
}

// Values returns the current candidates in declaration order. The slice
// is freshly allocated; mutating the domain does not invalidate it.
func (d *Domain[V]) Values() []V {
	values := make([]V, 0, len(d.present))
	for _, v := range d.declared {
		if _, ok := d.present[v]; ok {
			values = append(values, v)
		}
	}
	return values
}

// Clone returns an independent copy sharing the immutable declaration
// list. Search takes one clone per run so that tentative state never
// leaks back into the store's base domains.
func (d *Domain[V]) Clone() *Domain[V] {
	present := make(map[V]struct{}, len(d.present))
	for v := range d.present {
		present[v] = struct{}{}
	}
	return &Domain[V]{declared: d.declared, present: present}
}
