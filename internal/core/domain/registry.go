package domain

import "sort"

// Registry is the read-only nuclide lookup built once at startup and
// shared by reference. Later rows win on signature collisions, matching
// the source table's revision convention.
type Registry struct {
	nuclides    []*Nuclide
	bySignature map[Signature]*Nuclide
	byAtomic    map[int][]*Nuclide
	isomers     map[Pair][]*Nuclide
}

// NewRegistry indexes a set of nuclide rows. A colliding row replaces
// the earlier one in place, keeping the earlier row's position.
func NewRegistry(nuclides []*Nuclide) *Registry {
	r := &Registry{
		nuclides:    make([]*Nuclide, 0, len(nuclides)),
		bySignature: make(map[Signature]*Nuclide, len(nuclides)),
		byAtomic:    make(map[int][]*Nuclide),
		isomers:     make(map[Pair][]*Nuclide),
	}
	position := make(map[Signature]int, len(nuclides))
	for _, n := range nuclides {
		sig := n.Signature()
		if i, ok := position[sig]; ok {
			r.nuclides[i] = n
			continue
		}
		position[sig] = len(r.nuclides)
		r.nuclides = append(r.nuclides, n)
	}
	for _, n := range r.nuclides {
		r.bySignature[n.Signature()] = n
		r.byAtomic[n.AtomicNumber] = append(r.byAtomic[n.AtomicNumber], n)
		r.isomers[n.Numbers()] = append(r.isomers[n.Numbers()], n)
	}
	return r
}

// Len returns the number of indexed rows.
func (r *Registry) Len() int {
	return len(r.nuclides)
}

// All returns every row in table order.
func (r *Registry) All() []*Nuclide {
	return r.nuclides
}

// Get looks up a nuclide by signature.
func (r *Registry) Get(sig Signature) (*Nuclide, bool) {
	n, ok := r.bySignature[sig]
	return n, ok
}

// ByAtomicNumber returns all isotopes of an element in table order.
func (r *Registry) ByAtomicNumber(z int) []*Nuclide {
	return r.byAtomic[z]
}

// StableByAtomicNumber returns the naturally occurring isotopes of an
// element, ordered by mass number.
func (r *Registry) StableByAtomicNumber(z int) []*Nuclide {
	var out []*Nuclide
	for _, n := range r.byAtomic[z] {
		if n.Stable {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MassNumber < out[j].MassNumber
	})
	return out
}

// IsomerGroup returns every row sharing a (massNumber, atomicNumber)
// pair, ground state first in table order. An empty group means the
// fragment pair has no known nuclide.
func (r *Registry) IsomerGroup(p Pair) []*Nuclide {
	return r.isomers[p]
}
