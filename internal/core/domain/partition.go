package domain

import "sort"

// Pair is a (massNumber, atomicNumber) total carried by a nucleus or a
// candidate fragment.
type Pair struct {
	// A is the mass number.
	A int

	// Z is the atomic number.
	Z int
}

// Add returns the component-wise sum.
func (p Pair) Add(o Pair) Pair {
	return Pair{A: p.A + o.A, Z: p.Z + o.Z}
}

// Scale returns the pair multiplied by a count.
func (p Pair) Scale(n int) Pair {
	return Pair{A: p.A * n, Z: p.Z * n}
}

// Less orders pairs canonically by mass number, then atomic number.
func (p Pair) Less(o Pair) bool {
	if p.A != o.A {
		return p.A < o.A
	}
	return p.Z < o.Z
}

// Partition is a canonically sorted set of 1-3 fragment pairs that sum
// to an enumeration total.
type Partition []Pair

// Vectors3 enumerates the ordered compositions of n into exactly three
// non-negative integers, in the fixed order (j-k, k, i) for i in [0, n)
// and k in [0, n-i) with j = n-i. It yields n(n+1)/2 triples, each
// summing to n, and nothing for n = 0.
func Vectors3(n int) [][3]int {
	out := make([][3]int, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		j := n - i
		for k := 0; k < j; k++ {
			out = append(out, [3]int{j - k, k, i})
		}
	}
	return out
}

// Partitions enumerates every distinct way to split a (mass, charge)
// total into up to three fragment pairs. Mass and charge compositions
// are generated independently and paired positionally; combinations
// where any pair has more protons than nucleons are rejected, (0,0)
// pairs are dropped, and the surviving pairs are sorted canonically and
// deduplicated across the whole cross product, preserving first-seen
// order.
func Partitions(total Pair) []Partition {
	seen := make(map[[3]Pair]struct{})
	var out []Partition
	for _, masses := range Vectors3(total.A) {
		for _, protons := range Vectors3(total.Z) {
			partition, ok := pairUp(masses, protons)
			if !ok {
				continue
			}
			key := partitionKey(partition)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, partition)
		}
	}
	return out
}

func pairUp(masses, protons [3]int) (Partition, bool) {
	partition := make(Partition, 0, 3)
	for i, m := range masses {
		p := protons[i]
		if m < p {
			return nil, false
		}
		pair := Pair{A: m, Z: p}
		if pair == (Pair{}) {
			continue
		}
		partition = append(partition, pair)
	}
	sort.Slice(partition, func(i, j int) bool {
		return partition[i].Less(partition[j])
	})
	return partition, true
}

// partitionKey builds a comparable dedup key. A zero Pair never appears
// in a partition, so zero padding is unambiguous.
func partitionKey(p Partition) [3]Pair {
	var key [3]Pair
	copy(key[:], p)
	return key
}
