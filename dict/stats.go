package dict

import "fmt"

// Stats describes the shape of a Dict.
//
// Stats are intended for diagnostics and tests, not for production
// decisions; fields may change between releases.
type Stats struct {
	// Capacity is the number of buckets.
	Capacity int
	// Count is the number of entries.
	Count int
	// SizeIndex counts the resizes so far. While it is below the
	// length of the prime table it indexes the current prime.
	SizeIndex int
	// EmptyBuckets is the number of buckets with no entries.
	EmptyBuckets int
	// MaxChain is the length of the longest bucket chain.
	MaxChain int
	// LoadFactor is Count / Capacity.
	LoadFactor float64
}

// Stats walks every bucket and reports the table's shape.
// A nil or destroyed Dict reports zero Stats.
func (d *Dict[K, V]) Stats() Stats {
	var s Stats
	if d.check() != nil {
		return s
	}
	s.Capacity = len(d.buckets)
	s.Count = d.count
	s.SizeIndex = d.sizeIndex
	for _, e := range d.buckets {
		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		if n == 0 {
			s.EmptyBuckets++
		}
		s.MaxChain = max(s.MaxChain, n)
	}
	s.LoadFactor = float64(s.Count) / float64(s.Capacity)
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("dict{cap: %d, count: %d, load: %.3f, empty: %d, max chain: %d, size index: %d}",
		s.Capacity, s.Count, s.LoadFactor, s.EmptyBuckets, s.MaxChain, s.SizeIndex)
}
