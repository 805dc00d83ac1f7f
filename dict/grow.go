package dict

import (
	"fmt"
	"math"
)

// primes holds the preferred bucket counts, in increasing order.
// See http://planetmath.org/goodhashtableprimes.
var primes = []int{
	193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157,
	98317, 196613, 393241, 786433, 1572869, 3145739,
	6291469, 12582917, 25165843, 50331653, 100663319,
	201326611, 402653189, 805306457, 1610612741,
}

// nextCapacity returns the bucket count for the next resize.
func (d *Dict[K, V]) nextCapacity() (int, error) {
	next := d.sizeIndex + 1
	if next < len(d.sizes) {
		return d.sizes[next], nil
	}
	// Out of primes: grow in proportion to the contents.
	if d.count > math.MaxInt/10 {
		return 0, fmt.Errorf("%w: %d entries is too many to grow", ErrAllocation, d.count)
	}
	return d.count * 10, nil
}

// resize moves every entry into a larger bucket array.
// On failure nothing has been changed.
func (d *Dict[K, V]) resize() error {
	n, err := d.nextCapacity()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResize, err)
	}
	if err := d.alloc.Buckets(n); err != nil {
		return fmt.Errorf("%w: %w", ErrResize, allocFailure("buckets", n, err))
	}
	buckets := make([]*entry[K, V], n)
	for _, e := range d.buckets {
		for e != nil {
			next := e.next
			i := d.hash(e.key) % uint64(n)
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}
	d.alloc.Release(len(d.buckets), 0)
	d.buckets = buckets
	d.sizeIndex++
	return nil
}
