package dict

import (
	"fmt"
	"math"
)

// An Allocator accounts for the memory a Dict holds.
//
// A Dict asks the allocator before it creates a bucket array or an
// entry, and tells it when it lets go of them. A refusal is reported
// to the caller as an error matching [ErrAllocation]; when the refused
// allocation is the bucket array of a resize, the dictionary is left
// unchanged.
type Allocator interface {
	// Buckets reserves a bucket array of n heads.
	Buckets(n int) error

	// Entry reserves one entry.
	Entry() error

	// Release returns the given number of bucket heads and entries.
	Release(buckets, entries int)
}

// maxBuckets is the largest bucket array DefaultAllocator hands out.
const maxBuckets = math.MaxInt32

// DefaultAllocator is used by dictionaries created without
// [WithAllocator]. It refuses only bucket arrays of unreasonable size.
var DefaultAllocator Allocator = defaultAllocator{}

type defaultAllocator struct{}

func (defaultAllocator) Buckets(n int) error {
	if n <= 0 || n > maxBuckets {
		return fmt.Errorf("%w: bucket count %d out of range", ErrAllocation, n)
	}
	return nil
}

func (defaultAllocator) Entry() error {
	return nil
}

func (defaultAllocator) Release(buckets, entries int) {}

// Limit is an Allocator that enforces a budget. A zero maximum means
// no limit. A Limit may be shared by several dictionaries, which then
// share its budget; it is not safe for concurrent use.
//
// During a resize the old and new bucket arrays are both reserved,
// so MaxBuckets must leave room for both.
type Limit struct {
	MaxBuckets int
	MaxEntries int

	buckets int
	entries int
}

// NewLimit returns a Limit allowing at most maxBuckets bucket heads
// and maxEntries entries in use at once.
func NewLimit(maxBuckets, maxEntries int) *Limit {
	return &Limit{
		MaxBuckets: maxBuckets,
		MaxEntries: maxEntries,
	}
}

// Buckets implements [Allocator.Buckets].
func (l *Limit) Buckets(n int) error {
	if err := (defaultAllocator{}).Buckets(n); err != nil {
		return err
	}
	if l.MaxBuckets > 0 && l.buckets+n > l.MaxBuckets {
		return fmt.Errorf("%w: %d bucket heads requested with %d of %d in use", ErrAllocation, n, l.buckets, l.MaxBuckets)
	}
	l.buckets += n
	return nil
}

// Entry implements [Allocator.Entry].
func (l *Limit) Entry() error {
	if l.MaxEntries > 0 && l.entries >= l.MaxEntries {
		return fmt.Errorf("%w: entry limit %d reached", ErrAllocation, l.MaxEntries)
	}
	l.entries++
	return nil
}

// Release implements [Allocator.Release].
func (l *Limit) Release(buckets, entries int) {
	l.buckets -= buckets
	l.entries -= entries
}

// InUse returns the number of bucket heads and entries currently
// reserved.
func (l *Limit) InUse() (buckets, entries int) {
	return l.buckets, l.entries
}
