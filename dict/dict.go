// Package dict implements a dictionary: a hash table that resolves
// collisions by separate chaining.
//
// Each bucket of the table is the head of a singly linked chain of
// entries. New entries are linked at the head of their chain. When an
// insertion finds the table more than three quarters full, the bucket
// array grows to the next size in a fixed table of primes and every
// entry is relinked, never copied, into its new chain. Once the prime
// table runs out, the table grows to ten times the number of entries.
// The table never shrinks.
//
// Keys are placed by a caller-supplied hash function and matched by a
// caller-supplied comparator. The two must agree: keys that compare
// equal must hash identically, otherwise they land in different chains
// and are treated as distinct. See [NewIdentity] for a table that hashes
// the key's address rather than its contents.
//
// A Dict is not safe for concurrent use.
package dict

import (
	"cmp"
	"iter"
)

// entry is an association in a bucket chain.
// It owns the rest of the chain through next.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Dict is a hash-table-based mapping from keys K to values V.
//
// The zero Dict is not usable; create one with [New], [NewFunc] or
// [NewIdentity].
type Dict[K, V any] struct {
	buckets   []*entry[K, V]
	count     int
	sizeIndex int
	sizes     []int

	hash    func(K) uint64
	compare func(a, b K) int
	alloc   Allocator

	destroyed bool
}

// New returns a new empty Dict for ordered keys. Keys are compared
// with [cmp.Compare] and hashed by content. As with cmp.Compare, all
// floating-point NaN keys are the same key.
func New[K cmp.Ordered, V any](opts ...Option) (*Dict[K, V], error) {
	return newDict[K, V](orderedHash[K](), cmp.Compare[K], opts)
}

// NewFunc returns a new empty Dict that places keys with hash and
// matches them with compare. compare must return zero for equal keys;
// only equality is used, never the ordering.
func NewFunc[K, V any](hash func(K) uint64, compare func(a, b K) int, opts ...Option) (*Dict[K, V], error) {
	if hash == nil {
		return nil, errorf(ErrInvalidArgument, "nil hash function")
	}
	if compare == nil {
		return nil, errorf(ErrInvalidArgument, "nil comparator")
	}
	return newDict[K, V](hash, compare, opts)
}

// NewIdentity returns a new empty Dict keyed by pointers, where each
// key is placed by its address (see [AddressHash]) rather than by the
// value it points to.
//
// Lookups must therefore use the same pointer that was used to insert
// the key. Two pointers to equal values are normally placed in
// different buckets and are then stored as different keys, even when
// compare reports them equal. If compare is nil, keys are equal only
// when they are the same pointer.
func NewIdentity[T, V any](compare func(a, b *T) int, opts ...Option) (*Dict[*T, V], error) {
	if compare == nil {
		compare = compareAddress[T]
	}
	return newDict[*T, V](AddressHash[T], compare, opts)
}

func newDict[K, V any](hash func(K) uint64, compare func(a, b K) int, opts []Option) (*Dict[K, V], error) {
	cfg := config{
		alloc: DefaultAllocator,
	}
	for _, o := range opts {
		o(&cfg)
	}
	d := &Dict[K, V]{
		sizes:   primes,
		hash:    hash,
		compare: compare,
		alloc:   cfg.alloc,
	}
	n := d.sizes[0]
	if err := d.alloc.Buckets(n); err != nil {
		return nil, allocFailure("buckets", n, err)
	}
	d.buckets = make([]*entry[K, V], n)
	return d, nil
}

// Len returns the number of entries in the dictionary.
func (d *Dict[K, V]) Len() int {
	if d.check() != nil {
		return 0
	}
	return d.count
}

// Cap returns the number of buckets.
func (d *Dict[K, V]) Cap() int {
	if d.check() != nil {
		return 0
	}
	return len(d.buckets)
}

func (d *Dict[K, V]) index(key K) int {
	return int(d.hash(key) % uint64(len(d.buckets)))
}

// find returns the entry holding a key equal to key, or nil.
func (d *Dict[K, V]) find(key K) *entry[K, V] {
	for e := d.buckets[d.index(key)]; e != nil; e = e.next {
		if d.compare(e.key, key) == 0 {
			return e
		}
	}
	return nil
}

// Insert associates value with key.
//
// If an equal key is already present, both its stored key and its
// value are replaced and the length is unchanged. If the table must
// grow first and cannot, Insert returns an error matching [ErrResize]
// and the table is left exactly as it was. If the table grows but the
// new entry is then refused by the allocator, Insert returns an error
// matching [ErrAllocation]; the key is not added and the table keeps
// its larger capacity.
func (d *Dict[K, V]) Insert(key K, value V) error {
	if err := d.check(); err != nil {
		return err
	}
	if 4*d.count > 3*len(d.buckets) {
		if err := d.resize(); err != nil {
			return err
		}
	}
	i := d.index(key)
	for e := d.buckets[i]; e != nil; e = e.next {
		if d.compare(e.key, key) == 0 {
			e.key = key
			e.value = value
			return nil
		}
	}
	if err := d.alloc.Entry(); err != nil {
		return allocFailure("entry", 1, err)
	}
	d.buckets[i] = &entry[K, V]{
		key:   key,
		value: value,
		next:  d.buckets[i],
	}
	d.count++
	return nil
}

// ContainsKey reports whether a key equal to key is present.
func (d *Dict[K, V]) ContainsKey(key K) bool {
	if d.check() != nil {
		return false
	}
	return d.find(key) != nil
}

// Get returns the value associated with key.
// It returns [ErrNotFound] if there is none.
func (d *Dict[K, V]) Get(key K) (V, error) {
	if err := d.check(); err != nil {
		return *new(V), err
	}
	if e := d.find(key); e != nil {
		return e.value, nil
	}
	return *new(V), ErrNotFound
}

// Remove deletes the entry for key.
// It returns [ErrNotFound] if there is none.
// Removing never shrinks the bucket array.
func (d *Dict[K, V]) Remove(key K) error {
	if err := d.check(); err != nil {
		return err
	}
	for p := &d.buckets[d.index(key)]; *p != nil; p = &(*p).next {
		if d.compare((*p).key, key) == 0 {
			*p = (*p).next
			d.count--
			d.alloc.Release(0, 1)
			return nil
		}
	}
	return ErrNotFound
}

// Destroy releases every entry and the bucket array back to the
// allocator. After Destroy every method reports [ErrDestroyed] or
// behaves as on an empty dictionary; calling Destroy again returns
// [ErrDestroyed].
func (d *Dict[K, V]) Destroy() error {
	if err := d.check(); err != nil {
		return err
	}
	clear(d.buckets)
	d.alloc.Release(len(d.buckets), d.count)
	d.buckets = nil
	d.count = 0
	d.destroyed = true
	return nil
}

// check returns a non-nil error if d cannot be used.
func (d *Dict[K, V]) check() error {
	switch {
	case d == nil:
		return errorf(ErrInvalidArgument, "nil *Dict")
	case d.destroyed:
		return ErrDestroyed
	case d.buckets == nil:
		return errorf(ErrInvalidArgument, "uninitialized Dict")
	}
	return nil
}

// All returns an iterator over (key, value) pairs in unspecified order.
//
// The dictionary must not be modified while iterating, except that
// the value of the entry being yielded may be replaced with Insert.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if d.check() != nil {
			return
		}
		for _, e := range d.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over keys in unspecified order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in unspecified order.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}
