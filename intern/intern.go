// Package intern provides canonicalization of values under a
// caller-defined equivalence relation.
//
// A [Pool] holds one copy of each distinct value of type T. Calling
// [Pool.Make] with two equivalent values returns the same pointer.
// Interned pointers therefore make good keys for
// [github.com/hashadt/generic/dict.NewIdentity]: equal values share an
// address, so they hash to the same bucket.
//
// NOTE this package assumes that T values are treated as immutable.
// That is, after calling [Pool.Make] the value must not change
// through the returned pointer.
package intern

import (
	"cmp"
	"errors"

	"github.com/hashadt/generic/dict"
)

// Pool holds a set of unique values of type T.
// It is not safe for concurrent use.
type Pool[T any] struct {
	values *dict.Dict[T, *T]
}

// New returns a new pool of ordered values, compared with ==.
func New[T cmp.Ordered](opts ...dict.Option) (*Pool[T], error) {
	d, err := dict.New[T, *T](opts...)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{values: d}, nil
}

// NewFunc returns a new pool that uses hash and compare to decide
// whether values are the same. They must be consistent: values that
// compare equal must hash identically.
func NewFunc[T any](hash func(T) uint64, compare func(a, b T) int, opts ...dict.Option) (*Pool[T], error) {
	d, err := dict.NewFunc[T, *T](hash, compare, opts...)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{values: d}, nil
}

// Make returns the canonical pointer for x, storing a copy of x if no
// equivalent value is held yet.
func (p *Pool[T]) Make(x T) (*T, error) {
	v, err := p.values.Get(x)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, dict.ErrNotFound) {
		return nil, err
	}
	v = new(T)
	*v = x
	if err := p.values.Insert(x, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of distinct values held.
func (p *Pool[T]) Len() int {
	return p.values.Len()
}
