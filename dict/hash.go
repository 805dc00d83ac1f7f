package dict

import (
	"bytes"
	"cmp"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// AddressHash hashes a pointer by the address it holds, not by the
// value it points to. Go does not move heap objects, and a Dict keeps
// its keys reachable, so the hash of a stored key does not change.
func AddressHash[T any](p *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(p)))
}

// ComparableHash returns a hash function over the contents of
// comparable keys, consistent with ==. Each call returns a function
// with a fresh random seed.
func ComparableHash[K comparable]() func(K) uint64 {
	return maphash.NewHasher[K]().Hash
}

// orderedHash is ComparableHash adjusted to agree with cmp.Compare,
// which treats every NaN as equal to every other NaN.
func orderedHash[K cmp.Ordered]() func(K) uint64 {
	h := ComparableHash[K]()
	return func(k K) uint64 {
		if k != k {
			return 0
		}
		return h(k)
	}
}

// StringHash hashes the contents of s.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes the contents of b. It pairs with [CompareBytes].
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// CompareBytes compares byte slices by content.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareInts compares the ints that a and b point to.
//
// Used with [NewIdentity] it matches only keys that share a bucket:
// distinct pointers to equal ints are usually stored separately.
func CompareInts(a, b *int) int {
	return cmp.Compare(*a, *b)
}

func compareAddress[T any](a, b *T) int {
	return cmp.Compare(uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b)))
}
