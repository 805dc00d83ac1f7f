package dict

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Get and Remove when the key is absent.
	ErrNotFound = errors.New("key not found")

	// ErrAllocation is returned when the allocator refuses memory
	// for the bucket array or an entry.
	ErrAllocation = errors.New("allocation failed")

	// ErrResize is returned by Insert when the table needed to grow
	// and could not. The table is unchanged. An error matching
	// ErrResize also matches the cause, usually ErrAllocation.
	ErrResize = errors.New("resize failed")

	// ErrInvalidArgument is returned when a Dict is used through a nil
	// or uninitialized handle, or constructed with missing functions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDestroyed is returned when a Dict is used after Destroy.
	ErrDestroyed = fmt.Errorf("dict destroyed: %w", ErrInvalidArgument)
)

func errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// allocFailure wraps an allocator refusal so that it always
// matches ErrAllocation.
func allocFailure(what string, n int, err error) error {
	if !errors.Is(err, ErrAllocation) {
		err = fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return fmt.Errorf("cannot allocate %d %s: %w", n, what, err)
}
