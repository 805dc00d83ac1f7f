package dict

// config holds the settings applied by Options.
type config struct {
	// alloc accounts for bucket arrays and entries.
	// It is DefaultAllocator unless WithAllocator is used.
	alloc Allocator
}

// An Option configures a new Dict.
type Option func(*config)

// WithAllocator makes the dictionary reserve its bucket arrays and
// entries through a. A nil a selects [DefaultAllocator].
//
// Usage:
//
//	lim := dict.NewLimit(1<<20, 100_000)
//	d, err := dict.New[string, int](dict.WithAllocator(lim))
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}
