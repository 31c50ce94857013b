package hashtable

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// ErrBadCapacity indicates an initial capacity below 1.
var ErrBadCapacity = errors.New("hashtable: capacity must be at least 1")

const (
	defaultCapacity = 8

	chainedMaxLoad = 0.75
	openMaxLoad    = 0.5
)

// Options configures a table.
type Options struct {
	// Capacity is the initial number of buckets (or slots), rounded up to a
	// power of two.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a starting capacity of 8.
func DefaultOptions() Options {
	return Options{Capacity: defaultCapacity}
}

// WithCapacity sets the initial capacity.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 1 {
		return o, fmt.Errorf("%w: got %d", ErrBadCapacity, o.Capacity)
	}
	o.Capacity = nextPow2(o.Capacity)

	return o, nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// index maps key to a slot in a table of size capacity (a power of two).
func index(key string, capacity int) int {
	return int(xxhash.Sum64String(key) & uint64(capacity-1))
}

type entry[V any] struct {
	key   string
	value V
}
