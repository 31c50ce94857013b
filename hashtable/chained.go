package hashtable

import "slices"

// Chained is a hash map that resolves collisions with per-bucket slices.
type Chained[V any] struct {
	buckets [][]entry[V]
	size    int
}

// NewChained returns an empty chained table.
func NewChained[V any](opts ...Option) (*Chained[V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Chained[V]{buckets: make([][]entry[V], o.Capacity)}, nil
}

// Len returns the number of stored keys.
func (t *Chained[V]) Len() int { return t.size }

// Cap returns the number of buckets.
func (t *Chained[V]) Cap() int { return len(t.buckets) }

// LoadFactor returns Len/Cap.
func (t *Chained[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Put stores value under key, replacing any previous value.
func (t *Chained[V]) Put(key string, value V) {
	b := index(key, len(t.buckets))
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			t.buckets[b][i].value = value
			return
		}
	}
	t.buckets[b] = append(t.buckets[b], entry[V]{key: key, value: value})
	t.size++
	if t.LoadFactor() > chainedMaxLoad {
		t.resize(2 * len(t.buckets))
	}
}

// Get returns the value stored under key.
func (t *Chained[V]) Get(key string) (V, bool) {
	for _, e := range t.buckets[index(key, len(t.buckets))] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V

	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *Chained[V]) Delete(key string) bool {
	b := index(key, len(t.buckets))
	for i, e := range t.buckets[b] {
		if e.key == key {
			t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
			t.size--
			return true
		}
	}

	return false
}

// Keys returns every key in ascending order.
func (t *Chained[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			keys = append(keys, e.key)
		}
	}
	slices.Sort(keys)

	return keys
}

// LongestChain returns the length of the fullest bucket.
func (t *Chained[V]) LongestChain() int {
	longest := 0
	for _, bucket := range t.buckets {
		longest = max(longest, len(bucket))
	}

	return longest
}

func (t *Chained[V]) resize(capacity int) {
	old := t.buckets
	t.buckets = make([][]entry[V], capacity)
	for _, bucket := range old {
		for _, e := range bucket {
			b := index(e.key, capacity)
			t.buckets[b] = append(t.buckets[b], e)
		}
	}
}
