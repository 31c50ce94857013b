package hashtable

import "slices"

type slotState uint8

const (
	empty slotState = iota
	used
	tombstone
)

type slot[V any] struct {
	entry[V]
	state slotState
}

// OpenAddressed is a hash map using linear probing over a single slot array.
type OpenAddressed[V any] struct {
	slots      []slot[V]
	size       int
	tombstones int
}

// NewOpenAddressed returns an empty linear-probing table.
func NewOpenAddressed[V any](opts ...Option) (*OpenAddressed[V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	// one slot must always stay empty so a probe for a missing key terminates
	o.Capacity = max(o.Capacity, 2)

	return &OpenAddressed[V]{slots: make([]slot[V], o.Capacity)}, nil
}

// Len returns the number of stored keys.
func (t *OpenAddressed[V]) Len() int { return t.size }

// Cap returns the number of slots.
func (t *OpenAddressed[V]) Cap() int { return len(t.slots) }

// Tombstones returns the number of deleted slots not yet reclaimed by a resize.
func (t *OpenAddressed[V]) Tombstones() int { return t.tombstones }

// find returns the slot holding key, or -1 together with the first reusable
// slot seen along the probe sequence.
func (t *OpenAddressed[V]) find(key string) (found, free int) {
	mask := len(t.slots) - 1
	free = -1
	for i := index(key, len(t.slots)); ; i = (i + 1) & mask {
		s := &t.slots[i]
		switch s.state {
		case empty:
			if free < 0 {
				free = i
			}
			return -1, free
		case tombstone:
			if free < 0 {
				free = i
			}
		case used:
			if s.key == key {
				return i, free
			}
		}
	}
}

// Put stores value under key, replacing any previous value.
func (t *OpenAddressed[V]) Put(key string, value V) {
	found, free := t.find(key)
	if found >= 0 {
		t.slots[found].value = value
		return
	}
	if t.slots[free].state == tombstone {
		t.tombstones--
	}
	t.slots[free] = slot[V]{entry: entry[V]{key: key, value: value}, state: used}
	t.size++
	if float64(t.size+t.tombstones)/float64(len(t.slots)) > openMaxLoad {
		// mostly tombstones: rehash in place instead of growing
		if t.size*4 <= len(t.slots) {
			t.resize(len(t.slots))
		} else {
			t.resize(2 * len(t.slots))
		}
	}
}

// Get returns the value stored under key.
func (t *OpenAddressed[V]) Get(key string) (V, bool) {
	if found, _ := t.find(key); found >= 0 {
		return t.slots[found].value, true
	}
	var zero V

	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *OpenAddressed[V]) Delete(key string) bool {
	found, _ := t.find(key)
	if found < 0 {
		return false
	}
	t.slots[found] = slot[V]{state: tombstone}
	t.size--
	t.tombstones++

	return true
}

// Keys returns every key in ascending order.
func (t *OpenAddressed[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for _, s := range t.slots {
		if s.state == used {
			keys = append(keys, s.key)
		}
	}
	slices.Sort(keys)

	return keys
}

func (t *OpenAddressed[V]) resize(capacity int) {
	old := t.slots
	t.slots = make([]slot[V], capacity)
	t.tombstones = 0
	mask := capacity - 1
	for _, s := range old {
		if s.state != used {
			continue
		}
		i := index(s.key, capacity)
		for t.slots[i].state == used {
			i = (i + 1) & mask
		}
		t.slots[i] = s
	}
}
