// table.go - open addressing hash table with linear probing
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package oaht

// number of slots in a freshly constructed table
const initialCap = 11

// cell is one slot of the backing array. key and val are meaningful
// only when taken is set.
type cell[K Hashable, V any] struct {
	key   K
	val   V
	taken bool
}

// Table is an open addressing hash table mapping keys of type K to
// values of type V. Collisions are resolved by linear probing; the
// backing array grows from L to 2L+1 slots when it is full.
//
// The zero value is not usable; construct tables with New().
type Table[K Hashable, V any] struct {
	cells []cell[K, V]

	// number of occupied cells; never exceeds len(cells)
	taken int
}

// New returns an empty table with 11 slots
func New[K Hashable, V any]() *Table[K, V] {
	return &Table[K, V]{
		cells: make([]cell[K, V], initialCap),
	}
}

// Len returns the number of keys in the table
func (t *Table[K, V]) Len() int {
	return t.taken
}

// Cap returns the length of the backing array
func (t *Table[K, V]) Cap() int {
	return len(t.cells)
}

// Insert adds 'key' with value 'val'; if the key is already present
// its value is overwritten in place.
func (t *Table[K, V]) Insert(key K, val V) {
	if p := t.GetMut(key); p != nil {
		*p = val
		return
	}

	if t.taken >= len(t.cells) {
		t.extend()
	}
	assert(t.taken < len(t.cells), "no free slot: %d of %d taken", t.taken, len(t.cells))

	n := uint(len(t.cells))
	i := key.Hash() % n
	for t.cells[i].taken {
		i = (i + 1) % n
	}

	c := &t.cells[i]
	c.key = key
	c.val = val
	c.taken = true
	t.taken++
}

// Get returns the value stored for 'key' and true if the key exists.
// Otherwise it returns the zero value of V and false.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if i, ok := t.find(key); ok {
		return t.cells[i].val, true
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for 'key' or nil if the
// key doesn't exist. The pointer is only valid until the next call to
// Insert: growing the table moves every value.
func (t *Table[K, V]) GetMut(key K) *V {
	if i, ok := t.find(key); ok {
		return &t.cells[i].val
	}
	return nil
}

// IterFunc calls 'fn' for every key, value pair in backing array
// order. Iteration stops at the first non-nil error which is returned
// to the caller. 'fn' must not insert into the table.
func (t *Table[K, V]) IterFunc(fn func(k K, v V) error) error {
	for i := range t.cells {
		c := &t.cells[i]
		if !c.taken {
			continue
		}

		if err := fn(c.key, c.val); err != nil {
			return err
		}
	}
	return nil
}

// find probes for 'key' starting at its home slot. It returns the
// index of the matching cell and true, or false when it reaches an
// empty cell or has visited every cell.
func (t *Table[K, V]) find(key K) (uint, bool) {
	n := uint(len(t.cells))
	if n == 0 {
		return 0, false
	}

	i := key.Hash() % n
	for j := uint(0); j < n; j++ {
		c := &t.cells[i]
		if !c.taken {
			return 0, false
		}
		if c.key == key {
			return i, true
		}
		i = (i + 1) % n
	}
	return 0, false
}

// extend rehashes every entry into a new backing array of 2L+1 slots.
// The new array is fully populated before it replaces the old one.
func (t *Table[K, V]) extend() {
	assert(len(t.cells) > 0, "extend on a zero length table")

	nt := &Table[K, V]{
		cells: make([]cell[K, V], 2*len(t.cells)+1),
	}

	for i := range t.cells {
		c := &t.cells[i]
		if c.taken {
			nt.Insert(c.key, c.val)
		}
	}

	*t = *nt
}
