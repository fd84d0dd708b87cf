// table_test.go -- test suite for the hash table
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

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/opencoff/go-fasthash"
)

func TestEmpty(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, string]()
	assert(h.Len() == 0, "new table has %d keys", h.Len())
	assert(h.Cap() == 11, "new table has %d slots", h.Cap())

	for i := 0; i < 100; i++ {
		v, ok := h.Get(Int(i))
		assert(!ok, "found key %d => %s in empty table", i, v)
		assert(h.GetMut(Int(i)) == nil, "GetMut found key %d in empty table", i)
	}
}

func TestRoundTrip(t *testing.T) {
	assert := newAsserter(t)

	h := New[String, int]()
	for i, s := range keyw {
		h.Insert(String(s), i)
	}

	assert(h.Len() == len(keyw), "exp %d keys, saw %d", len(keyw), h.Len())
	for i, s := range keyw {
		v, ok := h.Get(String(s))
		assert(ok, "can't find key %s", s)
		assert(v == i, "key %s: exp %d, saw %d", s, i, v)
	}

	_, ok := h.Get(String("not-a-key"))
	assert(!ok, "found a key that was never inserted")
}

func TestUpdate(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, string]()
	h.Insert(7, "first")
	h.Insert(7, "second")

	assert(h.Len() == 1, "update changed count to %d", h.Len())
	assert(occupied(h, 7) == 1, "key 7 in %d slots", occupied(h, 7))

	v, ok := h.Get(7)
	assert(ok, "can't find key 7")
	assert(v == "second", "exp 'second', saw '%s'", v)
}

func TestGetMut(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, int]()
	keys := []Int{3, 14, 25, 36}
	for _, k := range keys {
		h.Insert(k, 1)
	}

	for _, k := range keys {
		p := h.GetMut(k)
		assert(p != nil, "GetMut can't find key %d", k)
		*p += int(k)
	}

	for _, k := range keys {
		v, _ := h.Get(k)
		assert(v == int(k)+1, "key %d: exp %d, saw %d", k, int(k)+1, v)
	}
	assert(h.Len() == len(keys), "GetMut changed count to %d", h.Len())
}

func TestCollisions(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, string]()
	h.Insert(1, "one")
	h.Insert(12, "twelve")
	h.Insert(23, "twenty-three")

	want := map[int]Int{1: 1, 2: 12, 3: 23}
	for i, k := range want {
		c := h.cells[i]
		assert(c.taken, "slot %d is empty", i)
		assert(c.key == k, "slot %d: exp key %d, saw %d", i, k, c.key)
	}

	v, ok := h.Get(12)
	assert(ok && v == "twelve", "key 12: saw '%s' %v", v, ok)
	v, ok = h.Get(1)
	assert(ok && v == "one", "key 1: saw '%s' %v", v, ok)
	v, ok = h.Get(23)
	assert(ok && v == "twenty-three", "key 23: saw '%s' %v", v, ok)

	// same home slot, never inserted: probe must stop at slot 4
	_, ok = h.Get(34)
	assert(!ok, "found key 34")
}

func TestWrapAround(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, int]()
	h.Insert(10, 10)
	h.Insert(21, 21)
	h.Insert(32, 32)

	assert(h.cells[10].key == 10, "slot 10 holds %d", h.cells[10].key)
	assert(h.cells[0].key == 21, "slot 0 holds %d", h.cells[0].key)
	assert(h.cells[1].key == 32, "slot 1 holds %d", h.cells[1].key)

	for _, k := range []Int{10, 21, 32} {
		v, ok := h.Get(k)
		assert(ok && v == int(k), "key %d: saw %d %v", k, v, ok)
	}
}

func TestFirstExtend(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, int]()
	for i := 0; i < 11; i++ {
		h.Insert(Int(i), i*i)
	}
	assert(h.Cap() == 11, "full table grew early to %d", h.Cap())
	assert(h.Len() == 11, "exp 11 keys, saw %d", h.Len())

	// updating a full table must not grow it
	h.Insert(5, -5)
	assert(h.Cap() == 11, "update grew table to %d", h.Cap())

	h.Insert(11, 121)
	assert(h.Cap() == 23, "exp 23 slots after 12th key, saw %d", h.Cap())
	assert(h.Len() == 12, "exp 12 keys, saw %d", h.Len())

	for i := 0; i < 12; i++ {
		exp := i * i
		if i == 5 {
			exp = -5
		}
		v, ok := h.Get(Int(i))
		assert(ok, "can't find key %d after extend", i)
		assert(v == exp, "key %d: exp %d, saw %d", i, exp, v)
	}
}

func TestGrowth(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, uint64]()
	hseed := rand64()
	kv := make(map[Int]uint64)
	for i := 0; i < 50; i++ {
		k := Int(rand.Uint64())
		v := fasthash.Hash64(hseed, []byte(keyw[i%len(keyw)]))
		h.Insert(k, v)
		kv[k] = v
	}

	assert(h.Len() == len(kv), "exp %d keys, saw %d", len(kv), h.Len())
	assert(h.Cap() >= 95, "50 keys should need two extends; cap %d", h.Cap())

	for k, v := range kv {
		x, ok := h.Get(k)
		assert(ok, "can't find key %#x", k)
		assert(x == v, "key %#x: exp %#x, saw %#x", k, v, x)
	}
}

func TestCapacityInvariant(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, int]()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		// small key space so updates are frequent
		k := Int(r.Intn(2000))
		if p := h.GetMut(k); p != nil {
			*p++
		} else {
			h.Insert(k, 1)
		}

		assert(h.Len() <= h.Cap(), "count %d > cap %d", h.Len(), h.Cap())
		assert(h.Cap()%2 == 1, "even capacity %d", h.Cap())
		assert(validCap(h.Cap()), "capacity %d not on the growth sequence", h.Cap())
	}

	var sum int
	err := h.IterFunc(func(k Int, v int) error {
		assert(occupied(h, k) == 1, "key %d in %d slots", k, occupied(h, k))
		sum += v
		return nil
	})
	assert(err == nil, "iter: %s", err)
	assert(sum == 5000, "counts add up to %d", sum)
}

func TestStringKeys(t *testing.T) {
	testKeys(t, func(s string) String { return String(s) })
	testKeys(t, func(s string) SipString { return SipString(s) })
	testKeys(t, func(s string) FastString { return FastString(s) })
}

func testKeys[K Hashable](t *testing.T, mk func(string) K) {
	assert := newAsserter(t)

	h := New[K, int]()
	for r := 0; r < 3; r++ {
		for i, s := range keyw {
			h.Insert(mk(s), i+r)
		}
	}

	assert(h.Len() == len(keyw), "exp %d keys, saw %d", len(keyw), h.Len())
	for i, s := range keyw {
		v, ok := h.Get(mk(s))
		assert(ok, "can't find key %s", s)
		assert(v == i+2, "key %s: exp %d, saw %d", s, i+2, v)
	}
}

func TestIterFunc(t *testing.T) {
	assert := newAsserter(t)

	h := New[Int, int]()
	for i := 0; i < 30; i++ {
		h.Insert(Int(i), i)
	}

	seen := make(map[Int]bool)
	err := h.IterFunc(func(k Int, v int) error {
		assert(int(k) == v, "key %d has value %d", k, v)
		assert(!seen[k], "key %d visited twice", k)
		seen[k] = true
		return nil
	})
	assert(err == nil, "iter: %s", err)
	assert(len(seen) == 30, "visited %d keys", len(seen))

	stop := errors.New("stop")
	var n int
	err = h.IterFunc(func(Int, int) error {
		n++
		if n == 5 {
			return stop
		}
		return nil
	})
	assert(err == stop, "exp stop error, saw %v", err)
	assert(n == 5, "visited %d keys after stop", n)
}

func TestExtendZeroLength(t *testing.T) {
	assert := newAsserter(t)

	defer func() {
		r := recover()
		assert(r != nil, "extend on zero length table didn't panic")
	}()

	var h Table[Int, int]
	h.extend()
}

func BenchmarkCount(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := make([]Int, 100000)
	for i := range keys {
		keys[i] = Int(r.Uint64())
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h := New[Int, uint64]()
		for _, k := range keys {
			if p := h.GetMut(k); p != nil {
				*p++
			} else {
				h.Insert(k, 1)
			}
		}
	}
}

func BenchmarkMapCount(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := make([]Int, 100000)
	for i := range keys {
		keys[i] = Int(r.Uint64())
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := make(map[Int]uint64)
		for _, k := range keys {
			m[k]++
		}
	}
}
