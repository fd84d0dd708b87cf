// hashable.go - key capability and the stock key types
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
	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
)

// Hashable is the constraint every key type must satisfy. Equal keys
// must produce equal digests; unequal keys may collide.
type Hashable interface {
	comparable

	// Hash returns the digest used to pick the starting probe slot
	Hash() uint
}

// Int is an integer key with an identity digest
type Int uint

// String is a text key hashed with DJB2
type String string

// SipString is a text key hashed with siphash-2-4. The siphash key is
// drawn from crypto/rand once per process.
type SipString string

// FastString is a text key hashed with fasthash
type FastString string

// fixed seed for FastString digests
const fastSeed uint64 = 0xdeadbeefbaadf00d

var sipK0, sipK1 = rand64(), rand64()

func (k Int) Hash() uint {
	return uint(k)
}

func (k String) Hash() uint {
	return DJB2([]byte(k))
}

func (k SipString) Hash() uint {
	return uint(siphash.Hash(sipK0, sipK1, []byte(k)))
}

func (k FastString) Hash() uint {
	return uint(fasthash.Hash64(fastSeed, []byte(k)))
}

// DJB2 computes Bernstein's string hash over 'b': h = h*33 + c for
// every byte, seeded with 5381. Arithmetic wraps at the machine word.
func DJB2(b []byte) uint {
	var h uint = 5381
	for _, c := range b {
		h = (h << 5) + h + uint(c)
	}
	return h
}

// every stock key type must satisfy Hashable
var (
	_ = New[Int, struct{}]
	_ = New[String, struct{}]
	_ = New[SipString, struct{}]
	_ = New[FastString, struct{}]
)
