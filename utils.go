// utils.go -- utility functions
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
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// assert panics with a formatted message when 'cond' is false. It guards
// internal invariants only; a failure is a bug in this package.
func assert(cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	panic(fmt.Sprintf("oaht: assertion failed: "+msg, args...))
}

func rand64() uint64 {
	var b [8]byte

	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic("can't read crypto/rand")
	}

	return binary.BigEndian.Uint64(b[:])
}
