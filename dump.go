// dump.go -- diagnostic dumps of a table
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
	"fmt"
	"io"
)

// Dump writes every slot of the backing array to 'w' in order: an
// occupied slot is printed as "key -> value", an empty one as "x".
// The format is meant for humans and may change.
func (t *Table[K, V]) Dump(w io.Writer) {
	for i := range t.cells {
		c := &t.cells[i]
		if c.taken {
			fmt.Fprintf(w, "%v -> %v\n", c.key, c.val)
		} else {
			fmt.Fprintf(w, "x\n")
		}
	}
}

// DumpMeta writes a summary of the table occupancy to 'w'
func (t *Table[K, V]) DumpMeta(w io.Writer) {
	n := len(t.cells)
	load := 0.0
	if n > 0 {
		load = float64(t.taken) / float64(n)
	}

	fmt.Fprintf(w, "OAHT: %d keys, %d slots, load %4.2f, longest run %d\n",
		t.taken, n, load, t.longestRun())
}

// longestRun returns the length of the longest sequence of adjacent
// occupied slots, counting runs that wrap past the end of the array.
func (t *Table[K, V]) longestRun() int {
	n := len(t.cells)
	if t.taken == n {
		return n
	}

	var max, run int

	// start just past an empty slot so wrapped runs are counted whole
	start := 0
	for t.cells[start].taken {
		start++
	}

	for j := 1; j <= n; j++ {
		if t.cells[(start+j)%n].taken {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	return max
}
