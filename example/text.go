// text.go -- read words from text files and populate a table
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

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/opencoff/go-mmap"
	"github.com/opencoff/go-oaht"
)

// words is the table every text command builds: word -> occurrences
type words[K oaht.Hashable] struct {
	*oaht.Table[K, uint64]

	// make a key from a word
	mk func(string) K
}

func newWords[K oaht.Hashable](mk func(string) K) *words[K] {
	return &words[K]{
		Table: oaht.New[K, uint64](),
		mk:    mk,
	}
}

// add counts one occurrence of 'w'
func (t *words[K]) add(w string) {
	k := t.mk(w)
	if p := t.GetMut(k); p != nil {
		*p++
	} else {
		t.Insert(k, 1)
	}
}

// AddInputs counts words from each file in 'names', or from stdin if
// 'names' is empty. Returns the total number of words read.
func (t *words[K]) AddInputs(names []string, opt *Option) (uint64, error) {
	if len(names) == 0 {
		n, err := t.AddTextStream(os.Stdin)
		if err != nil {
			return n, fmt.Errorf("<STDIN>: %w", err)
		}
		opt.Printf("+ <STDIN>: %d words\n", n)
		return n, nil
	}

	var tot uint64
	for _, fn := range names {
		n, err := t.AddTextFile(fn)
		if err != nil {
			return tot, fmt.Errorf("%s: %w", fn, err)
		}

		opt.Printf("+ %s: %d words\n", fn, n)
		tot += n
	}
	return tot, nil
}

// AddTextFile maps text file 'fn' read-only and counts every white
// space delimited word in it. Returns number of words read.
func (t *words[K]) AddTextFile(fn string) (uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, err
	}

	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return 0, err
	}

	// can't mmap an empty file
	if st.Size() == 0 {
		return 0, nil
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(st.Size(), 0, mmap.PROT_READ, mmap.F_READAHEAD)
	if err != nil {
		return 0, fmt.Errorf("can't mmap %d bytes: %w", st.Size(), err)
	}

	defer mapping.Unmap()

	return t.AddTextStream(bytes.NewReader(mapping.Bytes()))
}

// AddTextStream counts every white space delimited word in 'fd'.
// Returns number of words read.
func (t *words[K]) AddTextStream(fd io.Reader) (uint64, error) {
	sc := bufio.NewScanner(fd)
	sc.Split(bufio.ScanWords)
	ch := make(chan string, 64)

	var err error

	// do I/O asynchronously; the table is only touched from this goroutine
	go func(sc *bufio.Scanner, ch chan string) {
		for sc.Scan() {
			ch <- sc.Text()
		}
		err = sc.Err()
		close(ch)
	}(sc, ch)

	var n uint64
	for w := range ch {
		t.add(w)
		n++
	}

	return n, err
}

// withWords builds a word table keyed by the digest named in 'kind'
// and hands it to 'fn'.
func withWords(kind string, fn func(wt wordTable) error) error {
	switch kind {
	case "djb2":
		return fn(newWords(func(s string) oaht.String { return oaht.String(s) }))

	case "sip":
		return fn(newWords(func(s string) oaht.SipString { return oaht.SipString(s) }))

	case "fast":
		return fn(newWords(func(s string) oaht.FastString { return oaht.FastString(s) }))

	default:
		return fmt.Errorf("unknown key type '%s' (allowed: djb2, sip, fast)", kind)
	}
}

// wordTable is the key independent view of a words table that the
// commands need.
type wordTable interface {
	AddInputs(names []string, opt *Option) (uint64, error)
	Each(fn func(w string, n uint64) error) error
	Len() int
	Dump(w io.Writer)
	DumpMeta(w io.Writer)
}

// Each calls 'fn' for every word and its count in table order
func (t *words[K]) Each(fn func(w string, n uint64) error) error {
	return t.IterFunc(func(k K, n uint64) error {
		return fn(fmt.Sprint(k), n)
	})
}

var _ wordTable = &words[oaht.String]{}
