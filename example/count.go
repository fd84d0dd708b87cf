// count.go -- 'count' command implementation
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
	"fmt"
	"os"
	"time"

	flag "github.com/opencoff/pflag"
)

type countCommand struct{}

func init() {
	m := countCommand{}
	registerCommand("count", &m)
}

func (m *countCommand) run(args []string, opt *Option) (err error) {
	var kind string
	var least uint64

	fs := flag.NewFlagSet("count", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&kind, "key", "k", "djb2", "Hash words with `K` (djb2, sip, fast)")
	fs.Uint64VarP(&least, "min", "m", 1, "Only print words seen at least `N` times")
	fs.Usage = func() {
		fmt.Printf(`Usage: count [options] [INPUT...]

Count white space delimited words in each INPUT (or stdin) and print
"WORD COUNT" lines in table order.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err = fs.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}

	return withWords(kind, func(wt wordTable) error {
		var tot uint64
		d := timed(func() {
			tot, err = wt.AddInputs(fs.Args(), opt)
		})
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}

		opt.Printf("%d words, %d distinct, %s\n", tot, wt.Len(), d.Truncate(time.Microsecond))
		return wt.Each(func(w string, n uint64) error {
			if n >= least {
				fmt.Printf("%s %d\n", w, n)
			}
			return nil
		})
	})
}
