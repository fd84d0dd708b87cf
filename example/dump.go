// dump.go -- 'dump' command implementation
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

	flag "github.com/opencoff/pflag"
)

type dumpCommand struct{}

func init() {
	m := dumpCommand{}
	registerCommand("dump", &m)
}

func (m *dumpCommand) run(args []string, opt *Option) (err error) {
	var kind string
	var meta bool

	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&kind, "key", "k", "djb2", "Hash words with `K` (djb2, sip, fast)")
	fs.BoolVarP(&meta, "meta", "m", false, "Dump only metadata")
	fs.Usage = func() {
		fmt.Printf(`Usage: dump [options] [INPUT...]

Build a word count table from each INPUT (or stdin) and print every
slot of the table: "WORD -> COUNT" or "x" for an empty slot.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err = fs.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	return withWords(kind, func(wt wordTable) error {
		if _, err := wt.AddInputs(fs.Args(), opt); err != nil {
			return fmt.Errorf("dump: %w", err)
		}

		if meta {
			wt.DumpMeta(os.Stdout)
		} else {
			wt.Dump(os.Stdout)
		}
		return nil
	})
}
