// main.go -- driver for the oaht example commands
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

// oaht exercises the open addressing hash table:
//   - bench: time a "count random keys" workload against builtin map and ARC
//   - count: count words in text files
//   - dump: print every slot of a table built from text files

package main

import (
	"fmt"
	"os"

	flag "github.com/opencoff/pflag"
)

func main() {
	var opt Option

	usage := fmt.Sprintf(
		`%s - exercise the open addressing hash table

Usage: %s [global-options] CMD CMD-ARGS...

CMD is an operation to be performed and CMD-ARGS are operation specific 
arguments. The list of supported operations are:

  bench [options]             -- Time the table against builtin map and ARC
  count [options] [INPUTS...] -- Count words in the inputs
  dump [options] [INPUTS...]  -- Dump every slot of a table built from the inputs

Options:
`, os.Args[0], os.Args[0])

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(os.Stdout)
	fs.BoolVarP(&opt.verbose, "verbose", "V", false, "Show verbose output")
	fs.Usage = func() {
		fmt.Print(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}

	args := fs.Args()
	if len(args) < 1 {
		fmt.Print(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err := runCommand(fs.Args(), &opt)
	if err != nil {
		die("%s", err)
	}
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}

// vim: ft=go:sw=4:ts=4:noexpandtab:tw=78:
