// cmds.go -- commands abstraction
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
	"sort"
	"strings"
	"sync"
	"time"
)

type command interface {
	run(args []string, opt *Option) error
}

var cmds = struct {
	sync.Mutex
	m map[string]command
}{
	m: make(map[string]command),
}

func registerCommand(nm string, cmd command) {
	cmds.Lock()
	if _, ok := cmds.m[nm]; ok {
		panic(fmt.Sprintf("%s already registered", nm))
	}
	cmds.m[nm] = cmd
	cmds.Unlock()
}

func runCommand(args []string, o *Option) error {
	nm := args[0]

	cmds.Lock()
	cmd, ok := cmds.m[nm]
	cmds.Unlock()
	if !ok {
		return fmt.Errorf("unknown command %s (valid: %s)", nm, commandNames())
	}

	return cmd.run(args, o)
}

// commandNames returns the registered commands as a sorted, comma
// separated list. The caller must not hold the registry lock.
func commandNames() string {
	cmds.Lock()
	defer cmds.Unlock()

	names := make([]string, 0, len(cmds.m))
	for nm := range cmds.m {
		names = append(names, nm)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type Option struct {
	verbose bool
}

func (o *Option) Printf(s string, v ...interface{}) {
	if o.verbose {
		fmt.Printf(s, v...)
	}
}

// timed runs 'fn' and returns the wall clock time it took
func timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
