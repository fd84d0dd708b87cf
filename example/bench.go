// bench.go -- 'bench' command implementation
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
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/arc/v2"
	"github.com/opencoff/go-oaht"
	flag "github.com/opencoff/pflag"
)

type benchCommand struct{}

func init() {
	m := benchCommand{}
	registerCommand("bench", &m)
}

// a counter runs the "count occurrences" workload over keys and
// returns the number of distinct keys it saw
type counter[K oaht.Hashable] func(keys []K) (int, error)

func (m *benchCommand) run(args []string, opt *Option) (err error) {
	var n int
	var seed int64
	var kind, baselines string

	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.IntVarP(&n, "count", "n", 100000, "Count `N` random keys")
	fs.Int64VarP(&seed, "seed", "s", 0, "Use `S` to seed the key generator (0 picks one)")
	fs.StringVarP(&kind, "key", "k", "int", "Use `K` keys (int, string)")
	fs.StringVarP(&baselines, "baselines", "b", "map,arc", "Compare against `B` (comma separated: map, arc)")
	fs.Usage = func() {
		fmt.Printf(`Usage: bench [options]

Count occurrences of N random keys in the hash table and in each
baseline container; print the elapsed seconds of each run.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err = fs.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	if n <= 0 {
		return fmt.Errorf("bench: key count must be positive; saw %d", n)
	}

	var names []string
	for _, s := range strings.Split(baselines, ",") {
		if s = strings.TrimSpace(s); len(s) > 0 {
			names = append(names, s)
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opt.Printf("bench: %d %s keys, seed %d\n", n, kind, seed)

	r := rand.New(rand.NewSource(seed))
	switch kind {
	case "int":
		keys := make([]oaht.Int, n)
		for i := range keys {
			keys[i] = oaht.Int(r.Uint64())
		}
		err = runBench(keys, names, opt)

	case "string":
		keys := make([]oaht.String, n)
		for i := range keys {
			keys[i] = oaht.String(strconv.FormatUint(r.Uint64(), 16))
		}
		err = runBench(keys, names, opt)

	default:
		return fmt.Errorf("bench: unknown key type '%s' (allowed: int, string)", kind)
	}

	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}

type benchRun[K oaht.Hashable] struct {
	name string
	fn   counter[K]
}

// runBench times the hash table followed by each named baseline
func runBench[K oaht.Hashable](keys []K, names []string, opt *Option) error {
	runs := []benchRun[K]{
		{"oaht", countTable[K]},
	}

	for _, nm := range names {
		switch nm {
		case "map":
			runs = append(runs, benchRun[K]{nm, countMap[K]})

		case "arc":
			runs = append(runs, benchRun[K]{nm, countARC[K]})

		default:
			return fmt.Errorf("unknown baseline '%s' (allowed: map, arc)", nm)
		}
	}

	for _, r := range runs {
		var distinct int
		var err error

		d := timed(func() {
			distinct, err = r.fn(keys)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}

		fmt.Printf("%s: %f\n", r.name, d.Seconds())
		opt.Printf("  %s: %d distinct keys\n", r.name, distinct)
	}
	return nil
}

func countTable[K oaht.Hashable](keys []K) (int, error) {
	h := oaht.New[K, uint64]()
	for _, k := range keys {
		if p := h.GetMut(k); p != nil {
			*p++
		} else {
			h.Insert(k, 1)
		}
	}
	return h.Len(), nil
}

func countMap[K oaht.Hashable](keys []K) (int, error) {
	m := make(map[K]uint64)
	for _, k := range keys {
		if v, ok := m[k]; ok {
			m[k] = v + 1
		} else {
			m[k] = 1
		}
	}
	return len(m), nil
}

// countARC sizes the cache to hold every key so nothing is evicted
func countARC[K oaht.Hashable](keys []K) (int, error) {
	c, err := arc.NewARC[K, uint64](len(keys))
	if err != nil {
		return 0, err
	}

	for _, k := range keys {
		if v, ok := c.Get(k); ok {
			c.Add(k, v+1)
		} else {
			c.Add(k, 1)
		}
	}
	return c.Len(), nil
}
