// Command regenum compiles a regex-shaped pattern into an enumerable
// language and prints words from it, either at specific indices or in full.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/krombrey/regenum/pkg/regenum"
	"github.com/krombrey/regenum/walk"
)

// arrayFlags collects repeated occurrences of a flag into a slice.
type arrayFlags []string

func (f *arrayFlags) String() string {
	return strings.Join(*f, ", ")
}

func (f *arrayFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("regenum", flag.ContinueOnError)

	pattern := fs.String("pattern", "", "pattern to compile (required)")
	all := fs.Bool("all", false, "stream every word in the compiled language")
	verbose := fs.Bool("verbose", false, "trace parse/compile decisions to stderr")
	var indices arrayFlags
	fs.Var(&indices, "index", "print the word at this index (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pattern == "" {
		return fmt.Errorf("regenum: -pattern is required")
	}

	gen, err := regenum.CompilePattern(regenum.Options{Pattern: *pattern, Verbose: *verbose})
	if err != nil {
		return err
	}

	if *all {
		return walk.All(gen, walk.DefaultConfig(), func(it walk.Item) bool {
			fmt.Fprintf(out, "%s\t%s\n", it.Index.String(), it.Word)
			return true
		})
	}

	if len(indices) == 0 {
		fmt.Fprintf(out, "%s\n", gen.Len().String())
		return nil
	}

	for _, raw := range indices {
		i, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return fmt.Errorf("regenum: invalid index %q", raw)
		}
		word, err := gen.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", i.String(), word)
	}
	return nil
}
