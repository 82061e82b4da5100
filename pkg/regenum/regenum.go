// Package regenum compiles a restricted regular-expression syntax into a
// finite enumerable language and exposes it as an indexed sequence: given
// an integer i in [0, N), At returns the i-th string the expression
// matches (duplicates are not removed, so overlapping alternatives yield
// repeated strings). It is built for exhaustive, deterministic
// enumeration of a bounded pattern's match set — password-candidate
// generation, combinatorial test-vector synthesis, brute-force search
// spaces — not for recognizing whether an arbitrary string matches.
package regenum

import (
	"fmt"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/builder"
	"github.com/krombrey/regenum/internal/compact"
	"github.com/krombrey/regenum/internal/diag"
	"github.com/krombrey/regenum/internal/sequence"
)

// Options configures pattern compilation.
type Options struct {
	// Pattern is the regex source to compile.
	Pattern string

	// Verbose traces builder transitions and sequence-engine cardinality
	// decisions to stderr, with a header per stage. Compaction gets only its
	// header; individual compactor rewrites are not traced.
	Verbose bool
}

// Validate checks that the options are usable before any work starts.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	return nil
}

// Parse drives the pattern through the transition table and builder and
// returns the canonical (post-compaction) AST — the parse operation of
// spec.md §6.
func Parse(text string) (ast.Node, error) {
	return parseWith(text, diag.NewLogger(false))
}

func parseWith(text string, log *diag.Logger) (ast.Node, error) {
	raw, err := builder.Parse(text, log)
	if err != nil {
		return nil, fmt.Errorf("regenum: parse %q: %w", text, err)
	}
	log.Section("Compaction")
	canonical := compact.Compact(raw, nil)
	return canonical, nil
}

// Compile turns a canonical AST into a Generator — the compile operation
// of spec.md §6.
func Compile(n ast.Node) (sequence.Generator, error) {
	return sequence.Compile(n)
}

// CompilePattern parses and compiles a pattern in one step, honoring
// Options.Verbose for tracing.
func CompilePattern(opts Options) (sequence.Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("regenum: invalid options: %w", err)
	}
	log := diag.NewLogger(opts.Verbose)
	log.Section("Parse")
	n, err := parseWith(opts.Pattern, log)
	if err != nil {
		return nil, err
	}
	log.Section("Compile")
	return sequence.CompileVerbose(n, log)
}

// MustCompile is CompilePattern for the common case of a plain pattern
// string, panicking on error — named after regexp.MustCompile since the
// surface syntax is regex-shaped, even though matching itself is not what
// this package does.
func MustCompile(pattern string) sequence.Generator {
	g, err := CompilePattern(Options{Pattern: pattern})
	if err != nil {
		panic(err)
	}
	return g
}
