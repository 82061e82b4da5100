// Package sequence implements C5: it compiles a canonical AST node into a
// Generator exposing Len and At, treating the tree as a mixed-radix numeral
// system so At(i) runs in O(depth) without materializing the language.
//
// Cardinalities and indices use math/big throughout (spec.md §5/§9):
// [\d]{1,20} alone exceeds 2^63, and the spec permits either arbitrary
// precision or a documented 64-bit cap — this module takes the former,
// since nothing downstream needs machine-word indices.
package sequence

import (
	"fmt"
	"math/big"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/diag"
	"github.com/krombrey/regenum/internal/regerr"
)

// Generator is a compiled AST node: a finite language exposed as an
// indexed sequence. Generators are immutable after construction; At is
// re-entrant and safe to call concurrently for distinct indices.
type Generator interface {
	// Len returns the cardinality of the language of this subtree.
	Len() *big.Int

	// At returns the i-th word, 0 <= i < Len(). Words repeat when a list
	// holds duplicate characters or alternatives overlap. It fails with
	// regerr.ErrOutOfRange otherwise.
	At(i *big.Int) (string, error)
}

// Compile builds a Generator for a canonical AST node, per spec.md §4.5.
func Compile(n ast.Node) (Generator, error) {
	return compileLogged(n, diag.NewLogger(false))
}

// CompileVerbose is Compile with tracing of each node's chosen cardinality.
func CompileVerbose(n ast.Node, log *diag.Logger) (Generator, error) {
	return compileLogged(n, log)
}

func compileLogged(n ast.Node, log *diag.Logger) (Generator, error) {
	if n == nil {
		n = ast.Scope{}
	}
	switch v := n.(type) {
	case ast.Literal:
		return literalGen{value: v.Value}, nil
	case ast.List:
		return listGen{chars: v.Chars}, nil
	case ast.Range:
		return newRangeGen(v)
	case ast.Scope:
		return newScopeGen(v, log)
	case ast.Or:
		return newOrGen(v, log)
	case ast.Repeat:
		return newRepeatGen(v, log)
	default:
		return nil, fmt.Errorf("sequence: unknown AST node %T", n)
	}
}

func outOfRange(i *big.Int, length *big.Int) error {
	return fmt.Errorf("%w: index %s, length %s", regerr.ErrOutOfRange, i.String(), length.String())
}

// mixedRadixDigits decodes v as a big-endian mixed-radix number with the
// given per-position radices: d[j] = floor(v / product(radices[j+1:])) mod
// radices[j]. Shared by Scope (child lengths as radices) and Repeat (all
// radices equal to the child's length), per spec.md §9.
func mixedRadixDigits(radices []*big.Int, v *big.Int) []*big.Int {
	k := len(radices)
	digits := make([]*big.Int, k)
	// weight[j] = product(radices[j+1:])
	weight := big.NewInt(1)
	for j := k - 1; j >= 0; j-- {
		d := new(big.Int).Div(v, weight)
		d.Mod(d, radices[j])
		digits[j] = d
		weight.Mul(weight, radices[j])
	}
	return digits
}
