package sequence

import (
	"math/big"

	"github.com/krombrey/regenum/internal/ast"
)

var one = big.NewInt(1)
var zero = big.NewInt(0)

// literalGen is literal(s): len = 1, at(0) = s.
type literalGen struct {
	value string
}

func (g literalGen) Len() *big.Int { return new(big.Int).Set(one) }

func (g literalGen) At(i *big.Int) (string, error) {
	if i.Sign() != 0 {
		return "", outOfRange(i, g.Len())
	}
	return g.value, nil
}

// listGen is list(s): len = |s|, at(i) = s[i] (byte-indexed, duplicates
// preserved per spec.md §9).
type listGen struct {
	chars string
}

func (g listGen) Len() *big.Int { return big.NewInt(int64(len(g.chars))) }

func (g listGen) At(i *big.Int) (string, error) {
	length := g.Len()
	if i.Sign() < 0 || i.Cmp(length) >= 0 {
		return "", outOfRange(i, length)
	}
	return string(g.chars[i.Int64()]), nil
}

// rangeGen is range(a, b): len = b-a+1, at(i) = char(a+i).
type rangeGen struct {
	lo, hi rune
}

func newRangeGen(n ast.Range) (Generator, error) {
	lo, hi := n.Lo, n.Hi
	if lo > hi {
		lo, hi = hi, lo
	}
	return rangeGen{lo: lo, hi: hi}, nil
}

func (g rangeGen) Len() *big.Int {
	return big.NewInt(int64(g.hi-g.lo) + 1)
}

func (g rangeGen) At(i *big.Int) (string, error) {
	length := g.Len()
	if i.Sign() < 0 || i.Cmp(length) >= 0 {
		return "", outOfRange(i, length)
	}
	return string(g.lo + rune(i.Int64())), nil
}
