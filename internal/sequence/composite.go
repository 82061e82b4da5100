package sequence

import (
	"math/big"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/diag"
)

// scopeGen is scope(c1..ck): len = product of child lengths. At decomposes
// i as a big-endian mixed-radix number using the child lengths as radices.
type scopeGen struct {
	children []Generator
	length   *big.Int
}

func newScopeGen(n ast.Scope, log *diag.Logger) (Generator, error) {
	children := make([]Generator, 0, len(n.Children))
	length := new(big.Int).Set(one)
	for _, c := range n.Children {
		child, err := compileLogged(c, log)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		length.Mul(length, child.Len())
	}
	log.Log("scope: %d children, len=%s", len(children), length.String())
	return scopeGen{children: children, length: length}, nil
}

func (g scopeGen) Len() *big.Int { return new(big.Int).Set(g.length) }

func (g scopeGen) At(i *big.Int) (string, error) {
	if i.Sign() < 0 || i.Cmp(g.length) >= 0 {
		return "", outOfRange(i, g.length)
	}
	if len(g.children) == 0 {
		return "", nil
	}
	radices := make([]*big.Int, len(g.children))
	for j, c := range g.children {
		radices[j] = c.Len()
	}
	digits := mixedRadixDigits(radices, i)

	var out string
	for j, c := range g.children {
		word, err := c.At(digits[j])
		if err != nil {
			return "", err
		}
		out += word
	}
	return out, nil
}

// orGen is or(c1..ck): len = sum of child lengths. At finds the smallest j
// with i < running sum and delegates the offset into that child.
// Overlapping alternatives are not deduplicated (spec.md §9): `(a|a)` has
// len 2 and both indices produce "a".
type orGen struct {
	children []Generator
	offsets  []*big.Int // offsets[j] = sum of lengths of children[:j]
	length   *big.Int
}

func newOrGen(n ast.Or, log *diag.Logger) (Generator, error) {
	children := make([]Generator, 0, len(n.Children))
	offsets := make([]*big.Int, 0, len(n.Children))
	running := new(big.Int)
	for _, c := range n.Children {
		child, err := compileLogged(c, log)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, new(big.Int).Set(running))
		children = append(children, child)
		running.Add(running, child.Len())
	}
	log.Log("or: %d alternatives, len=%s", len(children), running.String())
	return orGen{children: children, offsets: offsets, length: running}, nil
}

func (g orGen) Len() *big.Int { return new(big.Int).Set(g.length) }

func (g orGen) At(i *big.Int) (string, error) {
	if i.Sign() < 0 || i.Cmp(g.length) >= 0 {
		return "", outOfRange(i, g.length)
	}
	for j := len(g.children) - 1; j >= 0; j-- {
		if i.Cmp(g.offsets[j]) >= 0 {
			offset := new(big.Int).Sub(i, g.offsets[j])
			return g.children[j].At(offset)
		}
	}
	return "", outOfRange(i, g.length)
}
