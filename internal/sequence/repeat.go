package sequence

import (
	"math/big"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/diag"
)

// repeatGen is repeat(min, max, child): len = sum over k in [min,max] of
// len(child)^k (L^0 = 1, so repeat(0,_) always contributes the empty
// string). At finds the run length k that owns i, then decodes the offset
// within that run as a k-digit mixed-radix number with every radix equal
// to len(child).
type repeatGen struct {
	min, max int
	child    Generator
	childLen *big.Int

	// cumulative[k-min] = sum of len(child)^h for h in [min, k], i.e. the
	// exclusive upper bound of words with run length <= k.
	cumulative []*big.Int
	length     *big.Int
}

func newRepeatGen(n ast.Repeat, log *diag.Logger) (Generator, error) {
	child, err := compileLogged(n.Child, log)
	if err != nil {
		return nil, err
	}
	childLen := child.Len()

	cumulative := make([]*big.Int, 0, n.Max-n.Min+1)
	running := new(big.Int)
	for k := n.Min; k <= n.Max; k++ {
		running = new(big.Int).Add(running, pow(childLen, k))
		cumulative = append(cumulative, running)
	}
	length := new(big.Int)
	if len(cumulative) > 0 {
		length.Set(cumulative[len(cumulative)-1])
	}
	log.Log("repeat{%d,%d}: child len=%s, total len=%s", n.Min, n.Max, childLen.String(), length.String())

	return repeatGen{
		min: n.Min, max: n.Max,
		child: child, childLen: childLen,
		cumulative: cumulative, length: length,
	}, nil
}

func pow(base *big.Int, exp int) *big.Int {
	return new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
}

func (g repeatGen) Len() *big.Int { return new(big.Int).Set(g.length) }

func (g repeatGen) At(i *big.Int) (string, error) {
	if i.Sign() < 0 || i.Cmp(g.length) >= 0 {
		return "", outOfRange(i, g.length)
	}
	var prev *big.Int = zero
	for idx, upper := range g.cumulative {
		if i.Cmp(upper) < 0 {
			k := g.min + idx
			offset := new(big.Int).Sub(i, prev)
			return g.decodeRun(k, offset)
		}
		prev = upper
	}
	return "", outOfRange(i, g.length)
}

func (g repeatGen) decodeRun(k int, offset *big.Int) (string, error) {
	if k == 0 {
		return "", nil
	}
	radices := make([]*big.Int, k)
	for j := range radices {
		radices[j] = g.childLen
	}
	digits := mixedRadixDigits(radices, offset)

	var out string
	for _, d := range digits {
		word, err := g.child.At(d)
		if err != nil {
			return "", err
		}
		out += word
	}
	return out, nil
}
