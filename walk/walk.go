// Package walk provides batch enumeration over a compiled generator's index
// range, delivering words via a callback to avoid materializing the whole
// language at once.
//
// Example usage with a compiled pattern:
//
//	gen := regenum.MustCompile(`[a-z]{3}`)
//	err := walk.All(gen, walk.DefaultConfig(), func(it walk.Item) bool {
//	    fmt.Printf("%d: %s\n", it.BatchIndex, it.Word)
//	    return true // continue
//	})
package walk

import (
	"fmt"
	"math/big"

	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/internal/sequence"
)

// Config configures batch enumeration.
type Config struct {
	// BatchSize is normalized to 1024 when not positive. Range and All
	// validate their bounds once up front and do not otherwise read it, so
	// it has no effect on results or on the enumeration loop.
	// Default: 1024.
	BatchSize int
}

// DefaultConfig returns a Config with BatchSize set to 1024.
func DefaultConfig() Config {
	return Config{BatchSize: 1024}
}

func (c Config) applyDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 1024
	}
	return c
}

// Item is one word produced by a walk, along with its position.
type Item struct {
	// Word is the generator's At(Index) result.
	Word string

	// Index is the word's position in the generator's full language.
	Index *big.Int

	// BatchIndex is Index's 0-based offset from the walk's starting
	// point, i.e. the number of words already delivered.
	BatchIndex int
}

// Range enumerates gen's words for indices in [from, to), calling fn for
// each in order. Enumeration stops early, with a nil error, the first time
// fn returns false. from and to are validated against gen.Len() before any
// word is produced.
func Range(gen sequence.Generator, from, to *big.Int, cfg Config, fn func(Item) bool) error {
	cfg = cfg.applyDefaults()
	length := gen.Len()

	if from.Sign() < 0 || from.Cmp(length) > 0 {
		return fmt.Errorf("%w: from %s, length %s", regerr.ErrOutOfRange, from.String(), length.String())
	}
	if to.Sign() < 0 || to.Cmp(length) > 0 {
		return fmt.Errorf("%w: to %s, length %s", regerr.ErrOutOfRange, to.String(), length.String())
	}
	if to.Cmp(from) < 0 {
		return fmt.Errorf("%w: to %s precedes from %s", regerr.ErrOutOfRange, to.String(), from.String())
	}

	i := new(big.Int).Set(from)
	batchIndex := 0
	for i.Cmp(to) < 0 {
		word, err := gen.At(i)
		if err != nil {
			return err
		}
		if !fn(Item{Word: word, Index: new(big.Int).Set(i), BatchIndex: batchIndex}) {
			return nil
		}
		i.Add(i, one)
		batchIndex++
	}
	return nil
}

// All enumerates every word of gen's language, in index order.
func All(gen sequence.Generator, cfg Config, fn func(Item) bool) error {
	return Range(gen, big.NewInt(0), gen.Len(), cfg, fn)
}

var one = big.NewInt(1)
