package sequence

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/regerr"
)

func TestListGenDuplicatesPreserved(t *testing.T) {
	g := listGen{chars: "aab"}
	if g.Len().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Len() = %s, want 3", g.Len())
	}
	for i, want := range []string{"a", "a", "b"} {
		got, err := g.At(big.NewInt(int64(i)))
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestListGenOutOfRange(t *testing.T) {
	g := listGen{chars: "ab"}
	if _, err := g.At(big.NewInt(2)); !errors.Is(err, regerr.ErrOutOfRange) {
		t.Errorf("At(2) error = %v, want ErrOutOfRange", err)
	}
}

func TestRangeGenAscending(t *testing.T) {
	g, err := newRangeGen(ast.Range{Lo: 'a', Hi: 'c'})
	if err != nil {
		t.Fatalf("newRangeGen: %v", err)
	}
	if g.Len().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Len() = %s, want 3", g.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		got, err := g.At(big.NewInt(int64(i)))
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestRangeGenSwapsInverted(t *testing.T) {
	g, err := newRangeGen(ast.Range{Lo: 'c', Hi: 'a'})
	if err != nil {
		t.Fatalf("newRangeGen: %v", err)
	}
	got, err := g.At(big.NewInt(0))
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if got != "a" {
		t.Errorf("At(0) = %q, want %q (lo/hi should be swapped)", got, "a")
	}
}

func TestLiteralGenSingleWord(t *testing.T) {
	g := literalGen{value: "xyz"}
	if g.Len().Cmp(one) != 0 {
		t.Errorf("Len() = %s, want 1", g.Len())
	}
	got, err := g.At(big.NewInt(0))
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if got != "xyz" {
		t.Errorf("At(0) = %q, want %q", got, "xyz")
	}
}
