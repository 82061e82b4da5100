package walk

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/pkg/regenum"
)

func TestAllVisitsEveryWordInOrder(t *testing.T) {
	gen := regenum.MustCompile("[abc]")
	var got []string
	err := All(gen, DefaultConfig(), func(it Item) bool {
		got = append(got, it.Word)
		return true
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	gen := regenum.MustCompile("[abc]")
	count := 0
	err := All(gen, DefaultConfig(), func(it Item) bool {
		count++
		return count < 2
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if count != 2 {
		t.Errorf("callback invoked %d times, want 2 (stop after second)", count)
	}
}

func TestRangeValidatesBounds(t *testing.T) {
	gen := regenum.MustCompile("[abc]")
	err := Range(gen, big.NewInt(-1), big.NewInt(2), DefaultConfig(), func(Item) bool { return true })
	if !errors.Is(err, regerr.ErrOutOfRange) {
		t.Errorf("Range with negative from: error = %v, want ErrOutOfRange", err)
	}

	err = Range(gen, big.NewInt(0), big.NewInt(100), DefaultConfig(), func(Item) bool { return true })
	if !errors.Is(err, regerr.ErrOutOfRange) {
		t.Errorf("Range with to > length: error = %v, want ErrOutOfRange", err)
	}

	err = Range(gen, big.NewInt(2), big.NewInt(0), DefaultConfig(), func(Item) bool { return true })
	if !errors.Is(err, regerr.ErrOutOfRange) {
		t.Errorf("Range with to < from: error = %v, want ErrOutOfRange", err)
	}
}

func TestRangeBatchIndexStartsAtZero(t *testing.T) {
	gen := regenum.MustCompile("[abc]")
	var batchIndices []int
	err := Range(gen, big.NewInt(1), big.NewInt(3), DefaultConfig(), func(it Item) bool {
		batchIndices = append(batchIndices, it.BatchIndex)
		return true
	})
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(batchIndices) != 2 || batchIndices[0] != 0 || batchIndices[1] != 1 {
		t.Errorf("BatchIndex sequence = %v, want [0 1]", batchIndices)
	}
}

func TestDefaultConfig(t *testing.T) {
	if DefaultConfig().BatchSize != 1024 {
		t.Errorf("DefaultConfig().BatchSize = %d, want 1024", DefaultConfig().BatchSize)
	}
}
