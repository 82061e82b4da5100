package driver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/internal/table"
)

func TestDriveBookends(t *testing.T) {
	var events [][3]string
	err := Drive("a", table.Default, func(old, new, char string) error {
		events = append(events, [3]string{old, new, char})
		return nil
	})
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3 (BOF, 'a', EOF)", len(events))
	}
	if events[0][0] != table.BOF {
		t.Errorf("first event old state = %q, want BOF", events[0][0])
	}
	if events[len(events)-1][1] != table.EOF {
		t.Errorf("last event new state = %q, want EOF", events[len(events)-1][1])
	}
}

func TestDriveEmptyPattern(t *testing.T) {
	var events [][3]string
	err := Drive("", table.Default, func(old, new, char string) error {
		events = append(events, [3]string{old, new, char})
		return nil
	})
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (BOF, EOF)", len(events))
	}
}

func TestDriveStopsOnEmitError(t *testing.T) {
	sentinel := errors.New("stop")
	calls := 0
	err := Drive("abc", table.Default, func(old, new, char string) error {
		calls++
		if calls == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Drive error = %v, want sentinel", err)
	}
	if calls != 2 {
		t.Errorf("emit called %d times, want 2 (stopped early)", calls)
	}
}

func TestDriveUnterminated(t *testing.T) {
	b := table.NewBuilder()
	b.State(table.BOF).OnEmpty("mid")
	b.State("mid").On("a", "mid").OnEmpty("mid")
	tbl := b.Build()

	err := Drive("a", tbl, func(old, new, char string) error { return nil })
	if !errors.Is(err, regerr.ErrUnterminatedParse) {
		t.Errorf("Drive error = %v, want ErrUnterminatedParse", err)
	}
}

func TestDriveUnknownState(t *testing.T) {
	b := table.NewBuilder()
	tbl := b.Build()

	err := Drive("", tbl, func(old, new, char string) error { return nil })
	if !errors.Is(err, regerr.ErrUnknownState) {
		t.Errorf("Drive error = %v, want ErrUnknownState", err)
	}
}

func TestDrivePropagatesEmitErrorUnwrapped(t *testing.T) {
	custom := fmt.Errorf("custom failure")
	err := Drive("a", table.Default, func(old, new, char string) error {
		return custom
	})
	if err != custom {
		t.Errorf("Drive error = %v, want exactly custom (unwrapped)", err)
	}
}
