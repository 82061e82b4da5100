package table

import "testing"

func TestDefaultSimpleLiteral(t *testing.T) {
	state, err := Default.Apply(BOF, "")
	if err != nil {
		t.Fatalf("BOF: %v", err)
	}
	if state != StateRegexStart {
		t.Fatalf("BOF -> %q, want %q", state, StateRegexStart)
	}

	state, err = Default.Apply(state, "a")
	if err != nil {
		t.Fatalf("'a': %v", err)
	}
	if state != StateRegexNext {
		t.Fatalf("regex_start -('a')-> %q, want %q", state, StateRegexNext)
	}

	state, err = Default.Apply(state, "")
	if err != nil {
		t.Fatalf("EOF: %v", err)
	}
	if state != EOF {
		t.Fatalf("regex_next -(EOF)-> %q, want %q", state, EOF)
	}
}

func TestDefaultListRange(t *testing.T) {
	seq := []string{"[", "a", "-", "z", "]"}
	state := StateRegexStart
	want := []string{StateListStart, StateListBody, StateListRange, StateListBody, StateListClose}
	for i, c := range seq {
		next, err := Default.Apply(state, c)
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", state, c, err)
		}
		if next != want[i] {
			t.Errorf("Apply(%q, %q) = %q, want %q", state, c, next, want[i])
		}
		state = next
	}
}

func TestDefaultRepeatBounds(t *testing.T) {
	seq := []string{"{", "2", ",", "3", "}"}
	state := StateRegexNext
	want := []string{StateRepeatFromStart, StateRepeatFromNext, StateRepeatToStart, StateRepeatToNext, StateRegexNextRepeat}
	for i, c := range seq {
		next, err := Default.Apply(state, c)
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", state, c, err)
		}
		if next != want[i] {
			t.Errorf("Apply(%q, %q) = %q, want %q", state, c, next, want[i])
		}
		state = next
	}
}

func TestDefaultRepeatMalformedTrapsErr(t *testing.T) {
	next, err := Default.Apply(StateRepeatFromStart, "x")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next != ERR {
		t.Errorf("Apply(regex_repeat_from_start, 'x') = %q, want ERR", next)
	}
}

func TestDefaultTrailingDashInList(t *testing.T) {
	seq := []string{"[", "a", "b", "-", "]"}
	state := StateRegexStart
	want := []string{StateListStart, StateListBody, StateListBody, StateListRange, StateListClose}
	for i, c := range seq {
		next, err := Default.Apply(state, c)
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", state, c, err)
		}
		if next != want[i] {
			t.Errorf("Apply(%q, %q) = %q, want %q", state, c, next, want[i])
		}
		state = next
	}
}
