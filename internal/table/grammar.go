package table

// Digits is the character set accepted inside {m} / {m,n} repeat bounds.
const Digits = "0123456789"

// State names for the one grammar this module ships (spec.md §6). Naming
// follows the source's convention of a "regex_" or "list_" prefix plus the
// triggering construct. Two states — list_body and list_range — stand in
// for what the source's table description and its builder pseudocode name
// inconsistently (list_next/list_range_next/list_next_range all refer to
// the same two points: "accumulating inside a bracket expression" and
// "just consumed '-', awaiting the range's upper bound"); see DESIGN.md.
const (
	StateRegexStart      = "regex_start"
	StateRegexNext       = "regex_next"
	StateRegexNextOr     = "regex_next_or"
	StateRegexNextRegex  = "regex_next_regex"
	StateRegexNextRepeat = "regex_next_repeat"
	StateRegexEscape     = "regex_escape"

	StateListStart  = "list_start"
	StateListBody   = "list_body"
	StateListEscape = "list_escape"
	StateListRange  = "list_range"
	StateListClose  = "list_close"

	StateRepeatFromStart = "regex_repeat_from_start"
	StateRepeatFromNext  = "regex_repeat_from_next"
	StateRepeatToStart   = "regex_repeat_to_start"
	StateRepeatToNext    = "regex_repeat_to_next"
)

// Default is the one transition table this module ships.
var Default = buildDefault()

func buildDefault() *Table {
	b := NewBuilder()

	b.State(BOF).OnEmpty(StateRegexStart)

	// regex_start: first token of the pattern, or the first token inside a
	// freshly opened group. Falls through to regex_next for a plain literal
	// character, matching spec.md §6.
	b.State(StateRegexStart).
		On("\\", StateRegexEscape).
		On("[", StateListStart).
		On("(", StateRegexStart).
		On(")", StateRegexNextRegex).
		OnEmpty(EOF).
		Else(StateRegexNext)

	for _, s := range []string{StateRegexNext, StateRegexNextOr, StateRegexNextRegex, StateRegexNextRepeat, StateListClose} {
		b.State(s).
			On("?", StateRegexNextRepeat).
			On("{", StateRepeatFromStart).
			On("(", StateRegexStart).
			On(")", StateRegexNextRegex).
			On("\\", StateRegexEscape).
			On("[", StateListStart).
			On("|", StateRegexNextOr).
			OnEmpty(EOF).
			Else(StateRegexNext)
	}

	// A dangling backslash at EOF is taken by the wildcard fallback to
	// regex_next, so the drive ends outside EOF and fails with
	// UnterminatedParse.
	b.State(StateRegexEscape).Else(StateRegexNext)

	b.State(StateListStart).
		On("\\", StateListEscape).
		On("]", StateListClose).
		Else(StateListBody)

	b.State(StateListBody).
		On("\\", StateListEscape).
		On("]", StateListClose).
		On("-", StateListRange).
		Else(StateListBody)

	b.State(StateListEscape).Else(StateListBody)

	b.State(StateListRange).
		On("]", StateListClose).
		Else(StateListBody)

	b.State(StateRepeatFromStart).
		On(",", StateRepeatToStart).
		On("}", StateRegexNextRepeat).
		On(Digits, StateRepeatFromNext).
		Else(ERR)

	b.State(StateRepeatFromNext).
		On(",", StateRepeatToStart).
		On("}", StateRegexNextRepeat).
		On(Digits, StateRepeatFromNext).
		Else(ERR)

	b.State(StateRepeatToStart).
		On(Digits, StateRepeatToNext).
		Else(ERR)

	b.State(StateRepeatToNext).
		On("}", StateRegexNextRepeat).
		On(Digits, StateRepeatToNext).
		Else(ERR)

	b.State(ERR).Else(ERR)

	return b.Build()
}
