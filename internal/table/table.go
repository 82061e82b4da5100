// Package table implements the static transition table (C1): a mapping from
// state name to an ordered sequence of (next state, match spec) entries.
// The table is authored as data via Builder, not as Go control flow — the
// grammar for a different regex flavor is a pure data change here, never a
// rewrite of the driver.
package table

import (
	"fmt"
	"strings"

	"github.com/krombrey/regenum/internal/regerr"
)

// Reserved sentinel state names.
const (
	BOF = "BOF"
	EOF = "EOF"
	ERR = "ERR"
)

type matchKind int

const (
	kindWildcard matchKind = iota
	kindSet
	kindEmpty
)

// MatchSpec is one of wildcard / literal-set / empty, per spec.
type MatchSpec struct {
	kind matchKind
	set  string
}

// Wildcard matches any character; it is the conventional default/fallback
// branch and must be declared last within a state to preserve first-match
// semantics.
func Wildcard() MatchSpec { return MatchSpec{kind: kindWildcard} }

// Set matches c iff c is one of the single-byte characters in s.
func Set(s string) MatchSpec { return MatchSpec{kind: kindSet, set: s} }

// Empty matches only the BOF/EOF sentinel character "".
func Empty() MatchSpec { return MatchSpec{kind: kindEmpty} }

// Admits reports whether c is matched by this spec.
func (m MatchSpec) Admits(c string) bool {
	switch m.kind {
	case kindWildcard:
		return true
	case kindEmpty:
		return c == ""
	case kindSet:
		return c != "" && strings.Contains(m.set, c)
	default:
		return false
	}
}

// Transition is one ordered entry in a state's dispatch list.
type Transition struct {
	Next  string
	Match MatchSpec
}

// Table is the static state x character -> next-state mapping. Entries for
// a state are evaluated in declaration order; the first admitting entry
// wins.
type Table struct {
	states map[string][]Transition
}

// Apply looks up state and returns the next state for character c. It fails
// with regerr.ErrUnknownState when state is absent from the table, and with
// regerr.ErrNoTransition when no entry in state admits c.
func (t *Table) Apply(state, c string) (string, error) {
	entries, ok := t.states[state]
	if !ok {
		return "", fmt.Errorf("%w: %q", regerr.ErrUnknownState, state)
	}
	for _, e := range entries {
		if e.Match.Admits(c) {
			return e.Next, nil
		}
	}
	return "", fmt.Errorf("%w: state %q, char %q", regerr.ErrNoTransition, state, c)
}

// Builder declares a Table's states near the code that interprets them,
// rather than as one large untyped map literal.
type Builder struct {
	t *Table
}

// NewBuilder creates an empty table builder.
func NewBuilder() *Builder {
	return &Builder{t: &Table{states: map[string][]Transition{}}}
}

// StateBuilder appends ordered entries to a single state.
type StateBuilder struct {
	b    *Builder
	name string
}

// State begins (or resumes) declaring entries for the named state.
func (b *Builder) State(name string) *StateBuilder {
	if _, ok := b.t.states[name]; !ok {
		b.t.states[name] = nil
	}
	return &StateBuilder{b: b, name: name}
}

// On appends a literal-set entry: admit any character in set, go to next.
func (s *StateBuilder) On(set, next string) *StateBuilder {
	s.b.t.states[s.name] = append(s.b.t.states[s.name], Transition{Next: next, Match: Set(set)})
	return s
}

// OnEmpty appends an entry admitting only the BOF/EOF sentinel.
func (s *StateBuilder) OnEmpty(next string) *StateBuilder {
	s.b.t.states[s.name] = append(s.b.t.states[s.name], Transition{Next: next, Match: Empty()})
	return s
}

// Else appends the wildcard fallback entry. Must be the last entry declared
// for a state, since any subsequent entry would be unreachable.
func (s *StateBuilder) Else(next string) *StateBuilder {
	s.b.t.states[s.name] = append(s.b.t.states[s.name], Transition{Next: next, Match: Wildcard()})
	return s
}

// Build finalizes and returns the constructed table.
func (b *Builder) Build() *Table {
	return b.t
}
