// Package driver implements C2: it feeds a byte stream through a transition
// table, emitting (old, new, char) events in input order with synthetic
// BOF/EOF bookends. The driver never looks ahead and never backtracks.
package driver

import (
	"fmt"

	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/internal/table"
)

// Emit receives one transition event. Returning a non-nil error aborts the
// drive immediately; Drive returns that error unwrapped.
type Emit func(old, new, char string) error

// Drive pushes text through t, bookended by a synthetic start transition
// from table.BOF and a synthetic end transition into table.EOF, and
// delivers every transition to emit in input order.
//
// It fails with regerr.ErrUnknownState or regerr.ErrNoTransition when the
// table itself is malformed or rejects a character, and with
// regerr.ErrUnterminatedParse when input is exhausted in a state other than
// table.EOF.
func Drive(text string, t *table.Table, emit Emit) error {
	state, err := t.Apply(table.BOF, "")
	if err != nil {
		return err
	}
	if err := emit(table.BOF, state, ""); err != nil {
		return err
	}

	for i := 0; i < len(text); i++ {
		c := string(text[i])
		next, err := t.Apply(state, c)
		if err != nil {
			return err
		}
		if err := emit(state, next, c); err != nil {
			return err
		}
		state = next
	}

	final, err := t.Apply(state, "")
	if err != nil {
		return err
	}
	if err := emit(state, final, ""); err != nil {
		return err
	}
	if final != table.EOF {
		return fmt.Errorf("%w: final state %q", regerr.ErrUnterminatedParse, final)
	}
	return nil
}
