// Package symbols implements the process-wide system symbol table:
// human-readable key names (as typed into a macro's k("...") call or a
// mapping's output_symbol) resolved to the numeric codes a target
// virtual output understands.
//
// Captured once from a name->code snapshot at core start (spec.md
// §4.2, §9 "Global mutable state"), then read-only for the remainder
// of the process. Grounded on the EV_KEY/BTN_* constant block in
// github.com/inputcore/remapper/linux/input/eventCodes.go, the same
// corpus source every other code lookup in this repository uses.
package symbols

import (
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownSymbol is returned when a symbol name has no known code.
var ErrUnknownSymbol = fmt.Errorf("symbols: unknown symbol")

// Table maps key symbol names to numeric key codes. The zero value is
// usable (an empty table); use [Capture] to snapshot a name->code set
// at process start.
type Table struct {
	mu     sync.RWMutex
	byName map[string]uint16
}

// New builds a Table from an explicit name->code map, copying it so the
// caller's map can still be mutated afterward without affecting the
// table.
func New(names map[string]uint16) *Table {
	var (
		t    Table
		name string
		code uint16
	)

	t.byName = make(map[string]uint16, len(names))

	for name, code = range names {
		t.byName[strings.ToUpper(name)] = code
	}

	return &t
}

// Lookup resolves a symbol name (case-insensitive) to its numeric code.
func (t *Table) Lookup(name string) (uint16, error) {
	var (
		code uint16
		ok   bool
	)

	t.mu.RLock()
	code, ok = t.byName[strings.ToUpper(name)]
	t.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("symbols.Lookup(%q): %w", name, ErrUnknownSymbol)
	}

	return code, nil
}

// Has reports whether name resolves to a known code.
func (t *Table) Has(name string) bool {
	var ok bool

	t.mu.RLock()
	_, ok = t.byName[strings.ToUpper(name)]
	t.mu.RUnlock()

	return ok
}

// Len returns the number of distinct symbol names in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byName)
}
