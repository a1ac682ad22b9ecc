//go:build linux

package symbols

import "github.com/inputcore/remapper/linux/input"

// Capture snapshots the host's key-name -> code mapping from
// linux/input's generated Names table. Per spec.md §4.2 and §9, this
// snapshot is taken once at core start; the returned Table is read-only
// for the rest of the process.
func Capture() *Table {
	return New(input.Names)
}
