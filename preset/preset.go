// Package preset implements the boundary types of spec.md §6.3: the
// in-memory shape a Preset/Mapping arrives in at the core's edge. No
// file I/O or serialization format lives here — callers build these
// with struct literals (or, outside this repository, a config loader)
// and call Validate before handing a Preset to the graph builder.
//
// Grounded on the Preset/Mapping shape in original_source/'s
// inputremapper/configs/mapping.py and keymapper/mapping.py, narrowed
// to spec.md's validation rules.
package preset

import (
	"errors"
	"fmt"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/symbols"
)

// Error kinds a Mapping can fail Validate with, matching spec.md §7's
// enumerated validation failures.
var (
	ErrNoOutput            = errors.New("preset: mapping has neither symbol nor explicit output")
	ErrAmbiguousOutput     = errors.New("preset: mapping has both symbol and explicit output")
	ErrAnalogNeedsOutput   = errors.New("preset: analog abs input requires an explicit output code")
	ErrUnknownSymbol       = errors.New("preset: output symbol does not resolve")
	ErrOutputNotKeyCapable = errors.New("preset: EV_KEY output implies a key-capable symbol or code")
	ErrTriggerOutOfRange   = errors.New("preset: abs trigger value must satisfy |v| < 100")
)

// Mapping is one user rule, spec.md §3. Exactly one of Symbol or
// (OutputType, OutputCode) is set; OutputValue is only meaningful when
// the explicit form is used and the output is discrete (EV_KEY-like).
type Mapping struct {
	Combination  event.InputCombination
	TargetUinput string

	Symbol         string
	OutputType     uint16
	OutputCode     uint16
	OutputValue    int32
	HasOutputValue bool

	Deadzone              float64
	Gain                  float64
	Expo                  float64
	RelRate               float64
	RelSpeed              float64
	RelWheelSpeed         float64
	RelWheelHiResSpeed    float64
	RelXYMaxInput         float64
	RelWheelMaxInput      float64
	RelWheelHiResMaxInput float64
	ReleaseTimeoutMs      int64
}

// hasExplicitOutput reports whether OutputType/OutputCode were set
// instead of Symbol.
func (m Mapping) hasExplicitOutput() bool {
	return m.OutputType != 0 || m.OutputCode != 0
}

// isAnalogAbsInput reports whether the combination contains an EV_ABS
// member used as a continuous axis (value == 0 marks "analog" in this
// model, matching the wrapping rules in handler.CombinationHandler).
func (m Mapping) isAnalogAbsInput() bool {
	for _, ev := range m.Combination.Events() {
		if ev.Type == input.EV_ABS && ev.Value == 0 {
			return true
		}
	}

	return false
}

// Validate enforces spec.md §6.3's validation rules against table for
// symbol resolution and outputKeyCapable for the EV_KEY capability
// check. It returns the first violation found.
func (m Mapping) Validate(table *symbols.Table, outputKeyCapable func(target string, code uint16) bool) error {
	var (
		hasSymbol   = m.Symbol != ""
		hasExplicit = m.hasExplicitOutput()
	)

	if !hasSymbol && !hasExplicit {
		return fmt.Errorf("preset.Mapping.Validate: %w", ErrNoOutput)
	}

	if hasSymbol && hasExplicit {
		return fmt.Errorf("preset.Mapping.Validate: %w", ErrAmbiguousOutput)
	}

	if m.isAnalogAbsInput() && !hasExplicit {
		return fmt.Errorf("preset.Mapping.Validate: %w", ErrAnalogNeedsOutput)
	}

	if hasSymbol && !table.Has(m.Symbol) && !looksLikeMacro(m.Symbol) {
		return fmt.Errorf("preset.Mapping.Validate(%q): %w", m.Symbol, ErrUnknownSymbol)
	}

	if hasExplicit && m.OutputType == input.EV_KEY && outputKeyCapable != nil {
		if !outputKeyCapable(m.TargetUinput, m.OutputCode) {
			return fmt.Errorf("preset.Mapping.Validate: %w", ErrOutputNotKeyCapable)
		}
	}

	for _, ev := range m.Combination.Events() {
		if ev.Type == input.EV_ABS && ev.Value != 0 {
			if ev.Value >= 100 || ev.Value <= -100 {
				return fmt.Errorf("preset.Mapping.Validate: %w", ErrTriggerOutOfRange)
			}
		}
	}

	return nil
}

// looksLikeMacro is a cheap syntactic check used only to decide whether
// an unresolved symbol should be treated as a macro source instead of
// an unknown key name; the macro package's own Parse is the real
// validator and runs at handler-graph build time.
func looksLikeMacro(symbol string) bool {
	for _, r := range symbol {
		if r == '(' {
			return true
		}
	}

	return false
}

// Preset is an ordered collection of mappings plus preset-wide macro
// options, spec.md §3/§6.3.
type Preset struct {
	Mappings              []Mapping
	MacroKeystrokeSleepMs int64
}

// Validate validates every mapping, returning the first error found
// together with the mapping's index. A caller (the graph builder) is
// expected to drop the offending mapping and continue, per spec.md
// §4.6's failure handling, not to abort the whole preset.
func (p Preset) Validate(table *symbols.Table, outputKeyCapable func(target string, code uint16) bool) (int, error) {
	for i, m := range p.Mappings {
		if err := m.Validate(table, outputKeyCapable); err != nil {
			return i, err
		}
	}

	return -1, nil
}
