package preset

import (
	"errors"
	"testing"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/symbols"
)

func testTable() *symbols.Table {
	return symbols.New(map[string]uint16{"KEY_A": 30, "KEY_B": 48})
}

func TestValidateRejectsNoOutput(t *testing.T) {
	m := Mapping{Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1))}

	if err := m.Validate(testTable(), nil); !errors.Is(err, ErrNoOutput) {
		t.Errorf("Validate() = %v, want ErrNoOutput", err)
	}
}

func TestValidateRejectsAmbiguousOutput(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1)),
		Symbol:      "KEY_B",
		OutputType:  input.EV_KEY,
		OutputCode:  48,
	}

	if err := m.Validate(testTable(), nil); !errors.Is(err, ErrAmbiguousOutput) {
		t.Errorf("Validate() = %v, want ErrAmbiguousOutput", err)
	}
}

func TestValidateRequiresExplicitOutputForAnalogAxis(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_ABS, 0, 0)),
		Symbol:      "KEY_A",
	}

	if err := m.Validate(testTable(), nil); !errors.Is(err, ErrAnalogNeedsOutput) {
		t.Errorf("Validate() = %v, want ErrAnalogNeedsOutput", err)
	}
}

func TestValidateRejectsUnknownSymbol(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1)),
		Symbol:      "KEY_NOPE",
	}

	if err := m.Validate(testTable(), nil); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Validate() = %v, want ErrUnknownSymbol", err)
	}
}

func TestValidateAcceptsMacroSymbol(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1)),
		Symbol:      "k(KEY_A)",
	}

	if err := m.Validate(testTable(), nil); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfRangeTrigger(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_ABS, 1, 100)),
		OutputType:  input.EV_KEY,
		OutputCode:  30,
	}

	if err := m.Validate(testTable(), nil); !errors.Is(err, ErrTriggerOutOfRange) {
		t.Errorf("Validate() = %v, want ErrTriggerOutOfRange", err)
	}
}

func TestValidateChecksKeyCapability(t *testing.T) {
	m := Mapping{
		Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1)),
		OutputType:  input.EV_KEY,
		OutputCode:  48,
	}

	capable := func(target string, code uint16) bool { return false }

	if err := m.Validate(testTable(), capable); !errors.Is(err, ErrOutputNotKeyCapable) {
		t.Errorf("Validate() = %v, want ErrOutputNotKeyCapable", err)
	}
}

func TestPresetValidateReportsFirstBadMapping(t *testing.T) {
	p := Preset{Mappings: []Mapping{
		{Combination: event.NewCombination(event.New(input.EV_KEY, 30, 1)), Symbol: "KEY_A"},
		{Combination: event.NewCombination(event.New(input.EV_KEY, 31, 1))},
	}}

	i, err := p.Validate(testTable(), nil)
	if i != 1 || !errors.Is(err, ErrNoOutput) {
		t.Errorf("Validate() = (%d, %v), want (1, ErrNoOutput)", i, err)
	}
}
