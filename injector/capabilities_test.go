package injector

import (
	"testing"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/symbols"
	"github.com/inputcore/remapper/telemetry"
)

func TestComputeKeyCapabilities(t *testing.T) {
	var table = symbols.New(map[string]uint16{"KEY_ESC": 1, "KEY_A": 30})

	var p = preset.Preset{
		Mappings: []preset.Mapping{
			{
				Combination:  event.NewCombination(event.New(input.EV_KEY, input.KEY_CAPSLOCK, 1)),
				TargetUinput: output.Keyboard,
				Symbol:       "KEY_ESC",
			},
			{
				Combination:  event.NewCombination(event.New(input.EV_KEY, input.KEY_B, 1)),
				TargetUinput: output.Keyboard,
				Symbol:       "k(KEY_A)",
			},
			{
				Combination:  event.NewCombination(event.New(input.EV_KEY, input.KEY_C, 1)),
				TargetUinput: "custom",
				OutputType:   input.EV_KEY,
				OutputCode:   5,
			},
		},
	}

	var caps = computeKeyCapabilities(p, table, macro.NewStore(), telemetry.Nop())

	if _, ok := caps[output.Keyboard][1]; !ok {
		t.Errorf("caps[keyboard] missing code 1 (KEY_ESC)")
	}

	if _, ok := caps[output.Keyboard][30]; !ok {
		t.Errorf("caps[keyboard] missing code 30 (macro KEY_A)")
	}

	if _, ok := caps["custom"][5]; !ok {
		t.Errorf("caps[custom] missing explicit code 5")
	}
}

func TestTemplateFor(t *testing.T) {
	if tmpl := templateFor(output.Mouse); len(tmpl.Rel) == 0 {
		t.Errorf("templateFor(mouse) has no Rel capabilities")
	}

	if tmpl := templateFor(output.Gamepad); len(tmpl.Abs) == 0 {
		t.Errorf("templateFor(gamepad) has no Abs capabilities")
	}

	if tmpl := templateFor("some-keyboard"); len(tmpl.Keys) == 0 {
		t.Errorf("templateFor(unknown) defaults to a keyboard template with no keys")
	}
}

func TestLooksLikeMacro(t *testing.T) {
	if looksLikeMacro("KEY_A") {
		t.Errorf("looksLikeMacro(%q) = true, want false", "KEY_A")
	}

	if !looksLikeMacro("k(KEY_A)") {
		t.Errorf("looksLikeMacro(%q) = false, want true", "k(KEY_A)")
	}
}
