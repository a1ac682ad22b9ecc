package graph

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/inputcore/remapper/corectx"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/symbols"
)

func testDeps() Deps {
	return Deps{
		Registry:         output.NewRegistry(),
		Table:            symbols.New(map[string]uint16{"KEY_B": input.KEY_B, "KEY_Z": input.KEY_Z}),
		Variables:        macro.NewStore(),
		OutputKeyCapable: func(target string, code uint16) bool { return true },
		Logger:           zerolog.Nop(),
	}
}

// TestSingleKeyRemap covers spec.md §8 scenario 1: a plain (EV_KEY,
// code, 1) -> keyboard:KEY_B mapping yields exactly one handler bound
// to (EV_KEY, 30), which claims press and release.
func TestSingleKeyRemap(t *testing.T) {
	ctx := corectx.New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	p := preset.Preset{Mappings: []preset.Mapping{
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_B",
		},
	}}

	Build(ctx, p, testDeps())

	handlers := ctx.HandlersFor(input.EV_KEY, 30)
	if len(handlers) != 1 {
		t.Fatalf("expected exactly one handler at (EV_KEY, 30), got %d", len(handlers))
	}

	claimed, err := handlers[0].Notify(event.New(input.EV_KEY, 30, 1), "dev0", ctx.Outputs, false)
	if err != nil || !claimed {
		t.Fatalf("press not claimed: claimed=%v err=%v", claimed, err)
	}

	claimed, err = handlers[0].Notify(event.New(input.EV_KEY, 30, 0), "dev0", ctx.Outputs, false)
	if err != nil || !claimed {
		t.Fatalf("release not claimed: claimed=%v err=%v", claimed, err)
	}
}

// TestTwoKeyCombination covers spec.md §8 scenario 2: a chord binds
// both member codes, each resolving to the same CombinationHandler.
func TestTwoKeyCombination(t *testing.T) {
	ctx := corectx.New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	p := preset.Preset{Mappings: []preset.Mapping{
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 29, 1), event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_Z",
		},
	}}

	Build(ctx, p, testDeps())

	h29 := ctx.HandlersFor(input.EV_KEY, 29)
	h30 := ctx.HandlersFor(input.EV_KEY, 30)

	if len(h29) != 1 || len(h30) != 1 {
		t.Fatalf("expected one handler bound to each chord member, got %d/%d", len(h29), len(h30))
	}

	if h29[0] != h30[0] {
		t.Fatalf("both chord members should resolve to the same CombinationHandler instance")
	}
}

// TestHierarchyPriority covers spec.md §8 scenario 6: two mappings
// ending in the same key are ranked, longest chord first.
func TestHierarchyPriority(t *testing.T) {
	ctx := corectx.New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	p := preset.Preset{Mappings: []preset.Mapping{
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_B",
		},
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 29, 1), event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_Z",
		},
	}}

	Build(ctx, p, testDeps())

	handlers := ctx.HandlersFor(input.EV_KEY, 30)
	if len(handlers) != 1 {
		t.Fatalf("expected a single HierarchyHandler at (EV_KEY, 30), got %d entries", len(handlers))
	}

	reg := output.NewRegistry()

	// Pressing 29 then 30 should activate the chord (Y), not the
	// single-key mapping (X): the chord handler must be tried first.
	if _, err := ctx.HandlersFor(input.EV_KEY, 29)[0].Notify(event.New(input.EV_KEY, 29, 1), "dev0", reg, false); err != nil {
		t.Fatalf("notify 29: %v", err)
	}

	claimed, err := handlers[0].Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)
	if err != nil || !claimed {
		t.Fatalf("expected (EV_KEY, 30) press to be claimed by the hierarchy, got claimed=%v err=%v", claimed, err)
	}
}

// TestHandlerGraphClaimExclusivity is the general form of the property in spec.md
// §8: for any event, at most one handler in a (type, code)'s list
// claims it.
func TestHandlerGraphClaimExclusivity(t *testing.T) {
	ctx := corectx.New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	p := preset.Preset{Mappings: []preset.Mapping{
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_B",
		},
		{
			Combination:  event.NewCombination(event.New(input.EV_KEY, 29, 1), event.New(input.EV_KEY, 30, 1)),
			TargetUinput: output.Keyboard,
			Symbol:       "KEY_Z",
		},
	}}

	Build(ctx, p, testDeps())

	handlers := ctx.HandlersFor(input.EV_KEY, 30)

	reg := output.NewRegistry()

	claims := 0

	for _, h := range handlers {
		claimed, _ := h.Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)
		if claimed {
			claims++
		}
	}

	if claims > 1 {
		t.Errorf("expected at most one handler to claim the event, got %d", claims)
	}
}
