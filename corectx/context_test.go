package corectx

import (
	"testing"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/handler"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
)

type resetCounter struct {
	calls int
}

func (r *resetCounter) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	return true, nil
}

func (r *resetCounter) Reset() { r.calls++ }

func TestContextResetDedupesSharedHandlers(t *testing.T) {
	ctx := New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	shared := &resetCounter{}
	ctx.SetHandlers(1, 29, []handler.Handler{shared})
	ctx.SetHandlers(1, 30, []handler.Handler{shared})

	ctx.Reset()

	if shared.calls != 1 {
		t.Errorf("a handler registered at two (type, code) entries should be reset once, got %d calls", shared.calls)
	}
}

func TestContextForwardOutputRoundTrip(t *testing.T) {
	ctx := New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	if _, ok := ctx.ForwardOutput("/dev/input/event3"); ok {
		t.Fatalf("expected no forward output registered yet")
	}

	ctx.SetForwardOutput("/dev/input/event3", "forward-event3")

	target, ok := ctx.ForwardOutput("/dev/input/event3")
	if !ok || target != "forward-event3" {
		t.Errorf("ForwardOutput = (%q, %v), want (\"forward-event3\", true)", target, ok)
	}
}

func TestContextMacroListenerFanout(t *testing.T) {
	ctx := New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	var gotA, gotB event.InputEvent

	ctx.AddMacroListener(func(ev event.InputEvent, source string) { gotA = ev })
	ctx.AddMacroListener(func(ev event.InputEvent, source string) { gotB = ev })

	want := event.New(1, 30, 1)
	ctx.NotifyListeners(want, "dev0")

	if !gotA.Equal(want) || !gotB.Equal(want) {
		t.Errorf("both listeners should observe the notified event")
	}
}

func TestContextHandlersForUnboundReturnsNil(t *testing.T) {
	ctx := New(preset.Preset{}, output.NewRegistry(), macro.NewStore())

	if got := ctx.HandlersFor(1, 99); got != nil {
		t.Errorf("expected nil handler list for an unbound (type, code), got %v", got)
	}
}
