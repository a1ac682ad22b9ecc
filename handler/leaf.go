package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
)

// KeyHandler writes a press on value 1 and a release on value 0 to
// the configured output code, idempotently, per spec.md §4.5's
// KeyHandler/MacroHandler/NullHandler section.
type KeyHandler struct {
	base

	target  string
	code    uint16
	pressed bool
}

// NewKeyHandler returns a KeyHandler writing (EV_KEY, code) to target.
func NewKeyHandler(target string, code uint16) *KeyHandler {
	return &KeyHandler{target: target, code: code}
}

// Notify implements [Handler].
func (h *KeyHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	var (
		down bool
		err  error
	)

	down = ev.Value != 0

	if down == h.pressed {
		return true, nil
	}

	h.pressed = down

	if suppress {
		return true, nil
	}

	var value int32
	if down {
		value = 1
	}

	err = forward.Write(h.target, input.EV_KEY, h.code, value)
	if err != nil {
		return true, fmt.Errorf("handler.KeyHandler.Notify: %w", err)
	}

	return true, nil
}

// Reset clears the handler's pressed state. It writes no release event
// to the output, so a key this handler pressed stays down there.
func (h *KeyHandler) Reset() {
	h.pressed = false
}

// MacroHandler runs a compiled macro on press and signals it on
// release, per spec.md §4.5.
type MacroHandler struct {
	base

	target string
	m      *macro.Macro
	held   bool

	mu sync.Mutex
}

// NewMacroHandler returns a MacroHandler driving m, writing through target.
func NewMacroHandler(target string, m *macro.Macro) *MacroHandler {
	return &MacroHandler{target: target, m: m}
}

// Notify implements [Handler].
func (h *MacroHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	var down = ev.Value != 0

	h.mu.Lock()
	defer h.mu.Unlock()

	if down == h.held {
		return true, nil
	}

	h.held = down

	if suppress {
		return true, nil
	}

	if down {
		h.m.PressKey()

		go func() {
			_ = h.m.Run(context.Background(), func(evType, code uint16, value int32) error {
				return forward.Write(h.target, evType, code, value)
			})
		}()
	} else {
		h.m.ReleaseKey()
	}

	return true, nil
}

// Reset releases any in-flight hold.
func (h *MacroHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.held {
		h.m.ReleaseKey()
		h.held = false
	}
}

// NullHandler claims every event it is notified of and does nothing,
// used for inputs explicitly mapped to "disable" in a preset.
type NullHandler struct {
	base
}

// NewNullHandler returns a NullHandler.
func NewNullHandler() *NullHandler { return &NullHandler{} }

// Notify always claims and never writes.
func (h *NullHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	return true, nil
}

// Reset is a no-op; NullHandler carries no state.
func (h *NullHandler) Reset() {}
