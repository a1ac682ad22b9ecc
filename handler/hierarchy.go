package handler

import (
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/output"
)

// HierarchyHandler notifies an ordered list of handlers bound to the
// same (type, code): only the first handler that claims the event runs
// for real, the rest are still notified but suppressed, per spec.md
// §4.5. Grounded on hierarchy_handler.py.
type HierarchyHandler struct {
	handlers []Handler
	key      TypeCode
}

// NewHierarchyHandler returns a HierarchyHandler trying handlers, in
// order, for events matching key.
func NewHierarchyHandler(handlers []Handler, key TypeCode) *HierarchyHandler {
	return &HierarchyHandler{handlers: handlers, key: key}
}

// NeedsWrapping implements [Wiring].
func (h *HierarchyHandler) NeedsWrapping() bool { return false }

// WrapSpecs implements [Wiring].
func (h *HierarchyHandler) WrapSpecs() []WrapSpec { return nil }

// NeedsRanking implements [Wiring].
func (h *HierarchyHandler) NeedsRanking() bool { return false }

// RankBy implements [Wiring].
func (h *HierarchyHandler) RankBy() event.InputCombination { return event.InputCombination{} }

// SetSubHandler implements [Wiring]; a hierarchy has no single
// sub-handler, so this is a no-op.
func (h *HierarchyHandler) SetSubHandler(sub Handler) {}

// Notify implements [Handler]: the first handler to claim the event
// wins; the rest are still notified, in order, with suppress forced on
// so they can track state without producing duplicate output.
func (h *HierarchyHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != h.key.Type || ev.Code != h.key.Code {
		return false, nil
	}

	var (
		claimed  bool
		firstErr error
	)

	for _, sub := range h.handlers {
		if !claimed {
			ok, err := sub.Notify(ev, source, forward, suppress)
			if err != nil {
				firstErr = err
			}

			claimed = ok

			continue
		}

		if _, err := sub.Notify(ev, source, forward, true); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return claimed, firstErr
}

// Reset resets every handler in the hierarchy.
func (h *HierarchyHandler) Reset() {
	for _, sub := range h.handlers {
		sub.Reset()
	}
}
