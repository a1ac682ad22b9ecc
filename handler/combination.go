package handler

import (
	"fmt"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// TypeCode is the (type, code) key used throughout the handler tree to
// identify an event's source without its value.
type TypeCode struct {
	Type uint16
	Code uint16
}

// CombinationHandler tracks each key-like member of a combination and
// notifies its sub-handler once every member is active, per spec.md
// §4.5. Grounded on combination_handler.py.
type CombinationHandler struct {
	combination event.InputCombination
	outputType  uint16
	sub         Handler

	pressed map[TypeCode]bool
	axis    *TypeCode
	active  bool
}

// NewCombinationHandler returns a CombinationHandler bound to
// combination. outputType is the mapping's output event type, needed
// to pick the right wrapper kind for key-like members that feed an
// axis output (see WrapSpecs).
func NewCombinationHandler(combination event.InputCombination, outputType uint16) *CombinationHandler {
	var (
		h  = &CombinationHandler{combination: combination, outputType: outputType, pressed: make(map[TypeCode]bool)}
		ev event.InputEvent
	)

	for _, ev = range combination.Events() {
		tc := TypeCode{ev.Type, ev.Code}

		if ev.Value != 0 {
			h.pressed[tc] = false
		} else {
			h.axis = &tc
		}
	}

	return h
}

// SetSubHandler implements [Wiring].
func (h *CombinationHandler) SetSubHandler(sub Handler) { h.sub = sub }

// NeedsRanking implements [Wiring]: every CombinationHandler may share
// its last key with sibling combinations and must be ranked.
func (h *CombinationHandler) NeedsRanking() bool { return true }

// RankBy implements [Wiring]: rank by the key-like members only.
func (h *CombinationHandler) RankBy() event.InputCombination {
	var keyLike []event.InputEvent

	for _, ev := range h.combination.Events() {
		if ev.Value != 0 {
			keyLike = append(keyLike, ev)
		}
	}

	return event.NewCombination(keyLike...)
}

// NeedsWrapping implements [Wiring].
func (h *CombinationHandler) NeedsWrapping() bool { return len(h.WrapSpecs()) > 0 }

// WrapSpecs implements [Wiring]: EV_ABS/EV_REL analog members need a
// to-button wrapper; EV_KEY members feeding an axis output need a
// button-to-axis wrapper.
func (h *CombinationHandler) WrapSpecs() []WrapSpec {
	var specs []WrapSpec

	for _, ev := range h.combination.Events() {
		single := event.NewCombination(ev)

		switch {
		case ev.Type == input.EV_ABS && ev.Value != 0:
			specs = append(specs, WrapSpec{Combination: single, Kind: KindAbsToBtn})
		case ev.Type == input.EV_REL && ev.Value != 0:
			specs = append(specs, WrapSpec{Combination: single, Kind: KindRelToBtn})
		case ev.Type == input.EV_KEY && ev.Value == 0:
			if h.outputType == input.EV_ABS {
				specs = append(specs, WrapSpec{Combination: single, Kind: KindBtnToAbs})
			} else if h.outputType == input.EV_REL {
				specs = append(specs, WrapSpec{Combination: single, Kind: KindBtnToRel})
			}
		}
	}

	return specs
}

// allPressed reports whether every key-like member is currently active.
func (h *CombinationHandler) allPressed() bool {
	for _, v := range h.pressed {
		if !v {
			return false
		}
	}

	return true
}

// forwardRelease writes a synthetic release, on the forward output the
// reader registers for source ("forward:" + source), for every member
// whose origin was a key event, suppressing the leak of "the user held
// A+B" to the host, per the original's forward_release.
func (h *CombinationHandler) forwardRelease(source string, forward *output.Registry) {
	if h.combination.Len() == 1 {
		return
	}

	for _, ev := range h.combination.Events() {
		if ev.Type != input.EV_KEY {
			continue
		}

		_ = forward.Write("forward:"+source, ev.Type, ev.Code, 0)
	}
}

// Notify implements [Handler].
func (h *CombinationHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	var (
		tc       = TypeCode{ev.Type, ev.Code}
		_, isKey = h.pressed[tc]
	)

	if !isKey && (h.axis == nil || *h.axis != tc) {
		return false, nil
	}

	if h.axis != nil && tc == *h.axis && !ev.Has(event.AsKey) {
		if h.active {
			return h.sub.Notify(ev, source, forward, suppress)
		}

		return false, nil
	}

	h.pressed[tc] = ev.Value == 1

	var nowActive = h.allPressed()
	if nowActive == h.active {
		return false, nil
	}

	if nowActive && ev.Value == 1 {
		h.forwardRelease(source, forward)
	}

	if suppress {
		return false, nil
	}

	var synthetic event.InputEvent
	if nowActive && ev.Value == 1 {
		synthetic = ev.WithValue(1)
		h.active = true
	} else {
		synthetic = ev.WithValue(0)
		h.active = false
	}

	if h.axis != nil && synthetic.Value == 0 {
		recenter := event.New(h.axis.Type, h.axis.Code, 0).WithAction(event.Recenter)

		if _, err := h.sub.Notify(recenter, source, forward, suppress); err != nil {
			return true, fmt.Errorf("handler.CombinationHandler.Notify: %w", err)
		}

		return true, nil
	}

	if h.axis != nil {
		return true, nil
	}

	claimed, err := h.sub.Notify(synthetic, source, forward, suppress)
	if err != nil {
		return claimed, fmt.Errorf("handler.CombinationHandler.Notify: %w", err)
	}

	return claimed, nil
}

// Reset clears all tracked key state and resets the sub-handler.
func (h *CombinationHandler) Reset() {
	for k := range h.pressed {
		h.pressed[k] = false
	}

	h.active = false

	if h.sub != nil {
		h.sub.Reset()
	}
}
