package handler

import (
	"fmt"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// AxisSwitchHandler gates a wrapped axis handler behind one or more
// trigger keys, per spec.md §4.5. Grounded on axis_switch_handler.py.
type AxisSwitchHandler struct {
	mapAxis     TypeCode
	triggerKeys map[TypeCode]struct{}
	sub         Handler

	active       bool
	lastValue    int32
	cachedSource string
}

// NewAxisSwitchHandler returns an AxisSwitchHandler gating mapAxis
// behind triggerKeys.
func NewAxisSwitchHandler(mapAxis TypeCode, triggerKeys []TypeCode) *AxisSwitchHandler {
	var h = &AxisSwitchHandler{mapAxis: mapAxis, triggerKeys: make(map[TypeCode]struct{}, len(triggerKeys))}

	for _, tc := range triggerKeys {
		h.triggerKeys[tc] = struct{}{}
	}

	return h
}

// SetSubHandler implements [Wiring].
func (h *AxisSwitchHandler) SetSubHandler(sub Handler) { h.sub = sub }

// NeedsWrapping implements [Wiring]: the key-like trigger members must
// be condensed by a CombinationHandler before reaching this handler
// whenever there is more than one trigger key.
func (h *AxisSwitchHandler) NeedsWrapping() bool { return len(h.triggerKeys) > 1 }

// WrapSpecs implements [Wiring].
func (h *AxisSwitchHandler) WrapSpecs() []WrapSpec {
	if len(h.triggerKeys) <= 1 {
		return nil
	}

	var events []event.InputEvent

	for tc := range h.triggerKeys {
		events = append(events, event.New(tc.Type, tc.Code, 1))
	}

	return []WrapSpec{{Combination: event.NewCombination(events...), Kind: KindCombination}}
}

// NeedsRanking implements [Wiring].
func (h *AxisSwitchHandler) NeedsRanking() bool { return false }

// RankBy implements [Wiring].
func (h *AxisSwitchHandler) RankBy() event.InputCombination { return event.InputCombination{} }

// Notify implements [Handler].
func (h *AxisSwitchHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	var (
		tc          = TypeCode{ev.Type, ev.Code}
		_, isTrigger = h.triggerKeys[tc]
	)

	if !isTrigger && tc != h.mapAxis {
		return false, nil
	}

	if isTrigger {
		var wasActive = ev.Value != 0

		if h.active == wasActive {
			return false, nil
		}

		h.active = wasActive

		if !h.active {
			recenter := event.New(h.mapAxis.Type, h.mapAxis.Code, 0).WithAction(event.Recenter)

			_, err := h.sub.Notify(recenter, h.cachedSource, forward, suppress)
			if err != nil {
				return true, fmt.Errorf("handler.AxisSwitchHandler.Notify: %w", err)
			}
		} else if h.mapAxis.Type == input.EV_ABS {
			replay := event.New(h.mapAxis.Type, h.mapAxis.Code, h.lastValue)

			_, err := h.sub.Notify(replay, h.cachedSource, forward, suppress)
			if err != nil {
				return true, fmt.Errorf("handler.AxisSwitchHandler.Notify: %w", err)
			}
		}

		return true, nil
	}

	if h.cachedSource == "" {
		h.cachedSource = source
	}

	h.lastValue = ev.Value

	if h.active {
		claimed, err := h.sub.Notify(ev, source, forward, suppress)
		if err != nil {
			return claimed, fmt.Errorf("handler.AxisSwitchHandler.Notify: %w", err)
		}

		return claimed, nil
	}

	return false, nil
}

// Reset clears cached state and resets the sub-handler.
func (h *AxisSwitchHandler) Reset() {
	h.active = false
	h.lastValue = 0
	h.cachedSource = ""

	if h.sub != nil {
		h.sub.Reset()
	}
}
