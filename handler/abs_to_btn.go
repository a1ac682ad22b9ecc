package handler

import (
	"fmt"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// AbsToBtnHandler turns a single analog EV_ABS axis into a synthetic
// button crossing a trigger point, per spec.md §4.5. Grounded on
// abs_to_btn_handler.py.
type AbsToBtnHandler struct {
	base

	TypeCode      TypeCode
	sub           Handler
	sourceAbsInfo SourceAbsInfo

	percent  int   // trigger percent p in [-99, 99] \ {0}
	trigger  int32 // resolved trigger point, lazily derived on first event
	resolved bool
	active   bool
}

// NewAbsToBtnHandler returns an AbsToBtnHandler bound to code, deriving
// its trigger point from the source device's absinfo and percent on
// first event (sourceAbsInfo may be nil, in which case this acts as a
// trigger-point of 0 — used for hat-switch-shaped axes in tests).
func NewAbsToBtnHandler(code uint16, percent int, sourceAbsInfo SourceAbsInfo) *AbsToBtnHandler {
	return &AbsToBtnHandler{
		TypeCode:      TypeCode{input.EV_ABS, code},
		percent:       percent,
		sourceAbsInfo: sourceAbsInfo,
	}
}

func (h *AbsToBtnHandler) resolveTrigger(source string) error {
	if h.resolved {
		return nil
	}

	h.resolved = true

	if h.sourceAbsInfo == nil {
		return nil
	}

	absInfo, err := h.sourceAbsInfo(source, h.TypeCode.Code)
	if err != nil {
		return fmt.Errorf("handler.AbsToBtnHandler.resolveTrigger: %w", err)
	}

	var (
		midpoint  = (absInfo.Minimum + absInfo.Maximum) / 2
		halfRange = (absInfo.Maximum - absInfo.Minimum) / 2
	)

	if absInfo.Minimum == -1 && absInfo.Maximum == 1 {
		h.trigger = 0
	} else {
		h.trigger = midpoint + int32(float64(halfRange)*float64(h.percent)/100)
	}

	return nil
}

// SetSubHandler implements [Wiring].
func (h *AbsToBtnHandler) SetSubHandler(sub Handler) { h.sub = sub }

// Notify implements [Handler].
func (h *AbsToBtnHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != h.TypeCode.Type || ev.Code != h.TypeCode.Code {
		return false, nil
	}

	if err := h.resolveTrigger(source); err != nil {
		return false, err
	}

	var evActive bool
	if h.percent > 0 {
		evActive = ev.Value > h.trigger
	} else {
		evActive = ev.Value < h.trigger
	}

	if evActive == h.active {
		return true, nil
	}

	h.active = evActive

	if suppress {
		return true, nil
	}

	var value int32
	if evActive {
		value = 1
	}

	synthetic := event.New(h.TypeCode.Type, h.TypeCode.Code, value).WithAction(event.AsKey)

	_, err := h.sub.Notify(synthetic, source, forward, suppress)
	if err != nil {
		return true, fmt.Errorf("handler.AbsToBtnHandler.Notify: %w", err)
	}

	return true, nil
}

// Reset clears the tracked active state and resets the sub-handler.
func (h *AbsToBtnHandler) Reset() {
	h.active = false

	if h.sub != nil {
		h.sub.Reset()
	}
}
