package handler

import (
	"fmt"

	"github.com/inputcore/remapper/axis"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// SourceAbsInfo resolves the absinfo of code on the device at source,
// letting axis handlers build their Transformation lazily on first
// event instead of requiring an open device handle up front.
type SourceAbsInfo func(source string, code uint16) (input.AbsInfo, error)

// AbsToAbsHandler maps one analog EV_ABS axis onto another, scaling
// through a [axis.Transformation], per spec.md §4.5. Grounded on
// abs_to_abs_handler.py.
type AbsToAbsHandler struct {
	base

	mapCode       uint16
	outType       uint16
	outCode       uint16
	target        string
	deadzone      float64
	gain          float64
	expo          float64
	targetAbs     input.AbsInfo
	sourceAbsInfo SourceAbsInfo
	multiMember   bool
	combination   event.InputCombination
	registry      *output.Registry

	transform *axis.Transformation
}

// NewAbsToAbsHandler returns an AbsToAbsHandler reading mapCode and
// writing outType/outCode on target, shaped by deadzone/gain/expo and
// scaled into targetAbs's range. registry is kept so Reset can write
// the neutral value without waiting for a fresh event.
func NewAbsToAbsHandler(mapCode, outCode uint16, target string, deadzone, gain, expo float64, targetAbs input.AbsInfo, sourceAbsInfo SourceAbsInfo, combination event.InputCombination, registry *output.Registry) *AbsToAbsHandler {
	return &AbsToAbsHandler{
		mapCode:       mapCode,
		outType:       input.EV_ABS,
		outCode:       outCode,
		target:        target,
		deadzone:      deadzone,
		gain:          gain,
		expo:          expo,
		targetAbs:     targetAbs,
		sourceAbsInfo: sourceAbsInfo,
		multiMember:   combination.Len() > 1,
		combination:   combination,
		registry:      registry,
	}
}

// NeedsWrapping implements [Wiring]: a combination with more than one
// member (e.g. a trigger key alongside the analog axis) needs an
// AxisSwitchHandler in front.
func (h *AbsToAbsHandler) NeedsWrapping() bool { return h.multiMember }

// WrapSpecs implements [Wiring]: the graph builder uses the full
// combination to split the analog axis from its trigger keys when
// constructing the AxisSwitchHandler.
func (h *AbsToAbsHandler) WrapSpecs() []WrapSpec {
	if !h.multiMember {
		return nil
	}

	return []WrapSpec{{Combination: h.combination, Kind: KindAxisSwitch}}
}

// scaleToTarget maps x ∈ [-1, 1] onto [targetAbs.Minimum, targetAbs.Maximum].
func (h *AbsToAbsHandler) scaleToTarget(x float64) int32 {
	var (
		factor = float64(h.targetAbs.Maximum-h.targetAbs.Minimum) / 2
		offset = float64(h.targetAbs.Minimum) + factor
		y      = factor*x + offset
	)

	if y > offset {
		if y > float64(h.targetAbs.Maximum) {
			return h.targetAbs.Maximum
		}

		return int32(y)
	}

	if y < float64(h.targetAbs.Minimum) {
		return h.targetAbs.Minimum
	}

	return int32(y)
}

// Notify implements [Handler].
func (h *AbsToAbsHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != input.EV_ABS || ev.Code != h.mapCode {
		return false, nil
	}

	if ev.Has(event.Recenter) {
		return true, h.write(forward, 0)
	}

	if h.transform == nil {
		absInfo, err := h.sourceAbsInfo(source, ev.Code)
		if err != nil {
			return false, fmt.Errorf("handler.AbsToAbsHandler.Notify: %w", err)
		}

		h.transform, err = axis.New(float64(absInfo.Minimum), float64(absInfo.Maximum), h.deadzone, h.gain, h.expo)
		if err != nil {
			return false, fmt.Errorf("handler.AbsToAbsHandler.Notify: %w", err)
		}
	}

	var x = h.transform.At(float64(ev.Value))
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return true, h.write(forward, x)
}

func (h *AbsToAbsHandler) write(forward *output.Registry, x float64) error {
	err := forward.Write(h.target, h.outType, h.outCode, h.scaleToTarget(x))
	if err != nil {
		return fmt.Errorf("handler.AbsToAbsHandler.write: %w", err)
	}

	return nil
}

// Reset writes the neutral value.
func (h *AbsToAbsHandler) Reset() {
	if h.registry != nil {
		_ = h.write(h.registry, 0)
	}
}
