package handler

import (
	"fmt"
	"math"

	"github.com/inputcore/remapper/axis"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// remainder accumulates the fractional part lost to int truncation so
// slow motion still eventually produces a whole-unit sample, per
// spec.md §4.5's RelToRelHandler.
type remainder struct {
	scale float64
	carry float64
}

func (r *remainder) apply(value float64) int32 {
	var scaled = value*r.scale + r.carry

	r.carry = math.Mod(scaled, 1)

	return int32(scaled)
}

// RelToRelHandler rescales one relative axis onto another (or onto a
// wheel pair), per spec.md §4.5. Grounded on rel_to_rel_handler.py.
type RelToRelHandler struct {
	base

	mapCode     uint16
	outCode     uint16
	isWheel     bool
	isHiResOut  bool
	horizontal  bool
	target      string
	transform   *axis.Transformation
	multiMember bool
	combination event.InputCombination

	wheelRemainder remainder
	hiResRemainder remainder
	xyRemainder    remainder
}

// NewRelToRelHandler returns a RelToRelHandler reading mapCode and
// writing outCode on target, scaled through (deadzone, gain, expo)
// with an input range derived from speeds.
func NewRelToRelHandler(mapCode, outCode uint16, target string, deadzone, gain, expo float64, speeds RelOutputSpeeds, combination event.InputCombination) (*RelToRelHandler, error) {
	var (
		maxInput float64
		isWheel  bool
		isHiRes  bool
	)

	switch mapCode {
	case input.REL_WHEEL, input.REL_HWHEEL:
		maxInput = speeds.RelWheelSpeed
	case input.REL_WHEEL_HI_RES, input.REL_HWHEEL_HI_RES:
		maxInput = speeds.RelHiResSpeed
	default:
		maxInput = speeds.RelSpeed
	}

	switch outCode {
	case input.REL_WHEEL, input.REL_HWHEEL:
		isWheel = true
	case input.REL_WHEEL_HI_RES, input.REL_HWHEEL_HI_RES:
		isWheel = true
		isHiRes = true
	}

	transform, err := axis.New(-maxInput, maxInput, deadzone, gain, expo)
	if err != nil {
		return nil, fmt.Errorf("handler.NewRelToRelHandler: %w", err)
	}

	return &RelToRelHandler{
		mapCode:        mapCode,
		outCode:        outCode,
		isWheel:        isWheel,
		isHiResOut:     isHiRes,
		horizontal:     outCode == input.REL_HWHEEL || outCode == input.REL_HWHEEL_HI_RES,
		target:         target,
		transform:      transform,
		multiMember:    combination.Len() > 1,
		combination:    combination,
		wheelRemainder: remainder{scale: speeds.RelWheelSpeed},
		hiResRemainder: remainder{scale: speeds.RelHiResSpeed},
		xyRemainder:    remainder{scale: speeds.RelSpeed},
	}, nil
}

// NeedsWrapping implements [Wiring].
func (h *RelToRelHandler) NeedsWrapping() bool { return h.multiMember }

// WrapSpecs implements [Wiring].
func (h *RelToRelHandler) WrapSpecs() []WrapSpec {
	if !h.multiMember {
		return nil
	}

	return []WrapSpec{{Combination: h.combination, Kind: KindAxisSwitch}}
}

// Notify implements [Handler].
func (h *RelToRelHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != input.EV_REL || ev.Code != h.mapCode {
		return false, nil
	}

	var transformed = h.transform.At(float64(ev.Value))

	if h.isWheel {
		var wheelCode, hiResCode uint16
		if h.horizontal {
			wheelCode, hiResCode = input.REL_HWHEEL, input.REL_HWHEEL_HI_RES
		} else {
			wheelCode, hiResCode = input.REL_WHEEL, input.REL_WHEEL_HI_RES
		}

		h.write(forward, wheelCode, h.wheelRemainder.apply(transformed))
		h.write(forward, hiResCode, h.hiResRemainder.apply(transformed))

		return true, nil
	}

	h.write(forward, h.outCode, h.xyRemainder.apply(transformed))

	return true, nil
}

func (h *RelToRelHandler) write(forward *output.Registry, code uint16, value int32) {
	if value == 0 {
		return
	}

	_ = forward.Write(h.target, input.EV_REL, code, value)
}

// Reset is a no-op; RelToRelHandler carries only remainder state that
// is harmless across key presses.
func (h *RelToRelHandler) Reset() {}
