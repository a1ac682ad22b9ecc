package handler

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/inputcore/remapper/axis"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// wheelCodePairs maps a configured wheel output code to the (normal,
// hi-res) pair that must both be written, per spec.md §4.5's note that
// wheel output must emit both resolutions.
var wheelCodePairs = map[uint16][2]uint16{
	input.REL_WHEEL:         {input.REL_WHEEL, input.REL_WHEEL_HI_RES},
	input.REL_WHEEL_HI_RES:  {input.REL_WHEEL, input.REL_WHEEL_HI_RES},
	input.REL_HWHEEL:        {input.REL_HWHEEL, input.REL_HWHEEL_HI_RES},
	input.REL_HWHEEL_HI_RES: {input.REL_HWHEEL, input.REL_HWHEEL_HI_RES},
}

// AbsToRelHandler reads an analog axis and emits a steady stream of
// relative samples at relRate Hz while the axis is off-center, per
// spec.md §4.5. Grounded on abs_to_rel_handler.py.
type AbsToRelHandler struct {
	base

	mapCode       uint16
	outCode       uint16
	wheelCodes    [2]uint16
	isWheel       bool
	target        string
	deadzone      float64
	gain          float64
	expo          float64
	relRate       float64
	relSpeed      float64
	relWheelSpeed float64
	relHiResSpeed float64
	sourceAbsInfo SourceAbsInfo
	multiMember   bool
	combination   event.InputCombination

	mu        sync.Mutex
	value     float64
	running   bool
	cancelRun context.CancelFunc
	transform *axis.Transformation
}

// RelOutputSpeeds bundles the per-axis speed knobs an AbsToRelHandler
// or RelToRelHandler scales its output by.
type RelOutputSpeeds struct {
	RelRate       float64
	RelSpeed      float64
	RelWheelSpeed float64
	RelHiResSpeed float64
}

// NewAbsToRelHandler returns an AbsToRelHandler reading mapCode and
// writing outCode on target at the configured rate and speeds.
func NewAbsToRelHandler(mapCode, outCode uint16, target string, deadzone, gain, expo float64, speeds RelOutputSpeeds, sourceAbsInfo SourceAbsInfo, combination event.InputCombination) *AbsToRelHandler {
	var (
		wheelCodes [2]uint16
		isWheel    bool
	)

	if pair, ok := wheelCodePairs[outCode]; ok {
		wheelCodes = pair
		isWheel = true
	}

	return &AbsToRelHandler{
		mapCode:       mapCode,
		outCode:       outCode,
		wheelCodes:    wheelCodes,
		isWheel:       isWheel,
		target:        target,
		deadzone:      deadzone,
		gain:          gain,
		expo:          expo,
		relRate:       speeds.RelRate,
		relSpeed:      speeds.RelSpeed,
		relWheelSpeed: speeds.RelWheelSpeed,
		relHiResSpeed: speeds.RelHiResSpeed,
		sourceAbsInfo: sourceAbsInfo,
		multiMember:   combination.Len() > 1,
		combination:   combination,
	}
}

// NeedsWrapping implements [Wiring].
func (h *AbsToRelHandler) NeedsWrapping() bool { return h.multiMember }

// WrapSpecs implements [Wiring].
func (h *AbsToRelHandler) WrapSpecs() []WrapSpec {
	if !h.multiMember {
		return nil
	}

	return []WrapSpec{{Combination: h.combination, Kind: KindAxisSwitch}}
}

// Notify implements [Handler].
func (h *AbsToRelHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != input.EV_ABS || ev.Code != h.mapCode {
		return false, nil
	}

	h.mu.Lock()

	if ev.Has(event.Recenter) {
		if h.cancelRun != nil {
			h.cancelRun()
			h.cancelRun = nil
		}

		h.mu.Unlock()

		return true, nil
	}

	if h.transform == nil {
		absInfo, err := h.sourceAbsInfo(source, ev.Code)
		if err != nil {
			h.mu.Unlock()

			return false, fmt.Errorf("handler.AbsToRelHandler.Notify: %w", err)
		}

		h.transform, err = axis.New(float64(absInfo.Minimum), float64(absInfo.Maximum), h.deadzone, h.gain, h.expo)
		if err != nil {
			h.mu.Unlock()

			return false, fmt.Errorf("handler.AbsToRelHandler.Notify: %w", err)
		}
	}

	h.value = h.transform.At(float64(ev.Value))

	if h.value == 0 {
		if h.cancelRun != nil {
			h.cancelRun()
			h.cancelRun = nil
		}

		h.mu.Unlock()

		return true, nil
	}

	if h.cancelRun == nil {
		var ctx context.Context
		ctx, h.cancelRun = context.WithCancel(context.Background())

		go h.run(ctx, forward)
	}

	h.mu.Unlock()

	return true, nil
}

// run emits relative samples at relRate Hz, reading the latest value
// each tick, preserving sub-unit motion across ticks via a remainder.
func (h *AbsToRelHandler) run(ctx context.Context, forward *output.Registry) {
	var (
		remainder   float64
		hiResRemain float64
		period      = time.Duration(float64(time.Second) / h.relRate)
	)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		h.mu.Lock()
		value := h.value
		h.mu.Unlock()

		if h.isWheel {
			weight := h.relWheelSpeed
			scaled := value*weight + remainder
			remainder = math.Mod(scaled, 1)

			weightHi := h.relHiResSpeed
			scaledHi := value*weightHi + hiResRemain
			hiResRemain = math.Mod(scaledHi, 1)

			_ = forward.Write(h.target, input.EV_REL, h.wheelCodes[0], int32(scaled))
			_ = forward.Write(h.target, input.EV_REL, h.wheelCodes[1], int32(scaledHi))
		} else {
			scaled := value*h.relSpeed + remainder
			remainder = math.Mod(scaled, 1)

			_ = forward.Write(h.target, input.EV_REL, h.outCode, int32(scaled))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(period):
		}
	}
}

// Reset stops any running emission loop.
func (h *AbsToRelHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancelRun != nil {
		h.cancelRun()
		h.cancelRun = nil
	}
}
