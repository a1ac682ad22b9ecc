package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inputcore/remapper/axis"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// RelToAbsHandler maps relative samples onto an absolute axis,
// recentering once motion stops for releaseTimeout, per spec.md §4.5.
// Grounded on rel_to_abs_handler.py.
type RelToAbsHandler struct {
	base

	mapCode        uint16
	outCode        uint16
	target         string
	transform      *axis.Transformation
	targetAbs      input.AbsInfo
	releaseTimeout time.Duration
	registry       *output.Registry
	multiMember    bool
	combination    event.InputCombination

	mu         sync.Mutex
	moving     chan struct{}
	cancelLoop context.CancelFunc
}

// NewRelToAbsHandler returns a RelToAbsHandler reading mapCode,
// scaling through (deadzone, gain, expo) with input range [-maxInput,
// maxInput], and writing outCode on target within targetAbs's range.
func NewRelToAbsHandler(mapCode, outCode uint16, target string, deadzone, gain, expo, maxInput float64, targetAbs input.AbsInfo, releaseTimeout time.Duration, combination event.InputCombination, registry *output.Registry) (*RelToAbsHandler, error) {
	transform, err := axis.New(-maxInput, maxInput, deadzone, gain, expo)
	if err != nil {
		return nil, fmt.Errorf("handler.NewRelToAbsHandler: %w", err)
	}

	return &RelToAbsHandler{
		mapCode:        mapCode,
		outCode:        outCode,
		target:         target,
		transform:      transform,
		targetAbs:      targetAbs,
		releaseTimeout: releaseTimeout,
		registry:       registry,
		multiMember:    combination.Len() > 1,
		combination:    combination,
		moving:         make(chan struct{}, 1),
	}, nil
}

// NeedsWrapping implements [Wiring].
func (h *RelToAbsHandler) NeedsWrapping() bool { return h.multiMember }

// WrapSpecs implements [Wiring].
func (h *RelToAbsHandler) WrapSpecs() []WrapSpec {
	if !h.multiMember {
		return nil
	}

	return []WrapSpec{{Combination: h.combination, Kind: KindAxisSwitch}}
}

func (h *RelToAbsHandler) scaleToTarget(x float64) int32 {
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

func (h *RelToAbsHandler) recenter() {
	_ = h.registry.Write(h.target, input.EV_ABS, h.outCode, h.scaleToTarget(0))
}

// Notify implements [Handler].
func (h *RelToAbsHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != input.EV_REL || ev.Code != h.mapCode {
		return false, nil
	}

	if ev.Has(event.Recenter) {
		h.mu.Lock()

		if h.cancelLoop != nil {
			h.cancelLoop()
			h.cancelLoop = nil
		}

		h.mu.Unlock()
		h.recenter()

		return true, nil
	}

	h.mu.Lock()

	if h.cancelLoop == nil {
		var ctx context.Context
		ctx, h.cancelLoop = context.WithCancel(context.Background())

		go h.recenterLoop(ctx)
	}

	h.mu.Unlock()

	select {
	case h.moving <- struct{}{}:
	default:
	}

	var value = h.scaleToTarget(h.transform.At(float64(ev.Value)))

	err := forward.Write(h.target, input.EV_ABS, h.outCode, value)
	if err != nil {
		return true, fmt.Errorf("handler.RelToAbsHandler.Notify: %w", err)
	}

	return true, nil
}

// recenterLoop waits for motion, then recenters if no further motion
// arrives within releaseTimeout, forever, matching the original's
// _create_recenter_loop.
func (h *RelToAbsHandler) recenterLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.moving:
		}

		for {
			timer := time.NewTimer(h.releaseTimeout)

			select {
			case <-ctx.Done():
				timer.Stop()

				return
			case <-h.moving:
				timer.Stop()

				continue
			case <-timer.C:
			}

			break
		}

		h.recenter()
	}
}

// Reset cancels the recenter loop and recenters immediately.
func (h *RelToAbsHandler) Reset() {
	h.mu.Lock()

	if h.cancelLoop != nil {
		h.cancelLoop()
		h.cancelLoop = nil
	}

	h.mu.Unlock()
	h.recenter()
}
