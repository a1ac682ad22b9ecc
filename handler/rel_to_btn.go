package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// RelToBtnHandler turns a single EV_REL sample crossing a threshold
// into a synthetic button, with a debounced release, per spec.md
// §4.5. Grounded on rel_to_btn_handler.py.
type RelToBtnHandler struct {
	base

	TypeCode       TypeCode
	threshold      int32
	releaseTimeout time.Duration
	sub            Handler

	mu             sync.Mutex
	active         bool
	lastActivation time.Time
	cancelRelease  context.CancelFunc
}

// NewRelToBtnHandler returns a RelToBtnHandler bound to code, firing
// when the absolute value crosses threshold (sign-matched) and
// releasing releaseTimeout after the last qualifying sample.
func NewRelToBtnHandler(code uint16, threshold int32, releaseTimeout time.Duration) *RelToBtnHandler {
	return &RelToBtnHandler{
		TypeCode:       TypeCode{Type: input.EV_REL, Code: code},
		threshold:      threshold,
		releaseTimeout: releaseTimeout,
	}
}

// SetSubHandler implements [Wiring].
func (h *RelToBtnHandler) SetSubHandler(sub Handler) { h.sub = sub }

// sameSignAndFartherFromZero reports whether value is at least as far
// from zero as threshold, in the same direction.
func sameSignAndFartherFromZero(value, threshold int32) bool {
	if threshold > 0 {
		return value >= threshold
	}

	return value <= threshold
}

// Notify implements [Handler].
func (h *RelToBtnHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	if ev.Type != h.TypeCode.Type || ev.Code != h.TypeCode.Code {
		return false, nil
	}

	if !sameSignAndFartherFromZero(ev.Value, h.threshold) {
		return true, nil
	}

	h.mu.Lock()

	if h.active {
		h.lastActivation = now()
		h.mu.Unlock()

		return true, nil
	}

	h.active = true
	h.lastActivation = now()

	var ctx context.Context
	ctx, h.cancelRelease = context.WithCancel(context.Background())

	h.mu.Unlock()

	go h.stageRelease(ctx, source, forward, suppress)

	synthetic := event.New(h.TypeCode.Type, h.TypeCode.Code, 1).WithAction(event.AsKey)

	_, err := h.sub.Notify(synthetic, source, forward, suppress)
	if err != nil {
		return true, fmt.Errorf("handler.RelToBtnHandler.Notify: %w", err)
	}

	return true, nil
}

// now is a seam for deterministic tests.
var now = time.Now

// stageRelease waits until releaseTimeout has elapsed since the last
// qualifying sample, then emits the synthetic release.
func (h *RelToBtnHandler) stageRelease(ctx context.Context, source string, forward *output.Registry, suppress bool) {
	var ticker = time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		h.mu.Lock()
		expired := now().After(h.lastActivation.Add(h.releaseTimeout))
		h.mu.Unlock()

		if expired {
			break
		}
	}

	h.mu.Lock()
	h.active = false
	h.mu.Unlock()

	released := event.New(h.TypeCode.Type, h.TypeCode.Code, 0).WithAction(event.AsKey)
	_, _ = h.sub.Notify(released, source, forward, suppress)
}

// Reset cancels any pending release task and clears active state.
func (h *RelToBtnHandler) Reset() {
	h.mu.Lock()
	h.active = false

	if h.cancelRelease != nil {
		h.cancelRelease()
	}

	h.mu.Unlock()

	if h.sub != nil {
		h.sub.Reset()
	}
}
