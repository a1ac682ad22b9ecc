// Package reader implements the per-source event reader of spec.md
// §4.7: one instance per grabbed (or passively observed) kernel input
// device, dispatching its events through a corectx.Context's handler
// graph and forwarding whatever nothing claims.
//
// Grounded on original_source/inputremapper/injection/event_reader.py
// for the grab/dispatch/forward sequence, adapted onto
// github.com/inputcore/remapper/linux/input's blocking ReadEvent
// instead of that file's asyncio event loop.
package reader

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inputcore/remapper/corectx"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/handler"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/telemetry"
)

// Reader drives one source file descriptor: grabs (or not) the
// device, dispatches its events through the Context's handler graph,
// and forwards whatever no handler claims to a per-source forward
// output.
type Reader struct {
	device   *input.Device
	ctx      *corectx.Context
	registry *output.Registry
	forward  string
	grabbed  bool
	logger   zerolog.Logger
}

// New returns a Reader for dev, dispatching through ctx and writing
// forwarded/synthesized output through registry.
func New(dev *input.Device, ctx *corectx.Context, registry *output.Registry, logger zerolog.Logger) *Reader {
	return &Reader{device: dev, ctx: ctx, registry: registry, logger: telemetry.Device(logger, dev.Path())}
}

// mappingCapabilities collects every (type, code) any mapping's
// combination could be triggered by.
func mappingCapabilities(p preset.Preset) map[[2]uint16]struct{} {
	var caps = make(map[[2]uint16]struct{})

	for _, m := range p.Mappings {
		for _, ev := range m.Combination.Events() {
			caps[[2]uint16{ev.Type, ev.Code}] = struct{}{}
		}
	}

	return caps
}

// deviceOverlapsCapabilities reports whether dev supports any (type,
// code) in caps.
func deviceOverlapsCapabilities(dev *input.Device, caps map[[2]uint16]struct{}) (bool, error) {
	types, err := dev.Events()
	if err != nil {
		return false, fmt.Errorf("reader.deviceOverlapsCapabilities: %w", err)
	}

	for _, t := range types {
		codes, err := dev.Codes(t)
		if err != nil {
			return false, fmt.Errorf("reader.deviceOverlapsCapabilities: %w", err)
		}

		for _, c := range codes {
			if _, ok := caps[[2]uint16{t, c}]; ok {
				return true, nil
			}
		}
	}

	return false, nil
}

// mapsAnyJoystick reports whether any mapping's combination names one
// of the baseline gamepad axes/buttons, reusing
// output.GamepadTemplate rather than inventing a second list of
// joystick codes.
func mapsAnyJoystick(p preset.Preset) bool {
	var (
		tmpl     = output.GamepadTemplate()
		joystick = make(map[[2]uint16]struct{}, len(tmpl.Keys)+len(tmpl.Abs))
	)

	for _, k := range tmpl.Keys {
		joystick[[2]uint16{input.EV_KEY, k}] = struct{}{}
	}

	for a := range tmpl.Abs {
		joystick[[2]uint16{input.EV_ABS, a}] = struct{}{}
	}

	for _, m := range p.Mappings {
		for _, ev := range m.Combination.Events() {
			if _, ok := joystick[[2]uint16{ev.Type, ev.Code}]; ok {
				return true
			}
		}
	}

	return false
}

// ShouldGrab implements spec.md §4.7 step 2: grab whenever the device
// overlaps any mapping's capabilities, or when it is a gamepad and the
// preset maps any joystick axis/button at all.
func ShouldGrab(dev *input.Device, p preset.Preset, isGamepad bool) (bool, error) {
	overlap, err := deviceOverlapsCapabilities(dev, mappingCapabilities(p))
	if err != nil {
		return false, err
	}

	if overlap {
		return true, nil
	}

	return isGamepad && mapsAnyJoystick(p), nil
}

// buildForwardTemplate copies dev's EV_KEY, EV_REL and EV_ABS
// capabilities, stripping ABS_VOLUME from EV_ABS because it interferes
// with mouse/keyboard recognition, per spec.md §4.7 step 3. Codes of
// every other event type (EV_MSC, EV_LED and the rest) are not copied.
func buildForwardTemplate(dev *input.Device) (output.Template, error) {
	var tmpl output.Template
	tmpl.Abs = make(map[uint16]input.AbsInfo)

	types, err := dev.Events()
	if err != nil {
		return output.Template{}, fmt.Errorf("reader.buildForwardTemplate: %w", err)
	}

	for _, t := range types {
		if t == input.EV_SYN || t == input.EV_FF {
			continue
		}

		codes, err := dev.Codes(t)
		if err != nil {
			return output.Template{}, fmt.Errorf("reader.buildForwardTemplate: %w", err)
		}

		switch t {
		case input.EV_KEY:
			tmpl.Keys = append(tmpl.Keys, codes...)
		case input.EV_REL:
			tmpl.Rel = append(tmpl.Rel, codes...)
		case input.EV_ABS:
			for _, c := range codes {
				if c == input.ABS_VOLUME {
					continue
				}

				info, err := dev.AbsInfo(c)
				if err != nil {
					return output.Template{}, fmt.Errorf("reader.buildForwardTemplate: %w", err)
				}

				tmpl.Abs[c] = info
			}
		}
	}

	return tmpl, nil
}

// Start grabs the device if the preset warrants it, builds and
// registers its forward output, and records it in the Context, per
// spec.md §4.7's startup sequence.
func (r *Reader) Start(p preset.Preset, isGamepad bool) error {
	grab, err := ShouldGrab(r.device, p, isGamepad)
	if err != nil {
		return fmt.Errorf("reader.Reader.Start: %w", err)
	}

	if grab {
		if err := r.device.Grab(); err != nil {
			return fmt.Errorf("reader.Reader.Start: %w", err)
		}

		r.grabbed = true
	}

	tmpl, err := buildForwardTemplate(r.device)
	if err != nil {
		return fmt.Errorf("reader.Reader.Start: %w", err)
	}

	r.forward = "forward:" + r.device.Path()

	if err := r.registry.Register(r.forward, tmpl, nil); err != nil {
		return fmt.Errorf("reader.Reader.Start: %w", err)
	}

	r.ctx.SetForwardOutput(r.device.Path(), r.forward)

	return nil
}

// Run reads events from the device until ctx is cancelled or the
// device disappears, dispatching each through the handler graph. It
// returns nil on cancellation and a wrapped error on an unexpected
// read failure, per spec.md §4.8's "reader loop unexpected exit"
// handling.
func (r *Reader) Run(ctx context.Context) error {
	var (
		events  = make(chan input.Event)
		readErr = make(chan error, 1)
	)

	go func() {
		for {
			ev, err := r.device.ReadEvent()
			if err != nil {
				readErr <- err

				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return fmt.Errorf("reader.Reader.Run: %w", err)
		case raw := <-events:
			r.dispatch(event.New(raw.Type, raw.Code, raw.Value))
		}
	}
}

// dispatch routes one event through the handlers bound to its (type,
// code): the first to claim it wins, the rest are notified with
// suppress=true so they can still track state. An unclaimed event is
// written verbatim to the forward output, per spec.md §4.7's loop.
// EV_SYN frame delimiters are never dispatched or forwarded directly;
// output.Registry.Write already emits its own sync after every write.
func (r *Reader) dispatch(ev event.InputEvent) {
	if ev.Type == input.EV_SYN {
		return
	}

	var (
		source   = r.device.Path()
		handlers = r.ctx.HandlersFor(ev.Type, ev.Code)
		claimed  bool
	)

	r.ctx.NotifyListeners(ev, source)

	for _, h := range handlers {
		if claimed {
			if _, err := h.Notify(ev, source, r.registry, true); err != nil {
				r.logger.Error().Err(err).Uint16("type", ev.Type).Uint16("code", ev.Code).Msg("handler notify failed")
			}

			continue
		}

		ok, err := h.Notify(ev, source, r.registry, false)
		if err != nil {
			r.logger.Error().Err(err).Uint16("type", ev.Type).Uint16("code", ev.Code).Msg("handler notify failed")
		}

		claimed = ok
	}

	if !claimed {
		_ = r.registry.Write(r.forward, ev.Type, ev.Code, ev.Value)
	}
}

// Grabbed reports whether Start ended up grabbing the device
// exclusively.
func (r *Reader) Grabbed() bool {
	return r.grabbed
}

// Stop releases the grab (if any) and closes the device. Resetting
// the handlers bound to this source is the caller's job, since
// multiple readers within one injector may share handlers via a
// HierarchyHandler and only the injector knows when the last one
// using a given handler has stopped.
func (r *Reader) Stop() error {
	if err := r.device.Close(); err != nil {
		return fmt.Errorf("reader.Reader.Stop: %w", err)
	}

	return nil
}
