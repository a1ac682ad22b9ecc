// Package output implements the Virtual Output Registry (spec.md §4.3):
// a set of named virtual devices that handlers write synthesized events
// to, built from fixed capability templates so downstream consumers
// classify the resulting device correctly.
//
// Grounded on _construct_capabilities/_copy_capabilities in
// original_source/keymapper/injection/injector.py, wired to
// github.com/inputcore/remapper/linux/uinput for the actual device
// creation and writes.
package output

import (
	"errors"
	"fmt"
	"sync"

	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/linux/uinput"
)

// Well-known target names, per spec.md §6.4.
const (
	Keyboard = "keyboard"
	Mouse    = "mouse"
	Gamepad  = "gamepad"
)

// ErrUinputNotAvailable is returned when a write targets a name with no
// registered device.
var ErrUinputNotAvailable = errors.New("output: uinput device not available")

// ErrEventNotHandled is returned when a write targets a real device that
// lacks the requested capability.
var ErrEventNotHandled = errors.New("output: event not handled by target capabilities")

// uinputWriter is the subset of *uinput.Device this package depends on,
// so tests can substitute a fake without opening /dev/uinput.
type uinputWriter interface {
	WriteEvent(evType, code uint16, value int32) error
	Sync() error
	AbsInfo(code uint16) (input.AbsInfo, error)
	Close() error
}

// device pairs a uinputWriter with the capability set it was created
// with, so Write can check before emitting and Registry can report a
// held-outputs set for ResetAll.
type device struct {
	writer uinputWriter
	keys   map[uint16]struct{}
	rel    map[uint16]struct{}
	abs    map[uint16]struct{}
	held   map[[2]uint16]struct{}
}

// Registry owns every virtual output created for one injector: the
// named main outputs (keyboard/mouse/gamepad) plus any per-source
// forward outputs, keyed by name.
type Registry struct {
	mu      sync.Mutex
	devices map[string]*device
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[string]*device)}
}

// Template describes the capability set a named output must advertise.
type Template struct {
	Keys []uint16
	Rel  []uint16
	Abs  map[uint16]input.AbsInfo
}

// KeyboardTemplate returns the capability set for a keyboard-classified
// virtual output: every key this preset's mappings and macros might
// emit is added by the caller on top of this baseline via Register's
// extraKeys parameter; the template itself only fixes the device class.
func KeyboardTemplate() Template {
	return Template{Keys: []uint16{input.KEY_RESERVED}}
}

// MouseTemplate returns the baseline capability set required for a host
// to recognize a virtual device as a mouse: REL_X, REL_Y, REL_WHEEL and
// BTN_LEFT, per spec.md §4.3 and §9's "Capability construction for the
// output mouse" note.
func MouseTemplate() Template {
	return Template{
		Keys: []uint16{input.BTN_LEFT, input.BTN_RIGHT, input.BTN_MIDDLE, input.BTN_MOUSE},
		Rel:  []uint16{input.REL_X, input.REL_Y, input.REL_WHEEL, input.REL_HWHEEL, input.REL_WHEEL_HI_RES, input.REL_HWHEEL_HI_RES},
	}
}

// GamepadTemplate returns the baseline capability set for a joystick
// (the main analog sticks, triggers, hat, and face/shoulder buttons).
func GamepadTemplate() Template {
	return Template{
		Keys: []uint16{
			input.BTN_A, input.BTN_B, input.BTN_X, input.BTN_Y,
			input.BTN_TL, input.BTN_TR, input.BTN_SELECT, input.BTN_START,
			input.BTN_THUMBL, input.BTN_THUMBR,
		},
		Abs: map[uint16]input.AbsInfo{
			input.ABS_X:     {Minimum: -32768, Maximum: 32767},
			input.ABS_Y:     {Minimum: -32768, Maximum: 32767},
			input.ABS_RX:    {Minimum: -32768, Maximum: 32767},
			input.ABS_RY:    {Minimum: -32768, Maximum: 32767},
			input.ABS_Z:     {Minimum: 0, Maximum: 255},
			input.ABS_RZ:    {Minimum: 0, Maximum: 255},
			input.ABS_HAT0X: {Minimum: -1, Maximum: 1},
			input.ABS_HAT0Y: {Minimum: -1, Maximum: 1},
		},
	}
}

// openFunc creates a real uinput device; overridable in tests.
var openFunc = func(name string, caps uinput.Capabilities) (uinputWriter, error) {
	var (
		dev *uinput.Device
		err error
	)

	dev, err = uinput.Open()
	if err != nil {
		return nil, err
	}

	err = dev.SetCapabilities(caps)
	if err != nil {
		_ = dev.Close()

		return nil, err
	}

	err = dev.Create(name, caps.Abs)
	if err != nil {
		_ = dev.Close()

		return nil, err
	}

	return dev, nil
}

// Register creates (or replaces) the named virtual output with the
// given template, merged with extraKeys (capabilities demanded by
// mappings/macros beyond the template's baseline, per
// _construct_capabilities in original_source/).
func (r *Registry) Register(name string, tmpl Template, extraKeys []uint16) error {
	var (
		caps uinput.Capabilities
		d    *device
		w    uinputWriter
		err  error
		code uint16
	)

	d = &device{
		keys: make(map[uint16]struct{}),
		rel:  make(map[uint16]struct{}),
		abs:  make(map[uint16]struct{}),
		held: make(map[[2]uint16]struct{}),
	}

	caps.Keys = append(append([]uint16(nil), tmpl.Keys...), extraKeys...)
	caps.Rel = tmpl.Rel
	caps.Abs = tmpl.Abs

	for _, code = range caps.Keys {
		d.keys[code] = struct{}{}
	}

	for _, code = range caps.Rel {
		d.rel[code] = struct{}{}
	}

	for code = range caps.Abs {
		d.abs[code] = struct{}{}
	}

	w, err = openFunc(name, caps)
	if err != nil {
		return fmt.Errorf("output.Register(%q): %w", name, err)
	}

	d.writer = w

	r.mu.Lock()
	r.devices[name] = d
	r.mu.Unlock()

	return nil
}

// hasCapability reports whether the device at name can emit (evType, code).
func (d *device) hasCapability(evType, code uint16) bool {
	switch evType {
	case input.EV_KEY:
		_, ok := d.keys[code]

		return ok
	case input.EV_REL:
		_, ok := d.rel[code]

		return ok
	case input.EV_ABS:
		_, ok := d.abs[code]

		return ok
	default:
		return true
	}
}

// Write emits (evType, code, value) followed by a sync on the named
// target, per spec.md §4.3. Returns [ErrUinputNotAvailable] if target
// does not exist, [ErrEventNotHandled] if it lacks the capability.
func (r *Registry) Write(target string, evType, code uint16, value int32) error {
	var (
		d   *device
		ok  bool
		err error
	)

	r.mu.Lock()
	d, ok = r.devices[target]
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("output.Write(%q): %w", target, ErrUinputNotAvailable)
	}

	if !d.hasCapability(evType, code) {
		return fmt.Errorf("output.Write(%q, %d, %d): %w", target, evType, code, ErrEventNotHandled)
	}

	err = d.writer.WriteEvent(evType, code, value)
	if err != nil {
		return fmt.Errorf("output.Write(%q): %w", target, err)
	}

	err = d.writer.Sync()
	if err != nil {
		return fmt.Errorf("output.Write(%q): sync: %w", target, err)
	}

	r.trackHeld(d, evType, code, value)

	return nil
}

// trackHeld records key-down/up state so ResetAll can release anything
// still held at shutdown.
func (r *Registry) trackHeld(d *device, evType, code uint16, value int32) {
	var key [2]uint16

	if evType != input.EV_KEY {
		return
	}

	key = [2]uint16{evType, code}

	r.mu.Lock()
	defer r.mu.Unlock()

	if value == 0 {
		delete(d.held, key)
	} else {
		d.held[key] = struct{}{}
	}
}

// HasCapability reports whether the named output can emit (evType,
// code), or false if the output does not exist. Used by the graph
// builder to validate an explicit EV_KEY output against the target's
// actual capability set (spec.md §6.3's "output_type == EV_KEY implies
// the symbol/code maps to the output's key capability set" rule).
func (r *Registry) HasCapability(target string, evType, code uint16) bool {
	var (
		d  *device
		ok bool
	)

	r.mu.Lock()
	d, ok = r.devices[target]
	r.mu.Unlock()

	if !ok {
		return false
	}

	return d.hasCapability(evType, code)
}

// AbsInfo returns the absinfo for code on the named output, for handlers
// that need to introspect the target's configured range.
func (r *Registry) AbsInfo(target string, code uint16) (input.AbsInfo, error) {
	var (
		d   *device
		ok  bool
		err error
	)

	r.mu.Lock()
	d, ok = r.devices[target]
	r.mu.Unlock()

	if !ok {
		return input.AbsInfo{}, fmt.Errorf("output.AbsInfo(%q): %w", target, ErrUinputNotAvailable)
	}

	return d.writer.AbsInfo(code)
}

// ResetAll releases every currently-held key across every registered
// output, per spec.md §4.3's shutdown contract.
func (r *Registry) ResetAll() {
	var (
		d   *device
		key [2]uint16
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d = range r.devices {
		for key = range d.held {
			_ = d.writer.WriteEvent(key[0], key[1], 0)
			_ = d.writer.Sync()
		}

		d.held = make(map[[2]uint16]struct{})
	}
}

// Close destroys and closes every registered output.
func (r *Registry) Close() error {
	var (
		name string
		d    *device
		errs []error
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	for name, d = range r.devices {
		if err := d.writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("output.Close(%q): %w", name, err))
		}
	}

	r.devices = make(map[string]*device)

	return errors.Join(errs...)
}
