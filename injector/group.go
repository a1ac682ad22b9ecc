// Package injector implements the per-DeviceGroup lifecycle of spec.md
// §4.8: enumerating a device group's kernel paths, constructing shared
// output/context state, grabbing each source with retries, running its
// readers concurrently, and reporting lifecycle state back to a
// supervising process over a small message channel.
//
// Grounded on original_source/inputremapper/injection/injector.py's
// Injector (the STARTING/RUNNING/NO_GRAB/FAILED/STOPPED state machine,
// _grab_devices' retry loop, numlock preservation) and
// original_source/keymapper/injection/injector.py's
// _construct_capabilities. The source isolates each injector in its own
// OS process (multiprocessing.Process, talking over a pipe); spawning a
// process at all is explicitly out of scope here (§6.2's IPC/privilege
// surface belongs to the excluded daemon), so this package draws the
// same isolation boundary at the Injector value instead: its own
// cancellation context, its own reader goroutines, and
// the same OK/NO_GRAB/FAILED/STOPPED vocabulary on a Go channel in place
// of the pipe. A supervisor that wants full process isolation can still
// get it by re-executing cmd/injectord once per DeviceGroup; see
// DESIGN.md.
package injector

import "fmt"

// DeviceType coarsely classifies a DeviceGroup, spec.md §3.
type DeviceType string

// Coarse device-type tags a DeviceGroup may carry.
const (
	DeviceKeyboard       DeviceType = "keyboard"
	DeviceMouse          DeviceType = "mouse"
	DeviceGamepad        DeviceType = "gamepad"
	DeviceTouchpad       DeviceType = "touchpad"
	DeviceGraphicsTablet DeviceType = "graphics-tablet"
	DeviceUnknown        DeviceType = "unknown"
)

// DeviceGroup is one logical physical device, spec.md §3: a stable
// key, a human name, the kernel event paths belonging to it, and coarse
// type tags. Built by a discovery stage outside this core's scope and
// handed to an Injector by value.
type DeviceGroup struct {
	Key   string
	Name  string
	Paths []string
	Types []DeviceType
}

// HasType reports whether t is among g's type tags.
func (g DeviceGroup) HasType(t DeviceType) bool {
	for _, got := range g.Types {
		if got == t {
			return true
		}
	}

	return false
}

// Validate reports whether g is well-formed enough to inject: it needs
// a key and at least one device path.
func (g DeviceGroup) Validate() error {
	if g.Key == "" {
		return fmt.Errorf("injector.DeviceGroup.Validate: group has no key")
	}

	if len(g.Paths) == 0 {
		return fmt.Errorf("injector.DeviceGroup.Validate(%q): group has no device paths", g.Key)
	}

	return nil
}
