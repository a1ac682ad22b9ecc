//go:build linux

package uinput

import (
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/linux/ioctl"
)

// UINPUT_MAX_NAME_SIZE is the maximum length, including the terminating
// NUL, of a uinput device name.
const UINPUT_MAX_NAME_SIZE = 80

// Setup mirrors struct uinput_setup, used by [UI_DEV_SETUP].
type Setup struct {
	// ID is the bus/vendor/product/version identifier reported for the
	// created device.
	ID input.ID

	// Name is the device name, NUL-padded to UINPUT_MAX_NAME_SIZE.
	Name [UINPUT_MAX_NAME_SIZE]byte

	// FFEffectsMax is the maximum number of force-feedback effects the
	// device supports; zero for devices with no force-feedback.
	FFEffectsMax uint32
}

// AbsSetup mirrors struct uinput_abs_setup, used by [UI_ABS_SETUP] to
// configure one absolute axis's range, fuzz, flat and resolution before
// the device is created.
type AbsSetup struct {
	// Code is the EV_ABS code being configured (e.g. input.ABS_X).
	Code uint16

	// AbsInfo carries the axis's value/min/max/fuzz/flat/resolution.
	// The compiler inserts the same 2-byte pad here that the kernel's
	// struct uinput_abs_setup carries before this field.
	AbsInfo input.AbsInfo
}

var (
	// UI_DEV_CREATE instructs the kernel to register the virtual device
	// that has been configured via the UI_SET_* and UI_DEV_SETUP ioctls.
	UI_DEV_CREATE = ioctl.IO('U', 1)

	// UI_DEV_DESTROY tears down a previously created virtual device.
	UI_DEV_DESTROY = ioctl.IO('U', 2)

	// UI_DEV_SETUP configures the device identity (bus/vendor/product,
	// name, force-feedback effect count) before [UI_DEV_CREATE].
	UI_DEV_SETUP = ioctl.IOW('U', 3, Setup{})

	// UI_ABS_SETUP configures one absolute axis's range before
	// [UI_DEV_CREATE].
	UI_ABS_SETUP = ioctl.IOW('U', 4, AbsSetup{})

	// UI_SET_EVBIT declares that the device will emit events of a given
	// EV_* type.
	UI_SET_EVBIT = ioctl.IOW('U', 100, int(0))

	// UI_SET_KEYBIT declares that the device will emit the given
	// EV_KEY/BTN_* code.
	UI_SET_KEYBIT = ioctl.IOW('U', 101, int(0))

	// UI_SET_RELBIT declares that the device will emit the given EV_REL
	// code.
	UI_SET_RELBIT = ioctl.IOW('U', 102, int(0))

	// UI_SET_ABSBIT declares that the device will emit the given EV_ABS
	// code. The axis's range must still be configured, either via
	// [UI_ABS_SETUP] or the legacy uinput_user_dev.absmin/absmax fields
	// (not used here; UI_ABS_SETUP is the modern path).
	UI_SET_ABSBIT = ioctl.IOW('U', 103, int(0))

	// UI_SET_MSCBIT declares that the device will emit the given EV_MSC
	// code.
	UI_SET_MSCBIT = ioctl.IOW('U', 104, int(0))

	// UI_SET_LEDBIT declares that the device supports the given EV_LED
	// code.
	UI_SET_LEDBIT = ioctl.IOW('U', 105, int(0))

	// UI_SET_PROPBIT declares an INPUT_PROP_* property for the device.
	UI_SET_PROPBIT = ioctl.IOW('U', 110, int(0))
)
