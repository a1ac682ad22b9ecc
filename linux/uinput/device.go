//go:build linux

package uinput

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/linux/ioctl"
)

// devPath is the well-known uinput character device, which Open opens
// read-write; the process must already be allowed to write to it
// (spec.md §1: the core assumes an already-writable uinput facility).
const devPath = "/dev/uinput"

// eventSize is the on-wire size of a kernel input_event struct on a
// 64-bit host.
const eventSize = 24

// Capabilities describes everything a virtual device must advertise
// before [Device.Create]: which EV_* types it emits, which codes within
// each type, and the absinfo for any EV_ABS code.
type Capabilities struct {
	// Keys are EV_KEY/BTN_* codes the device can emit.
	Keys []uint16

	// Rel are EV_REL codes the device can emit.
	Rel []uint16

	// Abs maps EV_ABS codes to their absinfo.
	Abs map[uint16]input.AbsInfo

	// Props are INPUT_PROP_* properties to declare.
	Props []uint16
}

// Device represents an open virtual (uinput) input device.
type Device struct {
	file *os.File
	fd   uintptr
	name string
}

// Open opens /dev/uinput for read-write. The returned Device is not yet
// a visible input device; call SetCapabilities then Create.
func Open() (*Device, error) {
	var (
		file *os.File
		err  error
	)

	file, err = os.OpenFile(devPath, os.O_RDWR|os.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("uinput.Open: %w", err)
	}

	return &Device{file: file, fd: file.Fd()}, nil
}

// SetCapabilities declares the event types and codes the device will be
// permitted to emit. It must be called before Create.
func (dev *Device) SetCapabilities(caps Capabilities) error {
	var (
		code uint16
		err  error
	)

	if len(caps.Keys) > 0 {
		err = dev.setEvBit(input.EV_KEY)
		if err != nil {
			return err
		}

		for _, code = range caps.Keys {
			err = ioctl.Any(dev.fd, UI_SET_KEYBIT, codePtr(code))
			if err != nil {
				return fmt.Errorf("Device.SetCapabilities: key %d: %w", code, err)
			}
		}
	}

	if len(caps.Rel) > 0 {
		err = dev.setEvBit(input.EV_REL)
		if err != nil {
			return err
		}

		for _, code = range caps.Rel {
			err = ioctl.Any(dev.fd, UI_SET_RELBIT, codePtr(code))
			if err != nil {
				return fmt.Errorf("Device.SetCapabilities: rel %d: %w", code, err)
			}
		}
	}

	if len(caps.Abs) > 0 {
		err = dev.setEvBit(input.EV_ABS)
		if err != nil {
			return err
		}

		for code = range caps.Abs {
			err = ioctl.Any(dev.fd, UI_SET_ABSBIT, codePtr(code))
			if err != nil {
				return fmt.Errorf("Device.SetCapabilities: abs %d: %w", code, err)
			}
		}
	}

	for _, code = range caps.Props {
		err = ioctl.Any(dev.fd, UI_SET_PROPBIT, codePtr(code))
		if err != nil {
			return fmt.Errorf("Device.SetCapabilities: prop %d: %w", code, err)
		}
	}

	return nil
}

func (dev *Device) setEvBit(evType uint16) error {
	var err error

	err = ioctl.Any(dev.fd, UI_SET_EVBIT, codePtr(evType))
	if err != nil {
		return fmt.Errorf("Device.setEvBit: %w", err)
	}

	return nil
}

func codePtr(code uint16) *int {
	var v int = int(code)

	return &v
}

// Create registers the device with the kernel, making it visible to the
// rest of the system. name is truncated to [UINPUT_MAX_NAME_SIZE]-1 bytes.
// absInfos supplies the axis ranges for any EV_ABS code previously
// declared via SetCapabilities.
func (dev *Device) Create(name string, absInfos map[uint16]input.AbsInfo) error {
	var (
		setup Setup
		code  uint16
		info  input.AbsInfo
		err   error
	)

	copy(setup.Name[:UINPUT_MAX_NAME_SIZE-1], name)

	setup.ID = input.ID{Bustype: 0x06, Vendor: 0x4711, Product: 0x0001, Version: 1}

	for code, info = range absInfos {
		err = ioctl.Any(dev.fd, UI_ABS_SETUP, &AbsSetup{Code: code, AbsInfo: info})
		if err != nil {
			return fmt.Errorf("Device.Create: abs setup %d: %w", code, err)
		}
	}

	err = ioctl.Any(dev.fd, UI_DEV_SETUP, &setup)
	if err != nil {
		return fmt.Errorf("Device.Create: dev setup: %w", err)
	}

	err = ioctl.Any[struct{}](dev.fd, UI_DEV_CREATE, nil)
	if err != nil {
		return fmt.Errorf("Device.Create: dev create: %w", err)
	}

	dev.name = name

	return nil
}

// Name returns the name this Device was created with.
func (dev *Device) Name() string {
	return dev.name
}

// WriteEvent writes one input_event to the virtual device, followed
// implicitly by nothing: callers are responsible for writing an EV_SYN
// SYN_REPORT event to flush a logical group of changes, matching evdev
// semantics.
func (dev *Device) WriteEvent(evType, code uint16, value int32) error {
	var (
		buf [eventSize]byte
		err error
	)

	binary.NativeEndian.PutUint16(buf[16:18], evType)
	binary.NativeEndian.PutUint16(buf[18:20], code)
	binary.NativeEndian.PutUint32(buf[20:24], uint32(value))

	_, err = dev.file.Write(buf[:])
	if err != nil {
		return fmt.Errorf("Device.WriteEvent: %w", err)
	}

	return nil
}

// Sync writes an EV_SYN/SYN_REPORT event, flushing a batch of prior
// WriteEvent calls to consumers as one atomic update.
func (dev *Device) Sync() error {
	return dev.WriteEvent(input.EV_SYN, input.SYN_REPORT, 0)
}

// AbsInfo reads back the current absinfo for code (e.g. to introspect
// the range of an axis this device owns).
func (dev *Device) AbsInfo(code uint16) (input.AbsInfo, error) {
	var (
		info input.AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, input.EVIOCGABS(uint(code)), &info)
	if err != nil {
		return input.AbsInfo{}, fmt.Errorf("Device.AbsInfo: %w", err)
	}

	return info, nil
}

// Destroy removes the virtual device from the kernel's input subsystem.
func (dev *Device) Destroy() error {
	var err error

	err = ioctl.Any[struct{}](dev.fd, UI_DEV_DESTROY, nil)
	if err != nil {
		return fmt.Errorf("Device.Destroy: %w", err)
	}

	return nil
}

// Close destroys the device (if created) and closes the underlying file.
func (dev *Device) Close() error {
	var err error

	_ = dev.Destroy()

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
