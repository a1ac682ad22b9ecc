//go:build linux

package input

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inputcore/remapper/linux/ioctl"
	"golang.org/x/sys/unix"
)

// EventType is a Linux evdev event type, e.g. [EV_KEY] or [EV_ABS].
type EventType = uint16

// Code is an event code within an [EventType], e.g. a KEY_* or ABS_* value.
type Code = uint16

// eventSize is the on-wire size of a kernel input_event struct on a
// 64-bit host: two timeval fields (8 bytes each), type, code, value.
const eventSize = 24

// Device represents an evdev input device.
// It wraps the opened /dev/input/eventN file.
type Device struct {
	file    *os.File
	fd      uintptr
	path    string
	grabbed bool
}

// NewDevice opens the evdev device at the given path and returns a Device.
// The path is cleaned before opening, and the device file is opened
// in read-write mode. The caller is responsible for closing the device
// when no longer needed.
func NewDevice(path string) (*Device, error) {
	var (
		device *Device
		file   *os.File
		err    error
	)

	file, err = os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("input.NewDevice: %w", err)
	}

	device = &Device{
		file: file,
		fd:   file.Fd(),
		path: path,
	}

	return device, nil
}

// Devices scans /dev/input for event devices, opens each one, and
// returns a slice of Device pointers. If any device fails to open,
// an error is returned and no devices are returned.
func Devices() ([]*Device, error) {
	var (
		devices []*Device
		device  *Device
		paths   []string
		path    string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("input.Devices: %w", err)
	}

	devices = make([]*Device, 0, len(paths))
	for _, path = range paths {
		device, err = NewDevice(path)
		if err != nil {
			return nil, fmt.Errorf("input.Devices: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// Path returns the kernel device path this Device was opened from.
func (dev *Device) Path() string {
	return dev.path
}

// Fd returns the underlying file descriptor.
func (dev *Device) Fd() uintptr {
	return dev.fd
}

// Name returns the human-readable name of the evdev device.
// It sends the [EVIOCGNAME] ioctl to read up to 256 bytes and
// converts the null-terminated result into a Go string.
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGNAME(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	return unix.ByteSliceToString(buf), nil
}

// ID returns the bus/vendor/product/version identifier for this evdev
// device, via the [EVIOCGID] ioctl.
func (dev *Device) ID() (ID, error) {
	var (
		id  ID
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGID, &id)
	if err != nil {
		return ID{}, fmt.Errorf("Device.ID: %w", err)
	}

	return id, nil
}

// Events returns a slice of the event types the device supports,
// leaving out EV_REP even when the device reports it.
func (dev *Device) Events() ([]EventType, error) {
	var (
		buf       []byte
		events    []EventType
		eventType uint
		err       error
	)

	buf = make([]byte, (EV_MAX+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(0, uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Events: %w", err)
	}

	events = make([]EventType, 0, EV_CNT)

	for eventType = range uint(EV_CNT) {
		if !TestBit(buf, eventType) {
			continue
		}

		if eventType == EV_REP {
			continue
		}

		events = append(events, EventType(eventType))
	}

	return events, nil
}

// Codes returns all supported event codes for the given eventType.
func (dev *Device) Codes(eventType EventType) ([]Code, error) {
	var (
		buf            []byte
		codes          []Code
		maxCodes, code uint
		ok             bool
		err            error
	)

	maxCodes, ok = MaxCodes(eventType)
	if !ok {
		return nil, fmt.Errorf("Device.Codes: %w %d", ErrInvalidEventType, eventType)
	}

	buf = make([]byte, (maxCodes+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(uint(eventType), uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Codes: %w", err)
	}

	codes = make([]Code, 0, maxCodes+1)

	for code = range maxCodes + 1 {
		if !TestBit(buf, code) {
			continue
		}

		codes = append(codes, Code(code))
	}

	return codes, nil
}

// AbsInfo returns the absinfo for the given EV_ABS code via [EVIOCGABS].
func (dev *Device) AbsInfo(code Code) (AbsInfo, error) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, EVIOCGABS(uint(code)), &info)
	if err != nil {
		return AbsInfo{}, fmt.Errorf("Device.AbsInfo: %w", err)
	}

	return info, nil
}

// Grab requests exclusive access to the device via [EVIOCGRAB]. While
// grabbed, no other process (including the rest of the kernel input
// stack) observes this device's events.
func (dev *Device) Grab() error {
	var (
		one uint32 = 1
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGRAB(), &one)
	if err != nil {
		return fmt.Errorf("Device.Grab: %w", err)
	}

	dev.grabbed = true

	return nil
}

// Ungrab releases a grab acquired by Grab. It is a no-op if the device
// was never grabbed.
func (dev *Device) Ungrab() error {
	var (
		zero uint32
		err  error
	)

	if !dev.grabbed {
		return nil
	}

	err = ioctl.Any(dev.fd, EVIOCGRAB(), &zero)
	if err != nil {
		return fmt.Errorf("Device.Ungrab: %w", err)
	}

	dev.grabbed = false

	return nil
}

// ReadEvent blocks until the kernel delivers one input_event and decodes
// it into an Event. It returns an error (wrapping the underlying read
// error) if the device is closed or disappears mid-read.
func (dev *Device) ReadEvent() (Event, error) {
	var (
		buf [eventSize]byte
		n   int
		err error
		ev  Event
	)

	n, err = dev.file.Read(buf[:])
	if err != nil {
		return Event{}, fmt.Errorf("Device.ReadEvent: %w", err)
	}

	if n != eventSize {
		return Event{}, fmt.Errorf("Device.ReadEvent: short read of %d bytes", n)
	}

	ev = Event{
		Sec:   binary.NativeEndian.Uint64(buf[0:8]),
		Usec:  binary.NativeEndian.Uint64(buf[8:16]),
		Type:  binary.NativeEndian.Uint16(buf[16:18]),
		Code:  binary.NativeEndian.Uint16(buf[18:20]),
		Value: int32(binary.NativeEndian.Uint32(buf[20:24])),
	}

	return ev, nil
}

// WriteEvent writes a single input_event to the device's fd. Most callers
// write to a [linux/uinput] device instead; Device.WriteEvent exists for
// completeness (e.g. LED feedback ioctls that are easier expressed as
// a write) and is rarely used directly.
func (dev *Device) WriteEvent(ev Event) error {
	var (
		buf [eventSize]byte
		err error
	)

	binary.NativeEndian.PutUint64(buf[0:8], ev.Sec)
	binary.NativeEndian.PutUint64(buf[8:16], ev.Usec)
	binary.NativeEndian.PutUint16(buf[16:18], ev.Type)
	binary.NativeEndian.PutUint16(buf[18:20], ev.Code)
	binary.NativeEndian.PutUint32(buf[20:24], uint32(ev.Value))

	_, err = dev.file.Write(buf[:])
	if err != nil {
		return fmt.Errorf("Device.WriteEvent: %w", err)
	}

	return nil
}

// LEDs returns the set of currently lit LED codes via [EVIOCGLED].
func (dev *Device) LEDs() ([]Code, error) {
	var (
		buf   []byte
		leds  []Code
		code  uint
		err   error
	)

	buf = make([]byte, (LED_MAX+7)/8)

	err = ioctl.Any(dev.fd, EVIOCGLED(uint(len(buf))), &buf[0])
	if err != nil {
		return nil, fmt.Errorf("Device.LEDs: %w", err)
	}

	leds = make([]Code, 0, LED_MAX+1)
	for code = range uint(LED_MAX + 1) {
		if !TestBit(buf, code) {
			continue
		}

		leds = append(leds, Code(code))
	}

	return leds, nil
}

// Close closes the evdev device by closing its underlying file handle.
// Ungrabs first if currently grabbed.
func (dev *Device) Close() error {
	var err error

	_ = dev.Ungrab()

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
