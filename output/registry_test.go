package output

import (
	"errors"
	"testing"

	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/linux/uinput"
)

// fakeWriter is a uinputWriter that records writes without touching
// /dev/uinput.
type fakeWriter struct {
	events [][3]int64
	closed bool
}

func (f *fakeWriter) WriteEvent(evType, code uint16, value int32) error {
	f.events = append(f.events, [3]int64{int64(evType), int64(code), int64(value)})

	return nil
}

func (f *fakeWriter) Sync() error { return nil }

func (f *fakeWriter) AbsInfo(code uint16) (input.AbsInfo, error) {
	return input.AbsInfo{Minimum: -1, Maximum: 1}, nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func withFakeOpen(t *testing.T) map[string]*fakeWriter {
	t.Helper()

	fakes := make(map[string]*fakeWriter)
	orig := openFunc

	openFunc = func(name string, caps uinput.Capabilities) (uinputWriter, error) {
		f := &fakeWriter{}
		fakes[name] = f

		return f, nil
	}

	t.Cleanup(func() { openFunc = orig })

	return fakes
}

func TestRegistryWriteRejectsUnknownTarget(t *testing.T) {
	withFakeOpen(t)

	r := NewRegistry()

	err := r.Write("nope", input.EV_KEY, input.KEY_A, 1)
	if !errors.Is(err, ErrUinputNotAvailable) {
		t.Fatalf("Write to unregistered target: got %v, want ErrUinputNotAvailable", err)
	}
}

func TestRegistryWriteRejectsUnsupportedCapability(t *testing.T) {
	withFakeOpen(t)

	r := NewRegistry()
	if err := r.Register(Keyboard, KeyboardTemplate(), []uint16{input.KEY_A}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	err := r.Write(Keyboard, input.EV_KEY, input.KEY_B, 1)
	if !errors.Is(err, ErrEventNotHandled) {
		t.Fatalf("Write with unsupported code: got %v, want ErrEventNotHandled", err)
	}
}

func TestRegistryWriteSucceedsForDeclaredCapability(t *testing.T) {
	fakes := withFakeOpen(t)

	r := NewRegistry()
	if err := r.Register(Keyboard, KeyboardTemplate(), []uint16{input.KEY_A}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Write(Keyboard, input.EV_KEY, input.KEY_A, 1); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := len(fakes[Keyboard].events); got != 1 {
		t.Fatalf("writer recorded %d events, want 1", got)
	}
}

func TestRegistryResetAllReleasesHeldKeys(t *testing.T) {
	fakes := withFakeOpen(t)

	r := NewRegistry()
	if err := r.Register(Keyboard, KeyboardTemplate(), []uint16{input.KEY_A}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Write(Keyboard, input.EV_KEY, input.KEY_A, 1); err != nil {
		t.Fatalf("Write down: %v", err)
	}

	r.ResetAll()

	events := fakes[Keyboard].events
	if len(events) != 2 {
		t.Fatalf("got %d events after ResetAll, want 2 (down+release)", len(events))
	}

	if events[1][2] != 0 {
		t.Errorf("release event value = %d, want 0", events[1][2])
	}
}

func TestRegistryResetAllIsIdempotent(t *testing.T) {
	fakes := withFakeOpen(t)

	r := NewRegistry()
	if err := r.Register(Keyboard, KeyboardTemplate(), []uint16{input.KEY_A}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Write(Keyboard, input.EV_KEY, input.KEY_A, 1); err != nil {
		t.Fatalf("Write down: %v", err)
	}

	r.ResetAll()
	before := len(fakes[Keyboard].events)
	r.ResetAll()

	if got := len(fakes[Keyboard].events); got != before {
		t.Errorf("second ResetAll emitted %d more events, want 0", got-before)
	}
}

func TestRegistryCloseClosesEveryDevice(t *testing.T) {
	fakes := withFakeOpen(t)

	r := NewRegistry()
	if err := r.Register(Keyboard, KeyboardTemplate(), nil); err != nil {
		t.Fatalf("Register keyboard: %v", err)
	}

	if err := r.Register(Mouse, MouseTemplate(), nil); err != nil {
		t.Fatalf("Register mouse: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for name, f := range fakes {
		if !f.closed {
			t.Errorf("device %q not closed", name)
		}
	}
}

func TestRegistryAbsInfoUnknownTarget(t *testing.T) {
	withFakeOpen(t)

	r := NewRegistry()

	_, err := r.AbsInfo("gamepad", input.ABS_X)
	if !errors.Is(err, ErrUinputNotAvailable) {
		t.Fatalf("AbsInfo on unregistered target: got %v, want ErrUinputNotAvailable", err)
	}
}
