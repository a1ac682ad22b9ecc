package macro

import (
	"context"
	"testing"
	"time"

	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/symbols"
)

func testTable() *symbols.Table {
	return symbols.New(map[string]uint16{
		"KEY_A":         input.KEY_A,
		"KEY_B":         input.KEY_B,
		"KEY_LEFTSHIFT": input.KEY_LEFTSHIFT,
	})
}

type recorder struct {
	events [][3]int64
}

func (r *recorder) handle(evType, code uint16, value int32) error {
	r.events = append(r.events, [3]int64{int64(evType), int64(code), int64(value)})

	return nil
}

func TestParseSingleKey(t *testing.T) {
	m, err := Parse("k(KEY_A)", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rec := &recorder{}
	if err := m.Run(context.Background(), rec.handle); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := [][3]int64{{int64(input.EV_KEY), int64(input.KEY_A), 1}, {int64(input.EV_KEY), int64(input.KEY_A), 0}}
	if len(rec.events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(rec.events), len(want), rec.events)
	}

	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.events[i], want[i])
		}
	}
}

func TestParseChainedKeys(t *testing.T) {
	m, err := Parse("k(KEY_A).k(KEY_B)", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rec := &recorder{}
	if err := m.Run(context.Background(), rec.handle); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rec.events) != 4 {
		t.Fatalf("got %d events, want 4", len(rec.events))
	}
}

func TestParseRepeat(t *testing.T) {
	m, err := Parse("r(3,k(KEY_A))", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rec := &recorder{}
	if err := m.Run(context.Background(), rec.handle); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rec.events) != 6 {
		t.Fatalf("got %d events, want 6 (3 presses + 3 releases)", len(rec.events))
	}
}

func TestParsePlusSyntax(t *testing.T) {
	plus, err := Parse("KEY_LEFTSHIFT+KEY_A", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse(+): %v", err)
	}

	explicit, err := Parse("m(KEY_LEFTSHIFT,m(KEY_A,h()))", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse(explicit): %v", err)
	}

	plus.PressKey()
	explicit.PressKey()

	recPlus := &recorder{}
	recExplicit := &recorder{}

	done := make(chan struct{}, 2)

	go func() {
		_ = plus.Run(context.Background(), recPlus.handle)
		done <- struct{}{}
	}()

	go func() {
		_ = explicit.Run(context.Background(), recExplicit.handle)
		done <- struct{}{}
	}()

	time.Sleep(20 * time.Millisecond)

	plus.ReleaseKey()
	explicit.ReleaseKey()

	<-done
	<-done

	if len(recPlus.events) == 0 || len(recExplicit.events) == 0 {
		t.Fatal("expected both macros to emit the leading modifier+key press")
	}

	if recPlus.events[0] != recExplicit.events[0] {
		t.Errorf("plus-syntax first event %v != explicit first event %v", recPlus.events[0], recExplicit.events[0])
	}
}

func TestParseUnknownFunction(t *testing.T) {
	if _, err := Parse("bogus(1)", NewStore(), testTable(), 0); err == nil {
		t.Error("expected error for unknown function")
	}
}

func TestParseWrongArity(t *testing.T) {
	if _, err := Parse("k(KEY_A,KEY_B)", NewStore(), testTable(), 0); err == nil {
		t.Error("expected error for too many parameters")
	}
}

func TestSetAndIfeq(t *testing.T) {
	store := NewStore()

	setMacro, err := Parse(`set(mode,1)`, store, testTable(), 0)
	if err != nil {
		t.Fatalf("Parse(set): %v", err)
	}

	if err := setMacro.Run(context.Background(), func(uint16, uint16, int32) error { return nil }); err != nil {
		t.Fatalf("Run(set): %v", err)
	}

	ifeqMacro, err := Parse(`ifeq(mode,1,k(KEY_A),k(KEY_B))`, store, testTable(), 0)
	if err != nil {
		t.Fatalf("Parse(ifeq): %v", err)
	}

	rec := &recorder{}
	if err := ifeqMacro.Run(context.Background(), rec.handle); err != nil {
		t.Fatalf("Run(ifeq): %v", err)
	}

	if rec.events[0][1] != int64(input.KEY_A) {
		t.Errorf("ifeq branch wrote code %d, want KEY_A", rec.events[0][1])
	}
}

func TestGetCapabilitiesIncludesChildren(t *testing.T) {
	m, err := Parse("m(KEY_LEFTSHIFT,k(KEY_A))", NewStore(), testTable(), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	caps := m.GetCapabilities()

	if _, ok := caps[input.EV_KEY][input.KEY_LEFTSHIFT]; !ok {
		t.Error("missing KEY_LEFTSHIFT capability")
	}

	if _, ok := caps[input.EV_KEY][input.KEY_A]; !ok {
		t.Error("missing KEY_A capability from child macro")
	}
}
