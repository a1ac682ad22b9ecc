package axis

import (
	"math"
	"testing"
)

const tol = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestTransformationBoundary(t *testing.T) {
	var cases = []struct {
		min, max, deadzone, gain, expo float64
	}{
		{-1, 1, 0, 1, 0},
		{-32768, 32767, 0.1, 2, 0.5},
		{-1, 1, 0.2, 1, -0.5},
		{0, 255, 0, 1.5, 0.9},
	}

	for _, tc := range cases {
		tr, err := New(tc.min, tc.max, tc.deadzone, tc.gain, tc.expo)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		if got := tr.At(tc.max); !almostEqual(got, tc.gain) {
			t.Errorf("At(max)=%v, want %v (case %+v)", got, tc.gain, tc)
		}

		if got := tr.At(tc.min); !almostEqual(got, -tc.gain) {
			t.Errorf("At(min)=%v, want %v (case %+v)", got, -tc.gain, tc)
		}
	}
}

func TestTransformationDeadzone(t *testing.T) {
	tr, err := New(-1, 1, 0.3, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, x := range []float64{-0.3, -0.2, -0.1, 0, 0.1, 0.2, 0.3} {
		if got := tr.At(x); !almostEqual(got, 0) {
			t.Errorf("At(%v)=%v, want 0 (within deadzone)", x, got)
		}
	}
}

func TestTransformationSymmetry(t *testing.T) {
	tr, err := New(-1, 1, 0.15, 1.3, 0.4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, x := range []float64{0.05, 0.2, 0.5, 0.9, 1} {
		pos := tr.At(x)
		neg := tr.At(-x)

		if !almostEqual(pos, -neg) {
			t.Errorf("At(%v)=%v, At(%v)=%v; not antisymmetric", x, pos, -x, neg)
		}
	}
}

func TestTransformationExpoInverse(t *testing.T) {
	for _, k := range []float64{0.2, 0.5, 0.9, 1} {
		pos, err := New(-1, 1, 0, 1, k)
		if err != nil {
			t.Fatalf("New(+%v): %v", k, err)
		}

		neg, err := New(-1, 1, 0, 1, -k)
		if err != nil {
			t.Fatalf("New(-%v): %v", k, err)
		}

		for _, x := range []float64{-0.9, -0.5, -0.1, 0.1, 0.5, 0.9} {
			roundTrip := neg.At(pos.At(x))
			if !almostEqual(roundTrip, x) {
				t.Errorf("k=%v x=%v: pos-then-neg=%v, want %v", k, x, roundTrip, x)
			}
		}
	}
}

func TestTransformationContinuityAtDeadzoneEdge(t *testing.T) {
	const deadzone = 0.25

	tr, err := New(-1, 1, deadzone, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const step = 1e-4
	x1 := deadzone + step
	x2 := deadzone + 2*step

	y1 := tr.At(x1)
	y2 := tr.At(x2)

	// Linear extrapolation of the line through (x1,y1),(x2,y2) back to
	// y=0 should land within 1e-5 of +deadzone.
	slope := (y2 - y1) / (x2 - x1)
	zeroCrossing := x1 - y1/slope

	if math.Abs(zeroCrossing-deadzone) > 1e-5 {
		t.Errorf("zero crossing at %v, want within 1e-5 of %v", zeroCrossing, deadzone)
	}
}

func TestTransformationInvalidExpo(t *testing.T) {
	if _, err := New(-1, 1, 0, 1, 1.5); err == nil {
		t.Error("expected error for expo > 1")
	}

	if _, err := New(-1, 1, 0, 1, -1.5); err == nil {
		t.Error("expected error for expo < -1")
	}
}

func TestTransformationSetRangeInvalidatesCache(t *testing.T) {
	tr, err := New(0, 100, 0, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := tr.At(50)
	tr.SetRange(0, 200)
	second := tr.At(50)

	if almostEqual(first, second) {
		t.Errorf("expected At(50) to change after SetRange, got %v both times", first)
	}
}
