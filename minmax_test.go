package geom

import (
	"math"
	"testing"
)

func TestMinMax(t *testing.T) {
	f := func(a, b, wantMin, wantMax float64) {
		t.Helper()
		lo, hi := MinMax(a, b)
		if lo != wantMin || hi != wantMax {
			t.Errorf("MinMax(%v, %v) = (%v, %v), want (%v, %v)", a, b, lo, hi, wantMin, wantMax)
		}
	}
	f(1, 2, 1, 2)
	f(2, 1, 1, 2)
	f(-3.5, -3.5, -3.5, -3.5)
	f(-1e300, 1e300, -1e300, 1e300)
}

func TestMinMaxTiesKeepOrder(t *testing.T) {
	negZero := math.Copysign(0, -1)
	lo, hi := MinMax(0.0, negZero)
	if math.Signbit(lo) || !math.Signbit(hi) {
		t.Errorf("got (%v, %v), want (+0, -0)", lo, hi)
	}
	lo, hi = MinMax(negZero, 0.0)
	if !math.Signbit(lo) || math.Signbit(hi) {
		t.Errorf("got (%v, %v), want (-0, +0)", lo, hi)
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	for _, args := range [][2]float64{{nan, 1}, {1, nan}} {
		lo, hi := MinMax(args[0], args[1])
		if !math.IsNaN(lo) || hi != 1 {
			t.Errorf("MinMax(%v, %v) = (%v, %v), want (NaN, 1)", args[0], args[1], lo, hi)
		}
	}
}

func TestMinMaxFloat32(t *testing.T) {
	lo, hi := MinMax[float32](3, -2)
	if lo != -2 || hi != 3 {
		t.Errorf("got (%v, %v), want (-2, 3)", lo, hi)
	}
}
