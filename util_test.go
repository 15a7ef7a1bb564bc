package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxPoints compares points coordinate-wise within 1e-9. Point2 has an Equal
// method, which cmp would otherwise prefer over float options.
var approxPoints = cmp.Comparer(func(a, b Point2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
})

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}
