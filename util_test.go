package squircle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values with a tolerance suitable for
// geometry computed through trigonometry.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); !(d <= epsilon) {
		t.Errorf("got %v, want %v (distance %g)", got, want, d)
	}
}
