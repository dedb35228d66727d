package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raykernel/numeric"
	"github.com/stretchr/testify/assert"
)

// TestApproxEqual covers the strict |a-b| < Epsilon boundary and NaN handling.
func TestApproxEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"half epsilon", 4, 4 + numeric.Epsilon/2, true},
		{"double epsilon", 4, 4 + 2*numeric.Epsilon, false},
		{"negative side", -2, -2 - numeric.Epsilon/4, true},
		{"nan", math.NaN(), math.NaN(), false},
		{"inf", math.Inf(1), math.Inf(1), true},
		{"opposite inf", math.Inf(1), math.Inf(-1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.ApproxEqual(tc.a, tc.b))
		})
	}
}

// TestApproxEqualTol checks the explicit tolerance variant.
func TestApproxEqualTol(t *testing.T) {
	assert.True(t, numeric.ApproxEqualTol(1, 1.05, 0.1))
	assert.False(t, numeric.ApproxEqualTol(1, 1.2, 0.1))
}

// TestIsFinite rejects NaN and both infinities.
func TestIsFinite(t *testing.T) {
	assert.True(t, numeric.IsFinite(0))
	assert.True(t, numeric.IsFinite(-1e300))
	assert.False(t, numeric.IsFinite(math.NaN()))
	assert.False(t, numeric.IsFinite(math.Inf(1)))
	assert.False(t, numeric.IsFinite(math.Inf(-1)))
}
