//go:build unit

package transforms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShiftedExp_ScaleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scale   float64
		wantErr error
	}{
		{name: "positive scale", scale: 1, wantErr: nil},
		{name: "fractional scale", scale: 0.25, wantErr: nil},
		{name: "zero scale", scale: 0, wantErr: ErrNonPositiveScale},
		{name: "negative scale", scale: -2, wantErr: ErrNonPositiveScale},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewShiftedExp(true, 0, tt.scale)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShiftedExp_Forward(t *testing.T) {
	t.Parallel()

	ascending, err := NewShiftedExp(true, 0, 1)
	require.NoError(t, err)

	descending, err := NewShiftedExp(false, 0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1, ascending.Forward(0), 1e-15)
	assert.InDelta(t, math.E, ascending.Forward(1), 1e-15)
	assert.InDelta(t, -1, descending.Forward(0), 1e-15)
	assert.InDelta(t, -math.E, descending.Forward(1), 1e-15)

	scaled, err := NewShiftedExp(true, 0, 10)
	require.NoError(t, err)

	assert.InDelta(t, 1, scaled.Forward(0), 1e-15)
	assert.InDelta(t, math.E, scaled.Forward(10), 1e-12)
}

func TestShiftedExp_RangeContainment(t *testing.T) {
	t.Parallel()

	ascending, err := NewShiftedExp(true, 2, 1.5)
	require.NoError(t, err)

	descending, err := NewShiftedExp(false, -3, 0.5)
	require.NoError(t, err)

	for _, x := range moderateGrid {
		assert.Greater(t, ascending.Forward(x), 2.0, "ascending at x=%g", x)
		assert.Less(t, descending.Forward(x), -3.0, "descending at x=%g", x)
	}
}

func TestShiftedExp_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ascending bool
		shift     float64
		scale     float64
	}{
		{name: "positive half-line", ascending: true, shift: 0, scale: 1},
		{name: "negative half-line", ascending: false, shift: 0, scale: 1},
		{name: "shifted ascending", ascending: true, shift: -4.5, scale: 2.5},
		{name: "shifted descending", ascending: false, shift: 7, scale: 0.3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, err := NewShiftedExp(tt.ascending, tt.shift, tt.scale)
			require.NoError(t, err)

			for _, x := range moderateGrid {
				got, err := tr.Inverse(tr.Forward(x))

				require.NoError(t, err)
				assert.InDelta(t, x, got, 1e-8, "x=%g", x)
			}
		})
	}
}

func TestShiftedExp_LogJacobian(t *testing.T) {
	t.Parallel()

	for _, ascending := range []bool{true, false} {
		tr, err := NewShiftedExp(ascending, 1.5, 2)
		require.NoError(t, err)

		for _, x := range moderateGrid {
			_, logj := tr.ForwardWithLogJacobian(x)

			assert.InDelta(t, x/2-math.Log(2), logj, 1e-15, "closed form at x=%g", x)
			assert.InDelta(t, finiteDifferenceLogJacobian(tr, x), logj, 1e-4, "finite difference at x=%g", x)
		}
	}
}

func TestShiftedExp_InverseLogJacobian(t *testing.T) {
	t.Parallel()

	tr, err := NewShiftedExp(true, -2, 3)
	require.NoError(t, err)

	for _, x := range moderateGrid {
		y, forwardLogj := tr.ForwardWithLogJacobian(x)

		got, inverseLogj, err := tr.InverseWithLogJacobian(y)

		require.NoError(t, err)
		assert.InDelta(t, x, got, 1e-8)
		assert.InDelta(t, -forwardLogj, inverseLogj, 1e-8, "inverse log-Jacobian must negate the forward one at x=%g", x)
	}
}

func TestShiftedExp_DomainRejection(t *testing.T) {
	t.Parallel()

	ascending, err := NewShiftedExp(true, 1, 1)
	require.NoError(t, err)

	descending, err := NewShiftedExp(false, 1, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		tr   Transform
		y    float64
	}{
		{name: "ascending at shift", tr: ascending, y: 1},
		{name: "ascending below shift", tr: ascending, y: 0.5},
		{name: "ascending far below", tr: ascending, y: -10},
		{name: "descending at shift", tr: descending, y: 1},
		{name: "descending above shift", tr: descending, y: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.tr.Inverse(tt.y)
			assert.ErrorIs(t, err, ErrOutOfDomain)

			_, _, err = tt.tr.InverseWithLogJacobian(tt.y)
			assert.ErrorIs(t, err, ErrOutOfDomain)
		})
	}
}

func TestShiftedExp_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ascending bool
		shift     float64
		scale     float64
		want      string
	}{
		{name: "positive half-line", ascending: true, shift: 0, scale: 1, want: "As(0, ∞)"},
		{name: "negative half-line", ascending: false, shift: 0, scale: 1, want: "As(-∞, 0)"},
		{name: "scaled", ascending: true, shift: 2.5, scale: 10, want: "As(2.5, ∞; scale=10)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, err := NewShiftedExp(tt.ascending, tt.shift, tt.scale)

			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.String())
		})
	}
}
