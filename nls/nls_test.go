package nls

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootQuadratic(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2. }
	fp := func(x float64) float64 { return 2. * x }
	x, err := FindRoot(f, fp, 1., 1e-12, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)
}

func TestFindRootImmediate(t *testing.T) {
	f := func(x float64) float64 { return x - 3. }
	fp := func(x float64) float64 { return 1. }
	x, err := FindRoot(f, fp, 3., 1e-12, 1)
	require.NoError(t, err)
	assert.Equal(t, 3., x)
}

func TestFindRootCapReached(t *testing.T) {
	// residual never closes under the cap with a tiny step
	f := func(x float64) float64 { return x }
	fp := func(x float64) float64 { return 1e6 }
	x, err := FindRoot(f, fp, 1., 1e-15, 3)
	assert.ErrorIs(t, err, ErrNoConvergence)
	assert.Less(t, x, 1.) // made progress before stopping
}

func TestFindRootFlatDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1. }
	fp := func(x float64) float64 { return 0. }
	x, err := FindRoot(f, fp, 2., 1e-12, 50)
	assert.ErrorIs(t, err, ErrNoConvergence)
	assert.Equal(t, 2., x, "last iterate comes back")
}

func TestFindRootNaNGuard(t *testing.T) {
	f := func(x float64) float64 { return math.Log(x) }
	fp := func(x float64) float64 { return 1. / x }
	// step drives x negative, log goes NaN, iteration stops rather than runs away
	_, err := FindRoot(f, fp, -1., 1e-12, 50)
	assert.ErrorIs(t, err, ErrNoConvergence)
}
