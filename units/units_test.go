package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertLength(t *testing.T) {
	assert.InDelta(t, 0.3048, ConvertLength(1., LenFT, LenM), 1e-9)
	assert.InDelta(t, 12., ConvertLength(1., LenFT, LenIN), 1e-9)
	assert.InDelta(t, 1000., ConvertLength(1., LenM, LenMM), 1e-9)
	assert.InDelta(t, 3., ConvertLength(1., LenYD, LenFT), 1e-9)
	assert.Equal(t, 5., ConvertLength(5., LenFT, LenFT))
	// unitless carries no scale
	assert.Equal(t, 2.5, ConvertLength(2.5, LenUnitless, LenUnitless))
}

func TestConvertVelocity(t *testing.T) {
	assert.InDelta(t, 0.3048, ConvertVelocity(1., VelFtS, VelMS), 1e-9)
	assert.InDelta(t, 0.514444, ConvertVelocity(1., VelKTAS, VelMS), 1e-9)
	assert.InDelta(t, 1.609344, ConvertVelocity(1., VelMPH, VelKmHr), 1e-6)
	// equivalent airspeed converts as knots
	assert.InDelta(t, ConvertVelocity(250., VelKTAS, VelFtS), ConvertVelocity(250., VelKEAS, VelFtS), 1e-12)
}

func TestConvertTemperature(t *testing.T) {
	assert.InDelta(t, 273.15, ConvertTemperature(0., TempC, TempK), 1e-9)
	assert.InDelta(t, 32., ConvertTemperature(0., TempC, TempF), 1e-9)
	assert.InDelta(t, 518.67, ConvertTemperature(288.15, TempK, TempR), 1e-9)
	assert.InDelta(t, 15., ConvertTemperature(59., TempF, TempC), 1e-9)
	assert.Equal(t, 288.15, ConvertTemperature(288.15, TempK, TempK))
}

func TestConvertPressure(t *testing.T) {
	assert.InDelta(t, 101325., ConvertPressure(1., PresATM, PresPA), 1e-6)
	assert.InDelta(t, 2116.22, ConvertPressure(1., PresATM, PresPSF), 0.01)
	assert.InDelta(t, 14.696, ConvertPressure(1., PresATM, PresPSI), 0.001)
	assert.InDelta(t, 1000., ConvertPressure(1., PresKPA, PresPA), 1e-9)
}

func TestConvertDensity(t *testing.T) {
	assert.InDelta(t, 515.378818, ConvertDensity(1., RhoSlugFt3, RhoKgM3), 1e-6)
	assert.InDelta(t, 0.0023769, ConvertDensity(1.225, RhoKgM3, RhoSlugFt3), 1e-6)
	assert.Equal(t, 1.225, ConvertDensity(1.225, RhoKgM3, RhoKgM3))
}

func TestRoundTrips(t *testing.T) {
	for u := LenMM; u <= LenYD; u++ {
		v := ConvertLength(7.3, LenFT, u)
		assert.InDelta(t, 7.3, ConvertLength(v, u, LenFT), 1e-9)
	}
	for u := PresPSF; u <= PresATM; u++ {
		v := ConvertPressure(2116.221, PresPSF, u)
		assert.InDelta(t, 2116.221, ConvertPressure(v, u, PresPSF), 1e-6)
	}
	for u := TempK; u <= TempR; u++ {
		v := ConvertTemperature(288.15, TempK, u)
		assert.InDelta(t, 288.15, ConvertTemperature(v, u, TempK), 1e-9)
	}
}
