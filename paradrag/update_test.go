package paradrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/units"
)

func TestUpdateVinfUnits(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.Vinf = 100.
	pd.UpdateVinf(units.VelKTAS)
	assert.InDelta(t, 59.248, pd.Vinf, 1e-3)
	assert.Equal(t, units.VelKTAS, pd.VinfUnitType)
	pd.UpdateVinf(units.VelFtS)
	assert.InDelta(t, 100., pd.Vinf, 1e-9)
}

func TestUpdateVinfEquivalentAirspeed(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.densityRatio = 0.25
	pd.Vinf = 100.
	pd.VinfUnitType = units.VelKEAS

	// leaving KEAS recovers true airspeed first
	pd.UpdateVinf(units.VelKTAS)
	assert.InDelta(t, 200., pd.Vinf, 1e-9)

	// and entering it undoes the correction
	pd.UpdateVinf(units.VelKEAS)
	assert.InDelta(t, 100., pd.Vinf, 1e-9)
}

func TestUpdateAlt(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.Hinf = 20000.
	pd.UpdateAlt(units.Imperial) // same unit, no-op
	assert.InDelta(t, 20000., pd.Hinf, 1e-12)

	pd.UpdateAlt(units.Metric)
	assert.InDelta(t, 6096., pd.Hinf, 1e-9)
	assert.Equal(t, units.Metric, pd.AltLengthUnit)

	pd.UpdateAlt(units.Imperial)
	assert.InDelta(t, 20000., pd.Hinf, 1e-9)
}

func TestAltitudeCeiling(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.FreestreamType = atmos.TypeManualReL
	pd.Hinf = 3.e5
	require.NoError(t, pd.Update())
	assert.InDelta(t, 278385.83, pd.Hinf, 1e-9)
	assert.InDelta(t, 278385.83, pd.HinfUpperLimit, 1e-9)

	pd.UpdateAlt(units.Metric)
	assert.InDelta(t, 84852., pd.HinfUpperLimit, 1e-9)
}

func TestTemperatureFloor(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.Temp = 59.
	pd.UpdateTemp(units.TempC)
	assert.InDelta(t, 15., pd.Temp, 1e-9)
	assert.InDelta(t, -273.15, pd.TempLowerLimit, 1e-12)

	pd.Temp = -300.
	pd.FreestreamType = atmos.TypeManualReL
	require.NoError(t, pd.Update())
	assert.InDelta(t, -273.15, pd.Temp, 1e-12)

	pd.UpdateTemp(units.TempK)
	assert.InDelta(t, 0., pd.Temp, 1e-9)
	assert.Zero(t, pd.TempLowerLimit)
}

func TestUpdatePres(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.Pres = 2116.221
	pd.UpdatePres(units.PresPSI)
	assert.InDelta(t, 2116.221/144., pd.Pres, 1e-4)
	assert.Equal(t, units.PresPSI, pd.PresUnit)
}

func TestManualReLFollowsMach(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	pd.FreestreamType = atmos.TypeManualReL
	pd.Mach = 0.5
	pd.soundSpeed = 1000.
	require.NoError(t, pd.Update())
	assert.InDelta(t, 500., pd.Vinf, 1e-9)

	pd.VinfUnitType = units.VelKTAS
	require.NoError(t, pd.Update())
	assert.InDelta(t, 296.24, pd.Vinf, 1e-2)

	// without a known sound speed the velocity is left alone
	pd.soundSpeed = 0
	pd.Vinf = 123.
	require.NoError(t, pd.Update())
	assert.InDelta(t, 123., pd.Vinf, 1e-12)
}

func TestParmActivity(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})

	pd.FreestreamType = atmos.TypeUSStandard1976
	require.NoError(t, pd.Update())
	assert.True(t, pd.Active["Vinf"])
	assert.True(t, pd.Active["Hinf"])
	assert.False(t, pd.Active["Temp"])
	assert.False(t, pd.Active["ReqL"])
	assert.True(t, pd.Active["Sref"]) // manual reference

	pd.FreestreamType = atmos.TypeManualPT
	require.NoError(t, pd.Update())
	assert.True(t, pd.Active["Temp"])
	assert.True(t, pd.Active["Pres"])
	assert.False(t, pd.Active["Rho"])
	assert.False(t, pd.Active["Hinf"])

	pd.FreestreamType = atmos.TypeManualReL
	require.NoError(t, pd.Update())
	assert.True(t, pd.Active["ReqL"])
	assert.True(t, pd.Active["Mach"])
	assert.False(t, pd.Active["Vinf"])
}

func TestUpdateDerivesReynoldsPerLength(t *testing.T) {
	pd := New(&degen.Model{}, standardDay())
	pd.FreestreamType = atmos.TypeManualRT
	require.NoError(t, pd.Update())

	kv := 3.737e-7 / 0.0023769
	assert.InDelta(t, kv, pd.KineVisc, 1e-12)
	assert.InDelta(t, 500./kv, pd.ReqL, 1e-3)
	assert.InDelta(t, 500./1116.45, pd.Mach, 1e-12)

	// metric length unit scales the per length figure
	pd.LengthUnit = units.LenM
	require.NoError(t, pd.Update())
	assert.InDelta(t, 500./kv/0.3048, pd.ReqL, 1e-2)
}

func TestFixedAtmosphereKeepsAltitude(t *testing.T) {
	pd := New(&degen.Model{}, standardDay())
	pd.FreestreamType = atmos.TypeManualRT
	pd.Hinf = 12345.
	require.NoError(t, pd.Update())
	// manual types leave the altitude input untouched
	assert.InDelta(t, 12345., pd.Hinf, 1e-12)
	assert.InDelta(t, 59., pd.Temp, 1e-12)
	assert.InDelta(t, 0.0023769, pd.Rho, 1e-15)
}
