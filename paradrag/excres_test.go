package paradrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
)

func TestAddExcrescenceAmounts(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})

	require.NoError(t, pd.AddExcrescence("rivets", ExcresCount, 50.))
	e := pd.Excrescences()[0]
	assert.Equal(t, "rivets", e.Label)
	assert.Equal(t, "Count (10000*CD)", e.TypeString)
	assert.InDelta(t, 0.005, e.Amount, 1e-12) // 50 counts
	assert.InDelta(t, 0.5, e.F, 1e-12)        // times default Sref 100

	require.NoError(t, pd.AddExcrescence("antenna", ExcresCD, 0.01))
	assert.InDelta(t, 0.01, pd.Excrescences()[1].Amount, 1e-12)
	assert.Equal(t, 1, pd.CurrentExcresIndex)
}

func TestAddExcrescenceGeneratedLabels(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	require.NoError(t, pd.AddExcrescence("", ExcresCD, 0.001))
	require.NoError(t, pd.AddExcrescence("", ExcresCount, 5.))
	assert.Equal(t, "EXCRES_0", pd.Excrescences()[0].Label)
	assert.Equal(t, "EXCRES_1", pd.Excrescences()[1].Label)
}

func TestExcrescenceInputClamped(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	require.NoError(t, pd.AddExcrescence("big", ExcresCD, 0.5))
	assert.InDelta(t, 0.2, pd.Excrescences()[0].Input, 1e-12)
	require.NoError(t, pd.AddExcrescence("many", ExcresCount, 5000.))
	assert.InDelta(t, 2000., pd.Excrescences()[1].Input, 1e-12)
	require.NoError(t, pd.AddExcrescence("neg", ExcresDragArea, -1.))
	assert.Zero(t, pd.Excrescences()[2].Input)
}

func TestSecondMarginRefused(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	require.NoError(t, pd.AddExcrescence("margin", ExcresMargin, 10.))
	assert.Error(t, pd.AddExcrescence("again", ExcresMargin, 5.))
	assert.Len(t, pd.Excrescences(), 1)
}

func TestDeleteAndSelectExcrescence(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	require.NoError(t, pd.AddExcrescence("a", ExcresCD, 0.001))
	require.NoError(t, pd.AddExcrescence("b", ExcresCount, 10.))
	require.NoError(t, pd.AddExcrescence("c", ExcresCD, 0.002))

	require.NoError(t, pd.DeleteExcrescence(1))
	require.Len(t, pd.Excrescences(), 2)
	assert.Equal(t, "a", pd.Excrescences()[0].Label)
	assert.Equal(t, "c", pd.Excrescences()[1].Label)
	assert.Equal(t, 0, pd.CurrentExcresIndex)
	assert.Equal(t, ExcresCD, pd.ExcresType)
	assert.InDelta(t, 0.001, pd.ExcresValue, 1e-12)

	require.NoError(t, pd.SelectExcrescence(1))
	assert.InDelta(t, 0.002, pd.ExcresValue, 1e-12)

	assert.Error(t, pd.DeleteExcrescence(5))
	assert.Error(t, pd.SelectExcrescence(-1))

	require.NoError(t, pd.DeleteExcrescence(0))
	require.NoError(t, pd.DeleteExcrescence(0))
	assert.Equal(t, -1, pd.CurrentExcresIndex)
}

func TestSetExcresLabel(t *testing.T) {
	pd := New(&degen.Model{}, &atmos.Fixed{})
	require.NoError(t, pd.AddExcrescence("", ExcresCD, 0.001))
	pd.SetExcresLabel("renamed")
	assert.Equal(t, "renamed", pd.Excrescences()[0].Label)
}

func TestPercentGeomExcrescence(t *testing.T) {
	pd := newReLManager(testWingGeom("WING", "Wing", 10.))
	require.NoError(t, pd.AddExcrescence("misc", ExcresPercentGeom, 10.))
	require.NoError(t, pd.ComputeAll())

	geom := pd.GeometryCD()
	require.Greater(t, geom, 0.)
	assert.InDelta(t, geom/10., pd.Excrescences()[0].Amount, 1e-12)
	assert.InDelta(t, geom*1.1, pd.TotalCD(), 1e-12)
}

func TestDragAreaExcrescence(t *testing.T) {
	pd := newReLManager(testWingGeom("WING", "Wing", 10.))
	require.NoError(t, pd.AddExcrescence("gear", ExcresDragArea, 0.5))
	require.NoError(t, pd.ComputeAll())
	assert.InDelta(t, 0.5/100., pd.Excrescences()[0].Amount, 1e-12) // D/q over Sref
}

func TestMarginExcrescence(t *testing.T) {
	pd := newReLManager(testWingGeom("WING", "Wing", 10.))
	require.NoError(t, pd.AddExcrescence("margin", ExcresMargin, 25.))
	require.NoError(t, pd.ComputeAll())

	sub := pd.SubTotalCD()
	require.Greater(t, sub, 0.)
	margin := pd.Excrescences()[0].Amount
	assert.InDelta(t, sub/0.75-sub, margin, 1e-12)
	// the margin ends up as its requested share of the grand total
	assert.InDelta(t, 0.25, margin/pd.TotalCD(), 1e-9)
	assert.InDelta(t, sub+margin, pd.TotalCD(), 1e-12)
}

func TestFullMarginGuard(t *testing.T) {
	pd := newReLManager(testWingGeom("WING", "Wing", 10.))
	require.NoError(t, pd.AddExcrescence("margin", ExcresMargin, 100.))
	require.NoError(t, pd.ComputeAll())
	assert.Zero(t, pd.Excrescences()[0].Amount)
}

func TestExcresTypeStrings(t *testing.T) {
	assert.Equal(t, "Count (10000*CD)", ExcresTypeString(ExcresCount))
	assert.Equal(t, "CD", ExcresTypeString(ExcresCD))
	assert.Equal(t, "% of Cd_Geom", ExcresTypeString(ExcresPercentGeom))
	assert.Equal(t, "Margin", ExcresTypeString(ExcresMargin))
	assert.Equal(t, "Drag Area (D/q)", ExcresTypeString(ExcresDragArea))
	assert.Equal(t, "", ExcresTypeString(99))
}
