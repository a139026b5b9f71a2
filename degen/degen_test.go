package degen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Geoms: []*GeomDef{
			{
				ID: "WING", Name: "MainWing", Q: 1., FFUser: -1., TeTwRatio: 1., TawTwRatio: 1.,
				Surfs: []SurfDef{
					{Shape: WingSurf, WetArea: 20.},
					{Shape: WingSurf, WetArea: 20.},
				},
				SubSurfs: []SubSurfDef{{ID: "SS", Name: "Aileron", WetAreas: []float64{2., 2.}}},
			},
			{
				ID: "POD", Name: "Pod", ParentID: "WING", Q: 1., FFUser: -1., TeTwRatio: 1., TawTwRatio: 1.,
				Surfs: []SurfDef{{Shape: BodySurf, WetArea: 8.}},
			},
			{
				ID: "PROP", Name: "Prop", Q: 1., FFUser: -1., TeTwRatio: 1., TawTwRatio: 1.,
				Surfs: []SurfDef{{Shape: DiskSurf}},
			},
		},
	}
}

func TestGeomSetDefaultsToAll(t *testing.T) {
	m := testModel()
	assert.Equal(t, []string{"WING", "POD", "PROP"}, m.GeomSet(0))
	m.Sets = [][]string{{"POD"}}
	assert.Equal(t, []string{"POD"}, m.GeomSet(0))
	assert.Equal(t, []string{"WING", "POD", "PROP"}, m.GeomSet(3))
}

func TestFindGeomStaleID(t *testing.T) {
	m := testModel()
	g, ok := m.FindGeom("WING")
	require.True(t, ok)
	assert.Equal(t, "MainWing", g.Name)
	_, ok = m.FindGeom("GONE")
	assert.False(t, ok)
}

func TestAncestorID(t *testing.T) {
	m := testModel()
	assert.Equal(t, "POD", m.AncestorID("POD", 0))
	assert.Equal(t, "WING", m.AncestorID("POD", 1))
	assert.Equal(t, "", m.AncestorID("POD", 2), "walk past the root reports empty")
	assert.Equal(t, "", m.AncestorID("GONE", 1))
	assert.Equal(t, "WING", m.AncestorID("WING", -1))
}

func TestCreateDegenGeomsKeepsOrderAndDisks(t *testing.T) {
	m := testModel()
	dd := m.CreateDegenGeoms(0)
	require.Len(t, dd, 4)
	assert.Equal(t, WingSurf, dd[0].Shape)
	assert.Equal(t, WingSurf, dd[1].Shape)
	assert.Equal(t, BodySurf, dd[2].Shape)
	assert.Equal(t, DiskSurf, dd[3].Shape)
}

func TestMeshWetAreasTags(t *testing.T) {
	m := testModel()
	ta := m.MeshWetAreas(0)
	assert.Equal(t, 20., ta["MainWing0"])
	assert.Equal(t, 20., ta["MainWing1"])
	assert.Equal(t, 2., ta["MainWing1,Aileron"])
	assert.Equal(t, 8., ta["Pod0"])
	_, ok := ta["Prop1"]
	assert.False(t, ok)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "model.json")
	m := testModel()
	m.Geoms[0].Q = 0. // exercise defaulting on reload
	m.Geoms[0].FFUser = 0.
	require.NoError(t, m.Save(fp))

	m2, err := LoadModel(fp)
	require.NoError(t, err)
	require.Len(t, m2.Geoms, 3)
	assert.Equal(t, 1., m2.Geoms[0].Q)
	assert.Equal(t, -1., m2.Geoms[0].FFUser)
	assert.Equal(t, 1., m2.Geoms[0].TeTwRatio)
	assert.Equal(t, "MainWing", m2.Geoms[0].Name)
	assert.Equal(t, 2, m2.Geoms[0].NumSurfs())

	_, err = LoadModel(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
