package paradrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowLabels(rows []SurfaceRow) []string {
	ll := make([]string, len(rows))
	for i, r := range rows {
		ll[i] = r.Label
	}
	return ll
}

func TestSortByWettedAreaOrdersDescending(t *testing.T) {
	pd := newReLManager(
		testWingGeom("A", "Alpha", 5.),
		testWingGeom("B", "Bravo", 10.),
		testWingGeom("C", "Charlie", 3.))
	pd.SortBy = SortByWettedArea
	require.NoError(t, pd.ComputeAll())
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, rowLabels(pd.Rows()))
}

func TestSortByDragShareOrdersDescending(t *testing.T) {
	pd := newReLManager(
		testWingGeom("A", "Alpha", 5.),
		testWingGeom("B", "Bravo", 10.),
		testWingGeom("C", "Charlie", 3.))
	pd.SortBy = SortByPercTotalDrag
	require.NoError(t, pd.ComputeAll())
	// identical settings make drag share follow wetted area
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, rowLabels(pd.Rows()))
}

func TestSortNoneKeepsModelOrder(t *testing.T) {
	pd := newReLManager(
		testWingGeom("A", "Alpha", 5.),
		testWingGeom("B", "Bravo", 10.),
		testWingGeom("C", "Charlie", 3.))
	require.NoError(t, pd.ComputeAll())
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, rowLabels(pd.Rows()))
}

func TestSortKeepsReflectionsBehindMaster(t *testing.T) {
	big := testWingGeom("BIG", "Big", 8.)
	small := testWingGeom("SML", "Small", 3.)
	small.Surfs = append(small.Surfs, small.Surfs[0])
	small.Surfs[1].WetArea = 3.

	pd := newReLManager(small, big)
	pd.SortBy = SortByWettedArea
	require.NoError(t, pd.ComputeAll())

	// Small's master folds its mirror (6 total) and still trails Big, with
	// the mirror row held behind it
	assert.Equal(t, []string{"Big", "Small", "Small_1"}, rowLabels(pd.Rows()))
}

func TestSortPullsGroupedDescendants(t *testing.T) {
	parent := testWingGeom("PAR", "Pod", 2.)
	child := testWingGeom("CHI", "Fin", 3.)
	child.ParentID = "PAR"
	child.GroupedAncestorGen = 1
	solo := testWingGeom("SOL", "Solo", 4.)

	pd := newReLManager(parent, child, solo)
	pd.SortBy = SortByWettedArea
	require.NoError(t, pd.ComputeAll())

	// Pod absorbs Fin (5 > 4) and drags it along ahead of Solo
	assert.Equal(t, []string{"Pod", "Fin", "Solo"}, rowLabels(pd.Rows()))
}
