// Package paradrag computes a parasite drag buildup over the active surfaces
// of a vehicle model. Wetted areas and reference lengths reduce from
// degenerate geometry, skin friction comes from selectable laminar and
// turbulent flat plate laws blended by a percent-laminar fraction, empirical
// form factors and interference factors scale each line to an equivalent flat
// plate area f = Swet*Q*Cf*FF, and an excrescence ledger adds the
// miscellaneous drag the geometry never shows. Totals roll up as CD = f/Sref
// against the reference area.
package paradrag

import (
	"fmt"
	"math"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/units"
)

// geoVecs are the working columns of the buildup, one entry per table row.
// Inputs load from the geometry records, outputs fill stage by stage. A -1
// marks a value not computed.
type geoVecs struct {
	geomID, subsurfID, label []string

	percLam, ffIn, q, roughness, teTw, tawTw []float64
	surfNum, shapeType, ffType, ancestorGen  []int
	expandedList                             []bool

	swet, lref, re, cf, fineRat, ffOut, f, cd, percTotalCD []float64
	ffName                                                 []string
}

// Manager drives the buildup against a vehicle model and an atmosphere.
type Manager struct {
	veh degen.Vehicle
	atm atmos.Model

	// reference quantities
	SortBy    int
	RefFlag   int
	RefGeomID string
	Sref      float64

	// friction law selections
	LamCfEqnType  int
	TurbCfEqnType int
	LamCfEqnName  string
	TurbCfEqnName string

	// unit selections
	AltLengthUnit int
	LengthUnit    int
	TempUnit      int
	PresUnit      int
	VinfUnitType  int

	// freestream condition
	FreestreamType    int
	Vinf              float64
	Hinf              float64
	DeltaT            float64
	Temp              float64
	Pres              float64
	Rho               float64
	DynaVisc          float64
	KineVisc          float64
	SpecificHeatRatio float64
	Mach              float64
	ReqL              float64

	SetChoice int
	FileName  string

	// excrescence working state
	ExcresValue        float64
	ExcresType         int
	ExcresName         string
	CurrentExcresIndex int

	// presentation state refreshed by Update
	Active         map[string]bool
	HinfUpperLimit float64
	TempLowerLimit float64

	// freestream derived state
	soundSpeed   float64
	densityRatio float64

	// geometry working state
	geomIDs   []string
	degens    []degen.DegenGeom
	meshAreas degen.TagAreas
	rowSize   int

	geo geoVecs

	sweep25, sweep50 float64
	rePowerDivisor   float64

	geomFTotal, geomPercTotal     float64
	excresFTotal, excresPercTotal float64

	rows   []SurfaceRow
	excres []ExcrescenceRow

	solveNotes []string
}

// New builds a manager with standard-day imperial defaults over the given
// vehicle and atmosphere.
func New(veh degen.Vehicle, atm atmos.Model) *Manager {
	return &Manager{
		veh: veh,
		atm: atm,

		SortBy:        SortNone,
		RefFlag:       RefManual,
		Sref:          defSref,
		LamCfEqnType:  CfLamBlasius,
		TurbCfEqnType: CfTurbPowerLawBlasius,
		LamCfEqnName:  LamCfEqnName(CfLamBlasius),
		TurbCfEqnName: TurbCfEqnName(CfTurbPowerLawBlasius),

		AltLengthUnit: units.Imperial,
		LengthUnit:    units.LenFT,
		TempUnit:      units.TempF,
		PresUnit:      units.PresPSF,
		VinfUnitType:  units.VelFtS,

		FreestreamType:    atmos.TypeUSStandard1976,
		Vinf:              defVinf,
		Hinf:              defHinf,
		Temp:              defTemp,
		Pres:              defPres,
		Rho:               defRho,
		SpecificHeatRatio: defGamma,

		FileName:           defFileName,
		CurrentExcresIndex: -1,
		Active:             make(map[string]bool),
	}
}

// Renew drops all computed and user-entered table state, keeping the
// reference condition.
func (m *Manager) Renew() {
	m.rows = nil
	m.excres = nil
	m.degens = nil
	m.meshAreas = nil
	m.geomIDs = nil
	m.rowSize = 0
	m.clearInputVecs()
	m.clearOutputVecs()

	m.FileName = defFileName
	m.LamCfEqnName = LamCfEqnName(CfLamBlasius)
	m.TurbCfEqnName = TurbCfEqnName(CfTurbPowerLawBlasius)
	m.RefGeomID = ""
	m.ExcresType = ExcresCount
	m.ExcresValue = 0
	m.CurrentExcresIndex = -1
	m.solveNotes = nil
}

func (m *Manager) clearInputVecs() {
	m.geo.geomID = nil
	m.geo.subsurfID = nil
	m.geo.label = nil
	m.geo.percLam = nil
	m.geo.ffIn = nil
	m.geo.q = nil
	m.geo.roughness = nil
	m.geo.teTw = nil
	m.geo.tawTw = nil
	m.geo.surfNum = nil
	m.geo.shapeType = nil
	m.geo.expandedList = nil
}

func (m *Manager) clearOutputVecs() {
	m.geo.ancestorGen = nil
	m.geo.swet = nil
	m.geo.lref = nil
	m.geo.re = nil
	m.geo.cf = nil
	m.geo.fineRat = nil
	m.geo.ffType = nil
	m.geo.ffName = nil
	m.geo.ffOut = nil
	m.geo.f = nil
	m.geo.cd = nil
	m.geo.percTotalCD = nil
}

// setActiveGeomVec filters the chosen set down to drag carrying geometries.
// Geometries without surfaces and those leading with an actuator disk drop
// out.
func (m *Manager) setActiveGeomVec() {
	m.geomIDs = m.activeGeomsFor(m.SetChoice)
}

func (m *Manager) activeGeomsFor(set int) []string {
	var ids []string
	for _, id := range m.veh.GeomSet(set) {
		g, ok := m.veh.FindGeom(id)
		if !ok || g.NumSurfs() == 0 {
			continue
		}
		if g.Surfs[0].Shape == degen.DiskSurf {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// sameGeomSet reports whether the active set still matches the rows last
// built.
func (m *Manager) sameGeomSet() bool {
	ids := m.activeGeomsFor(m.SetChoice)
	if len(ids) != len(m.geomIDs) {
		return false
	}
	for i := range ids {
		if ids[i] != m.geomIDs[i] {
			return false
		}
	}
	return m.rowSizeFor(ids) == m.rowSize
}

func (m *Manager) rowSizeFor(ids []string) int {
	n := 0
	for _, id := range ids {
		g, ok := m.veh.FindGeom(id)
		if !ok {
			continue
		}
		ns := 0
		for _, s := range g.Surfs {
			if s.Shape != degen.DiskSurf {
				ns++
			}
		}
		n += ns + len(g.SubSurfs)*ns
	}
	return n
}

// RefreshDegenGeom resets geometry working state when the active set
// changed.
func (m *Manager) RefreshDegenGeom() {
	if !m.sameGeomSet() {
		m.degens = nil
		m.clearInputVecs()
		m.clearOutputVecs()
		m.setActiveGeomVec()
	}
}

// SetupFullCalculation regenerates degenerate geometry and meshed wetted
// areas for the active set.
func (m *Manager) SetupFullCalculation() {
	m.clearInputVecs()
	m.clearOutputVecs()
	m.degens = m.veh.CreateDegenGeoms(m.SetChoice)
	m.meshAreas = m.veh.MeshWetAreas(m.SetChoice)
}

// CalcRowSize recounts table rows: one per surface instance plus one per
// sub-surface per instance.
func (m *Manager) CalcRowSize() int {
	m.rowSize = m.rowSizeFor(m.geomIDs)
	return m.rowSize
}

// ComputeAll runs the whole buildup: freestream refresh, geometry
// regeneration, the calculation chain, and the configured sort.
func (m *Manager) ComputeAll() error {
	if err := m.Update(); err != nil {
		return fmt.Errorf(" paradrag.ComputeAll %v", err)
	}
	m.RefreshDegenGeom()
	m.SetupFullCalculation()
	m.CalcRowSize()
	m.CalculateAll()
	m.SortRows()
	return nil
}

// Rows exposes the assembled buildup table in its current order.
func (m *Manager) Rows() []SurfaceRow { return m.rows }

// Excrescences exposes the excrescence ledger.
func (m *Manager) Excrescences() []ExcrescenceRow { return m.excres }

// SolveWarnings lists friction law iterations that hit the solver cap in the
// last calculation pass.
func (m *Manager) SolveWarnings() []string { return m.solveNotes }

// GeometryCD sums the positive drag coefficients of the component table.
func (m *Manager) GeometryCD() float64 {
	sum := 0.
	for _, cd := range m.geo.cd {
		if cd > 0 {
			sum += cd
		}
	}
	return sum
}

// SubTotalCD is the geometry total plus all excrescences except margins.
func (m *Manager) SubTotalCD() float64 {
	return m.GeometryCD() + m.SubTotalExcresCD()
}

// TotalCD is the grand total. A margin excrescence widens the total past the
// subtotal; otherwise the two agree.
func (m *Manager) TotalCD() float64 {
	for i := range m.excres {
		if m.excres[i].Type == ExcresMargin {
			return m.GeometryCD() + m.TotalExcresCD()
		}
	}
	return m.SubTotalCD()
}

// SubTotalExcresCD sums non-margin excrescence amounts.
func (m *Manager) SubTotalExcresCD() float64 {
	sum := 0.
	for i := range m.excres {
		if m.excres[i].Type != ExcresMargin {
			sum += m.excres[i].Amount
		}
	}
	return sum
}

// TotalExcresCD sums all excrescence amounts.
func (m *Manager) TotalExcresCD() float64 {
	sum := 0.
	for i := range m.excres {
		sum += m.excres[i].Amount
	}
	return sum
}

// GeomFTotal reports the geometry flat plate area total from the last pass.
func (m *Manager) GeomFTotal() float64 { return m.geomFTotal }

// GeomPercTotal reports the geometry share of total drag from the last pass.
func (m *Manager) GeomPercTotal() float64 { return m.geomPercTotal }

// ExcresFTotal reports the excrescence flat plate area total.
func (m *Manager) ExcresFTotal() float64 { return m.excresFTotal }

// ExcresPercTotal reports the excrescence share of total drag.
func (m *Manager) ExcresPercTotal() float64 { return m.excresPercTotal }

// FTotal is the flat plate area grand total.
func (m *Manager) FTotal() float64 { return m.geomFTotal + m.excresFTotal }

// PercTotal is the drag share grand total.
func (m *Manager) PercTotal() float64 { return m.geomPercTotal + m.excresPercTotal }

// RePowerDivisor is the order of ten of the largest Reynolds number, kept for
// compact table display.
func (m *Manager) RePowerDivisor() float64 { return m.rePowerDivisor }

// LrefSigFig picks the reference length display precision from its largest
// magnitude.
func (m *Manager) LrefSigFig() int {
	lrefmag := 1.
	if len(m.geo.lref) > 0 {
		lrefmag = orderOfMag(maxOf(m.geo.lref))
	}
	switch {
	case lrefmag > 1:
		return 1
	case lrefmag == 1:
		return 2
	default:
		return 3
	}
}

func orderOfMag(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Floor(math.Log10(v))
}

func maxOf(vv []float64) float64 {
	mx := math.Inf(-1)
	for _, v := range vv {
		if v > mx {
			mx = v
		}
	}
	return mx
}
