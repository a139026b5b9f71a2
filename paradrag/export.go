package paradrag

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmio"
	"github.com/sagpant/OpenVSP/units"
)

// Results bundles one computed buildup for reporting and archival: the flow
// condition with its display labels, the component columns in load order,
// the excrescence ledger, and the roll up totals.
type Results struct {
	AltLabel, VinfLabel, SrefLabel string
	TempLabel, PresLabel, RhoLabel string
	SwetLabel, LrefLabel, FLabel   string
	LamCfEqnName, TurbCfEqnName    string
	Mach, Hinf, Vinf, Sref         float64
	Temp, Pres, Rho                float64

	NumComp         int
	CompID          []string
	CompLabel       []string
	CompSwet        []float64
	CompLref        []float64
	CompRe          []float64
	CompPercLam     []float64
	CompCf          []float64
	CompFineRat     []float64
	CompFFEqn       []int
	CompFFEqnName   []string
	CompFFIn        []float64
	CompFFOut       []float64
	CompRoughness   []float64
	CompTeTwRatio   []float64
	CompTawTwRatio  []float64
	CompQ           []float64
	CompF           []float64
	CompCD          []float64
	CompPercTotalCD []float64
	CompSurfNum     []int

	NumExcres         int
	ExcresLabel       []string
	ExcresType        []string
	ExcresInput       []float64
	ExcresAmount      []float64
	ExcresPercTotalCD []float64

	GeomFTotal, GeomCDTotal, GeomPercTotal       float64
	ExcresFTotal, ExcresCDTotal, ExcresPercTotal float64
	TotalF, TotalCD, TotalPerc                   float64
}

// BuildResults snapshots the last computed buildup.
func (m *Manager) BuildResults() *Results {
	r := &Results{
		LamCfEqnName:  m.LamCfEqnName,
		TurbCfEqnName: m.TurbCfEqnName,
		Mach:          m.Mach,
		Hinf:          m.Hinf,
		Vinf:          m.Vinf,
		Sref:          m.Sref,
		Temp:          m.Temp,
		Pres:          m.Pres,
		Rho:           m.Rho,

		NumComp:         m.rowSize,
		CompID:          append([]string(nil), m.geo.geomID...),
		CompLabel:       append([]string(nil), m.geo.label...),
		CompSwet:        append([]float64(nil), m.geo.swet...),
		CompLref:        append([]float64(nil), m.geo.lref...),
		CompRe:          append([]float64(nil), m.geo.re...),
		CompPercLam:     append([]float64(nil), m.geo.percLam...),
		CompCf:          append([]float64(nil), m.geo.cf...),
		CompFineRat:     append([]float64(nil), m.geo.fineRat...),
		CompFFEqn:       append([]int(nil), m.geo.ffType...),
		CompFFEqnName:   append([]string(nil), m.geo.ffName...),
		CompFFIn:        append([]float64(nil), m.geo.ffIn...),
		CompFFOut:       append([]float64(nil), m.geo.ffOut...),
		CompRoughness:   append([]float64(nil), m.geo.roughness...),
		CompTeTwRatio:   append([]float64(nil), m.geo.teTw...),
		CompTawTwRatio:  append([]float64(nil), m.geo.tawTw...),
		CompQ:           append([]float64(nil), m.geo.q...),
		CompF:           append([]float64(nil), m.geo.f...),
		CompCD:          append([]float64(nil), m.geo.cd...),
		CompPercTotalCD: append([]float64(nil), m.geo.percTotalCD...),
		CompSurfNum:     append([]int(nil), m.geo.surfNum...),

		NumExcres: len(m.excres),

		GeomFTotal:      m.GeomFTotal(),
		GeomCDTotal:     m.GeometryCD(),
		GeomPercTotal:   m.GeomPercTotal(),
		ExcresFTotal:    m.ExcresFTotal(),
		ExcresCDTotal:   m.TotalExcresCD(),
		ExcresPercTotal: m.ExcresPercTotal(),
		TotalF:          m.FTotal(),
		TotalCD:         m.TotalCD(),
		TotalPerc:       m.PercTotal(),
	}
	for i := range m.excres {
		r.ExcresLabel = append(r.ExcresLabel, m.excres[i].Label)
		r.ExcresType = append(r.ExcresType, m.excres[i].TypeString)
		r.ExcresInput = append(r.ExcresInput, m.excres[i].Input)
		r.ExcresAmount = append(r.ExcresAmount, m.excres[i].Amount)
		r.ExcresPercTotalCD = append(r.ExcresPercTotalCD, m.excres[i].PercTotalCD)
	}
	m.exportLabels(r)
	return r
}

func (m *Manager) exportLabels(r *Results) {
	if m.AltLengthUnit == units.Imperial {
		r.AltLabel = "Altitude (ft)"
		r.RhoLabel = "Density (slug/ft^3)"
	} else {
		r.AltLabel = "Altitude (m)"
		r.RhoLabel = "Density (kg/m^3)"
	}
	r.LrefLabel = fmt.Sprintf("L_ref (%s)", units.LengthLabel(m.LengthUnit))
	r.SrefLabel = fmt.Sprintf("S_ref (%s)", units.AreaLabel(m.LengthUnit))
	r.SwetLabel = fmt.Sprintf("S_wet (%s)", units.AreaLabel(m.LengthUnit))
	r.FLabel = fmt.Sprintf("f (%s)", units.AreaLabel(m.LengthUnit))
	r.VinfLabel = fmt.Sprintf("Vinf (%s)", units.VelocityLabel(m.VinfUnitType))
	r.TempLabel = fmt.Sprintf("Temp (%s)", units.TemperatureLabel(m.TempUnit))
	r.PresLabel = fmt.Sprintf("Pressure (%s)", units.PressureLabel(m.PresUnit))
}

// ExportToCSV writes the buildup report: flow condition, the component table
// in its current sort order, the excrescence ledger, and totals. An empty
// path falls back to the configured file name.
func (m *Manager) ExportToCSV(fp string) error {
	if fp == "" {
		fp = m.FileName
	} else {
		m.FileName = fp
	}
	m.UpdateExcres()
	r := m.BuildResults()

	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("Parasite Drag Buildup"); err != nil {
		return fmt.Errorf(" paradrag.ExportToCSV %v", err)
	}
	csvw.WriteLine("Lam Cf Eqn", r.LamCfEqnName)
	csvw.WriteLine("Turb Cf Eqn", r.TurbCfEqnName)
	csvw.WriteLine(r.AltLabel, r.Hinf)
	csvw.WriteLine(r.VinfLabel, r.Vinf)
	csvw.WriteLine("Mach", r.Mach)
	csvw.WriteLine(r.TempLabel, r.Temp)
	csvw.WriteLine(r.PresLabel, r.Pres)
	csvw.WriteLine(r.RhoLabel, r.Rho)
	csvw.WriteLine(r.SrefLabel, r.Sref)

	if err := csvw.WriteHead("Component," + r.SwetLabel + "," + r.LrefLabel +
		",Re,%Lam,Cf,t/c or d/l,FF Equation,FF,Q," + r.FLabel + ",CD,%Total"); err != nil {
		return fmt.Errorf(" paradrag.ExportToCSV %v", err)
	}
	for i := range m.rows {
		row := &m.rows[i]
		csvw.WriteLine(row.Label, row.Swet, row.Lref, row.Re, row.PercLam, row.Cf,
			row.FineRat, row.FFEqnName, row.FF, row.Q, row.F, row.CD, row.PercTotalCD)
	}

	if err := csvw.WriteHead("Excrescence,Type,Input,Amount,%Total"); err != nil {
		return fmt.Errorf(" paradrag.ExportToCSV %v", err)
	}
	for i := range m.excres {
		e := &m.excres[i]
		csvw.WriteLine(e.Label, e.TypeString, e.Input, e.Amount, e.PercTotalCD)
	}

	if err := csvw.WriteHead("Totals,f,CD,%Total"); err != nil {
		return fmt.Errorf(" paradrag.ExportToCSV %v", err)
	}
	csvw.WriteLine("Geometry", r.GeomFTotal, r.GeomCDTotal, r.GeomPercTotal)
	csvw.WriteLine("Excrescence", r.ExcresFTotal, r.ExcresCDTotal, r.ExcresPercTotal)
	csvw.WriteLine("Total", r.TotalF, r.TotalCD, r.TotalPerc)
	return nil
}

// SaveGob archives a results bundle.
func (r *Results) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Results.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(r); err != nil {
		return fmt.Errorf(" Results.Save %v", err)
	}
	f.Close()
	return nil
}

// LoadGobResults reloads an archived results bundle.
func LoadGobResults(fp string) (*Results, error) {
	var r Results
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&r)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &r, nil
}
