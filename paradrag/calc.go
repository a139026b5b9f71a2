package paradrag

import "math"

// CalculateAll rebuilds the buildup table from the current degenerate
// geometry and reference condition: reload the input columns, run the
// calculation chain in dependency order, refresh the excrescence ledger,
// and assemble the row structs.
func (m *Manager) CalculateAll() {
	m.solveNotes = nil
	m.clearOutputVecs()
	m.clearInputVecs()
	m.loadRowInputs()

	m.calcSwet()
	m.calcLref()
	m.calcRe()
	m.calcCf()
	m.calcFineRat()
	m.calcFF()
	m.overwriteAncestorProperties()
	m.calcF()
	m.calcCD()

	m.UpdateExcres()
	m.updatePercentageCD()

	m.assembleRows()
}

// updatePercentageCD refreshes every row's share of total drag and the
// geometry and excrescence roll ups.
func (m *Manager) updatePercentageCD() {
	totalCD := m.TotalCD()
	ftotal, percTotal := 0., 0.
	m.geo.percTotalCD = nil
	for i := range m.geo.cd {
		if len(m.degens) == 0 || math.IsNaN(m.geo.f[i]) {
			m.geo.percTotalCD = append(m.geo.percTotalCD, 0)
			continue
		}
		m.geo.percTotalCD = append(m.geo.percTotalCD, m.geo.cd[i]/totalCD)
		percTotal += m.geo.cd[i] / totalCD
		ftotal += m.geo.f[i]
	}
	m.geomFTotal, m.geomPercTotal = ftotal, percTotal

	ftotal, percTotal = 0, 0
	for i := range m.excres {
		if len(m.degens) == 0 {
			m.excres[i].PercTotalCD = 0
			continue
		}
		m.excres[i].PercTotalCD = m.excres[i].Amount / totalCD
		percTotal += m.excres[i].Amount / totalCD
		ftotal += m.excres[i].F
	}
	m.excresFTotal, m.excresPercTotal = ftotal, percTotal
}

// assembleRows copies the working columns into row structs. The tabulated
// form factor shows the user's value only under a manual equation choice,
// even though any user value participates in f.
func (m *Manager) assembleRows() {
	m.rows = make([]SurfaceRow, m.rowSize)
	for i := 0; i < m.rowSize; i++ {
		r := defaultRow
		r.GroupedAncestorGen = m.geo.ancestorGen[i]
		r.GeomID = m.geo.geomID[i]
		r.SubSurfID = m.geo.subsurfID[i]
		r.Label = m.geo.label[i]
		r.SurfNum = m.geo.surfNum[i]
		r.GeomShapeType = m.geo.shapeType[i]
		r.ExpandedList = m.geo.expandedList[i]
		r.Swet = m.geo.swet[i]
		r.Lref = m.geo.lref[i]
		r.Re = m.geo.re[i]
		r.PercLam = m.geo.percLam[i]
		r.Cf = m.geo.cf[i]
		r.FineRat = m.geo.fineRat[i]
		r.FFEqnChoice = m.geo.ffType[i]
		r.FFEqnName = m.geo.ffName[i]
		if m.geo.ffType[i] == FFWingManual || m.geo.ffType[i] == FFBodyManual {
			r.FF = m.geo.ffIn[i]
		} else {
			r.FF = m.geo.ffOut[i]
		}
		r.Roughness = m.geo.roughness[i]
		r.TeTwRatio = m.geo.teTw[i]
		r.TawTwRatio = m.geo.tawTw[i]
		r.Q = m.geo.q[i]
		r.F = m.geo.f[i]
		r.CD = m.geo.cd[i]
		r.PercTotalCD = m.geo.percTotalCD[i]
		m.rows[i] = r
	}
}
