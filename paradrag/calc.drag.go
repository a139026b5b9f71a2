package paradrag

import (
	"math"

	"github.com/sagpant/OpenVSP/degen"
)

// calcFF fills the form factor column from the per-row equation choice.
// Wing rows first reduce their average sweeps; the Jenkinson tail choice
// also pins the row's interference factor. Body rows feed the body forms
// with both slenderness expressions.
func (m *Manager) calcFF() {
	iSurf := 0
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.ffOut = append(m.geo.ffOut, -1)
			m.geo.ffName = append(m.geo.ffName, "")
			continue
		}
		if m.geo.subsurfID[i] != "" {
			m.geo.ffOut = append(m.geo.ffOut, last(m.geo.ffOut))
			m.geo.ffName = append(m.geo.ffName, m.geo.ffName[len(m.geo.ffName)-1])
			continue
		}
		d, ok := m.nextSurfDegen(&iSurf)
		if !ok {
			m.geo.ffOut = append(m.geo.ffOut, -1)
			m.geo.ffName = append(m.geo.ffName, "")
			continue
		}
		if d.Shape == degen.WingSurf {
			if len(d.Sticks) > 0 {
				m.calcAvgSweep(&d.Sticks[0])
			}
			m.geo.ffOut = append(m.geo.ffOut,
				CalcFFWing(m.geo.fineRat[i], m.geo.ffType[i], m.geo.percLam[i], m.sweep25, m.sweep50, m.Mach))
			if m.geo.ffType[i] == FFWingJenkinsonTail {
				m.geo.q[i] = 1.2
			}
			m.geo.ffName = append(m.geo.ffName, FFWingEqnName(m.geo.ffType[i]))
		} else {
			longF := math.Pow(m.geo.fineRat[i], -1)
			maxArea := stickMax(d, func(s *degen.Stick) []float64 { return s.AreaTop })
			fr := m.geo.lref[i] / math.Sqrt(maxArea)
			m.geo.ffOut = append(m.geo.ffOut,
				CalcFFBody(longF, fr, m.geo.ffType[i], m.geo.lref[i], maxArea, m.Mach))
			m.geo.ffName = append(m.geo.ffName, FFBodyEqnName(m.geo.ffType[i]))
		}
	}
}

// overwriteAncestorProperties makes grouped rows report their chosen
// ancestor's flow and form values, so a merged group reads as one surface.
func (m *Manager) overwriteAncestorProperties() {
	for i := 0; i < m.rowSize; i++ {
		if m.geo.ancestorGen[i] <= 0 {
			continue
		}
		anc := m.veh.AncestorID(m.geo.geomID[i], m.geo.ancestorGen[i])
		for j := 0; j < m.rowSize; j++ {
			if m.geo.geomID[j] == anc && m.geo.surfNum[j] == 0 {
				m.geo.lref[i] = m.geo.lref[j]
				m.geo.re[i] = m.geo.re[j]
				m.geo.fineRat[i] = m.geo.fineRat[j]
				m.geo.ffOut[i] = m.geo.ffOut[j]
				m.geo.ffType[i] = m.geo.ffType[j]
				m.geo.percLam[i] = m.geo.percLam[j]
				m.geo.q[i] = m.geo.q[j]
				m.geo.cf[i] = m.geo.cf[j]
			}
		}
	}
}

// calcF forms the equivalent flat plate area f = Swet*Q*Cf*FF per row. Rows
// whose area was folded elsewhere carry zero so the table still sums
// straight down.
func (m *Manager) calcF() {
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.f = append(m.geo.f, -1)
			continue
		}
		if !m.isNotZeroLineItem(i) {
			m.geo.f = append(m.geo.f, 0)
			continue
		}
		q := m.geo.q[i]
		if q == -1 {
			q = 1
		}
		ff := m.geo.ffOut[i]
		if m.geo.ffIn[i] != -1 {
			ff = m.geo.ffIn[i]
		}
		m.geo.f = append(m.geo.f, m.geo.swet[i]*q*m.geo.cf[i]*ff)
	}
}

// calcCD scales each flat plate area by the reference area.
func (m *Manager) calcCD() {
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.cd = append(m.geo.cd, -1)
			continue
		}
		if m.isNotZeroLineItem(i) && !math.IsNaN(m.geo.f[i]) {
			m.geo.cd = append(m.geo.cd, m.geo.f[i]/m.Sref)
		} else {
			m.geo.cd = append(m.geo.cd, 0)
		}
	}
}

// isNotZeroLineItem decides whether a row carries its own drag. A surface
// row counts when it leads its geometry's listing (main surface, expanded
// list, or a custom shape row) and its area was not folded into a collapsed
// ancestor. A sub-surface row counts only when included in the buildup and
// its parent's listing is expanded; otherwise its area already sits in the
// parent row.
func (m *Manager) isNotZeroLineItem(i int) bool {
	g, ok := m.veh.FindGeom(m.geo.geomID[i])
	if !ok {
		return false
	}
	if m.geo.subsurfID[i] != "" {
		ss, ok := findSubSurf(g, m.geo.subsurfID[i])
		return ok && ss.Include && g.ExpandedList
	}
	leads := m.geo.surfNum[i] == 0 || g.ExpandedList || isCustomLabel(m.geo.label[i])
	if !leads {
		return false
	}
	if m.geo.ancestorGen[i] == 0 || g.ExpandedList {
		return true
	}
	anc, ok := m.veh.FindGeom(m.veh.AncestorID(m.geo.geomID[i], m.geo.ancestorGen[i]))
	return ok && anc.ExpandedList
}
