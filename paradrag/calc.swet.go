package paradrag

import (
	"fmt"
	"strings"
)

// calcSwet pulls each row's wetted area from the meshed tag results, then
// folds grouped and included areas into their master rows.
func (m *Manager) calcSwet() {
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.swet = append(m.geo.swet, -1)
			continue
		}
		g, ok := m.veh.FindGeom(m.geo.geomID[i])
		if !ok {
			m.geo.swet = append(m.geo.swet, 0)
			continue
		}
		tag := fmt.Sprintf("%s%d", g.Name, m.geo.surfNum[i])
		if m.geo.subsurfID[i] != "" {
			if ss, ok := findSubSurf(g, m.geo.subsurfID[i]); ok {
				tag += "," + ss.Name
			}
		}
		m.geo.swet = append(m.geo.swet, m.meshAreas[tag])
	}
	m.updateWettedAreaTotals()
}

// updateWettedAreaTotals merges wetted areas upward. Included sub-surface
// areas fold into their collapsed parent's main row first, then symmetric
// copies and grouped descendants fold into the master surface row they
// report under. A row satisfying more than one master's predicate counts
// into each of them.
func (m *Manager) updateWettedAreaTotals() {
	if len(m.degens) == 0 {
		return
	}
	for i := 0; i < m.rowSize; i++ {
		if m.geo.subsurfID[i] != "" || m.geo.surfNum[i] != 0 {
			continue
		}
		gi, ok := m.veh.FindGeom(m.geo.geomID[i])
		if !ok || gi.ExpandedList {
			continue
		}
		for j := 0; j < m.rowSize; j++ {
			if i == j || m.geo.subsurfID[j] == "" {
				continue
			}
			gj, ok := m.veh.FindGeom(m.geo.geomID[j])
			if !ok {
				continue
			}
			ss, ok := findSubSurf(gj, m.geo.subsurfID[j])
			if !ok || !ss.Include {
				continue
			}
			if m.geo.geomID[i] == m.geo.geomID[j] ||
				m.geo.geomID[i] == m.veh.AncestorID(m.geo.geomID[j], m.geo.ancestorGen[j]) {
				m.geo.swet[i] += m.geo.swet[j]
			}
		}
	}
	for i := 0; i < m.rowSize; i++ {
		if m.geo.subsurfID[i] != "" || m.geo.expandedList[i] {
			continue
		}
		for j := 0; j < m.rowSize; j++ {
			if i == j || m.geo.subsurfID[j] != "" || m.geo.shapeType[i] != m.geo.shapeType[j] {
				continue
			}
			gj, ok := m.veh.FindGeom(m.geo.geomID[j])
			if !ok {
				continue
			}
			sameMain := m.geo.geomID[i] == m.geo.geomID[j] && m.geo.surfNum[i] == 0
			groupedHere := m.geo.geomID[i] != m.geo.geomID[j] && m.geo.surfNum[i] == 0 &&
				!gj.ExpandedList &&
				m.geo.geomID[i] == m.veh.AncestorID(m.geo.geomID[j], m.geo.ancestorGen[j])
			if sameMain || groupedHere || isCustomLabel(m.geo.label[i]) {
				m.geo.swet[i] += m.geo.swet[j]
			}
		}
	}
}

func isCustomLabel(label string) bool {
	return strings.HasPrefix(label, "[W]") || strings.HasPrefix(label, "[B]")
}
