package paradrag

// SortRows orders the assembled table. Grouped rows always follow the row
// they merge under; the selection sorts then order the groups by wetted area
// or drag share, largest first.
func (m *Manager) SortRows() {
	m.sortByAncestorGroups()
	switch m.SortBy {
	case SortByWettedArea:
		m.sortByLargest(func(r *SurfaceRow) float64 { return r.Swet })
	case SortByPercTotalDrag:
		m.sortByLargest(func(r *SurfaceRow) float64 { return r.PercTotalCD })
	}
}

// sortByAncestorGroups keeps model order but pulls each geometry's reflected
// copies and grouped descendants directly behind its first row.
func (m *Manager) sortByAncestorGroups() {
	n := len(m.rows)
	sorted := make([]bool, n)
	temp := make([]SurfaceRow, 0, n)
	for i := 0; i < n; i++ {
		if sorted[i] {
			continue
		}
		sorted[i] = true
		temp = append(temp, m.rows[i])
		temp = m.appendRowGroup(temp, sorted, i)
	}
	m.rows = temp
}

// sortByLargest repeatedly emits the largest remaining row with its group in
// tow.
func (m *Manager) sortByLargest(metric func(*SurfaceRow) float64) {
	n := len(m.rows)
	sorted := make([]bool, n)
	temp := make([]SurfaceRow, 0, n)
	for len(temp) < n {
		mx := -1
		for j := 0; j < n; j++ {
			if sorted[j] {
				continue
			}
			if mx == -1 || metric(&m.rows[j]) > metric(&m.rows[mx]) {
				mx = j
			}
		}
		sorted[mx] = true
		temp = append(temp, m.rows[mx])
		temp = m.appendRowGroup(temp, sorted, mx)
	}
	m.rows = temp
}

// appendRowGroup pulls the master row's reflected surfaces in first, then
// every row grouped to it through its ancestor generation choice.
func (m *Manager) appendRowGroup(temp []SurfaceRow, sorted []bool, master int) []SurfaceRow {
	for j := range m.rows {
		if j != master && !sorted[j] && m.rows[j].GeomID == m.rows[master].GeomID {
			sorted[j] = true
			temp = append(temp, m.rows[j])
		}
	}
	for j := range m.rows {
		if j == master || sorted[j] {
			continue
		}
		if _, ok := m.veh.FindGeom(m.rows[j].GeomID); !ok {
			continue
		}
		if m.veh.AncestorID(m.rows[j].GeomID, m.rows[j].GroupedAncestorGen) == m.rows[master].GeomID {
			sorted[j] = true
			temp = append(temp, m.rows[j])
		}
	}
	return temp
}
