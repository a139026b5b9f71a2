package paradrag

import "fmt"

// ExcresTypeString names an excrescence type for table display.
func ExcresTypeString(excresType int) string {
	switch excresType {
	case ExcresCount:
		return "Count (10000*CD)"
	case ExcresCD:
		return "CD"
	case ExcresPercentGeom:
		return "% of Cd_Geom"
	case ExcresMargin:
		return "Margin"
	case ExcresDragArea:
		return "Drag Area (D/q)"
	default:
		return ""
	}
}

// ExcresValueLimits reports the allowed input range per excrescence type.
func ExcresValueLimits(excresType int) (lo, hi float64) {
	switch excresType {
	case ExcresCD:
		return 0, 0.2
	case ExcresCount:
		return 0, 2000
	case ExcresPercentGeom, ExcresMargin:
		return 0, 100
	case ExcresDragArea:
		return 0, 10
	default:
		return 0, 0
	}
}

func clampExcresValue(excresType int, val float64) float64 {
	lo, hi := ExcresValueLimits(excresType)
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// AddExcrescence appends a ledger entry and makes it current. An empty label
// gets a generated EXCRES_<n> name. Count and CD amounts fix at entry; the
// derived types wait for UpdateExcres. A second margin entry is refused.
func (m *Manager) AddExcrescence(label string, excresType int, val float64) error {
	if excresType == ExcresMargin {
		for i := range m.excres {
			if m.excres[i].Type == ExcresMargin {
				return fmt.Errorf(" paradrag.AddExcrescence: a margin entry already exists")
			}
		}
	}
	if label == "" {
		label = fmt.Sprintf("EXCRES_%d", len(m.excres))
	}
	val = clampExcresValue(excresType, val)
	row := ExcrescenceRow{
		Label:      label,
		Type:       excresType,
		TypeString: ExcresTypeString(excresType),
		Input:      val,
	}
	switch excresType {
	case ExcresCount:
		row.Amount = val * dragPerExcresCount
	case ExcresCD:
		row.Amount = val
	}
	row.F = row.Amount * m.Sref
	m.excres = append(m.excres, row)
	m.CurrentExcresIndex = len(m.excres) - 1
	m.ExcresType = excresType
	m.ExcresValue = val
	m.ExcresName = ""
	return nil
}

// DeleteExcrescence removes a ledger entry. The first remaining entry
// becomes current.
func (m *Manager) DeleteExcrescence(index int) error {
	if index < 0 || index >= len(m.excres) {
		return fmt.Errorf(" paradrag.DeleteExcrescence: no entry %d", index)
	}
	m.excres = append(m.excres[:index], m.excres[index+1:]...)
	if len(m.excres) > 0 {
		m.CurrentExcresIndex = 0
		m.loadCurrentExcres()
	} else {
		m.CurrentExcresIndex = -1
	}
	return nil
}

// SelectExcrescence makes a ledger entry current, loading its type and input
// into the working fields for editing.
func (m *Manager) SelectExcrescence(index int) error {
	if index < 0 || index >= len(m.excres) {
		return fmt.Errorf(" paradrag.SelectExcrescence: no entry %d", index)
	}
	m.CurrentExcresIndex = index
	m.loadCurrentExcres()
	return nil
}

func (m *Manager) loadCurrentExcres() {
	row := &m.excres[m.CurrentExcresIndex]
	m.ExcresType = row.Type
	m.ExcresValue = clampExcresValue(row.Type, row.Input)
}

// SetExcresLabel renames the current ledger entry.
func (m *Manager) SetExcresLabel(label string) {
	if m.CurrentExcresIndex >= 0 && m.CurrentExcresIndex < len(m.excres) {
		m.excres[m.CurrentExcresIndex].Label = label
	}
}

// UpdateExcres flows the working value into the current entry and
// recalculates every amount that depends on the geometry totals.
func (m *Manager) UpdateExcres() {
	for i := range m.excres {
		if i == m.CurrentExcresIndex {
			m.ExcresValue = clampExcresValue(m.excres[i].Type, m.ExcresValue)
			m.excres[i].Input = m.ExcresValue
			m.excres[i].Amount = m.excresAmount(m.excres[i].Type, m.ExcresValue)
			continue
		}
		switch m.excres[i].Type {
		case ExcresPercentGeom, ExcresMargin, ExcresDragArea:
			m.excres[i].Amount = m.excresAmount(m.excres[i].Type, m.excres[i].Input)
		}
	}
	if m.SubTotalCD() > 0 {
		for i := range m.excres {
			m.excres[i].F = m.excres[i].Amount * m.Sref
		}
	}
}

func (m *Manager) excresAmount(excresType int, val float64) float64 {
	switch excresType {
	case ExcresCD:
		return val
	case ExcresCount:
		return val * dragPerExcresCount
	case ExcresPercentGeom:
		return m.percentageGeomCD(val)
	case ExcresMargin:
		return m.marginCD(val)
	case ExcresDragArea:
		return m.dragAreaCD(val)
	default:
		return 0
	}
}

func (m *Manager) percentageGeomCD(val float64) float64 {
	if len(m.degens) == 0 || m.GeometryCD() <= 0 {
		return 0
	}
	return val / 100. * m.GeometryCD()
}

// marginCD widens the running subtotal so the margin makes up val percent of
// the grand total. The margin never feeds its own subtotal.
func (m *Manager) marginCD(val float64) float64 {
	if len(m.degens) == 0 || val >= 100 {
		return 0
	}
	sub := m.SubTotalCD()
	if sub <= 0 {
		return 0
	}
	return sub/((100.-val)/100.) - sub
}

func (m *Manager) dragAreaCD(val float64) float64 {
	if len(m.degens) == 0 || m.GeometryCD() <= 0 {
		return 0
	}
	return val / m.Sref
}
