package paradrag

import (
	"fmt"
	"math"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/units"
)

// Update refreshes everything upstream of the buildup table: the reference
// area source, input limits, the freestream state from the atmosphere model,
// which inputs are considered live, and the excrescence amounts.
func (m *Manager) Update() error {
	m.updateRefWing()
	m.updateTempLimits()
	m.updateAltLimits()
	if err := m.updateAtmosphere(); err != nil {
		return fmt.Errorf(" paradrag.Update %v", err)
	}
	m.updateParmActivity()
	m.UpdateExcres()
	return nil
}

// updateRefWing pulls the reference area from the chosen wing geometry, or
// leaves it a live manual input.
func (m *Manager) updateRefWing() {
	if m.RefFlag == RefManual {
		m.Active["Sref"] = true
		return
	}
	g, ok := m.veh.FindGeom(m.RefGeomID)
	if !ok {
		m.RefGeomID = ""
		return
	}
	if g.NumSurfs() > 0 && g.Surfs[0].Shape == degen.WingSurf {
		m.Sref = g.TotalArea
		m.Active["Sref"] = false
	}
}

// updateAtmosphere refreshes the freestream state. Altitude table types pull
// a full state for the current altitude; manual types close their missing
// gas properties; the Re/L type skips the atmosphere and follows the chosen
// Mach at the last known sound speed.
func (m *Manager) updateAtmosphere() error {
	if m.FreestreamType == atmos.TypeManualReL {
		if m.soundSpeed > 0 {
			v := m.Mach * m.soundSpeed
			base := units.VelMS
			if m.AltLengthUnit == units.Imperial {
				base = units.VelFtS
			}
			m.Vinf = units.ConvertVelocity(v, base, m.VinfUnitType)
		}
		return nil
	}
	props, err := m.atm.Flow(atmos.Conditions{
		FreestreamType:    m.FreestreamType,
		Alt:               m.Hinf,
		DeltaT:            m.DeltaT,
		Vinf:              m.Vinf,
		Temp:              m.Temp,
		Pres:              m.Pres,
		Rho:               m.Rho,
		DynaVisc:          m.DynaVisc,
		SpecificHeatRatio: m.SpecificHeatRatio,
		AltLengthUnit:     m.AltLengthUnit,
		TempUnit:          m.TempUnit,
		PresUnit:          m.PresUnit,
		VinfUnit:          m.VinfUnitType,
	})
	if err != nil {
		return err
	}
	switch m.FreestreamType {
	case atmos.TypeUSStandard1976, atmos.TypeUSAF1966:
		m.Hinf = props.Alt
		m.DeltaT = props.DeltaT
	}
	m.Temp = props.Temp
	m.Pres = props.Pres
	m.Rho = props.Rho
	m.DynaVisc = props.DynaVisc
	m.Mach = props.Mach
	m.soundSpeed = props.SoundSpeed
	m.densityRatio = props.DensityRatio

	vinf := m.Vinf
	base := units.VelMS
	if m.AltLengthUnit == units.Imperial {
		base = units.VelFtS
	}
	vinf = units.ConvertVelocity(vinf, m.VinfUnitType, base)

	m.KineVisc = m.DynaVisc / m.Rho
	if vinf > 0 {
		lqRe := m.KineVisc / vinf
		if m.AltLengthUnit == units.Imperial {
			lqRe = units.ConvertLength(lqRe, units.LenFT, m.LengthUnit)
		} else {
			lqRe = units.ConvertLength(lqRe, units.LenM, m.LengthUnit)
		}
		m.ReqL = 1. / lqRe
	}
	return nil
}

// UpdateVinf converts the freestream speed to a new velocity unit.
// Equivalent airspeed converts through true airspeed using the current
// density ratio.
func (m *Manager) UpdateVinf(newunit int) {
	v := m.Vinf
	if m.VinfUnitType == units.VelKEAS && m.densityRatio > 0 {
		v *= math.Sqrt(1. / m.densityRatio)
	}
	v = units.ConvertVelocity(v, m.VinfUnitType, newunit)
	if newunit == units.VelKEAS && m.densityRatio > 0 {
		v /= math.Sqrt(1. / m.densityRatio)
	}
	m.Vinf = v
	m.VinfUnitType = newunit
}

// UpdateAlt converts the altitude between unit systems.
func (m *Manager) UpdateAlt(newunit int) {
	if newunit == m.AltLengthUnit {
		return
	}
	if newunit == units.Imperial {
		m.Hinf = units.ConvertLength(m.Hinf, units.LenM, units.LenFT)
	} else {
		m.Hinf = units.ConvertLength(m.Hinf, units.LenFT, units.LenM)
	}
	m.AltLengthUnit = newunit
	m.updateAltLimits()
}

// UpdateTemp converts the freestream temperature to a new unit.
func (m *Manager) UpdateTemp(newunit int) {
	m.Temp = units.ConvertTemperature(m.Temp, m.TempUnit, newunit)
	m.TempUnit = newunit
	m.updateTempLimits()
}

// UpdatePres converts the freestream pressure to a new unit.
func (m *Manager) UpdatePres(newunit int) {
	m.Pres = units.ConvertPressure(m.Pres, m.PresUnit, newunit)
	m.PresUnit = newunit
}

// updateAltLimits caps the altitude at the top of the standard atmosphere
// tables.
func (m *Manager) updateAltLimits() {
	if m.AltLengthUnit == units.Imperial {
		m.HinfUpperLimit = maxAltFT
	} else {
		m.HinfUpperLimit = maxAltM
	}
	if m.Hinf > m.HinfUpperLimit {
		m.Hinf = m.HinfUpperLimit
	}
}

// updateTempLimits floors the temperature at absolute zero in the current
// unit.
func (m *Manager) updateTempLimits() {
	switch m.TempUnit {
	case units.TempC:
		m.TempLowerLimit = -273.15
	case units.TempF:
		m.TempLowerLimit = -459.666
	default:
		m.TempLowerLimit = 0
	}
	if m.Temp < m.TempLowerLimit {
		m.Temp = m.TempLowerLimit
	}
}

// flow condition inputs toggled by updateParmActivity
var flowParmNames = []string{
	"Vinf", "Hinf", "Temp", "DeltaT", "Pres", "Rho",
	"SpecificHeatRatio", "DynaVisc", "KineVisc", "Mach", "ReqL",
}

// updateParmActivity marks which flow condition inputs are live for the
// chosen freestream type. Everything else is derived and read only.
func (m *Manager) updateParmActivity() {
	for _, name := range flowParmNames {
		m.Active[name] = false
	}
	switch m.FreestreamType {
	case atmos.TypeUSStandard1976, atmos.TypeUSAF1966:
		m.Active["Vinf"] = true
		m.Active["Hinf"] = true
	case atmos.TypeManualPR:
		m.Active["Vinf"] = true
		m.Active["Pres"] = true
		m.Active["Rho"] = true
		m.Active["SpecificHeatRatio"] = true
	case atmos.TypeManualPT:
		m.Active["Vinf"] = true
		m.Active["Temp"] = true
		m.Active["Pres"] = true
		m.Active["SpecificHeatRatio"] = true
	case atmos.TypeManualRT:
		m.Active["Vinf"] = true
		m.Active["Temp"] = true
		m.Active["Rho"] = true
		m.Active["SpecificHeatRatio"] = true
	case atmos.TypeManualReL:
		m.Active["ReqL"] = true
		m.Active["Mach"] = true
		m.Active["SpecificHeatRatio"] = true
	}
}
