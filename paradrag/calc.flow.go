package paradrag

import (
	"fmt"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/units"
)

// calcRe fills the Reynolds number column. Velocity and reference length
// convert to the base length unit of the working unit system before the
// ratio; under a manual Re/L freestream the column is just Re/L times the
// reference length.
func (m *Manager) calcRe() {
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.re = append(m.geo.re, -1)
			continue
		}
		if m.geo.subsurfID[i] != "" {
			m.geo.re = append(m.geo.re, last(m.geo.re))
			continue
		}
		m.geo.re = append(m.geo.re, m.reynoldsNum(i))
	}
	m.calcRePowerDivisor()
}

func (m *Manager) reynoldsNum(i int) float64 {
	if m.FreestreamType == atmos.TypeManualReL {
		return m.ReqL * m.geo.lref[i]
	}
	vinf, lref := m.Vinf, m.geo.lref[i]
	if m.AltLengthUnit == units.Imperial {
		vinf = units.ConvertVelocity(vinf, m.VinfUnitType, units.VelFtS)
		lref = units.ConvertLength(lref, m.LengthUnit, units.LenFT)
	} else {
		vinf = units.ConvertVelocity(vinf, m.VinfUnitType, units.VelMS)
		lref = units.ConvertLength(lref, m.LengthUnit, units.LenM)
	}
	return vinf * lref / m.KineVisc
}

func (m *Manager) calcRePowerDivisor() {
	if len(m.geo.re) > 0 {
		m.rePowerDivisor = orderOfMag(maxOf(m.geo.re))
	} else {
		m.rePowerDivisor = 1
	}
}

// calcCf fills the skin friction column from the selected laws. A zero or
// unset laminar percentage means fully turbulent flow; otherwise the
// turbulent value is corrected by a partial laminar blend.
func (m *Manager) calcCf() {
	m.TurbCfEqnName = TurbCfEqnName(m.TurbCfEqnType)
	m.LamCfEqnName = LamCfEqnName(m.LamCfEqnType)
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.cf = append(m.geo.cf, -1)
			continue
		}
		if m.geo.subsurfID[i] != "" {
			m.geo.cf = append(m.geo.cf, last(m.geo.cf))
			continue
		}
		if m.geo.percLam[i] == 0 || m.geo.percLam[i] == -1 {
			m.geo.cf = append(m.geo.cf, m.turbCf(m.geo.re[i], i))
		} else {
			m.geo.cf = append(m.geo.cf, m.partialTurbulenceCf(i))
		}
	}
}

func (m *Manager) turbCf(re float64, i int) float64 {
	cf, err := CalcTurbCf(re, m.geo.lref[i], m.TurbCfEqnType,
		m.geo.roughness[i], m.SpecificHeatRatio, m.geo.tawTw[i], m.geo.teTw[i],
		m.Mach, m.LengthUnit)
	if err != nil {
		m.solveNotes = append(m.solveNotes,
			fmt.Sprintf("%s: %s at Re %.4g: %v", m.geo.label[i], m.TurbCfEqnName, re, err))
	}
	return cf
}

// partialTurbulenceCf blends the turbulent plate value with a laminar run
// over the leading fraction of the reference length. The laminar Reynolds
// number forms in SI regardless of the working unit system.
func (m *Manager) partialTurbulenceCf(i int) float64 {
	if m.geo.re[i] == 0 {
		return 0
	}
	lamFrac := m.geo.percLam[i] / 100.
	cfFullTurb := m.turbCf(m.geo.re[i], i)

	vinf := units.ConvertVelocity(m.Vinf, m.VinfUnitType, units.VelMS)
	lref := units.ConvertLength(m.geo.lref[i], m.LengthUnit, units.LenM)
	reLam := vinf * lamFrac * lref / m.kineViscSI()

	cfPartLam := CalcLamCf(reLam, m.LamCfEqnType)
	cfPartTurb := m.turbCf(reLam, i)
	return cfFullTurb - cfPartTurb*lamFrac + cfPartLam*lamFrac
}

// kineViscSI reports the freestream kinematic viscosity in m²/s whatever the
// working unit system.
func (m *Manager) kineViscSI() float64 {
	rho, visc := m.Rho, m.DynaVisc
	if m.AltLengthUnit == units.Imperial {
		rho = units.ConvertDensity(rho, units.RhoSlugFt3, units.RhoKgM3)
		visc *= units.ViscPaSPerSlugFtS
	}
	return visc / rho
}
