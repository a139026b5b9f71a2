package atmos

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/sagpant/OpenVSP/units"
)

// TableRow holds one altitude station in SI: m, K, Pa, kg/m³, Pa·s.
type TableRow struct {
	Alt      float64 `json:"alt"`
	Temp     float64 `json:"temp"`
	Pres     float64 `json:"pres"`
	Rho      float64 `json:"rho"`
	DynaVisc float64 `json:"dynavisc"`
}

// Table interpolates freestream properties from altitude stations, covering
// tabulated standard-day or measured sounding data. Rows are kept sorted by
// altitude; requests outside the table clamp to the end rows.
type Table struct {
	Rows []TableRow `json:"rows"`
}

// LoadTable reads altitude stations from a json file.
func LoadTable(fp string) (*Table, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" atmos.LoadTable %v", err)
	}
	var t Table
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf(" atmos.LoadTable %v", err)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf(" atmos.LoadTable %s: no rows", fp)
	}
	sort.Slice(t.Rows, func(i, j int) bool { return t.Rows[i].Alt < t.Rows[j].Alt })
	return &t, nil
}

func (t *Table) at(altm float64) TableRow {
	n := len(t.Rows)
	if altm <= t.Rows[0].Alt {
		return t.Rows[0]
	}
	if altm >= t.Rows[n-1].Alt {
		return t.Rows[n-1]
	}
	i := sort.Search(n, func(i int) bool { return t.Rows[i].Alt >= altm }) // first row at or above
	lo, hi := t.Rows[i-1], t.Rows[i]
	w := (altm - lo.Alt) / (hi.Alt - lo.Alt)
	lerp := func(a, b float64) float64 { return a + w*(b-a) }
	return TableRow{
		Alt:      altm,
		Temp:     lerp(lo.Temp, hi.Temp),
		Pres:     lerp(lo.Pres, hi.Pres),
		Rho:      lerp(lo.Rho, hi.Rho),
		DynaVisc: lerp(lo.DynaVisc, hi.DynaVisc),
	}
}

// Flow interpolates the station at the requested altitude and reports it in
// the request's units. Manual freestream types bypass the table.
func (t *Table) Flow(c Conditions) (FlowProps, error) {
	switch c.FreestreamType {
	case TypeUSStandard1976, TypeUSAF1966:
	default:
		return Manual{}.Flow(c)
	}
	if len(t.Rows) == 0 {
		return FlowProps{}, fmt.Errorf(" atmos.Table.Flow: empty table")
	}
	altm := c.Alt
	if c.AltLengthUnit == units.Imperial {
		altm = units.ConvertLength(c.Alt, units.LenFT, units.LenM)
	}
	r := t.at(altm)
	tempK := r.Temp + units.ConvertTemperatureDelta(c.DeltaT, c.TempUnit, units.TempK)
	return complete(c, tempK, r.Pres, r.Rho*tempK/r.Temp, r.DynaVisc)
}

// gas and reference constants, SI
const (
	gasConstAir = 287.058  // J/(kg·K)
	rho0SI      = 1.225    // kg/m³ sea level standard
	visc0SI     = 1.716e-5 // Pa·s at suthT0
	suthT0      = 273.15   // K
	suthS       = 110.4    // K
)

// complete finishes a freestream state from SI temperature, pressure, density
// and viscosity, converting to the request's units.
func complete(c Conditions, tempK, presPa, rho, visc float64) (FlowProps, error) {
	gamma := c.SpecificHeatRatio
	if gamma <= 0 {
		gamma = 1.4
	}
	a := math.Sqrt(gamma * gasConstAir * tempK) // m/s
	v := units.ConvertVelocity(c.Vinf, c.VinfUnit, units.VelMS)
	ratio := rho / rho0SI
	if c.VinfUnit == units.VelKEAS && ratio > 0 {
		v /= math.Sqrt(ratio) // equivalent to true airspeed
	}
	p := FlowProps{
		Temp:         units.ConvertTemperature(tempK, units.TempK, c.TempUnit),
		Pres:         units.ConvertPressure(presPa, units.PresPA, c.PresUnit),
		Rho:          rho,
		DynaVisc:     visc,
		SoundSpeed:   a,
		Mach:         v / a,
		DensityRatio: ratio,
		Alt:          c.Alt,
		DeltaT:       c.DeltaT,
	}
	if c.AltLengthUnit == units.Imperial {
		p.Rho = units.ConvertDensity(rho, units.RhoKgM3, units.RhoSlugFt3)
		p.DynaVisc = visc / units.ViscPaSPerSlugFtS
		p.SoundSpeed = units.ConvertVelocity(a, units.VelMS, units.VelFtS)
	}
	return p, nil
}
