package atmos

import (
	"fmt"
	"math"

	"github.com/sagpant/OpenVSP/units"
)

// Manual completes a freestream state from a pair of manually specified gas
// properties, closing the ideal-gas triple and taking viscosity from the
// Sutherland law.
type Manual struct{}

func (Manual) Flow(c Conditions) (FlowProps, error) {
	var tempK, presPa, rho float64
	toSI := func() (float64, float64, float64) {
		t := units.ConvertTemperature(c.Temp, c.TempUnit, units.TempK)
		p := units.ConvertPressure(c.Pres, c.PresUnit, units.PresPA)
		r := c.Rho
		if c.AltLengthUnit == units.Imperial {
			r = units.ConvertDensity(c.Rho, units.RhoSlugFt3, units.RhoKgM3)
		}
		return t, p, r
	}
	switch c.FreestreamType {
	case TypeManualPR:
		_, presPa, rho = toSI()
		tempK = presPa / (rho * gasConstAir)
	case TypeManualPT:
		tempK, presPa, _ = toSI()
		rho = presPa / (gasConstAir * tempK)
	case TypeManualRT:
		tempK, _, rho = toSI()
		presPa = rho * gasConstAir * tempK
	default:
		return FlowProps{}, fmt.Errorf(" atmos.Manual.Flow: freestream type %d needs an altitude model", c.FreestreamType)
	}
	return complete(c, tempK, presPa, rho, sutherland(tempK))
}

// sutherland gives dynamic viscosity in Pa·s for temperature in K.
func sutherland(tempK float64) float64 {
	tr := tempK / suthT0
	return visc0SI * tr * math.Sqrt(tr) * (suthT0 + suthS) / (tempK + suthS)
}
