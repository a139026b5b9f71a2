package units

// unit system flags (altitude/atmosphere tables)
const (
	Imperial = iota
	Metric
)

// length units
const (
	LenMM = iota
	LenCM
	LenM
	LenIN
	LenFT
	LenYD
	LenUnitless // 6
)

// velocity units
const (
	VelFtS = iota
	VelMS
	VelMPH
	VelKmHr
	VelKEAS // knots, equivalent airspeed
	VelKTAS // knots, true airspeed
)

// temperature units
const (
	TempK = iota
	TempC
	TempF
	TempR
)

// pressure units
const (
	PresPSF = iota
	PresPSI
	PresPA
	PresKPA
	PresInchHg
	PresMmHg
	PresMmH2O
	PresMB
	PresATM // 8
)

// density units
const (
	RhoSlugFt3 = iota
	RhoKgM3
)

// ViscPaSPerSlugFtS scales dynamic viscosity from slug/(ft·s) to Pa·s.
const ViscPaSPerSlugFtS = 47.880259

// conversion factors to SI
const (
	mPerFt    = 0.3048
	mPerIn    = 0.0254
	mPerYd    = 0.9144
	msPerKt   = 0.514444   // knot
	msPerMPH  = 0.44704    // mile per hour
	msPerKmHr = 1. / 3.6   // km/hr
	paPerPSF  = 47.880259  // lbf/ft²
	paPerPSI  = 6894.757   // lbf/in²
	paPerInHg = 3386.389   // inch of mercury
	paPerMmHg = 133.3224   // mm of mercury
	paPerMmWC = 9.80665    // mm of water
	paPerMB   = 100.       // millibar
	paPerATM  = 101325.    // standard atmosphere
	kgm3PerSl = 515.378818 // slug/ft³
)

func lengthToMetres(u int) float64 {
	switch u {
	case LenMM:
		return 0.001
	case LenCM:
		return 0.01
	case LenM:
		return 1.
	case LenIN:
		return mPerIn
	case LenFT:
		return mPerFt
	case LenYD:
		return mPerYd
	default: // unitless carries no scale
		return 1.
	}
}

func velocityToMS(u int) float64 {
	switch u {
	case VelFtS:
		return mPerFt
	case VelMS:
		return 1.
	case VelMPH:
		return msPerMPH
	case VelKmHr:
		return msPerKmHr
	case VelKEAS, VelKTAS:
		return msPerKt
	default:
		return 1.
	}
}

func pressureToPA(u int) float64 {
	switch u {
	case PresPSF:
		return paPerPSF
	case PresPSI:
		return paPerPSI
	case PresPA:
		return 1.
	case PresKPA:
		return 1000.
	case PresInchHg:
		return paPerInHg
	case PresMmHg:
		return paPerMmHg
	case PresMmH2O:
		return paPerMmWC
	case PresMB:
		return paPerMB
	case PresATM:
		return paPerATM
	default:
		return 1.
	}
}

// ConvertLength converts a length value between length units.
func ConvertLength(v float64, from, to int) float64 {
	if from == to {
		return v
	}
	return v * lengthToMetres(from) / lengthToMetres(to)
}

// ConvertVelocity converts a velocity value between velocity units. Equivalent
// airspeed is converted as knots; the equivalent/true correction is a function
// of density ratio and is left to the caller.
func ConvertVelocity(v float64, from, to int) float64 {
	if from == to {
		return v
	}
	return v * velocityToMS(from) / velocityToMS(to)
}

// ConvertTemperature converts a temperature value between temperature units.
func ConvertTemperature(v float64, from, to int) float64 {
	if from == to {
		return v
	}
	var k float64
	switch from {
	case TempK:
		k = v
	case TempC:
		k = v + 273.15
	case TempF:
		k = (v + 459.67) * 5. / 9.
	case TempR:
		k = v * 5. / 9.
	default:
		k = v
	}
	switch to {
	case TempK:
		return k
	case TempC:
		return k - 273.15
	case TempF:
		return k*9./5. - 459.67
	case TempR:
		return k * 9. / 5.
	default:
		return k
	}
}

// ConvertTemperatureDelta converts a temperature difference between units,
// scale only, no offset.
func ConvertTemperatureDelta(v float64, from, to int) float64 {
	return ConvertTemperature(v, from, to) - ConvertTemperature(0., from, to)
}

// ConvertPressure converts a pressure value between pressure units.
func ConvertPressure(v float64, from, to int) float64 {
	if from == to {
		return v
	}
	return v * pressureToPA(from) / pressureToPA(to)
}

// ConvertDensity converts a density value between density units.
func ConvertDensity(v float64, from, to int) float64 {
	if from == to {
		return v
	}
	if from == RhoSlugFt3 {
		v *= kgm3PerSl
	}
	if to == RhoSlugFt3 {
		v /= kgm3PerSl
	}
	return v
}
