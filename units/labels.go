package units

// display names, used when labelling exported tables

func LengthLabel(u int) string {
	switch u {
	case LenMM:
		return "mm"
	case LenCM:
		return "cm"
	case LenM:
		return "m"
	case LenIN:
		return "in"
	case LenFT:
		return "ft"
	case LenYD:
		return "yd"
	case LenUnitless:
		return "LU"
	default:
		return "-"
	}
}

func AreaLabel(u int) string {
	l := LengthLabel(u)
	if l == "-" {
		return l
	}
	return l + "^2"
}

func VelocityLabel(u int) string {
	switch u {
	case VelFtS:
		return "ft/s"
	case VelMS:
		return "m/s"
	case VelMPH:
		return "mph"
	case VelKmHr:
		return "km/hr"
	case VelKEAS:
		return "KEAS"
	case VelKTAS:
		return "KTAS"
	default:
		return "-"
	}
}

func TemperatureLabel(u int) string {
	switch u {
	case TempK:
		return "K"
	case TempC:
		return "°C"
	case TempF:
		return "°F"
	case TempR:
		return "°R"
	default:
		return "-"
	}
}

func PressureLabel(u int) string {
	switch u {
	case PresPSF:
		return "lbf/ft^2"
	case PresPSI:
		return "lbf/in^2"
	case PresPA:
		return "Pa"
	case PresKPA:
		return "kPa"
	case PresInchHg:
		return "inHg"
	case PresMmHg:
		return "mmHg"
	case PresMmH2O:
		return "mmH2O"
	case PresMB:
		return "mB"
	case PresATM:
		return "atm"
	default:
		return "-"
	}
}

func DensityLabel(u int) string {
	switch u {
	case RhoSlugFt3:
		return "slug/ft^3"
	case RhoKgM3:
		return "kg/m^3"
	default:
		return "-"
	}
}
