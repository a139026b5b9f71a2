package paradrag

import (
	"math"

	"github.com/maseology/mmaths"
)

// form factor correlations. Wing laws take thickness-to-chord and the area
// weighted quarter and half chord sweeps in radians; body laws take the
// length-to-diameter ratio and the Schemensky length-to-root-area ratio.

// datcomMach bounds the lifting surface correction curves, digitized from the
// DATCOM charts and fitted cubic in cos(sweep25).
var datcomMach = [4]float64{0.25, 0.6, 0.8, 0.9}

func datcomRLS(mach, sweep25 float64) float64 {
	cs := math.Cos(sweep25)
	curve := func(a, b, c, d float64) float64 {
		return a*cs*cs*cs + b*cs*cs + c*cs + d
	}
	rls := [4]float64{
		curve(-2.0292, 3.6345, -1.391, 0.8521),
		curve(-1.9735, 3.4504, -1.186, 0.858),
		curve(-1.6538, 2.865, -0.886, 0.934),
		curve(-1.8316, 3.3944, -1.3596, 1.1567),
	}
	if mach <= datcomMach[0] {
		return rls[0]
	}
	if mach > datcomMach[3] {
		return rls[3]
	}
	// last interior segment containing mach
	i := 2
	for ; i > 0; i-- {
		if mach >= datcomMach[i] {
			break
		}
	}
	x := (mach - datcomMach[i]) / (datcomMach[i+1] - datcomMach[i])
	return mmaths.LinearTransform(rls[i], rls[i+1], x)
}

// CalcFFWing evaluates a wing form factor law. The manual law reports 1; the
// user value overrides downstream.
func CalcFFWing(toc float64, eqn int, percLam, sweep25, sweep50, mach float64) float64 {
	switch eqn {
	case FFWingManual:
		return 1.

	case FFWingEDETConv:
		return 1. + toc*(2.94206+toc*(7.16974+toc*(48.8876+
			toc*(-1403.02+toc*(8598.76+toc*(-15834.3))))))

	case FFWingEDETAdv:
		return 1. + 4.275*toc

	case FFWingHoerner:
		return 1. + 2.*toc + 60.*math.Pow(toc, 4.)

	case FFWingCovert:
		return 1. + 1.8*toc + 50.*math.Pow(toc, 4.)

	case FFWingShevell:
		cs := math.Cos(sweep25)
		z := (2. - mach*mach) * cs / math.Sqrt(1.-mach*mach*cs*cs)
		return 1. + z*toc + 100.*math.Pow(toc, 4.)

	case FFWingKroo:
		cs2 := math.Cos(sweep25) * math.Cos(sweep25)
		beta2 := 1. - mach*mach*cs2
		return 1. + 2.2*cs2*toc/math.Sqrt(beta2) +
			4.84*cs2*(1.+5.*cs2)*toc*toc/(2.*beta2)

	case FFWingTorenbeek:
		return 1. + 2.7*toc + 100.*math.Pow(toc, 4.)

	case FFWingDATCOM:
		l := 2.
		if percLam > 0.30 {
			l = 1.2
		}
		return (1. + l*toc + 100.*math.Pow(toc, 4.)) * datcomRLS(mach, sweep25)

	case FFWingSchemensky6SeriesAF:
		return 1. + 1.44*toc + 2.*toc*toc

	case FFWingSchemensky4SeriesAF:
		return 1. + 1.68*toc + 3.*toc*toc

	case FFWingJenkinsonWing:
		fstar := 1. + 3.3*toc - 0.008*toc*toc + 27.*math.Pow(toc, 3.)
		cs := math.Cos(sweep50)
		return (fstar-1.)*cs*cs + 1.

	case FFWingJenkinsonTail:
		fstar := 1. + 3.52*toc
		cs := math.Cos(sweep50)
		return (fstar-1.)*cs*cs + 1.

	default:
		return 0
	}
}

// CalcFFBody evaluates a body form factor law. longF is length over nominal
// diameter, fr is length over the root of the max cross section area.
func CalcFFBody(longF, fr float64, eqn int, lref, maxXArea, mach float64) float64 {
	switch eqn {
	case FFBodyManual:
		return 1.

	case FFBodySchemenskyFuse:
		return 1. + 60./math.Pow(fr, 3.) + 0.0025*fr

	case FFBodySchemenskyNacelle:
		return 1. + 0.35/fr

	case FFBodyHoernerStreambody:
		return 1. + 1.5/math.Pow(longF, 1.5) + 7./math.Pow(longF, 3.)

	case FFBodyTorenbeek:
		return 1. + 2.2/math.Pow(longF, 1.5) + 3.8/math.Pow(longF, 3.)

	case FFBodyShevell:
		return 1. + 2.8/math.Pow(longF, 1.5) + 3.8/math.Pow(longF, 3.)

	case FFBodyJenkinsonFuse:
		lam := lref / math.Sqrt(4./math.Pi*maxXArea)
		return 1. + 2.2/math.Pow(lam, 1.5) - 0.9/math.Pow(lam, 3.)

	case FFBodyJenkinsonWingNacelle:
		return 1.25

	case FFBodyJenkinsonAftFuseNacelle:
		return 1.5

	case FFBodyJobe:
		return 1.02 + 1.5/math.Pow(longF, 1.5) +
			7./(0.6*math.Pow(longF, 3.)*(1.-math.Pow(mach, 3.)))

	default:
		return 0
	}
}

// FFWingEqnName reports the display name of a wing form factor law.
func FFWingEqnName(eqn int) string {
	switch eqn {
	case FFWingManual:
		return "Manual"
	case FFWingEDETConv:
		return "EDET Conventional"
	case FFWingEDETAdv:
		return "EDET Advanced"
	case FFWingHoerner:
		return "Hoerner"
	case FFWingCovert:
		return "Covert"
	case FFWingShevell:
		return "Shevell"
	case FFWingKroo:
		return "Kroo"
	case FFWingTorenbeek:
		return "Torenbeek"
	case FFWingDATCOM:
		return "DATCOM"
	case FFWingSchemensky6SeriesAF:
		return "Schemensky 6 Series AF"
	case FFWingSchemensky4SeriesAF:
		return "Schemensky 4 Series AF"
	case FFWingJenkinsonWing:
		return "Jenkinson Wing"
	case FFWingJenkinsonTail:
		return "Jenkinson Tail"
	default:
		return "ERROR"
	}
}

// FFBodyEqnName reports the display name of a body form factor law.
func FFBodyEqnName(eqn int) string {
	switch eqn {
	case FFBodyManual:
		return "Manual"
	case FFBodySchemenskyFuse:
		return "Schemensky Fuselage"
	case FFBodySchemenskyNacelle:
		return "Schemensky Nacelle"
	case FFBodyHoernerStreambody:
		return "Hoerner Streamlined Body"
	case FFBodyTorenbeek:
		return "Torenbeek"
	case FFBodyShevell:
		return "Shevell"
	case FFBodyJenkinsonFuse:
		return "Jenkinson Fuselage"
	case FFBodyJenkinsonWingNacelle:
		return "Jenkinson Wing Nacelle"
	case FFBodyJenkinsonAftFuseNacelle:
		return "Jenkinson Aft Fuse Nacelle"
	case FFBodyJobe:
		return "Jobe"
	default:
		return "ERROR"
	}
}
