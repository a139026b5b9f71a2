package paradrag

import (
	"math"

	"github.com/sagpant/OpenVSP/nls"
	"github.com/sagpant/OpenVSP/units"
)

// flat plate skin friction laws, laminar and turbulent, as flight-condition
// functions of Reynolds number. The implicit laws solve for Cf by
// Newton-Raphson seeded with the matching explicit fit.

const (
	recoveryFactor = 0.89 // turbulent recovery factor
	viscPowerLawN  = 0.67 // viscosity power law exponent

	cfTol     = 1e-10
	cfMaxIter = 100
)

// roughnessScale converts a roughness height entered in the model length unit
// to the inch-based ratio the Schlichting average roughness fits expect.
func roughnessScale(lengthUnit int) float64 {
	switch lengthUnit {
	case units.LenFT:
		return 12.
	case units.LenM:
		return 39.3701
	default:
		return 1.
	}
}

// CalcTurbCf evaluates a turbulent flat plate law. The roughness laws read
// roughness height in the model length unit and the heat transfer law reads
// the wall temperature ratios; the rest ignore them. A non-nil error reports
// an implicit law that hit its iteration cap, with the explicit-fit seed
// refined as far as the iteration got.
func CalcTurbCf(re, lref float64, eqn int, roughness, gamma, tawTw, teTw, mach float64, lengthUnit int) (float64, error) {
	switch eqn {
	case CfTurbWhiteChristophCompressible:
		return 0.42 / math.Pow(math.Log(0.056*re), 2.), nil

	case CfTurbSchlichtingPrandtl:
		return 1. / math.Pow(2.*math.Log10(re)-0.65, 2.3), nil

	case CfTurbSchlichtingCompressible:
		return 0.455 / math.Pow(math.Log10(re), 2.58), nil

	case CfTurbSchlichtingIncompressible:
		return 0.472 / math.Pow(math.Log10(re), 2.5), nil

	case CfTurbSchultzGrunowSchoenherr:
		return 0.427 / math.Pow(math.Log10(re)-0.407, 2.64), nil

	case CfTurbSchultzGrunowHighRe:
		return 0.37 / math.Pow(math.Log10(re), 2.584), nil

	case CfTurbPowerLawBlasius:
		return 0.0592 / math.Pow(re, 0.2), nil

	case CfTurbPowerLawPrandtlLowRe:
		return 0.074 / math.Pow(re, 0.2), nil

	case CfTurbPowerLawPrandtlMediumRe:
		return 0.027 / math.Pow(re, 1./7.), nil

	case CfTurbPowerLawPrandtlHighRe:
		return 0.058 / math.Pow(re, 0.2), nil

	case CfTurbExplicitFitSpalding:
		return 0.455 / math.Pow(math.Log(0.06*re), 2.), nil

	case CfTurbExplicitFitSpaldingChi:
		return 0.225 / math.Pow(math.Log10(re), 2.32), nil

	case CfTurbExplicitFitSchoenherr:
		return schoenherrFit(re), nil

	case CfTurbImplicitSchoenherr:
		f := func(cf float64) float64 {
			return 0.242/(math.Sqrt(cf)*math.Log10(re*cf)) - 1.
		}
		fp := func(cf float64) float64 {
			return (-0.278613*math.Log(cf*re) - 0.557226) /
				(math.Pow(cf, 1.5) * math.Pow(math.Log(re*cf), 2.))
		}
		return nls.FindRoot(f, fp, schoenherrFit(re), cfTol, cfMaxIter)

	case CfTurbImplicitKarman:
		f := func(cf float64) float64 {
			return (4.15*math.Log10(re*cf)+1.70)*math.Sqrt(cf) - 1.
		}
		fp := func(cf float64) float64 {
			return (0.901161*math.Log(re*cf) + 2.65232) / math.Sqrt(cf)
		}
		return nls.FindRoot(f, fp, 0.455/math.Pow(math.Log10(re), 2.58), cfTol, cfMaxIter)

	case CfTurbImplicitKarmanSchoenherr:
		f := func(cf float64) float64 {
			return 4.13*math.Log10(re*cf)*math.Sqrt(cf) - 1.
		}
		fp := func(cf float64) float64 {
			return (0.896818*math.Log(re*cf) + 1.79364) / math.Sqrt(cf)
		}
		return nls.FindRoot(f, fp, schoenherrFit(re), cfTol, cfMaxIter)

	case CfTurbRoughnessWhite, CfTurbRoughnessSchlichtingLocal:
		hr := lref / roughness
		return math.Pow(1.4+3.7*math.Log10(hr), -2.), nil

	case CfTurbRoughnessSchlichtingAvg:
		hr := lref / (roughness * roughnessScale(lengthUnit))
		return math.Pow(1.89+1.62*math.Log10(hr), -2.5), nil

	case CfTurbRoughnessSchlichtingAvgFlowCorrection:
		hr := lref / (roughness * roughnessScale(lengthUnit))
		return math.Pow(1.89+1.62*math.Log10(hr), -2.5) /
			math.Pow(1.+(gamma-1.)/2.*mach, 0.467), nil

	case CfTurbHeatTransferWhiteChristoph:
		f := (1. + 0.22*recoveryFactor*((gamma-1.)/2.)*mach*mach*teTw) /
			(1. + 0.3*(tawTw-1.))
		return 0.451 * f * f * teTw /
			math.Log(0.056*f*math.Pow(teTw, 1.+viscPowerLawN)*re), nil

	default:
		return 0, nil
	}
}

// schoenherrFit is the explicit Schoenherr approximation, also the implicit
// law seed.
func schoenherrFit(re float64) float64 {
	v := 1. / (3.46*math.Log10(re) - 5.6)
	return v * v
}

// CalcLamCf evaluates a laminar flat plate law.
func CalcLamCf(re float64, eqn int) float64 {
	switch eqn {
	case CfLamBlasius:
		return 1.32824 / math.Sqrt(re)
	default: // heat transfer variant pending a validated fit
		return 0
	}
}

// TurbCfEqnName reports the display name of a turbulent law.
func TurbCfEqnName(eqn int) string {
	switch eqn {
	case CfTurbWhiteChristophCompressible:
		return "Compressible White-Christoph"
	case CfTurbSchlichtingPrandtl:
		return "Schlichting-Prandtl"
	case CfTurbSchlichtingCompressible:
		return "Compressible Schlichting"
	case CfTurbSchlichtingIncompressible:
		return "Incompressible Schlichting"
	case CfTurbSchultzGrunowSchoenherr:
		return "Schultz-Grunow Schoenherr"
	case CfTurbSchultzGrunowHighRe:
		return "High Reynolds Number Schultz-Grunow"
	case CfTurbPowerLawBlasius:
		return "Blasius Power Law"
	case CfTurbPowerLawPrandtlLowRe:
		return "Low Reynolds Number Prandtl Power Law"
	case CfTurbPowerLawPrandtlMediumRe:
		return "Medium Reynolds Number Prandtl Power Law"
	case CfTurbPowerLawPrandtlHighRe:
		return "High Reynolds Number Prandtl Power Law"
	case CfTurbExplicitFitSpalding:
		return "Spalding Explicit Empirical Fit"
	case CfTurbExplicitFitSpaldingChi:
		return "Spalding-Chi Explicit Empirical Fit"
	case CfTurbExplicitFitSchoenherr:
		return "Schoenherr Explicit Empirical Fit"
	case CfTurbImplicitSchoenherr:
		return "Schoenherr Implicit"
	case CfTurbImplicitKarman:
		return "Von Karman Implicit"
	case CfTurbImplicitKarmanSchoenherr:
		return "Karman-Schoenherr Implicit"
	case CfTurbRoughnessWhite:
		return "White Roughness"
	case CfTurbRoughnessSchlichtingLocal:
		return "Schlichting Local Roughness"
	case CfTurbRoughnessSchlichtingAvg:
		return "Schlichting Avg Roughness"
	case CfTurbRoughnessSchlichtingAvgFlowCorrection:
		return "Schlichting Avg Roughness w Flow Correction"
	case CfTurbHeatTransferWhiteChristoph:
		return "White-Christoph w Heat Transfer"
	default:
		return "ERROR"
	}
}

// LamCfEqnName reports the display name of a laminar law.
func LamCfEqnName(eqn int) string {
	switch eqn {
	case CfLamBlasius:
		return "Blasius"
	case CfLamBlasiusWithHeat:
		return "Blasius w Heat Transfer"
	default:
		return "ERROR"
	}
}
