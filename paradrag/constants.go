package paradrag

// turbulent skin friction laws. Several are retained for comparison studies
// only; the cross-listed roughness and heat transfer laws close the set.
const (
	CfTurbExplicitFitSpalding = iota
	CfTurbExplicitFitSpaldingChi
	CfTurbExplicitFitSchoenherr
	CfTurbImplicitKarman
	CfTurbImplicitSchoenherr
	CfTurbImplicitKarmanSchoenherr
	CfTurbPowerLawBlasius // 6
	CfTurbPowerLawPrandtlLowRe
	CfTurbPowerLawPrandtlMediumRe
	CfTurbPowerLawPrandtlHighRe
	CfTurbSchlichtingCompressible // 10
	CfTurbSchlichtingIncompressible
	CfTurbSchlichtingPrandtl
	CfTurbSchultzGrunowHighRe
	CfTurbSchultzGrunowSchoenherr
	CfTurbWhiteChristophCompressible
	CfTurbRoughnessSchlichtingAvg // 16
	CfTurbRoughnessSchlichtingLocal
	CfTurbRoughnessWhite
	CfTurbRoughnessSchlichtingAvgFlowCorrection
	CfTurbHeatTransferWhiteChristoph // 20
)

// laminar skin friction laws
const (
	CfLamBlasius = iota
	CfLamBlasiusWithHeat // placeholder, evaluates to zero
)

// wing form factor equations
const (
	FFWingManual = iota
	FFWingEDETConv
	FFWingEDETAdv
	FFWingHoerner
	FFWingCovert
	FFWingShevell
	FFWingKroo
	FFWingTorenbeek
	FFWingDATCOM
	FFWingSchemensky6SeriesAF
	FFWingSchemensky4SeriesAF
	FFWingJenkinsonWing
	FFWingJenkinsonTail // 12, forces Q to 1.2
)

// body form factor equations
const (
	FFBodyManual = iota
	FFBodySchemenskyFuse
	FFBodySchemenskyNacelle
	FFBodyHoernerStreambody
	FFBodyTorenbeek
	FFBodyShevell
	FFBodyJenkinsonFuse
	FFBodyJenkinsonWingNacelle
	FFBodyJenkinsonAftFuseNacelle
	FFBodyJobe // 9
)

// excrescence types
const (
	ExcresCount = iota
	ExcresCD
	ExcresPercentGeom
	ExcresMargin
	ExcresDragArea
)

// table sort modes
const (
	SortNone = iota
	SortByWettedArea
	SortByPercTotalDrag
)

// reference area sources
const (
	RefManual = iota
	RefComponent
)

const dragPerExcresCount = 0.0001 // CD contribution of one drag count

// reference condition defaults, imperial
const (
	defSref  = 100.
	defVinf  = 500.
	defHinf  = 20000.
	defTemp  = 288.15
	defPres  = 2116.221
	defRho   = 0.07647
	defGamma = 1.4

	defFileName = "ParasiteDragBuildUp.csv"

	// altitude table ceilings
	maxAltFT = 278385.83
	maxAltM  = 84852.
)
