// Package atmos defines the freestream property source consumed by the drag
// buildup. Atmosphere table physics live behind the Model interface so the
// buildup can be driven by standard-day tables, flight-test day logs, or
// fixed conditions interchangeably.
package atmos

// freestream source types
const (
	TypeUSStandard1976 = iota
	TypeUSAF1966
	TypeManualPR  // pressure + density given
	TypeManualPT  // pressure + temperature given
	TypeManualRT  // density + temperature given
	TypeManualReL // Reynolds per length given directly
)

// Conditions carries the reference-condition request. Scalar values are
// expressed in the unit fields alongside them.
type Conditions struct {
	FreestreamType int

	Alt    float64 // geometric altitude
	DeltaT float64 // offset from standard day
	Vinf   float64

	// manual overrides, read per FreestreamType
	Temp     float64
	Pres     float64
	Rho      float64
	DynaVisc float64

	SpecificHeatRatio float64

	AltLengthUnit int // units.Imperial or units.Metric
	TempUnit      int
	PresUnit      int
	VinfUnit      int
}

// FlowProps is the completed freestream state. Values are in the units the
// request named.
type FlowProps struct {
	Temp         float64
	Pres         float64
	Rho          float64
	DynaVisc     float64
	SoundSpeed   float64
	Mach         float64
	DensityRatio float64 // rho/rho0, used for equivalent airspeed correction
	Alt          float64
	DeltaT       float64
}

// Model completes a freestream state from a reference-condition request.
type Model interface {
	Flow(Conditions) (FlowProps, error)
}

// Fixed serves a prescribed freestream state regardless of the request. It
// stands in for table atmospheres when conditions are known ahead of time,
// as with wind tunnel runs or flight-test day logs.
type Fixed struct {
	Props FlowProps
}

func (f *Fixed) Flow(Conditions) (FlowProps, error) { return f.Props, nil }
