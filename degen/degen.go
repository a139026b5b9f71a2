// Package degen carries the degenerate geometry consumed by the drag buildup:
// per-surface sticks reduced from full geometry, the geometry records holding
// per-component drag inputs, and the Vehicle interface the buildup resolves
// identifiers against.
package degen

// surface shape classes
const (
	WingSurf = iota
	BodySurf
	DiskSurf // actuator disks carry no skin friction
)

type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Stick is the degenerate section representation of one surface. Section
// arrays run root to tip (nose to tail for bodies) with n stations and n-1
// spanwise panels.
type Stick struct {
	Xle      []Point3  `json:"xle"`                // leading edge points, n
	Chord    []float64 `json:"chord"`              // section chord, n
	Toc      []float64 `json:"toc,omitempty"`      // thickness to chord, n
	SweepLE  []float64 `json:"sweeple,omitempty"`  // leading edge sweep deg, per panel
	SectArea []float64 `json:"sectarea,omitempty"` // cross sectional area, n
	AreaTop  []float64 `json:"areaTop,omitempty"`  // top view panel area, n-1
	PerimTop []float64 `json:"perimTop,omitempty"` // top view perimeter, n
}

// DegenGeom is one surface instance of a geometry in degenerate form.
type DegenGeom struct {
	Shape  int
	Sticks []Stick
}

// SurfDef pairs a surface instance with its stick and meshed wetted area.
type SurfDef struct {
	Shape   int     `json:"shape"`
	Stick   Stick   `json:"stick"`
	WetArea float64 `json:"wetArea"`
}

// SubSurfDef is a sub-surface patch of a geometry. WetAreas holds the meshed
// wetted area per surface instance.
type SubSurfDef struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Include  bool      `json:"include"` // count its wetted area, folded into the parent or on its own line
	WetAreas []float64 `json:"wetAreas,omitempty"`
}

// GeomDef is one geometry with its drag buildup inputs.
type GeomDef struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ParentID           string  `json:"parent,omitempty"`
	Custom             bool    `json:"custom,omitempty"`
	ExpandedList       bool    `json:"expandedList,omitempty"`
	GroupedAncestorGen int     `json:"groupedAncestorGen,omitempty"`
	PercLam            float64 `json:"percLam,omitempty"`
	FFUser             float64 `json:"ffUser,omitempty"`
	Q                  float64 `json:"q,omitempty"`
	Roughness          float64 `json:"roughness,omitempty"`
	TeTwRatio          float64 `json:"teTwRatio,omitempty"`
	TawTwRatio         float64 `json:"tawTwRatio,omitempty"`
	FFWingEqn          int     `json:"ffWingEqn,omitempty"`
	FFBodyEqn          int     `json:"ffBodyEqn,omitempty"`
	TotalArea          float64 `json:"totalArea,omitempty"` // planform area, reference candidates

	Surfs    []SurfDef    `json:"surfs"`
	SubSurfs []SubSurfDef `json:"subSurfs,omitempty"`
}

// NumSurfs reports the surface instance count, symmetric copies included.
func (g *GeomDef) NumSurfs() int { return len(g.Surfs) }

// TagAreas maps mesh tags to wetted areas. Tags follow the meshing
// convention: "Name<surf>" for whole surfaces, "Name<surf>,SubName" for
// sub-surfaces.
type TagAreas map[string]float64

// Vehicle resolves geometry identifiers for the drag buildup. Identifiers are
// re-resolved on every access; a stale identifier reports not found rather
// than a dangling record.
type Vehicle interface {
	// GeomSet lists geometry IDs in a display set, in model order.
	GeomSet(set int) []string
	// FindGeom resolves an ID to its geometry record.
	FindGeom(id string) (*GeomDef, bool)
	// AncestorID walks gen generations up the parent tree. Zero or negative
	// generations resolve to the geometry itself; a broken chain reports "".
	AncestorID(id string, gen int) string
	// CreateDegenGeoms regenerates degenerate geometry for a set, one entry
	// per surface instance in model order, disks included.
	CreateDegenGeoms(set int) []DegenGeom
	// MeshWetAreas meshes a set and reports tagged wetted areas.
	MeshWetAreas(set int) TagAreas
}
