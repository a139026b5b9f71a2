package paradrag

// SurfaceRow is one line of the buildup table: a surface instance or an
// included sub-surface, with its inputs and computed drag chain. Outputs not
// yet computed hold -1.
type SurfaceRow struct {
	GroupedAncestorGen int
	GeomID             string
	SubSurfID          string // empty for whole-surface rows
	Label              string
	SurfNum            int // 0 primary, >0 symmetric copy
	GeomShapeType      int
	ExpandedList       bool

	Swet        float64
	Lref        float64
	Re          float64
	PercLam     float64
	Cf          float64
	FineRat     float64
	FFEqnChoice int
	FFEqnName   string
	FF          float64
	Roughness   float64
	TeTwRatio   float64
	TawTwRatio  float64
	Q           float64
	F           float64
	CD          float64
	PercTotalCD float64
}

// defaultRow seeds table rows before assembly.
var defaultRow = SurfaceRow{
	Swet:        -1,
	Lref:        -1,
	Re:          -1,
	Cf:          -1,
	FineRat:     -1,
	FF:          -1,
	Roughness:   -1,
	TeTwRatio:   -1,
	TawTwRatio:  -1,
	Q:           1,
	F:           -1,
	CD:          -1,
	PercTotalCD: -1,
}

// ExcrescenceRow is one line of the excrescence ledger.
type ExcrescenceRow struct {
	Label       string
	Type        int
	TypeString  string
	Input       float64
	Amount      float64 // resolved CD contribution
	F           float64 // flat plate area equivalent
	PercTotalCD float64
}
