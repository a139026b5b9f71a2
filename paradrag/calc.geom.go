package paradrag

import (
	"math"

	"github.com/sagpant/OpenVSP/degen"
)

const refLenEps = 1e-6

// calcLref reduces a reference length per surface row: area weighted mean
// chord for wing surfaces, end to end stick length for bodies. Each form
// falls back to the other when degenerate, with a final floor of one length
// unit. Sub-surface rows repeat their parent's value.
func (m *Manager) calcLref() {
	iSurf := 0
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.lref = append(m.geo.lref, -1)
			continue
		}
		if m.geo.subsurfID[i] != "" {
			m.geo.lref = append(m.geo.lref, last(m.geo.lref))
			continue
		}
		d, ok := m.nextSurfDegen(&iSurf)
		if !ok {
			m.geo.lref = append(m.geo.lref, -1)
			continue
		}
		var lref float64
		if d.Shape == degen.WingSurf {
			lref = weightedChord(d)
			if lref <= refLenEps {
				lref = boundingLength(d)
			}
		} else {
			lref = boundingLength(d)
			if lref <= refLenEps {
				lref = weightedChord(d)
			}
		}
		if lref <= refLenEps {
			lref = 1.
		}
		m.geo.lref = append(m.geo.lref, lref)
	}
}

// nextSurfDegen advances the degen cursor past actuator disks, which carry
// no table row, and claims the next surface entry.
func (m *Manager) nextSurfDegen(iSurf *int) (*degen.DegenGeom, bool) {
	for *iSurf < len(m.degens) && m.degens[*iSurf].Shape == degen.DiskSurf {
		*iSurf++
	}
	if *iSurf >= len(m.degens) {
		return nil, false
	}
	d := &m.degens[*iSurf]
	*iSurf++
	return d, true
}

// weightedChord is the section area weighted mean chord of the first stick.
func weightedChord(d *degen.DegenGeom) float64 {
	if len(d.Sticks) == 0 {
		return 0
	}
	s := &d.Sticks[0]
	n := len(s.AreaTop)
	if n == 0 || len(s.Xle) < n+1 || len(s.Chord) < n+1 {
		return 0
	}
	totalArea, weightedSum := 0., 0.
	for j := 0; j < n; j++ {
		span := dist(s.Xle[j], s.Xle[j+1])
		secArea := span * 0.5 * (s.Chord[j] + s.Chord[j+1])
		totalArea += secArea
		weightedSum += s.Chord[j] * secArea
	}
	if totalArea <= 0 {
		return 0
	}
	return weightedSum / totalArea
}

// boundingLength is the straight line distance between the first stick's end
// points.
func boundingLength(d *degen.DegenGeom) float64 {
	if len(d.Sticks) == 0 {
		return 0
	}
	s := &d.Sticks[0]
	if len(s.Xle) < 2 {
		return 0
	}
	return dist(s.Xle[0], s.Xle[len(s.Xle)-1])
}

func dist(a, b degen.Point3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// calcFineRat fills the slenderness column: max thickness to chord for
// wings, nominal diameter over reference length for bodies. The body form is
// inverted again where a formula wants length over diameter.
func (m *Manager) calcFineRat() {
	iSurf := 0
	for i := 0; i < m.rowSize; i++ {
		if len(m.degens) == 0 {
			m.geo.fineRat = append(m.geo.fineRat, -1)
			continue
		}
		if m.geo.subsurfID[i] != "" {
			m.geo.fineRat = append(m.geo.fineRat, last(m.geo.fineRat))
			continue
		}
		d, ok := m.nextSurfDegen(&iSurf)
		if !ok {
			m.geo.fineRat = append(m.geo.fineRat, -1)
			continue
		}
		if d.Shape == degen.WingSurf {
			m.geo.fineRat = append(m.geo.fineRat, stickMax(d, func(s *degen.Stick) []float64 { return s.Toc }))
		} else {
			dia := 2. * math.Sqrt(stickMax(d, func(s *degen.Stick) []float64 { return s.SectArea })/math.Pi)
			m.geo.fineRat = append(m.geo.fineRat, dia/m.geo.lref[i])
		}
	}
}

func stickMax(d *degen.DegenGeom, sel func(*degen.Stick) []float64) float64 {
	if len(d.Sticks) == 0 {
		return 0
	}
	vv := sel(&d.Sticks[0])
	if len(vv) == 0 {
		return 0
	}
	return maxOf(vv)
}

// calcAvgSweep reduces the first stick to area weighted quarter and half
// chord sweeps, in radians.
func (m *Manager) calcAvgSweep(s *degen.Stick) {
	n := len(s.AreaTop)
	if n == 0 || len(s.PerimTop) < n+1 || len(s.Chord) < n+1 || len(s.SweepLE) < n {
		m.sweep25, m.sweep50 = 0, 0
		return
	}
	weighted25, weighted50, totalArea := 0., 0., 0.
	for j := 0; j < n; j++ {
		width := s.AreaTop[j] / ((s.PerimTop[j] + s.PerimTop[j+1]) / 2.)
		tanLE := math.Tan(s.SweepLE[j] * math.Pi / 180.)
		taper := (s.Chord[j] - s.Chord[j+1]) / width
		sec25 := math.Atan(tanLE+0.25*taper) * 180. / math.Pi
		sec50 := math.Atan(tanLE+0.50*taper) * 180. / math.Pi
		secArea := s.Chord[j] * width
		weighted25 += secArea * sec25
		weighted50 += secArea * sec50
		totalArea += secArea
	}
	m.sweep25 = weighted25 / totalArea * math.Pi / 180.
	m.sweep50 = weighted50 / totalArea * math.Pi / 180.
}
