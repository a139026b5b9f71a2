package paradrag

import (
	"fmt"

	"github.com/sagpant/OpenVSP/degen"
)

// loadRowInputs fills the input columns from the active geometry records.
// Each surface instance gets a row; symmetric copies of the same shape
// collapse under the first instance's label with a _<n> suffix. Custom
// geometries label every instance with a [B] or [W] shape marker so their
// mixed surfaces stay distinguishable. Every sub-surface then adds one row
// per surface instance.
func (m *Manager) loadRowInputs() {
	for _, id := range m.geomIDs {
		g, ok := m.veh.FindGeom(id)
		if !ok {
			continue
		}
		for j, s := range g.Surfs {
			if s.Shape == degen.DiskSurf {
				continue
			}
			primary := j == 0 || s.Shape != g.Surfs[j-1].Shape
			switch {
			case !primary:
				m.geo.label = append(m.geo.label, fmt.Sprintf("%s_%d", g.Name, j))
				m.geo.surfNum = append(m.geo.surfNum, j)
				m.geo.expandedList = append(m.geo.expandedList, false)
			case g.Custom:
				m.geo.label = append(m.geo.label, shapeMarker(s.Shape)+" "+g.Name)
				m.geo.surfNum = append(m.geo.surfNum, j)
				m.geo.expandedList = append(m.geo.expandedList, g.ExpandedList)
			default:
				m.geo.label = append(m.geo.label, g.Name)
				m.geo.surfNum = append(m.geo.surfNum, 0)
				m.geo.expandedList = append(m.geo.expandedList, g.ExpandedList)
			}
			m.pushRowInputs(g, s.Shape, g.GroupedAncestorGen, "")
		}
		for _, ss := range g.SubSurfs {
			for k, s := range g.Surfs {
				if s.Shape == degen.DiskSurf {
					continue
				}
				// TODO: sub-surfaces inherit the parent's laminar fraction
				// and interference factor; per-sub-surface overrides would
				// need their own fields on SubSurfDef.
				m.geo.label = append(m.geo.label, fmt.Sprintf("[ss] %s_%d", ss.Name, k))
				m.geo.surfNum = append(m.geo.surfNum, k)
				m.geo.expandedList = append(m.geo.expandedList, false)
				m.pushRowInputs(g, s.Shape, -1, ss.ID)
			}
		}
	}
}

// pushRowInputs appends the per-geometry drag inputs shared by every row
// variant.
func (m *Manager) pushRowInputs(g *degen.GeomDef, shape, ancestorGen int, subsurfID string) {
	m.geo.geomID = append(m.geo.geomID, g.ID)
	m.geo.subsurfID = append(m.geo.subsurfID, subsurfID)
	m.geo.percLam = append(m.geo.percLam, g.PercLam)
	m.geo.ffIn = append(m.geo.ffIn, g.FFUser)
	m.geo.q = append(m.geo.q, g.Q)
	m.geo.roughness = append(m.geo.roughness, g.Roughness)
	m.geo.teTw = append(m.geo.teTw, g.TeTwRatio)
	m.geo.tawTw = append(m.geo.tawTw, g.TawTwRatio)
	m.geo.shapeType = append(m.geo.shapeType, shape)
	m.geo.ancestorGen = append(m.geo.ancestorGen, ancestorGen)
	if shape == degen.BodySurf {
		m.geo.ffType = append(m.geo.ffType, g.FFBodyEqn)
	} else {
		m.geo.ffType = append(m.geo.ffType, g.FFWingEqn)
	}
}

func shapeMarker(shape int) string {
	if shape == degen.BodySurf {
		return "[B]"
	}
	return "[W]"
}

func findSubSurf(g *degen.GeomDef, id string) (*degen.SubSurfDef, bool) {
	for i := range g.SubSurfs {
		if g.SubSurfs[i].ID == id {
			return &g.SubSurfs[i], true
		}
	}
	return nil, false
}

func last(vv []float64) float64 { return vv[len(vv)-1] }
