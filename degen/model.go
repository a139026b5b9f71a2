package degen

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is an in-memory Vehicle backed by a json definition.
type Model struct {
	Sets  [][]string `json:"sets,omitempty"` // display sets by index; empty set means all geoms
	Geoms []*GeomDef `json:"geoms"`
}

// LoadModel reads a geometry model from a json file and applies working
// defaults to omitted inputs: Q and the wall temperature ratios default to 1,
// an omitted user form factor to -1 (compute instead).
func LoadModel(fp string) (*Model, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" degen.LoadModel %v", err)
	}
	var m Model
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf(" degen.LoadModel %v", err)
	}
	m.Normalize()
	return &m, nil
}

// Save writes the model definition to a json file.
func (m *Model) Save(fp string) error {
	b, err := json.MarshalIndent(m, "", " ")
	if err != nil {
		return fmt.Errorf(" degen.Model.Save %v", err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf(" degen.Model.Save %v", err)
	}
	return nil
}

// Normalize applies working defaults to zero-valued inputs.
func (m *Model) Normalize() {
	for _, g := range m.Geoms {
		if g.Q == 0 {
			g.Q = 1.
		}
		if g.FFUser == 0 {
			g.FFUser = -1.
		}
		if g.TeTwRatio == 0 {
			g.TeTwRatio = 1.
		}
		if g.TawTwRatio == 0 {
			g.TawTwRatio = 1.
		}
	}
}

func (m *Model) GeomSet(set int) []string {
	if set >= 0 && set < len(m.Sets) && len(m.Sets[set]) > 0 {
		return m.Sets[set]
	}
	ids := make([]string, len(m.Geoms))
	for i, g := range m.Geoms {
		ids[i] = g.ID
	}
	return ids
}

func (m *Model) FindGeom(id string) (*GeomDef, bool) {
	for _, g := range m.Geoms {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

func (m *Model) AncestorID(id string, gen int) string {
	g, ok := m.FindGeom(id)
	if !ok {
		return ""
	}
	for ; gen > 0; gen-- {
		if g.ParentID == "" {
			return ""
		}
		p, ok := m.FindGeom(g.ParentID)
		if !ok {
			return ""
		}
		g = p
	}
	return g.ID
}

func (m *Model) CreateDegenGeoms(set int) []DegenGeom {
	var dd []DegenGeom
	for _, id := range m.GeomSet(set) {
		g, ok := m.FindGeom(id)
		if !ok {
			continue
		}
		for _, s := range g.Surfs {
			dd = append(dd, DegenGeom{Shape: s.Shape, Sticks: []Stick{s.Stick}})
		}
	}
	return dd
}

func (m *Model) MeshWetAreas(set int) TagAreas {
	ta := make(TagAreas)
	for _, id := range m.GeomSet(set) {
		g, ok := m.FindGeom(id)
		if !ok {
			continue
		}
		for j, s := range g.Surfs {
			ta[fmt.Sprintf("%s%d", g.Name, j)] = s.WetArea
			for _, ss := range g.SubSurfs {
				if j < len(ss.WetAreas) {
					ta[fmt.Sprintf("%s%d,%s", g.Name, j, ss.Name)] = ss.WetAreas[j]
				}
			}
		}
	}
	return ta
}
