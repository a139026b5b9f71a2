package paradrag

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExcresSetting is the persisted form of one excrescence ledger entry. The
// resolved drag amount follows from Input once the buildup is recomputed.
type ExcresSetting struct {
	Label string
	Type  int
	Input float64
}

// Settings carries every user choice needed to reproduce a buildup against
// the same vehicle: geometry set, reference, flow condition, units, friction
// laws, and the excrescence ledger.
type Settings struct {
	SetChoice int
	SortBy    int

	RefFlag   int
	RefGeomID string
	Sref      float64

	FreestreamType    int
	Vinf              float64
	Hinf              float64
	DeltaT            float64
	Temp              float64
	Pres              float64
	Rho               float64
	SpecificHeatRatio float64
	Mach              float64
	ReqL              float64

	AltLengthUnit int
	LengthUnit    int
	TempUnit      int
	PresUnit      int
	VinfUnitType  int

	LamCfEqnType  int
	TurbCfEqnType int

	FileName string

	Excres []ExcresSetting
}

// CollectSettings snapshots the manager state for persistence.
func (m *Manager) CollectSettings() *Settings {
	s := &Settings{
		SetChoice:         m.SetChoice,
		SortBy:            m.SortBy,
		RefFlag:           m.RefFlag,
		RefGeomID:         m.RefGeomID,
		Sref:              m.Sref,
		FreestreamType:    m.FreestreamType,
		Vinf:              m.Vinf,
		Hinf:              m.Hinf,
		DeltaT:            m.DeltaT,
		Temp:              m.Temp,
		Pres:              m.Pres,
		Rho:               m.Rho,
		SpecificHeatRatio: m.SpecificHeatRatio,
		Mach:              m.Mach,
		ReqL:              m.ReqL,
		AltLengthUnit:     m.AltLengthUnit,
		LengthUnit:        m.LengthUnit,
		TempUnit:          m.TempUnit,
		PresUnit:          m.PresUnit,
		VinfUnitType:      m.VinfUnitType,
		LamCfEqnType:      m.LamCfEqnType,
		TurbCfEqnType:     m.TurbCfEqnType,
		FileName:          m.FileName,
	}
	for i := range m.excres {
		s.Excres = append(s.Excres, ExcresSetting{m.excres[i].Label, m.excres[i].Type, m.excres[i].Input})
	}
	return s
}

// ApplySettings restores a snapshot. Stored values are already in the stored
// units so they assign directly, skipping the conversion setters. The
// excrescence ledger is rebuilt entry by entry.
func (m *Manager) ApplySettings(s *Settings) error {
	m.SetChoice = s.SetChoice
	m.SortBy = s.SortBy
	m.RefFlag = s.RefFlag
	m.RefGeomID = s.RefGeomID
	m.Sref = s.Sref
	m.FreestreamType = s.FreestreamType
	m.Vinf = s.Vinf
	m.Hinf = s.Hinf
	m.DeltaT = s.DeltaT
	m.Temp = s.Temp
	m.Pres = s.Pres
	m.Rho = s.Rho
	m.SpecificHeatRatio = s.SpecificHeatRatio
	m.Mach = s.Mach
	m.ReqL = s.ReqL
	m.AltLengthUnit = s.AltLengthUnit
	m.LengthUnit = s.LengthUnit
	m.TempUnit = s.TempUnit
	m.PresUnit = s.PresUnit
	m.VinfUnitType = s.VinfUnitType
	m.LamCfEqnType = s.LamCfEqnType
	m.TurbCfEqnType = s.TurbCfEqnType
	if s.FileName != "" {
		m.FileName = s.FileName
	}

	m.excres = nil
	m.CurrentExcresIndex = -1
	for _, e := range s.Excres {
		if err := m.AddExcrescence(e.Label, e.Type, e.Input); err != nil {
			return fmt.Errorf(" paradrag.ApplySettings %v", err)
		}
	}
	if err := m.Update(); err != nil {
		return fmt.Errorf(" paradrag.ApplySettings %v", err)
	}
	return nil
}

// SaveSettings writes the snapshot as indented JSON.
func (m *Manager) SaveSettings(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" paradrag.SaveSettings %v", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.CollectSettings()); err != nil {
		return fmt.Errorf(" paradrag.SaveSettings %v", err)
	}
	return nil
}

// LoadSettings reads a snapshot from file and applies it.
func (m *Manager) LoadSettings(fp string) error {
	f, err := os.Open(fp)
	if err != nil {
		return fmt.Errorf(" paradrag.LoadSettings %v", err)
	}
	defer f.Close()
	var s Settings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return fmt.Errorf(" paradrag.LoadSettings %v", err)
	}
	if err := m.ApplySettings(&s); err != nil {
		return fmt.Errorf(" paradrag.LoadSettings %v", err)
	}
	return nil
}
