package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/paradrag"
)

const (
	mdlFP = "samples/transport.json"
	atmFP = "samples/stdatm.json"

	csvFP = "buildup.csv"
	gobFP = "buildup.gob"

	alt  = 20000. // ft
	vinf = 500.   // ft/s
)

func main() {
	tt := mmio.NewTimer()
	defer tt.Print("drag buildup complete")

	// load data
	mdl, err := degen.LoadModel(mdlFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	atm, err := atmos.LoadTable(atmFP)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// compute
	pd := paradrag.New(mdl, atm)
	pd.Hinf = alt
	pd.Vinf = vinf
	pd.SortBy = paradrag.SortByWettedArea
	pd.RefFlag = paradrag.RefComponent
	pd.RefGeomID = "WING"
	pd.AddExcrescence("Cowl leakage", paradrag.ExcresCount, 8.)
	pd.AddExcrescence("Antennae and lights", paradrag.ExcresDragArea, 0.05)
	if err := pd.ComputeAll(); err != nil {
		log.Fatalf("%v", err)
	}
	for _, w := range pd.SolveWarnings() {
		fmt.Println(" warning:", w)
	}

	fmt.Printf(" %-24s %10s %12s %12s %10s %10s\n", "component", "swet", "Re", "Cf", "f", "CD")
	for _, r := range pd.Rows() {
		fmt.Printf(" %-24s %10.2f %12.3e %12.5e %10.5f %10.6f\n", r.Label, r.Swet, r.Re, r.Cf, r.F, r.CD)
	}
	fmt.Printf("\n geometry CD:    %.6f\n excrescence CD: %.6f\n total CD:       %.6f\n", pd.GeometryCD(), pd.TotalExcresCD(), pd.TotalCD())

	// save
	if err := pd.ExportToCSV(csvFP); err != nil {
		log.Fatalf("%v", err)
	}
	if err := pd.BuildResults().SaveGob(gobFP); err != nil {
		log.Fatalf("%v", err)
	}
}
