package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/calib"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/paradrag"
)

const (
	mdlFP = "samples/transport.json"
	atmFP = "samples/stdatm.json"
	obsFP = "samples/flighttest.json"

	outFP = "calibrated.csv"

	nComplx = 32
)

func main() {
	tt := mmio.NewTimer()
	defer tt.Print("calibration complete")

	// load data
	mdl, err := degen.LoadModel(mdlFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	atm, err := atmos.LoadTable(atmFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	obs, err := calib.LoadObservations(obsFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" %d geometries, %d flight test points\n", len(mdl.Geoms), len(obs))

	pd := paradrag.New(mdl, atm)
	pd.RefFlag = paradrag.RefComponent
	pd.RefGeomID = "WING"

	fmt.Println(" optimizing..")
	fit, err := calib.FitPercLamQ(pd, mdl, obs, nComplx)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\nfinal parameters:\n\tpercent laminar:\t%.3f\n\tinterference factor:\t%.4f\n\tRMSE:\t%.3e\n\n", fit.PercLam, fit.Q, fit.Score)

	// fitted-vs-observed comparison
	sim, err := calib.Simulate(pd, mdl, obs, fit.PercLam, fit.Q)
	if err != nil {
		log.Fatalf("%v", err)
	}
	ih, iv, io, is := make([]interface{}, len(obs)), make([]interface{}, len(obs)), make([]interface{}, len(obs)), make([]interface{}, len(obs))
	for i := range obs {
		ih[i] = obs[i].Hinf
		iv[i] = obs[i].Vinf
		io[i] = obs[i].CD
		is[i] = sim[i]
	}
	mmio.WriteCSV(outFP, "hinf,vinf,obs,sim", ih, iv, io, is)
}
