package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gosuri/uiprogress"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"

	"github.com/sagpant/OpenVSP/atmos"
	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/paradrag"
)

const (
	mdlFP = "samples/transport.json"
	atmFP = "samples/stdatm.json"
	outFP = "envelope.csv"

	alt0, alt1, nAlt    = 0., 40000., 9  // ft
	vinf0, vinf1, nVinf = 200., 800., 13 // ft/s

	// latin hypercube draws per grid point; 0 runs nominal inputs only
	nsmpl = 30

	// uncertainty ranges sampled over the drag inputs
	minPercLam, maxPercLam     = 0., 15.     // percent chord
	minRoughness, maxRoughness = 1e-5, 0.001 // equivalent sand grain, ft
)

func main() {
	tt := mmio.NewTimer()
	defer tt.Print("envelope sweep complete")

	mdl, err := degen.LoadModel(mdlFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	atm, err := atmos.LoadTable(atmFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	pd := paradrag.New(mdl, atm)
	pd.RefFlag = paradrag.RefComponent
	pd.RefGeomID = "WING"
	pd.TurbCfEqnType = paradrag.CfTurbRoughnessSchlichtingAvgFlowCorrection

	compute := func(alt, vinf float64) float64 {
		pd.Hinf = alt
		pd.Vinf = vinf
		if err := pd.ComputeAll(); err != nil {
			log.Fatalf("%v", err)
		}
		return pd.TotalCD()
	}

	// nominal inputs, restored after every sampled recompute
	nomLam, nomRough := make([]float64, len(mdl.Geoms)), make([]float64, len(mdl.Geoms))
	for i, g := range mdl.Geoms {
		nomLam[i], nomRough[i] = g.PercLam, g.Roughness
	}
	restore := func() {
		for i, g := range mdl.Geoms {
			g.PercLam, g.Roughness = nomLam[i], nomRough[i]
		}
	}

	// one sampling plan reused across the grid
	var usmpl [][]float64
	if nsmpl > 0 {
		rng := rand.New(mrg63k3a.New())
		rng.Seed(time.Now().UnixNano())
		sp := smpln.NewLHC(rng, nsmpl, 2, false)
		usmpl = make([][]float64, nsmpl)
		for k := 0; k < nsmpl; k++ {
			usmpl[k] = []float64{sp.U[0][k], sp.U[1][k]}
		}
	}

	csvw := mmio.NewCSVwriter(outFP)
	defer csvw.Close()
	if err := csvw.WriteHead("alt,vinf,cd,cdmin,cdmean,cdmax"); err != nil {
		log.Fatalf("%v", err)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(nAlt * nVinf).AppendCompleted().PrependElapsed()
	for i := 0; i < nAlt; i++ {
		alt := mmaths.LinearTransform(alt0, alt1, float64(i)/float64(nAlt-1))
		for j := 0; j < nVinf; j++ {
			vinf := mmaths.LinearTransform(vinf0, vinf1, float64(j)/float64(nVinf-1))
			cd := compute(alt, vinf)

			cdmin, cdmean, cdmax := cd, cd, cd
			if len(usmpl) > 0 {
				cdmin, cdmean, cdmax = cd, 0., cd
				for _, u := range usmpl {
					for _, g := range mdl.Geoms {
						g.PercLam = mmaths.LinearTransform(minPercLam, maxPercLam, u[0])
						g.Roughness = mmaths.LinearTransform(minRoughness, maxRoughness, u[1])
					}
					cdk := compute(alt, vinf)
					if cdk < cdmin {
						cdmin = cdk
					}
					if cdk > cdmax {
						cdmax = cdk
					}
					cdmean += cdk
				}
				cdmean /= float64(len(usmpl))
				restore()
			}

			csvw.WriteLine(alt, vinf, cd, cdmin, cdmean, cdmax)
			bar.Incr()
		}
	}
	uiprogress.Stop()
}
