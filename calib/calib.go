// Package calib fits drag buildup parameters to drag coefficients observed
// over a set of flight conditions. The percent laminar fraction alone is
// found by Fibonacci search; percent laminar together with a fleet
// interference factor goes through a shuffled complex evolution search. Both
// minimize the root mean squared error between computed and observed total
// CD.
package calib

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maseology/objfunc"

	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/paradrag"
)

// Observation pairs one flight condition with a measured total drag
// coefficient. Altitude and speed are read in the manager's current units.
type Observation struct {
	Hinf float64 `json:"hinf"`
	Vinf float64 `json:"vinf"`
	CD   float64 `json:"cd"`
}

// LoadObservations reads flight test points from a json file.
func LoadObservations(fp string) ([]Observation, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" calib.LoadObservations %v", err)
	}
	defer f.Close()
	var obs []Observation
	if err := json.NewDecoder(f).Decode(&obs); err != nil {
		return nil, fmt.Errorf(" calib.LoadObservations %v", err)
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf(" calib.LoadObservations %s: no observations", fp)
	}
	for k, o := range obs {
		if o.CD <= 0 {
			return nil, fmt.Errorf(" calib.LoadObservations %s: point %d has no positive CD", fp, k)
		}
	}
	return obs, nil
}

// Simulate recomputes the buildup at every observed flight condition with
// trial parameter values, returning the computed total CD per point. A
// negative percent laminar or interference factor leaves the model's own
// values in place.
func Simulate(pd *paradrag.Manager, mdl *degen.Model, obs []Observation, percLam, q float64) ([]float64, error) {
	for i := range mdl.Geoms {
		if percLam >= 0 {
			mdl.Geoms[i].PercLam = percLam
		}
		if q > 0 {
			mdl.Geoms[i].Q = q
		}
	}
	sim := make([]float64, len(obs))
	for k, o := range obs {
		pd.Hinf = o.Hinf
		pd.Vinf = o.Vinf
		if err := pd.ComputeAll(); err != nil {
			return nil, fmt.Errorf(" calib.Simulate point %d %v", k, err)
		}
		sim[k] = pd.TotalCD()
	}
	return sim, nil
}

// Score is the root mean squared error of computed against observed CD.
func Score(obs []Observation, sim []float64) float64 {
	o := make([]float64, len(obs))
	for i := range obs {
		o[i] = obs[i].CD
	}
	return objfunc.RMSE(o, sim)
}
