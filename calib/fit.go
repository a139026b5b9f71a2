package calib

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/mmaths"

	"github.com/sagpant/OpenVSP/degen"
	"github.com/sagpant/OpenVSP/paradrag"
)

// search ranges
const (
	minPercLam, maxPercLam = 0., 50. // percent chord
	minQ, maxQ             = 0.8, 1.3
)

// Fit is a completed parameter search. A negative value marks a parameter the
// search left alone.
type Fit struct {
	PercLam, Q, Score float64
}

// FitPercLam searches the percent laminar fraction alone, holding the model's
// interference factors. The manager is left computed at the fitted value.
func FitPercLam(pd *paradrag.Manager, mdl *degen.Model, obs []Observation) (Fit, error) {
	if _, err := Simulate(pd, mdl, obs, minPercLam, -1.); err != nil {
		return Fit{}, fmt.Errorf(" calib.FitPercLam %v", err)
	}
	gen := func(u float64) float64 {
		sim, err := Simulate(pd, mdl, obs, mmaths.LinearTransform(minPercLam, maxPercLam, u), -1.)
		if err != nil {
			return math.MaxFloat64
		}
		return Score(obs, sim)
	}
	uFib, _ := glbopt.Fibonacci(gen)

	percLam := mmaths.LinearTransform(minPercLam, maxPercLam, uFib)
	sim, err := Simulate(pd, mdl, obs, percLam, -1.)
	if err != nil {
		return Fit{}, fmt.Errorf(" calib.FitPercLam %v", err)
	}
	return Fit{PercLam: percLam, Q: -1., Score: Score(obs, sim)}, nil
}

// FitPercLamQ searches the percent laminar fraction and a fleet interference
// factor together. nComplx sizes the shuffled complex evolution search; the
// manager is left computed at the fitted values.
func FitPercLamQ(pd *paradrag.Manager, mdl *degen.Model, obs []Observation, nComplx int) (Fit, error) {
	if _, err := Simulate(pd, mdl, obs, minPercLam, 1.); err != nil {
		return Fit{}, fmt.Errorf(" calib.FitPercLamQ %v", err)
	}
	par2 := func(u []float64) (float64, float64) {
		return mmaths.LinearTransform(minPercLam, maxPercLam, u[0]),
			mmaths.LinearTransform(minQ, maxQ, u[1])
	}
	gen := func(u []float64) float64 {
		percLam, q := par2(u)
		sim, err := Simulate(pd, mdl, obs, percLam, q)
		if err != nil {
			return math.MaxFloat64
		}
		return Score(obs, sim)
	}
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	uFinal, _ := glbopt.SCE(nComplx, 2, rng, gen, true)

	percLam, q := par2(uFinal)
	sim, err := Simulate(pd, mdl, obs, percLam, q)
	if err != nil {
		return Fit{}, fmt.Errorf(" calib.FitPercLamQ %v", err)
	}
	return Fit{PercLam: percLam, Q: q, Score: Score(obs, sim)}, nil
}
