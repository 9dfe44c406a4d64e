package pricing

import (
	"fmt"
	"time"

	"github.com/DavidYu75/black-scholes/src/heatmap"
)

// Grid size bounds mirror the calculator's request schema.
const (
	MinGridSize     = 5
	MaxGridSize     = 20
	DefaultGridSize = 10
)

// SurfaceRequest describes one heatmap dataset: a base valuation plus the
// spot and volatility ranges to sweep. GridSize is the number of steps per
// axis; zero selects the default.
type SurfaceRequest struct {
	Base     Params
	SpotMin  float64
	SpotMax  float64
	VolMin   float64
	VolMax   float64
	GridSize int
}

// Validate checks the ranges; the base params are validated with the sweep
// axes excluded since spot and volatility come from the ranges.
func (r SurfaceRequest) Validate() error {
	base := r.Base
	base.Spot = r.SpotMin
	base.Volatility = r.VolMin
	if r.SpotMin <= 0 || r.SpotMax <= r.SpotMin {
		return fmt.Errorf("pricing: spot range [%v, %v] invalid", r.SpotMin, r.SpotMax)
	}
	if r.VolMin <= 0 || r.VolMax <= r.VolMin || r.VolMax > 5 {
		return fmt.Errorf("pricing: volatility range [%v, %v] invalid", r.VolMin, r.VolMax)
	}
	if err := base.Validate(); err != nil {
		return err
	}
	return nil
}

// clampGridSize applies the schema bounds, defaulting when unset.
func clampGridSize(n int) int {
	if n == 0 {
		return DefaultGridSize
	}
	if n < MinGridSize {
		return MinGridSize
	}
	if n > MaxGridSize {
		return MaxGridSize
	}
	return n
}

// linspace returns n evenly spaced values from lo to hi inclusive; strictly
// increasing whenever hi > lo.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Surface prices both option series over the requested spot x volatility
// grid. Row i of each grid corresponds to VolatilityValues[i] and column j
// to SpotValues[j], matching the heatmap engine's storage convention.
func Surface(req SurfaceRequest) (*heatmap.Dataset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	n := clampGridSize(req.GridSize)
	defer TimeTrack(time.Now(), fmt.Sprintf("surface %dx%d", n, n))

	spots := linspace(req.SpotMin, req.SpotMax, n)
	vols := linspace(req.VolMin, req.VolMax, n)

	call := make(heatmap.Grid, n)
	put := make(heatmap.Grid, n)
	for i, vol := range vols {
		call[i] = make([]float64, n)
		put[i] = make([]float64, n)
		for j, spot := range spots {
			p := req.Base
			p.Spot = spot
			p.Volatility = vol
			q := Price(p)
			call[i][j] = q.CallPrice
			put[i][j] = q.PutPrice
		}
	}
	Debugf("surface generated: strike=%v maturity=%v rate=%v grid=%d", req.Base.Strike, req.Base.Maturity, req.Base.Rate, n)
	return &heatmap.Dataset{
		Call:             call,
		Put:              put,
		SpotValues:       spots,
		VolatilityValues: vols,
	}, nil
}
