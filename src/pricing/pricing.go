// Package pricing computes Black-Scholes option prices and generates the
// spot x volatility surfaces the heatmap engine displays.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// Params are the inputs to one Black-Scholes valuation.
type Params struct {
	Spot          float64 // current asset price
	Strike        float64 // option strike price
	Maturity      float64 // time to maturity in years
	Volatility    float64 // annualized volatility
	Rate          float64 // risk-free interest rate
	DividendYield float64 // annual dividend yield as a decimal
}

// Validate applies the same bounds the calculator's request schema enforces.
func (p Params) Validate() error {
	switch {
	case p.Spot <= 0:
		return errors.New("pricing: spot must be positive")
	case p.Strike <= 0:
		return errors.New("pricing: strike must be positive")
	case p.Maturity <= 0:
		return errors.New("pricing: maturity must be positive")
	case p.Volatility <= 0 || p.Volatility > 5:
		return fmt.Errorf("pricing: volatility %v out of (0, 5]", p.Volatility)
	case p.Rate < 0 || p.Rate > 1:
		return fmt.Errorf("pricing: rate %v out of [0, 1]", p.Rate)
	case p.DividendYield < 0 || p.DividendYield > 1:
		return fmt.Errorf("pricing: dividend yield %v out of [0, 1]", p.DividendYield)
	}
	return nil
}

// Quote holds both option prices and the Greeks the calculator reports.
type Quote struct {
	CallPrice float64
	PutPrice  float64
	CallDelta float64
	PutDelta  float64
	Gamma     float64
}

// normCDF is the cumulative distribution function of the standard normal.
// P(X <= x) = 0.5 * (1 + erf(x / sqrt(2)))
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// Price values a European call and put under Black-Scholes with a continuous
// dividend yield. Degenerate inputs collapse to intrinsic value instead of
// producing NaNs: at expiry the option is worth its payoff, and at zero
// volatility the discounted forward intrinsic.
func Price(p Params) Quote {
	if p.Maturity <= 0 {
		return Quote{
			CallPrice: math.Max(0, p.Spot-p.Strike),
			PutPrice:  math.Max(0, p.Strike-p.Spot),
		}
	}
	discQ := math.Exp(-p.DividendYield * p.Maturity)
	discR := math.Exp(-p.Rate * p.Maturity)
	if p.Volatility <= 0 {
		fwd := p.Spot*discQ - p.Strike*discR
		return Quote{
			CallPrice: math.Max(0, fwd),
			PutPrice:  math.Max(0, -fwd),
		}
	}

	sqrtT := math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate-p.DividendYield+0.5*p.Volatility*p.Volatility)*p.Maturity) / (p.Volatility * sqrtT)
	d2 := d1 - p.Volatility*sqrtT

	call := p.Spot*discQ*normCDF(d1) - p.Strike*discR*normCDF(d2)
	put := p.Strike*discR*normCDF(-d2) - p.Spot*discQ*normCDF(-d1)

	return Quote{
		CallPrice: call,
		PutPrice:  put,
		CallDelta: discQ * normCDF(d1),
		PutDelta:  discQ * (normCDF(d1) - 1),
		Gamma:     discQ * normPDF(d1) / (p.Spot * p.Volatility * sqrtT),
	}
}
