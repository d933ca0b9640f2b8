package rating

import "math"

// gaussian is a normal distribution in natural parameters: precision pi
// and precision-adjusted mean tau. The zero value is the uniform distribution.
type gaussian struct {
	pi  float64
	tau float64
}

func fromMeanVariance(mu, variance float64) gaussian {
	if math.IsInf(variance, 1) {
		return gaussian{}
	}
	pi := 1 / variance
	return gaussian{pi: pi, tau: pi * mu}
}

func (g gaussian) mu() float64 {
	if g.pi == 0 {
		return 0
	}
	return g.tau / g.pi
}

func (g gaussian) variance() float64 {
	if g.pi == 0 {
		return math.Inf(1)
	}
	return 1 / g.pi
}

func (g gaussian) mul(o gaussian) gaussian {
	return gaussian{pi: g.pi + o.pi, tau: g.tau + o.tau}
}

func (g gaussian) div(o gaussian) gaussian {
	return gaussian{pi: g.pi - o.pi, tau: g.tau - o.tau}
}

func distance(a, b gaussian) float64 {
	return math.Max(math.Abs(a.tau-b.tau), math.Sqrt(math.Abs(a.pi-b.pi)))
}

func pdf(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func cdf(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// smallest cdf value before the ratio pdf/cdf loses all precision
const cdfFloor = 2.222758749e-162

// vWin is the additive mean correction of a win truncated at margin.
func vWin(t, margin float64) float64 {
	x := t - margin
	denom := cdf(x)
	if denom < cdfFloor {
		return -x
	}
	return pdf(x) / denom
}

// wWin is the multiplicative variance correction of a win truncated at margin.
func wWin(t, margin float64) float64 {
	x := t - margin
	denom := cdf(x)
	if denom < cdfFloor {
		if x < 0 {
			return 1
		}
		return 0
	}
	v := vWin(t, margin)
	return v * (v + x)
}

// drawMargin converts a draw probability into a performance margin for n players.
func drawMargin(drawProbability, beta float64, n int) float64 {
	if drawProbability <= 0 {
		return 0
	}
	return inverseCDF((drawProbability+1)/2) * math.Sqrt(float64(n)) * beta
}

func inverseCDF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
