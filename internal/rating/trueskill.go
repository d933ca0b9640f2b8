package rating

import "math"

// chain is the factor graph for a strict ranking of one-player teams.
// Performance variables are linked pairwise by difference variables, each
// truncated so the better placed player outperforms the next one.
type chain struct {
	margin float64

	likelihood []gaussian // prior performance per player
	toFirst    []gaussian // sum factor k to performance k
	toSecond   []gaussian // sum factor k to performance k+1
	fromSum    []gaussian // sum factor k to difference k
	fromTrunc  []gaussian // truncation factor k to difference k
}

func newChain(likelihood []gaussian, margin float64) *chain {
	m := len(likelihood) - 1
	return &chain{
		margin:     margin,
		likelihood: likelihood,
		toFirst:    make([]gaussian, m),
		toSecond:   make([]gaussian, m),
		fromSum:    make([]gaussian, m),
		fromTrunc:  make([]gaussian, m),
	}
}

func (c *chain) links() int {
	return len(c.fromSum)
}

func (c *chain) perfMarginal(i int) gaussian {
	g := c.likelihood[i]
	if i < c.links() {
		g = g.mul(c.toFirst[i])
	}
	if i > 0 {
		g = g.mul(c.toSecond[i-1])
	}
	return g
}

func addMoments(a, b gaussian) gaussian {
	return fromMeanVariance(a.mu()+b.mu(), a.variance()+b.variance())
}

func subMoments(a, b gaussian) gaussian {
	return fromMeanVariance(a.mu()-b.mu(), a.variance()+b.variance())
}

// down sends the difference of the two performances to difference k.
func (c *chain) down(k int) {
	a := c.perfMarginal(k).div(c.toFirst[k])
	b := c.perfMarginal(k + 1).div(c.toSecond[k])
	c.fromSum[k] = subMoments(a, b)
}

// truncate applies the win constraint to difference k and returns how far
// its marginal moved.
func (c *chain) truncate(k int) float64 {
	cavity := c.fromSum[k]
	old := cavity.mul(c.fromTrunc[k])

	sqrtPi := math.Sqrt(cavity.pi)
	t := cavity.tau / sqrtPi
	m := c.margin * sqrtPi
	v := vWin(t, m)
	w := wWin(t, m)

	updated := gaussian{
		pi:  cavity.pi / (1 - w),
		tau: (cavity.tau + sqrtPi*v) / (1 - w),
	}
	c.fromTrunc[k] = updated.div(cavity)
	return distance(old, updated)
}

// upFirst sends performance k = difference k + performance k+1.
func (c *chain) upFirst(k int) {
	b := c.perfMarginal(k + 1).div(c.toSecond[k])
	c.toFirst[k] = addMoments(c.fromTrunc[k], b)
}

// upSecond sends performance k+1 = performance k - difference k.
func (c *chain) upSecond(k int) {
	a := c.perfMarginal(k).div(c.toFirst[k])
	c.toSecond[k] = subMoments(a, c.fromTrunc[k])
}

func (c *chain) run(maxIterations int, minDelta float64) {
	m := c.links()
	if m == 1 {
		c.down(0)
		c.truncate(0)
	} else {
		for iter := 0; iter < maxIterations; iter++ {
			delta := 0.0
			for k := 0; k < m-1; k++ {
				c.down(k)
				delta = math.Max(delta, c.truncate(k))
				c.upSecond(k)
			}
			for k := m - 1; k > 0; k-- {
				c.down(k)
				delta = math.Max(delta, c.truncate(k))
				c.upFirst(k)
			}
			if delta <= minDelta {
				break
			}
		}
	}
	c.upFirst(0)
	c.upSecond(m - 1)
}
