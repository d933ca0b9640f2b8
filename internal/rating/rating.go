// Package rating implements the league's TrueSkill skill update. Every
// participant is a one-player team and every placement is its own outcome
// tier, so no draws are modelled.
package rating

import (
	"errors"
	"fmt"
	"math"

	"github.com/KirkDiggler/ewar/internal/models"
)

const (
	// ProvisionalThreshold is the uncertainty above which a rating is provisional
	ProvisionalThreshold = 2.5

	// MinEffectiveUncertainty floors uncertainty during a game computation only
	MinEffectiveUncertainty = 0.8

	// LeaderboardScale converts rating units into leaderboard points
	LeaderboardScale = 10.0

	// machine epsilon for float64
	epsilon = 2.220446049250313e-16
)

// DefaultRating is assigned to newly enrolled players
var DefaultRating = models.Rating{Mean: 18.0, Uncertainty: 9.0}

// ErrNotEnoughParticipants is returned for placements with fewer than two players
var ErrNotEnoughParticipants = errors.New("a game needs at least two participants")

// Config holds the fixed TrueSkill parameters
type Config struct {
	// DrawProbability is the chance two players draw
	DrawProbability float64

	// Beta is the performance variance around skill
	Beta float64

	// Tau is the skill dynamics added before every game
	Tau float64

	// MinDelta stops message passing once updates become smaller
	MinDelta float64

	// MaxIterations bounds message passing for long placements
	MaxIterations int
}

// DefaultConfig is the league configuration
func DefaultConfig() *Config {
	return &Config{
		DrawProbability: 0,
		Beta:            2.0,
		Tau:             0.04,
		MinDelta:        0.0001,
		MaxIterations:   64,
	}
}

// Engine computes rating changes. It holds no mutable state.
type Engine struct {
	cfg Config
}

// New creates an engine. A nil config uses DefaultConfig.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.MaxIterations <= 0 {
		c.MaxIterations = 64
	}
	if c.MinDelta <= 0 {
		c.MinDelta = 0.0001
	}
	return &Engine{cfg: c}
}

// Default is the engine used by the league
var Default = New(nil)

// EffectiveUncertainty returns the uncertainty used during a computation
func EffectiveUncertainty(r models.Rating) float64 {
	return math.Max(r.Uncertainty, MinEffectiveUncertainty)
}

// ApplyGameOutcome returns new ratings for a placement ordered best to worst.
func (e *Engine) ApplyGameOutcome(placement []models.Rating) ([]models.Rating, error) {
	n := len(placement)
	if n < 2 {
		return nil, ErrNotEnoughParticipants
	}

	beta2 := e.cfg.Beta * e.cfg.Beta
	tau2 := e.cfg.Tau * e.cfg.Tau
	margin := drawMargin(e.cfg.DrawProbability, e.cfg.Beta, 2)

	priors := make([]gaussian, n)
	likelihoods := make([]gaussian, n)
	for i, r := range placement {
		sigma := EffectiveUncertainty(r)
		v := sigma*sigma + tau2
		priors[i] = fromMeanVariance(r.Mean, v)
		likelihoods[i] = fromMeanVariance(r.Mean, v+beta2)
	}

	g := newChain(likelihoods, margin)
	g.run(e.cfg.MaxIterations, e.cfg.MinDelta)

	out := make([]models.Rating, n)
	for i := range placement {
		perf := g.perfMarginal(i).div(likelihoods[i])
		up := fromMeanVariance(perf.mu(), perf.variance()+beta2)
		skill := priors[i].mul(up)
		out[i] = models.Rating{Mean: skill.mu(), Uncertainty: math.Sqrt(skill.variance())}
	}
	return out, nil
}

// ExpectedWinProbabilities returns each participant's chance of placing first.
// The result sums to one.
func (e *Engine) ExpectedWinProbabilities(ratings []models.Rating) []float64 {
	n := len(ratings)
	if n == 0 {
		return nil
	}
	beta2 := e.cfg.Beta * e.cfg.Beta

	probs := make([]float64, n)
	var total float64
	for i, a := range ratings {
		p := 1.0
		ua := EffectiveUncertainty(a)
		for j, b := range ratings {
			if i == j {
				continue
			}
			ub := EffectiveUncertainty(b)
			spread := math.Sqrt(float64(n)*beta2 + ua*ua + ub*ub)
			p *= cdf((a.Mean - b.Mean) / spread)
		}
		probs[i] = p
		total += p
	}
	if total == 0 {
		for i := range probs {
			probs[i] = 1 / float64(n)
		}
		return probs
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}

// ApplyGameOutcome uses the default engine
func ApplyGameOutcome(placement []models.Rating) ([]models.Rating, error) {
	return Default.ApplyGameOutcome(placement)
}

// ExpectedWinProbabilities uses the default engine
func ExpectedWinProbabilities(ratings []models.Rating) []float64 {
	return Default.ExpectedWinProbabilities(ratings)
}

// IsProvisional reports whether r is too uncertain to rank on its mean
func IsProvisional(r models.Rating) bool {
	return r.Uncertainty-ProvisionalThreshold > epsilon
}

// LeaderboardValue is the display ranking scalar. Provisional ratings use
// the conservative estimate mean minus uncertainty.
func LeaderboardValue(r models.Rating) float64 {
	if IsProvisional(r) {
		return LeaderboardScale * (r.Mean - r.Uncertainty)
	}
	return LeaderboardScale * r.Mean
}

// Format renders the leaderboard value, marking provisional ratings with "?"
func Format(r models.Rating) string {
	if IsProvisional(r) {
		return fmt.Sprintf("%.2f?", LeaderboardValue(r))
	}
	return fmt.Sprintf("%.2f", LeaderboardValue(r))
}
