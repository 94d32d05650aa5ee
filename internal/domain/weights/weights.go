// Package weights derives per-curator, per-outcome vote weights from review
// stats. A curator who approves more than the population average has their
// approvals discounted and their rejections amplified, and symmetrically for
// under-approvers, so that individual tendency does not skew the ranking.
package weights

import (
	"math"

	"github.com/Public-Shorts/curation/internal/domain/stats"
)

// Weight calculation constants.
const (
	// multiplierFloor keeps extreme deviations from erasing or inverting a
	// curator's influence.
	multiplierFloor = 0.1
	// neutralApprovalRate is the population-average prior when nobody has
	// reviewed anything yet.
	neutralApprovalRate = 0.5
)

// Weights holds a curator's multipliers per review outcome.
type Weights struct {
	Selected float64
	Maybe    float64
	Rejected float64
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithVolumeExponent scales the logarithmic volume component.
func WithVolumeExponent(exp float64) Option {
	return func(c *Calculator) {
		c.volumeExponent = exp
	}
}

// WithTendencyPenalty scales how hard deviation from the population average
// is corrected.
func WithTendencyPenalty(penalty float64) Option {
	return func(c *Calculator) {
		c.tendencyPenalty = penalty
	}
}

// WithSymmetricTendency switches to the legacy symmetric variant: a single
// multiplier max(0.1, 1-(rate-0.5)^2*penalty) applied to all three outcomes.
// Deprecated compatibility mode; the asymmetric correction is canonical.
func WithSymmetricTendency() Option {
	return func(c *Calculator) {
		c.symmetric = true
	}
}

// Calculator computes per-curator weights.
type Calculator struct {
	volumeExponent  float64
	tendencyPenalty float64
	symmetric       bool
}

// NewCalculator creates a Calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		volumeExponent:  1,
		tendencyPenalty: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AverageApprovalRate is the population-wide approval rate: total approvals
// over total reviews across all curators. Falls back to 0.5 when no reviews
// exist, so no correction is applied.
func AverageApprovalRate(statsMap map[string]stats.Stats) float64 {
	var approved, total int
	for _, s := range statsMap {
		approved += s.ApprovedCount
		total += s.TotalReviews
	}
	if total == 0 {
		return neutralApprovalRate
	}
	return float64(approved) / float64(total)
}

// Calculate derives weights for every curator in statsMap.
//
// baseWeight grows logarithmically with review volume: log10(n+1) rewards
// experience without letting prolific curators dominate linearly, and the +1
// keeps the zero-review case finite. The deviation multipliers use the
// population average as the reference point, not the curator's own rate.
func (c *Calculator) Calculate(statsMap map[string]stats.Stats) map[string]Weights {
	avgRate := AverageApprovalRate(statsMap)
	out := make(map[string]Weights, len(statsMap))

	for id, s := range statsMap {
		baseWeight := math.Log10(float64(s.TotalReviews)+1) * c.volumeExponent

		if c.symmetric {
			deviation := math.Pow(s.ApprovalRate-neutralApprovalRate, 2)
			tendency := math.Max(multiplierFloor, 1-deviation*c.tendencyPenalty)
			w := baseWeight * tendency
			out[id] = Weights{Selected: w, Maybe: w, Rejected: w}
			continue
		}

		deviation := s.ApprovalRate - avgRate
		selectedMultiplier := math.Max(multiplierFloor, 1-deviation*c.tendencyPenalty)
		rejectedMultiplier := math.Max(multiplierFloor, 1+deviation*c.tendencyPenalty)

		out[id] = Weights{
			Selected: baseWeight * selectedMultiplier,
			Maybe:    baseWeight,
			Rejected: baseWeight * rejectedMultiplier,
		}
	}
	return out
}
