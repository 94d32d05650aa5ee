package weights_test

import (
	"math"
	"testing"

	"github.com/Public-Shorts/curation/internal/domain/stats"
	"github.com/Public-Shorts/curation/internal/domain/weights"
	. "github.com/smartystreets/goconvey/convey"
)

func curatorStats(total, approved int) stats.Stats {
	s := stats.Stats{TotalReviews: total, ApprovedCount: approved}
	if total > 0 {
		s.ApprovalRate = float64(approved) / float64(total)
	}
	return s
}

func TestAverageApprovalRate(t *testing.T) {
	Convey("Given curator stats", t, func() {
		Convey("Then the average is population-wide, not per-curator", func() {
			statsMap := map[string]stats.Stats{
				"a": curatorStats(30, 30),
				"b": curatorStats(10, 0),
			}
			// 30/40, not (1.0+0.0)/2.
			So(weights.AverageApprovalRate(statsMap), ShouldEqual, 0.75)
		})

		Convey("Then zero total reviews falls back to the neutral prior", func() {
			So(weights.AverageApprovalRate(nil), ShouldEqual, 0.5)
			So(weights.AverageApprovalRate(map[string]stats.Stats{"a": {}}), ShouldEqual, 0.5)
		})
	})
}

func TestCalculate(t *testing.T) {
	Convey("Given the reference three-curator population", t, func() {
		// A approves 8/10, B 2/10, C 5/10; population average 0.5.
		statsMap := map[string]stats.Stats{
			"a": curatorStats(10, 8),
			"b": curatorStats(10, 2),
			"c": curatorStats(10, 5),
		}
		calc := weights.NewCalculator(
			weights.WithVolumeExponent(1),
			weights.WithTendencyPenalty(2),
		)

		Convey("When calculating weights", func() {
			out := calc.Calculate(statsMap)
			base := math.Log10(11)

			Convey("Then the base weight is log10(totalReviews+1)", func() {
				So(out["c"].Maybe, ShouldAlmostEqual, base)
				So(base, ShouldAlmostEqual, 1.0413, 0.0001)
			})

			Convey("Then the over-approver's approvals are discounted and rejections amplified", func() {
				So(out["a"].Selected, ShouldAlmostEqual, base*0.4)
				So(out["a"].Rejected, ShouldAlmostEqual, base*1.6)
			})

			Convey("Then the under-approver is corrected symmetrically", func() {
				So(out["b"].Selected, ShouldAlmostEqual, base*1.6)
				So(out["b"].Rejected, ShouldAlmostEqual, base*0.4)
			})

			Convey("Then the neutral curator is uncorrected", func() {
				So(out["c"].Selected, ShouldAlmostEqual, base)
				So(out["c"].Rejected, ShouldAlmostEqual, base)
			})

			Convey("Then maybe weights stay at the base weight", func() {
				for _, w := range out {
					So(w.Maybe, ShouldAlmostEqual, base)
				}
			})
		})
	})

	Convey("Given an extreme deviation", t, func() {
		// One curator approves everything against a population average
		// pulled down by a heavy rejecter.
		statsMap := map[string]stats.Stats{
			"approver": curatorStats(100, 100),
			"rejecter": curatorStats(900, 0),
		}
		calc := weights.NewCalculator(weights.WithTendencyPenalty(2))

		Convey("Then multipliers never drop below the floor", func() {
			out := calc.Calculate(statsMap)
			base := math.Log10(101)
			// deviation 0.9, 1-0.9*2 = -0.8, floored at 0.1.
			So(out["approver"].Selected, ShouldAlmostEqual, base*0.1)
			So(out["approver"].Selected, ShouldBeGreaterThan, 0)
			So(out["approver"].Rejected, ShouldAlmostEqual, base*2.8)
		})
	})

	Convey("Given a population where everyone matches the average", t, func() {
		statsMap := map[string]stats.Stats{
			"a": curatorStats(10, 5),
			"b": curatorStats(40, 20),
		}

		Convey("Then all multipliers are exactly 1", func() {
			out := weights.NewCalculator().Calculate(statsMap)
			So(out["a"].Selected, ShouldAlmostEqual, math.Log10(11))
			So(out["a"].Rejected, ShouldAlmostEqual, math.Log10(11))
			So(out["b"].Selected, ShouldAlmostEqual, math.Log10(41))
			So(out["b"].Rejected, ShouldAlmostEqual, math.Log10(41))
		})
	})

	Convey("Given the volume exponent", t, func() {
		statsMap := map[string]stats.Stats{"a": curatorStats(10, 5)}

		Convey("Then it scales the base weight linearly", func() {
			out := weights.NewCalculator(weights.WithVolumeExponent(2)).Calculate(statsMap)
			So(out["a"].Maybe, ShouldAlmostEqual, 2*math.Log10(11))
		})
	})
}

func TestCalculateSymmetric(t *testing.T) {
	Convey("Given the deprecated symmetric tendency mode", t, func() {
		statsMap := map[string]stats.Stats{
			"extreme": curatorStats(10, 10),
			"neutral": curatorStats(10, 5),
		}
		calc := weights.NewCalculator(
			weights.WithTendencyPenalty(2),
			weights.WithSymmetricTendency(),
		)

		Convey("When calculating weights", func() {
			out := calc.Calculate(statsMap)
			base := math.Log10(11)

			Convey("Then one multiplier applies to all three outcomes", func() {
				w := out["extreme"]
				So(w.Selected, ShouldAlmostEqual, w.Maybe)
				So(w.Selected, ShouldAlmostEqual, w.Rejected)
			})

			Convey("Then extremes are penalized against the 0.5 peak", func() {
				// (1.0-0.5)^2 * 2 = 0.5 penalty.
				So(out["extreme"].Selected, ShouldAlmostEqual, base*0.5)
				So(out["neutral"].Selected, ShouldAlmostEqual, base)
			})
		})
	})
}
