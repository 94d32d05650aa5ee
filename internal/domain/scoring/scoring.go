// Package scoring converts a submission's reviews into a single normalized
// score using per-curator, per-outcome weights.
package scoring

import (
	"math"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/weights"
)

// maxScoreValue is the upper bound of the normalized score range.
const maxScoreValue = 100

// Input abstracts the submission fields needed for scoring.
type Input struct {
	SubmissionID string
	Reviews      []model.Review
}

// Result contains the computed score for a submission.
type Result struct {
	SubmissionID string
	// Score is the unrounded weighted score in [0,100]. Round with Round1
	// for display; comparisons use this value.
	Score float64
	// ReviewCount is the number of reviews attached to the submission,
	// including reviews that carried no weight.
	ReviewCount int
}

// Scorer computes a score from a submission's reviews.
type Scorer interface {
	Score(in Input) Result
}

// WeightedScorer implements Scorer using the curator weight map.
type WeightedScorer struct {
	weights map[string]weights.Weights
}

// NewWeightedScorer creates a scorer over the given weight map.
func NewWeightedScorer(w map[string]weights.Weights) *WeightedScorer {
	return &WeightedScorer{weights: w}
}

// Score accumulates value*weight over the submission's reviews and
// normalizes by total weight. Reviews from curators absent in the weight
// map contribute to neither sum. Zero contributing weight scores exactly 0;
// that is a policy choice, not an error.
func (s *WeightedScorer) Score(in Input) Result {
	var weightedSum, totalWeight float64

	for _, r := range in.Reviews {
		w, ok := s.weights[r.CuratorID]
		if !ok {
			continue
		}

		var weight float64
		switch r.Selection {
		case model.SelectionSelected:
			weight = w.Selected
		case model.SelectionMaybe:
			weight = w.Maybe
		default:
			weight = w.Rejected
		}

		weightedSum += r.Selection.Value() * weight
		totalWeight += weight
	}

	var score float64
	if totalWeight > 0 {
		score = (weightedSum / totalWeight) * maxScoreValue
	}

	return Result{
		SubmissionID: in.SubmissionID,
		Score:        score,
		ReviewCount:  len(in.Reviews),
	}
}

// Round1 rounds a score to one decimal for display.
func Round1(score float64) float64 {
	return math.Round(score*10) / 10
}
