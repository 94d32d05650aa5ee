package selection

import (
	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/scoring"
)

// Candidate is a scored, non-vetoed submission ready for categorization.
// Score is unrounded; the embedded Entry carries the display rounding.
type Candidate struct {
	Entry        model.FilmEntry
	Score        float64
	ReviewCount  int
	CuratorCount int
	Highlighted  bool
	Unanimous    bool
}

// HighlightIndex maps submission ids to the names of curators that
// highlighted them, in curator input order.
func HighlightIndex(curators []model.Curator) map[string][]string {
	idx := make(map[string][]string)
	for _, c := range curators {
		for _, id := range c.Highlights {
			if id == "" {
				continue
			}
			idx[id] = append(idx[id], c.Name)
		}
	}
	return idx
}

// BuildCandidate assembles the candidate record for one submission.
// applicable holds the submission's reviews minus any excluded by policy
// (e.g. jury ballots); unanimity is judged on those, while tags, flags and
// the average rating aggregate over everything attached to the submission.
func BuildCandidate(sub model.Submission, res scoring.Result, highlightedBy []string, applicable []model.Review) Candidate {
	unanimous := len(applicable) > 0
	for _, r := range applicable {
		if r.Selection != model.SelectionSelected {
			unanimous = false
			break
		}
	}

	entry := model.FilmEntry{
		ID:           sub.ID,
		Title:        sub.Title,
		Director:     sub.Director,
		Length:       sub.Length,
		Score:        scoring.Round1(res.Score),
		AvgRating:    roundRating(model.AverageRating(sub.Reviews)),
		ReviewCount:  res.ReviewCount,
		Tags:         model.UniqueTagLabels(sub.Reviews),
		Flags:        model.GenerateFlags(sub, sub.Reviews),
		CuratorCount: len(highlightedBy),
		Curators:     highlightedBy,
	}

	return Candidate{
		Entry:        entry,
		Score:        res.Score,
		ReviewCount:  res.ReviewCount,
		CuratorCount: len(highlightedBy),
		Highlighted:  len(highlightedBy) > 0,
		Unanimous:    unanimous,
	}
}

func roundRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	rounded := scoring.Round1(*r)
	return &rounded
}
