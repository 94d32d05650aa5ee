package selection

import (
	"time"

	"github.com/google/uuid"
)

// Method records how a film entered the canonical selection.
type Method string

// Selection methods.
const (
	MethodHighlight Method = "highlight"
	MethodScore     Method = "score"
)

// Record is one film's row in the canonical festival selection.
type Record struct {
	Key          string  `json:"key"`
	SubmissionID string  `json:"submissionId"`
	Score        float64 `json:"selectionScore"`
	Method       Method  `json:"selectionMethod"`
}

// Set is the canonical festival selection, fully regenerated and replaced
// on every run.
type Set struct {
	Films             []Record  `json:"films"`
	HighlightCount    int       `json:"highlightCount"`
	ScoreCount        int       `json:"scoreCount"`
	VetoedCount       int       `json:"vetoedCount"`
	TotalCount        int       `json:"totalCount"`
	SelectedThreshold float64   `json:"selectedThreshold"`
	ComputedAt        time.Time `json:"computedAt"`
}

// BuildSet merges the highlight and score-selected tiers into the canonical
// selection, both already veto-filtered.
// Highlight membership is checked first; a film present in both keeps the
// highlight record with score 100 (editorial override) and is never
// double-counted. ScoreCount counts selected-but-not-highlighted films.
func BuildSet(tiers Tiers, vetoedCount int, selectedThreshold float64, computedAt time.Time) Set {
	seen := make(map[string]struct{})
	var films []Record

	for _, c := range tiers.Highlights {
		if _, dup := seen[c.Entry.ID]; dup {
			continue
		}
		seen[c.Entry.ID] = struct{}{}
		films = append(films, Record{
			Key:          uuid.NewString(),
			SubmissionID: c.Entry.ID,
			Score:        100,
			Method:       MethodHighlight,
		})
	}

	var scoreCount int
	for _, c := range tiers.Selected {
		if _, dup := seen[c.Entry.ID]; dup {
			continue
		}
		seen[c.Entry.ID] = struct{}{}
		scoreCount++
		films = append(films, Record{
			Key:          uuid.NewString(),
			SubmissionID: c.Entry.ID,
			Score:        c.Entry.Score,
			Method:       MethodScore,
		})
	}

	return Set{
		Films:             films,
		HighlightCount:    len(tiers.Highlights),
		ScoreCount:        scoreCount,
		VetoedCount:       vetoedCount,
		TotalCount:        len(films),
		SelectedThreshold: selectedThreshold,
		ComputedAt:        computedAt,
	}
}
