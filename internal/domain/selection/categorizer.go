package selection

import (
	"sort"

	"github.com/Public-Shorts/curation/internal/domain/model"
)

// Tiers holds the classified, sorted selection buckets. A submission may
// land in multiple tiers; only Selected and Maybe are mutually exclusive.
type Tiers struct {
	Highlights []Candidate
	Unanimous  []Candidate
	Selected   []Candidate
	Maybe      []Candidate
}

// Entries projects a tier to its display records.
func Entries(tier []Candidate) []model.FilmEntry {
	entries := make([]model.FilmEntry, len(tier))
	for i, c := range tier {
		entries[i] = c.Entry
	}
	return entries
}

// Categorizer classifies candidates against the score thresholds.
type Categorizer struct {
	selectedThreshold float64
	maybeThreshold    float64
}

// NewCategorizer creates a Categorizer. Callers must guarantee
// selectedThreshold > maybeThreshold; the partition is ill-defined
// otherwise.
func NewCategorizer(selectedThreshold, maybeThreshold float64) *Categorizer {
	return &Categorizer{
		selectedThreshold: selectedThreshold,
		maybeThreshold:    maybeThreshold,
	}
}

// Categorize buckets candidates into tiers and sorts each tier. Input order
// is expected to be title-ascending; all sorts are stable so ties keep that
// order and repeated runs produce identical output.
//
// A candidate scoring exactly selectedThreshold is Selected, never Maybe;
// one scoring exactly maybeThreshold is Maybe, not excluded.
func (c *Categorizer) Categorize(candidates []Candidate) Tiers {
	var t Tiers

	for _, cand := range candidates {
		if cand.Highlighted {
			t.Highlights = append(t.Highlights, cand)
		}
		if cand.Unanimous {
			t.Unanimous = append(t.Unanimous, cand)
		}
		switch {
		case cand.Score >= c.selectedThreshold:
			t.Selected = append(t.Selected, cand)
		case cand.Score >= c.maybeThreshold:
			t.Maybe = append(t.Maybe, cand)
		}
	}

	sort.SliceStable(t.Highlights, func(i, j int) bool {
		a, b := t.Highlights[i], t.Highlights[j]
		if a.CuratorCount != b.CuratorCount {
			return a.CuratorCount > b.CuratorCount
		}
		return a.Score > b.Score
	})
	sort.SliceStable(t.Unanimous, func(i, j int) bool {
		a, b := t.Unanimous[i], t.Unanimous[j]
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.Score > b.Score
	})
	sort.SliceStable(t.Selected, func(i, j int) bool {
		return t.Selected[i].Score > t.Selected[j].Score
	})
	sort.SliceStable(t.Maybe, func(i, j int) bool {
		return t.Maybe[i].Score > t.Maybe[j].Score
	})

	return t
}
