package app

import (
	"context"
	"fmt"

	"github.com/Public-Shorts/curation/internal/domain/model"
)

// SummaryInput is the aggregate picture handed to the summary collaborator.
type SummaryInput struct {
	TotalSubmissions  int
	Highlights        []model.FilmEntry
	Selected          []model.FilmEntry
	Maybe             []model.FilmEntry
	TagDistribution   map[string]int
	TotalRuntime      int // minutes, highlights + selected
	AvgScore          float64
	SelectedThreshold float64
	MaybeThreshold    float64
}

// Summarizer produces the editorial summary text carried by the selection
// snapshot. The production system delegates this to an external service; the
// engine only defines the boundary.
type Summarizer interface {
	Summarize(ctx context.Context, in SummaryInput) (string, error)
}

// StaticSummarizer is the default: a short factual line with no external
// dependencies.
type StaticSummarizer struct{}

// Summarize renders the run counts as one sentence.
func (StaticSummarizer) Summarize(_ context.Context, in SummaryInput) (string, error) {
	return fmt.Sprintf(
		"Of %d submissions, %d were highlighted by curators and %d passed the %.0f%% score threshold (%d more in the %.0f-%.0f%% maybe band); the combined program runs %d minutes with an average weighted score of %.1f%%.",
		in.TotalSubmissions, len(in.Highlights), len(in.Selected), in.SelectedThreshold,
		len(in.Maybe), in.MaybeThreshold, in.SelectedThreshold, in.TotalRuntime, in.AvgScore,
	), nil
}
