// Package app wires the scoring pipeline end to end: dedupe, curator stats,
// weights, submission scoring, veto filtering, tier categorization and the
// canonical selection set.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Public-Shorts/curation/internal/adapters/repository"
	"github.com/Public-Shorts/curation/internal/adapters/workerpool"
	"github.com/Public-Shorts/curation/internal/domain/dedupe"
	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/scoring"
	"github.com/Public-Shorts/curation/internal/domain/selection"
	"github.com/Public-Shorts/curation/internal/domain/stats"
	"github.com/Public-Shorts/curation/internal/domain/weights"
	"github.com/Public-Shorts/curation/pkg/logger"
	"github.com/Public-Shorts/curation/pkg/metrics"
)

// Input is one run's fully materialized data: a deterministic projection of
// (reviews, settings, veto set) with no state carried between runs.
// Submissions are expected title-ascending; Reviews is the system-wide set
// used for curator stats.
type Input struct {
	Curators    []model.Curator
	Submissions []model.Submission
	Reviews     []model.Review
	Settings    model.Settings
}

// Output carries everything a run produces.
type Output struct {
	Snapshot  *repository.SelectionSnapshot
	Selection *selection.Set
	Tiers     selection.Tiers
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithWorkers sets the scoring fan-out.
func WithWorkers(count int) Option {
	return func(e *Engine) {
		if count > 0 {
			e.workers = count
		}
	}
}

// WithExcludeJury controls whether jury-role curators are kept out of the
// bias correction. On by default.
func WithExcludeJury(exclude bool) Option {
	return func(e *Engine) {
		e.excludeJury = exclude
	}
}

// WithSymmetricTendency enables the deprecated symmetric weight variant.
func WithSymmetricTendency() Option {
	return func(e *Engine) {
		e.symmetric = true
	}
}

// WithSummarizer sets the summary collaborator.
func WithSummarizer(s Summarizer) Option {
	return func(e *Engine) {
		if s != nil {
			e.summarizer = s
		}
	}
}

// Engine runs the scoring and selection pipeline. It owns no long-lived
// state; Run is a pure batch computation over its input.
type Engine struct {
	workers     int
	excludeJury bool
	symmetric   bool
	summarizer  Summarizer
	logger      logger.Logger
}

// New constructs an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		workers:     1,
		excludeJury: true,
		summarizer:  &StaticSummarizer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}
	return e
}

// Run executes the pipeline. The only fatal input condition is a threshold
// ordering violation; everything else degrades to well-defined zero scores.
func (e *Engine) Run(ctx context.Context, in Input) (*Output, error) {
	start := time.Now()

	if in.Settings.SelectedThreshold <= in.Settings.MaybeThreshold {
		metrics.RecordRunFailure()
		return nil, fmt.Errorf("%w: selected %.1f, maybe %.1f",
			model.ErrThresholdOrder, in.Settings.SelectedThreshold, in.Settings.MaybeThreshold)
	}

	// Ingestion hygiene: at most one review per curator/submission pair.
	systemReviews, dropped := dedupe.Reviews(dedupe.NewInMemoryDeduper(), in.Reviews)
	submissions := make([]model.Submission, len(in.Submissions))
	for i, sub := range in.Submissions {
		sub.Reviews, _ = dedupe.Reviews(dedupe.NewInMemoryDeduper(), sub.Reviews)
		submissions[i] = sub
	}
	metrics.RecordReviewsIngested(len(systemReviews))
	metrics.RecordReviewsDuplicate(dropped)
	if dropped > 0 {
		e.logger.Warn(ctx, "dropped duplicate reviews", logger.Int("count", dropped))
	}

	excluded := e.excludedCurators(in.Curators)

	statsMap := stats.NewAggregator(stats.WithExcludedCurators(excluded)).Aggregate(systemReviews)

	weightOpts := []weights.Option{
		weights.WithVolumeExponent(in.Settings.VolumeExponent),
		weights.WithTendencyPenalty(in.Settings.TendencyPenalty),
	}
	if e.symmetric {
		weightOpts = append(weightOpts, weights.WithSymmetricTendency())
	}
	weightMap := weights.NewCalculator(weightOpts...).Calculate(statsMap)

	scoreStart := time.Now()
	pool := workerpool.NewPool(scoring.NewWeightedScorer(weightMap), workerpool.WithWorkers(e.workers))
	results := pool.ScoreAll(ctx, submissions)
	metrics.RecordScoringDuration(float64(time.Since(scoreStart).Milliseconds()))
	metrics.RecordSubmissionsScored(len(results))

	vetoSet := selection.BuildVetoSet(in.Settings.Vetoes)
	highlightIdx := selection.HighlightIndex(in.Curators)

	candidates := make([]selection.Candidate, 0, len(submissions))
	tagDistribution := make(map[string]int)
	for i, sub := range submissions {
		if _, vetoed := vetoSet[sub.ID]; vetoed {
			continue
		}
		applicable := applicableReviews(sub.Reviews, excluded)
		cand := selection.BuildCandidate(sub, results[i], highlightIdx[sub.ID], applicable)
		candidates = append(candidates, cand)
		for _, tag := range cand.Entry.Tags {
			tagDistribution[tag]++
		}
	}
	metrics.RecordVetoedExcluded(len(vetoSet))

	categorizer := selection.NewCategorizer(in.Settings.SelectedThreshold, in.Settings.MaybeThreshold)
	tiers := categorizer.Categorize(candidates)

	computedAt := time.Now().UTC()
	set := selection.BuildSet(tiers, len(vetoSet), in.Settings.SelectedThreshold, computedAt)

	snapshot := &repository.SelectionSnapshot{
		LastUpdated: computedAt.Format(time.RFC3339),
		Summary:     e.summarize(ctx, in, tiers, results, tagDistribution),
		Highlights:  selection.Entries(tiers.Highlights),
		Unanimous:   selection.Entries(tiers.Unanimous),
		Selected:    selection.Entries(tiers.Selected),
		Maybe:       selection.Entries(tiers.Maybe),
	}

	metrics.UpdateTierSize("highlights", len(tiers.Highlights))
	metrics.UpdateTierSize("unanimous", len(tiers.Unanimous))
	metrics.UpdateTierSize("selected", len(tiers.Selected))
	metrics.UpdateTierSize("maybe", len(tiers.Maybe))
	metrics.UpdateSelectionTotal(set.TotalCount)
	metrics.RecordRunDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordRun()

	e.logger.Info(ctx, "selection run complete",
		logger.Int("submissions", len(submissions)),
		logger.Int("highlights", len(tiers.Highlights)),
		logger.Int("unanimous", len(tiers.Unanimous)),
		logger.Int("selected", len(tiers.Selected)),
		logger.Int("maybe", len(tiers.Maybe)),
		logger.Int("vetoed", len(vetoSet)),
		logger.Int("selectionTotal", set.TotalCount),
	)

	return &Output{Snapshot: snapshot, Selection: &set, Tiers: tiers}, nil
}

// excludedCurators returns the curator ids kept out of bias correction.
func (e *Engine) excludedCurators(curators []model.Curator) map[string]struct{} {
	if !e.excludeJury {
		return nil
	}
	excluded := make(map[string]struct{})
	for _, c := range curators {
		if c.Jury {
			excluded[c.ID] = struct{}{}
		}
	}
	return excluded
}

func applicableReviews(reviews []model.Review, excluded map[string]struct{}) []model.Review {
	if len(excluded) == 0 {
		return reviews
	}
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if _, drop := excluded[r.CuratorID]; drop {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (e *Engine) summarize(ctx context.Context, in Input, tiers selection.Tiers, results []scoring.Result, tagDistribution map[string]int) string {
	var runtimeMinutes int
	for _, c := range tiers.Highlights {
		runtimeMinutes += c.Entry.Length
	}
	for _, c := range tiers.Selected {
		runtimeMinutes += c.Entry.Length
	}

	// Average over every submission that scored above zero, vetoed or not;
	// the summary describes the whole pool, not just the eligible slice.
	var sum float64
	var count int
	for _, r := range results {
		if r.Score > 0 {
			sum += r.Score
			count++
		}
	}
	var avgScore float64
	if count > 0 {
		avgScore = sum / float64(count)
	}

	summary, err := e.summarizer.Summarize(ctx, SummaryInput{
		TotalSubmissions:  len(in.Submissions),
		Highlights:        selection.Entries(tiers.Highlights),
		Selected:          selection.Entries(tiers.Selected),
		Maybe:             selection.Entries(tiers.Maybe),
		TagDistribution:   tagDistribution,
		TotalRuntime:      runtimeMinutes,
		AvgScore:          avgScore,
		SelectedThreshold: in.Settings.SelectedThreshold,
		MaybeThreshold:    in.Settings.MaybeThreshold,
	})
	if err != nil {
		e.logger.Warn(ctx, "summary generation failed", logger.Error(err))
		return "Summary generation failed. Re-run once the summarizer is reachable."
	}
	return summary
}
