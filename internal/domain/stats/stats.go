// Package stats folds the system-wide review set into per-curator totals
// and approval rates. These feed the weight calculator; they are recomputed
// from scratch every run and never persisted.
package stats

import (
	"github.com/Public-Shorts/curation/internal/domain/model"
)

// Stats captures one curator's reviewing record.
type Stats struct {
	TotalReviews  int
	ApprovedCount int
	// ApprovalRate is ApprovedCount/TotalReviews, 0 when TotalReviews is 0.
	ApprovalRate float64
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithExcludedCurators drops reviews authored by the given curators before
// aggregation. Used to keep jury ballots out of the bias correction.
func WithExcludedCurators(ids map[string]struct{}) Option {
	return func(a *Aggregator) {
		a.excluded = ids
	}
}

// Aggregator groups reviews by curator.
type Aggregator struct {
	excluded map[string]struct{}
}

// NewAggregator creates an Aggregator with configuration options.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate folds reviews into per-curator stats. Reviews without a curator
// id, and reviews from excluded curators, are skipped silently.
func (a *Aggregator) Aggregate(reviews []model.Review) map[string]Stats {
	out := make(map[string]Stats)
	for _, r := range reviews {
		if r.CuratorID == "" {
			continue
		}
		if _, drop := a.excluded[r.CuratorID]; drop {
			continue
		}
		s := out[r.CuratorID]
		s.TotalReviews++
		if r.Selection == model.SelectionSelected {
			s.ApprovedCount++
		}
		out[r.CuratorID] = s
	}
	for id, s := range out {
		if s.TotalReviews > 0 {
			s.ApprovalRate = float64(s.ApprovedCount) / float64(s.TotalReviews)
		}
		out[id] = s
	}
	return out
}
