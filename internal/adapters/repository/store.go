// Package repository defines the collaborator store interface and the JSON
// snapshot implementation used by the batch orchestrator and tests.
package repository

import (
	"context"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/selection"
)

// Snapshot is a fully materialized run input: everything the engine reads,
// fetched in one shot. Submissions come back title-ascending with their
// reviews attached; Reviews is the system-wide review set used for curator
// stats.
type Snapshot struct {
	Curators    []model.Curator    `json:"curators"`
	Submissions []model.Submission `json:"submissions"`
	Reviews     []model.Review     `json:"reviews"`
	Settings    model.Settings     `json:"settings"`
}

// SelectionSnapshot is the serializable output consumed by presentation
// layers. Summary text is produced by an external collaborator.
type SelectionSnapshot struct {
	LastUpdated string            `json:"lastUpdated"`
	Summary     string            `json:"summary,omitempty"`
	Highlights  []model.FilmEntry `json:"highlights"`
	Unanimous   []model.FilmEntry `json:"unanimous"`
	Selected    []model.FilmEntry `json:"selected"`
	Maybe       []model.FilmEntry `json:"maybe"`
}

// Store provides read access to run input and createOrReplace-style write
// access for run output.
type Store interface {
	// Snapshot loads the full run input. Settings are validated; a snapshot
	// with no settings object yields the documented defaults.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// WriteSelection replaces the presentation snapshot wholesale.
	WriteSelection(ctx context.Context, snap *SelectionSnapshot) error

	// WriteFestivalSelection replaces the canonical selection record
	// wholesale. Never incrementally patched.
	WriteFestivalSelection(ctx context.Context, set *selection.Set) error
}
