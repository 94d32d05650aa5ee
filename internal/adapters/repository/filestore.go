package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/selection"
)

const outputFileMode = 0o644

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithSelectionPath sets where the presentation snapshot is written.
func WithSelectionPath(path string) Option {
	return func(s *FileStore) {
		if path != "" {
			s.selectionPath = path
		}
	}
}

// WithFestivalSelectionPath sets where the canonical selection record is
// written.
func WithFestivalSelectionPath(path string) Option {
	return func(s *FileStore) {
		if path != "" {
			s.festivalPath = path
		}
	}
}

// FileStore implements Store over JSON files. It stands in for the document
// store collaborator; queries and persistence mechanics beyond this are
// external to the engine.
type FileStore struct {
	snapshotPath  string
	selectionPath string
	festivalPath  string
}

// NewFileStore creates a store reading run input from snapshotPath.
func NewFileStore(snapshotPath string, opts ...Option) *FileStore {
	s := &FileStore{
		snapshotPath:  snapshotPath,
		selectionPath: "selection.json",
		festivalPath:  "festival-selection.json",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot reads and decodes the input file. Submissions are re-sorted by
// (title, id) ascending so downstream ordering is deterministic regardless
// of file order. Reviews with unknown selection values fail the load; the
// ingestion boundary rejects unknown shapes rather than propagating them.
func (s *FileStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("snapshot load canceled: %w", err)
	}

	raw, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotRead, err)
	}

	var snap rawSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotDecode, err)
	}

	out := &Snapshot{
		Curators: snap.Curators,
		Settings: model.DefaultSettings(),
	}
	if snap.Settings != nil {
		out.Settings = *snap.Settings
	}
	if err := out.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in snapshot: %w", err)
	}

	out.Reviews, err = normalizeReviews(snap.Reviews)
	if err != nil {
		return nil, err
	}

	out.Submissions = make([]model.Submission, 0, len(snap.Submissions))
	for _, rs := range snap.Submissions {
		sub := rs.Submission
		sub.Reviews, err = normalizeReviews(rs.Reviews)
		if err != nil {
			return nil, fmt.Errorf("submission %s: %w", sub.ID, err)
		}
		out.Submissions = append(out.Submissions, sub)
	}
	sort.SliceStable(out.Submissions, func(i, j int) bool {
		a, b := out.Submissions[i], out.Submissions[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})

	return out, nil
}

// WriteSelection replaces the presentation snapshot file.
func (s *FileStore) WriteSelection(ctx context.Context, snap *SelectionSnapshot) error {
	return writeJSON(ctx, s.selectionPath, snap)
}

// WriteFestivalSelection replaces the canonical selection record file.
func (s *FileStore) WriteFestivalSelection(ctx context.Context, set *selection.Set) error {
	return writeJSON(ctx, s.festivalPath, set)
}

// rawSnapshot mirrors the store document shape before selection values are
// normalized into the closed enum.
type rawSnapshot struct {
	Curators    []model.Curator `json:"curators"`
	Submissions []rawSubmission `json:"submissions"`
	Reviews     []rawReview     `json:"reviews"`
	Settings    *model.Settings `json:"settings"`
}

type rawSubmission struct {
	model.Submission
	Reviews []rawReview `json:"reviews"`
}

type rawReview struct {
	CuratorID    string      `json:"curatorId"`
	SubmissionID string      `json:"submissionId"`
	Selection    string      `json:"selection"`
	Rating       *float64    `json:"rating,omitempty"`
	Tags         []model.Tag `json:"tags,omitempty"`
	ContentNotes []string    `json:"contentNotes,omitempty"`
}

func normalizeReviews(raws []rawReview) ([]model.Review, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]model.Review, 0, len(raws))
	for _, r := range raws {
		sel, err := model.ParseSelection(r.Selection)
		if err != nil {
			return nil, fmt.Errorf("review by %s on %s: %w", r.CuratorID, r.SubmissionID, err)
		}
		out = append(out, model.Review{
			CuratorID:    r.CuratorID,
			SubmissionID: r.SubmissionID,
			Selection:    sel,
			Rating:       r.Rating,
			Tags:         r.Tags,
			ContentNotes: r.ContentNotes,
		})
	}
	return out, nil
}

func writeJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write canceled: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputEncode, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
