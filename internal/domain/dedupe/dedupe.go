// Package dedupe enforces the one-review-per-curator-per-submission
// invariant at the ingestion edge. Upsert semantics live in the collaborator
// store; this guards the pipeline against noisy snapshots.
package dedupe

import (
	"sync"

	"github.com/Public-Shorts/curation/internal/domain/model"
)

// Deduper records seen (curator, submission) pairs.
type Deduper interface {
	// SeenAndRecord atomically checks whether the pair was seen and records
	// it if not. Returns true if the pair was already seen.
	SeenAndRecord(curatorID, submissionID string) bool

	// Size returns the number of recorded pairs.
	Size() int
}

type reviewKey struct {
	curatorID    string
	submissionID string
}

// inMemoryDeduper implements Deduper with a map. Unbounded: a batch run's
// working set is the review list itself, and evicting would readmit
// duplicates.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[reviewKey]struct{}
}

// NewInMemoryDeduper creates an empty in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[reviewKey]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(curatorID, submissionID string) bool {
	key := reviewKey{curatorID: curatorID, submissionID: submissionID}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

// Reviews returns reviews with duplicate (curator, submission) pairs
// removed, first occurrence winning, plus the number dropped.
func Reviews(d Deduper, reviews []model.Review) ([]model.Review, int) {
	out := make([]model.Review, 0, len(reviews))
	var dropped int
	for _, r := range reviews {
		if d.SeenAndRecord(r.CuratorID, r.SubmissionID) {
			dropped++
			continue
		}
		out = append(out, r)
	}
	return out, dropped
}
