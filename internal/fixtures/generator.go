// Package fixtures generates synthetic store snapshots for local runs,
// demos and tests. Generation is seeded and deterministic: the same seed
// yields the same snapshot.
package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Public-Shorts/curation/internal/adapters/repository"
	"github.com/Public-Shorts/curation/internal/domain/model"
)

// Generation ranges.
const (
	minFilmLength = 3
	maxFilmLength = 40

	reviewProbability    = 0.6
	selectedProbability  = 0.35
	maybeProbability     = 0.3
	ratingProbability    = 0.7
	tagProbability       = 0.5
	noteProbability      = 0.15
	explicitProbability  = 0.05
	aiProbability        = 0.08
	highlightProbability = 0.1
	vetoProbability      = 0.03
)

var tagPool = []string{
	"documentary", "animation", "experimental", "drama", "comedy",
	"coming-of-age", "urban", "nature", "family", "political",
	"surreal", "musical", "archival", "slow cinema", "found footage",
}

var notePool = []string{
	"violence", "strongLanguage", "nudity", "flashingLights",
	"horrorDisturbingImages",
}

var vetoReasons = []string{
	"Rights could not be cleared for public screening.",
	"Submitter withdrew consent for TV broadcast.",
	"Duplicate of an earlier submission.",
}

// Config controls snapshot generation.
type Config struct {
	Curators    int
	Jurors      int
	Submissions int
	Seed        int64
}

// DefaultConfig returns a small but representative snapshot shape.
func DefaultConfig() Config {
	return Config{
		Curators:    8,
		Jurors:      2,
		Submissions: 120,
		Seed:        42,
	}
}

// Generate builds a snapshot: curators (some jury-role, some with
// highlights), title-sorted submissions with reviews attached, the
// system-wide review list, and settings with a few vetoes.
func Generate(cfg Config) *repository.Snapshot {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic fixtures, not security material

	curators := make([]model.Curator, 0, cfg.Curators+cfg.Jurors)
	for i := 0; i < cfg.Curators; i++ {
		curators = append(curators, model.Curator{
			ID:   deterministicID(rng),
			Name: fmt.Sprintf("Curator %c", 'A'+i),
		})
	}
	for i := 0; i < cfg.Jurors; i++ {
		curators = append(curators, model.Curator{
			ID:   deterministicID(rng),
			Name: fmt.Sprintf("Juror %c", 'A'+i),
			Jury: true,
		})
	}

	submissions := make([]model.Submission, 0, cfg.Submissions)
	var allReviews []model.Review
	for i := 0; i < cfg.Submissions; i++ {
		sub := model.Submission{
			ID:       deterministicID(rng),
			Title:    fmt.Sprintf("Film %04d", i),
			Director: fmt.Sprintf("Director %04d", i),
			Length:   minFilmLength + rng.Intn(maxFilmLength-minFilmLength+1),
		}
		if rng.Float64() < explicitProbability {
			sub.Explicit = true
			sub.ExplicitDetails = "Explicit content declared on submission."
		}
		if rng.Float64() < aiProbability {
			sub.AIUsed = true
			sub.AIExplanation = "Generative tools used for backgrounds."
		}

		for _, c := range curators {
			if rng.Float64() >= reviewProbability {
				continue
			}
			r := model.Review{
				CuratorID:    c.ID,
				SubmissionID: sub.ID,
				Selection:    randomSelection(rng),
			}
			if rng.Float64() < ratingProbability {
				rating := float64(1 + rng.Intn(5))
				r.Rating = &rating
			}
			if rng.Float64() < tagProbability {
				r.Tags = []model.Tag{{Label: tagPool[rng.Intn(len(tagPool))]}}
			}
			if rng.Float64() < noteProbability {
				r.ContentNotes = []string{notePool[rng.Intn(len(notePool))]}
			}
			sub.Reviews = append(sub.Reviews, r)
			allReviews = append(allReviews, r)
		}
		submissions = append(submissions, sub)
	}

	// Non-jury curators highlight a handful of films each.
	for i := range curators {
		if curators[i].Jury {
			continue
		}
		for _, sub := range submissions {
			if rng.Float64() < highlightProbability {
				curators[i].Highlights = append(curators[i].Highlights, sub.ID)
			}
		}
	}

	settings := model.DefaultSettings()
	for _, sub := range submissions {
		if rng.Float64() < vetoProbability {
			settings.Vetoes = append(settings.Vetoes, model.VetoEntry{
				SubmissionID:     sub.ID,
				VetoedFromCinema: true,
				VetoedFromTV:     rng.Float64() < 0.5,
				Reason:           vetoReasons[rng.Intn(len(vetoReasons))],
			})
		}
	}

	return &repository.Snapshot{
		Curators:    curators,
		Submissions: submissions,
		Reviews:     allReviews,
		Settings:    settings,
	}
}

// deterministicID derives a uuid from the seeded stream so fixtures are
// reproducible.
func deterministicID(rng *rand.Rand) string {
	var b [16]byte
	rng.Read(b[:]) //nolint:errcheck // rand.Rand.Read never fails
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func randomSelection(rng *rand.Rand) model.Selection {
	v := rng.Float64()
	switch {
	case v < selectedProbability:
		return model.SelectionSelected
	case v < selectedProbability+maybeProbability:
		return model.SelectionMaybe
	default:
		return model.SelectionRejected
	}
}
