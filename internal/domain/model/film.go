package model

import (
	"sort"
	"strings"
)

// Flag labels surfaced on film entries.
const (
	FlagExplicit = "EXPLICIT"
	FlagAI       = "AI"
	FlagWarnings = "WARNINGS"
)

// contentNoteNone marks a review that explicitly declared no content notes.
const contentNoteNone = "none"

// Flag is a display marker attached to a film entry.
type Flag struct {
	Label   string `json:"label"`
	Details string `json:"details,omitempty"`
}

// FilmEntry is the per-film record carried by the selection snapshot for
// presentation layers.
type FilmEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Director     string   `json:"director"`
	Length       int      `json:"length"`
	Score        float64  `json:"score"` // rounded to one decimal for display
	AvgRating    *float64 `json:"avgRating,omitempty"`
	ReviewCount  int      `json:"reviewCount"`
	Tags         []string `json:"tags,omitempty"`
	Flags        []Flag   `json:"flags,omitempty"`
	CuratorCount int      `json:"curatorCount"`
	Curators     []string `json:"curators,omitempty"`
}

// GenerateFlags derives display flags from submitter declarations and
// curator content notes. Notes equal to "none" are dropped; the rest are
// de-duplicated in first-seen order.
func GenerateFlags(sub Submission, reviews []Review) []Flag {
	var flags []Flag

	if sub.Explicit {
		details := sub.ExplicitDetails
		if details == "" {
			details = "Explicit content flagged by submitter."
		}
		flags = append(flags, Flag{Label: FlagExplicit, Details: details})
	}

	if sub.AIUsed {
		details := sub.AIExplanation
		if details == "" {
			details = "AI usage declared by submitter."
		}
		flags = append(flags, Flag{Label: FlagAI, Details: details})
	}

	seen := make(map[string]struct{})
	var notes []string
	for _, r := range reviews {
		for _, n := range r.ContentNotes {
			if n == "" || strings.EqualFold(n, contentNoteNone) {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			notes = append(notes, n)
		}
	}
	if len(notes) > 0 {
		flags = append(flags, Flag{Label: FlagWarnings, Details: strings.Join(notes, ", ")})
	}

	return flags
}

// UniqueTagLabels collects the distinct lower-cased tag labels across
// reviews, sorted for stable output.
func UniqueTagLabels(reviews []Review) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, r := range reviews {
		for _, t := range r.Tags {
			label := strings.ToLower(t.Label)
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// AverageRating averages the ratings present across reviews. Returns nil
// when no review carries a rating.
func AverageRating(reviews []Review) *float64 {
	var sum float64
	var count int
	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		sum += *r.Rating
		count++
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}
