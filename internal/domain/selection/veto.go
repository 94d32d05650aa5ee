// Package selection classifies scored submissions into tiers and builds the
// canonical festival selection set.
package selection

import "github.com/Public-Shorts/curation/internal/domain/model"

// BuildVetoSet collects the ids of submissions vetoed from cinema or TV.
func BuildVetoSet(entries []model.VetoEntry) map[string]struct{} {
	vetoed := make(map[string]struct{})
	for _, e := range entries {
		if e.SubmissionID == "" || !e.Vetoed() {
			continue
		}
		vetoed[e.SubmissionID] = struct{}{}
	}
	return vetoed
}

// FilterVetoed removes vetoed submissions. Applied once, before any tier
// assignment, so every downstream list agrees on what is excluded. Vetoed
// submissions are removed from consideration entirely, never scored as 0.
func FilterVetoed(subs []model.Submission, vetoed map[string]struct{}) []model.Submission {
	if len(vetoed) == 0 {
		return subs
	}
	out := make([]model.Submission, 0, len(subs))
	for _, s := range subs {
		if _, drop := vetoed[s.ID]; drop {
			continue
		}
		out = append(out, s)
	}
	return out
}
