package model

// Tag is a curator-assigned descriptive label.
type Tag struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// Review is one curator's judgment on one submission. Immutable once
// ingested; at most one review per (curator, submission) pair enters the
// pipeline.
type Review struct {
	CuratorID    string    `json:"curatorId"`
	SubmissionID string    `json:"submissionId"`
	Selection    Selection `json:"selection"`
	Rating       *float64  `json:"rating,omitempty"`
	Tags         []Tag     `json:"tags,omitempty"`
	ContentNotes []string  `json:"contentNotes,omitempty"`
}

// Curator is a reviewer. Highlights is the list of submission ids the
// curator picked editorially, independent of any score.
type Curator struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Highlights []string `json:"highlights,omitempty"`
	Jury       bool     `json:"jury,omitempty"`
	Admin      bool     `json:"admin,omitempty"`
}

// Submission is a film entry with submitter-declared metadata.
type Submission struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Director        string   `json:"director"`
	Length          int      `json:"length"` // minutes
	Explicit        bool     `json:"explicit,omitempty"`
	ExplicitDetails string   `json:"explicitDetails,omitempty"`
	AIUsed          bool     `json:"aiUsed,omitempty"`
	AIExplanation   string   `json:"aiExplanation,omitempty"`
	Reviews         []Review `json:"reviews,omitempty"`
}

// VetoEntry is an administrative exclusion of a submission from cinema
// and/or TV consideration.
type VetoEntry struct {
	SubmissionID     string `json:"submissionId"`
	VetoedFromCinema bool   `json:"vetoedFromCinema"`
	VetoedFromTV     bool   `json:"vetoedFromTV"`
	Reason           string `json:"reason,omitempty"`
}

// Vetoed reports whether the entry excludes the submission from either
// outlet.
func (v VetoEntry) Vetoed() bool { return v.VetoedFromCinema || v.VetoedFromTV }
