// Package model contains domain models passed between pipeline stages.
package model

import "fmt"

// Selection is a curator's verdict on a submission. The set of values is
// closed; anything else is rejected at the ingestion boundary.
type Selection string

// Selection values as stored by the collaborator store.
const (
	SelectionSelected Selection = "selected"
	SelectionMaybe    Selection = "maybe"
	SelectionRejected Selection = "rejected"
)

// legacyRejected is the spelling used by older store documents.
const legacyRejected = "notSelected"

// ParseSelection maps a raw store value to a Selection. The legacy
// "notSelected" spelling is accepted as an alias for rejected.
func ParseSelection(raw string) (Selection, error) {
	switch raw {
	case string(SelectionSelected):
		return SelectionSelected, nil
	case string(SelectionMaybe):
		return SelectionMaybe, nil
	case string(SelectionRejected), legacyRejected:
		return SelectionRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSelection, raw)
	}
}

// Value maps a selection to its scoring value: selected 1, maybe 0.5,
// rejected 0.
func (s Selection) Value() float64 {
	switch s {
	case SelectionSelected:
		return 1
	case SelectionMaybe:
		return 0.5
	default:
		return 0
	}
}

func (s Selection) String() string { return string(s) }
