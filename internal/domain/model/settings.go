package model

import "fmt"

// Documented settings defaults and bounds.
const (
	DefaultSelectedThreshold = 60
	DefaultMaybeThreshold    = 35
	DefaultVolumeExponent    = 1
	DefaultTendencyPenalty   = 2

	MinSelectedThreshold = 50
	MaxSelectedThreshold = 95
	MinMaybeThreshold    = 15
	MaxMaybeThreshold    = 50
)

// Settings is the external selection configuration, read-only to the
// engine. It is validated at the boundary that loads it; the engine assumes
// a validated value.
type Settings struct {
	SelectedThreshold float64     `json:"selectedThreshold"`
	MaybeThreshold    float64     `json:"maybeThreshold"`
	VolumeExponent    float64     `json:"volumeExponent"`
	TendencyPenalty   float64     `json:"tendencyPenalty"`
	Vetoes            []VetoEntry `json:"vetoedSubmissions,omitempty"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		SelectedThreshold: DefaultSelectedThreshold,
		MaybeThreshold:    DefaultMaybeThreshold,
		VolumeExponent:    DefaultVolumeExponent,
		TendencyPenalty:   DefaultTendencyPenalty,
	}
}

// Validate checks threshold bounds and ordering. A selected threshold at or
// below the maybe threshold makes the Selected/Maybe partition ill-defined
// and is the one condition fatal to a run.
func (s Settings) Validate() error {
	if s.SelectedThreshold < MinSelectedThreshold || s.SelectedThreshold > MaxSelectedThreshold {
		return fmt.Errorf("%w: selected threshold %.1f outside [%d,%d]",
			ErrThresholdBounds, s.SelectedThreshold, MinSelectedThreshold, MaxSelectedThreshold)
	}
	if s.MaybeThreshold < MinMaybeThreshold || s.MaybeThreshold > MaxMaybeThreshold {
		return fmt.Errorf("%w: maybe threshold %.1f outside [%d,%d]",
			ErrThresholdBounds, s.MaybeThreshold, MinMaybeThreshold, MaxMaybeThreshold)
	}
	if s.SelectedThreshold <= s.MaybeThreshold {
		return fmt.Errorf("%w: selected %.1f, maybe %.1f",
			ErrThresholdOrder, s.SelectedThreshold, s.MaybeThreshold)
	}
	return nil
}
