// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
//
// Selection settings (thresholds, weight parameters, vetoes) are store data
// and live in the domain model; this package only configures the process
// around the engine.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr optionally exposes /metrics during a run, e.g. ":9090".
	// Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// SnapshotPath points at the store snapshot to score.
	SnapshotPath string `koanf:"snapshot_path"`

	// SelectionPath is where the presentation snapshot is written.
	SelectionPath string `koanf:"selection_path"`

	// FestivalSelectionPath is where the canonical selection record is
	// written.
	FestivalSelectionPath string `koanf:"festival_selection_path"`

	// Workers sets the scoring fan-out. 1 runs strictly sequentially.
	Workers int `koanf:"workers"`

	// ExcludeJury keeps jury-role curators out of the bias correction so
	// their ballots never skew the weights used to score their own slate.
	ExcludeJury bool `koanf:"exclude_jury"`

	// SymmetricTendency enables the deprecated symmetric weight variant.
	SymmetricTendency bool `koanf:"symmetric_tendency"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		SnapshotPath:          "snapshot.json",
		SelectionPath:         "selection.json",
		FestivalSelectionPath: "festival-selection.json",
		Workers:               runtime.NumCPU(),
		ExcludeJury:           true,
	}
}
