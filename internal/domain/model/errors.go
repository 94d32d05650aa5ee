package model

import "errors"

// Sentinel kinds for model errors.
var (
	ErrUnknownSelection = errors.New("unknown selection value")
	ErrThresholdBounds  = errors.New("threshold outside documented bounds")
	ErrThresholdOrder   = errors.New("selected threshold must exceed maybe threshold")
)
