package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrSnapshotRead   = errors.New("snapshot file unreadable")
	ErrSnapshotDecode = errors.New("snapshot file malformed")
	ErrOutputEncode   = errors.New("output encoding failed")
	ErrOutputWrite    = errors.New("output write failed")
)
