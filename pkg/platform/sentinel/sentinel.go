package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: party or rendered document does not exist in the store
// - ErrConflict: a party with the same name already exists
// - ErrExpired: a cached artifact outlived its retention window
// - ErrUnavailable: backing store (redis/postgres) temporarily unreachable
//
// For validation errors (missing fields, bad numbers), use
// pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
