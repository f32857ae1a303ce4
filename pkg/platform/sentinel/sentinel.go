package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and gateway adapters return
// these (optionally wrapped) so the workflow engine can translate them into
// domain errors without knowing which backend produced them.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record, message, or thread does not exist
// - ErrForbidden: the platform refused the operation for this bot
// - ErrExpired: token or expectation has expired
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: channel or backing service temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
