package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream clients and stores return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: the upstream registry or store has no such record
// - ErrUnavailable: the upstream service or store cannot be reached right now
// - ErrCacheMiss: a cache store holds no entry for the key
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrCacheMiss   = errors.New("cache miss")
)
