// Package storage is the persistence gateway: typed save/load over two
// key-value scopes. The durable scope survives restarts; the session scope
// lives as long as the process.
//
// Every save returns a discriminated SaveResult instead of an error so
// callers are forced to check the outcome, and loads never fail: missing or
// corrupt data is reported as absent and the caller falls back to its empty
// default.
package storage

import "github.com/mrossetti/notekeep/internal/apperror"

// Storage keys. One key per collection, matching the export/import format.
const (
	KeyNotes       = "notes"
	KeyCategories  = "note_categories"
	KeyUsers       = "app_users"
	KeySession     = "auth_user"
	KeyPreferences = "preferences"
	KeyDraft       = "draft"
)

type ErrorKind string

const (
	ErrorNone    ErrorKind = ""
	ErrorQuota   ErrorKind = "quota"
	ErrorUnknown ErrorKind = "unknown"
)

// SaveResult is the outcome of a write. Kind distinguishes capacity-exceeded
// failures, which the UI answers with a cleanup prompt, from everything else.
type SaveResult struct {
	Success bool
	Kind    ErrorKind
	Message string
}

// Err converts a failed result into the matching apperror value. A
// successful result yields nil.
func (r SaveResult) Err() error {
	switch {
	case r.Success:
		return nil
	case r.Kind == ErrorQuota:
		return apperror.QuotaExceeded(r.Message)
	default:
		return apperror.Storage(r.Message)
	}
}

func saved() SaveResult {
	return SaveResult{Success: true}
}

func failed(kind ErrorKind, message string) SaveResult {
	return SaveResult{Success: false, Kind: kind, Message: message}
}

// Store is a single storage scope.
type Store interface {
	// Save serializes value under key, replacing any previous value.
	Save(key string, value any) SaveResult
	// Load deserializes the value under key into dest and reports whether a
	// usable value was present. Corrupt data counts as absent.
	Load(key string, dest any) bool
	// Delete removes key. Deleting a missing key succeeds.
	Delete(key string) SaveResult
	Close() error
}
