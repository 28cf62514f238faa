// Package share encodes a note reference into a shareable locator.
//
// Resolution is a plain lookup in the local note collection: a locator only
// works where the note already exists in that machine's own storage. That is
// a structural limitation of serverless sharing, not a bug to paper over.
package share

import (
	"net/url"

	"github.com/atotto/clipboard"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/note"
)

// Param is the query parameter carrying the shared note id.
const Param = "sharedNote"

type Service struct {
	baseURL string
	notes   *note.Repository
}

func NewService(baseURL string, notes *note.Repository) *Service {
	return &Service{baseURL: baseURL, notes: notes}
}

// Locator builds the shareable reference for a note id.
func (s *Service) Locator(noteID string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", apperror.Validation(apperror.FieldGeneral, "invalid share base URL")
	}
	q := u.Query()
	q.Set(Param, noteID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Resolve parses a locator and returns the referenced note, or nil when the
// locator carries no id or the note is absent locally.
func (s *Service) Resolve(locator string) *note.Note {
	u, err := url.Parse(locator)
	if err != nil {
		return nil
	}
	id := u.Query().Get(Param)
	if id == "" {
		return nil
	}
	return s.notes.Get(id)
}

// CopyToClipboard puts a locator on the system clipboard.
func (s *Service) CopyToClipboard(locator string) error {
	return clipboard.WriteAll(locator)
}
