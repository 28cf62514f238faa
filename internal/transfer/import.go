package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/richtext"
)

// Merge strategies for notes whose id already exists in the collection.
const (
	MergeSkip    = "skip"
	MergeReplace = "replace"
)

// Options controls duplicate handling. MergeStrategy, when set, decides
// alone; when empty, SkipDuplicates selects skip (true) or replace (false).
type Options struct {
	SkipDuplicates bool
	MergeStrategy  string
}

func DefaultOptions() Options {
	return Options{SkipDuplicates: true, MergeStrategy: MergeSkip}
}

// Validation is the outcome of shape-checking an import payload. Records
// that fail a check are excluded and recorded in Errors; they never abort
// the batch.
type Validation struct {
	Valid  []note.Note
	Errors []string
}

// Validate accepts either an export Document or a bare note array and
// shape-checks every record. Top-level garbage is the only fatal case.
func Validate(raw []byte) (*Validation, error) {
	var records []json.RawMessage

	var doc struct {
		Notes []json.RawMessage `json:"notes"`
	}
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Notes != nil {
		records = doc.Notes
	} else if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperror.Validation(apperror.FieldGeneral, "invalid data format, expected an object or an array")
	}

	if len(records) == 0 {
		return nil, apperror.Validation(apperror.FieldGeneral, "no notes found in the imported data")
	}

	v := &Validation{}
	for i, record := range records {
		var fields map[string]any
		if err := json.Unmarshal(record, &fields); err != nil {
			v.Errors = append(v.Errors, fmt.Sprintf("note %d: not an object", i+1))
			continue
		}

		recordErrs := checkRecord(i, fields)
		if len(recordErrs) > 0 {
			v.Errors = append(v.Errors, recordErrs...)
			continue
		}

		var n note.Note
		if err := json.Unmarshal(record, &n); err != nil {
			v.Errors = append(v.Errors, fmt.Sprintf("note %d: %v", i+1, err))
			continue
		}
		v.Valid = append(v.Valid, n)
	}
	return v, nil
}

func checkRecord(i int, fields map[string]any) []string {
	var errs []string

	if s, ok := fields["id"].(string); !ok || s == "" {
		errs = append(errs, fmt.Sprintf("note %d: missing or invalid 'id' field", i+1))
	}
	if s, ok := fields["title"].(string); !ok || s == "" {
		errs = append(errs, fmt.Sprintf("note %d: missing or invalid 'title' field", i+1))
	}
	// Content may be the empty string but must be present and a string.
	if _, ok := fields["content"].(string); !ok {
		errs = append(errs, fmt.Sprintf("note %d: missing or invalid 'content' field", i+1))
	}
	if _, ok := fields["tags"].([]any); !ok {
		errs = append(errs, fmt.Sprintf("note %d: 'tags' must be an array", i+1))
	}
	return errs
}

// Result reports an import. Errors carries per-record rejections from
// validation; their presence does not make the import a failure.
type Result struct {
	Imported int
	Skipped  int
	Errors   []string
}

// Import merges incoming notes into the collection. Duplicate detection is
// by exact id; the strategy decides whether the duplicate is skipped or
// replaces the existing record. The merged collection is persisted in a
// single write, so a storage failure means nothing was imported.
func (e *Engine) Import(incoming []note.Note, opts Options) (*Result, error) {
	strategy := opts.MergeStrategy
	if strategy == "" {
		// An explicit strategy wins; otherwise SkipDuplicates picks it.
		if opts.SkipDuplicates {
			strategy = MergeSkip
		} else {
			strategy = MergeReplace
		}
	}
	if strategy != MergeSkip && strategy != MergeReplace {
		return nil, apperror.Validation(apperror.FieldGeneral,
			fmt.Sprintf("unknown merge strategy %q", opts.MergeStrategy))
	}

	existing := e.notes.All()
	index := make(map[string]int, len(existing))
	for i, n := range existing {
		index[n.ID] = i
	}

	res := &Result{}
	var added []note.Note
	for _, n := range incoming {
		if i, dup := index[n.ID]; dup {
			if strategy == MergeSkip {
				res.Skipped++
				continue
			}
			existing[i] = n
			res.Imported++
			continue
		}
		added = append(added, normalize(n))
		res.Imported++
	}

	if err := e.notes.ReplaceAll(append(existing, added...)); err != nil {
		return nil, err
	}
	return res, nil
}

// ImportRaw validates raw JSON and imports the accepted records, carrying
// validation rejections over into the result.
func (e *Engine) ImportRaw(raw []byte, opts Options) (*Result, error) {
	v, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	res, err := e.Import(v.Valid, opts)
	if err != nil {
		return nil, err
	}
	res.Errors = append(v.Errors, res.Errors...)
	return res, nil
}

// normalize fills the fields an external record may lack and sanitizes the
// markup its content may carry. Only applied to records new to the
// collection; a replace keeps the incoming record verbatim.
func normalize(n note.Note) note.Note {
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.LastEdited.IsZero() {
		n.LastEdited = now
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	n.Content = richtext.Sanitize(n.Content)
	return n
}
