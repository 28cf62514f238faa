// Package note holds the note model and its repository.
package note

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is where a note was written. City and country come from reverse
// geocoding and may be empty when the lookup failed.
type Location struct {
	Coordinates Coordinates `json:"coordinates"`
	City        string      `json:"city,omitempty"`
	Country     string      `json:"country,omitempty"`
}

type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	LastEdited time.Time `json:"lastEdited"`
	IsArchived bool      `json:"isArchived"`
	Location   *Location `json:"location,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
}

// New builds a note without persisting it; persistence is the caller's
// explicit next step through Repository.Add. CreatedAt and LastEdited start
// equal.
func New(title, content string, tags []string) Note {
	now := time.Now()
	return Note{
		ID:         uuid.New().String(),
		Title:      strings.TrimSpace(title),
		Content:    strings.TrimSpace(content),
		Tags:       normalizeTags(tags),
		CreatedAt:  now,
		LastEdited: now,
		IsArchived: false,
	}
}

// normalizeTags trims every tag, drops empties and removes case-sensitive
// duplicates while keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Matches reports whether the note matches a case-insensitive substring
// query against title, content or any tag.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
