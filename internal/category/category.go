// Package category manages the named groupings a note may belong to.
package category

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxNameLength bounds category names, counted in runes.
const MaxNameLength = 30

// palette for randomly assigned badge colors.
var palette = []string{
	"#335CFF", "#FF6B6B", "#4ECDC4", "#FFE66D",
	"#A8E6CF", "#FF8B94", "#95E1D3", "#F38181",
	"#AA96DA", "#FCBAD3", "#A8D8EA", "#FFD3A5",
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	// NoteCount is a denormalized cache of how many notes reference this
	// category. WithCounts recomputes it; the stored value may lag.
	NoteCount int `json:"noteCount"`
}

// New builds a category without persisting it. An empty color draws a random
// one from the palette.
func New(name, color, icon string) Category {
	if color == "" {
		color = palette[rand.Intn(len(palette))]
	}
	return Category{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now(),
	}
}
