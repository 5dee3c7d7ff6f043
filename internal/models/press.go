package models

import "time"

// PressKind distinguishes the four press content variants that share one
// field set and one listing (selected through the index page tabs).
type PressKind string

const (
	PressKindRelease   PressKind = "press-release"
	PressKindNews      PressKind = "news"
	PressKindInterview PressKind = "interview"
	PressKindEditorial PressKind = "editorial"
)

// PressKinds is the fixed tab order shown on the press index page.
var PressKinds = []PressKind{PressKindRelease, PressKindNews, PressKindInterview, PressKindEditorial}

// ValidPressKind reports whether the value names a known press variant.
func ValidPressKind(v string) bool {
	switch PressKind(v) {
	case PressKindRelease, PressKindNews, PressKindInterview, PressKindEditorial:
		return true
	}
	return false
}

// PressItem represents one press release, news item, interview or
// editorial stored in the press_items table.
type PressItem struct {
	ID          string    `db:"id" json:"id"`
	ParentID    string    `db:"parent_id" json:"parent_id"`
	Kind        PressKind `db:"kind" json:"kind"`
	ItemDate    time.Time `db:"item_date" json:"item_date"`
	AuthorNames string    `db:"author_names" json:"author_names"`
	ShortTitle  string    `db:"short_title" json:"short_title"`
	Body        string    `db:"body" json:"body"`
	IsFeatured  bool      `db:"is_featured" json:"is_featured"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PressFilter captures listing criteria for press items. Unset fields are
// no-ops; listings are always scoped to one index page and published rows.
type PressFilter struct {
	ParentID string
	Kind     PressKind
	Featured *bool
	Page     int
	PageSize int
}
