package models

import "time"

// PageType identifies each node kind in the content tree.
type PageType string

const (
	PageTypePressIndex        PageType = "PRESS_INDEX"
	PageTypeEventIndex        PageType = "EVENT_INDEX"
	PageTypeAboutIndex        PageType = "ABOUT_INDEX"
	PageTypeGalleryIndex      PageType = "GALLERY_INDEX"
	PageTypeArticleIndex      PageType = "ARTICLE_INDEX"
	PageTypePressGalleryIndex PageType = "PRESS_GALLERY_INDEX"
	PageTypePressItem         PageType = "PRESS_ITEM"
	PageTypeEvent             PageType = "EVENT"
	PageTypeHistoricalEvent   PageType = "HISTORICAL_EVENT"
	PageTypeGalleryAlbum      PageType = "GALLERY_ALBUM"
	PageTypeArticle           PageType = "ARTICLE"
	PageTypePressCategory     PageType = "PRESS_CATEGORY"
	PageTypePressAlbum        PageType = "PRESS_ALBUM"
)

// Page is the registry row shared by every node in the content tree.
// Detail columns live in the per-family tables keyed by the same id.
type Page struct {
	ID        string    `db:"id" json:"id"`
	Type      PageType  `db:"type" json:"type"`
	ParentID  *string   `db:"parent_id" json:"parent_id,omitempty"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IndexPageTypes lists the container page types that live at the root
// of the content tree.
var IndexPageTypes = []PageType{
	PageTypePressIndex,
	PageTypeEventIndex,
	PageTypeAboutIndex,
	PageTypeGalleryIndex,
	PageTypeArticleIndex,
	PageTypePressGalleryIndex,
}

// ValidIndexType reports whether the given value names an index page type.
func ValidIndexType(v string) bool {
	for _, t := range IndexPageTypes {
		if string(t) == v {
			return true
		}
	}
	return false
}

// AllowedParents encodes the tree placement rules as data. Index pages
// live at the root (no entry); every other type lists the page types it
// may be created under.
var AllowedParents = map[PageType][]PageType{
	PageTypePressItem:       {PageTypePressIndex},
	PageTypeEvent:           {PageTypeEventIndex},
	PageTypeHistoricalEvent: {PageTypeAboutIndex},
	PageTypeGalleryAlbum:    {PageTypeGalleryIndex},
	PageTypeArticle:         {PageTypeArticleIndex},
	PageTypePressCategory:   {PageTypePressGalleryIndex},
	PageTypePressAlbum:      {PageTypePressCategory},
}

// ParentAllowed reports whether a child of the given type may be placed
// under a parent of the given type.
func ParentAllowed(child, parent PageType) bool {
	allowed, ok := AllowedParents[child]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == parent {
			return true
		}
	}
	return false
}

// IndexPage is a container page listing its children of one content family.
type IndexPage struct {
	ID           string    `db:"id" json:"id"`
	Type         PageType  `db:"type" json:"type"`
	Title        string    `db:"title" json:"title"`
	Introduction string    `db:"introduction" json:"introduction"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}
