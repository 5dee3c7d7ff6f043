package models

import "time"

// PressCategory groups press albums (editorials, rallies, government
// events and the like) under the press gallery index.
type PressCategory struct {
	ID          string    `db:"id" json:"id"`
	ParentID    string    `db:"parent_id" json:"parent_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// AlbumCount is populated by category listings.
	AlbumCount int `db:"album_count" json:"album_count"`
}

// PressAlbum is one press photo album nested two levels below the press
// gallery index (index -> category -> album).
type PressAlbum struct {
	ID           string    `db:"id" json:"id"`
	CategoryID   string    `db:"category_id" json:"category_id"`
	Title        string    `db:"title" json:"title"`
	AlbumDate    time.Time `db:"album_date" json:"album_date"`
	Location     string    `db:"location" json:"location"`
	Description  string    `db:"description" json:"description"`
	CoverImageID *string   `db:"cover_image_id" json:"cover_image_id,omitempty"`
	Published    bool      `db:"published" json:"published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// PressAlbumListing is one press album row as returned by listings, with
// the cover fallback already applied and the attachment count attached.
type PressAlbumListing struct {
	PressAlbum
	ResolvedCover *string `db:"resolved_cover" json:"resolved_cover,omitempty"`
	PhotoCount    int     `db:"photo_count" json:"photo_count"`
}

// PressImage is one ordered attachment inside a press album.
type PressImage struct {
	ID        string `db:"id" json:"id"`
	AlbumID   string `db:"album_id" json:"album_id"`
	ImageID   string `db:"image_id" json:"image_id"`
	Caption   string `db:"caption" json:"caption"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// ResolvePressCover applies the cover fallback rule to a press album.
func ResolvePressCover(album PressAlbum, images []PressImage) *string {
	if album.CoverImageID != nil && *album.CoverImageID != "" {
		return album.CoverImageID
	}
	if len(images) > 0 {
		return &images[0].ImageID
	}
	return nil
}
