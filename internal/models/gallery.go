package models

import "time"

// GalleryAlbum represents one photo album on the public gallery.
// CoverImageID is the explicitly chosen cover; when nil the first ordered
// attachment supplies the cover.
type GalleryAlbum struct {
	ID           string    `db:"id" json:"id"`
	ParentID     string    `db:"parent_id" json:"parent_id"`
	Title        string    `db:"title" json:"title"`
	AlbumDate    time.Time `db:"album_date" json:"album_date"`
	Description  string    `db:"description" json:"description"`
	CoverImageID *string   `db:"cover_image_id" json:"cover_image_id,omitempty"`
	Published    bool      `db:"published" json:"published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// GalleryImage is one ordered attachment inside an album. ImageID
// references the external media library; SortOrder is significant for
// display and for cover fallback.
type GalleryImage struct {
	ID        string `db:"id" json:"id"`
	AlbumID   string `db:"album_id" json:"album_id"`
	ImageID   string `db:"image_id" json:"image_id"`
	Caption   string `db:"caption" json:"caption"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// ResolveCover applies the cover fallback rule to an album and its
// attachments (already in display order). It returns nil when the album
// has no explicit cover and no attachments.
func ResolveCover(album GalleryAlbum, images []GalleryImage) *string {
	if album.CoverImageID != nil && *album.CoverImageID != "" {
		return album.CoverImageID
	}
	if len(images) > 0 {
		return &images[0].ImageID
	}
	return nil
}

// AlbumListing is one gallery album row as returned by listings, with the
// cover fallback already applied and the attachment count attached.
type AlbumListing struct {
	GalleryAlbum
	ResolvedCover *string `db:"resolved_cover" json:"resolved_cover,omitempty"`
	PhotoCount    int     `db:"photo_count" json:"photo_count"`
}

// AlbumFilter captures listing criteria for gallery albums. A non-empty
// Search replaces the date ordering with relevance ordering.
type AlbumFilter struct {
	ParentID string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
