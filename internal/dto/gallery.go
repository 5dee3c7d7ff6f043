package dto

import "github.com/prernajain1224/MHPS-Website/internal/models"

// AlbumListRequest carries the raw gallery listing query parameters.
// DateFrom/DateTo are raw "YYYY-MM-DD" strings; values that fail to parse
// are ignored.
type AlbumListRequest struct {
	IndexID  string
	Search   string
	DateFrom string
	DateTo   string
	Page     string
}

// AlbumDetail bundles an album with its ordered attachments and the
// resolved cover image reference.
type AlbumDetail struct {
	Album      models.GalleryAlbum   `json:"album"`
	Images     []models.GalleryImage `json:"images"`
	Cover      *string               `json:"cover,omitempty"`
	PhotoCount int                   `json:"photo_count"`
}

// CreateAlbumRequest describes the create payload for a gallery album.
type CreateAlbumRequest struct {
	ParentID     string  `json:"parent_id" validate:"required,uuid4"`
	Title        string  `json:"title" validate:"required,max=255"`
	AlbumDate    string  `json:"album_date" validate:"required,datetime=2006-01-02"`
	Description  string  `json:"description"`
	CoverImageID *string `json:"cover_image_id" validate:"omitempty,uuid4"`
	Published    bool    `json:"published"`
}

// UpdateAlbumRequest describes the update payload for a gallery album.
type UpdateAlbumRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	AlbumDate    string  `json:"album_date" validate:"required,datetime=2006-01-02"`
	Description  string  `json:"description"`
	CoverImageID *string `json:"cover_image_id" validate:"omitempty,uuid4"`
	Published    bool    `json:"published"`
}

// AddImageRequest describes the payload appending one attachment to an
// album.
type AddImageRequest struct {
	ImageID string `json:"image_id" validate:"required,uuid4"`
	Caption string `json:"caption" validate:"max=255"`
}

// ReorderImagesRequest describes the payload that rewrites an album's
// attachment order. IDs are attachment ids in the desired display order.
type ReorderImagesRequest struct {
	ImageIDs []string `json:"image_ids" validate:"required,min=1,dive,uuid4"`
}
