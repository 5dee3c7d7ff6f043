package dto

import "github.com/prernajain1224/MHPS-Website/internal/models"

// PressAlbumDetail bundles a press album with its ordered attachments and
// the resolved cover image reference.
type PressAlbumDetail struct {
	Album      models.PressAlbum   `json:"album"`
	Images     []models.PressImage `json:"images"`
	Cover      *string             `json:"cover,omitempty"`
	PhotoCount int                 `json:"photo_count"`
}

// CreatePressCategoryRequest describes the create payload for a press
// gallery category.
type CreatePressCategoryRequest struct {
	ParentID    string `json:"parent_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// UpdatePressCategoryRequest describes the update payload for a press
// gallery category.
type UpdatePressCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// CreatePressAlbumRequest describes the create payload for a press album.
type CreatePressAlbumRequest struct {
	CategoryID   string  `json:"category_id" validate:"required,uuid4"`
	Title        string  `json:"title" validate:"required,max=255"`
	AlbumDate    string  `json:"album_date" validate:"required,datetime=2006-01-02"`
	Location     string  `json:"location" validate:"max=255"`
	Description  string  `json:"description"`
	CoverImageID *string `json:"cover_image_id" validate:"omitempty,uuid4"`
	Published    bool    `json:"published"`
}

// UpdatePressAlbumRequest describes the update payload for a press album.
type UpdatePressAlbumRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	AlbumDate    string  `json:"album_date" validate:"required,datetime=2006-01-02"`
	Location     string  `json:"location" validate:"max=255"`
	Description  string  `json:"description"`
	CoverImageID *string `json:"cover_image_id" validate:"omitempty,uuid4"`
	Published    bool    `json:"published"`
}
