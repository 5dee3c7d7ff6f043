package dto

// PressListRequest carries the raw press index query parameters. Page is
// kept as the raw string so malformed values can degrade to page 1.
type PressListRequest struct {
	IndexID  string
	Tab      string
	Featured string
	Page     string
}

// CreatePressItemRequest describes the create payload for a press item.
type CreatePressItemRequest struct {
	ParentID    string `json:"parent_id" validate:"required,uuid4"`
	Kind        string `json:"kind" validate:"required,presskind"`
	ItemDate    string `json:"item_date" validate:"required,datetime=2006-01-02"`
	AuthorNames string `json:"author_names"`
	ShortTitle  string `json:"short_title" validate:"required,max=255"`
	Body        string `json:"body" validate:"required"`
	IsFeatured  bool   `json:"is_featured"`
	Published   bool   `json:"published"`
}

// UpdatePressItemRequest describes the update payload for a press item.
type UpdatePressItemRequest struct {
	Kind        string `json:"kind" validate:"required,presskind"`
	ItemDate    string `json:"item_date" validate:"required,datetime=2006-01-02"`
	AuthorNames string `json:"author_names"`
	ShortTitle  string `json:"short_title" validate:"required,max=255"`
	Body        string `json:"body" validate:"required"`
	IsFeatured  bool   `json:"is_featured"`
	Published   bool   `json:"published"`
}
