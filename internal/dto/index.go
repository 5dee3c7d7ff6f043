package dto

// CreateIndexPageRequest describes the create payload for an index
// (container) page. Type must name one of the index page types.
type CreateIndexPageRequest struct {
	Type         string `json:"type" validate:"required,indextype"`
	Title        string `json:"title" validate:"required,max=100"`
	Introduction string `json:"introduction"`
}

// UpdateIndexPageRequest describes the update payload for an index page.
type UpdateIndexPageRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Introduction string `json:"introduction"`
}
