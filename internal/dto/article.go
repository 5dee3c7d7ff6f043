package dto

// ArticleListRequest carries the raw article index query parameters.
type ArticleListRequest struct {
	IndexID     string
	ArticleType string
	Featured    string
	Page        string
}

// CreateArticleRequest describes the create payload for an article.
type CreateArticleRequest struct {
	ParentID         string  `json:"parent_id" validate:"required,uuid4"`
	ArticleType      string  `json:"article_type" validate:"required,articletype"`
	PublishDate      string  `json:"publish_date" validate:"required,datetime=2006-01-02"`
	PublishTime      string  `json:"publish_time" validate:"required,datetime=15:04"`
	AuthorName       string  `json:"author_name" validate:"max=255"`
	Title            string  `json:"title" validate:"required,max=255"`
	ShortDescription string  `json:"short_description" validate:"required,max=300"`
	Body             string  `json:"body" validate:"required"`
	FeaturedImageID  *string `json:"featured_image_id" validate:"omitempty,uuid4"`
	IsFeatured       bool    `json:"is_featured"`
	Published        bool    `json:"published"`
}

// UpdateArticleRequest describes the update payload for an article.
type UpdateArticleRequest struct {
	ArticleType      string  `json:"article_type" validate:"required,articletype"`
	PublishDate      string  `json:"publish_date" validate:"required,datetime=2006-01-02"`
	PublishTime      string  `json:"publish_time" validate:"required,datetime=15:04"`
	AuthorName       string  `json:"author_name" validate:"max=255"`
	Title            string  `json:"title" validate:"required,max=255"`
	ShortDescription string  `json:"short_description" validate:"required,max=300"`
	Body             string  `json:"body" validate:"required"`
	FeaturedImageID  *string `json:"featured_image_id" validate:"omitempty,uuid4"`
	IsFeatured       bool    `json:"is_featured"`
	Published        bool    `json:"published"`
}
