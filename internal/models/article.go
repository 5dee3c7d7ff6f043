package models

import "time"

// ArticleType categorises published articles.
type ArticleType string

const (
	ArticleTypeAnalysis   ArticleType = "analysis"
	ArticleTypeOpinion    ArticleType = "opinion"
	ArticleTypeResearch   ArticleType = "research"
	ArticleTypeCommentary ArticleType = "commentary"
	ArticleTypeReport     ArticleType = "report"
)

// ArticleTypes is the fixed choice list echoed to the rendering layer.
var ArticleTypes = []ArticleType{ArticleTypeAnalysis, ArticleTypeOpinion, ArticleTypeResearch, ArticleTypeCommentary, ArticleTypeReport}

// ValidArticleType reports whether the value names a known article type.
func ValidArticleType(v string) bool {
	switch ArticleType(v) {
	case ArticleTypeAnalysis, ArticleTypeOpinion, ArticleTypeResearch, ArticleTypeCommentary, ArticleTypeReport:
		return true
	}
	return false
}

// Article represents one article page stored in the articles table.
// FeaturedImageID references the external media library.
type Article struct {
	ID               string      `db:"id" json:"id"`
	ParentID         string      `db:"parent_id" json:"parent_id"`
	ArticleType      ArticleType `db:"article_type" json:"article_type"`
	PublishDate      time.Time   `db:"publish_date" json:"publish_date"`
	PublishTime      string      `db:"publish_time" json:"publish_time"`
	AuthorName       string      `db:"author_name" json:"author_name"`
	Title            string      `db:"title" json:"title"`
	ShortDescription string      `db:"short_description" json:"short_description"`
	Body             string      `db:"body" json:"body"`
	FeaturedImageID  *string     `db:"featured_image_id" json:"featured_image_id,omitempty"`
	IsFeatured       bool        `db:"is_featured" json:"is_featured"`
	Published        bool        `db:"published" json:"published"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}

// ArticleFilter captures listing criteria for articles.
type ArticleFilter struct {
	ParentID    string
	ArticleType ArticleType
	Featured    *bool
	Page        int
	PageSize    int
}
