package models

import (
	"time"
)

// NewsArticle is a news item or announcement, table 'news_articles'
type NewsArticle struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Author      string     `json:"author" db:"author"`
	Featured    bool       `json:"featured" db:"featured"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"` // null while unpublished
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// NewsArticleInput is used for create (Validate) and partial update (ValidatePartial)
type NewsArticleInput struct {
	Title     *string `json:"title" validate:"required,notblank,max=255"`
	Content   *string `json:"content" validate:"required,notblank"`
	Excerpt   *string `json:"excerpt" validate:"required,notblank,max=500"`
	Author    *string `json:"author" validate:"required,notblank,max=100"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
}

// NewNewsArticle builds an article from a validated create input
func NewNewsArticle(in *NewsArticleInput) *NewsArticle {
	a := &NewsArticle{}
	a.Apply(in, time.Time{})
	// stamped on insert
	a.PublishedAt = nil
	return a
}

// Apply merges the supplied fields into a and recomputes the publish timestamp
func (a *NewsArticle) Apply(in *NewsArticleInput, now time.Time) {
	setString(&a.Title, in.Title)
	setString(&a.Content, in.Content)
	setString(&a.Excerpt, in.Excerpt)
	setString(&a.Author, in.Author)
	setBool(&a.Featured, in.Featured)

	a.PublishedAt = PublishedAtAfterUpdate(a.Published, a.PublishedAt, in.Published, now)
	setBool(&a.Published, in.Published)
}
