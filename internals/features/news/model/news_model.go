// file: internals/features/news/model/news_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
)

type News struct {
	// PK
	NewsID uuid.UUID `gorm:"column:news_id;type:uuid;primaryKey" json:"news_id"`

	NewsTitle   string `gorm:"column:news_title;type:varchar(200);not null" json:"news_title"`
	NewsContent string `gorm:"column:news_content;type:text;not null" json:"news_content"`

	NewsCategory string `gorm:"column:news_category;type:varchar(40);not null;default:'general';index:ix_news_category" json:"news_category"`

	NewsTags pq.StringArray `gorm:"column:news_tags;type:text[]" json:"news_tags"`

	NewsIsFeatured bool       `gorm:"column:news_is_featured;not null;default:false;index:ix_news_featured" json:"news_is_featured"`
	NewsStatus     NewsStatus `gorm:"column:news_status;type:varchar(20);not null;default:'published';index:ix_news_status" json:"news_status"`

	// Identifiers of everyone who liked the article; one like per user.
	NewsLikedBy pq.StringArray `gorm:"column:news_liked_by;type:text[]" json:"-"`

	NewsViews int64 `gorm:"column:news_views;not null;default:0" json:"news_views"`

	// FK → staff(staff_id)
	NewsAuthorID *uuid.UUID `gorm:"column:news_author_id;type:uuid" json:"news_author_id,omitempty"`

	NewsPublishedAt *time.Time `gorm:"column:news_published_at" json:"news_published_at,omitempty"`

	NewsCreatedAt time.Time      `gorm:"column:news_created_at;not null" json:"news_created_at"`
	NewsUpdatedAt time.Time      `gorm:"column:news_updated_at;not null" json:"news_updated_at"`
	NewsDeletedAt gorm.DeletedAt `gorm:"column:news_deleted_at;index" json:"-"`
}

func (News) TableName() string {
	return "news"
}

func (m *News) BeforeCreate(tx *gorm.DB) (err error) {
	if m.NewsID == uuid.Nil {
		m.NewsID = uuid.New()
	}
	now := time.Now()
	if m.NewsCreatedAt.IsZero() {
		m.NewsCreatedAt = now
	}
	m.NewsUpdatedAt = now
	if m.NewsStatus == NewsStatusPublished && m.NewsPublishedAt == nil {
		m.NewsPublishedAt = &now
	}
	return nil
}

func (m *News) BeforeUpdate(tx *gorm.DB) (err error) {
	m.NewsUpdatedAt = time.Now()
	return nil
}

// HasLiked reports whether the identifier already liked the article.
func (m *News) HasLiked(identifier string) bool {
	for _, id := range m.NewsLikedBy {
		if id == identifier {
			return true
		}
	}
	return false
}

// ToggleLike adds or removes the identifier and reports whether the
// article is liked afterwards.
func (m *News) ToggleLike(identifier string) bool {
	for i, id := range m.NewsLikedBy {
		if id == identifier {
			m.NewsLikedBy = append(m.NewsLikedBy[:i], m.NewsLikedBy[i+1:]...)
			return false
		}
	}
	m.NewsLikedBy = append(m.NewsLikedBy, identifier)
	return true
}
