// file: internals/features/news/dto/news_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/news/model"
)

type NewsCreateDTO struct {
	NewsTitle      string   `json:"news_title" validate:"required,max=200"`
	NewsContent    string   `json:"news_content" validate:"required"`
	NewsCategory   string   `json:"news_category" validate:"omitempty,max=40"`
	NewsTags       []string `json:"news_tags" validate:"omitempty,max=10,dive,max=30"`
	NewsIsFeatured bool     `json:"news_is_featured"`
	NewsStatus     string   `json:"news_status" validate:"omitempty,oneof=draft published"`
}

type NewsUpdateDTO struct {
	NewsTitle      *string   `json:"news_title,omitempty" validate:"omitempty,max=200"`
	NewsContent    *string   `json:"news_content,omitempty"`
	NewsCategory   *string   `json:"news_category,omitempty" validate:"omitempty,max=40"`
	NewsTags       *[]string `json:"news_tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
	NewsIsFeatured *bool     `json:"news_is_featured,omitempty"`
	NewsStatus     *string   `json:"news_status,omitempty" validate:"omitempty,oneof=draft published"`
}

type NewsResponse struct {
	NewsID          uuid.UUID        `json:"news_id"`
	NewsTitle       string           `json:"news_title"`
	NewsContent     string           `json:"news_content"`
	NewsCategory    string           `json:"news_category"`
	NewsTags        []string         `json:"news_tags"`
	NewsIsFeatured  bool             `json:"news_is_featured"`
	NewsStatus      model.NewsStatus `json:"news_status"`
	NewsViews       int64            `json:"news_views"`
	LikeCount       int              `json:"like_count"`
	UserHasLiked    bool             `json:"user_has_liked"`
	NewsAuthorID    *uuid.UUID       `json:"news_author_id,omitempty"`
	NewsPublishedAt *time.Time       `json:"news_published_at,omitempty"`
	NewsCreatedAt   time.Time        `json:"news_created_at"`
}

func ToNewsResponse(m model.News, viewer string) NewsResponse {
	return NewsResponse{
		NewsID:          m.NewsID,
		NewsTitle:       m.NewsTitle,
		NewsContent:     m.NewsContent,
		NewsCategory:    m.NewsCategory,
		NewsTags:        m.NewsTags,
		NewsIsFeatured:  m.NewsIsFeatured,
		NewsStatus:      m.NewsStatus,
		NewsViews:       m.NewsViews,
		LikeCount:       len(m.NewsLikedBy),
		UserHasLiked:    m.HasLiked(viewer),
		NewsAuthorID:    m.NewsAuthorID,
		NewsPublishedAt: m.NewsPublishedAt,
		NewsCreatedAt:   m.NewsCreatedAt,
	}
}

func ToNewsResponses(ms []model.News, viewer string) []NewsResponse {
	out := make([]NewsResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNewsResponse(m, viewer))
	}
	return out
}
