// file: internals/features/news/controller/news_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "uniberg_backend/internals/features/news/dto"
	model "uniberg_backend/internals/features/news/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// viewer identifies who is reading, for like bookkeeping. Authenticated
// staff use their id, everyone else falls back to the client IP.
func (h *Handler) viewer(c *fiber.Ctx) string {
	if id := helper.GetStaffID(c); id != uuid.Nil {
		return "staff:" + id.String()
	}
	return "ip:" + c.IP()
}

/* ===============================
   Listings
=================================*/

// GET /api/news
func (h *Handler) ListNews(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := h.DB.WithContext(c.UserContext()).Model(&model.News{}).
		Where("news_status = ?", model.NewsStatusPublished)

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("news_category = ?", category)
	}
	if c.QueryBool("featured") {
		q = q.Where("news_is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []model.News
	if err := q.Order("news_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "news", dto.ToNewsResponses(rows, h.viewer(c)), &pagination)
}

// GET /api/news/drafts
func (h *Handler) ListDrafts(c *fiber.Ctx) error {
	var rows []model.News
	if err := h.DB.WithContext(c.UserContext()).
		Where("news_status = ?", model.NewsStatusDraft).
		Order("news_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "drafts", dto.ToNewsResponses(rows, h.viewer(c)))
}

// GET /api/news/:id
//
// Published articles only. Each read bumps the view counter and returns
// up to five related articles from the same category.
func (h *Handler) GetNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var article model.News
	if err := h.DB.WithContext(c.UserContext()).
		First(&article, "news_id = ? AND news_status = ?", id, model.NewsStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "news not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&model.News{}).
		Where("news_id = ?", id).
		UpdateColumn("news_views", gorm.Expr("news_views + 1")).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	article.NewsViews++

	var related []model.News
	if err := h.DB.WithContext(c.UserContext()).
		Where("news_category = ? AND news_status = ? AND news_id <> ?",
			article.NewsCategory, model.NewsStatusPublished, id).
		Order("news_created_at DESC").Limit(5).Find(&related).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	viewer := h.viewer(c)
	return helper.JsonOK(c, "news detail", fiber.Map{
		"news":    dto.ToNewsResponse(article, viewer),
		"related": dto.ToNewsResponses(related, viewer),
	})
}

/* ===============================
   Writes
=================================*/

// POST /api/news
func (h *Handler) CreateNews(c *fiber.Ctx) error {
	var in dto.NewsCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	status := model.NewsStatusPublished
	if in.NewsStatus != "" {
		status = model.NewsStatus(in.NewsStatus)
	}
	category := in.NewsCategory
	if category == "" {
		category = "general"
	}

	var author *uuid.UUID
	if id := helper.GetStaffID(c); id != uuid.Nil {
		author = &id
	}

	article := model.News{
		NewsTitle:      in.NewsTitle,
		NewsContent:    in.NewsContent,
		NewsCategory:   category,
		NewsTags:       in.NewsTags,
		NewsIsFeatured: in.NewsIsFeatured,
		NewsStatus:     status,
		NewsLikedBy:    []string{},
		NewsAuthorID:   author,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&article).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "news created", dto.ToNewsResponse(article, h.viewer(c)))
}

// PATCH /api/news/:id
func (h *Handler) UpdateNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.NewsUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var article model.News
	if err := h.DB.WithContext(c.UserContext()).First(&article, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "news not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if in.NewsTitle != nil {
		article.NewsTitle = *in.NewsTitle
	}
	if in.NewsContent != nil {
		article.NewsContent = *in.NewsContent
	}
	if in.NewsCategory != nil {
		article.NewsCategory = *in.NewsCategory
	}
	if in.NewsTags != nil {
		article.NewsTags = *in.NewsTags
	}
	if in.NewsIsFeatured != nil {
		article.NewsIsFeatured = *in.NewsIsFeatured
	}
	if in.NewsStatus != nil {
		next := model.NewsStatus(*in.NewsStatus)
		if article.NewsStatus == model.NewsStatusDraft && next == model.NewsStatusPublished {
			now := time.Now()
			article.NewsPublishedAt = &now
		}
		article.NewsStatus = next
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&article).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "news updated", dto.ToNewsResponse(article, h.viewer(c)))
}

// POST /api/news/:id/publish
func (h *Handler) PublishNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	now := time.Now()
	res := h.DB.WithContext(c.UserContext()).Model(&model.News{}).
		Where("news_id = ? AND news_status = ?", id, model.NewsStatusDraft).
		Updates(map[string]any{
			"news_status":       model.NewsStatusPublished,
			"news_published_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "draft not found")
	}
	return helper.JsonUpdated(c, "news published", fiber.Map{"news_id": id})
}

// DELETE /api/news/:id — soft delete
func (h *Handler) DeleteNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.News{}, "news_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "news not found")
	}
	return helper.JsonDeleted(c, "news deleted", fiber.Map{"news_id": id})
}

// POST /api/news/:id/like — toggle
func (h *Handler) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var article model.News
	if err := h.DB.WithContext(c.UserContext()).
		First(&article, "news_id = ? AND news_status = ?", id, model.NewsStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "news not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	liked := article.ToggleLike(h.viewer(c))
	if err := h.DB.WithContext(c.UserContext()).Model(&model.News{}).
		Where("news_id = ?", id).
		Update("news_liked_by", article.NewsLikedBy).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "like toggled", fiber.Map{
		"news_id":    id,
		"liked":      liked,
		"like_count": len(article.NewsLikedBy),
	})
}
