// file: internals/features/news/route/news_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/news/controller"
)

// PublicNewsRoutes serves the published feed to anyone.
func PublicNewsRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/news")
	g.Get("/", h.ListNews)
	g.Get("/:id", h.GetNews)
	g.Post("/:id/like", h.ToggleLike)
}

// AdminNewsRoutes covers drafting and publication.
func AdminNewsRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/news")
	g.Get("/drafts", h.ListDrafts)
	g.Post("/", h.CreateNews)
	g.Patch("/:id", h.UpdateNews)
	g.Post("/:id/publish", h.PublishNews)
	g.Delete("/:id", h.DeleteNews)
}
