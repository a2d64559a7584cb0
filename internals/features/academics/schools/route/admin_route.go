// file: internals/features/academics/schools/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/academics/schools/controller"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/schools")
	g.Get("/", h.ListSchools)
	g.Post("/", h.CreateSchool)
	g.Patch("/:id", h.UpdateSchool)
	g.Delete("/:id", h.DeleteSchool)
}
