// file: internals/features/students/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/students/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/students")
	g.Get("/", h.SearchStudents)
	g.Post("/", h.CreateStudent)
	g.Post("/import", h.ImportStudents)
	g.Get("/:id", h.GetStudent)
	g.Patch("/:id", h.UpdateStudent)
	g.Delete("/:id", h.DeleteStudent)
}
