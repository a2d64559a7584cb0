// file: internals/features/academics/programs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/academics/programs/controller"
)

func ProgramRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/programs")
	g.Get("/", h.ListPrograms)
	g.Post("/", h.CreateProgram)
	g.Patch("/:id", h.UpdateProgram)
	g.Delete("/:id", h.DeleteProgram)

	// dropdown source for the registration forms
	r.Get("/schools/:school_id/programs", h.ListProgramsBySchool)
}
