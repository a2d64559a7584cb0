// file: internals/features/staff/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/staff/controller"
)

func StaffRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/staff")
	g.Get("/", h.ListStaff)
	g.Get("/:id", h.GetStaff)
	g.Post("/", h.CreateStaff)
	g.Patch("/:id", h.UpdateStaff)
	g.Post("/:id/change-role", h.ChangeRole)
	g.Delete("/:id", h.DeleteStaff)
}
