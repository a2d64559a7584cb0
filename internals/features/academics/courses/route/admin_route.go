// file: internals/features/academics/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/academics/courses/controller"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/courses")
	g.Get("/", h.ListCourses)
	g.Get("/codes", h.ListCourseCodes)
	g.Post("/", h.CreateCourse)
	g.Patch("/:id", h.UpdateCourse)
	g.Delete("/:id", h.DeleteCourse)
}
