// file: internals/features/students/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/students/enrollments/controller"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/students/:student_id/enrollments")
	g.Post("/", h.EnrollCourses)
	g.Get("/", h.ListStudentEnrollments)
	g.Delete("/:id", h.DropEnrollment)
}
