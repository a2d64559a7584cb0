// file: internals/features/grades/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/grades/grades/controller"
)

// GradeViewRoutes serves grade reads. The visibility gate inside the
// handlers decides per semester what gets redacted, so these mount on
// the optionally-authenticated group.
func GradeViewRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	g := r.Group("/grades")
	g.Get("/scale", h.GetGradeScale)
	g.Get("/students/:student_id/visibility", h.CheckVisibility)
	g.Get("/students/:student_id/:exam_type", h.GetGrades)
	g.Get("/students/:student_id", h.GetStudentAllGrades)
}

// GradeAdminRoutes covers grade entry, staff only.
func GradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	g := r.Group("/grades")
	g.Post("/students/:student_id/:exam_type", h.SaveGrades)
}
