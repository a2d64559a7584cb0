// file: internals/features/grades/ca/route/ca_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/grades/ca/controller"
)

func CARoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/ca")
	g.Post("/students/:student_id", h.SaveCAScores)
	g.Get("/students/:student_id", h.GetStudentCA)
}
