// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "uniberg_backend/internals/features/academics/courses/route"
	programRoute "uniberg_backend/internals/features/academics/programs/route"
	schoolRoute "uniberg_backend/internals/features/academics/schools/route"
	financeRoute "uniberg_backend/internals/features/finance/accounts/route"
	paymentRoute "uniberg_backend/internals/features/finance/payments/route"
	caRoute "uniberg_backend/internals/features/grades/ca/route"
	gradeRoute "uniberg_backend/internals/features/grades/grades/route"
	newsRoute "uniberg_backend/internals/features/news/route"
	staffRoute "uniberg_backend/internals/features/staff/route"
	enrollmentRoute "uniberg_backend/internals/features/students/enrollments/route"
	studentRoute "uniberg_backend/internals/features/students/students/route"
	"uniberg_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Gateway callbacks authenticate by payload signature, not by token.
	paymentRoute.PaymentWebhookRoutes(api, db)

	// Staff-only surface. Registered before the public groups so fixed
	// paths like /news/drafts resolve ahead of /news/:id.
	admin := api.Group("", auth.AuthRequired())
	schoolRoute.SchoolRoutes(admin, db)
	programRoute.ProgramRoutes(admin, db)
	courseRoute.CourseRoutes(admin, db)
	studentRoute.StudentRoutes(admin, db)
	enrollmentRoute.EnrollmentRoutes(admin, db)
	staffRoute.StaffRoutes(admin, db)
	financeRoute.FinanceRoutes(admin, db)
	gradeRoute.GradeAdminRoutes(admin, db)
	caRoute.CARoutes(admin, db)
	newsRoute.AdminNewsRoutes(admin, db)

	// Anyone may read; a valid staff token upgrades what the grade
	// handlers disclose.
	public := api.Group("", auth.AuthOptional())
	gradeRoute.GradeViewRoutes(public, db)
	paymentRoute.PaymentRoutes(public, db)
	newsRoute.PublicNewsRoutes(public, db)
}
