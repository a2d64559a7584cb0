// file: internals/features/finance/accounts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/finance/accounts/controller"
	"uniberg_backend/internals/middlewares"
)

func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	g := r.Group("/finance")
	g.Get("/dashboard", h.Dashboard)
	g.Get("/transactions/search", h.SearchTransactions)
	g.Post("/transactions", h.CreateTransaction)
	g.Post("/transactions/bulk", middlewares.BulkWriteRateLimiter(), h.BulkBilling)
	g.Patch("/transactions/:id", h.UpdateTransaction)
	g.Get("/students/:student_id/transactions", h.ListStudentTransactions)
	g.Get("/students/:student_id/balance", h.GetStudentBalance)
	g.Post("/students/:student_id/recalculate", h.RecalculateBalances)
}
