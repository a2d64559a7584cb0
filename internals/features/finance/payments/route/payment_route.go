// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "uniberg_backend/internals/features/finance/payments/controller"
)

// PaymentRoutes mounts the authenticated payment endpoints.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	g := r.Group("/payments")
	g.Post("/", h.InitiatePayment)
	g.Get("/", h.ListPayments)
	g.Get("/:id", h.GetPayment)
}

// PaymentWebhookRoutes mounts the unauthenticated gateway callback.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)
	r.Post("/payments/notification", h.HandleNotification)
}
