// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accountModel "uniberg_backend/internals/features/finance/accounts/model"
	accountService "uniberg_backend/internals/features/finance/accounts/service"
	dto "uniberg_backend/internals/features/finance/payments/dto"
	model "uniberg_backend/internals/features/finance/payments/model"
	service "uniberg_backend/internals/features/finance/payments/service"
	studentModel "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB     *gorm.DB
	Ledger *accountService.Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Ledger: accountService.NewService(db)}
}

// NewHandlerWith shares a ledger service with the accounts feature so
// webhook settlements and manual entries serialize on the same locks.
func NewHandlerWith(db *gorm.DB, ledger *accountService.Service) *Handler {
	return &Handler{DB: db, Ledger: ledger}
}

/* ===============================
   Initiation
=================================*/

// POST /api/payments
func (h *Handler) InitiatePayment(c *fiber.Ctx) error {
	if !service.GatewayConfigured() {
		return helper.JsonError(c, http.StatusServiceUnavailable, "online payments are not available")
	}

	var in dto.PaymentInitiateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if !in.PaymentAmount.IsPositive() {
		return helper.JsonError(c, http.StatusBadRequest, "amount must be greater than zero")
	}

	var student studentModel.Student
	if err := h.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", in.PaymentStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	payment := model.Payment{
		PaymentStudentID:    in.PaymentStudentID,
		PaymentOrderID:      fmt.Sprintf("UB-%s", uuid.NewString()),
		PaymentAmount:       in.PaymentAmount.Round(2),
		PaymentDescription:  in.PaymentDescription,
		PaymentAcademicYear: in.PaymentAcademicYear,
		PaymentSemester:     in.PaymentSemester,
		PaymentStatus:       model.PaymentStatusPending,
	}

	phone := ""
	if student.StudentPhone != nil {
		phone = *student.StudentPhone
	}
	token, redirectURL, err := service.GenerateSnapToken(service.SnapInput{
		OrderID:     payment.PaymentOrderID,
		Amount:      payment.PaymentAmount,
		Description: payment.PaymentDescription,
		FirstName:   student.StudentFirstName,
		LastName:    student.StudentLastName,
		Email:       student.StudentEmail,
		Phone:       phone,
	})
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, err.Error())
	}
	payment.PaymentSnapToken = &token
	payment.PaymentRedirectURL = &redirectURL

	if err := h.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "payment initiated", dto.ToPaymentResponse(payment))
}

/* ===============================
   Gateway notifications
=================================*/

// POST /api/payments/notification
//
// Unauthenticated webhook endpoint; trust comes from the signature. A
// settlement posts exactly one clearing entry to the ledger, replays of
// the same notification are acknowledged without a second entry.
func (h *Handler) HandleNotification(c *fiber.Ctx) error {
	var in dto.GatewayNotificationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if in.OrderID == "" {
		return helper.JsonError(c, http.StatusBadRequest, "order_id is required")
	}
	if !service.VerifySignature(in.OrderID, in.StatusCode, in.GrossAmount, in.SignatureKey) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid signature")
	}

	var payment model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		First(&payment, "payment_order_id = ?", in.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "unknown order")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	status, settled := service.MapNotificationStatus(in.TransactionStatus, in.FraudStatus)
	payment.PaymentStatus = model.PaymentStatus(status)
	if method := strings.TrimSpace(in.PaymentType); method != "" {
		payment.PaymentMethod = &method
	}

	if settled && payment.PaymentTransactionID == nil {
		row, err := h.Ledger.RecordTransaction(c.UserContext(), accountService.RecordInput{
			StudentID:    payment.PaymentStudentID,
			Kind:         accountModel.TransactionKindClearing,
			Amount:       payment.PaymentAmount,
			Description:  fmt.Sprintf("Online payment %s", payment.PaymentOrderID),
			Category:     "tuition",
			AcademicYear: payment.PaymentAcademicYear,
			Semester:     payment.PaymentSemester,
		})
		if err != nil {
			log.Printf("❌ settlement for %s could not post to ledger: %v", payment.PaymentOrderID, err)
			return helper.JsonError(c, http.StatusInternalServerError, "could not post settlement")
		}
		payment.PaymentTransactionID = &row.TransactionID
		now := time.Now()
		payment.PaymentSettledAt = &now
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&payment).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "notification processed", fiber.Map{
		"payment_id":     payment.PaymentID,
		"payment_status": payment.PaymentStatus,
	})
}

/* ===============================
   Reads
=================================*/

// GET /api/payments?student_id=&status=
func (h *Handler) ListPayments(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := h.DB.WithContext(c.UserContext()).Model(&model.Payment{})

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("payment_student_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []model.Payment
	if err := q.Order("payment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "payments", dto.ToPaymentResponses(rows), &pagination)
}

// GET /api/payments/:id
func (h *Handler) GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var payment model.Payment
	if err := h.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment", dto.ToPaymentResponse(payment))
}
