// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "uniberg_backend/internals/features/finance/payments/model"
)

type PaymentInitiateDTO struct {
	PaymentStudentID    uuid.UUID       `json:"payment_student_id" validate:"required"`
	PaymentAmount       decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentAcademicYear string          `json:"payment_academic_year" validate:"required,len=9"`
	PaymentSemester     int             `json:"payment_semester" validate:"required,oneof=1 2"`
	PaymentDescription  string          `json:"payment_description" validate:"omitempty,max=255"`
}

// GatewayNotificationDTO carries the fields we consume from the gateway's
// HTTP notification payload.
type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type PaymentResponse struct {
	PaymentID            uuid.UUID           `json:"payment_id"`
	PaymentStudentID     uuid.UUID           `json:"payment_student_id"`
	PaymentOrderID       string              `json:"payment_order_id"`
	PaymentAmount        decimal.Decimal     `json:"payment_amount"`
	PaymentDescription   string              `json:"payment_description"`
	PaymentAcademicYear  string              `json:"payment_academic_year"`
	PaymentSemester      int                 `json:"payment_semester"`
	PaymentStatus        model.PaymentStatus `json:"payment_status"`
	PaymentMethod        *string             `json:"payment_method,omitempty"`
	PaymentSnapToken     *string             `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL   *string             `json:"payment_redirect_url,omitempty"`
	PaymentTransactionID *uuid.UUID          `json:"payment_transaction_id,omitempty"`
	PaymentSettledAt     *time.Time          `json:"payment_settled_at,omitempty"`
	PaymentCreatedAt     time.Time           `json:"payment_created_at"`
}

func ToPaymentResponse(m model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:            m.PaymentID,
		PaymentStudentID:     m.PaymentStudentID,
		PaymentOrderID:       m.PaymentOrderID,
		PaymentAmount:        m.PaymentAmount,
		PaymentDescription:   m.PaymentDescription,
		PaymentAcademicYear:  m.PaymentAcademicYear,
		PaymentSemester:      m.PaymentSemester,
		PaymentStatus:        m.PaymentStatus,
		PaymentMethod:        m.PaymentMethod,
		PaymentSnapToken:     m.PaymentSnapToken,
		PaymentRedirectURL:   m.PaymentRedirectURL,
		PaymentTransactionID: m.PaymentTransactionID,
		PaymentSettledAt:     m.PaymentSettledAt,
		PaymentCreatedAt:     m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(ms []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
