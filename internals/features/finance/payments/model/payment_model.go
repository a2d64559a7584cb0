// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSettled   PaymentStatus = "settled"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusExpired   PaymentStatus = "expired"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment is one online payment attempt through the gateway. A settled
// payment produces exactly one clearing entry in the student ledger,
// referenced by PaymentTransactionID.
type Payment struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`

	// FK → students(student_id)
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	// Sent to the gateway as the order id; notifications key on it.
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex:uniq_payment_order_id" json:"payment_order_id"`

	PaymentAmount      decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentDescription string          `gorm:"column:payment_description;type:varchar(255)" json:"payment_description"`

	PaymentAcademicYear string `gorm:"column:payment_academic_year;type:varchar(9);not null" json:"payment_academic_year"`
	PaymentSemester     int    `gorm:"column:payment_semester;not null" json:"payment_semester"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index:ix_payment_status" json:"payment_status"`

	// Gateway payment channel reported by the notification, e.g. "gopay".
	PaymentMethod *string `gorm:"column:payment_method;type:varchar(40)" json:"payment_method,omitempty"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token;type:varchar(100)" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string `gorm:"column:payment_redirect_url;type:varchar(255)" json:"payment_redirect_url,omitempty"`

	// FK → student_transactions(transaction_id), set once on settlement.
	PaymentTransactionID *uuid.UUID `gorm:"column:payment_transaction_id;type:uuid" json:"payment_transaction_id,omitempty"`

	PaymentSettledAt *time.Time `gorm:"column:payment_settled_at" json:"payment_settled_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null" json:"payment_updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
