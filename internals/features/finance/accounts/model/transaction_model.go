// file: internals/features/finance/accounts/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionKind string

const (
	// TransactionKindBilling adds to what the student owes (debit side).
	TransactionKindBilling TransactionKind = "billing"
	// TransactionKindClearing settles part of what the student owes (credit side).
	TransactionKindClearing TransactionKind = "clearing"
)

// Transaction is one row of a student's append-only ledger. Rows are never
// hard-deleted; corrections amend the row and trigger a balance replay.
type Transaction struct {
	// PK
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;primaryKey" json:"transaction_id"`

	// Per-student sequence, assigned under the ledger lock. Breaks ties
	// between rows sharing the same created_at during replay.
	TransactionSeq int64 `gorm:"column:transaction_seq;not null;index:ix_tx_student_seq,priority:2" json:"transaction_seq"`

	// Reference shown on receipts, e.g. "KQP4821".
	TransactionCode string `gorm:"column:transaction_code;type:varchar(10);not null;uniqueIndex:uniq_transaction_code" json:"transaction_code"`

	// FK → students(student_id)
	TransactionStudentID uuid.UUID `gorm:"column:transaction_student_id;type:uuid;not null;index:ix_tx_student_seq,priority:1" json:"transaction_student_id"`

	TransactionKind TransactionKind `gorm:"column:transaction_kind;type:varchar(10);not null;index:ix_tx_kind" json:"transaction_kind"`

	// Exactly one of debit/credit is nonzero, matching the kind.
	TransactionDebit  decimal.Decimal `gorm:"column:transaction_debit;type:numeric(12,2);not null;default:0" json:"transaction_debit"`
	TransactionCredit decimal.Decimal `gorm:"column:transaction_credit;type:numeric(12,2);not null;default:0" json:"transaction_credit"`

	TransactionDescription string `gorm:"column:transaction_description;type:varchar(255);not null" json:"transaction_description"`

	// Category key, see configs.SystemConfig.SemesterTransactionTypes.
	TransactionCategory string `gorm:"column:transaction_category;type:varchar(30);not null;default:'other'" json:"transaction_category"`

	// Semester tags, e.g. "2025/2026" semester 1. Zero values mean the row
	// is not attributed to a specific semester.
	TransactionAcademicYear string `gorm:"column:transaction_academic_year;type:varchar(9);index:ix_tx_semester,priority:1" json:"transaction_academic_year"`
	TransactionSemester     int    `gorm:"column:transaction_semester;index:ix_tx_semester,priority:2" json:"transaction_semester"`

	// Snapshot of the running balance after this row was applied. Kept for
	// statements only. Balance reads always replay the ledger instead.
	TransactionBalanceAfter decimal.Decimal `gorm:"column:transaction_balance_after;type:numeric(12,2);not null;default:0" json:"transaction_balance_after"`

	// FK → staff(staff_id), nil for system-generated rows (webhooks).
	TransactionCreatedBy *uuid.UUID `gorm:"column:transaction_created_by;type:uuid" json:"transaction_created_by,omitempty"`

	TransactionCreatedAt time.Time `gorm:"column:transaction_created_at;not null;index:ix_tx_created_at" json:"transaction_created_at"`
	TransactionUpdatedAt time.Time `gorm:"column:transaction_updated_at;not null" json:"transaction_updated_at"`
}

func (Transaction) TableName() string {
	return "student_transactions"
}

// Amount returns the magnitude of the row regardless of side.
func (m *Transaction) Amount() decimal.Decimal {
	if m.TransactionKind == TransactionKindClearing {
		return m.TransactionCredit
	}
	return m.TransactionDebit
}

// Signed returns the row's effect on the outstanding balance.
func (m *Transaction) Signed() decimal.Decimal {
	return m.TransactionDebit.Sub(m.TransactionCredit)
}

func (m *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if m.TransactionID == uuid.Nil {
		m.TransactionID = uuid.New()
	}
	now := time.Now()
	if m.TransactionCreatedAt.IsZero() {
		m.TransactionCreatedAt = now
	}
	m.TransactionUpdatedAt = now
	return nil
}

func (m *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TransactionUpdatedAt = time.Now()
	return nil
}
