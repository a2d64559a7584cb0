// file: internals/features/finance/accounts/dto/transaction_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "uniberg_backend/internals/features/finance/accounts/model"
)

// Single entry (billing or clearing) for one student.
type TransactionCreateDTO struct {
	TransactionStudentID    uuid.UUID       `json:"transaction_student_id" validate:"required"`
	TransactionKind         string          `json:"transaction_kind" validate:"required,oneof=billing clearing"`
	TransactionAmount       decimal.Decimal `json:"transaction_amount" validate:"required"`
	TransactionDescription  string          `json:"transaction_description" validate:"required,max=255"`
	TransactionCategory     string          `json:"transaction_category" validate:"omitempty,max=30"`
	TransactionAcademicYear string          `json:"transaction_academic_year" validate:"omitempty,len=9"`
	TransactionSemester     int             `json:"transaction_semester" validate:"omitempty,oneof=1 2"`
}

// Bulk billing: same charge applied to many students in one batch.
type BulkBillingDTO struct {
	StudentIDs              []uuid.UUID     `json:"student_ids" validate:"required,min=1,max=500"`
	TransactionAmount       decimal.Decimal `json:"transaction_amount" validate:"required"`
	TransactionDescription  string          `json:"transaction_description" validate:"required,max=255"`
	TransactionCategory     string          `json:"transaction_category" validate:"omitempty,max=30"`
	TransactionAcademicYear string          `json:"transaction_academic_year" validate:"required,len=9"`
	TransactionSemester     int             `json:"transaction_semester" validate:"required,oneof=1 2"`
}

// Correction of an existing row. Kind and student never change.
type TransactionUpdateDTO struct {
	TransactionAmount      *decimal.Decimal `json:"transaction_amount,omitempty"`
	TransactionDescription *string          `json:"transaction_description,omitempty" validate:"omitempty,max=255"`
	TransactionCategory    *string          `json:"transaction_category,omitempty" validate:"omitempty,max=30"`
}

type TransactionResponse struct {
	TransactionID           uuid.UUID             `json:"transaction_id"`
	TransactionSeq          int64                 `json:"transaction_seq"`
	TransactionCode         string                `json:"transaction_code"`
	TransactionStudentID    uuid.UUID             `json:"transaction_student_id"`
	TransactionKind         model.TransactionKind `json:"transaction_kind"`
	TransactionDebit        decimal.Decimal       `json:"transaction_debit"`
	TransactionCredit       decimal.Decimal       `json:"transaction_credit"`
	TransactionDescription  string                `json:"transaction_description"`
	TransactionCategory     string                `json:"transaction_category"`
	TransactionAcademicYear string                `json:"transaction_academic_year,omitempty"`
	TransactionSemester     int                   `json:"transaction_semester,omitempty"`
	TransactionBalanceAfter decimal.Decimal       `json:"transaction_balance_after"`
	TransactionCreatedBy    *uuid.UUID            `json:"transaction_created_by,omitempty"`
	TransactionCreatedAt    time.Time             `json:"transaction_created_at"`
}

func ToTransactionResponse(m model.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:           m.TransactionID,
		TransactionSeq:          m.TransactionSeq,
		TransactionCode:         m.TransactionCode,
		TransactionStudentID:    m.TransactionStudentID,
		TransactionKind:         m.TransactionKind,
		TransactionDebit:        m.TransactionDebit,
		TransactionCredit:       m.TransactionCredit,
		TransactionDescription:  m.TransactionDescription,
		TransactionCategory:     m.TransactionCategory,
		TransactionAcademicYear: m.TransactionAcademicYear,
		TransactionSemester:     m.TransactionSemester,
		TransactionBalanceAfter: m.TransactionBalanceAfter,
		TransactionCreatedBy:    m.TransactionCreatedBy,
		TransactionCreatedAt:    m.TransactionCreatedAt,
	}
}

func ToTransactionResponses(ms []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTransactionResponse(m))
	}
	return out
}
