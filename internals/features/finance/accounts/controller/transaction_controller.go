// file: internals/features/finance/accounts/controller/transaction_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "uniberg_backend/internals/features/finance/accounts/dto"
	model "uniberg_backend/internals/features/finance/accounts/model"
	service "uniberg_backend/internals/features/finance/accounts/service"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB     *gorm.DB
	Ledger *service.Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Ledger: service.NewService(db)}
}

func (h *Handler) actor(c *fiber.Ctx) *uuid.UUID {
	if id := helper.GetStaffID(c); id != uuid.Nil {
		return &id
	}
	return nil
}

func mapLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidKind):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	default:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
}

/* ===============================
   Dashboard
=================================*/

// GET /api/finance/dashboard
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext())

	var totals struct {
		Debit  decimal.Decimal
		Credit decimal.Decimal
	}
	if err := db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(transaction_debit), 0) AS debit, COALESCE(SUM(transaction_credit), 0) AS credit").
		Scan(&totals).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var txCount int64
	if err := db.Model(&model.Transaction{}).Count(&txCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var billedStudents int64
	if err := db.Model(&model.Transaction{}).
		Distinct("transaction_student_id").Count(&billedStudents).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var recent []model.Transaction
	if err := db.Order("transaction_created_at DESC, transaction_seq DESC").
		Limit(10).Find(&recent).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "finance dashboard", fiber.Map{
		"total_billed":        totals.Debit,
		"total_paid":          totals.Credit,
		"total_outstanding":   totals.Debit.Sub(totals.Credit),
		"transaction_count":   txCount,
		"billed_students":     billedStudents,
		"recent_transactions": dto.ToTransactionResponses(recent),
	})
}

/* ===============================
   Writes
=================================*/

// POST /api/finance/transactions
func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.TransactionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	row, err := h.Ledger.RecordTransaction(c.UserContext(), service.RecordInput{
		StudentID:    in.TransactionStudentID,
		Kind:         model.TransactionKind(in.TransactionKind),
		Amount:       in.TransactionAmount,
		Description:  in.TransactionDescription,
		Category:     in.TransactionCategory,
		AcademicYear: in.TransactionAcademicYear,
		Semester:     in.TransactionSemester,
		CreatedBy:    h.actor(c),
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.JsonCreated(c, "transaction recorded", dto.ToTransactionResponse(row))
}

// POST /api/finance/transactions/bulk
//
// Applies the same billing line to every listed student. Unknown students
// are skipped and reported, the rest of the batch still goes through.
func (h *Handler) BulkBilling(c *fiber.Ctx) error {
	var in dto.BulkBillingDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if !in.TransactionAmount.IsPositive() {
		return helper.JsonError(c, http.StatusBadRequest, "amount must be greater than zero")
	}

	actor := h.actor(c)
	billed := make([]fiber.Map, 0, len(in.StudentIDs))
	skipped := make([]uuid.UUID, 0)

	for _, studentID := range in.StudentIDs {
		row, err := h.Ledger.RecordTransaction(c.UserContext(), service.RecordInput{
			StudentID:    studentID,
			Kind:         model.TransactionKindBilling,
			Amount:       in.TransactionAmount,
			Description:  in.TransactionDescription,
			Category:     in.TransactionCategory,
			AcademicYear: in.TransactionAcademicYear,
			Semester:     in.TransactionSemester,
			CreatedBy:    actor,
		})
		if err != nil {
			if errors.Is(err, service.ErrStudentNotFound) {
				skipped = append(skipped, studentID)
				continue
			}
			return mapLedgerError(c, err)
		}
		billed = append(billed, fiber.Map{
			"student_id":       studentID,
			"transaction_id":   row.TransactionID,
			"transaction_code": row.TransactionCode,
		})
	}

	return helper.JsonCreated(c, "bulk billing applied", fiber.Map{
		"billed":  billed,
		"skipped": skipped,
	})
}

// PATCH /api/finance/transactions/:id
func (h *Handler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.TransactionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	row, err := h.Ledger.UpdateTransaction(c.UserContext(), id, service.UpdateInput{
		Amount:      in.TransactionAmount,
		Description: in.TransactionDescription,
		Category:    in.TransactionCategory,
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.JsonUpdated(c, "transaction corrected", dto.ToTransactionResponse(row))
}

// POST /api/finance/students/:student_id/recalculate
func (h *Handler) RecalculateBalances(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	fixed, balance, err := h.Ledger.RecalculateBalances(c.UserContext(), studentID)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.JsonOK(c, "balances recalculated", fiber.Map{
		"student_id":          studentID,
		"rows_fixed":          fixed,
		"outstanding_balance": balance,
	})
}

/* ===============================
   Reads
=================================*/

// GET /api/finance/transactions/search?q=&kind=&student_id=&page=&per_page=
func (h *Handler) SearchTransactions(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := h.DB.WithContext(c.UserContext()).Model(&model.Transaction{})

	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + term + "%"
		q = q.Where("transaction_code ILIKE ? OR transaction_description ILIKE ?", like, like)
	}
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		q = q.Where("transaction_kind = ?", kind)
	}
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("transaction_student_id = ?", id)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("transaction_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var totals struct {
		Debit  decimal.Decimal
		Credit decimal.Decimal
	}
	if err := q.Session(&gorm.Session{}).
		Select("COALESCE(SUM(transaction_debit), 0) AS debit, COALESCE(SUM(transaction_credit), 0) AS credit").
		Scan(&totals).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.Transaction
	if err := q.Order("transaction_created_at DESC, transaction_seq DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "transactions", fiber.Map{
		"transactions": dto.ToTransactionResponses(rows),
		"total_billed": totals.Debit,
		"total_paid":   totals.Credit,
	}, &pagination)
}

// GET /api/finance/students/:student_id/transactions
func (h *Handler) ListStudentTransactions(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Transaction{}).
		Where("transaction_student_id = ?", studentID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.Transaction
	if err := q.Order("transaction_created_at DESC, transaction_seq DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	balance, err := h.Ledger.GetBalance(c.UserContext(), studentID)
	if err != nil {
		return mapLedgerError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "student transactions", fiber.Map{
		"transactions":        dto.ToTransactionResponses(rows),
		"outstanding_balance": balance,
	}, &pagination)
}

// GET /api/finance/students/:student_id/balance?academic_year=&semester=
//
// Without semester filters this returns the all-time outstanding balance.
// With both filters it returns the semester fee position used by the
// grade visibility check.
func (h *Handler) GetStudentBalance(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	year := strings.TrimSpace(c.Query("academic_year"))
	semStr := strings.TrimSpace(c.Query("semester"))

	if year != "" && semStr != "" {
		sem, err := strconv.Atoi(semStr)
		if err != nil || (sem != 1 && sem != 2) {
			return helper.JsonError(c, http.StatusBadRequest, "semester must be 1 or 2")
		}
		bal, err := h.Ledger.GetSemesterBalance(c.UserContext(), studentID, year, sem)
		if err != nil {
			return mapLedgerError(c, err)
		}
		return helper.JsonOK(c, "semester balance", fiber.Map{
			"student_id":       studentID,
			"academic_year":    year,
			"semester":         sem,
			"semester_balance": bal,
		})
	}

	balance, err := h.Ledger.GetBalance(c.UserContext(), studentID)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.JsonOK(c, "outstanding balance", fiber.Map{
		"student_id":          studentID,
		"outstanding_balance": balance,
	})
}
