// file: internals/features/finance/accounts/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "uniberg_backend/internals/features/finance/accounts/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidKind     = errors.New("unknown transaction kind")
	ErrStudentNotFound = errors.New("student not found")
	ErrNotFound        = errors.New("transaction not found")
)

// Service owns all writes to student ledgers. Every read-compute-write
// sequence for a given student runs under that student's mutex, so a
// concurrent payment and billing cannot interleave their balance snapshots.
type Service struct {
	db *gorm.DB

	mu sync.Mutex
	// locks holds one mutex per student ever written through this
	// service; entries are never evicted, so the map is bounded by the
	// student population.
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:    db,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockStudent acquires the per-student mutex and returns its release func.
func (s *Service) lockStudent(studentID uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[studentID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[studentID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

/* ===============================
   Record
=================================*/

type RecordInput struct {
	StudentID    uuid.UUID
	Kind         model.TransactionKind
	Amount       decimal.Decimal
	Description  string
	Category     string
	AcademicYear string
	Semester     int
	CreatedBy    *uuid.UUID
}

// RecordTransaction appends one row to the student's ledger and stamps it
// with the running balance. The amount must be strictly positive; the side
// (debit or credit) follows the kind.
func (s *Service) RecordTransaction(ctx context.Context, in RecordInput) (model.Transaction, error) {
	if !in.Amount.IsPositive() {
		return model.Transaction{}, ErrInvalidAmount
	}
	if in.Kind != model.TransactionKindBilling && in.Kind != model.TransactionKindClearing {
		return model.Transaction{}, ErrInvalidKind
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&studentModel.Student{}).
		Where("student_id = ?", in.StudentID).Count(&count).Error; err != nil {
		return model.Transaction{}, err
	}
	if count == 0 {
		return model.Transaction{}, ErrStudentNotFound
	}

	unlock := s.lockStudent(in.StudentID)
	defer unlock()

	balance, err := s.replayBalance(ctx, in.StudentID)
	if err != nil {
		return model.Transaction{}, err
	}
	seq, err := s.nextSeq(ctx, in.StudentID)
	if err != nil {
		return model.Transaction{}, err
	}
	code, err := s.uniqueCode(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "other"
	}

	row := model.Transaction{
		TransactionSeq:          seq,
		TransactionCode:         code,
		TransactionStudentID:    in.StudentID,
		TransactionKind:         in.Kind,
		TransactionDescription:  in.Description,
		TransactionCategory:     category,
		TransactionAcademicYear: in.AcademicYear,
		TransactionSemester:     in.Semester,
		TransactionCreatedBy:    in.CreatedBy,
	}
	amount := in.Amount.Round(2)
	switch in.Kind {
	case model.TransactionKindBilling:
		row.TransactionDebit = amount
		row.TransactionCredit = decimal.Zero
	case model.TransactionKindClearing:
		row.TransactionDebit = decimal.Zero
		row.TransactionCredit = amount
	}
	row.TransactionBalanceAfter = balance.Add(row.Signed())

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Transaction{}, err
	}
	return row, nil
}

/* ===============================
   Balance reads
=================================*/

// GetBalance replays the student's ledger and returns the outstanding
// balance (billed minus cleared). It never trusts the stored
// balance_after snapshots.
func (s *Service) GetBalance(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error) {
	return s.replayBalance(ctx, studentID)
}

func (s *Service) replayBalance(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error) {
	var out struct {
		Debit  decimal.Decimal
		Credit decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(transaction_debit), 0) AS debit, COALESCE(SUM(transaction_credit), 0) AS credit").
		Where("transaction_student_id = ?", studentID).
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, err
	}
	return out.Debit.Sub(out.Credit), nil
}

// SemesterBalance is the fee position of one student for one semester.
type SemesterBalance struct {
	Billed         decimal.Decimal `json:"billed"`
	Paid           decimal.Decimal `json:"paid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	PaidPercentage decimal.Decimal `json:"paid_percentage"`
}

// GetSemesterBalance sums the rows tagged with the given semester. When
// nothing was billed, the paid percentage is 100 so downstream checks
// treat a fee-free semester as settled.
func (s *Service) GetSemesterBalance(ctx context.Context, studentID uuid.UUID, academicYear string, semester int) (SemesterBalance, error) {
	var out struct {
		Debit  decimal.Decimal
		Credit decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(transaction_debit), 0) AS debit, COALESCE(SUM(transaction_credit), 0) AS credit").
		Where("transaction_student_id = ? AND transaction_academic_year = ? AND transaction_semester = ?",
			studentID, academicYear, semester).
		Scan(&out).Error
	if err != nil {
		return SemesterBalance{}, err
	}

	bal := SemesterBalance{
		Billed:      out.Debit,
		Paid:        out.Credit,
		Outstanding: out.Debit.Sub(out.Credit),
	}
	if out.Debit.IsZero() {
		bal.PaidPercentage = decimal.NewFromInt(100)
	} else {
		bal.PaidPercentage = out.Credit.Div(out.Debit).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return bal, nil
}

/* ===============================
   Corrections
=================================*/

type UpdateInput struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
}

// UpdateTransaction amends a row in place and replays every later snapshot
// for that student. The row keeps its kind and position in the ledger.
func (s *Service) UpdateTransaction(ctx context.Context, id uuid.UUID, in UpdateInput) (model.Transaction, error) {
	var row model.Transaction
	if err := s.db.WithContext(ctx).First(&row, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Transaction{}, ErrNotFound
		}
		return model.Transaction{}, err
	}

	unlock := s.lockStudent(row.TransactionStudentID)
	defer unlock()

	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return model.Transaction{}, ErrInvalidAmount
		}
		amount := in.Amount.Round(2)
		switch row.TransactionKind {
		case model.TransactionKindBilling:
			row.TransactionDebit = amount
		case model.TransactionKindClearing:
			row.TransactionCredit = amount
		}
	}
	if in.Description != nil {
		row.TransactionDescription = *in.Description
	}
	if in.Category != nil {
		row.TransactionCategory = *in.Category
	}

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return model.Transaction{}, err
	}
	if _, _, err := s.recalculateLocked(ctx, row.TransactionStudentID); err != nil {
		return model.Transaction{}, err
	}

	// Reload to serve the refreshed snapshot.
	if err := s.db.WithContext(ctx).First(&row, "transaction_id = ?", id).Error; err != nil {
		return model.Transaction{}, err
	}
	return row, nil
}

// RecalculateBalances replays the student's ledger in order and rewrites
// every stale balance_after snapshot. Returns the number of rows fixed and
// the final balance. Running it twice in a row fixes nothing the second time.
func (s *Service) RecalculateBalances(ctx context.Context, studentID uuid.UUID) (int, decimal.Decimal, error) {
	unlock := s.lockStudent(studentID)
	defer unlock()
	return s.recalculateLocked(ctx, studentID)
}

func (s *Service) recalculateLocked(ctx context.Context, studentID uuid.UUID) (int, decimal.Decimal, error) {
	var rows []model.Transaction
	err := s.db.WithContext(ctx).
		Where("transaction_student_id = ?", studentID).
		Order("transaction_created_at ASC, transaction_seq ASC").
		Find(&rows).Error
	if err != nil {
		return 0, decimal.Zero, err
	}

	fixed := 0
	running := decimal.Zero
	for i := range rows {
		running = running.Add(rows[i].Signed())
		if !rows[i].TransactionBalanceAfter.Equal(running) {
			res := s.db.WithContext(ctx).Model(&model.Transaction{}).
				Where("transaction_id = ?", rows[i].TransactionID).
				Update("transaction_balance_after", running)
			if res.Error != nil {
				return fixed, running, res.Error
			}
			fixed++
		}
	}
	return fixed, running, nil
}

/* ===============================
   Internals
=================================*/

func (s *Service) nextSeq(ctx context.Context, studentID uuid.UUID) (int64, error) {
	var maxSeq int64
	err := s.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("transaction_student_id = ?", studentID).
		Select("COALESCE(MAX(transaction_seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		code := helper.GenerateTransactionCode()
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Transaction{}).
			Where("transaction_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique transaction code")
}
