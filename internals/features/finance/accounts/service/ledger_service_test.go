// file: internals/features/finance/accounts/service/ledger_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "uniberg_backend/internals/features/finance/accounts/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&studentModel.Student{}, &model.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	st := studentModel.Student{
		StudentNumber:       "S" + uuid.NewString()[:8],
		StudentFirstName:    "Ama",
		StudentLastName:     "Mensah",
		StudentEmail:        uuid.NewString() + "@example.edu",
		StudentProgramID:    uuid.New(),
		StudentSchoolID:     uuid.New(),
		StudentPasswordHash: "x",
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return st.StudentID
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func TestRecordTransactionStampsRunningBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	studentID := seedStudent(t, db)

	bill, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID:    studentID,
		Kind:         model.TransactionKindBilling,
		Amount:       mustDecimal(t, "1000.00"),
		Description:  "Semester fees 2025/2026 S1",
		Category:     "tuition",
		AcademicYear: "2025/2026",
		Semester:     1,
	})
	if err != nil {
		t.Fatalf("record billing: %v", err)
	}
	if !bill.TransactionBalanceAfter.Equal(mustDecimal(t, "1000.00")) {
		t.Fatalf("balance after billing = %s, want 1000.00", bill.TransactionBalanceAfter)
	}
	if bill.TransactionSeq != 1 {
		t.Fatalf("seq = %d, want 1", bill.TransactionSeq)
	}
	if len(bill.TransactionCode) != 7 {
		t.Fatalf("code %q, want 7 chars", bill.TransactionCode)
	}

	pay, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID:    studentID,
		Kind:         model.TransactionKindClearing,
		Amount:       mustDecimal(t, "820.00"),
		Description:  "Mobile money payment",
		AcademicYear: "2025/2026",
		Semester:     1,
	})
	if err != nil {
		t.Fatalf("record clearing: %v", err)
	}
	if !pay.TransactionBalanceAfter.Equal(mustDecimal(t, "180.00")) {
		t.Fatalf("balance after clearing = %s, want 180.00", pay.TransactionBalanceAfter)
	}
	if pay.TransactionSeq != 2 {
		t.Fatalf("seq = %d, want 2", pay.TransactionSeq)
	}

	balance, err := svc.GetBalance(ctx, studentID)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.Equal(mustDecimal(t, "180.00")) {
		t.Fatalf("balance = %s, want 180.00", balance)
	}
}

func TestRecordTransactionRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	studentID := seedStudent(t, db)

	_, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID: studentID,
		Kind:      model.TransactionKindBilling,
		Amount:    decimal.Zero,
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: got %v, want ErrInvalidAmount", err)
	}

	_, err = svc.RecordTransaction(ctx, RecordInput{
		StudentID: studentID,
		Kind:      model.TransactionKindBilling,
		Amount:    mustDecimal(t, "-50.00"),
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative amount: got %v, want ErrInvalidAmount", err)
	}

	_, err = svc.RecordTransaction(ctx, RecordInput{
		StudentID: studentID,
		Kind:      model.TransactionKind("refund"),
		Amount:    mustDecimal(t, "10.00"),
	})
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("bad kind: got %v, want ErrInvalidKind", err)
	}

	_, err = svc.RecordTransaction(ctx, RecordInput{
		StudentID: uuid.New(),
		Kind:      model.TransactionKindBilling,
		Amount:    mustDecimal(t, "10.00"),
	})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("unknown student: got %v, want ErrStudentNotFound", err)
	}
}

func TestGetSemesterBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	studentID := seedStudent(t, db)

	record := func(kind model.TransactionKind, amount, year string, sem int) {
		t.Helper()
		_, err := svc.RecordTransaction(ctx, RecordInput{
			StudentID:    studentID,
			Kind:         kind,
			Amount:       mustDecimal(t, amount),
			Description:  "entry",
			AcademicYear: year,
			Semester:     sem,
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	record(model.TransactionKindBilling, "1000.00", "2025/2026", 1)
	record(model.TransactionKindClearing, "820.00", "2025/2026", 1)
	// A different semester must not leak into the sums.
	record(model.TransactionKindBilling, "500.00", "2025/2026", 2)

	bal, err := svc.GetSemesterBalance(ctx, studentID, "2025/2026", 1)
	if err != nil {
		t.Fatalf("semester balance: %v", err)
	}
	if !bal.Billed.Equal(mustDecimal(t, "1000.00")) {
		t.Fatalf("billed = %s, want 1000.00", bal.Billed)
	}
	if !bal.Paid.Equal(mustDecimal(t, "820.00")) {
		t.Fatalf("paid = %s, want 820.00", bal.Paid)
	}
	if !bal.Outstanding.Equal(mustDecimal(t, "180.00")) {
		t.Fatalf("outstanding = %s, want 180.00", bal.Outstanding)
	}
	if !bal.PaidPercentage.Equal(mustDecimal(t, "82.00")) {
		t.Fatalf("paid percentage = %s, want 82.00", bal.PaidPercentage)
	}
}

func TestGetSemesterBalanceNothingBilled(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	studentID := seedStudent(t, db)

	bal, err := svc.GetSemesterBalance(context.Background(), studentID, "2025/2026", 1)
	if err != nil {
		t.Fatalf("semester balance: %v", err)
	}
	if !bal.PaidPercentage.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("paid percentage = %s, want 100 when nothing billed", bal.PaidPercentage)
	}
}

func TestUpdateTransactionReplaysLaterSnapshots(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	studentID := seedStudent(t, db)

	bill, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID:   studentID,
		Kind:        model.TransactionKindBilling,
		Amount:      mustDecimal(t, "1000.00"),
		Description: "Semester fees",
	})
	if err != nil {
		t.Fatalf("record billing: %v", err)
	}
	if _, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID:   studentID,
		Kind:        model.TransactionKindClearing,
		Amount:      mustDecimal(t, "500.00"),
		Description: "Payment",
	}); err != nil {
		t.Fatalf("record clearing: %v", err)
	}

	corrected := mustDecimal(t, "800.00")
	updated, err := svc.UpdateTransaction(ctx, bill.TransactionID, UpdateInput{
		Amount: &corrected,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.TransactionDebit.Equal(corrected) {
		t.Fatalf("debit = %s, want 800.00", updated.TransactionDebit)
	}
	if !updated.TransactionBalanceAfter.Equal(mustDecimal(t, "800.00")) {
		t.Fatalf("first snapshot = %s, want 800.00", updated.TransactionBalanceAfter)
	}

	balance, err := svc.GetBalance(ctx, studentID)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.Equal(mustDecimal(t, "300.00")) {
		t.Fatalf("balance = %s, want 300.00", balance)
	}

	var rows []model.Transaction
	if err := db.Where("transaction_student_id = ?", studentID).
		Order("transaction_seq ASC").Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if !rows[1].TransactionBalanceAfter.Equal(mustDecimal(t, "300.00")) {
		t.Fatalf("second snapshot = %s, want 300.00", rows[1].TransactionBalanceAfter)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	desc := "fix"
	_, err := svc.UpdateTransaction(context.Background(), uuid.New(), UpdateInput{Description: &desc})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRecalculateBalancesFixesCorruptSnapshots(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	studentID := seedStudent(t, db)

	bill, err := svc.RecordTransaction(ctx, RecordInput{
		StudentID:   studentID,
		Kind:        model.TransactionKindBilling,
		Amount:      mustDecimal(t, "250.00"),
		Description: "Lab fees",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	// Corrupt the snapshot behind the service's back.
	if err := db.Model(&model.Transaction{}).
		Where("transaction_id = ?", bill.TransactionID).
		Update("transaction_balance_after", mustDecimal(t, "999.99")).Error; err != nil {
		t.Fatalf("corrupt snapshot: %v", err)
	}

	fixed, balance, err := svc.RecalculateBalances(ctx, studentID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if fixed != 1 {
		t.Fatalf("fixed = %d, want 1", fixed)
	}
	if !balance.Equal(mustDecimal(t, "250.00")) {
		t.Fatalf("final balance = %s, want 250.00", balance)
	}

	var row model.Transaction
	if err := db.First(&row, "transaction_id = ?", bill.TransactionID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !row.TransactionBalanceAfter.Equal(mustDecimal(t, "250.00")) {
		t.Fatalf("snapshot = %s, want 250.00", row.TransactionBalanceAfter)
	}

	// A clean ledger needs no fixes.
	fixed, _, err = svc.RecalculateBalances(ctx, studentID)
	if err != nil {
		t.Fatalf("recalculate clean: %v", err)
	}
	if fixed != 0 {
		t.Fatalf("fixed = %d, want 0 on clean ledger", fixed)
	}
}
