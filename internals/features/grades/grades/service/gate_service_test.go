// file: internals/features/grades/grades/service/gate_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"uniberg_backend/internals/configs"
	courseModel "uniberg_backend/internals/features/academics/courses/model"
	programModel "uniberg_backend/internals/features/academics/programs/model"
	accountModel "uniberg_backend/internals/features/finance/accounts/model"
	accountService "uniberg_backend/internals/features/finance/accounts/service"
	enrollmentModel "uniberg_backend/internals/features/students/enrollments/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
)

func newGateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&programModel.Program{},
		&courseModel.Course{},
		&studentModel.Student{},
		&enrollmentModel.Enrollment{},
		&accountModel.Transaction{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUndergrad(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	p := programModel.Program{
		ProgramSchoolID: uuid.New(),
		ProgramName:     "Program " + uuid.NewString()[:8],
		ProgramLevel:    "undergraduate",
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}
	st := studentModel.Student{
		StudentNumber:       "S" + uuid.NewString()[:8],
		StudentFirstName:    "Esi",
		StudentLastName:     "Boateng",
		StudentEmail:        uuid.NewString() + "@example.edu",
		StudentProgramID:    p.ProgramID,
		StudentSchoolID:     uuid.New(),
		StudentPasswordHash: "x",
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return st.StudentID
}

func postLedger(t *testing.T, ledger *accountService.Service, studentID uuid.UUID, kind accountModel.TransactionKind, amount string) {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("decimal %q: %v", amount, err)
	}
	_, err = ledger.RecordTransaction(context.Background(), accountService.RecordInput{
		StudentID:    studentID,
		Kind:         kind,
		Amount:       d,
		Description:  "entry",
		AcademicYear: "2025/2026",
		Semester:     1,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestCanViewAboveThreshold(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	// Fees 1000, paid 820 of it: 82% clears the 80% threshold.
	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "1000.00")
	postLedger(t, ledger, studentID, accountModel.TransactionKindClearing, "820.00")

	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if !d.CanView {
		t.Fatalf("CanView = false at 82%%, want true (decision: %+v)", d)
	}
	if !d.PaidPct.Equal(decimal.RequireFromString("82.00")) {
		t.Fatalf("paid pct = %s, want 82.00", d.PaidPct)
	}
}

func TestCanViewExactlyAtThreshold(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	// Exactly 80% paid is inclusive.
	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "1000.00")
	postLedger(t, ledger, studentID, accountModel.TransactionKindClearing, "800.00")

	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if !d.CanView {
		t.Fatalf("CanView = false at exactly 80%%, want true")
	}
}

func TestCannotViewJustBelowThreshold(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	// 79.999% paid must stay withheld even though it rounds to 80.00.
	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "1000.00")
	postLedger(t, ledger, studentID, accountModel.TransactionKindClearing, "799.99")

	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if d.CanView {
		t.Fatalf("CanView = true at 79.999%% paid, want false")
	}
	if !d.PaidPct.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("displayed pct = %s, want 80.00", d.PaidPct)
	}
}

func TestCannotViewBelowThreshold(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "1000.00")
	postLedger(t, ledger, studentID, accountModel.TransactionKindClearing, "790.00")

	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if d.CanView {
		t.Fatalf("CanView = true at 79%%, want false")
	}
	if d.Reason != "outstanding balance" {
		t.Fatalf("reason = %q, want outstanding balance", d.Reason)
	}
}

func TestPrivilegeOverride(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	// Nothing paid at all.
	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "1000.00")

	for _, level := range []string{"admin", "registrar", "finance", "academics", "admin_dvc", "ict", "admin_vc"} {
		d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, level)
		if err != nil {
			t.Fatalf("gate (%s): %v", level, err)
		}
		if !d.CanView || !d.ViaPrivilege {
			t.Errorf("privilege %q: CanView=%v ViaPrivilege=%v, want both true", level, d.CanView, d.ViaPrivilege)
		}
	}

	// Unprivileged staff go through the balance check like anyone else.
	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "lecturer")
	if err != nil {
		t.Fatalf("gate (lecturer): %v", err)
	}
	if d.CanView || d.ViaPrivilege {
		t.Fatalf("lecturer: CanView=%v ViaPrivilege=%v, want both false", d.CanView, d.ViaPrivilege)
	}
}

func TestUnderBilledStudentIsNotPenalized(t *testing.T) {
	db := newGateTestDB(t)
	ledger := accountService.NewService(db)
	gate := NewGateWith(db, ledger)
	studentID := seedUndergrad(t, db)

	// Expected fees are 1000 but only 500 was ever posted, and it was
	// settled in full. Amount paid counts as fees minus outstanding.
	postLedger(t, ledger, studentID, accountModel.TransactionKindBilling, "500.00")
	postLedger(t, ledger, studentID, accountModel.TransactionKindClearing, "500.00")

	d, err := gate.CanViewSemesterGrades(context.Background(), studentID, "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if !d.CanView {
		t.Fatalf("CanView = false with zero outstanding, want true")
	}
	if !d.PaidPct.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("paid pct = %s, want 100.00", d.PaidPct)
	}
}

func TestUnknownStudentFollowsFailMode(t *testing.T) {
	db := newGateTestDB(t)
	gate := NewGate(db)

	prev := configs.SystemConfig.VisibilityFailMode
	t.Cleanup(func() { configs.SystemConfig.VisibilityFailMode = prev })

	configs.SystemConfig.VisibilityFailMode = configs.FailOpen
	dec, err := gate.CanViewSemesterGrades(context.Background(), uuid.New(), "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("fail-open: %v", err)
	}
	if !dec.CanView {
		t.Fatalf("fail-open should disclose, got %+v", dec)
	}

	configs.SystemConfig.VisibilityFailMode = configs.FailClosed
	dec, err = gate.CanViewSemesterGrades(context.Background(), uuid.New(), "2025/2026", 1, "")
	if err != nil {
		t.Fatalf("fail-closed: %v", err)
	}
	if dec.CanView {
		t.Fatalf("fail-closed should withhold, got %+v", dec)
	}
}
