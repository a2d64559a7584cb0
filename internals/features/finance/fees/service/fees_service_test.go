// file: internals/features/finance/fees/service/fees_service_test.go
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

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	programModel "uniberg_backend/internals/features/academics/programs/model"
	enrollmentModel "uniberg_backend/internals/features/students/enrollments/model"
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
	err = db.AutoMigrate(
		&programModel.Program{},
		&courseModel.Course{},
		&studentModel.Student{},
		&enrollmentModel.Enrollment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func seedProgram(t *testing.T, db *gorm.DB, level string) uuid.UUID {
	t.Helper()
	p := programModel.Program{
		ProgramSchoolID: uuid.New(),
		ProgramName:     "Program " + uuid.NewString()[:8],
		ProgramLevel:    level,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}
	return p.ProgramID
}

func seedStudentInProgram(t *testing.T, db *gorm.DB, programID uuid.UUID) uuid.UUID {
	t.Helper()
	st := studentModel.Student{
		StudentNumber:       "S" + uuid.NewString()[:8],
		StudentFirstName:    "Kofi",
		StudentLastName:     "Owusu",
		StudentEmail:        uuid.NewString() + "@example.edu",
		StudentProgramID:    programID,
		StudentSchoolID:     uuid.New(),
		StudentPasswordHash: "x",
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return st.StudentID
}

func seedEnrolledCourse(t *testing.T, db *gorm.DB, studentID uuid.UUID, fee, year, semester string, status enrollmentModel.EnrollmentStatus) {
	t.Helper()
	course := courseModel.Course{
		CourseProgramID: uuid.New(),
		CourseSchoolID:  uuid.New(),
		CourseCode:      "C" + uuid.NewString()[:7],
		CourseName:      "Course " + uuid.NewString()[:8],
		CourseCredits:   3,
		CourseFee:       mustDecimal(t, fee),
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	enr := enrollmentModel.Enrollment{
		EnrollmentStudentID:    studentID,
		EnrollmentCourseID:     course.CourseID,
		EnrollmentAcademicYear: year,
		EnrollmentSemester:     semester,
		EnrollmentStatus:       status,
	}
	if err := db.Create(&enr).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]string{
		"Undergraduate": "undergraduate",
		"bachelor":      "undergraduate",
		"Masters":       "postgraduate",
		"PhD":           "postgraduate",
		"  diploma ":    "diploma",
		"certificate":   "certificate",
		"unknown-level": "unknown-level",
	}
	for in, want := range cases {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBaseSemesterFee(t *testing.T) {
	cases := map[string]string{
		"certificate":   "500.00",
		"diploma":       "750.00",
		"undergraduate": "1000.00",
		"bachelor":      "1000.00",
		"postgraduate":  "1500.00",
		"phd":           "1500.00",
		"something":     "1000.00", // fallback
	}
	for level, want := range cases {
		if got := BaseSemesterFee(level); !got.Equal(mustDecimal(t, want)) {
			t.Errorf("BaseSemesterFee(%q) = %s, want %s", level, got, want)
		}
	}
}

func TestComputeSemesterFees(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	programID := seedProgram(t, db, "undergraduate")
	studentID := seedStudentInProgram(t, db, programID)

	seedEnrolledCourse(t, db, studentID, "120.00", "2025/2026", "1", enrollmentModel.EnrollmentStatusEnrolled)
	seedEnrolledCourse(t, db, studentID, "80.00", "2025/2026", "1", enrollmentModel.EnrollmentStatusEnrolled)
	// Dropped courses and other semesters are charged nothing.
	seedEnrolledCourse(t, db, studentID, "300.00", "2025/2026", "1", enrollmentModel.EnrollmentStatusDropped)
	seedEnrolledCourse(t, db, studentID, "250.00", "2025/2026", "2", enrollmentModel.EnrollmentStatusEnrolled)

	fees, err := svc.ComputeSemesterFees(ctx, studentID, "2025/2026", 1)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !fees.BaseFee.Equal(mustDecimal(t, "1000.00")) {
		t.Fatalf("base fee = %s, want 1000.00", fees.BaseFee)
	}
	if !fees.CourseFees.Equal(mustDecimal(t, "200.00")) {
		t.Fatalf("course fees = %s, want 200.00", fees.CourseFees)
	}
	if !fees.Total.Equal(mustDecimal(t, "1200.00")) {
		t.Fatalf("total = %s, want 1200.00", fees.Total)
	}
	if fees.Courses != 2 {
		t.Fatalf("courses = %d, want 2", fees.Courses)
	}
}

func TestComputeSemesterFeesNoEnrollments(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	programID := seedProgram(t, db, "diploma")
	studentID := seedStudentInProgram(t, db, programID)

	fees, err := svc.ComputeSemesterFees(context.Background(), studentID, "2025/2026", 1)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !fees.Total.Equal(mustDecimal(t, "750.00")) {
		t.Fatalf("total = %s, want base fee 750.00", fees.Total)
	}
}

func TestComputeSemesterFeesOrphanedProgram(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	// Program row missing entirely; the fallback fee still applies.
	studentID := seedStudentInProgram(t, db, uuid.New())

	fees, err := svc.ComputeSemesterFees(context.Background(), studentID, "2025/2026", 1)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !fees.BaseFee.Equal(mustDecimal(t, "1000.00")) {
		t.Fatalf("base fee = %s, want fallback 1000.00", fees.BaseFee)
	}
}

func TestComputeSemesterFeesUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.ComputeSemesterFees(context.Background(), uuid.New(), "2025/2026", 1)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("got %v, want ErrStudentNotFound", err)
	}
}
