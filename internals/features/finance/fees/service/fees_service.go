// file: internals/features/finance/fees/service/fees_service.go
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"uniberg_backend/internals/configs"
	programModel "uniberg_backend/internals/features/academics/programs/model"
	enrollmentModel "uniberg_backend/internals/features/students/enrollments/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
)

var ErrStudentNotFound = errors.New("student not found")

// Service computes what a student owes for one semester: the base fee for
// the program level plus the per-course fees of that semester's enrollments.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// levelSynonyms maps historical program-level spellings onto the fee table
// keys. Imports from the legacy records still carry these.
var levelSynonyms = map[string]string{
	"bachelor": "undergraduate",
	"masters":  "postgraduate",
	"phd":      "postgraduate",
}

// NormalizeLevel lowercases a program level and resolves legacy synonyms.
func NormalizeLevel(level string) string {
	l := strings.ToLower(strings.TrimSpace(level))
	if mapped, ok := levelSynonyms[l]; ok {
		return mapped
	}
	return l
}

// BaseSemesterFee returns the flat per-semester fee for a program level,
// falling back to the default when the level is not in the fee table.
func BaseSemesterFee(level string) decimal.Decimal {
	if fee, ok := configs.SystemConfig.DefaultSemesterFees[NormalizeLevel(level)]; ok {
		return fee
	}
	return configs.SystemConfig.FallbackSemesterFee
}

// SemesterFees is the expected charge side for one student-semester.
type SemesterFees struct {
	BaseFee    decimal.Decimal `json:"base_fee"`
	CourseFees decimal.Decimal `json:"course_fees"`
	Total      decimal.Decimal `json:"total"`
	Courses    int             `json:"courses"`
}

// ComputeSemesterFees resolves the student's program level, takes the base
// fee for it and adds the course fees of every non-dropped enrollment in
// the given semester.
func (s *Service) ComputeSemesterFees(ctx context.Context, studentID uuid.UUID, academicYear string, semester int) (SemesterFees, error) {
	var student studentModel.Student
	if err := s.db.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SemesterFees{}, ErrStudentNotFound
		}
		return SemesterFees{}, err
	}

	level := ""
	var program programModel.Program
	err := s.db.WithContext(ctx).First(&program, "program_id = ?", student.StudentProgramID).Error
	switch {
	case err == nil:
		level = program.ProgramLevel
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Orphaned program reference still gets the fallback fee.
	default:
		return SemesterFees{}, err
	}

	fees := SemesterFees{
		BaseFee:    BaseSemesterFee(level),
		CourseFees: decimal.Zero,
	}

	var rows []struct {
		CourseFee decimal.Decimal
	}
	err = s.db.WithContext(ctx).Model(&enrollmentModel.Enrollment{}).
		Select("courses.course_fee AS course_fee").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Where("enrollments.enrollment_student_id = ?", studentID).
		Where("enrollments.enrollment_academic_year = ? AND enrollments.enrollment_semester = ?",
			academicYear, strconv.Itoa(semester)).
		Where("enrollments.enrollment_status <> ?", enrollmentModel.EnrollmentStatusDropped).
		Scan(&rows).Error
	if err != nil {
		return SemesterFees{}, err
	}

	for _, r := range rows {
		fees.CourseFees = fees.CourseFees.Add(r.CourseFee)
	}
	fees.Courses = len(rows)
	fees.Total = fees.BaseFee.Add(fees.CourseFees)
	return fees, nil
}
