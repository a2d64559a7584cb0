// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CourseStatus string

const (
	CourseStatusActive   CourseStatus = "active"
	CourseStatusInactive CourseStatus = "inactive"
)

type GradingSystem string

const (
	GradingLetter       GradingSystem = "letter"
	GradingPercentage   GradingSystem = "percentage"
	GradingPoints       GradingSystem = "points"
	GradingPassFail     GradingSystem = "pass_fail"
	GradingSatisfactory GradingSystem = "satisfactory"
	GradingCredit       GradingSystem = "credit"
)

type Course struct {
	// PK
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`

	// FK → programs(program_id), schools(school_id)
	CourseProgramID uuid.UUID `gorm:"column:course_program_id;type:uuid;not null;index:ix_course_program" json:"course_program_id"`
	CourseSchoolID  uuid.UUID `gorm:"column:course_school_id;type:uuid;not null;index:ix_course_school" json:"course_school_id"`

	CourseCode string `gorm:"column:course_code;type:varchar(20);not null;uniqueIndex:uniq_course_code" json:"course_code"`
	CourseName string `gorm:"column:course_name;type:varchar(160);not null" json:"course_name"`

	CourseCredits int `gorm:"column:course_credits;not null;default:0" json:"course_credits"`

	// Per-course surcharge added on top of the level base fee.
	CourseFee decimal.Decimal `gorm:"column:course_fee;type:numeric(12,2);not null;default:0" json:"course_fee"`

	CourseGradingSystem GradingSystem `gorm:"column:course_grading_system;type:varchar(20);not null;default:'letter'" json:"course_grading_system"`

	CourseStatus CourseStatus `gorm:"column:course_status;type:varchar(20);not null;default:'active';index:ix_course_status" json:"course_status"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null" json:"course_updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

func (m *Course) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	now := time.Now()
	if m.CourseCreatedAt.IsZero() {
		m.CourseCreatedAt = now
	}
	m.CourseUpdatedAt = now
	return nil
}

func (m *Course) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CourseUpdatedAt = time.Now()
	return nil
}

// IsGraded reports whether the course's grading system produces letter-style
// grades (as opposed to pass/fail style outcomes).
func (m *Course) IsGraded() bool {
	switch m.CourseGradingSystem {
	case GradingLetter, GradingPercentage, GradingPoints:
		return true
	}
	return false
}
