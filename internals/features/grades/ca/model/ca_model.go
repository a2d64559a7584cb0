// file: internals/features/grades/ca/model/ca_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentType string

const (
	AssessmentAssignment AssessmentType = "assignment"
	AssessmentQuiz       AssessmentType = "quiz"
	AssessmentMidterm    AssessmentType = "midterm"
	AssessmentPractical  AssessmentType = "practical"
	AssessmentProject    AssessmentType = "project"
)

// CARecord is one continuous assessment score. One record per student,
// course, academic year and semester; saving again overwrites it.
type CARecord struct {
	// PK
	CARecordID uuid.UUID `gorm:"column:ca_record_id;type:uuid;primaryKey" json:"ca_record_id"`

	// FK → students(student_id), courses(course_id)
	CARecordStudentID uuid.UUID `gorm:"column:ca_record_student_id;type:uuid;not null;index;uniqueIndex:uniq_ca_record,priority:1" json:"ca_record_student_id"`
	CARecordCourseID  uuid.UUID `gorm:"column:ca_record_course_id;type:uuid;not null;index;uniqueIndex:uniq_ca_record,priority:2" json:"ca_record_course_id"`

	CARecordAcademicYear string `gorm:"column:ca_record_academic_year;type:varchar(9);not null;uniqueIndex:uniq_ca_record,priority:3" json:"ca_record_academic_year"`
	CARecordSemester     int    `gorm:"column:ca_record_semester;not null;uniqueIndex:uniq_ca_record,priority:4" json:"ca_record_semester"`

	// Score is nil while the assessment is pending a mark.
	CARecordScore      *float64 `gorm:"column:ca_record_score" json:"ca_record_score,omitempty"`
	CARecordTotalScore float64  `gorm:"column:ca_record_total_score;not null;default:30" json:"ca_record_total_score"`

	CARecordAssessmentType AssessmentType `gorm:"column:ca_record_assessment_type;type:varchar(20);not null;default:'assignment'" json:"ca_record_assessment_type"`
	CARecordAssessmentDate time.Time      `gorm:"column:ca_record_assessment_date;not null" json:"ca_record_assessment_date"`

	// FK → staff(staff_id)
	CARecordEnteredBy *uuid.UUID `gorm:"column:ca_record_entered_by;type:uuid" json:"ca_record_entered_by,omitempty"`

	CARecordEnteredAt time.Time `gorm:"column:ca_record_entered_at;not null" json:"ca_record_entered_at"`
	CARecordUpdatedAt time.Time `gorm:"column:ca_record_updated_at;not null" json:"ca_record_updated_at"`
}

func (CARecord) TableName() string {
	return "ca_records"
}

func (m *CARecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CARecordID == uuid.Nil {
		m.CARecordID = uuid.New()
	}
	now := time.Now()
	if m.CARecordEnteredAt.IsZero() {
		m.CARecordEnteredAt = now
	}
	if m.CARecordAssessmentDate.IsZero() {
		m.CARecordAssessmentDate = now
	}
	m.CARecordUpdatedAt = now
	return nil
}

func (m *CARecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CARecordUpdatedAt = time.Now()
	return nil
}

// Percentage returns the score as a percentage of the total, or 0 when
// the score is pending or the total is unusable.
func (m *CARecord) Percentage() float64 {
	if m.CARecordScore == nil || m.CARecordTotalScore <= 0 {
		return 0
	}
	return *m.CARecordScore / m.CARecordTotalScore * 100
}
