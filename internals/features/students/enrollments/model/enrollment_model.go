// file: internals/features/students/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
)

// Enrollment links a student to a course for one semester of one academic
// year. This is the partition the semester fee and the semester ledger
// balance are computed over.
type Enrollment struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`

	// FK → students(student_id), courses(course_id)
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index;uniqueIndex:uniq_enrollment,priority:1" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;index;uniqueIndex:uniq_enrollment,priority:2" json:"enrollment_course_id"`

	EnrollmentSemester     string `gorm:"column:enrollment_semester;type:varchar(2);not null;uniqueIndex:uniq_enrollment,priority:4" json:"enrollment_semester"`
	EnrollmentAcademicYear string `gorm:"column:enrollment_academic_year;type:varchar(9);not null;uniqueIndex:uniq_enrollment,priority:3" json:"enrollment_academic_year"`

	EnrollmentStatus EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:'enrolled';index:ix_enrollment_status" json:"enrollment_status"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;not null" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;not null" json:"enrollment_updated_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (m *Enrollment) BeforeCreate(tx *gorm.DB) (err error) {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	now := time.Now()
	if m.EnrollmentCreatedAt.IsZero() {
		m.EnrollmentCreatedAt = now
	}
	m.EnrollmentUpdatedAt = now
	return nil
}

func (m *Enrollment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.EnrollmentUpdatedAt = time.Now()
	return nil
}
