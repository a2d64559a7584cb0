// file: internals/features/students/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusSuspended StudentStatus = "suspended"
)

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentNumber string `gorm:"column:student_number;type:varchar(30);not null;uniqueIndex:uniq_student_number" json:"student_number"`

	StudentFirstName string `gorm:"column:student_first_name;type:varchar(60);not null" json:"student_first_name"`
	StudentLastName  string `gorm:"column:student_last_name;type:varchar(60);not null" json:"student_last_name"`
	StudentEmail     string `gorm:"column:student_email;type:varchar(120);not null;uniqueIndex:uniq_student_email" json:"student_email"`
	StudentPhone     *string `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`

	// FK → programs(program_id), schools(school_id)
	StudentProgramID uuid.UUID `gorm:"column:student_program_id;type:uuid;not null;index:ix_student_program" json:"student_program_id"`
	StudentSchoolID  uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:ix_student_school" json:"student_school_id"`

	// bcrypt hash of the auto-generated registration password; never served.
	StudentPasswordHash string `gorm:"column:student_password_hash;type:varchar(100);not null" json:"-"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'active';index:ix_student_status" json:"student_status"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null" json:"student_updated_at"`
}

func (Student) TableName() string {
	return "students"
}

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}

func (m *Student) FullName() string {
	return m.StudentFirstName + " " + m.StudentLastName
}
