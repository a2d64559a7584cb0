// file: internals/features/academics/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramStatus string

const (
	ProgramStatusActive   ProgramStatus = "active"
	ProgramStatusInactive ProgramStatus = "inactive"
)

// Program levels drive the semester fee table; free-text synonyms
// (bachelor, masters, phd) are normalized by the fee service, not here.
type Program struct {
	// PK
	ProgramID uuid.UUID `gorm:"column:program_id;type:uuid;primaryKey" json:"program_id"`

	// FK → schools(school_id)
	ProgramSchoolID uuid.UUID `gorm:"column:program_school_id;type:uuid;not null;index:ix_program_school" json:"program_school_id"`

	ProgramName  string `gorm:"column:program_name;type:varchar(160);not null;uniqueIndex:uniq_program_name" json:"program_name"`
	ProgramLevel string `gorm:"column:program_level;type:varchar(40);not null;default:'undergraduate'" json:"program_level"`

	// Duration in years, informational only.
	ProgramDurationYears int `gorm:"column:program_duration_years;not null;default:3" json:"program_duration_years"`

	ProgramStatus ProgramStatus `gorm:"column:program_status;type:varchar(20);not null;default:'active';index:ix_program_status" json:"program_status"`

	ProgramCreatedAt time.Time `gorm:"column:program_created_at;not null" json:"program_created_at"`
	ProgramUpdatedAt time.Time `gorm:"column:program_updated_at;not null" json:"program_updated_at"`
}

func (Program) TableName() string {
	return "programs"
}

func (m *Program) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ProgramID == uuid.Nil {
		m.ProgramID = uuid.New()
	}
	now := time.Now()
	if m.ProgramCreatedAt.IsZero() {
		m.ProgramCreatedAt = now
	}
	m.ProgramUpdatedAt = now
	return nil
}

func (m *Program) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ProgramUpdatedAt = time.Now()
	return nil
}
