// file: internals/features/academics/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolStatus string

const (
	SchoolStatusActive   SchoolStatus = "active"
	SchoolStatusInactive SchoolStatus = "inactive"
)

type School struct {
	// PK
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(120);not null;uniqueIndex:uniq_school_name" json:"school_name"`
	SchoolCode string `gorm:"column:school_code;type:varchar(20);not null;uniqueIndex:uniq_school_code" json:"school_code"`

	SchoolStatus SchoolStatus `gorm:"column:school_status;type:varchar(20);not null;default:'active';index:ix_school_status" json:"school_status"`

	SchoolCreatedAt time.Time `gorm:"column:school_created_at;not null" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"column:school_updated_at;not null" json:"school_updated_at"`
}

func (School) TableName() string {
	return "schools"
}

func (m *School) BeforeCreate(tx *gorm.DB) (err error) {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	now := time.Now()
	if m.SchoolCreatedAt.IsZero() {
		m.SchoolCreatedAt = now
	}
	m.SchoolUpdatedAt = now
	return nil
}

func (m *School) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SchoolUpdatedAt = time.Now()
	return nil
}
