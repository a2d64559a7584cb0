// file: internals/features/staff/model/staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

type Staff struct {
	// PK
	StaffID uuid.UUID `gorm:"column:staff_id;type:uuid;primaryKey" json:"staff_id"`

	StaffNumber    string `gorm:"column:staff_number;type:varchar(30);not null;uniqueIndex:uniq_staff_number" json:"staff_number"`
	StaffFirstName string `gorm:"column:staff_first_name;type:varchar(60);not null" json:"staff_first_name"`
	StaffLastName  string `gorm:"column:staff_last_name;type:varchar(60);not null" json:"staff_last_name"`
	StaffEmail     string `gorm:"column:staff_email;type:varchar(120);not null;uniqueIndex:uniq_staff_email" json:"staff_email"`

	// FK → schools(school_id), optional
	StaffSchoolID *uuid.UUID `gorm:"column:staff_school_id;type:uuid;index" json:"staff_school_id,omitempty"`

	StaffPosition string `gorm:"column:staff_position;type:varchar(80)" json:"staff_position"`

	// Closed set, see constants.AllPrivilegeLevels. A subset of these
	// bypasses the grade visibility balance check.
	StaffPrivilegeLevel string `gorm:"column:staff_privilege_level;type:varchar(20);not null;default:'none';index:ix_staff_privilege" json:"staff_privilege_level"`

	// bcrypt hash, never served.
	StaffPasswordHash string `gorm:"column:staff_password_hash;type:varchar(100);not null" json:"-"`

	StaffStatus StaffStatus `gorm:"column:staff_status;type:varchar(20);not null;default:'active';index:ix_staff_status" json:"staff_status"`

	StaffCreatedAt time.Time `gorm:"column:staff_created_at;not null" json:"staff_created_at"`
	StaffUpdatedAt time.Time `gorm:"column:staff_updated_at;not null" json:"staff_updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}

func (m *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if m.StaffID == uuid.Nil {
		m.StaffID = uuid.New()
	}
	now := time.Now()
	if m.StaffCreatedAt.IsZero() {
		m.StaffCreatedAt = now
	}
	m.StaffUpdatedAt = now
	return nil
}

func (m *Staff) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StaffUpdatedAt = time.Now()
	return nil
}
