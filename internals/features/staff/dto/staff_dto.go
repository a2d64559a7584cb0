// file: internals/features/staff/dto/staff_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/staff/model"
)

// Create
type StaffCreateDTO struct {
	StaffNumber         string     `json:"staff_number" validate:"required,max=30"`
	StaffFirstName      string     `json:"staff_first_name" validate:"required,max=60"`
	StaffLastName       string     `json:"staff_last_name" validate:"required,max=60"`
	StaffEmail          string     `json:"staff_email" validate:"required,email,max=120"`
	StaffSchoolID       *uuid.UUID `json:"staff_school_id,omitempty"`
	StaffPosition       string     `json:"staff_position" validate:"omitempty,max=80"`
	StaffPrivilegeLevel string     `json:"staff_privilege_level" validate:"required"`
	StaffPassword       string     `json:"staff_password" validate:"required,min=6,max=72"`
}

// Update (partial)
type StaffUpdateDTO struct {
	StaffFirstName *string            `json:"staff_first_name,omitempty" validate:"omitempty,max=60"`
	StaffLastName  *string            `json:"staff_last_name,omitempty" validate:"omitempty,max=60"`
	StaffEmail     *string            `json:"staff_email,omitempty" validate:"omitempty,email,max=120"`
	StaffSchoolID  *uuid.UUID         `json:"staff_school_id,omitempty"`
	StaffPosition  *string            `json:"staff_position,omitempty" validate:"omitempty,max=80"`
	StaffStatus    *model.StaffStatus `json:"staff_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Role change is a separate, audited operation.
type StaffChangeRoleDTO struct {
	StaffPrivilegeLevel string `json:"staff_privilege_level" validate:"required"`
}

// Response
type StaffResponse struct {
	StaffID             uuid.UUID         `json:"staff_id"`
	StaffNumber         string            `json:"staff_number"`
	StaffFirstName      string            `json:"staff_first_name"`
	StaffLastName       string            `json:"staff_last_name"`
	StaffEmail          string            `json:"staff_email"`
	StaffSchoolID       *uuid.UUID        `json:"staff_school_id,omitempty"`
	StaffPosition       string            `json:"staff_position"`
	StaffPrivilegeLevel string            `json:"staff_privilege_level"`
	StaffStatus         model.StaffStatus `json:"staff_status"`
	StaffCreatedAt      time.Time         `json:"staff_created_at"`
}

func StaffCreateDTOToModel(in StaffCreateDTO, passwordHash string) model.Staff {
	return model.Staff{
		StaffNumber:         in.StaffNumber,
		StaffFirstName:      in.StaffFirstName,
		StaffLastName:       in.StaffLastName,
		StaffEmail:          in.StaffEmail,
		StaffSchoolID:       in.StaffSchoolID,
		StaffPosition:       in.StaffPosition,
		StaffPrivilegeLevel: in.StaffPrivilegeLevel,
		StaffPasswordHash:   passwordHash,
		StaffStatus:         model.StaffStatusActive,
	}
}

func ApplyStaffUpdate(m *model.Staff, in StaffUpdateDTO) {
	if in.StaffFirstName != nil {
		m.StaffFirstName = *in.StaffFirstName
	}
	if in.StaffLastName != nil {
		m.StaffLastName = *in.StaffLastName
	}
	if in.StaffEmail != nil {
		m.StaffEmail = *in.StaffEmail
	}
	if in.StaffSchoolID != nil {
		m.StaffSchoolID = in.StaffSchoolID
	}
	if in.StaffPosition != nil {
		m.StaffPosition = *in.StaffPosition
	}
	if in.StaffStatus != nil {
		m.StaffStatus = *in.StaffStatus
	}
}

func ToStaffResponse(m model.Staff) StaffResponse {
	return StaffResponse{
		StaffID:             m.StaffID,
		StaffNumber:         m.StaffNumber,
		StaffFirstName:      m.StaffFirstName,
		StaffLastName:       m.StaffLastName,
		StaffEmail:          m.StaffEmail,
		StaffSchoolID:       m.StaffSchoolID,
		StaffPosition:       m.StaffPosition,
		StaffPrivilegeLevel: m.StaffPrivilegeLevel,
		StaffStatus:         m.StaffStatus,
		StaffCreatedAt:      m.StaffCreatedAt,
	}
}

func ToStaffResponses(ms []model.Staff) []StaffResponse {
	out := make([]StaffResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStaffResponse(m))
	}
	return out
}
