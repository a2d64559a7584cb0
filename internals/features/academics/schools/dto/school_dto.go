// file: internals/features/academics/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/academics/schools/model"
)

// Create
type SchoolCreateDTO struct {
	SchoolName string `json:"school_name" validate:"required,max=120"`
	SchoolCode string `json:"school_code" validate:"required,max=20"`
}

// Update (partial)
type SchoolUpdateDTO struct {
	SchoolName   *string             `json:"school_name,omitempty" validate:"omitempty,max=120"`
	SchoolCode   *string             `json:"school_code,omitempty" validate:"omitempty,max=20"`
	SchoolStatus *model.SchoolStatus `json:"school_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Response
type SchoolResponse struct {
	SchoolID        uuid.UUID          `json:"school_id"`
	SchoolName      string             `json:"school_name"`
	SchoolCode      string             `json:"school_code"`
	SchoolStatus    model.SchoolStatus `json:"school_status"`
	SchoolCreatedAt time.Time          `json:"school_created_at"`
}

func SchoolCreateDTOToModel(in SchoolCreateDTO) model.School {
	return model.School{
		SchoolName:   in.SchoolName,
		SchoolCode:   in.SchoolCode,
		SchoolStatus: model.SchoolStatusActive,
	}
}

func ApplySchoolUpdate(m *model.School, in SchoolUpdateDTO) {
	if in.SchoolName != nil {
		m.SchoolName = *in.SchoolName
	}
	if in.SchoolCode != nil {
		m.SchoolCode = *in.SchoolCode
	}
	if in.SchoolStatus != nil {
		m.SchoolStatus = *in.SchoolStatus
	}
}

func ToSchoolResponse(m model.School) SchoolResponse {
	return SchoolResponse{
		SchoolID:        m.SchoolID,
		SchoolName:      m.SchoolName,
		SchoolCode:      m.SchoolCode,
		SchoolStatus:    m.SchoolStatus,
		SchoolCreatedAt: m.SchoolCreatedAt,
	}
}

func ToSchoolResponses(ms []model.School) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSchoolResponse(m))
	}
	return out
}
