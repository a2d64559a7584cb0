// file: internals/features/academics/programs/dto/program_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/academics/programs/model"
)

// Create
type ProgramCreateDTO struct {
	ProgramSchoolID      uuid.UUID `json:"program_school_id" validate:"required"`
	ProgramName          string    `json:"program_name" validate:"required,max=160"`
	ProgramLevel         string    `json:"program_level" validate:"required,max=40"`
	ProgramDurationYears int       `json:"program_duration_years" validate:"omitempty,min=1,max=8"`
}

// Update (partial)
type ProgramUpdateDTO struct {
	ProgramName          *string              `json:"program_name,omitempty" validate:"omitempty,max=160"`
	ProgramLevel         *string              `json:"program_level,omitempty" validate:"omitempty,max=40"`
	ProgramDurationYears *int                 `json:"program_duration_years,omitempty" validate:"omitempty,min=1,max=8"`
	ProgramStatus        *model.ProgramStatus `json:"program_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Response
type ProgramResponse struct {
	ProgramID            uuid.UUID           `json:"program_id"`
	ProgramSchoolID      uuid.UUID           `json:"program_school_id"`
	ProgramName          string              `json:"program_name"`
	ProgramLevel         string              `json:"program_level"`
	ProgramDurationYears int                 `json:"program_duration_years"`
	ProgramStatus        model.ProgramStatus `json:"program_status"`
	ProgramCreatedAt     time.Time           `json:"program_created_at"`
}

func ProgramCreateDTOToModel(in ProgramCreateDTO) model.Program {
	years := in.ProgramDurationYears
	if years == 0 {
		years = 3
	}
	return model.Program{
		ProgramSchoolID:      in.ProgramSchoolID,
		ProgramName:          in.ProgramName,
		ProgramLevel:         in.ProgramLevel,
		ProgramDurationYears: years,
		ProgramStatus:        model.ProgramStatusActive,
	}
}

func ApplyProgramUpdate(m *model.Program, in ProgramUpdateDTO) {
	if in.ProgramName != nil {
		m.ProgramName = *in.ProgramName
	}
	if in.ProgramLevel != nil {
		m.ProgramLevel = *in.ProgramLevel
	}
	if in.ProgramDurationYears != nil {
		m.ProgramDurationYears = *in.ProgramDurationYears
	}
	if in.ProgramStatus != nil {
		m.ProgramStatus = *in.ProgramStatus
	}
}

func ToProgramResponse(m model.Program) ProgramResponse {
	return ProgramResponse{
		ProgramID:            m.ProgramID,
		ProgramSchoolID:      m.ProgramSchoolID,
		ProgramName:          m.ProgramName,
		ProgramLevel:         m.ProgramLevel,
		ProgramDurationYears: m.ProgramDurationYears,
		ProgramStatus:        m.ProgramStatus,
		ProgramCreatedAt:     m.ProgramCreatedAt,
	}
}

func ToProgramResponses(ms []model.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToProgramResponse(m))
	}
	return out
}
