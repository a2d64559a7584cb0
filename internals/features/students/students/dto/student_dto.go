// file: internals/features/students/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/students/students/model"
)

// Create
type StudentCreateDTO struct {
	StudentNumber    string    `json:"student_number" validate:"required,max=30"`
	StudentFirstName string    `json:"student_first_name" validate:"required,max=60"`
	StudentLastName  string    `json:"student_last_name" validate:"required,max=60"`
	StudentEmail     string    `json:"student_email" validate:"required,email,max=120"`
	StudentPhone     *string   `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentProgramID uuid.UUID `json:"student_program_id" validate:"required"`
	StudentSchoolID  uuid.UUID `json:"student_school_id" validate:"required"`
}

// Update (partial)
type StudentUpdateDTO struct {
	StudentFirstName *string              `json:"student_first_name,omitempty" validate:"omitempty,max=60"`
	StudentLastName  *string              `json:"student_last_name,omitempty" validate:"omitempty,max=60"`
	StudentEmail     *string              `json:"student_email,omitempty" validate:"omitempty,email,max=120"`
	StudentPhone     *string              `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentProgramID *uuid.UUID           `json:"student_program_id,omitempty"`
	StudentSchoolID  *uuid.UUID           `json:"student_school_id,omitempty"`
	StudentStatus    *model.StudentStatus `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive graduated suspended"`
}

// Response
type StudentResponse struct {
	StudentID        uuid.UUID           `json:"student_id"`
	StudentNumber    string              `json:"student_number"`
	StudentFirstName string              `json:"student_first_name"`
	StudentLastName  string              `json:"student_last_name"`
	StudentEmail     string              `json:"student_email"`
	StudentPhone     *string             `json:"student_phone,omitempty"`
	StudentProgramID uuid.UUID           `json:"student_program_id"`
	StudentSchoolID  uuid.UUID           `json:"student_school_id"`
	StudentStatus    model.StudentStatus `json:"student_status"`
	StudentCreatedAt time.Time           `json:"student_created_at"`

	// filled by search/list endpoints
	ProgramName string `json:"program_name,omitempty"`
	SchoolName  string `json:"school_name,omitempty"`
}

func StudentCreateDTOToModel(in StudentCreateDTO, passwordHash string) model.Student {
	return model.Student{
		StudentNumber:       in.StudentNumber,
		StudentFirstName:    in.StudentFirstName,
		StudentLastName:     in.StudentLastName,
		StudentEmail:        in.StudentEmail,
		StudentPhone:        in.StudentPhone,
		StudentProgramID:    in.StudentProgramID,
		StudentSchoolID:     in.StudentSchoolID,
		StudentPasswordHash: passwordHash,
		StudentStatus:       model.StudentStatusActive,
	}
}

func ApplyStudentUpdate(m *model.Student, in StudentUpdateDTO) {
	if in.StudentFirstName != nil {
		m.StudentFirstName = *in.StudentFirstName
	}
	if in.StudentLastName != nil {
		m.StudentLastName = *in.StudentLastName
	}
	if in.StudentEmail != nil {
		m.StudentEmail = *in.StudentEmail
	}
	if in.StudentPhone != nil {
		m.StudentPhone = in.StudentPhone
	}
	if in.StudentProgramID != nil {
		m.StudentProgramID = *in.StudentProgramID
	}
	if in.StudentSchoolID != nil {
		m.StudentSchoolID = *in.StudentSchoolID
	}
	if in.StudentStatus != nil {
		m.StudentStatus = *in.StudentStatus
	}
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentNumber:    m.StudentNumber,
		StudentFirstName: m.StudentFirstName,
		StudentLastName:  m.StudentLastName,
		StudentEmail:     m.StudentEmail,
		StudentPhone:     m.StudentPhone,
		StudentProgramID: m.StudentProgramID,
		StudentSchoolID:  m.StudentSchoolID,
		StudentStatus:    m.StudentStatus,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}

func ToStudentResponses(ms []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
