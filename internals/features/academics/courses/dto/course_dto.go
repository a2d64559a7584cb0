// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "uniberg_backend/internals/features/academics/courses/model"
)

// Create
type CourseCreateDTO struct {
	CourseProgramID     uuid.UUID           `json:"course_program_id" validate:"required"`
	CourseSchoolID      uuid.UUID           `json:"course_school_id" validate:"required"`
	CourseCode          string              `json:"course_code" validate:"required,max=20"`
	CourseName          string              `json:"course_name" validate:"required,max=160"`
	CourseCredits       int                 `json:"course_credits" validate:"omitempty,min=0,max=30"`
	CourseFee           decimal.Decimal     `json:"course_fee"`
	CourseGradingSystem model.GradingSystem `json:"course_grading_system" validate:"omitempty,oneof=letter percentage points pass_fail satisfactory credit"`
}

// Update (partial)
type CourseUpdateDTO struct {
	CourseName          *string              `json:"course_name,omitempty" validate:"omitempty,max=160"`
	CourseCredits       *int                 `json:"course_credits,omitempty" validate:"omitempty,min=0,max=30"`
	CourseFee           *decimal.Decimal     `json:"course_fee,omitempty"`
	CourseGradingSystem *model.GradingSystem `json:"course_grading_system,omitempty" validate:"omitempty,oneof=letter percentage points pass_fail satisfactory credit"`
	CourseStatus        *model.CourseStatus  `json:"course_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Response
type CourseResponse struct {
	CourseID            uuid.UUID           `json:"course_id"`
	CourseProgramID     uuid.UUID           `json:"course_program_id"`
	CourseSchoolID      uuid.UUID           `json:"course_school_id"`
	CourseCode          string              `json:"course_code"`
	CourseName          string              `json:"course_name"`
	CourseCredits       int                 `json:"course_credits"`
	CourseFee           decimal.Decimal     `json:"course_fee"`
	CourseGradingSystem model.GradingSystem `json:"course_grading_system"`
	CourseStatus        model.CourseStatus  `json:"course_status"`
	CourseCreatedAt     time.Time           `json:"course_created_at"`
}

func CourseCreateDTOToModel(in CourseCreateDTO) model.Course {
	grading := in.CourseGradingSystem
	if grading == "" {
		grading = model.GradingLetter
	}
	return model.Course{
		CourseProgramID:     in.CourseProgramID,
		CourseSchoolID:      in.CourseSchoolID,
		CourseCode:          in.CourseCode,
		CourseName:          in.CourseName,
		CourseCredits:       in.CourseCredits,
		CourseFee:           in.CourseFee,
		CourseGradingSystem: grading,
		CourseStatus:        model.CourseStatusActive,
	}
}

func ApplyCourseUpdate(m *model.Course, in CourseUpdateDTO) {
	if in.CourseName != nil {
		m.CourseName = *in.CourseName
	}
	if in.CourseCredits != nil {
		m.CourseCredits = *in.CourseCredits
	}
	if in.CourseFee != nil {
		m.CourseFee = *in.CourseFee
	}
	if in.CourseGradingSystem != nil {
		m.CourseGradingSystem = *in.CourseGradingSystem
	}
	if in.CourseStatus != nil {
		m.CourseStatus = *in.CourseStatus
	}
}

func ToCourseResponse(m model.Course) CourseResponse {
	return CourseResponse{
		CourseID:            m.CourseID,
		CourseProgramID:     m.CourseProgramID,
		CourseSchoolID:      m.CourseSchoolID,
		CourseCode:          m.CourseCode,
		CourseName:          m.CourseName,
		CourseCredits:       m.CourseCredits,
		CourseFee:           m.CourseFee,
		CourseGradingSystem: m.CourseGradingSystem,
		CourseStatus:        m.CourseStatus,
		CourseCreatedAt:     m.CourseCreatedAt,
	}
}

func ToCourseResponses(ms []model.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCourseResponse(m))
	}
	return out
}
