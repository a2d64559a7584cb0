// file: internals/features/grades/ca/dto/ca_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CAScoreDTO struct {
	CourseID       uuid.UUID `json:"course_id" validate:"required"`
	Score          *float64  `json:"score,omitempty" validate:"omitempty,min=0"`
	TotalScore     float64   `json:"total_score" validate:"required,gt=0"`
	AssessmentType string    `json:"assessment_type" validate:"omitempty,oneof=assignment quiz midterm practical project"`
	AssessmentDate string    `json:"assessment_date" validate:"omitempty,datetime=2006-01-02"`
}

type SaveCAScoresDTO struct {
	AcademicYear string       `json:"academic_year" validate:"required,len=9"`
	Semester     int          `json:"semester" validate:"required,oneof=1 2"`
	Scores       []CAScoreDTO `json:"ca_scores" validate:"required,min=1,max=50,dive"`
}

// CARecordView is one assessment row with its derived grade.
type CARecordView struct {
	CourseCode     string   `json:"course_code"`
	CourseName     string   `json:"course_name"`
	Credits        int      `json:"credits"`
	Score          *float64 `json:"score"`
	TotalScore     float64  `json:"total_score"`
	Percentage     float64  `json:"percentage"`
	AssessmentType string   `json:"assessment_type"`
	AssessmentDate string   `json:"assessment_date"`
	EnteredAt      string   `json:"entered_at"`
	Grade          string   `json:"grade"`
	Remarks        string   `json:"remarks"`
}

// SemesterStats aggregates one semester's assessments.
type SemesterStats struct {
	TotalCourses      int     `json:"total_courses"`
	TotalScore        float64 `json:"total_score"`
	TotalPossible     float64 `json:"total_possible"`
	AveragePercentage float64 `json:"average_percentage"`
}

type SemesterCAView struct {
	AcademicYear string         `json:"academic_year"`
	Semester     int            `json:"semester"`
	Records      []CARecordView `json:"records"`
	Stats        SemesterStats  `json:"stats"`
}

type OverallCAStats struct {
	TotalAssessments     int     `json:"total_assessments"`
	TotalSemesters       int     `json:"total_semesters"`
	AveragePercentageAll float64 `json:"average_percentage_all"`
	PassedCourses        int     `json:"passed_courses"`
}
