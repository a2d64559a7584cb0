// file: internals/features/grades/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	model "uniberg_backend/internals/features/grades/grades/model"
	service "uniberg_backend/internals/features/grades/grades/service"
)

const (
	hiddenGrade     = "HIDDEN"
	withheldRemarks = "Results withheld due to outstanding balance"
	withheldReason  = "Outstanding balance"
)

/* ===============================
   Input
=================================*/

type GradeEntryDTO struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Marks    *int      `json:"marks,omitempty" validate:"omitempty,min=0,max=100"`
	Grade    string    `json:"grade" validate:"omitempty,max=5"`
}

type SaveGradesDTO struct {
	AcademicYear string          `json:"academic_year" validate:"required,len=9"`
	Semester     int             `json:"semester" validate:"required,oneof=1 2"`
	Grades       []GradeEntryDTO `json:"grades" validate:"required,min=1,max=50,dive"`
}

/* ===============================
   Output
=================================*/

// GradeEntryView is one course result as served to clients. When the
// visibility gate denies access the marks, grade and remarks are redacted
// but the course identity stays visible.
type GradeEntryView struct {
	CourseID       uuid.UUID `json:"course_id"`
	CourseCode     string    `json:"course_code"`
	CourseName     string    `json:"course_name"`
	Marks          *int      `json:"marks"`
	Grade          string    `json:"grade"`
	Remarks        string    `json:"remarks"`
	CanView        bool      `json:"can_view"`
	WithheldReason *string   `json:"withheld_reason"`
}

type GradeRecordView struct {
	ExamType      model.ExamType   `json:"exam_type"`
	AcademicYear  string           `json:"academic_year"`
	Semester      int              `json:"semester"`
	EnteredAt     time.Time        `json:"entered_at"`
	Grades        []GradeEntryView `json:"grades"`
	CanView       bool             `json:"can_view"`
	ViewedByStaff bool             `json:"viewed_by_staff"`
}

// RenderEntries joins entries with their course info and applies the
// redaction when canView is false. Entries pointing at deleted courses
// are dropped, matching how statements are rendered.
func RenderEntries(entries []model.GradeEntry, courses map[uuid.UUID]courseModel.Course, canView bool) []GradeEntryView {
	out := make([]GradeEntryView, 0, len(entries))
	for _, e := range entries {
		course, ok := courses[e.CourseID]
		if !ok {
			continue
		}
		view := GradeEntryView{
			CourseID:   e.CourseID,
			CourseCode: course.CourseCode,
			CourseName: course.CourseName,
			CanView:    canView,
		}
		if canView {
			view.Marks = e.Marks
			view.Grade = e.Grade
			// Remarks follow the letter, never the stored string.
			view.Remarks = service.GradeRemarks(e.Grade)
		} else {
			view.Grade = hiddenGrade
			view.Remarks = withheldRemarks
			reason := withheldReason
			view.WithheldReason = &reason
		}
		out = append(out, view)
	}
	return out
}
