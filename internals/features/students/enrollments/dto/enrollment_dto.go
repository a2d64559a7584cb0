// file: internals/features/students/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "uniberg_backend/internals/features/students/enrollments/model"
)

// EnrollCoursesDTO enrolls one student into a set of courses for one
// semester of one academic year.
type EnrollCoursesDTO struct {
	CourseIDs    []uuid.UUID `json:"course_ids" validate:"required,min=1,dive,required"`
	Semester     string      `json:"semester" validate:"required,oneof=1 2"`
	AcademicYear string      `json:"academic_year" validate:"required,len=9"`
}

type EnrollmentResponse struct {
	EnrollmentID           uuid.UUID              `json:"enrollment_id"`
	EnrollmentStudentID    uuid.UUID              `json:"enrollment_student_id"`
	EnrollmentCourseID     uuid.UUID              `json:"enrollment_course_id"`
	EnrollmentSemester     string                 `json:"enrollment_semester"`
	EnrollmentAcademicYear string                 `json:"enrollment_academic_year"`
	EnrollmentStatus       model.EnrollmentStatus `json:"enrollment_status"`
	EnrollmentCreatedAt    time.Time              `json:"enrollment_created_at"`

	// filled by list endpoints
	CourseCode string `json:"course_code,omitempty"`
	CourseName string `json:"course_name,omitempty"`
}

func ToEnrollmentResponse(m model.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:           m.EnrollmentID,
		EnrollmentStudentID:    m.EnrollmentStudentID,
		EnrollmentCourseID:     m.EnrollmentCourseID,
		EnrollmentSemester:     m.EnrollmentSemester,
		EnrollmentAcademicYear: m.EnrollmentAcademicYear,
		EnrollmentStatus:       m.EnrollmentStatus,
		EnrollmentCreatedAt:    m.EnrollmentCreatedAt,
	}
}
