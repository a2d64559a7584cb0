// file: internals/features/students/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	dto "uniberg_backend/internals/features/students/enrollments/dto"
	model "uniberg_backend/internals/features/students/enrollments/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// POST /api/students/:student_id/enrollments
func (h *Handler) EnrollCourses(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	}

	var in dto.EnrollCoursesDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var student studentModel.Student
	if err := h.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	enrolled := make([]dto.EnrollmentResponse, 0, len(in.CourseIDs))
	skipped := make([]uuid.UUID, 0)

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, courseID := range in.CourseIDs {
			var course courseModel.Course
			if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
				skipped = append(skipped, courseID)
				continue
			}

			// already enrolled for this semester → skip, not an error
			var count int64
			tx.Model(&model.Enrollment{}).Where(
				"enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_academic_year = ? AND enrollment_semester = ?",
				studentID, courseID, in.AcademicYear, in.Semester,
			).Count(&count)
			if count > 0 {
				skipped = append(skipped, courseID)
				continue
			}

			m := model.Enrollment{
				EnrollmentStudentID:    studentID,
				EnrollmentCourseID:     courseID,
				EnrollmentSemester:     in.Semester,
				EnrollmentAcademicYear: in.AcademicYear,
				EnrollmentStatus:       model.EnrollmentStatusEnrolled,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			resp := dto.ToEnrollmentResponse(m)
			resp.CourseCode = course.CourseCode
			resp.CourseName = course.CourseName
			enrolled = append(enrolled, resp)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "courses enrolled", fiber.Map{
		"enrolled": enrolled,
		"skipped":  skipped,
	})
}

// GET /api/students/:student_id/enrollments?academic_year=&semester=
func (h *Handler) ListStudentEnrollments(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	}

	q := h.DB.WithContext(c.UserContext()).Model(&model.Enrollment{}).
		Where("enrollment_student_id = ?", studentID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("enrollment_academic_year = ?", year)
	}
	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		q = q.Where("enrollment_semester = ?", sem)
	}

	var rows []model.Enrollment
	if err := q.Order("enrollment_academic_year DESC, enrollment_semester DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.EnrollmentResponse, 0, len(rows))
	for _, m := range rows {
		resp := dto.ToEnrollmentResponse(m)
		var course courseModel.Course
		if err := h.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", m.EnrollmentCourseID).Error; err == nil {
			resp.CourseCode = course.CourseCode
			resp.CourseName = course.CourseName
		}
		out = append(out, resp)
	}
	return helper.JsonOK(c, "enrollments", out)
}

// DELETE /api/students/:student_id/enrollments/:id — drop a course
func (h *Handler) DropEnrollment(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.Enrollment{}).
		Where("enrollment_id = ? AND enrollment_student_id = ?", id, studentID).
		Update("enrollment_status", model.EnrollmentStatusDropped)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "enrollment not found")
	}
	return helper.JsonDeleted(c, "enrollment dropped", fiber.Map{"enrollment_id": id})
}
