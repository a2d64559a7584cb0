// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "uniberg_backend/internals/features/academics/courses/dto"
	model "uniberg_backend/internals/features/academics/courses/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// GET /api/academics/courses?school_id=&program_id=&status=
func (h *Handler) ListCourses(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.Course{})
	if sid := strings.TrimSpace(c.Query("school_id")); sid != "" {
		schoolID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
		}
		q = q.Where("course_school_id = ?", schoolID)
	}
	if pid := strings.TrimSpace(c.Query("program_id")); pid != "" {
		programID, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid program_id")
		}
		q = q.Where("course_program_id = ?", programID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("course_status = ?", status)
	}

	var rows []model.Course
	if err := q.Order("course_code ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "courses", dto.ToCourseResponses(rows))
}

// GET /api/academics/courses/codes — autocomplete source
func (h *Handler) ListCourseCodes(c *fiber.Ctx) error {
	var codes []string
	if err := h.DB.WithContext(c.UserContext()).Model(&model.Course{}).
		Distinct("course_code").Order("course_code ASC").
		Pluck("course_code", &codes).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "course codes", codes)
}

// POST /api/academics/courses
func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	var in dto.CourseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if in.CourseFee.IsNegative() {
		return helper.JsonError(c, http.StatusBadRequest, "course_fee must not be negative")
	}

	var count int64
	h.DB.WithContext(c.UserContext()).Model(&model.Course{}).
		Where("course_code = ?", in.CourseCode).Count(&count)
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "course code already exists")
	}

	m := dto.CourseCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "course created", dto.ToCourseResponse(m))
}

// PATCH /api/academics/courses/:id
func (h *Handler) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.CourseUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if in.CourseFee != nil && in.CourseFee.IsNegative() {
		return helper.JsonError(c, http.StatusBadRequest, "course_fee must not be negative")
	}

	var m model.Course
	if err := h.DB.WithContext(c.UserContext()).First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyCourseUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "course updated", dto.ToCourseResponse(m))
}

// DELETE /api/academics/courses/:id
func (h *Handler) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.Course{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "course not found")
	}
	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": id})
}
