// file: internals/features/academics/schools/controller/school_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "uniberg_backend/internals/features/academics/schools/dto"
	model "uniberg_backend/internals/features/academics/schools/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// GET /api/academics/schools
func (h *Handler) ListSchools(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.School{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("school_status = ?", status)
	}

	var rows []model.School
	if err := q.Order("school_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "schools", dto.ToSchoolResponses(rows))
}

// POST /api/academics/schools
func (h *Handler) CreateSchool(c *fiber.Ctx) error {
	var in dto.SchoolCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var count int64
	h.DB.WithContext(c.UserContext()).Model(&model.School{}).
		Where("school_name = ? OR school_code = ?", in.SchoolName, in.SchoolCode).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "school name or code already exists")
	}

	m := dto.SchoolCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "school created", dto.ToSchoolResponse(m))
}

// PATCH /api/academics/schools/:id
func (h *Handler) UpdateSchool(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.SchoolUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.School
	if err := h.DB.WithContext(c.UserContext()).First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplySchoolUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "school updated", dto.ToSchoolResponse(m))
}

// DELETE /api/academics/schools/:id
func (h *Handler) DeleteSchool(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.School{}, "school_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "school not found")
	}
	return helper.JsonDeleted(c, "school deleted", fiber.Map{"school_id": id})
}
