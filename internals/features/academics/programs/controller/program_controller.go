// file: internals/features/academics/programs/controller/program_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "uniberg_backend/internals/features/academics/programs/dto"
	model "uniberg_backend/internals/features/academics/programs/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// GET /api/academics/programs?school_id=&status=&level=
func (h *Handler) ListPrograms(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.Program{})
	if sid := strings.TrimSpace(c.Query("school_id")); sid != "" {
		schoolID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
		}
		q = q.Where("program_school_id = ?", schoolID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("program_status = ?", status)
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		q = q.Where("LOWER(program_level) = LOWER(?)", level)
	}

	var rows []model.Program
	if err := q.Order("program_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "programs", dto.ToProgramResponses(rows))
}

// GET /api/academics/schools/:school_id/programs
func (h *Handler) ListProgramsBySchool(c *fiber.Ctx) error {
	schoolID, err := parseUUID(c, "school_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	var rows []model.Program
	if err := h.DB.WithContext(c.UserContext()).
		Where("program_school_id = ? AND program_status = ?", schoolID, model.ProgramStatusActive).
		Order("program_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "programs", dto.ToProgramResponses(rows))
}

// POST /api/academics/programs
func (h *Handler) CreateProgram(c *fiber.Ctx) error {
	var in dto.ProgramCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var count int64
	h.DB.WithContext(c.UserContext()).Model(&model.Program{}).
		Where("program_name = ?", in.ProgramName).Count(&count)
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "program name already exists")
	}

	m := dto.ProgramCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "program created", dto.ToProgramResponse(m))
}

// PATCH /api/academics/programs/:id
func (h *Handler) UpdateProgram(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.ProgramUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.Program
	if err := h.DB.WithContext(c.UserContext()).First(&m, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "program not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyProgramUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "program updated", dto.ToProgramResponse(m))
}

// DELETE /api/academics/programs/:id
func (h *Handler) DeleteProgram(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.Program{}, "program_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "program not found")
	}
	return helper.JsonDeleted(c, "program deleted", fiber.Map{"program_id": id})
}
