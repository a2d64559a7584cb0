// file: internals/features/staff/controller/staff_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"uniberg_backend/internals/constants"
	dto "uniberg_backend/internals/features/staff/dto"
	model "uniberg_backend/internals/features/staff/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// GET /api/staff?search=&privilege=&status=
func (h *Handler) ListStaff(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.Staff{})
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		q = q.Where(
			"staff_number ILIKE ? OR staff_first_name ILIKE ? OR staff_last_name ILIKE ? OR staff_email ILIKE ?",
			like, like, like, like,
		)
	}
	if priv := strings.TrimSpace(c.Query("privilege")); priv != "" {
		q = q.Where("staff_privilege_level = ?", priv)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("staff_status = ?", status)
	}

	var rows []model.Staff
	if err := q.Order("staff_first_name ASC").Limit(100).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "staff", dto.ToStaffResponses(rows))
}

// GET /api/staff/:id
func (h *Handler) GetStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.Staff
	if err := h.DB.WithContext(c.UserContext()).First(&m, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "staff not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "staff", dto.ToStaffResponse(m))
}

// POST /api/staff
func (h *Handler) CreateStaff(c *fiber.Ctx) error {
	var in dto.StaffCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if !constants.IsValidPrivilegeLevel(in.StaffPrivilegeLevel) {
		return helper.JsonError(c, http.StatusBadRequest, "unknown privilege level")
	}

	var count int64
	h.DB.WithContext(c.UserContext()).Model(&model.Staff{}).
		Where("staff_number = ? OR staff_email = ?", in.StaffNumber, in.StaffEmail).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "staff number or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m := dto.StaffCreateDTOToModel(in, string(hash))
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "staff registered", dto.ToStaffResponse(m))
}

// PATCH /api/staff/:id
func (h *Handler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.StaffUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.Staff
	if err := h.DB.WithContext(c.UserContext()).First(&m, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "staff not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyStaffUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "staff updated", dto.ToStaffResponse(m))
}

// POST /api/staff/:id/change-role
func (h *Handler) ChangeRole(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.StaffChangeRoleDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if !constants.IsValidPrivilegeLevel(in.StaffPrivilegeLevel) {
		return helper.JsonError(c, http.StatusBadRequest, "unknown privilege level")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.Staff{}).
		Where("staff_id = ?", id).
		Update("staff_privilege_level", in.StaffPrivilegeLevel)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "staff not found")
	}
	return helper.JsonUpdated(c, "role changed", fiber.Map{
		"staff_id":              id,
		"staff_privilege_level": in.StaffPrivilegeLevel,
	})
}

// DELETE /api/staff/:id — deactivate
func (h *Handler) DeleteStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Model(&model.Staff{}).
		Where("staff_id = ?", id).
		Update("staff_status", model.StaffStatusInactive)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "staff not found")
	}
	return helper.JsonDeleted(c, "staff deactivated", fiber.Map{"staff_id": id})
}
