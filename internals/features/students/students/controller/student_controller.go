// file: internals/features/students/students/controller/student_controller.go
package controller

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	programModel "uniberg_backend/internals/features/academics/programs/model"
	schoolModel "uniberg_backend/internals/features/academics/schools/model"
	dto "uniberg_backend/internals/features/students/students/dto"
	model "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// generateAutoPassword mirrors the registration flow: a short numeric PIN
// the registry office hands to the student, stored only as a bcrypt hash.
func generateAutoPassword(length int) string {
	const digits = "0123456789"
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			buf[i] = '0'
			continue
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf)
}

// GET /api/students?search=&school_id=&program_id=&status=
func (h *Handler) SearchStudents(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.Student{})

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		q = q.Where(
			"student_number ILIKE ? OR student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_email ILIKE ?",
			like, like, like, like,
		)
	}
	if sid := strings.TrimSpace(c.Query("school_id")); sid != "" {
		schoolID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
		}
		q = q.Where("student_school_id = ?", schoolID)
	}
	if pid := strings.TrimSpace(c.Query("program_id")); pid != "" {
		programID, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid program_id")
		}
		q = q.Where("student_program_id = ?", programID)
	}
	status := strings.TrimSpace(c.Query("status", string(model.StudentStatusActive)))
	q = q.Where("student_status = ?", status)

	var rows []model.Student
	if err := q.Order("student_first_name ASC").Limit(50).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToStudentResponses(rows)
	h.fillCatalogNames(c, out)
	return helper.JsonOK(c, "students", out)
}

// fillCatalogNames resolves program/school names for list responses.
func (h *Handler) fillCatalogNames(c *fiber.Ctx, rows []dto.StudentResponse) {
	programNames := map[uuid.UUID]string{}
	schoolNames := map[uuid.UUID]string{}
	for i := range rows {
		r := &rows[i]
		if name, ok := programNames[r.StudentProgramID]; ok {
			r.ProgramName = name
		} else {
			var p programModel.Program
			if err := h.DB.WithContext(c.UserContext()).First(&p, "program_id = ?", r.StudentProgramID).Error; err == nil {
				programNames[r.StudentProgramID] = p.ProgramName
				r.ProgramName = p.ProgramName
			}
		}
		if name, ok := schoolNames[r.StudentSchoolID]; ok {
			r.SchoolName = name
		} else {
			var s schoolModel.School
			if err := h.DB.WithContext(c.UserContext()).First(&s, "school_id = ?", r.StudentSchoolID).Error; err == nil {
				schoolNames[r.StudentSchoolID] = s.SchoolName
				r.SchoolName = s.SchoolName
			}
		}
	}
}

// GET /api/students/:id
func (h *Handler) GetStudent(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.Student
	if err := h.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := []dto.StudentResponse{dto.ToStudentResponse(m)}
	h.fillCatalogNames(c, out)
	return helper.JsonOK(c, "student", out[0])
}

// POST /api/students
func (h *Handler) CreateStudent(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var count int64
	h.DB.WithContext(c.UserContext()).Model(&model.Student{}).
		Where("student_number = ? OR student_email = ?", in.StudentNumber, in.StudentEmail).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "student number or email already exists")
	}

	plain := generateAutoPassword(4)
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m := dto.StudentCreateDTOToModel(in, string(hash))
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// The one-time password is returned once at registration, never again.
	return helper.JsonCreated(c, "student registered", fiber.Map{
		"student":          dto.ToStudentResponse(m),
		"initial_password": plain,
	})
}

// POST /api/students/import
//
// Bulk CSV registration is still handled offline by the registry office.
func (h *Handler) ImportStudents(c *fiber.Ctx) error {
	return helper.JsonError(c, http.StatusNotImplemented, "bulk import is not available yet, register students individually")
}

// PATCH /api/students/:id
func (h *Handler) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.Student
	if err := h.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// DELETE /api/students/:id — deactivates rather than removing; the ledger
// and grade history keep referencing the id.
func (h *Handler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).Model(&model.Student{}).
		Where("student_id = ?", id).
		Update("student_status", model.StudentStatusInactive)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deactivated", fiber.Map{"student_id": id})
}
