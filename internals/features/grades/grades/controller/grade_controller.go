// file: internals/features/grades/grades/controller/grade_controller.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	dto "uniberg_backend/internals/features/grades/grades/dto"
	model "uniberg_backend/internals/features/grades/grades/model"
	service "uniberg_backend/internals/features/grades/grades/service"
	studentModel "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB   *gorm.DB
	Gate *service.Gate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Gate: service.NewGate(db)}
}

// GET /api/grades/scale
func (h *Handler) GetGradeScale(c *fiber.Ctx) error {
	return helper.JsonOK(c, "grade scale", fiber.Map{
		"numeric_scale": service.NumericScale,
		"admin_grades":  service.AdminGrades,
	})
}

/* ===============================
   Entry
=================================*/

// POST /api/grades/students/:student_id/:exam_type
//
// Upserts the semester record: one document per student, exam type,
// academic year and semester. Remarks are always derived server-side.
func (h *Handler) SaveGrades(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	examType := c.Params("exam_type")
	if !model.IsValidExamType(examType) {
		return helper.JsonError(c, http.StatusBadRequest, "exam type must be final or mock")
	}

	var in dto.SaveGradesDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var studentCount int64
	if err := h.DB.WithContext(c.UserContext()).Model(&studentModel.Student{}).
		Where("student_id = ?", studentID).Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if studentCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "student not found")
	}

	entries := make([]model.GradeEntry, 0, len(in.Grades))
	for _, g := range in.Grades {
		grade := strings.ToUpper(strings.TrimSpace(g.Grade))
		if grade == "" {
			if g.Marks == nil {
				return helper.JsonError(c, http.StatusBadRequest, "each entry needs a grade or marks")
			}
			grade = service.ClassifyMarks(*g.Marks)
		}
		if !service.IsKnownGrade(grade) {
			return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("unknown grade %q", grade))
		}
		entries = append(entries, model.GradeEntry{
			CourseID: g.CourseID,
			Marks:    g.Marks,
			Grade:    grade,
			Remarks:  service.GradeRemarks(grade),
		})
	}

	var enteredBy *uuid.UUID
	if id := helper.GetStaffID(c); id != uuid.Nil {
		enteredBy = &id
	}

	var record model.GradeRecord
	err = h.DB.WithContext(c.UserContext()).First(&record,
		"grade_record_student_id = ? AND grade_record_exam_type = ? AND grade_record_academic_year = ? AND grade_record_semester = ?",
		studentID, examType, in.AcademicYear, in.Semester).Error
	switch {
	case err == nil:
		if err := record.SetEntries(entries); err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		record.GradeRecordEnteredBy = enteredBy
		if err := h.DB.WithContext(c.UserContext()).Save(&record).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = model.GradeRecord{
			GradeRecordStudentID:    studentID,
			GradeRecordExamType:     model.ExamType(examType),
			GradeRecordAcademicYear: in.AcademicYear,
			GradeRecordSemester:     in.Semester,
			GradeRecordEnteredBy:    enteredBy,
		}
		if err := record.SetEntries(entries); err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if err := h.DB.WithContext(c.UserContext()).Create(&record).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	default:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fmt.Sprintf("%s grades saved for %s semester %d", examType, in.AcademicYear, in.Semester), fiber.Map{
		"grade_record_id": record.GradeRecordID,
		"entries":         len(entries),
	})
}

/* ===============================
   Views
=================================*/

func (h *Handler) semesterQuery(c *fiber.Ctx) (string, int, error) {
	year := strings.TrimSpace(c.Query("academic_year", "2025/2026"))
	sem, err := strconv.Atoi(strings.TrimSpace(c.Query("semester", "1")))
	if err != nil || (sem != 1 && sem != 2) {
		return "", 0, errors.New("semester must be 1 or 2")
	}
	return year, sem, nil
}

// GET /api/grades/students/:student_id/:exam_type?academic_year=&semester=
func (h *Handler) GetGrades(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	examType := c.Params("exam_type")
	if !model.IsValidExamType(examType) {
		return helper.JsonError(c, http.StatusBadRequest, "exam type must be final or mock")
	}
	year, sem, err := h.semesterQuery(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	decision, err := h.Gate.CanViewSemesterGrades(
		c.UserContext(), studentID, year, sem, helper.GetPrivilegeLevel(c))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var record model.GradeRecord
	err = h.DB.WithContext(c.UserContext()).First(&record,
		"grade_record_student_id = ? AND grade_record_exam_type = ? AND grade_record_academic_year = ? AND grade_record_semester = ?",
		studentID, examType, year, sem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "no grades recorded", fiber.Map{
			"grades":     []dto.GradeEntryView{},
			"visibility": decision,
		})
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	entries, err := record.Entries()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	courses, err := h.loadCourses(c.UserContext(), entries)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "grades", fiber.Map{
		"grades":     dto.RenderEntries(entries, courses, decision.CanView),
		"visibility": decision,
	})
}

// GET /api/grades/students/:student_id
//
// Serves all recorded semesters, final and mock, newest first. Each
// semester runs through the visibility gate independently, so an unpaid
// semester is redacted while a settled one stays visible.
func (h *Handler) GetStudentAllGrades(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	privilege := helper.GetPrivilegeLevel(c)

	var records []model.GradeRecord
	if err := h.DB.WithContext(c.UserContext()).
		Where("grade_record_student_id = ?", studentID).
		Order("grade_record_academic_year DESC, grade_record_semester DESC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	type semKey struct {
		Year string
		Sem  int
	}
	decisions := make(map[semKey]service.VisibilityDecision)

	views := make([]dto.GradeRecordView, 0, len(records))
	for _, record := range records {
		key := semKey{record.GradeRecordAcademicYear, record.GradeRecordSemester}
		decision, ok := decisions[key]
		if !ok {
			decision, err = h.Gate.CanViewSemesterGrades(
				c.UserContext(), studentID, key.Year, key.Sem, privilege)
			if err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, err.Error())
			}
			decisions[key] = decision
		}

		entries, err := record.Entries()
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		courses, err := h.loadCourses(c.UserContext(), entries)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}

		views = append(views, dto.GradeRecordView{
			ExamType:      record.GradeRecordExamType,
			AcademicYear:  record.GradeRecordAcademicYear,
			Semester:      record.GradeRecordSemester,
			EnteredAt:     record.GradeRecordEnteredAt,
			Grades:        dto.RenderEntries(entries, courses, decision.CanView),
			CanView:       decision.CanView,
			ViewedByStaff: decision.ViaPrivilege,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].AcademicYear != views[j].AcademicYear {
			return views[i].AcademicYear > views[j].AcademicYear
		}
		return views[i].Semester > views[j].Semester
	})

	return helper.JsonOK(c, "student grades", views)
}

// GET /api/grades/students/:student_id/visibility?academic_year=&semester=
func (h *Handler) CheckVisibility(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	year, sem, err := h.semesterQuery(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	decision, err := h.Gate.CanViewSemesterGrades(
		c.UserContext(), studentID, year, sem, helper.GetPrivilegeLevel(c))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "visibility", decision)
}

func (h *Handler) loadCourses(ctx context.Context, entries []model.GradeEntry) (map[uuid.UUID]courseModel.Course, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CourseID)
	}
	out := make(map[uuid.UUID]courseModel.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var courses []courseModel.Course
	if err := h.DB.WithContext(ctx).Where("course_id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, course := range courses {
		out[course.CourseID] = course
	}
	return out, nil
}
