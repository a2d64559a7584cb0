// file: internals/features/grades/ca/controller/ca_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	dto "uniberg_backend/internals/features/grades/ca/dto"
	model "uniberg_backend/internals/features/grades/ca/model"
	service "uniberg_backend/internals/features/grades/ca/service"
	studentModel "uniberg_backend/internals/features/students/students/model"
	helper "uniberg_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// POST /api/ca/students/:student_id
//
// Upserts one CA record per (course, academic year, semester). Rows with
// unknown courses are skipped, the rest of the batch still saves.
func (h *Handler) SaveCAScores(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	var in dto.SaveCAScoresDTO
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

	var enteredBy *uuid.UUID
	if id := helper.GetStaffID(c); id != uuid.Nil {
		enteredBy = &id
	}

	saved := 0
	skipped := make([]uuid.UUID, 0)
	for _, score := range in.Scores {
		if score.Score != nil && *score.Score > score.TotalScore {
			return helper.JsonError(c, http.StatusBadRequest,
				fmt.Sprintf("score exceeds total for course %s", score.CourseID))
		}

		var courseCount int64
		if err := h.DB.WithContext(c.UserContext()).Model(&courseModel.Course{}).
			Where("course_id = ?", score.CourseID).Count(&courseCount).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if courseCount == 0 {
			skipped = append(skipped, score.CourseID)
			continue
		}

		assessmentType := model.AssessmentType(score.AssessmentType)
		if score.AssessmentType == "" {
			assessmentType = model.AssessmentAssignment
		}
		assessmentDate := time.Now()
		if score.AssessmentDate != "" {
			assessmentDate, _ = time.Parse("2006-01-02", score.AssessmentDate)
		}

		var record model.CARecord
		err := h.DB.WithContext(c.UserContext()).First(&record,
			"ca_record_student_id = ? AND ca_record_course_id = ? AND ca_record_academic_year = ? AND ca_record_semester = ?",
			studentID, score.CourseID, in.AcademicYear, in.Semester).Error
		switch {
		case err == nil:
			record.CARecordScore = score.Score
			record.CARecordTotalScore = score.TotalScore
			record.CARecordAssessmentType = assessmentType
			record.CARecordAssessmentDate = assessmentDate
			record.CARecordEnteredBy = enteredBy
			if err := h.DB.WithContext(c.UserContext()).Save(&record).Error; err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, err.Error())
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = model.CARecord{
				CARecordStudentID:      studentID,
				CARecordCourseID:       score.CourseID,
				CARecordAcademicYear:   in.AcademicYear,
				CARecordSemester:       in.Semester,
				CARecordScore:          score.Score,
				CARecordTotalScore:     score.TotalScore,
				CARecordAssessmentType: assessmentType,
				CARecordAssessmentDate: assessmentDate,
				CARecordEnteredBy:      enteredBy,
			}
			if err := h.DB.WithContext(c.UserContext()).Create(&record).Error; err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, err.Error())
			}
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		saved++
	}

	return helper.JsonOK(c,
		fmt.Sprintf("saved %d CA scores for %s semester %d", saved, in.AcademicYear, in.Semester),
		fiber.Map{"saved": saved, "skipped": skipped})
}

// GET /api/ca/students/:student_id
//
// All CA records grouped by semester, with per-semester and overall stats.
func (h *Handler) GetStudentCA(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	var records []model.CARecord
	if err := h.DB.WithContext(c.UserContext()).
		Where("ca_record_student_id = ?", studentID).
		Order("ca_record_academic_year DESC, ca_record_semester DESC, ca_record_course_id ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	courseIDs := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		courseIDs = append(courseIDs, r.CARecordCourseID)
	}
	courses := make(map[uuid.UUID]courseModel.Course, len(courseIDs))
	if len(courseIDs) > 0 {
		var rows []courseModel.Course
		if err := h.DB.WithContext(c.UserContext()).
			Where("course_id IN ?", courseIDs).Find(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		for _, course := range rows {
			courses[course.CourseID] = course
		}
	}

	type semKey struct {
		Year string
		Sem  int
	}
	grouped := make(map[semKey]*dto.SemesterCAView)
	order := make([]semKey, 0)
	passed := 0
	total := 0

	for _, r := range records {
		course, ok := courses[r.CARecordCourseID]
		if !ok {
			continue
		}
		key := semKey{r.CARecordAcademicYear, r.CARecordSemester}
		view, ok := grouped[key]
		if !ok {
			view = &dto.SemesterCAView{
				AcademicYear: key.Year,
				Semester:     key.Sem,
			}
			grouped[key] = view
			order = append(order, key)
		}

		pct := r.Percentage()
		view.Records = append(view.Records, dto.CARecordView{
			CourseCode:     course.CourseCode,
			CourseName:     course.CourseName,
			Credits:        course.CourseCredits,
			Score:          r.CARecordScore,
			TotalScore:     r.CARecordTotalScore,
			Percentage:     pct,
			AssessmentType: string(r.CARecordAssessmentType),
			AssessmentDate: r.CARecordAssessmentDate.Format("2006-01-02"),
			EnteredAt:      r.CARecordEnteredAt.Format("2006-01-02 15:04"),
			Grade:          service.CAGrade(pct),
			Remarks:        service.CARemarks(pct),
		})

		view.Stats.TotalCourses++
		if r.CARecordScore != nil {
			view.Stats.TotalScore += *r.CARecordScore
		}
		view.Stats.TotalPossible += r.CARecordTotalScore
		total++
		if pct >= 50 {
			passed++
		}
	}

	semesters := make([]dto.SemesterCAView, 0, len(order))
	avgSum := 0.0
	for _, key := range order {
		view := grouped[key]
		if view.Stats.TotalPossible > 0 {
			view.Stats.AveragePercentage = view.Stats.TotalScore / view.Stats.TotalPossible * 100
		}
		avgSum += view.Stats.AveragePercentage
		semesters = append(semesters, *view)
	}
	sort.SliceStable(semesters, func(i, j int) bool {
		if semesters[i].AcademicYear != semesters[j].AcademicYear {
			return semesters[i].AcademicYear > semesters[j].AcademicYear
		}
		return semesters[i].Semester > semesters[j].Semester
	})

	overall := dto.OverallCAStats{
		TotalAssessments: total,
		TotalSemesters:   len(semesters),
		PassedCourses:    passed,
	}
	if len(semesters) > 0 {
		overall.AveragePercentageAll = avgSum / float64(len(semesters))
	}

	return helper.JsonOK(c, "student CA records", fiber.Map{
		"semesters": semesters,
		"overall":   overall,
	})
}
