// file: internals/features/grades/grades/model/grade_record_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamType string

const (
	ExamTypeFinal ExamType = "final"
	ExamTypeMock  ExamType = "mock"
)

func IsValidExamType(t string) bool {
	return ExamType(t) == ExamTypeFinal || ExamType(t) == ExamTypeMock
}

// GradeEntry is one course result inside a semester record. Entries are
// stored as a JSON document on the record, one record per
// (student, exam type, academic year, semester).
type GradeEntry struct {
	CourseID uuid.UUID `json:"course_id"`
	Marks    *int      `json:"marks,omitempty"`
	Grade    string    `json:"grade"`
	Remarks  string    `json:"remarks"`
}

type GradeRecord struct {
	// PK
	GradeRecordID uuid.UUID `gorm:"column:grade_record_id;type:uuid;primaryKey" json:"grade_record_id"`

	// FK → students(student_id)
	GradeRecordStudentID uuid.UUID `gorm:"column:grade_record_student_id;type:uuid;not null;index;uniqueIndex:uniq_grade_record,priority:1" json:"grade_record_student_id"`

	GradeRecordExamType     ExamType `gorm:"column:grade_record_exam_type;type:varchar(10);not null;uniqueIndex:uniq_grade_record,priority:2" json:"grade_record_exam_type"`
	GradeRecordAcademicYear string   `gorm:"column:grade_record_academic_year;type:varchar(9);not null;uniqueIndex:uniq_grade_record,priority:3" json:"grade_record_academic_year"`
	GradeRecordSemester     int      `gorm:"column:grade_record_semester;not null;uniqueIndex:uniq_grade_record,priority:4" json:"grade_record_semester"`

	GradeRecordEntries datatypes.JSON `gorm:"column:grade_record_entries;not null" json:"grade_record_entries"`

	// FK → staff(staff_id), nil when entered by an unauthenticated session.
	GradeRecordEnteredBy *uuid.UUID `gorm:"column:grade_record_entered_by;type:uuid" json:"grade_record_entered_by,omitempty"`

	GradeRecordEnteredAt time.Time `gorm:"column:grade_record_entered_at;not null" json:"grade_record_entered_at"`
	GradeRecordUpdatedAt time.Time `gorm:"column:grade_record_updated_at;not null" json:"grade_record_updated_at"`
}

func (GradeRecord) TableName() string {
	return "grade_records"
}

func (m *GradeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.GradeRecordID == uuid.Nil {
		m.GradeRecordID = uuid.New()
	}
	now := time.Now()
	if m.GradeRecordEnteredAt.IsZero() {
		m.GradeRecordEnteredAt = now
	}
	m.GradeRecordUpdatedAt = now
	return nil
}

func (m *GradeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.GradeRecordUpdatedAt = time.Now()
	return nil
}

// Entries decodes the JSON entry list.
func (m *GradeRecord) Entries() ([]GradeEntry, error) {
	var out []GradeEntry
	if len(m.GradeRecordEntries) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(m.GradeRecordEntries, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetEntries encodes the entry list back into the JSON column.
func (m *GradeRecord) SetEntries(entries []GradeEntry) error {
	buf, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.GradeRecordEntries = datatypes.JSON(buf)
	return nil
}
