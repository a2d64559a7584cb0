// file: internals/databases/migrate.go
package database

import (
	"log"

	courseModel "uniberg_backend/internals/features/academics/courses/model"
	programModel "uniberg_backend/internals/features/academics/programs/model"
	schoolModel "uniberg_backend/internals/features/academics/schools/model"
	accountModel "uniberg_backend/internals/features/finance/accounts/model"
	paymentModel "uniberg_backend/internals/features/finance/payments/model"
	caModel "uniberg_backend/internals/features/grades/ca/model"
	gradeModel "uniberg_backend/internals/features/grades/grades/model"
	newsModel "uniberg_backend/internals/features/news/model"
	staffModel "uniberg_backend/internals/features/staff/model"
	enrollmentModel "uniberg_backend/internals/features/students/enrollments/model"
	studentModel "uniberg_backend/internals/features/students/students/model"
)

// Migrate keeps the schema in sync with the models. Order matters only
// for readability; GORM does not add cross-table constraints here.
func Migrate() {
	err := DB.AutoMigrate(
		&schoolModel.School{},
		&programModel.Program{},
		&courseModel.Course{},
		&studentModel.Student{},
		&enrollmentModel.Enrollment{},
		&staffModel.Staff{},
		&accountModel.Transaction{},
		&paymentModel.Payment{},
		&gradeModel.GradeRecord{},
		&caModel.CARecord{},
		&newsModel.News{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ schema migrated")
}
