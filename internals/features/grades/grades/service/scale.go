// file: internals/features/grades/grades/service/scale.go
package service

// GradeBand is one numeric slice of the letter scale.
type GradeBand struct {
	Grade       string `json:"grade"`
	MinMarks    int    `json:"min_marks"`
	MaxMarks    int    `json:"max_marks"`
	Description string `json:"description"`
}

// NumericScale covers every mark from 0 to 100, highest band first.
var NumericScale = []GradeBand{
	{Grade: "A+", MinMarks: 86, MaxMarks: 100, Description: "Distinction"},
	{Grade: "A", MinMarks: 76, MaxMarks: 85, Description: "Distinction"},
	{Grade: "B+", MinMarks: 66, MaxMarks: 75, Description: "Meritorious"},
	{Grade: "B", MinMarks: 60, MaxMarks: 65, Description: "Credit"},
	{Grade: "C+", MinMarks: 55, MaxMarks: 59, Description: "Clear Pass"},
	{Grade: "C", MinMarks: 50, MaxMarks: 54, Description: "Bare Pass"},
	{Grade: "D+", MinMarks: 45, MaxMarks: 49, Description: "Bare Fail"},
	{Grade: "D", MinMarks: 0, MaxMarks: 44, Description: "Definite Fail"},
}

// AdminGrades are letters assigned administratively, never from marks.
var AdminGrades = map[string]string{
	"F":    "Fail in Supplementary Exam",
	"U":    "Unsatisfactory - Fail in Practical/Thesis/Oral",
	"P":    "Pass in Supplementary/Practical",
	"S":    "Satisfactory - Pass in Practical/Oral",
	"WP":   "Withdraw with Permission",
	"DC":   "Deceased during Course",
	"EX":   "Exempted",
	"INC":  "Incomplete",
	"DEF":  "Deferred Exam",
	"SP":   "Supplementary Exam",
	"DISQ": "Disqualified",
}

var passingGrades = map[string]struct{}{
	"A+": {}, "A": {}, "B+": {}, "B": {}, "C+": {}, "C": {},
	"P": {}, "S": {}, "EX": {},
}

// ClassifyMarks maps numeric marks onto the letter scale. Marks outside
// every band fall through to D.
func ClassifyMarks(marks int) string {
	for _, band := range NumericScale {
		if marks >= band.MinMarks && marks <= band.MaxMarks {
			return band.Grade
		}
	}
	return "D"
}

// GradeDescription returns the catalogue description for a letter.
func GradeDescription(grade string) string {
	for _, band := range NumericScale {
		if band.Grade == grade {
			return band.Description
		}
	}
	if desc, ok := AdminGrades[grade]; ok {
		return desc
	}
	return "Unknown"
}

// IsKnownGrade reports whether the letter exists on either scale.
func IsKnownGrade(grade string) bool {
	for _, band := range NumericScale {
		if band.Grade == grade {
			return true
		}
	}
	_, ok := AdminGrades[grade]
	return ok
}

// IsPassingGrade reports whether the letter lets the student proceed.
func IsPassingGrade(grade string) bool {
	_, ok := passingGrades[grade]
	return ok
}

// GradeRemarks derives the progression remark for a letter.
func GradeRemarks(grade string) string {
	if IsPassingGrade(grade) {
		return "Proceed"
	}
	return "Repeat"
}
