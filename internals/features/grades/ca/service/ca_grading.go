// file: internals/features/grades/ca/service/ca_grading.go
package service

// CAGrade maps a continuous assessment percentage onto the coarse CA
// scale. This scale is independent of the final exam letter scale.
func CAGrade(percentage float64) string {
	switch {
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

// CARemarks reports the pass/fail outcome at the 50% mark.
func CARemarks(percentage float64) string {
	if percentage >= 50 {
		return "Pass"
	}
	return "Fail"
}
