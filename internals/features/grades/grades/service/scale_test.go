// file: internals/features/grades/grades/service/scale_test.go
package service

import "testing"

func TestClassifyMarks(t *testing.T) {
	cases := []struct {
		marks int
		want  string
	}{
		{100, "A+"}, {86, "A+"},
		{85, "A"}, {76, "A"},
		{75, "B+"}, {66, "B+"},
		{65, "B"}, {60, "B"},
		{59, "C+"}, {55, "C+"},
		{54, "C"}, {50, "C"},
		{49, "D+"}, {45, "D+"},
		{44, "D"}, {0, "D"},
		// Out-of-range marks fall through to D.
		{101, "D"}, {-1, "D"},
	}
	for _, tc := range cases {
		if got := ClassifyMarks(tc.marks); got != tc.want {
			t.Errorf("ClassifyMarks(%d) = %q, want %q", tc.marks, got, tc.want)
		}
	}
}

func TestGradeDescription(t *testing.T) {
	cases := map[string]string{
		"A+":   "Distinction",
		"A":    "Distinction",
		"B+":   "Meritorious",
		"B":    "Credit",
		"C+":   "Clear Pass",
		"C":    "Bare Pass",
		"D+":   "Bare Fail",
		"D":    "Definite Fail",
		"EX":   "Exempted",
		"DISQ": "Disqualified",
		"ZZ":   "Unknown",
	}
	for grade, want := range cases {
		if got := GradeDescription(grade); got != want {
			t.Errorf("GradeDescription(%q) = %q, want %q", grade, got, want)
		}
	}
}

func TestGradeRemarks(t *testing.T) {
	proceed := []string{"A+", "A", "B+", "B", "C+", "C", "P", "S", "EX"}
	for _, g := range proceed {
		if GradeRemarks(g) != "Proceed" {
			t.Errorf("GradeRemarks(%q) = %q, want Proceed", g, GradeRemarks(g))
		}
	}
	repeat := []string{"D+", "D", "F", "U", "WP", "DC", "INC", "DEF", "SP", "DISQ", ""}
	for _, g := range repeat {
		if GradeRemarks(g) != "Repeat" {
			t.Errorf("GradeRemarks(%q) = %q, want Repeat", g, GradeRemarks(g))
		}
	}
}

func TestIsKnownGrade(t *testing.T) {
	for _, g := range []string{"A+", "D", "F", "WP", "DISQ"} {
		if !IsKnownGrade(g) {
			t.Errorf("IsKnownGrade(%q) = false, want true", g)
		}
	}
	for _, g := range []string{"", "E", "AA", "hidden"} {
		if IsKnownGrade(g) {
			t.Errorf("IsKnownGrade(%q) = true, want false", g)
		}
	}
}
