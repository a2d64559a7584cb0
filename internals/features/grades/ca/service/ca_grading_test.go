// file: internals/features/grades/ca/service/ca_grading_test.go
package service

import "testing"

func TestCAGrade(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A"}, {80, "A"},
		{79.99, "B"}, {70, "B"},
		{69.5, "C"}, {60, "C"},
		{59, "D"}, {50, "D"},
		{49.99, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := CAGrade(tc.pct); got != tc.want {
			t.Errorf("CAGrade(%.2f) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestCARemarks(t *testing.T) {
	if CARemarks(50) != "Pass" {
		t.Errorf("CARemarks(50) = %q, want Pass", CARemarks(50))
	}
	if CARemarks(49.9) != "Fail" {
		t.Errorf("CARemarks(49.9) = %q, want Fail", CARemarks(49.9))
	}
}
