package helper

import (
	"regexp"
	"testing"
)

func TestGenerateTransactionCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code := GenerateTransactionCode()
		if !re.MatchString(code) {
			t.Fatalf("bad code format: %q", code)
		}
		seen[code] = struct{}{}
	}
	// 200 draws from a 26^3*10^4 space should essentially never all collide.
	if len(seen) < 2 {
		t.Fatalf("codes are not random: %d unique of 200", len(seen))
	}
}
