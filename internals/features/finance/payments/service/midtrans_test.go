// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	InitMidtrans("test-server-key")

	orderID := "UB-abc123"
	statusCode := "200"
	grossAmount := "1000.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + "test-server-key"))
	good := hex.EncodeToString(sum[:])

	if !VerifySignature(orderID, statusCode, grossAmount, good) {
		t.Fatal("valid signature rejected")
	}
	if VerifySignature(orderID, statusCode, grossAmount, "tampered") {
		t.Fatal("invalid signature accepted")
	}
	if VerifySignature("other-order", statusCode, grossAmount, good) {
		t.Fatal("signature accepted for a different order")
	}
}

func TestMapNotificationStatus(t *testing.T) {
	cases := []struct {
		txStatus    string
		fraudStatus string
		want        string
		wantSettled bool
	}{
		{"settlement", "", "settled", true},
		{"capture", "accept", "settled", true},
		{"capture", "challenge", "pending", false},
		{"pending", "", "pending", false},
		{"deny", "", "cancelled", false},
		{"cancel", "", "cancelled", false},
		{"expire", "", "expired", false},
		{"failure", "", "failed", false},
		{"unheard-of", "", "pending", false},
	}
	for _, tc := range cases {
		got, settled := MapNotificationStatus(tc.txStatus, tc.fraudStatus)
		if got != tc.want || settled != tc.wantSettled {
			t.Errorf("MapNotificationStatus(%q, %q) = (%q, %v), want (%q, %v)",
				tc.txStatus, tc.fraudStatus, got, settled, tc.want, tc.wantSettled)
		}
	}
}
