// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"

	"uniberg_backend/internals/configs"
)

/* =========================================================
   Midtrans client
========================================================= */

var (
	SnapClient snap.Client
	serverKey  string
	configured bool
)

// InitMidtrans must run at bootstrap. An empty key leaves the gateway
// disabled; payment initiation then returns 503 while the rest of the
// API keeps working.
func InitMidtrans(key string) {
	serverKey = key
	if key == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY not set, online payments disabled")
		return
	}
	env := midtrans.Sandbox
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV"), "production") {
		env = midtrans.Production
	}
	SnapClient.New(key, env)
	configured = true
	log.Println("✅ Midtrans snap client ready")
}

func GatewayConfigured() bool {
	return configured
}

/* =========================================================
   Snap token
========================================================= */

type SnapInput struct {
	OrderID     string
	Amount      decimal.Decimal
	Description string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
}

// GenerateSnapToken creates a gateway checkout session and returns the
// snap token and redirect URL. Amounts are truncated to whole units
// because the gateway only takes integers.
func GenerateSnapToken(in SnapInput) (string, string, error) {
	if !configured {
		return "", "", errors.New("payment gateway not configured")
	}
	if !in.Amount.IsPositive() {
		return "", "", errors.New("invalid payment amount")
	}
	if in.OrderID == "" {
		return "", "", errors.New("order id is required")
	}

	gross := in.Amount.Round(0).IntPart()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.FirstName,
			LName: in.LastName,
			Email: in.Email,
			Phone: in.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    gross,
				Qty:      1,
				Name:     truncate(defaultString(in.Description, "Semester fees"), 50),
				Category: "fees",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Notifications
========================================================= */

// VerifySignature checks the sha512 signature the gateway attaches to
// every notification: hex(sha512(order_id + status_code + gross_amount + server_key)).
func VerifySignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	if serverKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

// MapNotificationStatus folds the gateway's transaction_status and
// fraud_status into our payment status.
func MapNotificationStatus(transactionStatus, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return "pending", false
		}
		return "settled", true
	case "settlement":
		return "settled", true
	case "pending":
		return "pending", false
	case "deny", "cancel":
		return "cancelled", false
	case "expire":
		return "expired", false
	case "failure":
		return "failed", false
	default:
		return "pending", false
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
