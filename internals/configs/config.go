package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	JWTSecret         string
	MidtransServerKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}

	loadSystemConfig()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// SYSTEM CONFIG
// =======================

// VisibilityFailMode decides what happens when a balance or fee lookup
// cannot be resolved while gating grade visibility.
type VisibilityFailMode string

const (
	// FailOpen discloses grades when the fee side cannot be resolved.
	FailOpen VisibilityFailMode = "open"
	// FailClosed withholds grades when the fee side cannot be resolved.
	FailClosed VisibilityFailMode = "closed"
)

type systemConfig struct {
	// Percentage of semester fees that must be paid before grades are shown.
	BalanceThresholdPercentage decimal.Decimal

	// Base semester fee per program level.
	DefaultSemesterFees map[string]decimal.Decimal

	// Fee charged when the program level is not in DefaultSemesterFees.
	FallbackSemesterFee decimal.Decimal

	// Human-readable labels for semester transaction categories.
	SemesterTransactionTypes map[string]string

	// Staff privilege levels that bypass the balance check.
	GradeViewPrivileges []string

	VisibilityFailMode VisibilityFailMode
}

var SystemConfig = systemConfig{
	BalanceThresholdPercentage: decimal.NewFromInt(80),
	DefaultSemesterFees: map[string]decimal.Decimal{
		"certificate":   decimal.RequireFromString("500.00"),
		"diploma":       decimal.RequireFromString("750.00"),
		"undergraduate": decimal.RequireFromString("1000.00"),
		"postgraduate":  decimal.RequireFromString("1500.00"),
	},
	FallbackSemesterFee: decimal.RequireFromString("1000.00"),
	SemesterTransactionTypes: map[string]string{
		"tuition":      "Tuition Fees",
		"registration": "Registration Fees",
		"examination":  "Examination Fees",
		"library":      "Library Fees",
		"technology":   "Technology Fees",
		"other":        "Other Semester Fees",
	},
	GradeViewPrivileges: []string{
		"admin", "registrar", "finance", "academics", "admin_dvc", "ict", "admin_vc",
	},
	VisibilityFailMode: FailOpen,
}

// loadSystemConfig applies the few env overrides operators actually use.
func loadSystemConfig() {
	if v := GetEnv("BALANCE_THRESHOLD_PERCENTAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			SystemConfig.BalanceThresholdPercentage = decimal.NewFromInt(int64(n))
		} else {
			log.Printf("⚠️ invalid BALANCE_THRESHOLD_PERCENTAGE=%q, keeping %s", v, SystemConfig.BalanceThresholdPercentage)
		}
	}
	if v := strings.ToLower(GetEnv("VISIBILITY_FAIL_MODE")); v != "" {
		switch VisibilityFailMode(v) {
		case FailOpen, FailClosed:
			SystemConfig.VisibilityFailMode = VisibilityFailMode(v)
		default:
			log.Printf("⚠️ invalid VISIBILITY_FAIL_MODE=%q, keeping %s", v, SystemConfig.VisibilityFailMode)
		}
	}
}

// HasGradeViewPrivilege reports whether the given staff privilege level is
// allowed to bypass the balance-based visibility check.
func HasGradeViewPrivilege(level string) bool {
	for _, p := range SystemConfig.GradeViewPrivileges {
		if p == level {
			return true
		}
	}
	return false
}
