// file: internals/features/grades/grades/service/gate_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"uniberg_backend/internals/configs"
	accountService "uniberg_backend/internals/features/finance/accounts/service"
	feesService "uniberg_backend/internals/features/finance/fees/service"
)

// VisibilityDecision explains one grade visibility check.
type VisibilityDecision struct {
	CanView      bool            `json:"can_view"`
	ViaPrivilege bool            `json:"via_privilege"`
	SemesterFees decimal.Decimal `json:"semester_fees"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	PaidPct      decimal.Decimal `json:"paid_percentage"`
	Threshold    decimal.Decimal `json:"threshold"`
	Reason       string          `json:"reason"`
}

// Gate decides whether semester grades may be disclosed. Privileged staff
// bypass the check; everyone else must have paid at least the threshold
// percentage of the semester fees.
type Gate struct {
	ledger *accountService.Service
	fees   *feesService.Service
}

func NewGate(db *gorm.DB) *Gate {
	return &Gate{
		ledger: accountService.NewService(db),
		fees:   feesService.NewService(db),
	}
}

// NewGateWith wires an existing ledger service so both share the
// per-student locks.
func NewGateWith(db *gorm.DB, ledger *accountService.Service) *Gate {
	return &Gate{
		ledger: ledger,
		fees:   feesService.NewService(db),
	}
}

// CanViewSemesterGrades runs the visibility check for one student-semester.
// privilegeLevel is the caller's staff privilege, empty for students.
//
// Amount paid is the expected semester fees minus the outstanding semester
// ledger balance, so an under-billed student is not penalized for charges
// that were never posted.
func (g *Gate) CanViewSemesterGrades(ctx context.Context, studentID uuid.UUID, academicYear string, semester int, privilegeLevel string) (VisibilityDecision, error) {
	threshold := configs.SystemConfig.BalanceThresholdPercentage

	if privilegeLevel != "" && configs.HasGradeViewPrivilege(privilegeLevel) {
		return VisibilityDecision{
			CanView:      true,
			ViaPrivilege: true,
			Threshold:    threshold,
			Reason:       "staff privilege",
		}, nil
	}

	fees, err := g.fees.ComputeSemesterFees(ctx, studentID, academicYear, semester)
	if err != nil {
		// Covers unresolvable students too; the original treats a missing
		// student record as zero fees, which VISIBILITY_FAIL_MODE now
		// makes an explicit operator choice.
		return g.failDecision(threshold, err), nil
	}

	if !fees.Total.IsPositive() {
		return VisibilityDecision{
			CanView:      true,
			SemesterFees: fees.Total,
			PaidPct:      decimal.NewFromInt(100),
			Threshold:    threshold,
			Reason:       "no fees configured",
		}, nil
	}

	bal, err := g.ledger.GetSemesterBalance(ctx, studentID, academicYear, semester)
	if err != nil {
		return g.failDecision(threshold, err), nil
	}

	amountPaid := fees.Total.Sub(bal.Outstanding)
	// The threshold check uses the exact ratio. Rounding is display-only.
	paidPct := amountPaid.Div(fees.Total).Mul(decimal.NewFromInt(100))

	decision := VisibilityDecision{
		CanView:      paidPct.GreaterThanOrEqual(threshold),
		SemesterFees: fees.Total,
		AmountPaid:   amountPaid,
		PaidPct:      paidPct.Round(2),
		Threshold:    threshold,
	}
	if decision.CanView {
		decision.Reason = "balance threshold met"
	} else {
		decision.Reason = "outstanding balance"
	}
	return decision, nil
}

// failDecision applies the configured fail mode when the fee or balance
// side could not be resolved.
func (g *Gate) failDecision(threshold decimal.Decimal, cause error) VisibilityDecision {
	open := configs.SystemConfig.VisibilityFailMode == configs.FailOpen
	log.Printf("⚠️ grade visibility check degraded (fail-%s): %v", configs.SystemConfig.VisibilityFailMode, cause)
	reason := "visibility check unavailable, failing closed"
	if open {
		reason = "visibility check unavailable, failing open"
	}
	return VisibilityDecision{
		CanView:   open,
		Threshold: threshold,
		Reason:    reason,
	}
}
