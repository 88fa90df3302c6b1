package payment

import (
	"turnos-payment-register/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Summary holds the billing totals for one period. All money fields use
// exact decimal arithmetic; accumulating thousands of amounts must not drift.
type Summary struct {
	TotalBilled             decimal.Decimal `json:"totalBilled"`
	TotalCollected          decimal.Decimal `json:"totalCollected"`
	TotalCopayment          decimal.Decimal `json:"totalCopayment"`
	TotalCovered            decimal.Decimal `json:"totalCovered"`
	TotalBonus              decimal.Decimal `json:"totalBonus"`
	TotalPayments           int             `json:"totalPayments"`
	CanceledPaymentCount    int             `json:"canceledPaymentCount"`
	PendingCount            int             `json:"pendingCount"`
	PaidCount               int             `json:"paidCount"`
	HealthInsuranceCount    int             `json:"healthInsuranceCount"`
	BonusCount              int             `json:"bonusCount"`
	CompletedCount          int             `json:"completedCount"`
	CanceledCount           int             `json:"canceledCount"`
	TotalAccountsReceivable int             `json:"totalAccountsReceivable"`
}

// BuildSummary folds the period's turns into billing totals. The fold is
// order-independent: permuting the input yields identical totals.
//
// Collection rules: a PAID cash-like payment collects its full amount; a
// health-insurance payment collects only the copayment, the insurer covers
// the rest; bonus and pending payments collect nothing. Canceled payments are
// excluded from billed and copay totals entirely.
func BuildSummary(turns []entity.Turn) Summary {
	s := Summary{
		TotalBilled:    decimal.Zero,
		TotalCollected: decimal.Zero,
		TotalCopayment: decimal.Zero,
		TotalCovered:   decimal.Zero,
		TotalBonus:     decimal.Zero,
	}

	for i := range turns {
		turn := &turns[i]

		if turn.IsCompleted() {
			s.CompletedCount++
		}
		if turn.IsCanceled() {
			s.CanceledCount++
		}

		register := turn.PaymentRegister
		if register == nil {
			continue
		}

		amount := register.Amount()
		copayment := register.Copayment()
		status := register.PaymentStatus
		canceled := status == entity.PaymentStatusCanceled

		if !canceled {
			s.TotalBilled = s.TotalBilled.Add(amount)
			s.TotalCopayment = s.TotalCopayment.Add(copayment)
		}

		if status != entity.PaymentStatusPending && !canceled {
			s.TotalPayments++
		}
		if canceled {
			s.CanceledPaymentCount++
		}

		if status == entity.PaymentStatusPaid &&
			register.Method != entity.PaymentMethodBonus &&
			!register.IsHealthInsuranceMethod() {
			s.TotalCollected = s.TotalCollected.Add(amount)
		}

		if status == entity.PaymentStatusHealthInsurance {
			s.HealthInsuranceCount++
			covered := amount.Sub(copayment)
			if covered.IsPositive() {
				s.TotalCovered = s.TotalCovered.Add(covered)
			}
			s.TotalCollected = s.TotalCollected.Add(copayment)
		}

		if status == entity.PaymentStatusPending && turn.IsCompleted() {
			s.PendingCount++
		}
		if status == entity.PaymentStatusPaid {
			s.PaidCount++
		}
		if status == entity.PaymentStatusBonus {
			s.BonusCount++
			s.TotalBonus = s.TotalBonus.Add(amount)
		}
		if status == entity.PaymentStatusPending {
			s.TotalAccountsReceivable++
		}
	}

	return s
}
