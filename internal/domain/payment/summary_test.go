package payment

import (
	"testing"

	"turnos-payment-register/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func summaryFixture() []entity.Turn {
	return []entity.Turn{
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			Method:        entity.PaymentMethodCash,
			PaymentAmount: decPtr("100"),
		}),
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus:   entity.PaymentStatusHealthInsurance,
			Method:          entity.PaymentMethodHealthInsurance,
			PaymentAmount:   decPtr("200"),
			CopaymentAmount: decPtr("50"),
		}),
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusBonus,
			Method:        entity.PaymentMethodBonus,
			PaymentAmount: decPtr("80"),
		}),
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
			PaymentAmount: decPtr("70"),
		}),
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusCanceled,
			Method:        entity.PaymentMethodCash,
			PaymentAmount: decPtr("30"),
		}),
	}
}

func TestBuildSummaryTotals(t *testing.T) {
	s := BuildSummary(summaryFixture())

	// Canceled payments are excluded from billed/copay totals.
	assert.True(t, s.TotalBilled.Equal(dec("450")), "totalBilled = %s", s.TotalBilled)
	assert.True(t, s.TotalCopayment.Equal(dec("50")), "totalCopayment = %s", s.TotalCopayment)

	// Cash PAID collects in full; health insurance collects only its copay.
	assert.True(t, s.TotalCollected.Equal(dec("150")), "totalCollected = %s", s.TotalCollected)
	assert.True(t, s.TotalCovered.Equal(dec("150")), "totalCovered = %s", s.TotalCovered)
	assert.True(t, s.TotalBonus.Equal(dec("80")), "totalBonus = %s", s.TotalBonus)

	assert.Equal(t, 3, s.TotalPayments)
	assert.Equal(t, 1, s.CanceledPaymentCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.HealthInsuranceCount)
	assert.Equal(t, 1, s.BonusCount)
	assert.Equal(t, 5, s.CompletedCount)
	assert.Equal(t, 0, s.CanceledCount)
	assert.Equal(t, 1, s.TotalAccountsReceivable)
}

func TestBuildSummaryOrderIndependent(t *testing.T) {
	turns := summaryFixture()
	reversed := make([]entity.Turn, len(turns))
	for i := range turns {
		reversed[len(turns)-1-i] = turns[i]
	}

	a := BuildSummary(turns)
	b := BuildSummary(reversed)

	assert.True(t, a.TotalBilled.Equal(b.TotalBilled))
	assert.True(t, a.TotalCollected.Equal(b.TotalCollected))
	assert.True(t, a.TotalCovered.Equal(b.TotalCovered))
	assert.True(t, a.TotalBonus.Equal(b.TotalBonus))
	assert.Equal(t, a.TotalPayments, b.TotalPayments)
	assert.Equal(t, a.PendingCount, b.PendingCount)
}

func TestBuildSummaryCanceledTurnCounts(t *testing.T) {
	turns := []entity.Turn{
		*testTurn(entity.TurnStatusCanceled, nil),
		*testTurn(entity.TurnStatusCancelledUK, nil),
		*testTurn(entity.TurnStatusScheduled, nil),
	}

	s := BuildSummary(turns)
	assert.Equal(t, 2, s.CanceledCount)
	assert.Equal(t, 0, s.CompletedCount)
}

func TestBuildSummaryCoveredNeverNegative(t *testing.T) {
	turns := []entity.Turn{
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus:   entity.PaymentStatusHealthInsurance,
			Method:          entity.PaymentMethodHealthInsurance,
			PaymentAmount:   decPtr("50"),
			CopaymentAmount: decPtr("80"),
		}),
	}

	s := BuildSummary(turns)
	assert.True(t, s.TotalCovered.IsZero())
	// The copay still counts as collected even when it exceeds the billed amount.
	assert.True(t, s.TotalCollected.Equal(dec("80")))
}

func TestBuildSummaryPendingOnUncompletedTurn(t *testing.T) {
	turns := []entity.Turn{
		*testTurn(entity.TurnStatusScheduled, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
		}),
	}

	s := BuildSummary(turns)
	// Accounts receivable counts every pending payment; pendingCount only
	// those on completed turns.
	assert.Equal(t, 0, s.PendingCount)
	assert.Equal(t, 1, s.TotalAccountsReceivable)
}

func TestBuildSummaryUnderscoreInsuranceMethod(t *testing.T) {
	turns := []entity.Turn{
		*testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			Method:        "HEALTH_INSURANCE",
			PaymentAmount: decPtr("100"),
		}),
	}

	// PAID through an insurance method must not count as cash collection.
	s := BuildSummary(turns)
	assert.True(t, s.TotalCollected.IsZero())
	assert.Equal(t, 1, s.PaidCount)
}

func TestBuildSummaryDecimalAccumulation(t *testing.T) {
	var turns []entity.Turn
	for i := 0; i < 1000; i++ {
		turns = append(turns, *testTurn(entity.TurnStatusCompleted, &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			Method:        entity.PaymentMethodCash,
			PaymentAmount: decPtr("0.10"),
		}))
	}

	s := BuildSummary(turns)
	assert.True(t, s.TotalCollected.Equal(dec("100")), "totalCollected = %s", s.TotalCollected)
}
