package payment

import (
	"testing"
	"time"

	"turnos-payment-register/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedTurn(status entity.TurnStatus, scheduledAt time.Time, register *entity.PaymentRegister) entity.Turn {
	return entity.Turn{
		ID:              uuid.New(),
		Status:          status,
		ScheduledAt:     scheduledAt,
		PaymentRegister: register,
	}
}

func ts(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func tsPtr(year int, month time.Month, day int) *time.Time {
	t := ts(year, month, day)
	return &t
}

func TestPeriodTurnsUsesPaidAtWhenSettled(t *testing.T) {
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.January, 10), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			PaidAt:        tsPtr(2026, time.February, 11),
		}),
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.January, 10), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
		}),
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.February, 3), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
		}),
	}

	february := PeriodTurns(turns, 1, 2026, time.UTC)
	require.Len(t, february, 2)
	assert.Equal(t, turns[0].ID, february[0].ID)
	assert.Equal(t, turns[2].ID, february[1].ID)

	january := PeriodTurns(turns, 0, 2026, time.UTC)
	require.Len(t, january, 1)
	assert.Equal(t, turns[1].ID, january[0].ID)
}

func TestPeriodTurnsPendingStaysOnScheduledMonth(t *testing.T) {
	// A pending payment with a stray paidAt must still follow scheduledAt.
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.January, 5), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
			PaidAt:        tsPtr(2026, time.February, 5),
		}),
	}

	assert.Len(t, PeriodTurns(turns, 0, 2026, time.UTC), 1)
	assert.Empty(t, PeriodTurns(turns, 1, 2026, time.UTC))
}

func TestPeriodTurnsSkipsDatelessTurns(t *testing.T) {
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, time.Time{}, nil),
	}
	assert.Empty(t, PeriodTurns(turns, 0, 2026, time.UTC))
}

func TestAvailableYears(t *testing.T) {
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, ts(2025, time.January, 10), &entity.PaymentRegister{}),
		datedTurn(entity.TurnStatusCompleted, ts(2024, time.January, 10), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			PaidAt:        tsPtr(2026, time.February, 12),
		}),
	}

	assert.Equal(t, []int{2026, 2025, 2024}, AvailableYears(turns, 2023, time.UTC))
	assert.Equal(t, []int{2023}, AvailableYears(nil, 2023, time.UTC))
}

func TestAvailableMonths(t *testing.T) {
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.February, 10), &entity.PaymentRegister{}),
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.March, 10), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
			PaidAt:        tsPtr(2026, time.April, 10),
		}),
		datedTurn(entity.TurnStatusCompleted, ts(2025, time.March, 10), nil),
	}

	assert.Equal(t, []int{1, 2, 3}, AvailableMonths(turns, 2026, 0, time.UTC))
	assert.Equal(t, []int{5}, AvailableMonths(nil, 2027, 5, time.UTC))
}

func TestPaymentTurnsFiltersAndBoosts(t *testing.T) {
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.February, 1), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPaid,
		}),
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.February, 2), nil),
		datedTurn(entity.TurnStatusCompleted, ts(2026, time.February, 3), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
		}),
		datedTurn(entity.TurnStatusScheduled, ts(2026, time.February, 4), &entity.PaymentRegister{
			PaymentStatus: entity.PaymentStatusPending,
		}),
	}

	result := PaymentTurns(turns)
	require.Len(t, result, 3)

	// Completed turns awaiting payment come first; the rest keep their order.
	assert.Equal(t, turns[2].ID, result[0].ID)
	assert.Equal(t, turns[0].ID, result[1].ID)
	assert.Equal(t, turns[3].ID, result[2].ID)
}

func TestPeriodTurnsRespectsLocation(t *testing.T) {
	buenosAires := time.FixedZone("-03", -3*60*60)

	// 01:00 UTC on March 1st is still February 28th in Buenos Aires.
	turns := []entity.Turn{
		datedTurn(entity.TurnStatusCompleted,
			time.Date(2026, time.March, 1, 1, 0, 0, 0, time.UTC), nil),
	}

	assert.Len(t, PeriodTurns(turns, 1, 2026, buenosAires), 1)
	assert.Empty(t, PeriodTurns(turns, 2, 2026, buenosAires))
}
