package payment

import (
	"sort"
	"time"

	"turnos-payment-register/internal/domain/entity"
)

// Months are 0-based (0 = January) throughout, matching the period selector.

// effectiveDate returns the date a turn counts under: the payment date once a
// payment is settled or canceled, the scheduled date otherwise. Returns a zero
// time when neither is available.
func effectiveDate(turn *entity.Turn) time.Time {
	register := turn.PaymentRegister
	if register != nil &&
		register.PaymentStatus != "" &&
		register.PaymentStatus != entity.PaymentStatusPending &&
		register.PaidAt != nil {
		return *register.PaidAt
	}
	return turn.ScheduledAt
}

// PeriodTurns selects the turns whose effective date falls in the given
// month and year, evaluated in loc. Settled payments count toward the month
// they were actually paid; unsettled ones stay on their scheduled month.
func PeriodTurns(turns []entity.Turn, month, year int, loc *time.Location) []entity.Turn {
	var selected []entity.Turn
	for i := range turns {
		date := effectiveDate(&turns[i])
		if date.IsZero() {
			continue
		}
		date = date.In(loc)
		if int(date.Month())-1 == month && date.Year() == year {
			selected = append(selected, turns[i])
		}
	}
	return selected
}

// AvailableYears returns every year that has a scheduled turn or a registered
// payment, newest first. Falls back to a singleton of fallbackYear when there
// is no data at all.
func AvailableYears(turns []entity.Turn, fallbackYear int, loc *time.Location) []int {
	yearSet := make(map[int]struct{})
	for i := range turns {
		if !turns[i].ScheduledAt.IsZero() {
			yearSet[turns[i].ScheduledAt.In(loc).Year()] = struct{}{}
		}
		if register := turns[i].PaymentRegister; register != nil && register.PaidAt != nil {
			yearSet[register.PaidAt.In(loc).Year()] = struct{}{}
		}
	}

	if len(yearSet) == 0 {
		return []int{fallbackYear}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableMonths returns the 0-based months within year that have data,
// ascending, or a singleton of fallbackMonth when empty.
func AvailableMonths(turns []entity.Turn, year, fallbackMonth int, loc *time.Location) []int {
	monthSet := make(map[int]struct{})
	for i := range turns {
		if !turns[i].ScheduledAt.IsZero() {
			date := turns[i].ScheduledAt.In(loc)
			if date.Year() == year {
				monthSet[int(date.Month())-1] = struct{}{}
			}
		}
		if register := turns[i].PaymentRegister; register != nil && register.PaidAt != nil {
			date := register.PaidAt.In(loc)
			if date.Year() == year {
				monthSet[int(date.Month())-1] = struct{}{}
			}
		}
	}

	if len(monthSet) == 0 {
		return []int{fallbackMonth}
	}

	months := make([]int, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Ints(months)
	return months
}

// PaymentTurns filters the period's turns down to those carrying a payment
// record, boosting completed turns with a pending payment to the front. The
// boost is stable: ties keep their relative order.
func PaymentTurns(periodTurns []entity.Turn) []entity.Turn {
	var withPayment []entity.Turn
	for i := range periodTurns {
		if periodTurns[i].PaymentRegister != nil {
			withPayment = append(withPayment, periodTurns[i])
		}
	}

	needsAttention := func(t *entity.Turn) bool {
		return t.IsCompleted() && t.PaymentRegister.PaymentStatus == entity.PaymentStatusPending
	}

	sort.SliceStable(withPayment, func(i, j int) bool {
		return needsAttention(&withPayment[i]) && !needsAttention(&withPayment[j])
	})
	return withPayment
}
