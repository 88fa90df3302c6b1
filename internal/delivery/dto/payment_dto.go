package dto

import "time"

// Request DTOs

// SavePaymentRequest carries the operator's draft edits for one turn's
// payment. Nil fields were not touched; empty strings are explicit clears.
// The domain engine owns the real validation, the tags only bound sizes.
type SavePaymentRequest struct {
	PaymentStatus   *string `json:"paymentStatus" validate:"omitempty,max=32"`
	Method          *string `json:"method" validate:"omitempty,max=32"`
	PaymentAmount   *string `json:"paymentAmount" validate:"omitempty,max=24"`
	CopaymentAmount *string `json:"copaymentAmount" validate:"omitempty,max=24"`
}

// Response DTOs

type PaymentRegisterResponse struct {
	ID              string     `json:"id,omitempty"`
	TurnID          string     `json:"turnId,omitempty"`
	PaymentStatus   string     `json:"paymentStatus,omitempty"`
	StatusLabel     string     `json:"statusLabel"`
	Method          string     `json:"method,omitempty"`
	MethodLabel     string     `json:"methodLabel"`
	PaymentAmount   *float64   `json:"paymentAmount,omitempty"`
	CopaymentAmount *float64   `json:"copaymentAmount,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
}

type FormStateResponse struct {
	PaymentStatus   string `json:"paymentStatus"`
	Method          string `json:"method"`
	PaymentAmount   string `json:"paymentAmount"`
	CopaymentAmount string `json:"copaymentAmount"`
}

// TurnPaymentView is one row of the period's payment list: the turn, its
// derived edit/delete flags, the form defaults and the per-payment
// saving/error state.
type TurnPaymentView struct {
	TurnID            string            `json:"turnId"`
	TurnStatus        string            `json:"turnStatus"`
	PatientName       string            `json:"patientName"`
	ScheduledAt       time.Time         `json:"scheduledAt"`
	PaymentStatus     string            `json:"paymentStatus"`
	StatusLabel       string            `json:"statusLabel"`
	IsCanceledPayment bool              `json:"isCanceledPayment"`
	CanEditPayment    bool              `json:"canEditPayment"`
	CanDeletePayment  bool              `json:"canDeletePayment"`
	FormState         FormStateResponse `json:"formState"`
	PaymentAmount     float64           `json:"paymentAmount"`
	CopaymentAmount   float64           `json:"copaymentAmount"`
	Coverage          float64           `json:"coverage"`
	AmountLabel       string            `json:"amountLabel"`
	CoverageLabel     string            `json:"coverageLabel"`
	Saving            bool              `json:"saving"`
	Error             string            `json:"error,omitempty"`
}

type SummaryResponse struct {
	TotalBilled             float64 `json:"totalBilled"`
	TotalBilledLabel        string  `json:"totalBilledLabel"`
	TotalCollected          float64 `json:"totalCollected"`
	TotalCollectedLabel     string  `json:"totalCollectedLabel"`
	TotalCopayment          float64 `json:"totalCopayment"`
	TotalCovered            float64 `json:"totalCovered"`
	TotalCoveredLabel       string  `json:"totalCoveredLabel"`
	TotalBonus              float64 `json:"totalBonus"`
	TotalBonusLabel         string  `json:"totalBonusLabel"`
	TotalPayments           int     `json:"totalPayments"`
	CanceledPaymentCount    int     `json:"canceledPaymentCount"`
	PendingCount            int     `json:"pendingCount"`
	PaidCount               int     `json:"paidCount"`
	HealthInsuranceCount    int     `json:"healthInsuranceCount"`
	BonusCount              int     `json:"bonusCount"`
	CompletedCount          int     `json:"completedCount"`
	CanceledCount           int     `json:"canceledCount"`
	TotalAccountsReceivable int     `json:"totalAccountsReceivable"`
}

type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// InsurancePlans is one insurer's plan codes for the health-insurance form.
type InsurancePlans struct {
	Insurance string   `json:"insurance"`
	Plans     []string `json:"plans"`
}

type PaymentsPageResponse struct {
	Month           int               `json:"month"`
	MonthLabel      string            `json:"monthLabel"`
	Year            int               `json:"year"`
	Years           []int             `json:"years"`
	Months          []MonthOption     `json:"months"`
	Turns           []TurnPaymentView `json:"turns"`
	Summary         SummaryResponse   `json:"summary"`
	SavingPaymentID string            `json:"savingPaymentId,omitempty"`
}
