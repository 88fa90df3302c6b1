package payment

import (
	"time"

	"turnos-payment-register/internal/domain/entity"
)

// UpdatePayload is the wire shape the remote system expects on a payment
// save. Amounts go out as JSON numbers.
type UpdatePayload struct {
	PaymentStatus   string   `json:"paymentStatus"`
	Method          string   `json:"method"`
	PaymentAmount   float64  `json:"paymentAmount"`
	CopaymentAmount *float64 `json:"copaymentAmount"`
	PaidAt          string   `json:"paidAt"`
}

// BuildUpdatePayload serializes a validated form for the remote update call.
// The copayment is only carried for health-insurance payments; any other
// status sends an explicit null no matter what the draft holds.
func BuildUpdatePayload(form entity.PaymentFormInput, paidAt time.Time) UpdatePayload {
	payload := UpdatePayload{
		PaymentStatus: form.PaymentStatus,
		Method:        form.Method,
		PaidAt:        paidAt.UTC().Format(time.RFC3339),
	}

	if amount, err := parseAmount(form.PaymentAmount); err == nil {
		payload.PaymentAmount, _ = amount.Float64()
	}

	if form.PaymentStatus == string(entity.PaymentStatusHealthInsurance) && form.CopaymentAmount != "" {
		if copayment, err := parseAmount(form.CopaymentAmount); err == nil {
			value, _ := copayment.Float64()
			payload.CopaymentAmount = &value
		}
	}

	return payload
}
