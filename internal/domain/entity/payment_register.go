package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the billing state of a turn's payment register
type PaymentStatus string

const (
	PaymentStatusPending         PaymentStatus = "PENDING"
	PaymentStatusPaid            PaymentStatus = "PAID"
	PaymentStatusHealthInsurance PaymentStatus = "HEALTH INSURANCE"
	PaymentStatusBonus           PaymentStatus = "BONUS"
	PaymentStatusCanceled        PaymentStatus = "CANCELED"
)

// PaymentMethod represents how a payment was settled
type PaymentMethod string

const (
	PaymentMethodCash            PaymentMethod = "CASH"
	PaymentMethodCreditCard      PaymentMethod = "CREDIT CARD"
	PaymentMethodDebitCard       PaymentMethod = "DEBIT CARD"
	PaymentMethodOnlinePayment   PaymentMethod = "ONLINE PAYMENT"
	PaymentMethodTransfer        PaymentMethod = "TRANSFER"
	PaymentMethodBonus           PaymentMethod = "BONUS"
	PaymentMethodHealthInsurance PaymentMethod = "HEALTH INSURANCE"
)

// PaymentRegister is the billing record attached to a completed turn. It is
// owned by the remote system; locally it is only read and sent back whole.
// Older records sometimes carry the underscore spelling of the
// health-insurance method, see IsHealthInsuranceMethod.
type PaymentRegister struct {
	ID              string           `json:"id,omitempty"`
	TurnID          string           `json:"turnId,omitempty"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus,omitempty"`
	Method          PaymentMethod    `json:"method,omitempty"`
	PaymentAmount   *decimal.Decimal `json:"paymentAmount,omitempty"`
	CopaymentAmount *decimal.Decimal `json:"copaymentAmount,omitempty"`
	PaidAt          *time.Time       `json:"paidAt,omitempty"`
}

// IsCanceled checks if the payment record was canceled
func (p *PaymentRegister) IsCanceled() bool {
	return p.PaymentStatus == PaymentStatusCanceled
}

// IsSettled reports whether the payment reached a final, active state
func (p *PaymentRegister) IsSettled() bool {
	return p.PaymentStatus != "" &&
		p.PaymentStatus != PaymentStatusPending &&
		p.PaymentStatus != PaymentStatusCanceled
}

// IsHealthInsuranceMethod accepts both spellings seen in remote data
func (p *PaymentRegister) IsHealthInsuranceMethod() bool {
	return p.Method == PaymentMethodHealthInsurance || p.Method == "HEALTH_INSURANCE"
}

// Amount returns the payment amount, zero when unset
func (p *PaymentRegister) Amount() decimal.Decimal {
	if p.PaymentAmount == nil {
		return decimal.Zero
	}
	return *p.PaymentAmount
}

// Copayment returns the copayment amount, zero when unset
func (p *PaymentRegister) Copayment() decimal.Decimal {
	if p.CopaymentAmount == nil {
		return decimal.Zero
	}
	return *p.CopaymentAmount
}

// PaymentFormInput is the per-turn draft the operator edits. Amounts stay as
// raw strings until validation; nothing here is persisted until a save
// succeeds remotely.
type PaymentFormInput struct {
	PaymentStatus   string `json:"paymentStatus"`
	Method          string `json:"method"`
	PaymentAmount   string `json:"paymentAmount"`
	CopaymentAmount string `json:"copaymentAmount"`
}

// FormDraft carries partial edits to a payment form. A nil field means the
// operator has not touched it yet, which is different from an empty string
// (an explicitly cleared field).
type FormDraft struct {
	PaymentStatus   *string `json:"paymentStatus,omitempty"`
	Method          *string `json:"method,omitempty"`
	PaymentAmount   *string `json:"paymentAmount,omitempty"`
	CopaymentAmount *string `json:"copaymentAmount,omitempty"`
}

// Merge applies the set fields of updates on top of the draft
func (d *FormDraft) Merge(updates FormDraft) {
	if updates.PaymentStatus != nil {
		d.PaymentStatus = updates.PaymentStatus
	}
	if updates.Method != nil {
		d.Method = updates.Method
	}
	if updates.PaymentAmount != nil {
		d.PaymentAmount = updates.PaymentAmount
	}
	if updates.CopaymentAmount != nil {
		d.CopaymentAmount = updates.CopaymentAmount
	}
}

// Resolved materializes the draft into a full form, untouched fields empty
func (d *FormDraft) Resolved() PaymentFormInput {
	form := PaymentFormInput{}
	if d == nil {
		return form
	}
	if d.PaymentStatus != nil {
		form.PaymentStatus = *d.PaymentStatus
	}
	if d.Method != nil {
		form.Method = *d.Method
	}
	if d.PaymentAmount != nil {
		form.PaymentAmount = *d.PaymentAmount
	}
	if d.CopaymentAmount != nil {
		form.CopaymentAmount = *d.CopaymentAmount
	}
	return form
}

// Clone returns an independent copy of the draft
func (d *FormDraft) Clone() *FormDraft {
	if d == nil {
		return nil
	}
	clone := &FormDraft{}
	clone.Merge(*d)
	return clone
}
