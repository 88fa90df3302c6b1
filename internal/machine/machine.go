// Package machine implements the payment-record lifecycle as an explicit
// finite-state machine: a tagged state enum, an immutable-ish context, and a
// pure transition function returning the next state plus a list of effects.
// A small runner executes the effects against the remote client and feeds the
// results back in as events.
package machine

import (
	"time"

	"turnos-payment-register/internal/domain/entity"
)

// State is the machine's current lifecycle phase. Every transition begins and
// ends in StateIdle; the two loading states are transient and exist to gate
// concurrent invocations and track in-flight status.
type State int

const (
	StateIdle State = iota
	StateLoadingPaymentRegister
	StateUpdatingPaymentRegister
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingPaymentRegister:
		return "loadingPaymentRegister"
	case StateUpdatingPaymentRegister:
		return "updatingPaymentRegister"
	default:
		return "unknown"
	}
}

// Fallback messages when a remote failure carries no usable text.
const (
	LoadErrorFallback   = "Error al cargar el registro de pagos"
	UpdateErrorFallback = "Error al actualizar el registro de pagos"
)

// Context is the machine's extended state. The per-payment maps back the
// multi-turn list view: one exclusive saving slot, last error and draft form
// keyed by turn id.
type Context struct {
	PaymentRegister *entity.PaymentRegister
	AccessToken     string
	TurnID          string
	FormValues      entity.PaymentFormInput
	Loading         bool
	Updating        bool
	ErrorMessage    string

	SavingPaymentID  string
	ErrorByPaymentID map[string]string
	FormByPaymentID  map[string]*entity.FormDraft

	PeriodMonth int
	PeriodYear  int
}

// Definition fixes the machine's environment: the clock and the zone the
// default period is derived in.
type Definition struct {
	Now      func() time.Time
	Location *time.Location
}

// DefaultContext returns the reset context: everything cleared, period set to
// the current month and year in the definition's zone.
func (d *Definition) DefaultContext() Context {
	now := d.Now().In(d.Location)
	return Context{
		ErrorByPaymentID: map[string]string{},
		FormByPaymentID:  map[string]*entity.FormDraft{},
		PeriodMonth:      int(now.Month()) - 1,
		PeriodYear:       now.Year(),
	}
}

func (c Context) hasAuth() bool {
	return c.AccessToken != "" && c.TurnID != ""
}

// withErrorFor returns a copy of the context with the error map updated.
// Maps are copied before mutation so previous contexts stay observable.
func (c Context) withErrorFor(paymentID, message string) Context {
	errors := make(map[string]string, len(c.ErrorByPaymentID)+1)
	for k, v := range c.ErrorByPaymentID {
		errors[k] = v
	}
	errors[paymentID] = message
	c.ErrorByPaymentID = errors
	return c
}

func (c Context) withFormFor(paymentID string, draft *entity.FormDraft) Context {
	forms := make(map[string]*entity.FormDraft, len(c.FormByPaymentID)+1)
	for k, v := range c.FormByPaymentID {
		forms[k] = v
	}
	forms[paymentID] = draft
	c.FormByPaymentID = forms
	return c
}

// formValuesFrom resets the single-record draft to a fetched register's values
func formValuesFrom(register *entity.PaymentRegister) entity.PaymentFormInput {
	form := entity.PaymentFormInput{}
	if register == nil {
		return form
	}
	form.PaymentStatus = string(register.PaymentStatus)
	form.Method = string(register.Method)
	if register.PaymentAmount != nil {
		form.PaymentAmount = register.PaymentAmount.String()
	}
	if register.CopaymentAmount != nil {
		form.CopaymentAmount = register.CopaymentAmount.String()
	}
	return form
}
