package machine

import "turnos-payment-register/internal/domain/entity"

// Event is a closed set of machine inputs. Events not handled in the current
// state are dropped.
type Event interface {
	eventName() string
}

// SetAuth stores the access credential and the target turn id. Both are
// required before any remote event does anything.
type SetAuth struct {
	AccessToken string
	TurnID      string
}

// Logout resets the whole machine context to defaults.
type Logout struct{}

// Load fetches the target turn's payment register.
type Load struct{}

// InitPage is the page-entry variant of Load.
type InitPage struct{}

// Save persists the current single-record draft remotely.
type Save struct{}

// Update is an alias flow for Save kept for callers that distinguish first
// registration from re-registration.
type Update struct{}

// UpdateForm merges partial edits into the single-record draft.
type UpdateForm struct {
	Updates entity.FormDraft
}

// ClearError drops the single-record error message.
type ClearError struct{}

// UpdatePeriod moves the active month/year filter. Nil fields are untouched.
type UpdatePeriod struct {
	Month *int
	Year  *int
}

// UpdateLocalForm merges partial edits into one turn's draft in the keyed
// store, applying derived locking afterwards.
type UpdateLocalForm struct {
	PaymentID string
	Updates   entity.FormDraft
}

// SetSavingPayment claims (or, with an empty id, releases) the exclusive
// saving slot.
type SetSavingPayment struct {
	PaymentID string
}

// SetPaymentError records a per-payment error message.
type SetPaymentError struct {
	PaymentID string
	Message   string
}

// ClearPaymentError blanks a per-payment error message.
type ClearPaymentError struct {
	PaymentID string
}

// Internal completion events fed back by the effect runner.
type loadDone struct {
	Register *entity.PaymentRegister
}

type loadFailed struct {
	Message string
}

type updateDone struct {
	Register *entity.PaymentRegister
}

type updateFailed struct {
	Message string
}

func (SetAuth) eventName() string           { return "SET_AUTH" }
func (Logout) eventName() string            { return "LOGOUT" }
func (Load) eventName() string              { return "LOAD_PAYMENT_REGISTER" }
func (InitPage) eventName() string          { return "INIT_PAYMENT_PAGE" }
func (Save) eventName() string              { return "SAVE_PAYMENT_REGISTER" }
func (Update) eventName() string            { return "UPDATE_PAYMENT_REGISTER" }
func (UpdateForm) eventName() string        { return "UPDATE_FORM" }
func (ClearError) eventName() string        { return "CLEAR_ERROR" }
func (UpdatePeriod) eventName() string      { return "UPDATE_PERIOD" }
func (UpdateLocalForm) eventName() string   { return "UPDATE_LOCAL_FORM" }
func (SetSavingPayment) eventName() string  { return "SET_SAVING_PAYMENT" }
func (SetPaymentError) eventName() string   { return "SET_PAYMENT_ERROR" }
func (ClearPaymentError) eventName() string { return "CLEAR_PAYMENT_ERROR" }
func (loadDone) eventName() string          { return "LOAD_DONE" }
func (loadFailed) eventName() string        { return "LOAD_FAILED" }
func (updateDone) eventName() string        { return "UPDATE_DONE" }
func (updateFailed) eventName() string      { return "UPDATE_FAILED" }

// Effect is a remote action requested by a transition. The runner executes it
// and feeds the matching completion event back in.
type Effect interface {
	effectName() string
}

// EffectLoad fetches the payment register by turn id.
type EffectLoad struct {
	AccessToken string
	TurnID      string
}

// EffectUpdate sends the draft form to the remote update endpoint.
type EffectUpdate struct {
	AccessToken string
	TurnID      string
	Form        entity.PaymentFormInput
}

func (EffectLoad) effectName() string   { return "loadPaymentRegister" }
func (EffectUpdate) effectName() string { return "updatePaymentRegister" }
