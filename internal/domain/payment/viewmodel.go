package payment

import (
	"turnos-payment-register/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TurnViewModel is the derived display state for one turn's payment row. It
// is recomputed from scratch on every relevant change and never stored.
type TurnViewModel struct {
	PaymentStatus     entity.PaymentStatus
	IsCanceledPayment bool
	CanEditPayment    bool
	CanDeletePayment  bool
	FormState         entity.PaymentFormInput
	PaymentAmount     decimal.Decimal
	CopaymentAmount   decimal.Decimal
	Coverage          decimal.Decimal
}

// BuildTurnViewModel derives the editable/deletable flags and the form
// defaults for a turn. Draft fields win field by field over the persisted
// record; a canceled record resets the defaults to blank so its stale values
// never resurface when the operator re-registers the payment.
//
// A completed turn's unsettled or canceled payment can be (re-)edited; a
// settled active payment is the one that can be deleted instead.
func BuildTurnViewModel(turn *entity.Turn, draft *entity.FormDraft) TurnViewModel {
	register := turn.PaymentRegister

	status := entity.PaymentStatusPending
	if register != nil && register.PaymentStatus != "" {
		status = register.PaymentStatus
	}

	isCanceled := status == entity.PaymentStatusCanceled
	completed := turn.IsCompleted()
	canEdit := completed && (status == entity.PaymentStatusPending || isCanceled)
	canDelete := completed && status != entity.PaymentStatusPending && !isCanceled

	vm := TurnViewModel{
		PaymentStatus:     status,
		IsCanceledPayment: isCanceled,
		CanEditPayment:    canEdit,
		CanDeletePayment:  canDelete,
		FormState:         defaultFormState(register, status, isCanceled),
	}

	if draft != nil {
		if draft.PaymentStatus != nil {
			vm.FormState.PaymentStatus = *draft.PaymentStatus
		}
		if draft.Method != nil {
			vm.FormState.Method = *draft.Method
		}
		if draft.PaymentAmount != nil {
			vm.FormState.PaymentAmount = *draft.PaymentAmount
		}
		if draft.CopaymentAmount != nil {
			vm.FormState.CopaymentAmount = *draft.CopaymentAmount
		}
	}

	if register != nil {
		vm.PaymentAmount = register.Amount()
		vm.CopaymentAmount = register.Copayment()
	}

	if status == entity.PaymentStatusHealthInsurance {
		covered := vm.PaymentAmount.Sub(vm.CopaymentAmount)
		if covered.IsPositive() {
			vm.Coverage = covered
		}
	}

	return vm
}

func defaultFormState(register *entity.PaymentRegister, status entity.PaymentStatus, isCanceled bool) entity.PaymentFormInput {
	if register == nil || isCanceled {
		return entity.PaymentFormInput{
			PaymentStatus: string(entity.PaymentStatusPending),
		}
	}

	form := entity.PaymentFormInput{
		PaymentStatus: string(status),
		Method:        string(register.Method),
	}
	if register.PaymentAmount != nil {
		form.PaymentAmount = register.PaymentAmount.String()
	}
	if register.CopaymentAmount != nil {
		form.CopaymentAmount = register.CopaymentAmount.String()
	}
	return form
}
