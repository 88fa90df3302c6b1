package machine

import "turnos-payment-register/internal/domain/entity"

// Transition computes the next state, context and effects for one event.
// Pure: callers own running the effects. Unhandled events return the inputs
// unchanged.
func (d *Definition) Transition(state State, ctx Context, ev Event) (State, Context, []Effect) {
	switch state {
	case StateIdle:
		return d.transitionIdle(ctx, ev)
	case StateLoadingPaymentRegister:
		return transitionLoading(ctx, ev)
	case StateUpdatingPaymentRegister:
		return transitionUpdating(ctx, ev)
	default:
		return state, ctx, nil
	}
}

func (d *Definition) transitionIdle(ctx Context, ev Event) (State, Context, []Effect) {
	switch ev := ev.(type) {
	case SetAuth:
		ctx.AccessToken = ev.AccessToken
		ctx.TurnID = ev.TurnID
		return StateIdle, ctx, nil

	case Logout:
		return StateIdle, d.DefaultContext(), nil

	case Load, InitPage:
		// Guard: credential and target turn must be set, and no list-view
		// save may be in flight.
		if !ctx.hasAuth() || ctx.SavingPaymentID != "" {
			return StateIdle, ctx, nil
		}
		ctx.Loading = true
		ctx.ErrorMessage = ""
		return StateLoadingPaymentRegister, ctx, []Effect{
			EffectLoad{AccessToken: ctx.AccessToken, TurnID: ctx.TurnID},
		}

	case Save, Update:
		if !ctx.hasAuth() || ctx.SavingPaymentID != "" {
			return StateIdle, ctx, nil
		}
		ctx.Updating = true
		ctx.ErrorMessage = ""
		return StateUpdatingPaymentRegister, ctx, []Effect{
			EffectUpdate{AccessToken: ctx.AccessToken, TurnID: ctx.TurnID, Form: ctx.FormValues},
		}

	case UpdateForm:
		draft := entity.FormDraft{}
		form := ctx.FormValues
		draft.PaymentStatus = &form.PaymentStatus
		draft.Method = &form.Method
		draft.PaymentAmount = &form.PaymentAmount
		draft.CopaymentAmount = &form.CopaymentAmount
		draft.Merge(ev.Updates)
		ctx.FormValues = draft.Resolved()
		return StateIdle, ctx, nil

	case ClearError:
		ctx.ErrorMessage = ""
		return StateIdle, ctx, nil

	case UpdatePeriod:
		if ev.Month != nil {
			ctx.PeriodMonth = *ev.Month
		}
		if ev.Year != nil {
			ctx.PeriodYear = *ev.Year
		}
		return StateIdle, ctx, nil

	case UpdateLocalForm:
		draft := ctx.FormByPaymentID[ev.PaymentID].Clone()
		if draft == nil {
			draft = &entity.FormDraft{}
		}
		draft.Merge(ev.Updates)
		applyDerivedLocking(draft, ev.Updates)
		return StateIdle, ctx.withFormFor(ev.PaymentID, draft), nil

	case SetSavingPayment:
		ctx.SavingPaymentID = ev.PaymentID
		return StateIdle, ctx, nil

	case SetPaymentError:
		return StateIdle, ctx.withErrorFor(ev.PaymentID, ev.Message), nil

	case ClearPaymentError:
		return StateIdle, ctx.withErrorFor(ev.PaymentID, ""), nil
	}

	return StateIdle, ctx, nil
}

func transitionLoading(ctx Context, ev Event) (State, Context, []Effect) {
	switch ev := ev.(type) {
	case loadDone:
		ctx.PaymentRegister = ev.Register
		ctx.FormValues = formValuesFrom(ev.Register)
		ctx.Loading = false
		return StateIdle, ctx, nil

	case loadFailed:
		ctx.Loading = false
		ctx.ErrorMessage = ev.Message
		if ctx.ErrorMessage == "" {
			ctx.ErrorMessage = LoadErrorFallback
		}
		return StateIdle, ctx, nil
	}

	return StateLoadingPaymentRegister, ctx, nil
}

func transitionUpdating(ctx Context, ev Event) (State, Context, []Effect) {
	switch ev := ev.(type) {
	case updateDone:
		ctx.PaymentRegister = ev.Register
		ctx.FormValues = formValuesFrom(ev.Register)
		ctx.Updating = false
		return StateIdle, ctx, nil

	case updateFailed:
		ctx.Updating = false
		ctx.ErrorMessage = ev.Message
		if ctx.ErrorMessage == "" {
			ctx.ErrorMessage = UpdateErrorFallback
		}
		return StateIdle, ctx, nil
	}

	return StateUpdatingPaymentRegister, ctx, nil
}

// applyDerivedLocking enforces the status/method pairing on a draft: bonus
// and health-insurance statuses force the matching method, and moving the
// status away from health insurance clears the copayment.
func applyDerivedLocking(draft *entity.FormDraft, updates entity.FormDraft) {
	if updates.PaymentStatus == nil {
		return
	}

	status := *updates.PaymentStatus
	switch status {
	case string(entity.PaymentStatusBonus):
		method := string(entity.PaymentMethodBonus)
		draft.Method = &method
	case string(entity.PaymentStatusHealthInsurance):
		method := string(entity.PaymentMethodHealthInsurance)
		draft.Method = &method
	}

	if status != string(entity.PaymentStatusHealthInsurance) {
		empty := ""
		draft.CopaymentAmount = &empty
	}
}
