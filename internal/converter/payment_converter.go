package converter

import (
	"turnos-payment-register/internal/delivery/dto"
	"turnos-payment-register/internal/domain/entity"
	"turnos-payment-register/internal/domain/payment"
)

// PaymentRegisterToResponse converts a PaymentRegister entity to its DTO
func PaymentRegisterToResponse(register *entity.PaymentRegister) *dto.PaymentRegisterResponse {
	if register == nil {
		return nil
	}

	response := &dto.PaymentRegisterResponse{
		ID:            register.ID,
		TurnID:        register.TurnID,
		PaymentStatus: string(register.PaymentStatus),
		StatusLabel:   payment.StatusLabel(register.PaymentStatus),
		Method:        string(register.Method),
		MethodLabel:   payment.MethodLabel(register.Method),
		PaidAt:        register.PaidAt,
	}

	if register.PaymentAmount != nil {
		amount, _ := register.PaymentAmount.Float64()
		response.PaymentAmount = &amount
	}
	if register.CopaymentAmount != nil {
		copayment, _ := register.CopaymentAmount.Float64()
		response.CopaymentAmount = &copayment
	}

	return response
}

// TurnViewToResponse flattens a turn plus its view model and per-payment
// saving/error state into one list row
func TurnViewToResponse(turn *entity.Turn, vm payment.TurnViewModel, saving bool, errorMessage string) dto.TurnPaymentView {
	amount, _ := vm.PaymentAmount.Float64()
	copayment, _ := vm.CopaymentAmount.Float64()
	coverage, _ := vm.Coverage.Float64()

	return dto.TurnPaymentView{
		TurnID:            turn.ID.String(),
		TurnStatus:        string(turn.Status),
		PatientName:       turn.PatientName,
		ScheduledAt:       turn.ScheduledAt,
		PaymentStatus:     string(vm.PaymentStatus),
		StatusLabel:       payment.StatusLabel(vm.PaymentStatus),
		IsCanceledPayment: vm.IsCanceledPayment,
		CanEditPayment:    vm.CanEditPayment,
		CanDeletePayment:  vm.CanDeletePayment,
		FormState: dto.FormStateResponse{
			PaymentStatus:   vm.FormState.PaymentStatus,
			Method:          vm.FormState.Method,
			PaymentAmount:   vm.FormState.PaymentAmount,
			CopaymentAmount: vm.FormState.CopaymentAmount,
		},
		PaymentAmount:   amount,
		CopaymentAmount: copayment,
		Coverage:        coverage,
		AmountLabel:     payment.FormatARS(vm.PaymentAmount),
		CoverageLabel:   payment.FormatARS(vm.Coverage),
		Saving:          saving,
		Error:           errorMessage,
	}
}

// SummaryToResponse converts period totals to their DTO, formatting the
// headline money figures
func SummaryToResponse(summary payment.Summary) dto.SummaryResponse {
	billed, _ := summary.TotalBilled.Float64()
	collected, _ := summary.TotalCollected.Float64()
	copay, _ := summary.TotalCopayment.Float64()
	covered, _ := summary.TotalCovered.Float64()
	bonus, _ := summary.TotalBonus.Float64()

	return dto.SummaryResponse{
		TotalBilled:             billed,
		TotalBilledLabel:        payment.FormatARS(summary.TotalBilled),
		TotalCollected:          collected,
		TotalCollectedLabel:     payment.FormatARS(summary.TotalCollected),
		TotalCopayment:          copay,
		TotalCovered:            covered,
		TotalCoveredLabel:       payment.FormatARS(summary.TotalCovered),
		TotalBonus:              bonus,
		TotalBonusLabel:         payment.FormatARS(summary.TotalBonus),
		TotalPayments:           summary.TotalPayments,
		CanceledPaymentCount:    summary.CanceledPaymentCount,
		PendingCount:            summary.PendingCount,
		PaidCount:               summary.PaidCount,
		HealthInsuranceCount:    summary.HealthInsuranceCount,
		BonusCount:              summary.BonusCount,
		CompletedCount:          summary.CompletedCount,
		CanceledCount:           summary.CanceledCount,
		TotalAccountsReceivable: summary.TotalAccountsReceivable,
	}
}

// SavePaymentRequestToDraft maps the request body to a domain form draft
func SavePaymentRequestToDraft(req *dto.SavePaymentRequest) entity.FormDraft {
	return entity.FormDraft{
		PaymentStatus:   req.PaymentStatus,
		Method:          req.Method,
		PaymentAmount:   req.PaymentAmount,
		CopaymentAmount: req.CopaymentAmount,
	}
}
