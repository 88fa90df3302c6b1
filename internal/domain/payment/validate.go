package payment

import (
	"errors"
	"strings"

	"turnos-payment-register/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// MaxAmount is the ceiling for any single payment or copayment amount.
var MaxAmount = decimal.RequireFromString("9999999.99")

// Validation failures carry the exact operator-facing message; they are
// returned as-is, never wrapped.
var (
	ErrFormRequired            = errors.New("Completá los datos del pago.")
	ErrStatusRequired          = errors.New("Seleccioná un estado de pago válido.")
	ErrMethodRequired          = errors.New("Seleccioná un medio de pago.")
	ErrBonusMethodMismatch     = errors.New("El medio de pago debe ser Bonificado cuando el estado de pago es Bonificado.")
	ErrInsuranceMethodMismatch = errors.New("El medio de pago debe ser Obra Social cuando el estado de pago es Obra Social.")
	ErrBonusStatusMismatch     = errors.New("El estado de pago debe ser Bonificado cuando el medio de pago es Bonificado.")
	ErrInsuranceStatusMismatch = errors.New("El estado de pago debe ser Obra Social cuando el medio de pago es Obra Social.")
	ErrAmountRequired          = errors.New("Ingresá el monto abonado.")
	ErrAmountInvalid           = errors.New("Ingresá un monto abonado válido.")
	ErrAmountTooLarge          = errors.New("El monto del pago debe ser menor que 10 millones.")
	ErrAmountNotPositive       = errors.New("El monto del pago debe ser mayor que cero.")
	ErrBonusAmountNotPositive  = errors.New("El monto del pago debe ser mayor que cero cuando el estado de pago es Bonificado.")
	ErrCopaymentRequired       = errors.New("El copago es obligatorio y debe ser mayor o igual que cero cuando el estado de pago es Obra Social.")
	ErrCopaymentInvalid        = errors.New("Ingresá un copago válido.")
	ErrCopaymentTooLarge       = errors.New("El copago debe ser menor que 10 millones.")
	ErrCopaymentExceedsAmount  = errors.New("El copago debe ser menor o igual al monto del pago.")
)

// IsValidationError reports whether err is one of the form validation
// failures above, as opposed to a remote or infrastructure error.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrFormRequired, ErrStatusRequired, ErrMethodRequired,
		ErrBonusMethodMismatch, ErrInsuranceMethodMismatch,
		ErrBonusStatusMismatch, ErrInsuranceStatusMismatch,
		ErrAmountRequired, ErrAmountInvalid, ErrAmountTooLarge,
		ErrAmountNotPositive, ErrBonusAmountNotPositive,
		ErrCopaymentRequired, ErrCopaymentInvalid,
		ErrCopaymentTooLarge, ErrCopaymentExceedsAmount,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ValidateForm checks a candidate payment form against the status, method,
// amount and copayment consistency rules. Rules run in order and the first
// failure wins. A nil error means the form is ready to be sent. Pure; safe to
// call on every edit.
func ValidateForm(form *entity.PaymentFormInput) error {
	if form == nil {
		return ErrFormRequired
	}

	status := form.PaymentStatus
	if status == "" || status == string(entity.PaymentStatusPending) {
		return ErrStatusRequired
	}

	if form.Method == "" {
		return ErrMethodRequired
	}

	isBonus := status == string(entity.PaymentStatusBonus)
	isInsurance := status == string(entity.PaymentStatusHealthInsurance)

	if isBonus && form.Method != string(entity.PaymentMethodBonus) {
		return ErrBonusMethodMismatch
	}
	if isInsurance && form.Method != string(entity.PaymentMethodHealthInsurance) {
		return ErrInsuranceMethodMismatch
	}
	if !isBonus && form.Method == string(entity.PaymentMethodBonus) {
		return ErrBonusStatusMismatch
	}
	if !isInsurance && form.Method == string(entity.PaymentMethodHealthInsurance) {
		return ErrInsuranceStatusMismatch
	}

	if form.PaymentAmount == "" {
		return ErrAmountRequired
	}

	amount, err := parseAmount(form.PaymentAmount)
	if err != nil {
		return ErrAmountInvalid
	}
	if amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}
	if !amount.IsPositive() {
		if isBonus {
			return ErrBonusAmountNotPositive
		}
		return ErrAmountNotPositive
	}

	if isInsurance {
		if form.CopaymentAmount == "" {
			return ErrCopaymentRequired
		}
		copayment, err := parseAmount(form.CopaymentAmount)
		if err != nil {
			return ErrCopaymentInvalid
		}
		if copayment.GreaterThan(MaxAmount) {
			return ErrCopaymentTooLarge
		}
		if copayment.IsNegative() {
			return ErrCopaymentRequired
		}
		if copayment.GreaterThan(amount) {
			return ErrCopaymentExceedsAmount
		}
	}

	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
