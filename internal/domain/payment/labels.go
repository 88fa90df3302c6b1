package payment

import (
	"turnos-payment-register/internal/domain/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

var monthLabels = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// StatusLabel returns the operator-facing label for a payment status
func StatusLabel(status entity.PaymentStatus) string {
	switch status {
	case "":
		return "Sin información de pago"
	case entity.PaymentStatusPending:
		return "Pendiente"
	case entity.PaymentStatusPaid:
		return "Pagado"
	case entity.PaymentStatusHealthInsurance:
		return "Obra Social"
	case entity.PaymentStatusBonus:
		return "Bonificado"
	case entity.PaymentStatusCanceled:
		return "Cancelado"
	default:
		return string(status)
	}
}

// MethodLabel returns the operator-facing label for a payment method
func MethodLabel(method entity.PaymentMethod) string {
	switch method {
	case entity.PaymentMethodCash:
		return "Efectivo"
	case entity.PaymentMethodCreditCard:
		return "Tarjeta de crédito"
	case entity.PaymentMethodDebitCard, "DEBIT_CARD":
		return "Tarjeta de débito"
	case entity.PaymentMethodOnlinePayment, "ONLINE_PAYMENT":
		return "Pago online"
	case entity.PaymentMethodTransfer:
		return "Transferencia"
	case entity.PaymentMethodBonus:
		return "Bonificado"
	case entity.PaymentMethodHealthInsurance, "HEALTH_INSURANCE":
		return "Obra social"
	case "":
		return "Sin registrar"
	default:
		return string(method)
	}
}

// MonthLabel returns the capitalized Spanish name for a 0-based month index
func MonthLabel(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthLabels[month]
}

// FormatARS renders an amount as Argentine pesos with locale grouping
func FormatARS(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return arPrinter.Sprintf("$ %.2f", value)
}
