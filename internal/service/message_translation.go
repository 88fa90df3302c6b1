package service

// backendMessages maps the known backend validation phrases to the
// operator-facing es-AR text. The backend validates the same rules the local
// engine does, so most of these only show up when a stale client races a
// remote state change.
var backendMessages = map[string]string{
	"Payment amount must be greater than zero":                    "El monto del pago debe ser mayor que cero.",
	"Payment amount must be less than 10 million":                 "El monto del pago debe ser menor que 10 millones.",
	"Payment amount is required":                                  "Ingresá el monto abonado.",
	"Payment amount must be a valid number":                       "Ingresá un monto abonado válido.",
	"Copayment amount must be greater than or equal to zero":      "El copago es obligatorio y debe ser mayor o igual que cero cuando el estado de pago es Obra Social.",
	"Copayment amount must be less than 10 million":               "El copago debe ser menor que 10 millones.",
	"Copayment amount must be less than or equal payment amount":  "El copago debe ser menor o igual al monto del pago.",
	"Copayment amount is only allowed for health insurance":       "El copago solo aplica cuando el estado de pago es Obra Social.",
	"Copayment amount is required for health insurance":           "El copago es obligatorio cuando el estado de pago es Obra Social.",
	"Payment status is required":                                  "Seleccioná un estado de pago válido.",
	"Invalid payment status":                                      "Seleccioná un estado de pago válido.",
	"Payment status cannot be PENDING":                            "Seleccioná un estado de pago válido.",
	"Payment method is required":                                  "Seleccioná un medio de pago.",
	"Invalid payment method":                                      "Seleccioná un medio de pago válido.",
	"Payment method must be BONUS for bonus payments":             "El medio de pago debe ser Bonificado cuando el estado de pago es Bonificado.",
	"Payment method must be HEALTH INSURANCE for health insurance": "El medio de pago debe ser Obra Social cuando el estado de pago es Obra Social.",
	"Payment status must be BONUS for bonus method":               "El estado de pago debe ser Bonificado cuando el medio de pago es Bonificado.",
	"Payment status must be HEALTH INSURANCE for insurance method": "El estado de pago debe ser Obra Social cuando el medio de pago es Obra Social.",
	"Paid date is required":                                       "Falta la fecha de pago.",
	"Paid date must be a valid date":                              "La fecha de pago no es válida.",
	"Paid date cannot be in the future":                           "La fecha de pago no puede ser futura.",
	"Payment register not found":                                  "No se encontró el registro de pago.",
	"Payment register is already canceled":                        "El registro de pago ya fue cancelado.",
	"Payment register cannot be canceled while pending":           "No se puede cancelar un pago pendiente.",
	"Payment register already settled":                            "El pago ya fue registrado.",
	"Turn not found":                                              "No se encontró el turno.",
	"Turn is not completed":                                       "El turno todavía no fue completado.",
	"Turn was canceled":                                           "El turno fue cancelado.",
	"Turn does not belong to you":                                 "El turno no te pertenece.",
	"Unauthorized":                                                "Sesión expirada. Volvé a iniciar sesión.",
	"Token expired":                                               "Sesión expirada. Volvé a iniciar sesión.",
	"Invalid token":                                               "Sesión expirada. Volvé a iniciar sesión.",
	"Too many requests":                                           "Demasiadas solicitudes. Probá de nuevo en unos minutos.",
	"Internal server error":                                       "Ocurrió un error inesperado. Probá de nuevo.",
	"Service temporarily unavailable":                             "El servicio no está disponible. Probá de nuevo en unos minutos.",
}

// TranslateBackendMessage maps a raw backend message to its localized form.
// Unknown messages pass through unchanged.
func TranslateBackendMessage(raw string) string {
	if translated, ok := backendMessages[raw]; ok {
		return translated
	}
	return raw
}
