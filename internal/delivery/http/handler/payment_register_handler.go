package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"turnos-payment-register/internal/converter"
	"turnos-payment-register/internal/delivery/dto"
	"turnos-payment-register/internal/delivery/http/middleware"
	"turnos-payment-register/internal/domain/payment"
	"turnos-payment-register/internal/service"
	"turnos-payment-register/internal/usecase"
	"turnos-payment-register/pkg/response"
	"turnos-payment-register/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PaymentRegisterHandler struct {
	paymentUsecase usecase.PaymentRegisterUsecase
	authMiddleware *middleware.AuthMiddleware
	validator      *validator.CustomValidator
}

func NewPaymentRegisterHandler(
	paymentUsecase usecase.PaymentRegisterUsecase,
	authMiddleware *middleware.AuthMiddleware,
	validator *validator.CustomValidator,
) *PaymentRegisterHandler {
	return &PaymentRegisterHandler{
		paymentUsecase: paymentUsecase,
		authMiddleware: authMiddleware,
		validator:      validator,
	}
}

// GetPaymentsPage serves the period's payment rows, navigation and summary.
// Optional month (0-11) and year query params move the active period.
func (h *PaymentRegisterHandler) GetPaymentsPage(w http.ResponseWriter, r *http.Request) {
	accessToken, operatorID, ok := h.identity(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	month, err := optionalIntParam(r, "month", 0, 11)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid month", nil)
		return
	}
	year, err := optionalIntParam(r, "year", 1970, 9999)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid year", nil)
		return
	}

	page, err := h.paymentUsecase.PaymentsPage(r.Context(), accessToken, operatorID, month, year)
	if err != nil {
		h.writeError(w, err, "Failed to load payments page")
		return
	}

	response.Success(w, http.StatusOK, "Payments page retrieved successfully", page)
}

// GetPayment proxies a single payment-register load.
func (h *PaymentRegisterHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	accessToken, _, ok := h.identity(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	turnID, err := turnIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid turn ID", nil)
		return
	}

	register, err := h.paymentUsecase.LoadPayment(r.Context(), accessToken, turnID)
	if err != nil {
		h.writeError(w, err, "Failed to load payment register")
		return
	}

	response.Success(w, http.StatusOK, "Payment register retrieved successfully", register)
}

// SavePayment validates and persists the draft for one turn.
func (h *PaymentRegisterHandler) SavePayment(w http.ResponseWriter, r *http.Request) {
	accessToken, operatorID, ok := h.identity(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	turnID, err := turnIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid turn ID", nil)
		return
	}

	var req dto.SavePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	register, err := h.paymentUsecase.SavePayment(r.Context(), accessToken, operatorID, turnID, converter.SavePaymentRequestToDraft(&req))
	if err != nil {
		h.writeError(w, err, "Failed to save payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment saved successfully", register)
}

// CancelPayment cancels a settled payment.
func (h *PaymentRegisterHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	accessToken, operatorID, ok := h.identity(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	turnID, err := turnIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid turn ID", nil)
		return
	}

	register, err := h.paymentUsecase.CancelPayment(r.Context(), accessToken, operatorID, turnID)
	if err != nil {
		h.writeError(w, err, "Failed to cancel payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment canceled successfully", register)
}

// GetHealthPlans serves the insurer catalog for the health-insurance form.
// With an insurance query param it narrows to that insurer's plans.
func (h *PaymentRegisterHandler) GetHealthPlans(w http.ResponseWriter, r *http.Request) {
	if insurance := r.URL.Query().Get("insurance"); insurance != "" {
		plans := payment.HealthPlansFor(insurance)
		if plans == nil {
			response.NotFound(w, "Unknown health insurance")
			return
		}
		response.Success(w, http.StatusOK, "Health plans retrieved successfully", dto.InsurancePlans{
			Insurance: strings.ToUpper(strings.TrimSpace(insurance)),
			Plans:     plans,
		})
		return
	}

	insurers := make([]string, 0, len(payment.HealthInsurancePlans))
	for insurer := range payment.HealthInsurancePlans {
		insurers = append(insurers, insurer)
	}
	sort.Strings(insurers)

	catalog := make([]dto.InsurancePlans, 0, len(insurers))
	for _, insurer := range insurers {
		catalog = append(catalog, dto.InsurancePlans{
			Insurance: insurer,
			Plans:     payment.HealthInsurancePlans[insurer],
		})
	}
	response.Success(w, http.StatusOK, "Health plans retrieved successfully", catalog)
}

// Logout revokes the token and resets the ledger state.
func (h *PaymentRegisterHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken, operatorID, ok := h.identity(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authMiddleware.Revoke(r.Context(), accessToken); err != nil {
		response.InternalServerError(w, "Failed to revoke token")
		return
	}

	h.paymentUsecase.Logout(r.Context(), operatorID)
	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *PaymentRegisterHandler) identity(r *http.Request) (accessToken, operatorID string, ok bool) {
	accessToken, ok = middleware.GetAccessTokenFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	return accessToken, userID.String(), true
}

func (h *PaymentRegisterHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var remoteErr *service.RemoteError

	switch {
	case payment.IsValidationError(err):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrNoCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrSaveInFlight):
		response.Conflict(w, err.Error())
	case errors.As(err, &remoteErr):
		response.BadGateway(w, remoteErr.Message)
	default:
		response.InternalServerError(w, fallback)
	}
}

func turnIDVar(r *http.Request) (string, error) {
	vars := mux.Vars(r)
	turnID, err := uuid.Parse(vars["turnId"])
	if err != nil {
		return "", err
	}
	return turnID.String(), nil
}

func optionalIntParam(r *http.Request, name string, min, max int) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min || value > max {
		return nil, errors.New("out of range")
	}
	return &value, nil
}
