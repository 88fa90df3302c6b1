package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"turnos-payment-register/config"
	"turnos-payment-register/internal/domain/entity"
	"turnos-payment-register/internal/domain/payment"

	"github.com/sirupsen/logrus"
)

// Generic fallbacks when a failed response carries no usable message.
const (
	loadTurnsFallback      = "No se pudieron cargar los turnos"
	loadRegisterFallback   = "No se pudo cargar el registro de pagos"
	updateRegisterFallback = "No se pudo actualizar el registro de pagos"
	cancelRegisterFallback = "No se pudo eliminar el registro de pagos"
)

// RemoteError is a failed remote call with its already-localized message.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// errorBody is the remote API's failure envelope
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// PaymentRegisterClient is the thin HTTP binding to the remote system of
// record. It owns no state beyond the connection settings; every call takes
// the operator's access credential.
type PaymentRegisterClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewPaymentRegisterClient(cfg config.RemoteAPIConfig, log *logrus.Logger) *PaymentRegisterClient {
	return &PaymentRegisterClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// LoadMyTurns fetches the operator's turn list.
func (c *PaymentRegisterClient) LoadMyTurns(ctx context.Context, accessToken string) ([]entity.Turn, error) {
	var turns []entity.Turn
	err := c.call(ctx, http.MethodGet, c.baseURL+"/turns/my-turns", accessToken, nil, &turns, loadTurnsFallback)
	if err != nil {
		c.log.Warnf("Failed to load turns: %v", err)
		return nil, err
	}
	return turns, nil
}

// LoadPaymentRegister fetches one turn's payment register.
func (c *PaymentRegisterClient) LoadPaymentRegister(ctx context.Context, accessToken, turnID string) (*entity.PaymentRegister, error) {
	var register entity.PaymentRegister
	url := fmt.Sprintf("%s/payment-registers/%s", c.baseURL, turnID)
	if err := c.call(ctx, http.MethodGet, url, accessToken, nil, &register, loadRegisterFallback); err != nil {
		return nil, err
	}
	return &register, nil
}

// UpdatePaymentRegister persists a validated payment form.
func (c *PaymentRegisterClient) UpdatePaymentRegister(ctx context.Context, accessToken, turnID string, payload payment.UpdatePayload) (*entity.PaymentRegister, error) {
	var register entity.PaymentRegister
	url := fmt.Sprintf("%s/payment-registers/%s", c.baseURL, turnID)
	if err := c.call(ctx, http.MethodPut, url, accessToken, payload, &register, updateRegisterFallback); err != nil {
		return nil, err
	}
	return &register, nil
}

// CancelPaymentRegister cancels a settled payment. The record stays and can
// be re-registered later.
func (c *PaymentRegisterClient) CancelPaymentRegister(ctx context.Context, accessToken, turnID string) (*entity.PaymentRegister, error) {
	var register entity.PaymentRegister
	url := fmt.Sprintf("%s/payment-registers/%s/cancel", c.baseURL, turnID)
	if err := c.call(ctx, http.MethodPatch, url, accessToken, nil, &register, cancelRegisterFallback); err != nil {
		return nil, err
	}
	return &register, nil
}

func (c *PaymentRegisterClient) call(ctx context.Context, method, url, accessToken string, body, out interface{}, fallback string) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.remoteError(resp, fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// remoteError extracts the backend message from a failed response, falling
// back on the generic text when the body is not JSON or carries no message,
// then runs it through the translation table.
func (c *PaymentRegisterClient) remoteError(resp *http.Response, fallback string) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	raw := body.Message
	if raw == "" {
		raw = body.Error
	}
	if raw == "" {
		raw = fallback
	}

	return &RemoteError{
		StatusCode: resp.StatusCode,
		Message:    TranslateBackendMessage(raw),
	}
}
