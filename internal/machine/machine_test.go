package machine

import (
	"context"
	"errors"
	"testing"
	"time"

	"turnos-payment-register/internal/domain/entity"
	"turnos-payment-register/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemoteAPI struct {
	register *entity.PaymentRegister
	err      error

	loadCalls   int
	updateCalls int
	lastToken   string
	lastTurnID  string
	lastPayload payment.UpdatePayload
}

func (f *fakeRemoteAPI) LoadPaymentRegister(_ context.Context, accessToken, turnID string) (*entity.PaymentRegister, error) {
	f.loadCalls++
	f.lastToken = accessToken
	f.lastTurnID = turnID
	return f.register, f.err
}

func (f *fakeRemoteAPI) UpdatePaymentRegister(_ context.Context, accessToken, turnID string, payload payment.UpdatePayload) (*entity.PaymentRegister, error) {
	f.updateCalls++
	f.lastToken = accessToken
	f.lastTurnID = turnID
	f.lastPayload = payload
	return f.register, f.err
}

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
	}
}

func newTestMachine(t *testing.T, api RemoteAPI) *Machine {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return NewMachine(Definition{Now: testClock(), Location: time.UTC}, api, log)
}

func TestDefaultContextPeriod(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})

	snap := m.Snapshot()
	assert.Equal(t, 1, snap.PeriodMonth) // February, zero based
	assert.Equal(t, 2026, snap.PeriodYear)
	assert.NotNil(t, snap.ErrorByPaymentID)
	assert.NotNil(t, snap.FormByPaymentID)
	assert.Equal(t, StateIdle, m.State())
}

func TestUpdatePeriodPartial(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})

	month := 5
	m.Send(context.Background(), UpdatePeriod{Month: &month})
	snap := m.Snapshot()
	assert.Equal(t, 5, snap.PeriodMonth)
	assert.Equal(t, 2026, snap.PeriodYear)

	year := 2024
	m.Send(context.Background(), UpdatePeriod{Year: &year})
	snap = m.Snapshot()
	assert.Equal(t, 5, snap.PeriodMonth)
	assert.Equal(t, 2024, snap.PeriodYear)
}

func TestUpdateLocalFormDerivedLocking(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})
	paymentID := "turn-1"

	status := "HEALTH INSURANCE"
	m.Send(context.Background(), UpdateLocalForm{
		PaymentID: paymentID,
		Updates:   entity.FormDraft{PaymentStatus: &status},
	})

	draft := m.Snapshot().FormByPaymentID[paymentID]
	require.NotNil(t, draft)
	require.NotNil(t, draft.Method)
	assert.Equal(t, "HEALTH INSURANCE", *draft.Method)

	copay := "150"
	m.Send(context.Background(), UpdateLocalForm{
		PaymentID: paymentID,
		Updates:   entity.FormDraft{CopaymentAmount: &copay},
	})

	// Switching the status away from health insurance clears the copayment.
	paid := "PAID"
	m.Send(context.Background(), UpdateLocalForm{
		PaymentID: paymentID,
		Updates:   entity.FormDraft{PaymentStatus: &paid},
	})

	draft = m.Snapshot().FormByPaymentID[paymentID]
	require.NotNil(t, draft)
	require.NotNil(t, draft.CopaymentAmount)
	assert.Empty(t, *draft.CopaymentAmount)
	// The method forced earlier stays until the operator changes it.
	require.NotNil(t, draft.Method)
	assert.Equal(t, "HEALTH INSURANCE", *draft.Method)
}

func TestUpdateLocalFormBonusForcesMethod(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})

	status := "BONUS"
	m.Send(context.Background(), UpdateLocalForm{
		PaymentID: "turn-9",
		Updates:   entity.FormDraft{PaymentStatus: &status},
	})

	draft := m.Snapshot().FormByPaymentID["turn-9"]
	require.NotNil(t, draft)
	require.NotNil(t, draft.Method)
	assert.Equal(t, "BONUS", *draft.Method)
}

func TestPaymentErrorLifecycle(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})

	m.Send(context.Background(), SetSavingPayment{PaymentID: "turn-2"})
	assert.Equal(t, "turn-2", m.Snapshot().SavingPaymentID)

	m.Send(context.Background(), SetPaymentError{PaymentID: "turn-2", Message: "fallo"})
	assert.Equal(t, "fallo", m.Snapshot().ErrorByPaymentID["turn-2"])

	m.Send(context.Background(), ClearPaymentError{PaymentID: "turn-2"})
	message, ok := m.Snapshot().ErrorByPaymentID["turn-2"]
	assert.True(t, ok)
	assert.Empty(t, message)

	m.Send(context.Background(), SetSavingPayment{PaymentID: ""})
	assert.Empty(t, m.Snapshot().SavingPaymentID)
}

func TestLoadRequiresAuth(t *testing.T) {
	api := &fakeRemoteAPI{}
	m := newTestMachine(t, api)

	m.Send(context.Background(), Load{})

	assert.Zero(t, api.loadCalls)
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, m.Snapshot().Loading)
}

func TestLoadBlockedWhileSaving(t *testing.T) {
	api := &fakeRemoteAPI{}
	m := newTestMachine(t, api)

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})
	m.Send(context.Background(), SetSavingPayment{PaymentID: "turn-7"})
	m.Send(context.Background(), Load{})

	assert.Zero(t, api.loadCalls)
	assert.Equal(t, StateIdle, m.State())
}

func TestLoadSuccess(t *testing.T) {
	amount := decimal.NewFromInt(300)
	api := &fakeRemoteAPI{register: &entity.PaymentRegister{
		PaymentStatus: entity.PaymentStatusPaid,
		Method:        entity.PaymentMethodCash,
		PaymentAmount: &amount,
	}}
	m := newTestMachine(t, api)

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})
	m.Send(context.Background(), Load{})

	assert.Equal(t, 1, api.loadCalls)
	assert.Equal(t, "token", api.lastToken)
	assert.Equal(t, "turn-1", api.lastTurnID)

	snap := m.Snapshot()
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.ErrorMessage)
	require.NotNil(t, snap.PaymentRegister)
	assert.Equal(t, "PAID", snap.FormValues.PaymentStatus)
	assert.Equal(t, "CASH", snap.FormValues.Method)
	assert.Equal(t, "300", snap.FormValues.PaymentAmount)
}

func TestLoadFailure(t *testing.T) {
	api := &fakeRemoteAPI{err: errors.New("No se pudo cargar el registro de pagos")}
	m := newTestMachine(t, api)

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})
	m.Send(context.Background(), Load{})

	snap := m.Snapshot()
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, snap.Loading)
	assert.Equal(t, "No se pudo cargar el registro de pagos", snap.ErrorMessage)
}

func TestSaveBuildsPayload(t *testing.T) {
	api := &fakeRemoteAPI{register: &entity.PaymentRegister{
		PaymentStatus: entity.PaymentStatusPaid,
		Method:        entity.PaymentMethodTransfer,
	}}
	m := newTestMachine(t, api)

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})

	status := "PAID"
	method := "TRANSFER"
	amount := "1250.50"
	m.Send(context.Background(), UpdateForm{Updates: entity.FormDraft{
		PaymentStatus: &status,
		Method:        &method,
		PaymentAmount: &amount,
	}})
	m.Send(context.Background(), Save{})

	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, "PAID", api.lastPayload.PaymentStatus)
	assert.Equal(t, "TRANSFER", api.lastPayload.Method)
	assert.Equal(t, 1250.50, api.lastPayload.PaymentAmount)
	assert.Nil(t, api.lastPayload.CopaymentAmount)
	assert.Equal(t, "2026-02-14T12:00:00Z", api.lastPayload.PaidAt)

	snap := m.Snapshot()
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, snap.Updating)
	assert.Equal(t, "TRANSFER", snap.FormValues.Method)
}

func TestSaveFailureUsesFallbackMessage(t *testing.T) {
	api := &fakeRemoteAPI{err: errors.New("")}
	m := newTestMachine(t, api)

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})
	m.Send(context.Background(), Save{})

	snap := m.Snapshot()
	assert.False(t, snap.Updating)
	assert.Equal(t, UpdateErrorFallback, snap.ErrorMessage)
}

func TestLogoutResetsContext(t *testing.T) {
	m := newTestMachine(t, &fakeRemoteAPI{})

	m.Send(context.Background(), SetAuth{AccessToken: "token", TurnID: "turn-1"})
	m.Send(context.Background(), SetPaymentError{PaymentID: "turn-1", Message: "fallo"})
	month := 7
	m.Send(context.Background(), UpdatePeriod{Month: &month})

	m.Send(context.Background(), Logout{})

	snap := m.Snapshot()
	assert.Empty(t, snap.AccessToken)
	assert.Empty(t, snap.TurnID)
	assert.Empty(t, snap.ErrorByPaymentID)
	assert.Equal(t, 1, snap.PeriodMonth)
	assert.Equal(t, 2026, snap.PeriodYear)
}
