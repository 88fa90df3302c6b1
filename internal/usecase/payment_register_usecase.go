package usecase

import (
	"context"
	"errors"
	"time"

	"turnos-payment-register/internal/converter"
	"turnos-payment-register/internal/delivery/dto"
	"turnos-payment-register/internal/domain/entity"
	"turnos-payment-register/internal/domain/payment"
	"turnos-payment-register/internal/machine"
	"turnos-payment-register/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoCredentials = errors.New("Sesión expirada. Volvé a iniciar sesión.")
	ErrSaveInFlight  = errors.New("Hay otro pago guardándose. Esperá a que termine.")
)

// RemoteAPI is the full transport surface the ledger needs from the remote
// system of record.
type RemoteAPI interface {
	LoadMyTurns(ctx context.Context, accessToken string) ([]entity.Turn, error)
	LoadPaymentRegister(ctx context.Context, accessToken, turnID string) (*entity.PaymentRegister, error)
	UpdatePaymentRegister(ctx context.Context, accessToken, turnID string, payload payment.UpdatePayload) (*entity.PaymentRegister, error)
	CancelPaymentRegister(ctx context.Context, accessToken, turnID string) (*entity.PaymentRegister, error)
}

// TurnsStore is the per-operator turns cache.
type TurnsStore interface {
	Get(ctx context.Context, operatorID string) ([]entity.Turn, bool)
	Set(ctx context.Context, operatorID string, turns []entity.Turn)
	Invalidate(ctx context.Context, operatorID string)
}

type PaymentRegisterUsecase interface {
	PaymentsPage(ctx context.Context, accessToken, operatorID string, month, year *int) (*dto.PaymentsPageResponse, error)
	LoadPayment(ctx context.Context, accessToken, turnID string) (*dto.PaymentRegisterResponse, error)
	SavePayment(ctx context.Context, accessToken, operatorID, turnID string, draft entity.FormDraft) (*dto.PaymentRegisterResponse, error)
	CancelPayment(ctx context.Context, accessToken, operatorID, turnID string) (*dto.PaymentRegisterResponse, error)
	Logout(ctx context.Context, operatorID string)
}

type paymentRegisterUsecase struct {
	log      *logrus.Logger
	api      RemoteAPI
	turns    TurnsStore
	machine  *machine.Machine
	location *time.Location
	now      func() time.Time
}

func NewPaymentRegisterUsecase(
	log *logrus.Logger,
	api RemoteAPI,
	turns TurnsStore,
	m *machine.Machine,
	location *time.Location,
) PaymentRegisterUsecase {
	return &paymentRegisterUsecase{
		log:      log,
		api:      api,
		turns:    turns,
		machine:  m,
		location: location,
		now:      time.Now,
	}
}

// PaymentsPage assembles the full ledger view for the active period: period
// navigation, per-turn view models and the billing summary. Passing month or
// year moves the machine's period filter first.
func (u *paymentRegisterUsecase) PaymentsPage(ctx context.Context, accessToken, operatorID string, month, year *int) (*dto.PaymentsPageResponse, error) {
	if accessToken == "" {
		return nil, ErrNoCredentials
	}

	turns, err := u.loadTurns(ctx, accessToken, operatorID)
	if err != nil {
		return nil, err
	}

	if month != nil || year != nil {
		u.machine.Send(ctx, machine.UpdatePeriod{Month: month, Year: year})
	}

	snapshot := u.machine.Snapshot()
	selectedMonth := snapshot.PeriodMonth
	selectedYear := snapshot.PeriodYear

	now := u.now().In(u.location)
	years := payment.AvailableYears(turns, now.Year(), u.location)
	months := payment.AvailableMonths(turns, selectedYear, int(now.Month())-1, u.location)

	periodTurns := payment.PeriodTurns(turns, selectedMonth, selectedYear, u.location)
	paymentTurns := payment.PaymentTurns(periodTurns)

	views := make([]dto.TurnPaymentView, 0, len(paymentTurns))
	for i := range paymentTurns {
		turn := &paymentTurns[i]
		turnID := turn.ID.String()
		vm := payment.BuildTurnViewModel(turn, snapshot.FormByPaymentID[turnID])
		views = append(views, converter.TurnViewToResponse(
			turn,
			vm,
			snapshot.SavingPaymentID == turnID,
			snapshot.ErrorByPaymentID[turnID],
		))
	}

	monthOptions := make([]dto.MonthOption, 0, len(months))
	for _, m := range months {
		monthOptions = append(monthOptions, dto.MonthOption{Value: m, Label: payment.MonthLabel(m)})
	}

	return &dto.PaymentsPageResponse{
		Month:           selectedMonth,
		MonthLabel:      payment.MonthLabel(selectedMonth),
		Year:            selectedYear,
		Years:           years,
		Months:          monthOptions,
		Turns:           views,
		Summary:         converter.SummaryToResponse(payment.BuildSummary(periodTurns)),
		SavingPaymentID: snapshot.SavingPaymentID,
	}, nil
}

// LoadPayment fetches one turn's payment register through the machine's
// loading state.
func (u *paymentRegisterUsecase) LoadPayment(ctx context.Context, accessToken, turnID string) (*dto.PaymentRegisterResponse, error) {
	if accessToken == "" {
		return nil, ErrNoCredentials
	}

	u.machine.Send(ctx, machine.SetAuth{AccessToken: accessToken, TurnID: turnID})
	u.machine.Send(ctx, machine.Load{})

	snapshot := u.machine.Snapshot()
	if snapshot.ErrorMessage != "" {
		return nil, &service.RemoteError{StatusCode: 502, Message: snapshot.ErrorMessage}
	}

	return converter.PaymentRegisterToResponse(snapshot.PaymentRegister), nil
}

// SavePayment runs the full save workflow for one turn: merge the draft into
// the keyed store (with derived locking), validate, claim the exclusive
// saving slot, persist remotely and record any failure against the payment.
func (u *paymentRegisterUsecase) SavePayment(ctx context.Context, accessToken, operatorID, turnID string, draft entity.FormDraft) (*dto.PaymentRegisterResponse, error) {
	if accessToken == "" {
		return nil, ErrNoCredentials
	}
	if u.machine.Snapshot().SavingPaymentID != "" {
		return nil, ErrSaveInFlight
	}

	u.machine.Send(ctx, machine.UpdateLocalForm{PaymentID: turnID, Updates: draft})
	u.machine.Send(ctx, machine.ClearPaymentError{PaymentID: turnID})

	form := u.machine.Snapshot().FormByPaymentID[turnID].Resolved()
	if err := payment.ValidateForm(&form); err != nil {
		u.machine.Send(ctx, machine.SetPaymentError{PaymentID: turnID, Message: err.Error()})
		return nil, err
	}

	u.machine.Send(ctx, machine.SetSavingPayment{PaymentID: turnID})
	defer u.machine.Send(ctx, machine.SetSavingPayment{PaymentID: ""})

	payload := payment.BuildUpdatePayload(form, u.now())
	register, err := u.api.UpdatePaymentRegister(ctx, accessToken, turnID, payload)
	if err != nil {
		u.log.Warnf("Failed to save payment for turn %s: %v", turnID, err)
		u.machine.Send(ctx, machine.SetPaymentError{PaymentID: turnID, Message: err.Error()})
		return nil, err
	}

	u.turns.Invalidate(ctx, operatorID)
	u.log.Infof("Payment saved: turn=%s, status=%s", turnID, payload.PaymentStatus)
	return converter.PaymentRegisterToResponse(register), nil
}

// CancelPayment cancels a settled payment. The record survives as CANCELED
// and can be edited again later.
func (u *paymentRegisterUsecase) CancelPayment(ctx context.Context, accessToken, operatorID, turnID string) (*dto.PaymentRegisterResponse, error) {
	if accessToken == "" {
		return nil, ErrNoCredentials
	}
	if u.machine.Snapshot().SavingPaymentID != "" {
		return nil, ErrSaveInFlight
	}

	u.machine.Send(ctx, machine.SetSavingPayment{PaymentID: turnID})
	u.machine.Send(ctx, machine.ClearPaymentError{PaymentID: turnID})
	defer u.machine.Send(ctx, machine.SetSavingPayment{PaymentID: ""})

	register, err := u.api.CancelPaymentRegister(ctx, accessToken, turnID)
	if err != nil {
		u.log.Warnf("Failed to cancel payment for turn %s: %v", turnID, err)
		u.machine.Send(ctx, machine.SetPaymentError{PaymentID: turnID, Message: err.Error()})
		return nil, err
	}

	u.turns.Invalidate(ctx, operatorID)
	u.log.Infof("Payment canceled: turn=%s", turnID)
	return converter.PaymentRegisterToResponse(register), nil
}

// Logout resets the machine context and drops the operator's cached turns.
func (u *paymentRegisterUsecase) Logout(ctx context.Context, operatorID string) {
	u.machine.Send(ctx, machine.Logout{})
	u.turns.Invalidate(ctx, operatorID)
	u.log.Infof("Operator logged out: %s", operatorID)
}

func (u *paymentRegisterUsecase) loadTurns(ctx context.Context, accessToken, operatorID string) ([]entity.Turn, error) {
	if turns, ok := u.turns.Get(ctx, operatorID); ok {
		return turns, nil
	}

	turns, err := u.api.LoadMyTurns(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	u.turns.Set(ctx, operatorID, turns)
	return turns, nil
}
