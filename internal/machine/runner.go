package machine

import (
	"context"
	"sync"
	"time"

	"turnos-payment-register/internal/domain/entity"
	"turnos-payment-register/internal/domain/payment"

	"github.com/sirupsen/logrus"
)

// RemoteAPI is the slice of the transport client the machine invokes.
type RemoteAPI interface {
	LoadPaymentRegister(ctx context.Context, accessToken, turnID string) (*entity.PaymentRegister, error)
	UpdatePaymentRegister(ctx context.Context, accessToken, turnID string, payload payment.UpdatePayload) (*entity.PaymentRegister, error)
}

// Machine drives Definition transitions and executes their effects against
// the remote API. Sends are serialized; an in-flight remote call finishes
// before the next event is processed.
type Machine struct {
	mu    sync.Mutex
	def   Definition
	state State
	ctx   Context

	api RemoteAPI
	log *logrus.Logger
}

func NewMachine(def Definition, api RemoteAPI, log *logrus.Logger) *Machine {
	if def.Now == nil {
		def.Now = time.Now
	}
	if def.Location == nil {
		def.Location = time.UTC
	}
	m := &Machine{def: def, api: api, log: log}
	m.ctx = def.DefaultContext()
	return m
}

// Send dispatches one event. Effects run synchronously and their completion
// events are applied before Send returns, so the machine is back in idle by
// the time the caller observes it.
func (m *Machine) Send(ctx context.Context, ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		state, mctx, effects := m.def.Transition(m.state, m.ctx, next)
		m.state = state
		m.ctx = mctx

		for _, effect := range effects {
			queue = append(queue, m.run(ctx, effect))
		}
	}
}

// State returns the current lifecycle phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot returns a copy of the machine context. The maps inside are shared
// but never mutated in place, so the snapshot stays stable.
func (m *Machine) Snapshot() Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx
}

func (m *Machine) run(ctx context.Context, effect Effect) Event {
	switch effect := effect.(type) {
	case EffectLoad:
		register, err := m.api.LoadPaymentRegister(ctx, effect.AccessToken, effect.TurnID)
		if err != nil {
			m.log.Warnf("Failed to load payment register for turn %s: %v", effect.TurnID, err)
			return loadFailed{Message: err.Error()}
		}
		return loadDone{Register: register}

	case EffectUpdate:
		payload := payment.BuildUpdatePayload(effect.Form, m.def.Now())
		register, err := m.api.UpdatePaymentRegister(ctx, effect.AccessToken, effect.TurnID, payload)
		if err != nil {
			m.log.Warnf("Failed to update payment register for turn %s: %v", effect.TurnID, err)
			return updateFailed{Message: err.Error()}
		}
		m.log.Infof("Payment register updated: turn=%s, status=%s", effect.TurnID, payload.PaymentStatus)
		return updateDone{Register: register}
	}

	m.log.Errorf("Unknown machine effect: %s", effect.effectName())
	return ClearError{}
}
