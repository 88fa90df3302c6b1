package entity

import (
	"time"

	"github.com/google/uuid"
)

// TurnStatus represents the lifecycle status of an appointment.
// Both CANCELED and CANCELLED appear in remote data and are treated the same.
type TurnStatus string

const (
	TurnStatusScheduled   TurnStatus = "SCHEDULED"
	TurnStatusCompleted   TurnStatus = "COMPLETED"
	TurnStatusCanceled    TurnStatus = "CANCELED"
	TurnStatusCancelledUK TurnStatus = "CANCELLED"
	TurnStatusAvailable   TurnStatus = "AVAILABLE"
	TurnStatusNoShow      TurnStatus = "NO_SHOW"
)

// Turn represents a medical appointment as served by the remote system of
// record. The payment register sub-entity is attached once the turn completes.
type Turn struct {
	ID              uuid.UUID        `json:"id"`
	Status          TurnStatus       `json:"status"`
	ScheduledAt     time.Time        `json:"scheduledAt"`
	PatientName     string           `json:"patientName"`
	PaymentRegister *PaymentRegister `json:"paymentRegister,omitempty"`
}

// IsCompleted checks if the turn has been completed
func (t *Turn) IsCompleted() bool {
	return t.Status == TurnStatusCompleted
}

// IsCanceled checks if the turn was canceled, in either spelling
func (t *Turn) IsCanceled() bool {
	return t.Status == TurnStatusCanceled || t.Status == TurnStatusCancelledUK
}
