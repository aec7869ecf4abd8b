package service

import (
	"context"
	"time"
)

// AgreementEventType names the mutation that produced an event.
type AgreementEventType string

const (
	AgreementEventCreated       AgreementEventType = "created"
	AgreementEventUpdated       AgreementEventType = "updated"
	AgreementEventDeleted       AgreementEventType = "deleted"
	AgreementEventStatusChanged AgreementEventType = "status_changed"
)

// Agreement kinds carried by events and QR payloads.
const (
	AgreementKindStandard = "agreement"
	AgreementKindDigital  = "digital_agreement"
)

// AgreementEvent is emitted after an agreement mutation has been committed
type AgreementEvent struct {
	RequestID   string             `json:"request_id,omitempty"` // For distributed tracing
	EventType   AgreementEventType `json:"event_type"`
	AgreementID string             `json:"agreement_id"`
	Kind        string             `json:"kind"`
	OwnerID     string             `json:"owner_id"`
	TotalCost   float64            `json:"total_cost"`
	Status      string             `json:"status,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAgreementEvent publishes an agreement event
	PublishAgreementEvent(ctx context.Context, event *AgreementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
