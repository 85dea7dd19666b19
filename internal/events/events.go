// Package events defines the domain event contract shared by all aggregates.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte
}

// BaseEvent provides a default implementation of DomainEvent. Concrete events
// embed it and add their own typed fields.
type BaseEvent struct {
	id            uuid.UUID
	eventType     string
	aggregateID   uuid.UUID
	aggregateType string
	occurredAt    time.Time
	payload       []byte
}

// NewBaseEvent creates a BaseEvent with a generated id and the current UTC time.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
		payload:       payload,
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.id }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) AggregateID() uuid.UUID { return e.aggregateID }
func (e BaseEvent) AggregateType() string { return e.aggregateType }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseEvent) Payload() []byte       { return e.payload }

// Collector is embedded in aggregates to gather domain events during state
// transitions. It is not safe for concurrent use; aggregates are owned by a
// single session thread.
type Collector struct {
	events []DomainEvent
}

// Record appends a domain event to the collector.
func (c *Collector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns the collected domain events without clearing them.
func (c *Collector) Events() []DomainEvent {
	return c.events
}

// ClearEvents returns the collected domain events and resets the collector.
func (c *Collector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}
