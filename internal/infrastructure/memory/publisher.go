package memory

import (
	"context"
	"log/slog"

	"github.com/awesomegic/bankledger/internal/events"
)

// LogPublisher is the session's event sink: domain events are surfaced as
// structured log lines instead of being handed to a broker.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher writing to the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event with its topic, type and aggregate.
func (p *LogPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	for _, e := range evts {
		p.logger.LogAttrs(ctx, slog.LevelDebug, "domain event",
			slog.String("topic", topic),
			slog.String("event_type", e.EventType()),
			slog.String("event_id", e.EventID().String()),
			slog.String("aggregate_type", e.AggregateType()),
			slog.String("aggregate_id", e.AggregateID().String()),
		)
	}
	return nil
}
