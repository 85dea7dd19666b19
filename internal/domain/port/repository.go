package port

import (
	"context"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/events"
)

// AccountRepository owns the session's account registry. Accounts are
// created lazily: FindOrCreate returns the live aggregate for a number,
// creating an empty one the first time the number is seen. Callers mutate
// the returned aggregate directly; there is no store-back step.
type AccountRepository interface {
	// FindOrCreate retrieves the account for an externally assigned number,
	// creating it if unseen.
	FindOrCreate(ctx context.Context, number string) (*model.Account, error)
}

// EventPublisher publishes domain events raised by aggregates.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
