package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
	"github.com/awesomegic/bankledger/internal/events"
)

// mockAccountRepository backs the use case tests with an in-memory map and
// optional forced errors.
type mockAccountRepository struct {
	accounts map[string]*model.Account
	err      error
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepository) FindOrCreate(_ context.Context, number string) (*model.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	if acct, ok := m.accounts[number]; ok {
		return acct, nil
	}
	acct, err := model.NewAccount(number)
	if err != nil {
		return nil, err
	}
	acct.ClearEvents()
	m.accounts[number] = acct
	return acct, nil
}

// mockEventPublisher captures published events by topic.
type mockEventPublisher struct {
	published map[string][]events.DomainEvent
	err       error
}

func newMockEventPublisher() *mockEventPublisher {
	return &mockEventPublisher{published: make(map[string][]events.DomainEvent)}
}

func (m *mockEventPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published[topic] = append(m.published[topic], evts...)
	return nil
}

var errRepositoryDown = errors.New("repository unavailable")

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := valueobject.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustPeriod(t *testing.T, s string) valueobject.StatementPeriod {
	t.Helper()
	p, err := valueobject.ParseStatementPeriod(s)
	require.NoError(t, err)
	return p
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
