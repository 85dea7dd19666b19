package usecase

import (
	"context"
	"fmt"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/port"
)

const TopicLedgerTransactions = "bankledger.transactions"

// RecordTransaction handles deposits and withdrawals, creating the account
// on first use.
type RecordTransaction struct {
	accounts  port.AccountRepository
	publisher port.EventPublisher
}

func NewRecordTransaction(accounts port.AccountRepository, publisher port.EventPublisher) *RecordTransaction {
	return &RecordTransaction{accounts: accounts, publisher: publisher}
}

func (uc *RecordTransaction) Execute(ctx context.Context, req dto.RecordTransactionRequest) (dto.RecordTransactionResponse, error) {
	acct, err := uc.accounts.FindOrCreate(ctx, req.AccountNumber)
	if err != nil {
		return dto.RecordTransactionResponse{}, fmt.Errorf("failed to resolve account %s: %w", req.AccountNumber, err)
	}

	txn, err := acct.RecordTransaction(req.Kind, req.Date, req.Amount)
	if err != nil {
		return dto.RecordTransactionResponse{}, fmt.Errorf("failed to record transaction on %s: %w", req.AccountNumber, err)
	}

	if events := acct.ClearEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, TopicLedgerTransactions, events...); err != nil {
			return dto.RecordTransactionResponse{}, fmt.Errorf("failed to publish events for %s: %w", req.AccountNumber, err)
		}
	}

	return dto.RecordTransactionResponse{
		AccountNumber: acct.Number(),
		TransactionID: txn.SequenceID(),
		Balance:       acct.Balance(),
	}, nil
}
