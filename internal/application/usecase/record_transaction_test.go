package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/application/usecase"
	"github.com/awesomegic/bankledger/internal/domain/model"
)

func TestRecordTransaction_DepositCreatesAccount(t *testing.T) {
	repo := newMockAccountRepository()
	publisher := newMockEventPublisher()
	uc := usecase.NewRecordTransaction(repo, publisher)

	resp, err := uc.Execute(context.Background(), dto.RecordTransactionRequest{
		AccountNumber: "AC001",
		Date:          mustDate(t, "20230626"),
		Kind:          model.KindDeposit,
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "AC001", resp.AccountNumber)
	assert.Equal(t, "20230626-01", resp.TransactionID)
	assert.True(t, resp.Balance.Equal(dec("100.00")))

	require.Contains(t, repo.accounts, "AC001")
	assert.Len(t, publisher.published[usecase.TopicLedgerTransactions], 1)
}

func TestRecordTransaction_SequenceAcrossCalls(t *testing.T) {
	repo := newMockAccountRepository()
	uc := usecase.NewRecordTransaction(repo, newMockEventPublisher())
	ctx := context.Background()

	first, err := uc.Execute(ctx, dto.RecordTransactionRequest{
		AccountNumber: "AC001", Date: mustDate(t, "20230626"),
		Kind: model.KindDeposit, Amount: dec("20.00"),
	})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, dto.RecordTransactionRequest{
		AccountNumber: "AC001", Date: mustDate(t, "20230626"),
		Kind: model.KindWithdrawal, Amount: dec("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "20230626-01", first.TransactionID)
	assert.Equal(t, "20230626-02", second.TransactionID)
	assert.True(t, second.Balance.Equal(dec("10.00")))
}

func TestRecordTransaction_OverdraftSurfacesDomainError(t *testing.T) {
	repo := newMockAccountRepository()
	publisher := newMockEventPublisher()
	uc := usecase.NewRecordTransaction(repo, publisher)

	_, err := uc.Execute(context.Background(), dto.RecordTransactionRequest{
		AccountNumber: "AC001", Date: mustDate(t, "20230626"),
		Kind: model.KindWithdrawal, Amount: dec("1.00"),
	})
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Empty(t, publisher.published[usecase.TopicLedgerTransactions])
}

func TestRecordTransaction_RepositoryFailure(t *testing.T) {
	repo := newMockAccountRepository()
	repo.err = errRepositoryDown
	uc := usecase.NewRecordTransaction(repo, newMockEventPublisher())

	_, err := uc.Execute(context.Background(), dto.RecordTransactionRequest{
		AccountNumber: "AC001", Date: mustDate(t, "20230626"),
		Kind: model.KindDeposit, Amount: dec("1.00"),
	})
	assert.ErrorIs(t, err, errRepositoryDown)
}
