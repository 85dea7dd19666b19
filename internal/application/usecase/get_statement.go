package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/port"
)

// GetStatement flattens an account's ledger entries into date-ordered
// statement lines, either for one month or the full history.
type GetStatement struct {
	accounts port.AccountRepository
}

func NewGetStatement(accounts port.AccountRepository) *GetStatement {
	return &GetStatement{accounts: accounts}
}

func (uc *GetStatement) Execute(ctx context.Context, req dto.StatementRequest) (dto.StatementResponse, error) {
	acct, err := uc.accounts.FindOrCreate(ctx, req.AccountNumber)
	if err != nil {
		return dto.StatementResponse{}, fmt.Errorf("failed to resolve account %s: %w", req.AccountNumber, err)
	}

	var byDate map[time.Time][]model.Transaction
	if req.Period != nil {
		byDate = acct.TransactionsForPeriod(*req.Period)
	} else {
		byDate = acct.AllTransactions()
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var lines []dto.StatementLine
	for _, date := range dates {
		for _, txn := range byDate[date] {
			lines = append(lines, dto.StatementLine{
				Date:          txn.Date(),
				TransactionID: txn.SequenceID(),
				Kind:          txn.Kind(),
				Amount:        txn.Amount(),
				Balance:       txn.BalanceAfter(),
			})
		}
	}

	return dto.StatementResponse{
		AccountNumber: acct.Number(),
		Lines:         lines,
	}, nil
}
