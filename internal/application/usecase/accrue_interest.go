package usecase

import (
	"context"
	"fmt"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/port"
	"github.com/awesomegic/bankledger/internal/domain/service"
)

const TopicInterestCredits = "bankledger.interest.credits"

// AccrueInterest computes one month's interest for an account and records it
// as a single interest transaction dated on the last day of the month. A
// month that already carries an interest credit is not accrued again; the
// existing amount is returned instead.
type AccrueInterest struct {
	accounts  port.AccountRepository
	rules     *model.RuleTable
	publisher port.EventPublisher
	engine    *service.AccrualEngine
}

func NewAccrueInterest(
	accounts port.AccountRepository,
	rules *model.RuleTable,
	publisher port.EventPublisher,
	engine *service.AccrualEngine,
) *AccrueInterest {
	return &AccrueInterest{
		accounts:  accounts,
		rules:     rules,
		publisher: publisher,
		engine:    engine,
	}
}

func (uc *AccrueInterest) Execute(ctx context.Context, req dto.AccrueInterestRequest) (dto.AccrueInterestResponse, error) {
	acct, err := uc.accounts.FindOrCreate(ctx, req.AccountNumber)
	if err != nil {
		return dto.AccrueInterestResponse{}, fmt.Errorf("failed to resolve account %s: %w", req.AccountNumber, err)
	}

	creditDate := req.Period.EndDate()

	if posted, ok := acct.InterestPostedFor(req.Period); ok {
		return dto.AccrueInterestResponse{
			AccountNumber: acct.Number(),
			Period:        req.Period,
			CreditDate:    creditDate,
			Amount:        posted,
			AlreadyPosted: true,
		}, nil
	}

	amount := uc.engine.ComputeMonthlyInterest(acct, uc.rules, req.Period)

	if _, err := acct.RecordTransaction(model.KindInterest, creditDate, amount); err != nil {
		return dto.AccrueInterestResponse{}, fmt.Errorf("failed to credit interest on %s: %w", req.AccountNumber, err)
	}

	if events := acct.ClearEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, TopicInterestCredits, events...); err != nil {
			return dto.AccrueInterestResponse{}, fmt.Errorf("failed to publish events for %s: %w", req.AccountNumber, err)
		}
	}

	return dto.AccrueInterestResponse{
		AccountNumber: acct.Number(),
		Period:        req.Period,
		CreditDate:    creditDate,
		Amount:        amount,
	}, nil
}
