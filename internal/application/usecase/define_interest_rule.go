package usecase

import (
	"context"
	"fmt"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/port"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

const TopicInterestRules = "bankledger.interest.rules"

// DefineInterestRule validates and upserts one rule into the shared rule
// table. An invalid rate leaves the table unchanged.
type DefineInterestRule struct {
	rules     *model.RuleTable
	publisher port.EventPublisher
}

func NewDefineInterestRule(rules *model.RuleTable, publisher port.EventPublisher) *DefineInterestRule {
	return &DefineInterestRule{rules: rules, publisher: publisher}
}

func (uc *DefineInterestRule) Execute(ctx context.Context, req dto.DefineInterestRuleRequest) (dto.InterestRuleResponse, error) {
	rate, err := valueobject.NewRate(req.RatePercent)
	if err != nil {
		return dto.InterestRuleResponse{}, fmt.Errorf("invalid rate for rule %s: %w", req.RuleID, err)
	}

	rule, err := model.NewInterestRule(req.EffectiveDate, req.RuleID, rate)
	if err != nil {
		return dto.InterestRuleResponse{}, fmt.Errorf("invalid rule %s: %w", req.RuleID, err)
	}

	uc.rules.Upsert(rule)

	if events := uc.rules.ClearEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, TopicInterestRules, events...); err != nil {
			return dto.InterestRuleResponse{}, fmt.Errorf("failed to publish rule events: %w", err)
		}
	}

	return dto.InterestRuleResponse{
		EffectiveDate: rule.EffectiveDate(),
		RuleID:        rule.RuleID(),
		RatePercent:   rule.Rate().Percent(),
	}, nil
}
