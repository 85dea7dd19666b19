package usecase

import (
	"context"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/model"
)

// ListInterestRules returns all rules ascending by effective date, for the
// rule table rendering after a define.
type ListInterestRules struct {
	rules *model.RuleTable
}

func NewListInterestRules(rules *model.RuleTable) *ListInterestRules {
	return &ListInterestRules{rules: rules}
}

func (uc *ListInterestRules) Execute(_ context.Context) []dto.InterestRuleResponse {
	ordered := uc.rules.RulesOrderedByDate()
	out := make([]dto.InterestRuleResponse, 0, len(ordered))
	for _, rule := range ordered {
		out = append(out, dto.InterestRuleResponse{
			EffectiveDate: rule.EffectiveDate(),
			RuleID:        rule.RuleID(),
			RatePercent:   rule.Rate().Percent(),
		})
	}
	return out
}
