package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/awesomegic/bankledger/internal/domain/event"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
	"github.com/awesomegic/bankledger/internal/events"
)

// InterestRule is an immutable annual-rate rule effective from a given date
// until superseded by a later rule.
type InterestRule struct {
	effectiveDate time.Time
	ruleID        string
	rate          valueobject.Rate
}

// NewInterestRule creates a validated InterestRule.
func NewInterestRule(effectiveDate time.Time, ruleID string, rate valueobject.Rate) (InterestRule, error) {
	if effectiveDate.IsZero() {
		return InterestRule{}, fmt.Errorf("effective date is required")
	}
	if ruleID == "" {
		return InterestRule{}, fmt.Errorf("rule id is required")
	}
	if rate.IsZero() {
		return InterestRule{}, fmt.Errorf("%w: rate is not set", valueobject.ErrInvalidRateRange)
	}
	return InterestRule{
		effectiveDate: valueobject.TruncateToDay(effectiveDate),
		ruleID:        ruleID,
		rate:          rate,
	}, nil
}

func (r InterestRule) EffectiveDate() time.Time { return r.effectiveDate }
func (r InterestRule) RuleID() string           { return r.ruleID }
func (r InterestRule) Rate() valueobject.Rate   { return r.rate }
func (r InterestRule) IsZero() bool             { return r.ruleID == "" }

// RuleTable is the process-wide interest rate schedule: a sparse map from
// effective date to a single rule. Upserting a second rule on the same date
// overwrites the first. The table is shared session state, explicitly passed
// to the accrual engine rather than ambient.
type RuleTable struct {
	events.Collector
	id    uuid.UUID
	rules map[time.Time]InterestRule
	dates []time.Time
}

// NewRuleTable creates an empty rule table.
func NewRuleTable() *RuleTable {
	return &RuleTable{
		id:    uuid.New(),
		rules: make(map[time.Time]InterestRule),
	}
}

// Upsert inserts a rule, replacing any rule already effective on the same
// date (latest one kept).
func (t *RuleTable) Upsert(rule InterestRule) {
	date := rule.EffectiveDate()
	_, replaced := t.rules[date]
	if !replaced {
		i := sort.Search(len(t.dates), func(i int) bool { return !t.dates[i].Before(date) })
		t.dates = append(t.dates, time.Time{})
		copy(t.dates[i+1:], t.dates[i:])
		t.dates[i] = date
	}
	t.rules[date] = rule

	t.Record(event.NewInterestRuleDefined(t.id, rule.RuleID(), date, rule.Rate().Percent(), replaced))
}

// LatestAsOf returns the latest rule whose effective date is not after the
// given date. The second return is false when the table is empty or no rule
// qualifies; callers must treat that as a no-accrual span, not an error.
func (t *RuleTable) LatestAsOf(date time.Time) (InterestRule, bool) {
	date = valueobject.TruncateToDay(date)
	i := sort.Search(len(t.dates), func(i int) bool { return t.dates[i].After(date) })
	if i == 0 {
		return InterestRule{}, false
	}
	return t.rules[t.dates[i-1]], true
}

// RulesOrderedByDate returns all rules ascending by effective date.
func (t *RuleTable) RulesOrderedByDate() []InterestRule {
	out := make([]InterestRule, 0, len(t.dates))
	for _, date := range t.dates {
		out = append(out, t.rules[date])
	}
	return out
}

// EffectiveDatesWithin returns rule effective dates inside [start, end],
// ascending. Used by the accrual engine to split sub-periods on rate changes.
func (t *RuleTable) EffectiveDatesWithin(start, end time.Time) []time.Time {
	var out []time.Time
	for _, date := range t.dates {
		if date.Before(start) {
			continue
		}
		if date.After(end) {
			break
		}
		out = append(out, date)
	}
	return out
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int { return len(t.dates) }

// ID returns the table's aggregate identity.
func (t *RuleTable) ID() uuid.UUID { return t.id }
