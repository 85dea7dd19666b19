package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

func mustRule(t *testing.T, date, id, percent string) model.InterestRule {
	t.Helper()
	rate, err := valueobject.ParseRate(percent)
	require.NoError(t, err)
	rule, err := model.NewInterestRule(mustDate(t, date), id, rate)
	require.NoError(t, err)
	return rule
}

func TestNewInterestRule_Validation(t *testing.T) {
	rate, err := valueobject.ParseRate("1.95")
	require.NoError(t, err)

	_, err = model.NewInterestRule(time.Time{}, "RULE01", rate)
	assert.Error(t, err)

	_, err = model.NewInterestRule(mustDate(t, "20230101"), "", rate)
	assert.Error(t, err)

	_, err = model.NewInterestRule(mustDate(t, "20230101"), "RULE01", valueobject.Rate{})
	assert.ErrorIs(t, err, valueobject.ErrInvalidRateRange)
}

func TestRuleTable_UpsertSameDateKeepsLatest(t *testing.T) {
	table := model.NewRuleTable()
	table.Upsert(mustRule(t, "20230520", "RULE02", "1.90"))
	table.Upsert(mustRule(t, "20230520", "RULE04", "2.50"))

	assert.Equal(t, 1, table.Len())
	rule, ok := table.LatestAsOf(mustDate(t, "20230520"))
	require.True(t, ok)
	assert.Equal(t, "RULE04", rule.RuleID())
	assert.Equal(t, "2.50", rule.Rate().String())
}

func TestRuleTable_LatestAsOf(t *testing.T) {
	table := model.NewRuleTable()

	_, ok := table.LatestAsOf(mustDate(t, "20230601"))
	assert.False(t, ok)

	table.Upsert(mustRule(t, "20230101", "RULE01", "1.95"))
	table.Upsert(mustRule(t, "20230520", "RULE02", "1.90"))
	table.Upsert(mustRule(t, "20230615", "RULE03", "2.20"))

	_, ok = table.LatestAsOf(mustDate(t, "20221231"))
	assert.False(t, ok, "no rule effective before the earliest")

	cases := map[string]string{
		"20230101": "RULE01",
		"20230519": "RULE01",
		"20230520": "RULE02",
		"20230614": "RULE02",
		"20230615": "RULE03",
		"20240101": "RULE03",
	}
	for date, want := range cases {
		rule, ok := table.LatestAsOf(mustDate(t, date))
		require.True(t, ok, "date %s", date)
		assert.Equal(t, want, rule.RuleID(), "date %s", date)
	}
}

func TestRuleTable_RulesOrderedByDate(t *testing.T) {
	table := model.NewRuleTable()
	table.Upsert(mustRule(t, "20230615", "RULE03", "2.20"))
	table.Upsert(mustRule(t, "20230101", "RULE01", "1.95"))
	table.Upsert(mustRule(t, "20230520", "RULE02", "1.90"))

	var ids []string
	for _, rule := range table.RulesOrderedByDate() {
		ids = append(ids, rule.RuleID())
	}
	assert.Equal(t, []string{"RULE01", "RULE02", "RULE03"}, ids)
}

func TestRuleTable_EffectiveDatesWithin(t *testing.T) {
	table := model.NewRuleTable()
	table.Upsert(mustRule(t, "20230101", "RULE01", "1.95"))
	table.Upsert(mustRule(t, "20230520", "RULE02", "1.90"))
	table.Upsert(mustRule(t, "20230615", "RULE03", "2.20"))

	got := table.EffectiveDatesWithin(mustDate(t, "20230602"), mustDate(t, "20230630"))
	assert.Equal(t, []time.Time{mustDate(t, "20230615")}, got)

	assert.Empty(t, table.EffectiveDatesWithin(mustDate(t, "20230701"), mustDate(t, "20230731")))

	// Bounds are inclusive on both ends.
	got = table.EffectiveDatesWithin(mustDate(t, "20230520"), mustDate(t, "20230615"))
	assert.Equal(t, []time.Time{mustDate(t, "20230520"), mustDate(t, "20230615")}, got)
}

func TestRuleTable_UpsertEvents(t *testing.T) {
	table := model.NewRuleTable()
	table.Upsert(mustRule(t, "20230520", "RULE02", "1.90"))
	table.Upsert(mustRule(t, "20230520", "RULE04", "2.50"))

	evts := table.ClearEvents()
	require.Len(t, evts, 2)
	for _, e := range evts {
		assert.Equal(t, "ledger.interest.rule.defined", e.EventType())
		assert.Equal(t, table.ID(), e.AggregateID())
	}
	assert.Empty(t, table.Events())
}
