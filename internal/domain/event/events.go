package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/internal/events"
)

const (
	AggregateTypeAccount   = "Account"
	AggregateTypeRuleTable = "InterestRuleTable"
)

// AccountOpened is emitted when an account is lazily created on its first
// transaction.
type AccountOpened struct {
	events.BaseEvent
	AccountID     uuid.UUID `json:"account_id"`
	AccountNumber string    `json:"account_number"`
}

func NewAccountOpened(accountID uuid.UUID, accountNumber string) AccountOpened {
	payload, _ := json.Marshal(struct {
		AccountID     uuid.UUID `json:"account_id"`
		AccountNumber string    `json:"account_number"`
	}{accountID, accountNumber})

	return AccountOpened{
		BaseEvent:     events.NewBaseEvent("ledger.account.opened", accountID, AggregateTypeAccount, payload),
		AccountID:     accountID,
		AccountNumber: accountNumber,
	}
}

// TransactionRecorded is emitted for every deposit or withdrawal applied to
// an account.
type TransactionRecorded struct {
	events.BaseEvent
	AccountID     uuid.UUID `json:"account_id"`
	AccountNumber string    `json:"account_number"`
	TransactionID string    `json:"transaction_id"`
	Kind          string    `json:"kind"`
	Date          time.Time `json:"date"`
	Amount        string    `json:"amount"`
	Balance       string    `json:"balance"`
}

func NewTransactionRecorded(accountID uuid.UUID, accountNumber, transactionID, kind string, date time.Time, amount, balance decimal.Decimal) TransactionRecorded {
	payload, _ := json.Marshal(struct {
		AccountID     uuid.UUID `json:"account_id"`
		AccountNumber string    `json:"account_number"`
		TransactionID string    `json:"transaction_id"`
		Kind          string    `json:"kind"`
		Date          time.Time `json:"date"`
		Amount        string    `json:"amount"`
		Balance       string    `json:"balance"`
	}{accountID, accountNumber, transactionID, kind, date, amount.String(), balance.String()})

	return TransactionRecorded{
		BaseEvent:     events.NewBaseEvent("ledger.transaction.recorded", accountID, AggregateTypeAccount, payload),
		AccountID:     accountID,
		AccountNumber: accountNumber,
		TransactionID: transactionID,
		Kind:          kind,
		Date:          date,
		Amount:        amount.String(),
		Balance:       balance.String(),
	}
}

// InterestCredited is emitted when a monthly interest credit is posted to an
// account.
type InterestCredited struct {
	events.BaseEvent
	AccountID     uuid.UUID `json:"account_id"`
	AccountNumber string    `json:"account_number"`
	Period        string    `json:"period"`
	Date          time.Time `json:"date"`
	Amount        string    `json:"amount"`
}

func NewInterestCredited(accountID uuid.UUID, accountNumber, period string, date time.Time, amount decimal.Decimal) InterestCredited {
	payload, _ := json.Marshal(struct {
		AccountID     uuid.UUID `json:"account_id"`
		AccountNumber string    `json:"account_number"`
		Period        string    `json:"period"`
		Date          time.Time `json:"date"`
		Amount        string    `json:"amount"`
	}{accountID, accountNumber, period, date, amount.String()})

	return InterestCredited{
		BaseEvent:     events.NewBaseEvent("ledger.interest.credited", accountID, AggregateTypeAccount, payload),
		AccountID:     accountID,
		AccountNumber: accountNumber,
		Period:        period,
		Date:          date,
		Amount:        amount.String(),
	}
}

// InterestRuleDefined is emitted when a rule is inserted into or overwrites
// the rule table.
type InterestRuleDefined struct {
	events.BaseEvent
	TableID       uuid.UUID `json:"table_id"`
	RuleID        string    `json:"rule_id"`
	EffectiveDate time.Time `json:"effective_date"`
	RatePercent   string    `json:"rate_percent"`
	Replaced      bool      `json:"replaced"`
}

func NewInterestRuleDefined(tableID uuid.UUID, ruleID string, effectiveDate time.Time, ratePercent decimal.Decimal, replaced bool) InterestRuleDefined {
	payload, _ := json.Marshal(struct {
		TableID       uuid.UUID `json:"table_id"`
		RuleID        string    `json:"rule_id"`
		EffectiveDate time.Time `json:"effective_date"`
		RatePercent   string    `json:"rate_percent"`
		Replaced      bool      `json:"replaced"`
	}{tableID, ruleID, effectiveDate, ratePercent.String(), replaced})

	return InterestRuleDefined{
		BaseEvent:     events.NewBaseEvent("ledger.interest.rule.defined", tableID, AggregateTypeRuleTable, payload),
		TableID:       tableID,
		RuleID:        ruleID,
		EffectiveDate: effectiveDate,
		RatePercent:   ratePercent.String(),
		Replaced:      replaced,
	}
}
