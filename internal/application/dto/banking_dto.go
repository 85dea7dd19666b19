package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

// --- Transaction DTOs ---

// RecordTransactionRequest is the input DTO for recording a deposit or
// withdrawal. Inputs are already parsed; validation of business rules
// happens in the domain.
type RecordTransactionRequest struct {
	AccountNumber string
	Date          time.Time
	Kind          model.Kind
	Amount        decimal.Decimal
}

// RecordTransactionResponse is the output DTO for a recorded transaction.
type RecordTransactionResponse struct {
	AccountNumber string
	TransactionID string
	Balance       decimal.Decimal
}

// --- Interest rule DTOs ---

// DefineInterestRuleRequest is the input DTO for upserting an interest rule.
type DefineInterestRuleRequest struct {
	EffectiveDate time.Time
	RuleID        string
	RatePercent   decimal.Decimal
}

// InterestRuleResponse is the output DTO for one interest rule.
type InterestRuleResponse struct {
	EffectiveDate time.Time
	RuleID        string
	RatePercent   decimal.Decimal
}

// --- Accrual DTOs ---

// AccrueInterestRequest is the input DTO for the monthly interest credit.
type AccrueInterestRequest struct {
	AccountNumber string
	Period        valueobject.StatementPeriod
}

// AccrueInterestResponse is the output DTO for the monthly interest credit.
// AlreadyPosted is true when the month had been accrued before and the
// existing credit was returned instead of a second one.
type AccrueInterestResponse struct {
	AccountNumber string
	Period        valueobject.StatementPeriod
	CreditDate    time.Time
	Amount        decimal.Decimal
	AlreadyPosted bool
}

// --- Statement DTOs ---

// StatementRequest is the input DTO for statement generation. A nil Period
// means the full history.
type StatementRequest struct {
	AccountNumber string
	Period        *valueobject.StatementPeriod
}

// StatementLine is one rendered-ready ledger entry.
type StatementLine struct {
	Date          time.Time
	TransactionID string
	Kind          model.Kind
	Amount        decimal.Decimal
	Balance       decimal.Decimal
}

// StatementResponse is the output DTO for statement generation, ordered by
// date then insertion order within a date.
type StatementResponse struct {
	AccountNumber string
	Lines         []StatementLine
}
