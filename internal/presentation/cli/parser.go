package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

// ErrMalformedInput indicates a prompt answer with the wrong token count.
var ErrMalformedInput = errors.New("invalid input format")

type transactionInput struct {
	Date    time.Time
	Account string
	Kind    model.Kind
	Amount  decimal.Decimal
}

// parseTransactionInput parses "<Date> <Account> <Type> <Amount>".
// Input is uppercased wholesale, so account numbers and type codes are
// case-insensitive.
func parseTransactionInput(line string) (transactionInput, error) {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) != 4 {
		return transactionInput{}, fmt.Errorf("%w: expected <Date> <Account> <Type> <Amount>", ErrMalformedInput)
	}

	date, err := valueobject.ParseDate(fields[0])
	if err != nil {
		return transactionInput{}, err
	}
	kind, err := model.ParseKind(fields[2])
	if err != nil {
		return transactionInput{}, err
	}
	if kind == model.KindInterest {
		// Interest entries are system-generated, never typed in.
		return transactionInput{}, fmt.Errorf("%w: %q", model.ErrUnknownTransactionKind, fields[2])
	}
	amount, err := valueobject.ParseAmount(fields[3])
	if err != nil {
		return transactionInput{}, err
	}

	return transactionInput{
		Date:    date,
		Account: fields[1],
		Kind:    kind,
		Amount:  amount,
	}, nil
}

type ruleInput struct {
	EffectiveDate time.Time
	RuleID        string
	Rate          valueobject.Rate
}

// parseRuleInput parses "<Date> <RuleId> <Rate in %>".
func parseRuleInput(line string) (ruleInput, error) {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) != 3 {
		return ruleInput{}, fmt.Errorf("%w: expected <Date> <RuleId> <Rate in %%>", ErrMalformedInput)
	}

	date, err := valueobject.ParseDate(fields[0])
	if err != nil {
		return ruleInput{}, err
	}
	rate, err := valueobject.ParseRate(fields[2])
	if err != nil {
		return ruleInput{}, err
	}

	return ruleInput{
		EffectiveDate: date,
		RuleID:        fields[1],
		Rate:          rate,
	}, nil
}

type statementInput struct {
	Account string
	Period  valueobject.StatementPeriod
}

// parseStatementInput parses "<Account> <Year><Month>".
func parseStatementInput(line string) (statementInput, error) {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) != 2 {
		return statementInput{}, fmt.Errorf("%w: expected <Account> <Year><Month>", ErrMalformedInput)
	}

	period, err := valueobject.ParseStatementPeriod(fields[1])
	if err != nil {
		return statementInput{}, err
	}

	return statementInput{
		Account: fields[0],
		Period:  period,
	}, nil
}
