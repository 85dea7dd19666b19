package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the transaction type code as it appears on statements.
type Kind string

const (
	KindDeposit    Kind = "D"
	KindWithdrawal Kind = "W"
	KindInterest   Kind = "I"
)

// ParseKind parses a transaction type code, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(s)) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	case KindInterest:
		return KindInterest, nil
	default:
		return "", fmt.Errorf("%w: %q (use D for deposit, W for withdrawal)", ErrUnknownTransactionKind, s)
	}
}

// Transaction is an immutable ledger entry. sequenceID is empty for interest
// credits and "YYYYMMDD-nn" otherwise, where nn is the 1-based per-date
// running counter.
type Transaction struct {
	date         time.Time
	sequenceID   string
	kind         Kind
	amount       decimal.Decimal
	balanceAfter decimal.Decimal
}

func (t Transaction) Date() time.Time               { return t.date }
func (t Transaction) SequenceID() string            { return t.sequenceID }
func (t Transaction) Kind() Kind                    { return t.kind }
func (t Transaction) Amount() decimal.Decimal       { return t.amount }
func (t Transaction) BalanceAfter() decimal.Decimal { return t.balanceAfter }
