package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/internal/domain/event"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
	"github.com/awesomegic/bankledger/internal/events"
)

// Account is the aggregate root for a single-branch bank account ledger.
// It owns the running balance, the append-only transaction history keyed by
// date, and a derived month index so statement generation never scans the
// full history. Accounts are created lazily on first transaction by the
// registry and mutated only through RecordTransaction.
type Account struct {
	events.Collector
	id           uuid.UUID
	number       string
	balance      decimal.Decimal
	transactions map[time.Time][]Transaction
	monthIndex   map[valueobject.StatementPeriod][]time.Time
	dates        []time.Time
	createdAt    time.Time
}

// NewAccount creates an empty account for an externally assigned number.
func NewAccount(number string) (*Account, error) {
	if number == "" {
		return nil, fmt.Errorf("account number is required")
	}

	acct := &Account{
		id:           uuid.New(),
		number:       number,
		balance:      decimal.Zero,
		transactions: make(map[time.Time][]Transaction),
		monthIndex:   make(map[valueobject.StatementPeriod][]time.Time),
		createdAt:    time.Now().UTC(),
	}
	acct.Record(event.NewAccountOpened(acct.id, number))
	return acct, nil
}

// RecordTransaction validates and applies one transaction. Deposits and
// withdrawals must be strictly positive; a withdrawal exceeding the current
// balance fails with ErrInsufficientFunds and leaves the ledger unchanged.
// Interest credits may be zero and carry an empty sequence id.
func (a *Account) RecordTransaction(kind Kind, date time.Time, amount decimal.Decimal) (Transaction, error) {
	date = valueobject.TruncateToDay(date)

	switch kind {
	case KindDeposit, KindWithdrawal:
		if !amount.IsPositive() {
			return Transaction{}, fmt.Errorf("%w: got %s", ErrNonPositiveAmount, amount)
		}
	case KindInterest:
		if amount.IsNegative() {
			return Transaction{}, fmt.Errorf("%w: interest credit %s is negative", ErrNonPositiveAmount, amount)
		}
	default:
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, kind)
	}

	newBalance := a.balance
	if kind == KindWithdrawal {
		if amount.GreaterThan(a.balance) {
			return Transaction{}, fmt.Errorf("%w: balance %s, requested %s",
				ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
		}
		newBalance = a.balance.Sub(amount)
	} else {
		newBalance = a.balance.Add(amount)
	}

	sequenceID := ""
	if kind != KindInterest {
		sequenceID = fmt.Sprintf("%s-%02d", valueobject.FormatDate(date), len(a.transactions[date])+1)
	}

	txn := Transaction{
		date:         date,
		sequenceID:   sequenceID,
		kind:         kind,
		amount:       amount,
		balanceAfter: newBalance,
	}

	if len(a.transactions[date]) == 0 {
		a.indexDate(date)
	}
	a.transactions[date] = append(a.transactions[date], txn)
	a.balance = newBalance

	if kind == KindInterest {
		period := valueobject.StatementPeriodOf(date)
		a.Record(event.NewInterestCredited(a.id, a.number, period.String(), date, amount))
	} else {
		a.Record(event.NewTransactionRecorded(a.id, a.number, sequenceID, string(kind), date, amount, newBalance))
	}

	return txn, nil
}

// indexDate inserts a newly seen date into the sorted date list and the
// month index.
func (a *Account) indexDate(date time.Time) {
	i := sort.Search(len(a.dates), func(i int) bool { return !a.dates[i].Before(date) })
	a.dates = append(a.dates, time.Time{})
	copy(a.dates[i+1:], a.dates[i:])
	a.dates[i] = date

	period := valueobject.StatementPeriodOf(date)
	monthDates := a.monthIndex[period]
	j := sort.Search(len(monthDates), func(i int) bool { return !monthDates[i].Before(date) })
	monthDates = append(monthDates, time.Time{})
	copy(monthDates[j+1:], monthDates[j:])
	monthDates[j] = date
	a.monthIndex[period] = monthDates
}

// TransactionsForPeriod returns the transactions of one statement month,
// keyed by date with insertion order preserved within a date. The result is
// a copy; mutating it does not affect the ledger.
func (a *Account) TransactionsForPeriod(period valueobject.StatementPeriod) map[time.Time][]Transaction {
	out := make(map[time.Time][]Transaction, len(a.monthIndex[period]))
	for _, date := range a.monthIndex[period] {
		out[date] = append([]Transaction(nil), a.transactions[date]...)
	}
	return out
}

// AllTransactions returns the full history keyed by date, as a copy.
func (a *Account) AllTransactions() map[time.Time][]Transaction {
	out := make(map[time.Time][]Transaction, len(a.transactions))
	for date, list := range a.transactions {
		out[date] = append([]Transaction(nil), list...)
	}
	return out
}

// DatesForPeriod returns the dates with activity in the period, ascending.
func (a *Account) DatesForPeriod(period valueobject.StatementPeriod) []time.Time {
	return append([]time.Time(nil), a.monthIndex[period]...)
}

// BalanceAsOf returns the end-of-day balance on the given date: the balance
// after the last transaction on the latest transaction date not after it.
// Zero if the account has no transactions up to that date.
func (a *Account) BalanceAsOf(date time.Time) decimal.Decimal {
	date = valueobject.TruncateToDay(date)
	i := sort.Search(len(a.dates), func(i int) bool { return a.dates[i].After(date) })
	if i == 0 {
		return decimal.Zero
	}
	list := a.transactions[a.dates[i-1]]
	return list[len(list)-1].BalanceAfter()
}

// InterestPostedFor reports whether an interest credit has already been
// recorded for the period, and its amount.
func (a *Account) InterestPostedFor(period valueobject.StatementPeriod) (decimal.Decimal, bool) {
	for _, txn := range a.transactions[period.EndDate()] {
		if txn.Kind() == KindInterest {
			return txn.Amount(), true
		}
	}
	return decimal.Zero, false
}

// Accessors
func (a *Account) ID() uuid.UUID            { return a.id }
func (a *Account) Number() string           { return a.number }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) CreatedAt() time.Time     { return a.createdAt }
