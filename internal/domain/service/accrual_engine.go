package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

var daysPerYear = decimal.NewFromInt(365)

// SubPeriod is one balance-constant, rate-constant span of a statement
// month. Start and End are both inclusive. Annualized is
// balance * rate% * days, i.e. the contribution before dividing by 365.
type SubPeriod struct {
	Start      time.Time
	End        time.Time
	Days       int
	Balance    decimal.Decimal
	RuleID     string
	Rate       decimal.Decimal
	Annualized decimal.Decimal
}

// AccrualEngine computes the monthly interest credit for an account ledger
// against the shared rule table. It is pure with respect to its inputs: it
// reads the ledger and the table and mutates neither.
type AccrualEngine struct{}

// NewAccrualEngine creates a new AccrualEngine.
func NewAccrualEngine() *AccrualEngine {
	return &AccrualEngine{}
}

// Schedule partitions the statement month into contiguous sub-periods whose
// end-of-day balance and applicable rate are both constant. Boundaries are
// the month start, every transaction date in the month, and every rule
// effective date falling inside the month after its first day. Every
// calendar day of the month belongs to exactly one sub-period; a transaction
// date accrues at that day's closing balance (the last transaction of the
// day wins), and days before the month's first transaction accrue at the
// balance carried into the month.
//
// A span with no qualifying rule carries an empty RuleID and a zero rate; it
// accrues nothing but is kept in the schedule so callers can see the
// uncovered days.
func (e *AccrualEngine) Schedule(acct *model.Account, rules *model.RuleTable, period valueobject.StatementPeriod) []SubPeriod {
	monthStart := period.StartDate()
	monthEnd := period.EndDate()

	boundaries := []time.Time{monthStart}
	boundaries = append(boundaries, acct.DatesForPeriod(period)...)
	boundaries = append(boundaries, rules.EffectiveDatesWithin(monthStart.AddDate(0, 0, 1), monthEnd)...)
	boundaries = sortedUnique(boundaries)

	schedule := make([]SubPeriod, 0, len(boundaries))
	for i, start := range boundaries {
		end := monthEnd
		if i+1 < len(boundaries) {
			end = boundaries[i+1].AddDate(0, 0, -1)
		}

		sp := SubPeriod{
			Start:      start,
			End:        end,
			Days:       valueobject.DaysBetweenInclusive(start, end),
			Balance:    acct.BalanceAsOf(start),
			Annualized: decimal.Zero,
		}
		if rule, ok := rules.LatestAsOf(start); ok {
			sp.RuleID = rule.RuleID()
			sp.Rate = rule.Rate().Percent()
			sp.Annualized = sp.Balance.
				Mul(rule.Rate().Fraction()).
				Mul(decimal.NewFromInt(int64(sp.Days)))
		}
		schedule = append(schedule, sp)
	}
	return schedule
}

// ComputeMonthlyInterest sums the annualized interest of every sub-period,
// divides by a fixed 365-day year (no leap adjustment) and rounds half-up to
// 2 decimal places. A month with no transactions and no applicable rule
// yields 0.00. The credit is dated on the last day of the month; recording
// it is the caller's concern.
func (e *AccrualEngine) ComputeMonthlyInterest(acct *model.Account, rules *model.RuleTable, period valueobject.StatementPeriod) decimal.Decimal {
	total := decimal.Zero
	for _, sp := range e.Schedule(acct, rules, period) {
		total = total.Add(sp.Annualized)
	}
	return total.Div(daysPerYear).Round(2)
}

// sortedUnique sorts dates ascending and drops duplicates.
func sortedUnique(dates []time.Time) []time.Time {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	out := dates[:0]
	for _, d := range dates {
		if len(out) == 0 || !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
