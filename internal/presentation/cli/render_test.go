package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := valueobject.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRenderStatement_WithBalance(t *testing.T) {
	resp := dto.StatementResponse{
		AccountNumber: "AC001",
		Lines: []dto.StatementLine{
			{Date: date(t, "20230601"), TransactionID: "20230601-01", Kind: model.KindDeposit,
				Amount: decimal.RequireFromString("150.00"), Balance: decimal.RequireFromString("250.00")},
			{Date: date(t, "20230626"), TransactionID: "20230626-01", Kind: model.KindWithdrawal,
				Amount: decimal.RequireFromString("20.00"), Balance: decimal.RequireFromString("230.00")},
			{Date: date(t, "20230626"), TransactionID: "20230626-02", Kind: model.KindWithdrawal,
				Amount: decimal.RequireFromString("100.00"), Balance: decimal.RequireFromString("130.00")},
			{Date: date(t, "20230630"), TransactionID: "", Kind: model.KindInterest,
				Amount: decimal.RequireFromString("0.39"), Balance: decimal.RequireFromString("130.39")},
		},
	}

	var buf strings.Builder
	renderStatement(&buf, resp, true)

	want := "Account: AC001\n" +
		"| Date     | Txn Id      | Type | Amount | Balance |\n" +
		"| 20230601 | 20230601-01 | D    | 150.00 |  250.00 |\n" +
		"| 20230626 | 20230626-01 | W    |  20.00 |  230.00 |\n" +
		"| 20230626 | 20230626-02 | W    | 100.00 |  130.00 |\n" +
		"| 20230630 |             | I    |   0.39 |  130.39 |\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderStatement_WithoutBalance(t *testing.T) {
	resp := dto.StatementResponse{
		AccountNumber: "AC001",
		Lines: []dto.StatementLine{
			{Date: date(t, "20230505"), TransactionID: "20230505-01", Kind: model.KindDeposit,
				Amount: decimal.RequireFromString("100.00"), Balance: decimal.RequireFromString("100.00")},
		},
	}

	var buf strings.Builder
	renderStatement(&buf, resp, false)

	want := "Account: AC001\n" +
		"| Date     | Txn Id      | Type | Amount |\n" +
		"| 20230505 | 20230505-01 | D    | 100.00 |\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderRules(t *testing.T) {
	rules := []dto.InterestRuleResponse{
		{EffectiveDate: date(t, "20230101"), RuleID: "RULE01", RatePercent: decimal.RequireFromString("1.95")},
		{EffectiveDate: date(t, "20230520"), RuleID: "RULE02", RatePercent: decimal.RequireFromString("1.90")},
		{EffectiveDate: date(t, "20230615"), RuleID: "RULE03", RatePercent: decimal.RequireFromString("2.20")},
	}

	var buf strings.Builder
	renderRules(&buf, rules)

	want := "Interest rules:\n" +
		"| Date     | RuleId | Rate (%) |\n" +
		"| 20230101 | RULE01 |     1.95 |\n" +
		"| 20230520 | RULE02 |     1.90 |\n" +
		"| 20230615 | RULE03 |     2.20 |\n"
	assert.Equal(t, want, buf.String())
}
