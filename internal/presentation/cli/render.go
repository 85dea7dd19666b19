package cli

import (
	"fmt"
	"io"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

// renderStatement writes an account statement table. The balance column is
// shown on month statements and omitted on the echo after entering a
// transaction.
func renderStatement(w io.Writer, resp dto.StatementResponse, withBalance bool) {
	fmt.Fprintf(w, "Account: %s\n", resp.AccountNumber)
	if withBalance {
		fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount | Balance |")
	} else {
		fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount |")
	}
	for _, line := range resp.Lines {
		if withBalance {
			fmt.Fprintf(w, "| %s | %-11s | %-4s | %6s | %7s |\n",
				valueobject.FormatDate(line.Date), line.TransactionID, line.Kind,
				line.Amount.StringFixed(2), line.Balance.StringFixed(2))
		} else {
			fmt.Fprintf(w, "| %s | %-11s | %-4s | %6s |\n",
				valueobject.FormatDate(line.Date), line.TransactionID, line.Kind,
				line.Amount.StringFixed(2))
		}
	}
}

// renderRules writes the interest rule table, ascending by effective date.
func renderRules(w io.Writer, rules []dto.InterestRuleResponse) {
	fmt.Fprintln(w, "Interest rules:")
	fmt.Fprintln(w, "| Date     | RuleId | Rate (%) |")
	for _, rule := range rules {
		fmt.Fprintf(w, "| %s | %-6s | %8s |\n",
			valueobject.FormatDate(rule.EffectiveDate), rule.RuleID,
			rule.RatePercent.StringFixed(2))
	}
}
