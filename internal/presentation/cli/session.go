// Package cli is the console presentation layer: the menu loop, input
// parsing and table rendering. It is peripheral glue around the application
// usecases; no business rule lives here.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/awesomegic/bankledger/internal/application/dto"
	"github.com/awesomegic/bankledger/internal/application/usecase"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/valueobject"
)

// Session drives one interactive banking session over a reader/writer pair.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger
	bankName string

	recordTxn  *usecase.RecordTransaction
	defineRule *usecase.DefineInterestRule
	listRules  *usecase.ListInterestRules
	accrue     *usecase.AccrueInterest
	statement  *usecase.GetStatement
}

// NewSession wires a session over the given streams and usecases.
func NewSession(
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	bankName string,
	recordTxn *usecase.RecordTransaction,
	defineRule *usecase.DefineInterestRule,
	listRules *usecase.ListInterestRules,
	accrue *usecase.AccrueInterest,
	statement *usecase.GetStatement,
) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
		bankName:   bankName,
		recordTxn:  recordTxn,
		defineRule: defineRule,
		listRules:  listRules,
		accrue:     accrue,
		statement:  statement,
	}
}

// Run loops on the main menu until the user quits or input ends.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome to %s! What would you like to do?\n", s.bankName)
	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok || ctx.Err() != nil {
			return ctx.Err()
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			s.inputTransactions(ctx)
		case "I":
			s.defineInterestRules(ctx)
		case "P":
			s.printStatement(ctx)
		case "Q":
			fmt.Fprintf(s.out, "Thank you for banking with %s.\n", s.bankName)
			fmt.Fprintln(s.out, "Have a nice day!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Is there anything else you'd like to do?")
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "[T] Input transactions")
	fmt.Fprintln(s.out, "[I] Define interest rules")
	fmt.Fprintln(s.out, "[P] Print statement")
	fmt.Fprintln(s.out, "[Q] Quit")
	fmt.Fprint(s.out, "> ")
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) inputTransactions(ctx context.Context) {
	fmt.Fprintln(s.out, "Please enter transaction details in <Date> <Account> <Type> <Amount> format")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")
	fmt.Fprint(s.out, "> ")
	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	input, err := parseTransactionInput(line)
	if err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	_, err = s.recordTxn.Execute(ctx, dto.RecordTransactionRequest{
		AccountNumber: input.Account,
		Date:          input.Date,
		Kind:          input.Kind,
		Amount:        input.Amount,
	})
	if err != nil {
		s.logger.Warn("transaction rejected", "account", input.Account, "error", err)
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	resp, err := s.statement.Execute(ctx, dto.StatementRequest{AccountNumber: input.Account})
	if err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}
	renderStatement(s.out, resp, false)
}

func (s *Session) defineInterestRules(ctx context.Context) {
	fmt.Fprintln(s.out, "Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")
	fmt.Fprint(s.out, "> ")
	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	input, err := parseRuleInput(line)
	if err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	if _, err := s.defineRule.Execute(ctx, dto.DefineInterestRuleRequest{
		EffectiveDate: input.EffectiveDate,
		RuleID:        input.RuleID,
		RatePercent:   input.Rate.Percent(),
	}); err != nil {
		s.logger.Warn("rule rejected", "rule", input.RuleID, "error", err)
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	renderRules(s.out, s.listRules.Execute(ctx))
}

func (s *Session) printStatement(ctx context.Context) {
	fmt.Fprintln(s.out, "Please enter account and month to generate the statement <Account> <Year><Month>")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")
	fmt.Fprint(s.out, "> ")
	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	input, err := parseStatementInput(line)
	if err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	if _, err := s.accrue.Execute(ctx, dto.AccrueInterestRequest{
		AccountNumber: input.Account,
		Period:        input.Period,
	}); err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}

	resp, err := s.statement.Execute(ctx, dto.StatementRequest{
		AccountNumber: input.Account,
		Period:        &input.Period,
	})
	if err != nil {
		fmt.Fprintln(s.out, messageFor(err))
		return
	}
	renderStatement(s.out, resp, true)
}

// messageFor maps domain and parse errors to the console wording.
func messageFor(err error) string {
	switch {
	case errors.Is(err, valueobject.ErrInvalidDateFormat):
		return "Invalid date format. Please use YYYYMMdd format."
	case errors.Is(err, valueobject.ErrInvalidAmountFormat):
		return "Amount must be a number with up to 2 decimal places. Please re-enter."
	case errors.Is(err, model.ErrNonPositiveAmount):
		return "Amount must be greater than zero. Please re-enter."
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Insufficient funds for withdrawal."
	case errors.Is(err, valueobject.ErrInvalidRateRange):
		return "Rate must be between 0 and 100. Please re-enter."
	case errors.Is(err, model.ErrUnknownTransactionKind):
		return "Invalid transaction type. Please use these transaction types: D for deposit, W for withdrawal"
	case errors.Is(err, ErrMalformedInput):
		return "Invalid Input Format! Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
