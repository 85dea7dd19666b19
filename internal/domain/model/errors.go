package model

import "errors"

var (
	// ErrInsufficientFunds rejects a withdrawal that would push the balance
	// below zero. The ledger is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")

	// ErrNonPositiveAmount rejects deposits and withdrawals of zero or
	// negative amounts.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrUnknownTransactionKind rejects transaction type codes other than
	// D, W and I.
	ErrUnknownTransactionKind = errors.New("unknown transaction type")
)
