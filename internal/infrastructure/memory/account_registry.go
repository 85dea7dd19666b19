// Package memory holds the in-process infrastructure for a single banking
// session: the account registry and the event publisher. Nothing survives
// the process.
package memory

import (
	"context"

	"github.com/awesomegic/bankledger/internal/domain/model"
)

// AccountRegistry owns every account of the session, keyed by the external
// account number. The session is single-threaded; the registry hands out
// live aggregate pointers and callers mutate them directly.
type AccountRegistry struct {
	accounts map[string]*model.Account
}

// NewAccountRegistry creates an empty registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{accounts: make(map[string]*model.Account)}
}

// FindOrCreate returns the account for a number, creating an empty one the
// first time the number is seen.
func (r *AccountRegistry) FindOrCreate(_ context.Context, number string) (*model.Account, error) {
	if acct, ok := r.accounts[number]; ok {
		return acct, nil
	}
	acct, err := model.NewAccount(number)
	if err != nil {
		return nil, err
	}
	r.accounts[number] = acct
	return acct, nil
}

// Len returns the number of accounts created so far.
func (r *AccountRegistry) Len() int {
	return len(r.accounts)
}
