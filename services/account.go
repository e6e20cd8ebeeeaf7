package services

import (
	"context"
	"fmt"

	"github.com/KapilPandit0408/gibots/core"
)

// AccountService orchestrates registration, login and profile updates on top
// of the record store, the password hasher and the token provider.
type AccountService struct {
	store  core.RecordStore
	hasher core.PasswordHandler
	tokens core.TokenProvider
}

func NewAccountService(store core.RecordStore, hasher core.PasswordHandler, tokens core.TokenProvider) *AccountService {
	return &AccountService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account from the given credentials and profile
// fields and signs the caller in. Email uniqueness is enforced by the record
// store at insert time, so a duplicate surfaces as core.ErrEmailTaken from
// the single write rather than from a separate existence check.
func (s *AccountService) Register(ctx context.Context, input core.RegisterInput) (*core.AuthResult, error) {
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	// Hash rejects passwords shorter than core.MinPasswordLength.
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &core.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Mobile:       input.Mobile,
		Address:      input.Address,
	}

	if err := s.store.Insert(ctx, account); err != nil {
		if err == core.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthResult{Token: token, Account: account}, nil
}

// Login authenticates an account by email and password and issues a fresh
// token. An unknown email and a wrong password report distinct errors,
// mirroring the public contract.
func (s *AccountService) Login(ctx context.Context, input core.LoginInput) (*core.AuthResult, error) {
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	account, err := s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		if err == core.ErrAccountNotFound {
			return nil, core.ErrNoSuchAccount
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	valid, err := s.hasher.Verify(input.Password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrBadCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthResult{Token: token, Account: account}, nil
}

// Update replaces the identified account's firstname, lastname, email and
// address and returns the updated record. Changing the email onto one held by
// another account fails with core.ErrEmailTaken via the same write-layer
// constraint registration relies on; an unknown id fails with
// core.ErrAccountNotFound.
func (s *AccountService) Update(ctx context.Context, id string, fields core.UpdateInput) (*core.Account, error) {
	account, err := s.store.UpdateByID(ctx, id, fields)
	if err != nil {
		if err == core.ErrAccountNotFound || err == core.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}
