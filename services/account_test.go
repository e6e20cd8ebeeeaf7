package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KapilPandit0408/gibots/core"
)

const testSecret = "secretshouldbeatleast32charslong"

// fastHasher keeps argon2 cheap in tests without changing behavior.
func fastHasher() *core.Argon2 {
	return &core.Argon2{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  8,
		KeyLength:   16,
	}
}

func newAccountService() (*AccountService, *FakeRecordStore, core.TokenProvider) {
	store := NewFakeRecordStore()
	tokens := core.NewTokenSigner(testSecret, time.Hour)
	return NewAccountService(store, fastHasher(), tokens), store, tokens
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   core.RegisterInput
		wantErr error
	}{
		{
			name:    "missing email",
			input:   core.RegisterInput{Password: "hunter22"},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "missing password",
			input:   core.RegisterInput{Email: "alice@example.com"},
			wantErr: core.ErrPasswordRequired,
		},
		{
			name:    "password of four characters",
			input:   core.RegisterInput{Email: "alice@example.com", Password: "1234"},
			wantErr: core.ErrPasswordTooShort,
		},
		{
			name:    "password of five characters",
			input:   core.RegisterInput{Email: "alice@example.com", Password: "12345"},
			wantErr: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			svc, _, _ := newAccountService()

			// Act
			result, err := svc.Register(context.Background(), test.input)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil {
				if result.Token == "" {
					t.Error("Register() should issue a token")
				}
				if result.Account.ID == "" {
					t.Error("Register() should persist an account with an id")
				}
				if result.Account.PasswordHash == test.input.Password {
					t.Error("Register() must not store the raw password")
				}
			}
		})
	}
}

// Requirement: register followed by login yields a token resolving to the same account
func TestAccountService_RegisterThenLogin(t *testing.T) {
	// Arrange
	svc, _, tokens := newAccountService()
	input := core.RegisterInput{
		FirstName: "Alice",
		Email:     "alice@example.com",
		Password:  "hunter22",
		Mobile:    "555-0100",
	}

	// Act
	registered, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	loggedIn, err := svc.Login(context.Background(), core.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})

	// Assert
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.Account.ID != registered.Account.ID {
		t.Errorf("Login() account id = %q, want %q", loggedIn.Account.ID, registered.Account.ID)
	}
	accountID, err := tokens.Verify(loggedIn.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if accountID != registered.Account.ID {
		t.Errorf("token resolves to %q, want %q", accountID, registered.Account.ID)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	// Arrange
	svc, _, _ := newAccountService()
	input := core.RegisterInput{Email: "alice@example.com", Password: "hunter22"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// Act
	_, err := svc.Register(context.Background(), input)

	// Assert
	if !errors.Is(err, core.ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want %v", err, core.ErrEmailTaken)
	}
}

func TestAccountService_Login_Failures(t *testing.T) {
	// Arrange
	svc, _, _ := newAccountService()
	if _, err := svc.Register(context.Background(), core.RegisterInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name    string
		input   core.LoginInput
		wantErr error
	}{
		{
			name:    "missing email",
			input:   core.LoginInput{Password: "hunter22"},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "missing password",
			input:   core.LoginInput{Email: "alice@example.com"},
			wantErr: core.ErrPasswordRequired,
		},
		{
			name:    "unknown email",
			input:   core.LoginInput{Email: "bob@example.com", Password: "hunter22"},
			wantErr: core.ErrNoSuchAccount,
		},
		{
			name:    "wrong password",
			input:   core.LoginInput{Email: "alice@example.com", Password: "wrongpass"},
			wantErr: core.ErrBadCredentials,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			_, err := svc.Login(context.Background(), test.input)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestAccountService_Update(t *testing.T) {
	// Arrange
	svc, _, _ := newAccountService()
	registered, err := svc.Register(context.Background(), core.RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "hunter22",
		Mobile:    "555-0100",
		Address:   "1 Main St",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Act
	updated, err := svc.Update(context.Background(), registered.Account.ID, core.UpdateInput{
		FirstName: "Alicia",
		LastName:  "Smythe",
		Email:     "alicia@example.com",
		Address:   "2 Side St",
	})

	// Assert
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.FirstName != "Alicia" || updated.Email != "alicia@example.com" {
		t.Errorf("Update() did not replace profile fields: %+v", updated)
	}
	if updated.Mobile != "555-0100" {
		t.Errorf("Update() must leave mobile untouched, got %q", updated.Mobile)
	}
	if updated.PasswordHash == "" {
		t.Error("Update() must not clear the password hash")
	}
}

func TestAccountService_Update_Failures(t *testing.T) {
	// Arrange
	svc, _, _ := newAccountService()
	ctx := context.Background()
	first, _ := svc.Register(ctx, core.RegisterInput{Email: "alice@example.com", Password: "hunter22"})
	if _, err := svc.Register(ctx, core.RegisterInput{Email: "bob@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name    string
		id      string
		fields  core.UpdateInput
		wantErr error
	}{
		{
			name:    "unknown id",
			id:      "missing",
			fields:  core.UpdateInput{Email: "carol@example.com"},
			wantErr: core.ErrAccountNotFound,
		},
		{
			name:    "email held by another account",
			id:      first.Account.ID,
			fields:  core.UpdateInput{Email: "bob@example.com"},
			wantErr: core.ErrEmailTaken,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			_, err := svc.Update(ctx, test.id, test.fields)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
