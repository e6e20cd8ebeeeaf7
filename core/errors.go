package core

import "errors"

// Account errors
var (
	ErrEmailTaken      = errors.New("an account with this email already exists")      // 400, conflict keeps the source contract's status
	ErrAccountNotFound = errors.New("account not found")                              // 404 Not Found
	ErrNoSuchAccount   = errors.New("no account with this email has been registered") // 400
	ErrBadCredentials  = errors.New("invalid credentials")                            // 400
)

// Token errors
var (
	ErrMissingToken = errors.New("missing token") // 401
	ErrInvalidToken = errors.New("invalid token") // 401
	ErrTokenExpired = errors.New("token expired") // 401
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")                                   // 400
	ErrPasswordRequired = errors.New("password is required")                                // 400
	ErrPasswordTooShort = errors.New("the password needs to be at least 5 characters long") // 400
	ErrInvalidHash      = errors.New("malformed password hash")                             // 500
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired       = errors.New("record store is required") // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required") // 500
	ErrSecretRequired      = errors.New("secret is required")       // 500
	ErrSecretTooShort      = errors.New("secret too short")         // 500
)
