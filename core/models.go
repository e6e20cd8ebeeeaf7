package core

// Account represents a user record in the directory
//
// This is the "identity" - who someone is
type Account struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
}

// RegisterInput contains the data needed to register a new account
type RegisterInput struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
}

// LoginInput contains the credentials for authentication
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateInput contains the profile fields replaceable after registration.
// Mobile is deliberately absent from the payload; it survives updates untouched.
type UpdateInput struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// AuthResult contains the authenticated account and its bearer token
type AuthResult struct {
	Token   string   `json:"token"` // The raw signed token
	Account *Account `json:"user"`
}
