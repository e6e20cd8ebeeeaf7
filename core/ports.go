package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT (Record store operations)
// ============================================

// Filter narrows record-store reads. Pattern is a regular-expression source
// whose metacharacters have already been escaped by EscapePattern; an empty
// Pattern matches every account. Stores apply it case-insensitively as an
// unanchored OR match across firstname, lastname, email and mobile.
type Filter struct {
	Pattern string
}

// RecordStore defines account persistence operations.
//
// Insert assigns the account ID and must enforce email uniqueness at the
// write layer, returning ErrEmailTaken on a duplicate. UpdateByID carries the
// same uniqueness guarantee and returns ErrAccountNotFound for an unknown id.
// FindPage returns up to limit records starting at skip, in the store's
// natural order.
type RecordStore interface {
	Insert(ctx context.Context, a *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	UpdateByID(ctx context.Context, id string, fields UpdateInput) (*Account, error)
	FindPage(ctx context.Context, f Filter, skip, limit int) ([]*Account, error)
	Count(ctx context.Context, f Filter) (int, error)
}

// ============================================
// TOKEN PORT
// ============================================

// TokenProvider issues and verifies stateless bearer tokens. Verify returns
// the account id embedded in a valid token; it does not check that the
// account still exists.
type TokenProvider interface {
	Issue(accountID string) (string, error)
	Verify(token string) (string, error)
}

// ============================================
// DIRECTORY HANDLER (for HTTP adapters)
// ============================================

// DirectoryHandler provides the directory operations for HTTP adapters.
// Register and Login are public; Update, List and Search must only run
// behind the adapter's auth gate, which uses VerifyToken.
type DirectoryHandler interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Update(ctx context.Context, id string, fields UpdateInput) (*Account, error)
	List(ctx context.Context, page int) (*Page, error)
	Search(ctx context.Context, page int, search string) (*Page, error)
	VerifyToken(token string) (string, error)
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(handler DirectoryHandler, basePath string) error
}
