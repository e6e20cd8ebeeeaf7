package gibots

import (
	"context"
	"fmt"
	"time"

	"github.com/KapilPandit0408/gibots/core"
	"github.com/KapilPandit0408/gibots/services"
)

// interfaces
type (
	RecordStore     = core.RecordStore
	TokenProvider   = core.TokenProvider
	PasswordHandler = core.PasswordHandler

	HTTPAdapter      = core.HTTPAdapter
	DirectoryHandler = core.DirectoryHandler
)

// structs
type (
	Account       = core.Account
	Page          = core.Page
	Filter        = core.Filter
	RegisterInput = core.RegisterInput
	LoginInput    = core.LoginInput
	UpdateInput   = core.UpdateInput
	AuthResult    = core.AuthResult
)

const (
	defaultBasePath  = "/api/users"
	defaultTokenTTL  = 24 * time.Hour
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2      = core.NewArgon2
	NewTokenSigner = core.NewTokenSigner
	EscapePattern  = core.EscapePattern
)

var (
	ErrEmailTaken      = core.ErrEmailTaken
	ErrAccountNotFound = core.ErrAccountNotFound
	ErrNoSuchAccount   = core.ErrNoSuchAccount
	ErrBadCredentials  = core.ErrBadCredentials
)

var (
	ErrMissingToken = core.ErrMissingToken
	ErrInvalidToken = core.ErrInvalidToken
	ErrTokenExpired = core.ErrTokenExpired
)

var (
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrPasswordTooShort = core.ErrPasswordTooShort
)

var (
	ErrStoreRequired       = core.ErrStoreRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

type Config struct {
	// Secret signs bearer tokens. Loaded once at startup and read-only after.
	Secret string

	Store core.RecordStore

	HTTP core.HTTPAdapter

	// Optional config
	PasswordHasher core.PasswordHandler
	TokenTTL       time.Duration
	BasePath       string
}

// Gibots wires the account and directory services behind a single
// DirectoryHandler that HTTP adapters register routes against.
type Gibots struct {
	Accounts  *services.AccountService
	Directory *services.DirectoryService
	Tokens    core.TokenProvider
	BasePath  string
}

var _ core.DirectoryHandler = (*Gibots)(nil)

func New(config Config) (*Gibots, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = core.NewArgon2()
	}

	tokenTTL := config.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	tokens := core.NewTokenSigner(config.Secret, tokenTTL)

	g := &Gibots{
		Accounts:  services.NewAccountService(config.Store, passwordHasher, tokens),
		Directory: services.NewDirectoryService(config.Store),
		Tokens:    tokens,
		BasePath:  basePath,
	}

	if err := config.HTTP.RegisterRoutes(g, basePath); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Gibots) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	return g.Accounts.Register(ctx, input)
}

func (g *Gibots) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	return g.Accounts.Login(ctx, input)
}

func (g *Gibots) Update(ctx context.Context, id string, fields UpdateInput) (*Account, error) {
	return g.Accounts.Update(ctx, id, fields)
}

func (g *Gibots) List(ctx context.Context, page int) (*Page, error) {
	return g.Directory.List(ctx, page)
}

func (g *Gibots) Search(ctx context.Context, page int, search string) (*Page, error) {
	return g.Directory.Search(ctx, page, search)
}

// VerifyToken resolves a bearer token to the account id embedded in it.
// The auth gate in HTTP adapters calls this before any protected operation.
func (g *Gibots) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	return g.Tokens.Verify(token)
}
