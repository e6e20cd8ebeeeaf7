package gibots

import (
	"context"
	"errors"
	"testing"

	"github.com/KapilPandit0408/gibots/services"
)

// mockHTTPAdapter records the RegisterRoutes call
type mockHTTPAdapter struct {
	registerCalled bool
	handler        DirectoryHandler
	basePath       string
	registerErr    error
}

func (m *mockHTTPAdapter) RegisterRoutes(handler DirectoryHandler, basePath string) error {
	m.registerCalled = true
	m.handler = handler
	m.basePath = basePath
	return m.registerErr
}

const testSecret = "secretshouldbeatleast32charslong"

func TestNew_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "missing secret",
			config:  Config{Store: services.NewFakeRecordStore(), HTTP: &mockHTTPAdapter{}},
			wantErr: ErrSecretRequired,
		},
		{
			name:    "short secret",
			config:  Config{Secret: "tooshort", Store: services.NewFakeRecordStore(), HTTP: &mockHTTPAdapter{}},
			wantErr: ErrSecretTooShort,
		},
		{
			name:    "missing store",
			config:  Config{Secret: testSecret, HTTP: &mockHTTPAdapter{}},
			wantErr: ErrStoreRequired,
		},
		{
			name:    "missing http adapter",
			config:  Config{Secret: testSecret, Store: services.NewFakeRecordStore()},
			wantErr: ErrHTTPAdapterRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			_, err := New(test.config)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Errorf("New() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	// Arrange
	http := &mockHTTPAdapter{}

	// Act
	g, err := New(Config{
		Secret: testSecret,
		Store:  services.NewFakeRecordStore(),
		HTTP:   http,
	})

	// Assert
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !http.registerCalled {
		t.Error("New() should register routes on the HTTP adapter")
	}
	if http.basePath != defaultBasePath {
		t.Errorf("base path = %q, want %q", http.basePath, defaultBasePath)
	}
	if http.handler != DirectoryHandler(g) {
		t.Error("New() should register itself as the directory handler")
	}
}

func TestNew_RegisterRoutesError(t *testing.T) {
	// Arrange
	http := &mockHTTPAdapter{registerErr: errors.New("route conflict")}

	// Act
	_, err := New(Config{
		Secret: testSecret,
		Store:  services.NewFakeRecordStore(),
		HTTP:   http,
	})

	// Assert
	if err == nil {
		t.Error("New() should propagate route registration failures")
	}
}

func TestGibots_EndToEnd(t *testing.T) {
	// Arrange
	ctx := context.Background()
	g, err := New(Config{
		Secret: testSecret,
		Store:  services.NewFakeRecordStore(),
		HTTP:   &mockHTTPAdapter{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Act: register, then walk the token through the gate path.
	result, err := g.Register(ctx, RegisterInput{
		FirstName: "Alice",
		Email:     "alice@example.com",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	accountID, err := g.VerifyToken(result.Token)

	// Assert
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if accountID != result.Account.ID {
		t.Errorf("VerifyToken() = %q, want %q", accountID, result.Account.ID)
	}

	page, err := g.List(ctx, 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Items) != 1 {
		t.Errorf("List() items = %d, want 1", len(page.Items))
	}
}

func TestGibots_VerifyToken_Failures(t *testing.T) {
	// Arrange: two instances with different secrets do not trust each other.
	g1, err := New(Config{Secret: testSecret, Store: services.NewFakeRecordStore(), HTTP: &mockHTTPAdapter{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g2, err := New(Config{Secret: "anothersecretthatisalso32chars!!", Store: services.NewFakeRecordStore(), HTTP: &mockHTTPAdapter{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	result, err := g1.Register(context.Background(), RegisterInput{Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		verify  func(string) (string, error)
		wantErr error
	}{
		{name: "missing token", token: "", verify: g1.VerifyToken, wantErr: ErrMissingToken},
		{name: "foreign secret", token: result.Token, verify: g2.VerifyToken, wantErr: ErrInvalidToken},
		{name: "garbage token", token: "garbage", verify: g1.VerifyToken, wantErr: ErrInvalidToken},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			_, err := test.verify(test.token)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Errorf("VerifyToken() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
