// Package memory implements the record store in process memory. It is meant
// for demos and tests; records do not survive a restart.
package memory

import (
	"context"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/KapilPandit0408/gibots"
)

type Store struct {
	mu       sync.RWMutex
	accounts []*gibots.Account // natural order = insertion order
	byID     map[string]*gibots.Account
	byEmail  map[string]*gibots.Account
}

var _ gibots.RecordStore = (*Store)(nil)

func New() *Store {
	return &Store{
		byID:    make(map[string]*gibots.Account),
		byEmail: make(map[string]*gibots.Account),
	}
}

func (s *Store) Insert(ctx context.Context, account *gibots.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[account.Email]; exists {
		return gibots.ErrEmailTaken
	}

	account.ID = uuid.NewString()
	s.accounts = append(s.accounts, account)
	s.byID[account.ID] = account
	s.byEmail[account.Email] = account
	return nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*gibots.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, gibots.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*gibots.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[email]
	if !ok {
		return nil, gibots.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) UpdateByID(ctx context.Context, id string, fields gibots.UpdateInput) (*gibots.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, gibots.ErrAccountNotFound
	}
	if other, exists := s.byEmail[fields.Email]; exists && other.ID != id {
		return nil, gibots.ErrEmailTaken
	}

	delete(s.byEmail, account.Email)
	account.FirstName = fields.FirstName
	account.LastName = fields.LastName
	account.Email = fields.Email
	account.Address = fields.Address
	s.byEmail[account.Email] = account
	return account, nil
}

func (s *Store) FindPage(ctx context.Context, f gibots.Filter, skip, limit int) ([]*gibots.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(f)
	if err != nil {
		return nil, err
	}
	if skip >= len(matched) {
		return []*gibots.Account{}, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (s *Store) Count(ctx context.Context, f gibots.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(f)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// match must be called with at least a read lock held.
func (s *Store) match(f gibots.Filter) ([]*gibots.Account, error) {
	if f.Pattern == "" {
		return s.accounts, nil
	}

	re, err := regexp.Compile("(?i)" + f.Pattern)
	if err != nil {
		return nil, err
	}

	matched := []*gibots.Account{}
	for _, account := range s.accounts {
		if re.MatchString(account.FirstName) || re.MatchString(account.LastName) ||
			re.MatchString(account.Email) || re.MatchString(account.Mobile) {
			matched = append(matched, account)
		}
	}
	return matched, nil
}
