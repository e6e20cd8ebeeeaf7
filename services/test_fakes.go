package services

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/KapilPandit0408/gibots/core"
)

// FakeRecordStore is a test-only fake implementing core.RecordStore. It keeps
// accounts in insertion order and exposes error fields for behavior injection.
type FakeRecordStore struct {
	mu        sync.RWMutex
	accounts  []*core.Account
	nextID    int
	insertErr error
	findErr   error
	pageErr   error
	countErr  error
}

func NewFakeRecordStore() *FakeRecordStore {
	return &FakeRecordStore{}
}

func (f *FakeRecordStore) Insert(ctx context.Context, a *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return core.ErrEmailTaken
		}
	}

	f.nextID++
	a.ID = fmt.Sprintf("acc-%d", f.nextID)
	f.accounts = append(f.accounts, a)
	return nil
}

func (f *FakeRecordStore) FindByID(ctx context.Context, id string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (f *FakeRecordStore) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (f *FakeRecordStore) UpdateByID(ctx context.Context, id string, fields core.UpdateInput) (*core.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.accounts {
		if a.ID != id && a.Email == fields.Email {
			return nil, core.ErrEmailTaken
		}
	}
	for _, a := range f.accounts {
		if a.ID == id {
			a.FirstName = fields.FirstName
			a.LastName = fields.LastName
			a.Email = fields.Email
			a.Address = fields.Address
			return a, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (f *FakeRecordStore) FindPage(ctx context.Context, filter core.Filter, skip, limit int) ([]*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.pageErr != nil {
		return nil, f.pageErr
	}

	matched, err := f.match(filter)
	if err != nil {
		return nil, err
	}
	if skip >= len(matched) {
		return nil, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (f *FakeRecordStore) Count(ctx context.Context, filter core.Filter) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.countErr != nil {
		return 0, f.countErr
	}
	matched, err := f.match(filter)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

func (f *FakeRecordStore) match(filter core.Filter) ([]*core.Account, error) {
	if filter.Pattern == "" {
		return f.accounts, nil
	}
	re, err := regexp.Compile("(?i)" + filter.Pattern)
	if err != nil {
		return nil, err
	}
	var out []*core.Account
	for _, a := range f.accounts {
		if re.MatchString(a.FirstName) || re.MatchString(a.LastName) ||
			re.MatchString(a.Email) || re.MatchString(a.Mobile) {
			out = append(out, a)
		}
	}
	return out, nil
}
