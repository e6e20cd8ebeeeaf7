package services

import (
	"context"
	"fmt"

	"github.com/KapilPandit0408/gibots/core"
)

// DirectoryService paginates and searches the account collection.
type DirectoryService struct {
	store core.RecordStore
}

func NewDirectoryService(store core.RecordStore) *DirectoryService {
	return &DirectoryService{store: store}
}

// List returns the requested page of accounts in the store's natural order.
// Page numbers below 1 are treated as page 1.
func (s *DirectoryService) List(ctx context.Context, page int) (*core.Page, error) {
	return s.page(ctx, core.Filter{}, page)
}

// Search behaves like List when search is empty. Otherwise the search text is
// escaped so every metacharacter matches literally, then applied as a
// case-insensitive substring match across firstname, lastname, email and
// mobile.
func (s *DirectoryService) Search(ctx context.Context, page int, search string) (*core.Page, error) {
	if search == "" {
		return s.List(ctx, page)
	}
	return s.page(ctx, core.Filter{Pattern: core.EscapePattern(search)}, page)
}

func (s *DirectoryService) page(ctx context.Context, f core.Filter, page int) (*core.Page, error) {
	page = core.NormalizePage(page)

	items, err := s.store.FindPage(ctx, f, core.Skip(page), core.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	count, err := s.store.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	if items == nil {
		items = []*core.Account{}
	}

	return &core.Page{
		Items:      items,
		Number:     page,
		TotalPages: core.TotalPages(count),
	}, nil
}
