package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/platform/id"
)

type SavedSearchService struct {
	savedRepo search.Repository
	searcher  *SearchService
	idGen     id.Generator
	now       func() time.Time
}

func NewSavedSearchService(savedRepo search.Repository, searcher *SearchService, idGen id.Generator) *SavedSearchService {
	return &SavedSearchService{
		savedRepo: savedRepo,
		searcher:  searcher,
		idGen:     idGen,
		now:       time.Now,
	}
}

// Save stores a named criteria set for later replay. Criteria are normalized
// before storage so a replay compiles to exactly the query that was saved.
func (s *SavedSearchService) Save(ctx context.Context, principal user.Principal, name string, criteria search.Criteria) (search.SavedSearch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SavedSearchService.Save")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return search.SavedSearch{}, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return search.SavedSearch{}, fmt.Errorf("%w: saved search name is required", ErrInvalidInput)
	}

	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return search.SavedSearch{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	searchID, err := s.idGen.NewID()
	if err != nil {
		return search.SavedSearch{}, fmt.Errorf("generate saved search id: %w", err)
	}

	saved := search.SavedSearch{
		ID:          searchID,
		OwnerUserID: principal.UserID,
		Name:        name,
		Criteria:    criteria,
		CreatedAt:   s.now().UTC(),
	}
	if err := saved.Validate(); err != nil {
		return search.SavedSearch{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.savedRepo.Insert(ctx, saved); err != nil {
		return search.SavedSearch{}, fmt.Errorf("%w: insert saved search: %v", ErrStorageFailure, err)
	}

	return saved, nil
}

// List returns the caller's saved searches, newest first.
func (s *SavedSearchService) List(ctx context.Context, principal user.Principal) ([]search.SavedSearch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SavedSearchService.List")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return nil, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}

	items, err := s.savedRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: list saved searches: %v", ErrStorageFailure, err)
	}

	return items, nil
}

// Get loads one saved search. Callers may only read their own searches.
func (s *SavedSearchService) Get(ctx context.Context, principal user.Principal, searchID string) (search.SavedSearch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SavedSearchService.Get")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return search.SavedSearch{}, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}
	searchID = strings.TrimSpace(searchID)
	if searchID == "" {
		return search.SavedSearch{}, fmt.Errorf("%w: saved search id is required", ErrInvalidInput)
	}

	saved, exists, err := s.savedRepo.GetByID(ctx, searchID)
	if err != nil {
		return search.SavedSearch{}, fmt.Errorf("%w: get saved search: %v", ErrStorageFailure, err)
	}
	if !exists {
		return search.SavedSearch{}, fmt.Errorf("%w: saved search=%s", ErrNotFound, searchID)
	}
	if saved.OwnerUserID != principal.UserID {
		return search.SavedSearch{}, fmt.Errorf("%w: saved search=%s", ErrAccessDenied, searchID)
	}

	return saved, nil
}

// Run replays a saved search against the current player pool.
func (s *SavedSearchService) Run(ctx context.Context, principal user.Principal, searchID string) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SavedSearchService.Run")
	defer span.End()

	saved, err := s.Get(ctx, principal, searchID)
	if err != nil {
		return nil, err
	}

	return s.searcher.Search(ctx, principal, saved.Criteria)
}
