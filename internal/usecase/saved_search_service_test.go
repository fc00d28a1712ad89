package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/memory"
	"github.com/codescribler/playerprofile-sub000/internal/platform/id"
)

func newTestSavedSearchService() (*SavedSearchService, *memory.SavedSearchRepository) {
	savedRepo := memory.NewSavedSearchRepository()
	svc := NewSavedSearchService(savedRepo, newTestSearchService(westminsterGeocoder()), id.NewRandomGenerator())
	svc.now = func() time.Time { return searchTestNow }
	return svc, savedRepo
}

func TestSavedSearchService_SaveNormalizesCriteria(t *testing.T) {
	svc, _ := newTestSavedSearchService()

	saved, err := svc.Save(t.Context(), scoutPrincipal(), "  Strikers near me  ", search.Criteria{
		Playing: &search.PlayingCriteria{Positions: []string{" st "}},
		Skills:  map[string]int{"finishing": 0},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if saved.ID == "" || saved.Name != "Strikers near me" {
		t.Fatalf("unexpected saved search: %+v", saved)
	}
	if saved.Criteria.Playing.Positions[0] != "ST" {
		t.Fatalf("criteria not normalized: %+v", saved.Criteria)
	}
	if saved.Criteria.Skills != nil {
		t.Fatalf("zero-threshold skill must be dropped: %+v", saved.Criteria.Skills)
	}
}

func TestSavedSearchService_SaveRejectsInvalidCriteria(t *testing.T) {
	svc, _ := newTestSavedSearchService()

	_, err := svc.Save(t.Context(), scoutPrincipal(), "bad", search.Criteria{
		Skills: map[string]int{"juggling": 5},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Save(t.Context(), scoutPrincipal(), "   ", search.Criteria{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestSavedSearchService_ListIsScopedToOwner(t *testing.T) {
	svc, _ := newTestSavedSearchService()

	if _, err := svc.Save(t.Context(), scoutPrincipal(), "mine", search.Criteria{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	other := user.Principal{UserID: "user-other", Role: user.RoleCoach}
	if _, err := svc.Save(t.Context(), other, "theirs", search.Criteria{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	items, err := svc.List(t.Context(), scoutPrincipal())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "mine" {
		t.Fatalf("unexpected list: %+v", items)
	}
}

func TestSavedSearchService_GetEnforcesOwnership(t *testing.T) {
	svc, _ := newTestSavedSearchService()

	saved, err := svc.Save(t.Context(), scoutPrincipal(), "mine", search.Criteria{})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	other := user.Principal{UserID: "user-other", Role: user.RoleCoach}
	if _, err := svc.Get(t.Context(), other, saved.ID); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}

	if _, err := svc.Get(t.Context(), scoutPrincipal(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSavedSearchService_RunReplaysAgainstCurrentPool(t *testing.T) {
	svc, _ := newTestSavedSearchService()

	saved, err := svc.Save(t.Context(), scoutPrincipal(), "strikers", search.Criteria{
		Playing: &search.PlayingCriteria{Positions: []string{"ST"}},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	results, err := svc.Run(t.Context(), scoutPrincipal(), saved.ID)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001", "ply-003")

	// The replay is scoped to the caller, not the criteria: the same saved
	// search run by a player account searches their own records instead.
	if _, err := svc.Run(t.Context(), user.Principal{UserID: "user-other", Role: user.RolePlayer}, saved.ID); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for foreign saved search, got %v", err)
	}
}
