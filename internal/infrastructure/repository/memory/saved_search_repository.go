package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
)

type SavedSearchRepository struct {
	mu   sync.RWMutex
	byID map[string]search.SavedSearch
}

func NewSavedSearchRepository() *SavedSearchRepository {
	return &SavedSearchRepository{
		byID: make(map[string]search.SavedSearch),
	}
}

func (r *SavedSearchRepository) Insert(_ context.Context, saved search.SavedSearch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[saved.ID] = saved
	return nil
}

func (r *SavedSearchRepository) ListByOwner(_ context.Context, ownerUserID string) ([]search.SavedSearch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]search.SavedSearch, 0, 4)
	for _, saved := range r.byID {
		if saved.OwnerUserID == ownerUserID {
			out = append(out, saved)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *SavedSearchRepository) GetByID(_ context.Context, id string) (search.SavedSearch, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved, ok := r.byID[id]
	return saved, ok, nil
}
