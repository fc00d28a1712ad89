package search

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SavedSearch is a named criteria set owned by one account. Replaying a saved
// search runs its criteria verbatim against the current player pool.
type SavedSearch struct {
	ID          string
	OwnerUserID string
	Name        string
	Criteria    Criteria
	CreatedAt   time.Time
}

func (s SavedSearch) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("saved search id is required")
	}
	if s.OwnerUserID == "" {
		return fmt.Errorf("saved search owner user id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("saved search name is required")
	}

	return nil
}

// Repository persists saved searches.
type Repository interface {
	Insert(ctx context.Context, saved SavedSearch) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]SavedSearch, error)
	GetByID(ctx context.Context, id string) (SavedSearch, bool, error)
}
