package search

import (
	"context"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
)

// Visibility scopes a search to the caller's view of the player pool.
// Exactly one of the two modes is active.
type Visibility struct {
	PublishedOnly bool
	OwnerUserID   string
}

// VisibilityFor derives the scope from the caller's role: players and admins
// search their own records, everyone else searches the published pool.
func VisibilityFor(p user.Principal) Visibility {
	if p.ManagesOwnPlayers() {
		return Visibility{OwnerUserID: p.UserID}
	}
	return Visibility{PublishedOnly: true}
}

// Query is a fully resolved search: criteria plus visibility scope and the
// geocoded reference point, when a location filter is active. Center is set
// before the query runs; repositories never geocode.
type Query struct {
	Criteria    Criteria
	Visibility  Visibility
	Now         time.Time
	Center      *geo.Point
	RadiusMiles float64
}

// PlayerFinder runs a compiled query against the player pool. Results come
// back in profile-creation order; age and distance sorting happen upstream.
type PlayerFinder interface {
	Search(ctx context.Context, q Query) ([]player.Player, error)
}
