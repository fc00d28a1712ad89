package player

import "context"

// Repository describes player persistence needs from use cases. Search over
// criteria lives in the search domain; this interface covers direct reads.
type Repository interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]Player, error)
	ListPositionsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]Position, error)
	ListTeamsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]Team, error)
	ListAbilitiesByPlayerIDs(ctx context.Context, playerIDs []string) (map[string]Abilities, error)
}
