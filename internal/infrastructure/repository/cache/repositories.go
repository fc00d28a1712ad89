package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	basecache "github.com/codescribler/playerprofile-sub000/internal/platform/cache"
)

// PlayerRepository caches profile reads in front of a slower store. This
// service never writes player data, so entries only need to age out by TTL.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]player.Player, error) {
	key := "player:owner:" + ownerUserID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByOwner(ctx, ownerUserID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListPositionsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]player.Position, error) {
	key := "player:positions:" + idsKey(playerIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.ListPositionsByPlayerIDs(ctx, playerIDs)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string][]player.Position)
	out := make(map[string][]player.Position, len(items))
	for id, positions := range items {
		out[id] = append([]player.Position(nil), positions...)
	}

	return out, nil
}

func (r *PlayerRepository) ListTeamsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]player.Team, error) {
	key := "player:teams:" + idsKey(playerIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.ListTeamsByPlayerIDs(ctx, playerIDs)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string][]player.Team)
	out := make(map[string][]player.Team, len(items))
	for id, teams := range items {
		out[id] = append([]player.Team(nil), teams...)
	}

	return out, nil
}

func (r *PlayerRepository) ListAbilitiesByPlayerIDs(ctx context.Context, playerIDs []string) (map[string]player.Abilities, error) {
	key := "player:abilities:" + idsKey(playerIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.ListAbilitiesByPlayerIDs(ctx, playerIDs)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string]player.Abilities)
	out := make(map[string]player.Abilities, len(items))
	for id, abilities := range items {
		out[id] = abilities
	}

	return out, nil
}

func idsKey(playerIDs []string) string {
	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
