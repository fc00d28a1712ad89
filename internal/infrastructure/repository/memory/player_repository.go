package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
)

// PlayerRepository keeps the player pool in process. It mirrors the postgres
// repository's filter semantics so the search service behaves identically in
// tests and local runs.
type PlayerRepository struct {
	mu        sync.RWMutex
	players   []player.Player
	positions map[string][]player.Position
	teams     map[string][]player.Team
	abilities map[string]player.Abilities
}

func NewPlayerRepository(players []player.Player, positions []player.Position, teams []player.Team, abilities []player.Abilities) *PlayerRepository {
	positionsByID := make(map[string][]player.Position)
	for _, pos := range positions {
		positionsByID[pos.PlayerID] = append(positionsByID[pos.PlayerID], pos)
	}
	teamsByID := make(map[string][]player.Team)
	for _, t := range teams {
		teamsByID[t.PlayerID] = append(teamsByID[t.PlayerID], t)
	}
	abilitiesByID := make(map[string]player.Abilities)
	for _, a := range abilities {
		abilitiesByID[a.PlayerID] = a
	}

	ordered := append([]player.Player(nil), players...)
	sortByCreation(ordered)

	return &PlayerRepository{
		players:   ordered,
		positions: positionsByID,
		teams:     teamsByID,
		abilities: abilitiesByID,
	}
}

// Search applies the same predicate set the postgres compiler renders to SQL.
// Results come back in profile-creation order.
func (r *PlayerRepository) Search(_ context.Context, q search.Query) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if !r.matches(p, q) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) ListByOwner(_ context.Context, ownerUserID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, 4)
	for _, p := range r.players {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListPositionsByPlayerIDs(_ context.Context, playerIDs []string) (map[string][]player.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]player.Position, len(playerIDs))
	for _, id := range playerIDs {
		if rows, ok := r.positions[id]; ok {
			out[id] = append([]player.Position(nil), rows...)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListTeamsByPlayerIDs(_ context.Context, playerIDs []string) (map[string][]player.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]player.Team, len(playerIDs))
	for _, id := range playerIDs {
		if rows, ok := r.teams[id]; ok {
			out[id] = append([]player.Team(nil), rows...)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListAbilitiesByPlayerIDs(_ context.Context, playerIDs []string) (map[string]player.Abilities, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]player.Abilities, len(playerIDs))
	for _, id := range playerIDs {
		if a, ok := r.abilities[id]; ok {
			out[id] = a
		}
	}

	return out, nil
}

func (r *PlayerRepository) matches(p player.Player, q search.Query) bool {
	if q.Visibility.OwnerUserID != "" {
		if p.OwnerUserID != q.Visibility.OwnerUserID {
			return false
		}
	} else if q.Visibility.PublishedOnly && !p.IsPublished {
		return false
	}

	c := q.Criteria
	if c.Basic != nil && !r.matchesBasic(p, *c.Basic, q) {
		return false
	}
	if c.Physical != nil && !r.matchesPhysical(p, *c.Physical) {
		return false
	}
	if c.Playing != nil && !r.matchesPlaying(p, *c.Playing) {
		return false
	}
	for name, min := range c.Skills {
		rating, assessed := r.abilities[p.ID].Rating(name)
		if !assessed || rating < min {
			return false
		}
	}

	if q.Center != nil {
		lat, lon, ok := p.Coordinates()
		if !ok {
			return false
		}
		bounds := geo.BoundingBox(*q.Center, q.RadiusMiles)
		if lat < bounds.MinLatitude || lat > bounds.MaxLatitude ||
			lon < bounds.MinLongitude || lon > bounds.MaxLongitude {
			return false
		}
	}

	return true
}

func (r *PlayerRepository) matchesBasic(p player.Player, c search.BasicCriteria, q search.Query) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(p.FullName()), strings.ToLower(c.Name)) {
		return false
	}
	if c.AgeMin != nil && p.AgeOn(q.Now) < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && p.AgeOn(q.Now) > *c.AgeMax {
		return false
	}
	if c.Nationality != "" && !strings.EqualFold(p.Nationality, c.Nationality) {
		return false
	}
	if len(c.Availability) > 0 {
		found := false
		for _, a := range c.Availability {
			if p.Availability == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.WillingToRelocate != nil && p.WillingToRelocate != *c.WillingToRelocate {
		return false
	}

	return true
}

func (r *PlayerRepository) matchesPhysical(p player.Player, c search.PhysicalCriteria) bool {
	if c.MinHeightCM != nil && p.HeightCM < *c.MinHeightCM {
		return false
	}
	if c.MaxHeightCM != nil && p.HeightCM > *c.MaxHeightCM {
		return false
	}
	if c.PreferredFoot != nil && p.PreferredFoot != *c.PreferredFoot {
		return false
	}
	if c.MinWeakFoot != nil && p.WeakFootStrength < *c.MinWeakFoot {
		return false
	}

	abilities := r.abilities[p.ID]
	if c.MaxSprint10mSecs != nil {
		if abilities.Sprint10mSecs == nil || *abilities.Sprint10mSecs > *c.MaxSprint10mSecs {
			return false
		}
	}
	if c.MaxSprint30mSecs != nil {
		if abilities.Sprint30mSecs == nil || *abilities.Sprint30mSecs > *c.MaxSprint30mSecs {
			return false
		}
	}

	return true
}

func (r *PlayerRepository) matchesPlaying(p player.Player, c search.PlayingCriteria) bool {
	if len(c.Positions) > 0 {
		wanted := make(map[string]struct{}, len(c.Positions))
		for _, code := range c.Positions {
			wanted[code] = struct{}{}
		}
		found := false
		for _, pos := range r.positions[p.ID] {
			if _, ok := wanted[pos.Code]; !ok {
				continue
			}
			if c.PrimaryPositionOnly && !pos.IsPrimary {
				continue
			}
			found = true
			break
		}
		if !found {
			return false
		}
	}
	if c.MinYearsPlaying != nil && p.YearsPlaying < *c.MinYearsPlaying {
		return false
	}
	if c.LeagueName != "" {
		found := false
		for _, t := range r.teams[p.ID] {
			if strings.Contains(strings.ToLower(t.LeagueName), strings.ToLower(c.LeagueName)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.RepresentativeDistrict && !p.RepresentativeDistrict {
		return false
	}
	if c.RepresentativeCounty && !p.RepresentativeCounty {
		return false
	}

	return true
}

func sortByCreation(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})
}
