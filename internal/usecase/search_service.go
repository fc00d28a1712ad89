package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
	"github.com/panjf2000/ants/v2"
)

const (
	assemblyWorkerCount = 3
	topSkillCount       = 3
	positionUnspecified = "Unspecified"
)

// SkillRating is one highlighted skill on a result card.
type SkillRating struct {
	Name   string
	Rating int
}

// PlayerSummary is the result-card view of one matched player.
type PlayerSummary struct {
	ID              string
	Name            string
	Age             int
	PrimaryPosition string
	OtherPositions  []string
	ClubName        string
	LeagueName      string
	Location        string
	DistanceMiles   *float64
	Availability    string
	HeightCM        int
	PreferredFoot   string
	TopSkills       []SkillRating
	ThumbnailURL    string
}

type SearchService struct {
	finder     search.PlayerFinder
	playerRepo player.Repository
	geocoder   Geocoder
	now        func() time.Time
}

func NewSearchService(finder search.PlayerFinder, playerRepo player.Repository, geocoder Geocoder) *SearchService {
	return &SearchService{
		finder:     finder,
		playerRepo: playerRepo,
		geocoder:   geocoder,
		now:        time.Now,
	}
}

// Search runs criteria against the pool visible to the caller and returns
// assembled result cards. The postcode is geocoded up front so a failing
// geocoder fails the whole search instead of silently widening it.
func (s *SearchService) Search(ctx context.Context, principal user.Principal, criteria search.Criteria) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Search")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return nil, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}

	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()

	var center *geo.Point
	var radiusMiles float64
	if criteria.HasLocationFilter() {
		point, err := s.geocoder.Resolve(ctx, criteria.Basic.Postcode)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: postcode %s could not be resolved", ErrInvalidInput, criteria.Basic.Postcode)
			}
			return nil, fmt.Errorf("resolve search postcode: %w", err)
		}
		center = &point
		radiusMiles = criteria.Basic.RadiusMiles
	}

	query := search.Query{
		Criteria:    criteria,
		Visibility:  search.VisibilityFor(principal),
		Now:         now,
		Center:      center,
		RadiusMiles: radiusMiles,
	}

	players, err := s.finder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: search players: %v", ErrStorageFailure, err)
	}

	distances := make(map[string]float64, len(players))
	if center != nil {
		// The repository prefilters with a bounding box; the exact circle
		// test happens here. Players without coordinates never match a
		// location-filtered search.
		within := make([]player.Player, 0, len(players))
		for _, p := range players {
			lat, lon, ok := p.Coordinates()
			if !ok {
				continue
			}
			candidate := geo.Point{Latitude: lat, Longitude: lon}
			if !geo.WithinRadius(*center, candidate, radiusMiles) {
				continue
			}
			distances[p.ID] = geo.DistanceMiles(*center, candidate)
			within = append(within, p)
		}
		players = within
	}

	sortPlayers(players, criteria.Sort, distances, now)

	return s.assembleSummaries(ctx, players, distances, now)
}

// QuickSearch is the name-only shortcut used by the header search box.
func (s *SearchService) QuickSearch(ctx context.Context, principal user.Principal, name string) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.QuickSearch")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: search name is required", ErrInvalidInput)
	}

	return s.Search(ctx, principal, search.Criteria{
		Basic: &search.BasicCriteria{Name: name},
	})
}

// ListOwnPlayers returns the caller's own profiles regardless of publication
// state, in creation order.
func (s *SearchService) ListOwnPlayers(ctx context.Context, principal user.Principal) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.ListOwnPlayers")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return nil, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}

	players, err := s.playerRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: list players by owner: %v", ErrStorageFailure, err)
	}

	return s.assembleSummaries(ctx, players, nil, s.now().UTC())
}

// sortPlayers reorders results in place. Repositories return creation order;
// age and distance orderings are applied here with a stable sort so that
// ties keep that baseline order. A distance sort without a resolved center
// leaves the baseline untouched.
func sortPlayers(players []player.Player, order search.Sort, distances map[string]float64, now time.Time) {
	switch order {
	case search.SortAgeAsc:
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].AgeOn(now) < players[j].AgeOn(now)
		})
	case search.SortAgeDesc:
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].AgeOn(now) > players[j].AgeOn(now)
		})
	case search.SortDistance:
		if len(distances) == 0 {
			return
		}
		sort.SliceStable(players, func(i, j int) bool {
			return distances[players[i].ID] < distances[players[j].ID]
		})
	}
}

func (s *SearchService) assembleSummaries(ctx context.Context, players []player.Player, distances map[string]float64, now time.Time) ([]PlayerSummary, error) {
	if len(players) == 0 {
		return []PlayerSummary{}, nil
	}

	playerIDs := make([]string, 0, len(players))
	for _, p := range players {
		playerIDs = append(playerIDs, p.ID)
	}

	var (
		positionsByID map[string][]player.Position
		teamsByID     map[string][]player.Team
		abilitiesByID map[string]player.Abilities
	)

	pool, err := ants.NewPool(assemblyWorkerCount)
	if err != nil {
		return nil, fmt.Errorf("create assembly worker pool: %w", err)
	}
	defer pool.Release()

	loadErrs := make(chan error, assemblyWorkerCount)
	var workers sync.WaitGroup
	loads := []func(){
		func() {
			out, loadErr := s.playerRepo.ListPositionsByPlayerIDs(ctx, playerIDs)
			positionsByID = out
			loadErrs <- loadErr
		},
		func() {
			out, loadErr := s.playerRepo.ListTeamsByPlayerIDs(ctx, playerIDs)
			teamsByID = out
			loadErrs <- loadErr
		},
		func() {
			out, loadErr := s.playerRepo.ListAbilitiesByPlayerIDs(ctx, playerIDs)
			abilitiesByID = out
			loadErrs <- loadErr
		},
	}

	for _, load := range loads {
		load := load
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			load()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit assembly load to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(loadErrs)
	for loadErr := range loadErrs {
		if loadErr != nil {
			return nil, fmt.Errorf("%w: load player details: %v", ErrStorageFailure, loadErr)
		}
	}

	out := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		summary := PlayerSummary{
			ID:            p.ID,
			Name:          p.FullName(),
			Age:           p.AgeOn(now),
			Location:      p.LocationLabel(),
			Availability:  player.AvailabilityLabels[p.Availability],
			HeightCM:      p.HeightCM,
			PreferredFoot: string(p.PreferredFoot),
			ThumbnailURL:  p.ThumbnailURL,
			TopSkills:     topSkills(abilitiesByID[p.ID]),
		}

		summary.PrimaryPosition, summary.OtherPositions = splitPositions(positionsByID[p.ID])
		summary.ClubName, summary.LeagueName = primaryTeam(teamsByID[p.ID])

		if d, ok := distances[p.ID]; ok {
			distance := d
			summary.DistanceMiles = &distance
		}

		out = append(out, summary)
	}

	return out, nil
}

// splitPositions picks the primary position code and the remaining codes in
// their stored order. The primary flag wins; without one the first stored
// position is promoted, and a player with no positions shows a placeholder.
func splitPositions(positions []player.Position) (string, []string) {
	if len(positions) == 0 {
		return positionUnspecified, nil
	}

	ordered := append([]player.Position(nil), positions...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	primaryIdx := 0
	for i, pos := range ordered {
		if pos.IsPrimary {
			primaryIdx = i
			break
		}
	}

	others := make([]string, 0, len(ordered)-1)
	for i, pos := range ordered {
		if i == primaryIdx {
			continue
		}
		others = append(others, pos.Code)
	}
	if len(others) == 0 {
		others = nil
	}

	return ordered[primaryIdx].Code, others
}

func primaryTeam(teams []player.Team) (string, string) {
	if len(teams) == 0 {
		return "", ""
	}
	for _, t := range teams {
		if t.IsPrimary {
			return t.ClubName, t.LeagueName
		}
	}
	return teams[0].ClubName, teams[0].LeagueName
}

// topSkills returns the highest-rated assessed skills, ties broken by name
// so cards render deterministically.
func topSkills(abilities player.Abilities) []SkillRating {
	if len(abilities.Ratings) == 0 {
		return nil
	}

	ranked := make([]SkillRating, 0, len(abilities.Ratings))
	for name, rating := range abilities.Ratings {
		ranked = append(ranked, SkillRating{Name: name, Rating: rating})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topSkillCount {
		ranked = ranked[:topSkillCount]
	}
	return ranked
}
