package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/memory"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
)

var searchTestNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

type stubGeocoder struct {
	points map[string]geo.Point
	err    error
}

func (g stubGeocoder) Resolve(_ context.Context, postcode string) (geo.Point, error) {
	if g.err != nil {
		return geo.Point{}, g.err
	}
	point, ok := g.points[postcode]
	if !ok {
		return geo.Point{}, fmt.Errorf("%w: postcode %s", ErrNotFound, postcode)
	}
	return point, nil
}

func newTestSearchService(geocoder Geocoder) *SearchService {
	repo := memory.NewPlayerRepository(
		memory.SeedPlayers(),
		memory.SeedPositions(),
		memory.SeedTeams(),
		memory.SeedAbilities(),
	)
	svc := NewSearchService(repo, repo, geocoder)
	svc.now = func() time.Time { return searchTestNow }
	return svc
}

func westminsterGeocoder() stubGeocoder {
	return stubGeocoder{points: map[string]geo.Point{
		"SW1A 1AA": {Latitude: 51.5014, Longitude: -0.1419},
	}}
}

func scoutPrincipal() user.Principal {
	return user.Principal{UserID: "user-scout", Role: user.RoleScout}
}

func resultIDs(results []PlayerSummary) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func assertResultIDs(t *testing.T, results []PlayerSummary, want ...string) {
	t.Helper()
	got := resultIDs(results)
	if len(got) != len(want) {
		t.Fatalf("unexpected result ids:\nwant: %v\ngot:  %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected result ids:\nwant: %v\ngot:  %v", want, got)
		}
	}
}

func TestSearchService_EmptyCriteriaReturnsPublishedPool(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// Creation order; the unpublished draft stays hidden.
	assertResultIDs(t, results, "ply-001", "ply-002", "ply-003", "ply-005")
}

func TestSearchService_OwnerScopeSeesOwnDraftsOnly(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), user.Principal{UserID: memory.SeedOwnerDaniel, Role: user.RolePlayer}, search.Criteria{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	assertResultIDs(t, results, "ply-004")
}

func TestSearchService_PositionAndAgeFilter(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	criteria := search.Criteria{
		Basic:   &search.BasicCriteria{AgeMin: intPtr(13), AgeMax: intPtr(15)},
		Playing: &search.PlayingCriteria{Positions: []string{"ST"}},
	}
	results, err := svc.Search(t.Context(), scoutPrincipal(), criteria)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001", "ply-003")

	criteria.Playing.PrimaryPositionOnly = true
	results, err = svc.Search(t.Context(), scoutPrincipal(), criteria)
	if err != nil {
		t.Fatalf("primary-only search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001")
}

func TestSearchService_SkillThresholdIgnoresUnassessed(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Skills: map[string]int{"passing": 8},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// ply-002 rates 6 and ply-001 was never assessed for passing.
	assertResultIDs(t, results, "ply-003")
}

func TestSearchService_SprintMeasurementFilter(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	max10m := 1.9
	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Physical: &search.PhysicalCriteria{MaxSprint10mSecs: &max10m},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	assertResultIDs(t, results, "ply-003")
}

func TestSearchService_LocationFilterAndDistanceSort(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Postcode: "SW1A 1AA", RadiusMiles: 5},
		Sort:  search.SortDistance,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// Leeds is far outside the radius and ply-005 has no coordinates.
	assertResultIDs(t, results, "ply-001", "ply-002")

	if results[0].DistanceMiles == nil || *results[0].DistanceMiles > 0.1 {
		t.Fatalf("expected near-zero distance for the center player, got %+v", results[0].DistanceMiles)
	}
	if results[1].DistanceMiles == nil || math.Abs(*results[1].DistanceMiles-2.9) > 0.3 {
		t.Fatalf("unexpected distance annotation: %+v", results[1].DistanceMiles)
	}
}

func TestSearchService_RadiusBoundaryIsInclusive(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	center := geo.Point{Latitude: 51.5014, Longitude: -0.1419}
	bermondsey := geo.Point{Latitude: 51.5055, Longitude: -0.0754}
	boundary := geo.DistanceMiles(center, bermondsey)

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Postcode: "SW1A 1AA", RadiusMiles: boundary},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// ply-002 sits exactly on the circle: the boundary is inclusive and the
	// annotated distance equals the requested radius.
	assertResultIDs(t, results, "ply-001", "ply-002")
	if results[1].DistanceMiles == nil || *results[1].DistanceMiles != boundary {
		t.Fatalf("expected distance annotation %v, got %+v", boundary, results[1].DistanceMiles)
	}

	// A radius even one ulp short of that distance excludes the player.
	results, err = svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Postcode: "SW1A 1AA", RadiusMiles: math.Nextafter(boundary, 0)},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001")
}

func TestSearchService_AddingCriteriaNeverAddsResults(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	steps := []search.Criteria{
		{},
		{Basic: &search.BasicCriteria{Nationality: "England"}},
		{
			Basic:   &search.BasicCriteria{Nationality: "England"},
			Playing: &search.PlayingCriteria{Positions: []string{"ST"}},
		},
		{
			Basic:   &search.BasicCriteria{Nationality: "England"},
			Playing: &search.PlayingCriteria{Positions: []string{"ST"}},
			Skills:  map[string]int{"shooting": 8},
		},
	}

	var previous map[string]bool
	for i, criteria := range steps {
		results, err := svc.Search(t.Context(), scoutPrincipal(), criteria)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		got := make(map[string]bool, len(results))
		for _, r := range results {
			got[r.ID] = true
			if i > 0 && !previous[r.ID] {
				t.Fatalf("step %d surfaced %s, which the broader step %d did not return", i, r.ID, i-1)
			}
		}
		previous = got
	}
}

func TestSearchService_UnknownPostcodeIsInvalidInput(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	_, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Postcode: "ZZ99 9ZZ", RadiusMiles: 5},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchService_GeocoderOutageFailsWholeSearch(t *testing.T) {
	svc := newTestSearchService(stubGeocoder{
		err: fmt.Errorf("%w: geocode service unreachable", ErrDependencyUnavailable),
	})

	_, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Postcode: "SW1A 1AA", RadiusMiles: 5},
	})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSearchService_AgeSortIsStable(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{Sort: search.SortAgeDesc})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// ply-001 and ply-003 are both 14; creation order breaks the tie.
	assertResultIDs(t, results, "ply-005", "ply-002", "ply-001", "ply-003")
}

func TestSearchService_DistanceSortWithoutLocationKeepsDefaultOrder(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{Sort: search.SortDistance})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	assertResultIDs(t, results, "ply-001", "ply-002", "ply-003", "ply-005")
}

func TestSearchService_SummaryAssembly(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Name: "Alex Smith"},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001")

	card := results[0]
	if card.Name != "Alex Smith" || card.Age != 14 {
		t.Fatalf("unexpected identity fields: %+v", card)
	}
	if card.PrimaryPosition != "ST" || len(card.OtherPositions) != 1 || card.OtherPositions[0] != "CF" {
		t.Fatalf("unexpected positions: %q %v", card.PrimaryPosition, card.OtherPositions)
	}
	if card.ClubName != "Camden Youth FC" || card.LeagueName != "North London Youth League" {
		t.Fatalf("unexpected club fields: %+v", card)
	}
	if card.Location != "London, Greater London, England" {
		t.Fatalf("unexpected location label: %q", card.Location)
	}
	if card.Availability != "Actively looking" {
		t.Fatalf("unexpected availability label: %q", card.Availability)
	}
	if len(card.TopSkills) != 3 || card.TopSkills[0].Name != "finishing" || card.TopSkills[0].Rating != 9 {
		t.Fatalf("unexpected top skills: %+v", card.TopSkills)
	}
}

func TestSearchService_SummaryFallbacksWithoutSatelliteRows(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.Search(t.Context(), scoutPrincipal(), search.Criteria{
		Basic: &search.BasicCriteria{Name: "Smithson"},
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-005")

	card := results[0]
	if card.PrimaryPosition != "Unspecified" {
		t.Fatalf("expected position placeholder, got %q", card.PrimaryPosition)
	}
	if card.ClubName != "" || len(card.TopSkills) != 0 {
		t.Fatalf("expected empty club and skills, got %+v", card)
	}
	if card.Location != "Not specified" {
		t.Fatalf("expected location fallback, got %q", card.Location)
	}
}

func TestSearchService_QuickSearch(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.QuickSearch(t.Context(), scoutPrincipal(), "smith")
	if err != nil {
		t.Fatalf("quick search failed: %v", err)
	}
	assertResultIDs(t, results, "ply-001", "ply-005")

	if _, err := svc.QuickSearch(t.Context(), scoutPrincipal(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestSearchService_ListOwnPlayers(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	results, err := svc.ListOwnPlayers(t.Context(), user.Principal{UserID: memory.SeedOwnerAlex, Role: user.RolePlayer})
	if err != nil {
		t.Fatalf("list own players failed: %v", err)
	}

	assertResultIDs(t, results, "ply-001", "ply-005")
}

func TestSearchService_RequiresCallerIdentity(t *testing.T) {
	svc := newTestSearchService(westminsterGeocoder())

	if _, err := svc.Search(t.Context(), user.Principal{}, search.Criteria{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func intPtr(v int) *int { return &v }
