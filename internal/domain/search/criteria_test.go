package search

import (
	"testing"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
)

func intPtr(v int) *int { return &v }

func userPrincipal(id, role string) user.Principal {
	parsed, ok := user.ParseRole(role)
	if !ok {
		panic("unknown role in test: " + role)
	}
	return user.Principal{UserID: id, Role: parsed}
}

func TestCriteria_Normalize_DropsEmptyGroups(t *testing.T) {
	c := Criteria{
		Basic:    &BasicCriteria{Name: "   "},
		Physical: &PhysicalCriteria{},
		Playing:  &PlayingCriteria{Positions: []string{"  "}},
		Skills:   map[string]int{"passing": 0},
	}

	c.Normalize()

	if !c.IsEmpty() {
		t.Fatalf("expected empty criteria after normalize, got %+v", c)
	}
}

func TestCriteria_Normalize_CanonicalizesFields(t *testing.T) {
	foot := player.PreferredFoot(" Left ")
	c := Criteria{
		Basic: &BasicCriteria{
			Postcode:     " sw1a 1aa ",
			Availability: []player.Availability{" Actively_Looking "},
			RadiusMiles:  25,
		},
		Physical: &PhysicalCriteria{PreferredFoot: &foot},
		Playing:  &PlayingCriteria{Positions: []string{" st ", "cf"}},
		Skills:   map[string]int{" Passing ": 7},
	}

	c.Normalize()

	if c.Basic.Postcode != "SW1A 1AA" {
		t.Fatalf("postcode not canonicalized: %q", c.Basic.Postcode)
	}
	if c.Basic.Availability[0] != player.AvailabilityActivelyLooking {
		t.Fatalf("availability not canonicalized: %q", c.Basic.Availability[0])
	}
	if *c.Physical.PreferredFoot != player.FootLeft {
		t.Fatalf("preferred foot not canonicalized: %q", *c.Physical.PreferredFoot)
	}
	if c.Playing.Positions[0] != "ST" || c.Playing.Positions[1] != "CF" {
		t.Fatalf("positions not canonicalized: %+v", c.Playing.Positions)
	}
	if min, ok := c.Skills["passing"]; !ok || min != 7 {
		t.Fatalf("skill name not canonicalized: %+v", c.Skills)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("canonical criteria should validate: %v", err)
	}
}

func TestCriteria_Validate_RejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name     string
		criteria Criteria
	}{
		{"unknown sort", Criteria{Sort: Sort("alphabetical")}},
		{"unknown skill", Criteria{Skills: map[string]int{"juggling": 5}}},
		{"skill over range", Criteria{Skills: map[string]int{"passing": 11}}},
		{"unknown position", Criteria{Playing: &PlayingCriteria{Positions: []string{"QB"}}}},
		{"unknown availability", Criteria{Basic: &BasicCriteria{Availability: []player.Availability{"retired"}}}},
		{"inverted age range", Criteria{Basic: &BasicCriteria{AgeMin: intPtr(16), AgeMax: intPtr(12)}}},
		{"radius without postcode", Criteria{Basic: &BasicCriteria{RadiusMiles: 10}}},
		{"postcode without radius", Criteria{Basic: &BasicCriteria{Postcode: "SW1A 1AA"}}},
		{"inverted height range", Criteria{Physical: &PhysicalCriteria{MinHeightCM: intPtr(180), MaxHeightCM: intPtr(160)}}},
		{"primary only without positions", Criteria{Playing: &PlayingCriteria{PrimaryPositionOnly: true}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.criteria.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCriteria_Validate_DistanceSortWithoutLocationTolerated(t *testing.T) {
	c := Criteria{Sort: SortDistance}
	if err := c.Validate(); err != nil {
		t.Fatalf("distance sort without location must validate: %v", err)
	}
}

func TestEncodeDecodeCriteria_RoundTrip(t *testing.T) {
	relocate := true
	minWeakFoot := 60
	c := Criteria{
		Basic: &BasicCriteria{
			Name:              "smith",
			AgeMin:            intPtr(12),
			AgeMax:            intPtr(15),
			Postcode:          "SW1A 1AA",
			RadiusMiles:       25,
			Availability:      []player.Availability{player.AvailabilityActivelyLooking},
			WillingToRelocate: &relocate,
		},
		Physical: &PhysicalCriteria{MinHeightCM: intPtr(150), MinWeakFoot: &minWeakFoot},
		Playing:  &PlayingCriteria{Positions: []string{"ST", "CF"}, PrimaryPositionOnly: true},
		Skills:   map[string]int{"passing": 7, "pace": 8},
		Sort:     SortAgeAsc,
	}
	c.Normalize()

	encoded, err := EncodeCriteria(c)
	if err != nil {
		t.Fatalf("encode criteria: %v", err)
	}
	decoded, err := DecodeCriteria(encoded)
	if err != nil {
		t.Fatalf("decode criteria: %v", err)
	}

	reencoded, err := EncodeCriteria(decoded)
	if err != nil {
		t.Fatalf("re-encode criteria: %v", err)
	}
	if reencoded != encoded {
		t.Fatalf("round trip is not lossless:\nfirst:  %s\nsecond: %s", encoded, reencoded)
	}
	if *decoded.Basic.AgeMin != 12 || decoded.Skills["pace"] != 8 || decoded.Sort != SortAgeAsc {
		t.Fatalf("decoded criteria lost fields: %+v", decoded)
	}
}

func TestVisibilityFor(t *testing.T) {
	scout := VisibilityFor(userPrincipal("u1", "scout"))
	if !scout.PublishedOnly || scout.OwnerUserID != "" {
		t.Fatalf("scout must search the published pool: %+v", scout)
	}

	owner := VisibilityFor(userPrincipal("u2", "player"))
	if owner.PublishedOnly || owner.OwnerUserID != "u2" {
		t.Fatalf("player must search own records: %+v", owner)
	}

	admin := VisibilityFor(userPrincipal("u3", "admin"))
	if admin.PublishedOnly || admin.OwnerUserID != "u3" {
		t.Fatalf("admin must search own records: %+v", admin)
	}
}
