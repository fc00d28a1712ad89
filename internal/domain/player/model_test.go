package player

import (
	"testing"
	"time"
)

func datePtr(v float64) *float64 { return &v }

func TestAgeOn(t *testing.T) {
	dob := time.Date(2012, time.June, 15, 0, 0, 0, 0, time.UTC)
	p := Player{DateOfBirth: dob}

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"day before birthday", time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC), 13},
		{"on birthday", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), 14},
		{"day after birthday", time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC), 14},
		{"earlier month", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.AgeOn(tc.today); got != tc.want {
				t.Fatalf("age on %s: want %d, got %d", tc.today.Format("2006-01-02"), tc.want, got)
			}
		})
	}
}

func TestLocationLabel(t *testing.T) {
	p := Player{City: "Leeds", Country: "England"}
	if got := p.LocationLabel(); got != "Leeds, England" {
		t.Fatalf("unexpected location label: %q", got)
	}

	if got := (Player{}).LocationLabel(); got != "Not specified" {
		t.Fatalf("empty location must fall back, got %q", got)
	}
}

func TestCoordinates(t *testing.T) {
	if _, _, ok := (Player{Latitude: datePtr(51.5)}).Coordinates(); ok {
		t.Fatal("half a coordinate pair must not count as located")
	}

	lat, lon, ok := (Player{Latitude: datePtr(51.5), Longitude: datePtr(-0.1)}).Coordinates()
	if !ok || lat != 51.5 || lon != -0.1 {
		t.Fatalf("unexpected coordinates: %f %f %t", lat, lon, ok)
	}
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{
		ID:            "p1",
		OwnerUserID:   "u1",
		FirstName:     "Alex",
		LastName:      "Smith",
		DateOfBirth:   time.Date(2012, time.June, 15, 0, 0, 0, 0, time.UTC),
		PreferredFoot: FootRight,
		Availability:  AvailabilityOpenToOffers,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	invalid := valid
	invalid.PreferredFoot = "ambidextrous"
	if err := invalid.Validate(); err == nil {
		t.Fatal("expected error for unknown preferred foot")
	}

	invalid = valid
	invalid.WeakFootStrength = 150
	if err := invalid.Validate(); err == nil {
		t.Fatal("expected error for out-of-range weak foot strength")
	}
}

func TestPositionValidate(t *testing.T) {
	if err := (Position{PlayerID: "p1", Code: "ST", Suitability: 80}).Validate(); err != nil {
		t.Fatalf("valid position rejected: %v", err)
	}
	if err := (Position{PlayerID: "p1", Code: "QB"}).Validate(); err == nil {
		t.Fatal("expected error for unknown position code")
	}
}

func TestAbilitiesRating(t *testing.T) {
	a := Abilities{Ratings: map[string]int{"passing": 7}}

	if v, ok := a.Rating("passing"); !ok || v != 7 {
		t.Fatalf("unexpected rating: %d %t", v, ok)
	}
	if _, ok := a.Rating("pace"); ok {
		t.Fatal("unassessed skill must report absent")
	}
}
