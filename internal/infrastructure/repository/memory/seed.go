package memory

import (
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
)

const (
	SeedOwnerAlex   = "user-alex"
	SeedOwnerBilly  = "user-billy"
	SeedOwnerCarla  = "user-carla"
	SeedOwnerDaniel = "user-daniel"
)

func floatPtr(v float64) *float64 { return &v }

// SeedPlayers is a small published pool around London plus one unpublished
// profile and one with no stored coordinates, so visibility and location
// edge cases are exercised out of the box.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: "ply-001", OwnerUserID: SeedOwnerAlex,
			FirstName: "Alex", LastName: "Smith",
			DateOfBirth: time.Date(2012, time.June, 15, 0, 0, 0, 0, time.UTC),
			Nationality: "England", HeightCM: 152, WeightKG: 43,
			PreferredFoot: player.FootRight, WeakFootStrength: 55, YearsPlaying: 5,
			Postcode: "SW1A 1AA", City: "London", County: "Greater London", Country: "England",
			Latitude: floatPtr(51.5014), Longitude: floatPtr(-0.1419),
			Availability: player.AvailabilityActivelyLooking, WillingToRelocate: false,
			TravelRadiusMiles: 15, IsPublished: true,
			CreatedAt: time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "ply-002", OwnerUserID: SeedOwnerBilly,
			FirstName: "Billy", LastName: "Okafor",
			DateOfBirth: time.Date(2010, time.February, 2, 0, 0, 0, 0, time.UTC),
			Nationality: "England", HeightCM: 168, WeightKG: 58,
			PreferredFoot: player.FootLeft, WeakFootStrength: 70, YearsPlaying: 7,
			Postcode: "SE1 2UP", City: "London", County: "Greater London", Country: "England",
			Latitude: floatPtr(51.5055), Longitude: floatPtr(-0.0754),
			Availability: player.AvailabilityOpenToOffers, WillingToRelocate: true,
			TravelRadiusMiles: 30, RepresentativeDistrict: true, IsPublished: true,
			CreatedAt: time.Date(2026, time.January, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: "ply-003", OwnerUserID: SeedOwnerCarla,
			FirstName: "Carla", LastName: "Nowak",
			DateOfBirth: time.Date(2011, time.November, 20, 0, 0, 0, 0, time.UTC),
			Nationality: "Poland", HeightCM: 160, WeightKG: 50,
			PreferredFoot: player.FootBoth, WeakFootStrength: 85, YearsPlaying: 6,
			Postcode: "LS1 4AP", City: "Leeds", County: "West Yorkshire", Country: "England",
			Latitude: floatPtr(53.7965), Longitude: floatPtr(-1.5478),
			Availability: player.AvailabilityActivelyLooking, WillingToRelocate: true,
			TravelRadiusMiles: 50, RepresentativeCounty: true, IsPublished: true,
			CreatedAt: time.Date(2026, time.February, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			// Unpublished draft: visible to its owner only.
			ID: "ply-004", OwnerUserID: SeedOwnerDaniel,
			FirstName: "Daniel", LastName: "Hughes",
			DateOfBirth: time.Date(2013, time.April, 9, 0, 0, 0, 0, time.UTC),
			Nationality: "Wales", HeightCM: 145, WeightKG: 39,
			PreferredFoot: player.FootRight, WeakFootStrength: 40, YearsPlaying: 3,
			Postcode: "CF10 1EP", City: "Cardiff", Country: "Wales",
			Latitude: floatPtr(51.4816), Longitude: floatPtr(-3.1791),
			Availability: player.AvailabilityNotLooking, IsPublished: false,
			CreatedAt: time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			// No stored coordinates: excluded from any location-filtered search.
			ID: "ply-005", OwnerUserID: SeedOwnerAlex,
			FirstName: "Eddie", LastName: "Smithson",
			DateOfBirth: time.Date(2009, time.August, 30, 0, 0, 0, 0, time.UTC),
			Nationality: "England", HeightCM: 175, WeightKG: 64,
			PreferredFoot: player.FootRight, WeakFootStrength: 60, YearsPlaying: 9,
			Availability: player.AvailabilityOpenToOffers, IsPublished: true,
			CreatedAt: time.Date(2026, time.March, 3, 16, 45, 0, 0, time.UTC),
		},
	}
}

func SeedPositions() []player.Position {
	return []player.Position{
		{PlayerID: "ply-001", Code: "ST", Suitability: 85, IsPrimary: true, Order: 1},
		{PlayerID: "ply-001", Code: "CF", Suitability: 70, Order: 2},
		{PlayerID: "ply-002", Code: "CB", Suitability: 88, IsPrimary: true, Order: 1},
		{PlayerID: "ply-002", Code: "CDM", Suitability: 72, Order: 2},
		{PlayerID: "ply-003", Code: "CAM", Suitability: 90, IsPrimary: true, Order: 1},
		{PlayerID: "ply-003", Code: "ST", Suitability: 75, Order: 2},
		{PlayerID: "ply-004", Code: "GK", Suitability: 80, IsPrimary: true, Order: 1},
	}
}

func SeedTeams() []player.Team {
	return []player.Team{
		{PlayerID: "ply-001", ClubName: "Camden Youth FC", LeagueName: "North London Youth League", IsPrimary: true},
		{PlayerID: "ply-002", ClubName: "Bermondsey Juniors", LeagueName: "South London Sunday League", IsPrimary: true},
		{PlayerID: "ply-003", ClubName: "Leeds City Girls", LeagueName: "West Yorkshire Girls League", IsPrimary: true},
		{PlayerID: "ply-003", ClubName: "Yorkshire Academy", LeagueName: "Academy Development League"},
	}
}

func SeedAbilities() []player.Abilities {
	return []player.Abilities{
		{
			PlayerID: "ply-001",
			Ratings: map[string]int{
				"finishing": 9, "shooting": 8, "pace": 7, "first_touch": 6,
			},
			Sprint10mSecs: floatPtr(1.95),
			Sprint30mSecs: floatPtr(4.60),
		},
		{
			PlayerID: "ply-002",
			Ratings: map[string]int{
				"strength": 8, "positioning": 8, "passing": 6, "jumping": 7,
			},
			Sprint30mSecs: floatPtr(4.40),
		},
		{
			PlayerID: "ply-003",
			Ratings: map[string]int{
				"vision": 9, "passing": 9, "dribbling": 8, "composure": 7,
			},
			Sprint10mSecs: floatPtr(1.88),
		},
	}
}
