package player

import (
	"fmt"
	"strings"
	"time"
)

// PreferredFoot is the foot a player favours on the ball.
type PreferredFoot string

const (
	FootLeft  PreferredFoot = "left"
	FootRight PreferredFoot = "right"
	FootBoth  PreferredFoot = "both"
)

var allFeet = map[PreferredFoot]struct{}{
	FootLeft:  {},
	FootRight: {},
	FootBoth:  {},
}

func ParsePreferredFoot(v string) (PreferredFoot, bool) {
	foot := PreferredFoot(strings.ToLower(strings.TrimSpace(v)))
	_, ok := allFeet[foot]
	return foot, ok
}

// Availability is the player's declared recruitment status.
type Availability string

const (
	AvailabilityActivelyLooking Availability = "actively_looking"
	AvailabilityOpenToOffers    Availability = "open_to_offers"
	AvailabilityNotLooking      Availability = "not_looking"
)

var allAvailabilities = map[Availability]struct{}{
	AvailabilityActivelyLooking: {},
	AvailabilityOpenToOffers:    {},
	AvailabilityNotLooking:      {},
}

func ParseAvailability(v string) (Availability, bool) {
	a := Availability(strings.ToLower(strings.TrimSpace(v)))
	_, ok := allAvailabilities[a]
	return a, ok
}

// AvailabilityLabels maps statuses to their display form.
var AvailabilityLabels = map[Availability]string{
	AvailabilityActivelyLooking: "Actively looking",
	AvailabilityOpenToOffers:    "Open to offers",
	AvailabilityNotLooking:      "Not looking",
}

// PositionCodes is the recognised set of position codes. Criteria referencing
// a code outside this set are rejected outright.
var PositionCodes = map[string]struct{}{
	"GK": {}, "RB": {}, "LB": {}, "CB": {}, "RWB": {}, "LWB": {},
	"CDM": {}, "CM": {}, "CAM": {}, "RM": {}, "LM": {},
	"RW": {}, "LW": {}, "ST": {}, "CF": {},
}

func IsPositionCode(code string) bool {
	_, ok := PositionCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Player is one recruitment profile row. A player is owned by exactly one
// user account and is invisible to public searches until published.
type Player struct {
	ID                     string
	OwnerUserID            string
	FirstName              string
	LastName               string
	DateOfBirth            time.Time
	Nationality            string
	HeightCM               int
	WeightKG               float64
	PreferredFoot          PreferredFoot
	WeakFootStrength       int // 0-100
	YearsPlaying           int
	Postcode               string
	City                   string
	County                 string
	Country                string
	Latitude               *float64
	Longitude              *float64
	Availability           Availability
	WillingToRelocate      bool
	TravelRadiusMiles      int
	RepresentativeDistrict bool
	RepresentativeCounty   bool
	IsPublished            bool
	ThumbnailURL           string
	CreatedAt              time.Time
}

func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// AgeOn returns whole years of age on the given day: the year difference,
// reduced by one when the birthday has not yet occurred that year.
func (p Player) AgeOn(today time.Time) int {
	age := today.Year() - p.DateOfBirth.Year()
	beforeBirthday := today.Month() < p.DateOfBirth.Month() ||
		(today.Month() == p.DateOfBirth.Month() && today.Day() < p.DateOfBirth.Day())
	if beforeBirthday {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// LocationLabel renders the most specific available place fields.
func (p Player) LocationLabel() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.City, p.County, p.Country} {
		if v := strings.TrimSpace(part); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, ", ")
}

// Coordinates returns the stored point when both components are present.
func (p Player) Coordinates() (float64, float64, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.OwnerUserID == "" {
		return fmt.Errorf("player owner user id is required")
	}
	if p.FullName() == "" {
		return fmt.Errorf("player name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	if _, ok := allFeet[p.PreferredFoot]; !ok {
		return fmt.Errorf("invalid preferred foot: %s", p.PreferredFoot)
	}
	if p.WeakFootStrength < 0 || p.WeakFootStrength > 100 {
		return fmt.Errorf("weak foot strength must be within [0,100]")
	}
	if _, ok := allAvailabilities[p.Availability]; !ok {
		return fmt.Errorf("invalid availability status: %s", p.Availability)
	}
	if p.TravelRadiusMiles < 0 {
		return fmt.Errorf("travel radius cannot be negative")
	}

	return nil
}

// Position is one satellite row linking a player to a position code with a
// suitability score. At most one row per player is flagged primary.
type Position struct {
	PlayerID    string
	Code        string
	Suitability int // 0-100
	IsPrimary   bool
	Order       int
}

func (p Position) Validate() error {
	if p.PlayerID == "" {
		return fmt.Errorf("position player id is required")
	}
	if !IsPositionCode(p.Code) {
		return fmt.Errorf("invalid position code: %s", p.Code)
	}
	if p.Suitability < 0 || p.Suitability > 100 {
		return fmt.Errorf("position suitability must be within [0,100]")
	}

	return nil
}

// Team is one satellite row describing a club the player turns out for.
type Team struct {
	PlayerID   string
	ClubName   string
	LeagueName string
	IsPrimary  bool
}
