package search

import (
	"fmt"
	"strings"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
)

// Sort selects the ordering of search results. The zero value keeps the
// stable default ordering by profile creation time.
type Sort string

const (
	SortDefault  Sort = ""
	SortAgeAsc   Sort = "age_asc"
	SortAgeDesc  Sort = "age_desc"
	SortDistance Sort = "distance"
)

var allSorts = map[Sort]struct{}{
	SortDefault:  {},
	SortAgeAsc:   {},
	SortAgeDesc:  {},
	SortDistance: {},
}

// BasicCriteria filters on identity, age, nationality, location and
// availability. All fields are optional.
type BasicCriteria struct {
	Name              string                `json:"name,omitempty"`
	AgeMin            *int                  `json:"ageMin,omitempty"`
	AgeMax            *int                  `json:"ageMax,omitempty"`
	Nationality       string                `json:"nationality,omitempty"`
	Postcode          string                `json:"postcode,omitempty"`
	RadiusMiles       float64               `json:"radiusMiles,omitempty"`
	Availability      []player.Availability `json:"availability,omitempty"`
	WillingToRelocate *bool                 `json:"willingToRelocate,omitempty"`
}

func (c BasicCriteria) isZero() bool {
	return c.Name == "" &&
		c.AgeMin == nil && c.AgeMax == nil &&
		c.Nationality == "" &&
		c.Postcode == "" && c.RadiusMiles == 0 &&
		len(c.Availability) == 0 &&
		c.WillingToRelocate == nil
}

// PhysicalCriteria filters on build, footedness and sprint measurements.
// Heights are stored and filtered in centimetres; unit conversion happens
// at the API edge.
type PhysicalCriteria struct {
	MinHeightCM      *int                  `json:"minHeightCm,omitempty"`
	MaxHeightCM      *int                  `json:"maxHeightCm,omitempty"`
	PreferredFoot    *player.PreferredFoot `json:"preferredFoot,omitempty"`
	MinWeakFoot      *int                  `json:"minWeakFoot,omitempty"`
	MaxSprint10mSecs *float64              `json:"maxSprint10mSecs,omitempty"`
	MaxSprint30mSecs *float64              `json:"maxSprint30mSecs,omitempty"`
}

func (c PhysicalCriteria) isZero() bool {
	return c.MinHeightCM == nil && c.MaxHeightCM == nil &&
		c.PreferredFoot == nil && c.MinWeakFoot == nil &&
		c.MaxSprint10mSecs == nil && c.MaxSprint30mSecs == nil
}

// PlayingCriteria filters on positions, experience and representative honours.
type PlayingCriteria struct {
	Positions              []string `json:"positions,omitempty"`
	PrimaryPositionOnly    bool     `json:"primaryPositionOnly,omitempty"`
	MinYearsPlaying        *int     `json:"minYearsPlaying,omitempty"`
	LeagueName             string   `json:"leagueName,omitempty"`
	RepresentativeDistrict bool     `json:"representativeDistrict,omitempty"`
	RepresentativeCounty   bool     `json:"representativeCounty,omitempty"`
}

func (c PlayingCriteria) isZero() bool {
	return len(c.Positions) == 0 && !c.PrimaryPositionOnly &&
		c.MinYearsPlaying == nil && c.LeagueName == "" &&
		!c.RepresentativeDistrict && !c.RepresentativeCounty
}

// Criteria is the full search request. Omitted groups impose no constraints;
// a skill threshold of zero is equivalent to omitting the skill.
type Criteria struct {
	Basic    *BasicCriteria    `json:"basic,omitempty"`
	Physical *PhysicalCriteria `json:"physical,omitempty"`
	Playing  *PlayingCriteria  `json:"playing,omitempty"`
	Skills   map[string]int    `json:"skills,omitempty"`
	Sort     Sort              `json:"sort,omitempty"`
}

// IsEmpty reports whether the criteria constrain nothing at all. An empty
// criteria set is still a valid search: it returns the whole visible pool.
func (c Criteria) IsEmpty() bool {
	return c.Basic == nil && c.Physical == nil && c.Playing == nil &&
		len(c.Skills) == 0
}

// HasLocationFilter reports whether a postcode radius is in play.
func (c Criteria) HasLocationFilter() bool {
	return c.Basic != nil && strings.TrimSpace(c.Basic.Postcode) != ""
}

// Normalize trims and canonicalizes every field in place and drops groups
// that end up empty, so that equal searches serialize identically.
func (c *Criteria) Normalize() {
	if c.Basic != nil {
		c.Basic.Name = strings.TrimSpace(c.Basic.Name)
		c.Basic.Nationality = strings.TrimSpace(c.Basic.Nationality)
		c.Basic.Postcode = strings.ToUpper(strings.TrimSpace(c.Basic.Postcode))
		normalized := make([]player.Availability, 0, len(c.Basic.Availability))
		for _, a := range c.Basic.Availability {
			normalized = append(normalized, player.Availability(strings.ToLower(strings.TrimSpace(string(a)))))
		}
		c.Basic.Availability = normalized
		if len(c.Basic.Availability) == 0 {
			c.Basic.Availability = nil
		}
		if c.Basic.isZero() {
			c.Basic = nil
		}
	}
	if c.Physical != nil {
		if c.Physical.PreferredFoot != nil {
			foot := player.PreferredFoot(strings.ToLower(strings.TrimSpace(string(*c.Physical.PreferredFoot))))
			c.Physical.PreferredFoot = &foot
		}
		if c.Physical.isZero() {
			c.Physical = nil
		}
	}
	if c.Playing != nil {
		positions := make([]string, 0, len(c.Playing.Positions))
		for _, code := range c.Playing.Positions {
			if trimmed := strings.ToUpper(strings.TrimSpace(code)); trimmed != "" {
				positions = append(positions, trimmed)
			}
		}
		c.Playing.Positions = positions
		if len(c.Playing.Positions) == 0 {
			c.Playing.Positions = nil
		}
		c.Playing.LeagueName = strings.TrimSpace(c.Playing.LeagueName)
		if c.Playing.isZero() {
			c.Playing = nil
		}
	}
	for name, min := range c.Skills {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != name {
			delete(c.Skills, name)
			c.Skills[trimmed] = min
		}
		if min == 0 {
			delete(c.Skills, trimmed)
		}
	}
	if len(c.Skills) == 0 {
		c.Skills = nil
	}
}

// Validate rejects criteria that are internally inconsistent or reference
// unknown positions, skills or enum values. Call Normalize first.
func (c Criteria) Validate() error {
	if _, ok := allSorts[c.Sort]; !ok {
		return fmt.Errorf("unknown sort: %s", c.Sort)
	}

	if c.Basic != nil {
		if err := c.Basic.validate(); err != nil {
			return err
		}
	}
	if c.Physical != nil {
		if err := c.Physical.validate(); err != nil {
			return err
		}
	}
	if c.Playing != nil {
		if err := c.Playing.validate(); err != nil {
			return err
		}
	}
	for name, min := range c.Skills {
		if !player.IsSkillName(name) {
			return fmt.Errorf("unknown skill: %s", name)
		}
		if min < 0 || min > 10 {
			return fmt.Errorf("skill threshold for %s must be within [1,10]", name)
		}
	}

	if c.Sort == SortDistance && !c.HasLocationFilter() {
		// Tolerated: a distance sort without a reference point falls back
		// to the default ordering instead of failing the search.
		return nil
	}

	return nil
}

func (c BasicCriteria) validate() error {
	if c.AgeMin != nil && *c.AgeMin < 0 {
		return fmt.Errorf("ageMin cannot be negative")
	}
	if c.AgeMax != nil && *c.AgeMax < 0 {
		return fmt.Errorf("ageMax cannot be negative")
	}
	if c.AgeMin != nil && c.AgeMax != nil && *c.AgeMin > *c.AgeMax {
		return fmt.Errorf("ageMin cannot exceed ageMax")
	}
	if c.RadiusMiles < 0 {
		return fmt.Errorf("radiusMiles cannot be negative")
	}
	if c.RadiusMiles > 0 && c.Postcode == "" {
		return fmt.Errorf("radiusMiles requires a postcode")
	}
	if c.Postcode != "" && c.RadiusMiles == 0 {
		return fmt.Errorf("postcode requires radiusMiles")
	}
	for _, a := range c.Availability {
		if _, ok := player.ParseAvailability(string(a)); !ok {
			return fmt.Errorf("unknown availability status: %s", a)
		}
	}

	return nil
}

func (c PhysicalCriteria) validate() error {
	if c.MinHeightCM != nil && *c.MinHeightCM < 0 {
		return fmt.Errorf("minHeightCm cannot be negative")
	}
	if c.MaxHeightCM != nil && *c.MaxHeightCM < 0 {
		return fmt.Errorf("maxHeightCm cannot be negative")
	}
	if c.MinHeightCM != nil && c.MaxHeightCM != nil && *c.MinHeightCM > *c.MaxHeightCM {
		return fmt.Errorf("minHeightCm cannot exceed maxHeightCm")
	}
	if c.PreferredFoot != nil {
		if _, ok := player.ParsePreferredFoot(string(*c.PreferredFoot)); !ok {
			return fmt.Errorf("unknown preferred foot: %s", *c.PreferredFoot)
		}
	}
	if c.MinWeakFoot != nil && (*c.MinWeakFoot < 0 || *c.MinWeakFoot > 100) {
		return fmt.Errorf("minWeakFoot must be within [0,100]")
	}
	if c.MaxSprint10mSecs != nil && *c.MaxSprint10mSecs <= 0 {
		return fmt.Errorf("maxSprint10mSecs must be positive")
	}
	if c.MaxSprint30mSecs != nil && *c.MaxSprint30mSecs <= 0 {
		return fmt.Errorf("maxSprint30mSecs must be positive")
	}

	return nil
}

func (c PlayingCriteria) validate() error {
	for _, code := range c.Positions {
		if !player.IsPositionCode(code) {
			return fmt.Errorf("unknown position code: %s", code)
		}
	}
	if c.PrimaryPositionOnly && len(c.Positions) == 0 {
		return fmt.Errorf("primaryPositionOnly requires at least one position")
	}
	if c.MinYearsPlaying != nil && *c.MinYearsPlaying < 0 {
		return fmt.Errorf("minYearsPlaying cannot be negative")
	}

	return nil
}
