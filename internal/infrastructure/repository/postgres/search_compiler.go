package postgres

import (
	"sort"
	"strings"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
	qb "github.com/codescribler/playerprofile-sub000/internal/platform/querybuilder"
)

var playerSelectColumns = []string{
	"p.id",
	"p.owner_user_id",
	"p.first_name",
	"p.last_name",
	"p.date_of_birth",
	"p.nationality",
	"p.height_cm",
	"p.weight_kg",
	"p.preferred_foot",
	"p.weak_foot_strength",
	"p.years_playing",
	"p.postcode",
	"p.city",
	"p.county",
	"p.country",
	"p.latitude",
	"p.longitude",
	"p.availability",
	"p.willing_to_relocate",
	"p.travel_radius_miles",
	"p.representative_district",
	"p.representative_county",
	"p.is_published",
	"p.thumbnail_url",
	"p.created_at",
}

// compileSearchQuery renders a resolved search into one parameterized SQL
// statement. Satellite-table constraints become EXISTS subqueries so the
// result set never needs de-duplication, and the ORDER BY is always the
// stable creation order; age and distance sorting happen in the use case.
func compileSearchQuery(q search.Query) (string, []any, error) {
	return qb.Select(playerSelectColumns...).
		From("players p").
		Where(searchConditions(q)...).
		OrderBy("p.created_at", "p.id").
		ToSQL()
}

func searchConditions(q search.Query) []qb.Condition {
	conditions := make([]qb.Condition, 0, 16)

	// Visibility comes first: it bounds everything else.
	if q.Visibility.OwnerUserID != "" {
		conditions = append(conditions, qb.Eq("p.owner_user_id", q.Visibility.OwnerUserID))
	} else {
		conditions = append(conditions, qb.Eq("p.is_published", true))
	}

	c := q.Criteria
	if c.Basic != nil {
		conditions = append(conditions, basicConditions(*c.Basic, q.Now)...)
	}
	if c.Physical != nil {
		conditions = append(conditions, physicalConditions(*c.Physical)...)
	}
	if c.Playing != nil {
		conditions = append(conditions, playingConditions(*c.Playing)...)
	}

	// Deterministic predicate order keeps compiled SQL reproducible for
	// identical criteria, which saved-search replays rely on.
	skillNames := make([]string, 0, len(c.Skills))
	for name := range c.Skills {
		skillNames = append(skillNames, name)
	}
	sort.Strings(skillNames)
	for _, name := range skillNames {
		conditions = append(conditions, qb.Exists(
			"SELECT 1 FROM player_abilities pa WHERE pa.player_id = p.id",
			qb.Eq("pa.skill_name", name),
			qb.Gte("pa.rating", c.Skills[name]),
		))
	}

	if q.Center != nil {
		// Coarse bounding-box prefilter; the exact circle test runs on the
		// returned rows.
		bounds := geo.BoundingBox(*q.Center, q.RadiusMiles)
		conditions = append(conditions,
			qb.NotNull("p.latitude"),
			qb.NotNull("p.longitude"),
			qb.Between("p.latitude", bounds.MinLatitude, bounds.MaxLatitude),
			qb.Between("p.longitude", bounds.MinLongitude, bounds.MaxLongitude),
		)
	}

	return conditions
}

func basicConditions(c search.BasicCriteria, now time.Time) []qb.Condition {
	conditions := make([]qb.Condition, 0, 6)

	if c.Name != "" {
		conditions = append(conditions, qb.ILike("p.first_name || ' ' || p.last_name", "%"+escapeLikePattern(c.Name)+"%"))
	}
	// date_of_birth is a DATE column; the bounds must carry no time of day,
	// or a player born exactly on the boundary date is cut off once the
	// query runs after midnight UTC.
	today := dateOnly(now)
	if c.AgeMin != nil {
		// At least N years old: born on or before today minus N years.
		conditions = append(conditions, qb.Lte("p.date_of_birth", today.AddDate(-*c.AgeMin, 0, 0)))
	}
	if c.AgeMax != nil {
		// At most N years old: the (N+1)th birthday has not happened yet.
		conditions = append(conditions, qb.Gte("p.date_of_birth", today.AddDate(-(*c.AgeMax+1), 0, 0).AddDate(0, 0, 1)))
	}
	if c.Nationality != "" {
		conditions = append(conditions, qb.ILike("p.nationality", escapeLikePattern(c.Nationality)))
	}
	if len(c.Availability) > 0 {
		values := make([]any, 0, len(c.Availability))
		for _, a := range c.Availability {
			values = append(values, string(a))
		}
		conditions = append(conditions, qb.In("p.availability", values))
	}
	if c.WillingToRelocate != nil {
		conditions = append(conditions, qb.Eq("p.willing_to_relocate", *c.WillingToRelocate))
	}

	return conditions
}

func physicalConditions(c search.PhysicalCriteria) []qb.Condition {
	conditions := make([]qb.Condition, 0, 6)

	if c.MinHeightCM != nil {
		conditions = append(conditions, qb.Gte("p.height_cm", *c.MinHeightCM))
	}
	if c.MaxHeightCM != nil {
		conditions = append(conditions, qb.Lte("p.height_cm", *c.MaxHeightCM))
	}
	if c.PreferredFoot != nil {
		conditions = append(conditions, qb.Eq("p.preferred_foot", string(*c.PreferredFoot)))
	}
	if c.MinWeakFoot != nil {
		conditions = append(conditions, qb.Gte("p.weak_foot_strength", *c.MinWeakFoot))
	}
	if c.MaxSprint10mSecs != nil {
		conditions = append(conditions, qb.Exists(
			"SELECT 1 FROM player_measurements pm WHERE pm.player_id = p.id",
			qb.Lte("pm.sprint_10m_secs", *c.MaxSprint10mSecs),
		))
	}
	if c.MaxSprint30mSecs != nil {
		conditions = append(conditions, qb.Exists(
			"SELECT 1 FROM player_measurements pm WHERE pm.player_id = p.id",
			qb.Lte("pm.sprint_30m_secs", *c.MaxSprint30mSecs),
		))
	}

	return conditions
}

func playingConditions(c search.PlayingCriteria) []qb.Condition {
	conditions := make([]qb.Condition, 0, 5)

	if len(c.Positions) > 0 {
		subConditions := []qb.Condition{
			qb.In("pp.position_code", stringSliceToAny(c.Positions)),
		}
		if c.PrimaryPositionOnly {
			subConditions = append(subConditions, qb.Eq("pp.is_primary", true))
		}
		conditions = append(conditions, qb.Exists(
			"SELECT 1 FROM player_positions pp WHERE pp.player_id = p.id",
			subConditions...,
		))
	}
	if c.MinYearsPlaying != nil {
		conditions = append(conditions, qb.Gte("p.years_playing", *c.MinYearsPlaying))
	}
	if c.LeagueName != "" {
		conditions = append(conditions, qb.Exists(
			"SELECT 1 FROM player_teams pt WHERE pt.player_id = p.id",
			qb.ILike("pt.league_name", "%"+escapeLikePattern(c.LeagueName)+"%"),
		))
	}
	if c.RepresentativeDistrict {
		conditions = append(conditions, qb.Eq("p.representative_district", true))
	}
	if c.RepresentativeCounty {
		conditions = append(conditions, qb.Eq("p.representative_county", true))
	}

	return conditions
}

// likePatternEscaper neutralizes LIKE metacharacters in user text so the
// criteria keep plain-substring semantics. Backslash is the default escape
// character for parameterized patterns in Postgres.
var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likePatternEscaper.Replace(s)
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
