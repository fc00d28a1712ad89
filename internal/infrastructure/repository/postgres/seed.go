package postgres

import (
	"context"
	"fmt"

	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/memory"
	"github.com/jmoiron/sqlx"
)

// BootstrapSeed loads the demo player pool into an empty database so a fresh
// install answers searches immediately. It is a no-op once any player exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, owner_user_id, first_name, last_name, date_of_birth, nationality,
	height_cm, weight_kg, preferred_foot, weak_foot_strength, years_playing,
	postcode, city, county, country, latitude, longitude,
	availability, willing_to_relocate, travel_radius_miles,
	representative_district, representative_county, is_published, thumbnail_url, created_at)
VALUES (:id, :owner_user_id, :first_name, :last_name, :date_of_birth, :nationality,
	:height_cm, :weight_kg, :preferred_foot, :weak_foot_strength, :years_playing,
	:postcode, :city, :county, :country, :latitude, :longitude,
	:availability, :willing_to_relocate, :travel_radius_miles,
	:representative_district, :representative_county, :is_published, :thumbnail_url, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                      p.ID,
			"owner_user_id":           p.OwnerUserID,
			"first_name":              p.FirstName,
			"last_name":               p.LastName,
			"date_of_birth":           p.DateOfBirth.UTC(),
			"nationality":             nullableString(p.Nationality),
			"height_cm":               p.HeightCM,
			"weight_kg":               p.WeightKG,
			"preferred_foot":          string(p.PreferredFoot),
			"weak_foot_strength":      p.WeakFootStrength,
			"years_playing":           p.YearsPlaying,
			"postcode":                nullableString(p.Postcode),
			"city":                    nullableString(p.City),
			"county":                  nullableString(p.County),
			"country":                 nullableString(p.Country),
			"latitude":                p.Latitude,
			"longitude":               p.Longitude,
			"availability":            string(p.Availability),
			"willing_to_relocate":     p.WillingToRelocate,
			"travel_radius_miles":     p.TravelRadiusMiles,
			"representative_district": p.RepresentativeDistrict,
			"representative_county":   p.RepresentativeCounty,
			"is_published":            p.IsPublished,
			"thumbnail_url":           nullableString(p.ThumbnailURL),
			"created_at":              p.CreatedAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, pos := range memory.SeedPositions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_positions (player_id, position_code, suitability, is_primary, display_order)
VALUES (:player_id, :position_code, :suitability, :is_primary, :display_order)
ON CONFLICT (player_id, position_code) DO NOTHING`, map[string]any{
			"player_id":     pos.PlayerID,
			"position_code": pos.Code,
			"suitability":   pos.Suitability,
			"is_primary":    pos.IsPrimary,
			"display_order": pos.Order,
		})
		if err != nil {
			return fmt.Errorf("bind seed position %s/%s query: %w", pos.PlayerID, pos.Code, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed position %s/%s: %w", pos.PlayerID, pos.Code, err)
		}
	}

	for _, team := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_teams (player_id, club_name, league_name, is_primary)
VALUES (:player_id, :club_name, :league_name, :is_primary)
ON CONFLICT (player_id, club_name) DO NOTHING`, map[string]any{
			"player_id":   team.PlayerID,
			"club_name":   team.ClubName,
			"league_name": nullableString(team.LeagueName),
			"is_primary":  team.IsPrimary,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s/%s query: %w", team.PlayerID, team.ClubName, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s/%s: %w", team.PlayerID, team.ClubName, err)
		}
	}

	for _, ab := range memory.SeedAbilities() {
		for skill, rating := range ab.Ratings {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_abilities (player_id, skill_name, rating)
VALUES (:player_id, :skill_name, :rating)
ON CONFLICT (player_id, skill_name) DO NOTHING`, map[string]any{
				"player_id":  ab.PlayerID,
				"skill_name": skill,
				"rating":     rating,
			})
			if err != nil {
				return fmt.Errorf("bind seed ability %s/%s query: %w", ab.PlayerID, skill, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("seed ability %s/%s: %w", ab.PlayerID, skill, err)
			}
		}

		if ab.Sprint10mSecs == nil && ab.Sprint30mSecs == nil &&
			ab.EnduranceBeepLevel == nil && ab.EnduranceCooperMetres == nil {
			continue
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_measurements (player_id, sprint_10m_secs, sprint_30m_secs, endurance_beep_level, endurance_cooper_metres)
VALUES (:player_id, :sprint_10m_secs, :sprint_30m_secs, :endurance_beep_level, :endurance_cooper_metres)
ON CONFLICT (player_id) DO NOTHING`, map[string]any{
			"player_id":               ab.PlayerID,
			"sprint_10m_secs":         ab.Sprint10mSecs,
			"sprint_30m_secs":         ab.Sprint30mSecs,
			"endurance_beep_level":    ab.EnduranceBeepLevel,
			"endurance_cooper_metres": ab.EnduranceCooperMetres,
		})
		if err != nil {
			return fmt.Errorf("bind seed measurements %s query: %w", ab.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed measurements %s: %w", ab.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
