package postgres

import (
	"database/sql"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
)

type playerTableModel struct {
	ID                     string          `db:"id"`
	OwnerUserID            string          `db:"owner_user_id"`
	FirstName              string          `db:"first_name"`
	LastName               string          `db:"last_name"`
	DateOfBirth            time.Time       `db:"date_of_birth"`
	Nationality            sql.NullString  `db:"nationality"`
	HeightCM               int             `db:"height_cm"`
	WeightKG               float64         `db:"weight_kg"`
	PreferredFoot          string          `db:"preferred_foot"`
	WeakFootStrength       int             `db:"weak_foot_strength"`
	YearsPlaying           int             `db:"years_playing"`
	Postcode               sql.NullString  `db:"postcode"`
	City                   sql.NullString  `db:"city"`
	County                 sql.NullString  `db:"county"`
	Country                sql.NullString  `db:"country"`
	Latitude               *float64        `db:"latitude"`
	Longitude              *float64        `db:"longitude"`
	Availability           string          `db:"availability"`
	WillingToRelocate      bool            `db:"willing_to_relocate"`
	TravelRadiusMiles      int             `db:"travel_radius_miles"`
	RepresentativeDistrict bool            `db:"representative_district"`
	RepresentativeCounty   bool            `db:"representative_county"`
	IsPublished            bool            `db:"is_published"`
	ThumbnailURL           sql.NullString  `db:"thumbnail_url"`
	CreatedAt              time.Time       `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                     m.ID,
		OwnerUserID:            m.OwnerUserID,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		DateOfBirth:            m.DateOfBirth,
		Nationality:            m.Nationality.String,
		HeightCM:               m.HeightCM,
		WeightKG:               m.WeightKG,
		PreferredFoot:          player.PreferredFoot(m.PreferredFoot),
		WeakFootStrength:       m.WeakFootStrength,
		YearsPlaying:           m.YearsPlaying,
		Postcode:               m.Postcode.String,
		City:                   m.City.String,
		County:                 m.County.String,
		Country:                m.Country.String,
		Latitude:               m.Latitude,
		Longitude:              m.Longitude,
		Availability:           player.Availability(m.Availability),
		WillingToRelocate:      m.WillingToRelocate,
		TravelRadiusMiles:      m.TravelRadiusMiles,
		RepresentativeDistrict: m.RepresentativeDistrict,
		RepresentativeCounty:   m.RepresentativeCounty,
		IsPublished:            m.IsPublished,
		ThumbnailURL:           m.ThumbnailURL.String,
		CreatedAt:              m.CreatedAt,
	}
}

type playerPositionTableModel struct {
	PlayerID     string `db:"player_id"`
	PositionCode string `db:"position_code"`
	Suitability  int    `db:"suitability"`
	IsPrimary    bool   `db:"is_primary"`
	DisplayOrder int    `db:"display_order"`
}

func (m playerPositionTableModel) toDomain() player.Position {
	return player.Position{
		PlayerID:    m.PlayerID,
		Code:        m.PositionCode,
		Suitability: m.Suitability,
		IsPrimary:   m.IsPrimary,
		Order:       m.DisplayOrder,
	}
}

type playerTeamTableModel struct {
	PlayerID   string         `db:"player_id"`
	ClubName   string         `db:"club_name"`
	LeagueName sql.NullString `db:"league_name"`
	IsPrimary  bool           `db:"is_primary"`
}

func (m playerTeamTableModel) toDomain() player.Team {
	return player.Team{
		PlayerID:   m.PlayerID,
		ClubName:   m.ClubName,
		LeagueName: m.LeagueName.String,
		IsPrimary:  m.IsPrimary,
	}
}

type playerAbilityTableModel struct {
	PlayerID  string `db:"player_id"`
	SkillName string `db:"skill_name"`
	Rating    int    `db:"rating"`
}

type playerMeasurementTableModel struct {
	PlayerID              string   `db:"player_id"`
	Sprint10mSecs         *float64 `db:"sprint_10m_secs"`
	Sprint30mSecs         *float64 `db:"sprint_30m_secs"`
	EnduranceBeepLevel    *float64 `db:"endurance_beep_level"`
	EnduranceCooperMetres *int     `db:"endurance_cooper_metres"`
}
