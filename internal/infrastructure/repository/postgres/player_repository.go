package postgres

import (
	"context"
	"fmt"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	qb "github.com/codescribler/playerprofile-sub000/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(ctx context.Context, q search.Query) ([]player.Player, error) {
	query, args, err := compileSearchQuery(q)
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).
		From("players p").
		Where(qb.Eq("p.owner_user_id", ownerUserID)).
		OrderBy("p.created_at", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by owner query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by owner: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListPositionsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]player.Position, error) {
	if len(playerIDs) == 0 {
		return map[string][]player.Position{}, nil
	}

	query, args, err := qb.Select("player_id", "position_code", "suitability", "is_primary", "display_order").
		From("player_positions").
		Where(qb.In("player_id", stringSliceToAny(playerIDs))).
		OrderBy("player_id", "display_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player positions query: %w", err)
	}

	var rows []playerPositionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player positions: %w", err)
	}

	out := make(map[string][]player.Position, len(playerIDs))
	for _, row := range rows {
		out[row.PlayerID] = append(out[row.PlayerID], row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListTeamsByPlayerIDs(ctx context.Context, playerIDs []string) (map[string][]player.Team, error) {
	if len(playerIDs) == 0 {
		return map[string][]player.Team{}, nil
	}

	query, args, err := qb.Select("player_id", "club_name", "league_name", "is_primary").
		From("player_teams").
		Where(qb.In("player_id", stringSliceToAny(playerIDs))).
		OrderBy("player_id", "is_primary DESC", "club_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player teams query: %w", err)
	}

	var rows []playerTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player teams: %w", err)
	}

	out := make(map[string][]player.Team, len(playerIDs))
	for _, row := range rows {
		out[row.PlayerID] = append(out[row.PlayerID], row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListAbilitiesByPlayerIDs(ctx context.Context, playerIDs []string) (map[string]player.Abilities, error) {
	if len(playerIDs) == 0 {
		return map[string]player.Abilities{}, nil
	}

	ratingQuery, ratingArgs, err := qb.Select("player_id", "skill_name", "rating").
		From("player_abilities").
		Where(qb.In("player_id", stringSliceToAny(playerIDs))).
		OrderBy("player_id", "skill_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player abilities query: %w", err)
	}

	var ratingRows []playerAbilityTableModel
	if err := r.db.SelectContext(ctx, &ratingRows, ratingQuery, ratingArgs...); err != nil {
		return nil, fmt.Errorf("select player abilities: %w", err)
	}

	measurementQuery, measurementArgs, err := qb.Select(
		"player_id", "sprint_10m_secs", "sprint_30m_secs", "endurance_beep_level", "endurance_cooper_metres",
	).
		From("player_measurements").
		Where(qb.In("player_id", stringSliceToAny(playerIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player measurements query: %w", err)
	}

	var measurementRows []playerMeasurementTableModel
	if err := r.db.SelectContext(ctx, &measurementRows, measurementQuery, measurementArgs...); err != nil {
		return nil, fmt.Errorf("select player measurements: %w", err)
	}

	out := make(map[string]player.Abilities, len(playerIDs))
	for _, row := range ratingRows {
		abilities, ok := out[row.PlayerID]
		if !ok {
			abilities = player.Abilities{PlayerID: row.PlayerID, Ratings: make(map[string]int)}
		}
		abilities.Ratings[row.SkillName] = row.Rating
		out[row.PlayerID] = abilities
	}
	for _, row := range measurementRows {
		abilities, ok := out[row.PlayerID]
		if !ok {
			abilities = player.Abilities{PlayerID: row.PlayerID}
		}
		abilities.Sprint10mSecs = row.Sprint10mSecs
		abilities.Sprint30mSecs = row.Sprint30mSecs
		abilities.EnduranceBeepLevel = row.EnduranceBeepLevel
		abilities.EnduranceCooperMetres = row.EnduranceCooperMetres
		out[row.PlayerID] = abilities
	}

	return out, nil
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
