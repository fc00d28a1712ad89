package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	qb "github.com/codescribler/playerprofile-sub000/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type SavedSearchRepository struct {
	db *sqlx.DB
}

func NewSavedSearchRepository(db *sqlx.DB) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

type savedSearchTableModel struct {
	ID          string    `db:"id"`
	OwnerUserID string    `db:"owner_user_id"`
	Name        string    `db:"name"`
	Criteria    string    `db:"criteria"`
	CreatedAt   time.Time `db:"created_at"`
}

var savedSearchSelectColumns = []string{
	"id",
	"owner_user_id",
	"name",
	"criteria",
	"created_at",
}

func (r *SavedSearchRepository) Insert(ctx context.Context, saved search.SavedSearch) error {
	encoded, err := search.EncodeCriteria(saved.Criteria)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("saved_searches", savedSearchTableModel{
		ID:          saved.ID,
		OwnerUserID: saved.OwnerUserID,
		Name:        saved.Name,
		Criteria:    encoded,
		CreatedAt:   saved.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert saved search query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert saved search: %w", err)
	}

	return nil
}

func (r *SavedSearchRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]search.SavedSearch, error) {
	query, args, err := qb.Select(savedSearchSelectColumns...).
		From("saved_searches").
		Where(qb.Eq("owner_user_id", ownerUserID)).
		OrderBy("created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select saved searches query: %w", err)
	}

	var rows []savedSearchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select saved searches: %w", err)
	}

	out := make([]search.SavedSearch, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *SavedSearchRepository) GetByID(ctx context.Context, id string) (search.SavedSearch, bool, error) {
	query, args, err := qb.Select(savedSearchSelectColumns...).
		From("saved_searches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return search.SavedSearch{}, false, fmt.Errorf("build get saved search query: %w", err)
	}

	var row savedSearchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return search.SavedSearch{}, false, nil
		}
		return search.SavedSearch{}, false, fmt.Errorf("get saved search: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return search.SavedSearch{}, false, err
	}

	return item, true, nil
}

func (m savedSearchTableModel) toDomain() (search.SavedSearch, error) {
	criteria, err := search.DecodeCriteria(m.Criteria)
	if err != nil {
		return search.SavedSearch{}, fmt.Errorf("decode saved search %s: %w", m.ID, err)
	}

	return search.SavedSearch{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Criteria:    criteria,
		CreatedAt:   m.CreatedAt,
	}, nil
}
