package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo lectura del árbol stock_locations (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	const query = `
		SELECT id::text, company_id::text, COALESCE(parent_id::text, '') AS parent_id,
		       name, COALESCE(complete_name, '') AS complete_name
		FROM stock_locations WHERE id = $1`
	var l entity.Location
	if err := pgxscan.Get(ctx, r.q, &l, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, wrapQueryErr("get location", err)
	}
	return &l, nil
}

// Subtree devuelve la raíz y todos sus descendientes. UNION (no UNION ALL) corta ciclos accidentales.
func (r *LocationRepo) Subtree(ctx context.Context, rootID string) ([]string, error) {
	const query = `
		WITH RECURSIVE tree AS (
		    SELECT id FROM stock_locations WHERE id = $1
		    UNION
		    SELECT l.id FROM stock_locations l JOIN tree t ON l.parent_id = t.id
		)
		SELECT id::text FROM tree ORDER BY id`
	var ids []string
	if err := pgxscan.Select(ctx, r.q, &ids, query, rootID); err != nil {
		return nil, wrapQueryErr("location subtree", err)
	}
	return ids, nil
}
