package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura del catálogo de productos (usable con pool o tx).
type ProductRepo struct {
	q       Querier
	builder squirrel.StatementBuilderType
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// GetByIDs obtiene los productos existentes entre ids, con el nombre de su unidad de medida.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sql, args, err := r.builder.
		Select(
			"p.id::text AS id",
			"p.company_id::text AS company_id",
			"COALESCE(p.sku, '') AS sku",
			"p.name",
			"COALESCE(p.uom_id::text, '') AS uom_id",
			"COALESCE(u.name, '') AS uom_name",
		).
		From("products p").
		LeftJoin("uoms u ON u.id = p.uom_id").
		Where(squirrel.Expr("p.id = ANY(?::text[]::uuid[])", ids)).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, wrapQueryErr("build products query", err)
	}
	var products []*entity.Product
	if err := pgxscan.Select(ctx, r.q, &products, sql, args...); err != nil {
		return nil, wrapQueryErr("get products", err)
	}
	return products, nil
}
