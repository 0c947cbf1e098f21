package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

const filterDateLayout = "2006-01-02"

// StockMoveRepo lectura de stock_moves para el kardex (usable con pool o tx).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// StockCardQuery arma la consulta del kardex. Las fechas viajan como 'YYYY-MM-DD' y se comparan como date
// en la zona de la sesión (UTC, ver SessionTimeZone).
func StockCardQuery(filter repository.StockCardFilter) (string, []any, error) {
	subtree := filter.LocationIDs
	dateFrom := filter.DateFrom.Format(filterDateLayout)
	dateTo := filter.DateTo.Format(filterDateLayout)

	productIn := squirrel.Case().
		When(squirrel.Expr("m.location_dest_id = ANY(?::text[]::uuid[])", subtree), "m.product_qty")
	productOut := squirrel.Case().
		When(squirrel.Expr("m.location_id = ANY(?::text[]::uuid[])", subtree), "m.product_qty")

	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(
			"m.id::text AS id",
			"m.date",
			"m.product_id::text AS product_id",
			"m.product_qty",
			"m.product_uom_qty",
			"COALESCE(m.product_uom_id::text, '') AS uom_id",
			"COALESCE(u.name, '') AS uom_name",
			"COALESCE(m.reference, '') AS reference",
			"m.location_id::text AS location_id",
			"COALESCE(NULLIF(src.complete_name, ''), src.name) AS location_name",
			"m.location_dest_id::text AS location_dest_id",
			"COALESCE(NULLIF(dst.complete_name, ''), dst.name) AS location_dest_name",
		).
		Column(squirrel.Alias(productIn, "product_in")).
		Column(squirrel.Alias(productOut, "product_out")).
		Column(squirrel.Expr("(m.date < ?::date) AS is_initial", dateFrom)).
		Columns("m.picking_id::text AS picking_id", "pk.name AS picking_name").
		From("stock_moves m").
		Join("stock_locations src ON src.id = m.location_id").
		Join("stock_locations dst ON dst.id = m.location_dest_id").
		LeftJoin("uoms u ON u.id = m.product_uom_id").
		LeftJoin("stock_pickings pk ON pk.id = m.picking_id").
		Where(squirrel.Or{
			squirrel.Expr("m.location_id = ANY(?::text[]::uuid[])", subtree),
			squirrel.Expr("m.location_dest_id = ANY(?::text[]::uuid[])", subtree),
		}).
		Where(squirrel.Eq{"m.state": "done"}).
		Where(squirrel.Expr("m.product_id = ANY(?::text[]::uuid[])", filter.ProductIDs)).
		Where(squirrel.Expr("CAST(m.date AS date) <= ?::date", dateTo)).
		OrderBy("m.date", "m.reference", "m.id").
		ToSql()
}

// ListForStockCard devuelve todos los movimientos done que tocan el subárbol, sin paginar.
func (r *StockMoveRepo) ListForStockCard(ctx context.Context, filter repository.StockCardFilter) ([]repository.StockCardMoveRow, error) {
	if len(filter.LocationIDs) == 0 || len(filter.ProductIDs) == 0 {
		return nil, nil
	}
	sql, args, err := StockCardQuery(filter)
	if err != nil {
		return nil, wrapQueryErr("build stock card query", err)
	}
	var rows []repository.StockCardMoveRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, wrapQueryErr("list stock card moves", err)
	}
	return rows, nil
}
