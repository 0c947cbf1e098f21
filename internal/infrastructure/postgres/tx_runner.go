package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

var _ stockcard.TxRunner = (*TxRunner)(nil)

// readOnlyTx: una foto consistente del libro de movimientos para todo el reporte.
var readOnlyTx = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReadOnly inicia una transacción de solo lectura, ejecuta fn con repos atados a la tx y la cierra.
// No se toman bloqueos; la tx se libera al retornar.
func (r *TxRunner) RunReadOnly(ctx context.Context, fn func(
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	moveRepo repository.StockMoveRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, readOnlyTx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLocationRepository(tx), NewProductRepository(tx), NewStockMoveRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
