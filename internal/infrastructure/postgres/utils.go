package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE relevantes para consultas de solo lectura.
const (
	sqlStateQueryCanceled   = "57014" // statement_timeout o cancelación
	sqlStateUndefinedTable  = "42P01"
	sqlStateInvalidDatetime = "22007"
)

// wrapQueryErr envuelve un error de consulta con la operación y un detalle legible
// para los códigos conocidos. El error original queda accesible con errors.Is/As.
func wrapQueryErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: tiempo de consulta agotado: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateQueryCanceled:
			return fmt.Errorf("%s: consulta cancelada: %w", op, err)
		case sqlStateUndefinedTable:
			return fmt.Errorf("%s: tabla inexistente (%s): %w", op, pgErr.Message, err)
		case sqlStateInvalidDatetime:
			return fmt.Errorf("%s: fecha inválida: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
