package repository

import (
	"context"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
type ProductRepository interface {
	// GetByIDs devuelve los productos encontrados; los IDs inexistentes simplemente no aparecen.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
}
