package repository

import (
	"context"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
)

// LocationRepository define el puerto de lectura del árbol de ubicaciones (DIP).
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	// Subtree devuelve los IDs de la ubicación raíz y de todos sus descendientes, a cualquier profundidad.
	Subtree(ctx context.Context, rootID string) ([]string, error)
}
