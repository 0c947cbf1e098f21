package stockcard

import (
	"context"

	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de solo lectura, con repos atados a esa tx.
// Todas las lecturas de un reporte ven la misma foto del libro de movimientos.
type TxRunner interface {
	RunReadOnly(ctx context.Context, fn func(
		locationRepo repository.LocationRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error) error
}

// Renderer puerto de salida hacia un backend de documentos (PDF u hoja de cálculo).
// Recibe el reporte completo; el diseño visual es responsabilidad del backend.
type Renderer interface {
	Render(ctx context.Context, report *Report) (*Document, error)
}

// Document documento renderizado listo para descargar.
type Document struct {
	Content     []byte
	ContentType string
	Filename    string
}
