package stockcard

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-card-api/internal/domain"
	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

// normalizeRows convierte cada fila cruda en una LedgerRow: fecha en hora local del usuario
// (sin zona) y producto resuelto contra el catálogo. No filtra: una fila por movimiento.
func normalizeRows(
	raw []repository.StockCardMoveRow,
	products map[string]*entity.Product,
	loc *time.Location,
) ([]entity.LedgerRow, error) {
	rows := make([]entity.LedgerRow, 0, len(raw))
	for _, m := range raw {
		product, ok := products[m.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s del movimiento %s", domain.ErrNotFound, m.ProductID, m.ID)
		}
		row := entity.LedgerRow{
			Date:          naiveLocal(m.Date, loc),
			Product:       product,
			ProductQty:    m.ProductQty,
			ProductUomQty: m.ProductUomQty,
			Uom:           entity.Ref{ID: m.UomID, Name: m.UomName},
			Reference:     m.Reference,
			Source:        entity.Ref{ID: m.LocationID, Name: m.LocationName},
			Destination:   entity.Ref{ID: m.LocationDestID, Name: m.LocationDestName},
			IsInitial:     m.IsInitial,
			QtyIn:         m.ProductIn,
			QtyOut:        m.ProductOut,
		}
		if m.PickingID != nil {
			name := ""
			if m.PickingName != nil {
				name = *m.PickingName
			}
			row.Picking = &entity.Ref{ID: *m.PickingID, Name: name}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
