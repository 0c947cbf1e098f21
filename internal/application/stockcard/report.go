package stockcard

import (
	"time"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/ledger"
)

// DateLayout formato de fecha de calendario en la API y en los documentos.
const DateLayout = "2006-01-02"

// Report kardex armado, entregado tal cual al backend de documentos.
// Rows conserva todas las filas (incluidas las iniciales) en el orden de la consulta;
// Sections trae el mismo contenido agrupado por producto con saldo inicial y corrido.
type Report struct {
	CompanyName string
	Location    *entity.Location
	Products    []*entity.Product
	DateFrom    time.Time
	DateTo      time.Time
	GeneratedAt time.Time // hora local del usuario, sin zona
	Rows        []entity.LedgerRow
	Sections    []ledger.Section
}

// Filename nombre sugerido del documento, ej. "stock_card_2024-01-01_2024-01-31.xlsx".
func (r *Report) Filename(ext string) string {
	return "stock_card_" + r.DateFrom.Format(DateLayout) + "_" + r.DateTo.Format(DateLayout) + "." + ext
}

// LocationName nombre para encabezados; vacío si no hay ubicación.
func (r *Report) LocationName() string {
	if r.Location == nil {
		return ""
	}
	return r.Location.DisplayName()
}
