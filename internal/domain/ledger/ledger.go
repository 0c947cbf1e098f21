// Package ledger contiene la lógica pura del kardex: saldo inicial y saldo corrido por producto.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-card-api/internal/domain/entity"
)

// Line es una línea visible del kardex con su saldo corrido.
type Line struct {
	entity.LedgerRow
	Balance decimal.Decimal
}

// Section agrupa el kardex de un producto.
type Section struct {
	Product        *entity.Product
	InitialBalance decimal.Decimal
	Lines          []Line
	TotalIn        decimal.Decimal
	TotalOut       decimal.Decimal
	EndingBalance  decimal.Decimal
}

// InitialBalance = Σ entradas − Σ salidas de las filas marcadas como iniciales.
// Las filas no iniciales se ignoran y los valores nulos cuentan como cero.
func InitialBalance(rows []entity.LedgerRow) decimal.Decimal {
	in, out := decimal.Zero, decimal.Zero
	for _, r := range rows {
		if !r.IsInitial {
			continue
		}
		in = in.Add(r.In())
		out = out.Add(r.Out())
	}
	return in.Sub(out)
}

// BuildSection arma el kardex de un producto. rows debe venir ya filtrado por producto
// y en el orden de la consulta (fecha, referencia); ese orden define el saldo corrido.
// Un movimiento interno al subárbol suma y resta a la vez.
func BuildSection(product *entity.Product, rows []entity.LedgerRow) Section {
	s := Section{
		Product:        product,
		InitialBalance: InitialBalance(rows),
		TotalIn:        decimal.Zero,
		TotalOut:       decimal.Zero,
		Lines:          []Line{},
	}
	balance := s.InitialBalance
	for _, r := range rows {
		if r.IsInitial {
			continue
		}
		balance = balance.Add(r.In()).Sub(r.Out())
		s.TotalIn = s.TotalIn.Add(r.In())
		s.TotalOut = s.TotalOut.Add(r.Out())
		s.Lines = append(s.Lines, Line{LedgerRow: r, Balance: balance})
	}
	s.EndingBalance = balance
	return s
}

// BuildSections arma una sección por producto solicitado, en el orden de products.
// Un producto sin movimientos produce una sección con saldos en cero (nunca se omite).
func BuildSections(products []*entity.Product, rows []entity.LedgerRow) []Section {
	byProduct := make(map[string][]entity.LedgerRow, len(products))
	for _, r := range rows {
		if r.Product == nil {
			continue
		}
		byProduct[r.Product.ID] = append(byProduct[r.Product.ID], r)
	}
	sections := make([]Section, 0, len(products))
	for _, p := range products {
		sections = append(sections, BuildSection(p, byProduct[p.ID]))
	}
	return sections
}
