package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ref referencia liviana a un registro externo (ubicación, unidad, traslado).
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LedgerRow es una línea del kardex (stock card). Vive solo durante la petición; nunca se persiste.
//
// Date es la hora local del usuario sin zona: el reloj de pared se guarda con time.UTC
// como ubicación, así que formatearla imprime la hora local.
// QtyIn se llena si el destino está dentro del subárbol; QtyOut si el origen lo está.
// Un movimiento interno al subárbol trae ambos.
type LedgerRow struct {
	Date          time.Time
	Product       *Product
	ProductQty    decimal.Decimal
	ProductUomQty decimal.Decimal
	Uom           Ref
	Reference     string
	Source        Ref
	Destination   Ref
	IsInitial     bool
	QtyIn         decimal.NullDecimal
	QtyOut        decimal.NullDecimal
	Picking       *Ref
}

// In devuelve la entrada o cero si no aplica.
func (r LedgerRow) In() decimal.Decimal {
	if r.QtyIn.Valid {
		return r.QtyIn.Decimal
	}
	return decimal.Zero
}

// Out devuelve la salida o cero si no aplica.
func (r LedgerRow) Out() decimal.Decimal {
	if r.QtyOut.Valid {
		return r.QtyOut.Decimal
	}
	return decimal.Zero
}

// DisplayName: nombre del producto más "(referencia)" cuando existe.
func (r LedgerRow) DisplayName() string {
	name := "Producto desconocido"
	if r.Product != nil {
		name = r.Product.Name
	}
	if r.Reference != "" {
		name += " (" + r.Reference + ")"
	}
	return name
}
