package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockCardFilter parámetros de la consulta del kardex.
// DateFrom y DateTo son fechas de calendario (la hora se ignora).
type StockCardFilter struct {
	ProductIDs  []string
	LocationIDs []string // subárbol ya resuelto
	DateFrom    time.Time
	DateTo      time.Time
}

// StockCardMoveRow fila cruda devuelta por la consulta del kardex, con las marcas de entrada/salida/inicial.
type StockCardMoveRow struct {
	ID               string              `db:"id"`
	Date             time.Time           `db:"date"`
	ProductID        string              `db:"product_id"`
	ProductQty       decimal.Decimal     `db:"product_qty"`
	ProductUomQty    decimal.Decimal     `db:"product_uom_qty"`
	UomID            string              `db:"uom_id"`
	UomName          string              `db:"uom_name"`
	Reference        string              `db:"reference"`
	LocationID       string              `db:"location_id"`
	LocationName     string              `db:"location_name"`
	LocationDestID   string              `db:"location_dest_id"`
	LocationDestName string              `db:"location_dest_name"`
	ProductIn        decimal.NullDecimal `db:"product_in"`
	ProductOut       decimal.NullDecimal `db:"product_out"`
	IsInitial        bool                `db:"is_initial"`
	PickingID        *string             `db:"picking_id"`
	PickingName      *string             `db:"picking_name"`
}

// StockMoveRepository define el puerto de lectura del libro de movimientos (solo movimientos en estado done).
type StockMoveRepository interface {
	// ListForStockCard devuelve los movimientos ordenados por fecha y referencia.
	ListForStockCard(ctx context.Context, filter StockCardFilter) ([]StockCardMoveRow, error)
}
