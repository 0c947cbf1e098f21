package dto

import "github.com/shopspring/decimal"

// StockCardRequest parámetros del kardex (query en la vista previa, body en la impresión).
// Fechas en formato YYYY-MM-DD; vacías toman los valores por defecto (0001-01-01 y hoy).
type StockCardRequest struct {
	DateFrom   string   `json:"date_from,omitempty"`
	DateTo     string   `json:"date_to,omitempty"`
	ProductIDs []string `json:"product_ids"`
	LocationID string   `json:"location_id"`
	ReportType string   `json:"report_type,omitempty"` // "xlsx" o cualquier otro valor para PDF
}

// StockCardResponse vista previa del kardex.
type StockCardResponse struct {
	LocationID   string                `json:"location_id"`
	LocationName string                `json:"location_name"`
	DateFrom     string                `json:"date_from"`
	DateTo       string                `json:"date_to"`
	GeneratedAt  string                `json:"generated_at"`
	Products     []StockCardProductDTO `json:"products"`
}

// StockCardProductDTO kardex de un producto.
type StockCardProductDTO struct {
	ProductID      string             `json:"product_id"`
	SKU            string             `json:"sku"`
	Name           string             `json:"name"`
	Uom            string             `json:"uom"`
	InitialBalance decimal.Decimal    `json:"initial_balance"`
	TotalIn        decimal.Decimal    `json:"total_in"`
	TotalOut       decimal.Decimal    `json:"total_out"`
	EndingBalance  decimal.Decimal    `json:"ending_balance"`
	Lines          []StockCardLineDTO `json:"lines"`
}

// StockCardLineDTO línea visible del kardex. QtyIn/QtyOut son null cuando no aplican.
type StockCardLineDTO struct {
	Date        string              `json:"date"` // hora local del usuario, sin zona
	Reference   string              `json:"reference"`
	DisplayName string              `json:"display_name"`
	Source      string              `json:"source"`
	Destination string              `json:"destination"`
	Picking     string              `json:"picking,omitempty"`
	Uom         string              `json:"uom"`
	QtyIn       decimal.NullDecimal `json:"qty_in"`
	QtyOut      decimal.NullDecimal `json:"qty_out"`
	Balance     decimal.Decimal     `json:"balance"`
}
