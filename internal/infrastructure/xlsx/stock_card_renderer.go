// Package xlsx implementa la exportación del kardex a hoja de cálculo con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain/ledger"
)

// ContentType tipo MIME de un libro xlsx.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName nombre de la hoja del kardex.
const SheetName = "Kardex"

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	numFmtQty      = 4 // #,##0.00
)

// Columnas de la tabla de movimientos.
var tableHeaders = []string{"Fecha", "Referencia", "Descripción", "Origen", "Destino", "Traslado", "Entrada", "Salida", "Saldo"}

const (
	colIn      = 7
	colOut     = 8
	colBalance = 9
)

// StockCardRenderer implementa stockcard.Renderer generando un libro xlsx de una hoja.
type StockCardRenderer struct{}

var _ stockcard.Renderer = (*StockCardRenderer)(nil)

// NewStockCardRenderer construye el renderer.
func NewStockCardRenderer() *StockCardRenderer { return &StockCardRenderer{} }

// sheetWriter acumula el primer error de excelize para no chequear cada celda.
type sheetWriter struct {
	f    *excelize.File
	row  int
	bold int
	qty  int
	err  error
}

func (w *sheetWriter) set(col int, value any, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellValue(SheetName, cell, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(SheetName, cell, cell, style)
	}
}

func (w *sheetWriter) qtyCell(col int, d decimal.Decimal) {
	w.set(col, d.InexactFloat64(), w.qty)
}

func (w *sheetWriter) next() { w.row++ }

// Render genera el libro y devuelve sus bytes.
func (r *StockCardRenderer) Render(_ context.Context, report *stockcard.Report) (*stockcard.Document, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	qty, err := f.NewStyle(&excelize.Style{NumFmt: numFmtQty})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "F", 24); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	w := &sheetWriter{f: f, row: 1, bold: bold, qty: qty}
	writeHeader(w, report)
	for _, s := range report.Sections {
		writeSection(w, s)
	}
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return &stockcard.Document{
		Content:     buf.Bytes(),
		ContentType: ContentType,
		Filename:    report.Filename("xlsx"),
	}, nil
}

// writeHeader: empresa, ubicación, rango y fecha de generación. Deja una fila en blanco.
func writeHeader(w *sheetWriter, report *stockcard.Report) {
	w.set(1, report.CompanyName, w.bold)
	w.set(2, "Kardex de inventario", w.bold)
	w.next()
	w.set(1, "Ubicación", w.bold)
	w.set(2, report.LocationName(), 0)
	w.next()
	w.set(1, "Desde", w.bold)
	w.set(2, report.DateFrom.Format(stockcard.DateLayout), 0)
	w.set(3, "Hasta", w.bold)
	w.set(4, report.DateTo.Format(stockcard.DateLayout), 0)
	w.next()
	w.set(1, "Generado", w.bold)
	w.set(2, report.GeneratedAt.Format(dateTimeLayout), 0)
	w.next()
	w.next()
}

// writeSection: título del producto, cabecera, saldo inicial, líneas y totales.
func writeSection(w *sheetWriter, s ledger.Section) {
	title := "Producto desconocido"
	uom := ""
	if s.Product != nil {
		title = s.Product.DisplayName()
		uom = s.Product.UomName
	}
	w.set(1, title, w.bold)
	if uom != "" {
		w.set(2, uom, 0)
	}
	w.next()

	for i, h := range tableHeaders {
		w.set(i+1, h, w.bold)
	}
	w.next()

	w.set(1, "Saldo inicial", w.bold)
	w.qtyCell(colBalance, s.InitialBalance)
	w.next()

	for _, l := range s.Lines {
		w.set(1, l.Date.Format(dateTimeLayout), 0)
		w.set(2, l.Reference, 0)
		w.set(3, l.DisplayName(), 0)
		w.set(4, l.Source.Name, 0)
		w.set(5, l.Destination.Name, 0)
		if l.Picking != nil {
			w.set(6, l.Picking.Name, 0)
		}
		if l.QtyIn.Valid {
			w.qtyCell(colIn, l.QtyIn.Decimal)
		}
		if l.QtyOut.Valid {
			w.qtyCell(colOut, l.QtyOut.Decimal)
		}
		w.qtyCell(colBalance, l.Balance)
		w.next()
	}

	w.set(1, "Totales", w.bold)
	w.qtyCell(colIn, s.TotalIn)
	w.qtyCell(colOut, s.TotalOut)
	w.qtyCell(colBalance, s.EndingBalance)
	w.next()
	w.next()
}
