// Package pdf implementa la versión imprimible del kardex (stock card).
//
// Layout de la página A4 (márgenes de 10 mm):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + "KARDEX" │ Ubicación + rango + generado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR PRODUCTO:                                              │
//	│    [SKU] Nombre (unidad)                                    │
//	│    Fecha | Referencia | Origen | Destino | Ent. | Sal. | Saldo│
//	│    Saldo inicial ...                                        │
//	│    líneas ...                                               │
//	│    Totales + saldo final                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/ledger"
)

// ContentType tipo MIME del documento imprimible.
const ContentType = "application/pdf"

const (
	dateTimeLayout = "2006-01-02 15:04"
	pageMarginMM   = 10
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// StockCardRenderer implementa stockcard.Renderer usando Maroto v2.
type StockCardRenderer struct {
	numbers *message.Printer
}

var _ stockcard.Renderer = (*StockCardRenderer)(nil)

// NewStockCardRenderer construye el renderer. Las cantidades se imprimen con separadores es-CO.
func NewStockCardRenderer() *StockCardRenderer {
	return &StockCardRenderer{numbers: message.NewPrinter(language.MustParse("es-CO"))}
}

// Render genera el PDF y devuelve sus bytes.
func (g *StockCardRenderer) Render(_ context.Context, report *stockcard.Report) (*stockcard.Document, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(pageMarginMM).WithRightMargin(pageMarginMM).
		WithTopMargin(pageMarginMM).WithBottomMargin(pageMarginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Kardex de inventario", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range report.Sections {
		m.AddRows(g.sectionRows(s)...)
		m.AddRows(line.NewRow(4))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return &stockcard.Document{
		Content:     doc.GetBytes(),
		ContentType: ContentType,
		Filename:    report.Filename("pdf"),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y ubicación + rango + fecha de generación (der).
func headerRow(report *stockcard.Report) core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New(nonEmpty(report.CompanyName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Ubicación: "+nonEmpty(report.LocationName(), "—"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Desde %s hasta %s",
				report.DateFrom.Format(stockcard.DateLayout),
				report.DateTo.Format(stockcard.DateLayout),
			), props.Text{Size: 8, Align: align.Right, Top: 7}),
			text.New("Generado: "+report.GeneratedAt.Format(dateTimeLayout), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func (g *StockCardRenderer) sectionRows(s ledger.Section) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(productTitle(s.Product), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)),
		tableHeaderRow(),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		summaryRow("Saldo inicial", "", "", g.qty(s.InitialBalance)),
	}
	for _, l := range s.Lines {
		rows = append(rows, g.lineRow(l))
	}
	rows = append(rows,
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		summaryRow("Totales / saldo final", g.qty(s.TotalIn), g.qty(s.TotalOut), g.qty(s.EndingBalance)),
	)
	return rows
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Referencia", 3, align.Left),
		h("Origen", 2, align.Left),
		h("Destino", 2, align.Left),
		h("Entrada", 1, align.Right),
		h("Salida", 1, align.Right),
		h("Saldo", 1, align.Right),
	)
}

// lineRow: un movimiento visible con su saldo corrido. Entrada/salida vacías cuando no aplican.
func (g *StockCardRenderer) lineRow(l ledger.Line) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(5).Add(
		cell(l.Date.Format(dateTimeLayout), 2, align.Left),
		cell(l.DisplayName(), 3, align.Left),
		cell(l.Source.Name, 2, align.Left),
		cell(l.Destination.Name, 2, align.Left),
		cell(g.nullQty(l.QtyIn), 1, align.Right),
		cell(g.nullQty(l.QtyOut), 1, align.Right),
		cell(g.qty(l.Balance), 1, align.Right),
	)
}

func summaryRow(label, in, out, balance string) core.Row {
	bold := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		bold(label, 9, align.Left),
		bold(in, 1, align.Right),
		bold(out, 1, align.Right),
		bold(balance, 1, align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productTitle(p *entity.Product) string {
	if p == nil {
		return "Producto desconocido"
	}
	if p.UomName != "" {
		return p.DisplayName() + " (" + p.UomName + ")"
	}
	return p.DisplayName()
}

// qty formatea una cantidad con dos decimales y separador de miles.
func (g *StockCardRenderer) qty(d decimal.Decimal) string {
	return g.numbers.Sprintf("%.2f", d.InexactFloat64())
}

func (g *StockCardRenderer) nullQty(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return g.qty(d.Decimal)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
