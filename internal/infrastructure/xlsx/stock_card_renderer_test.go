package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/ledger"
	"github.com/jhoicas/stock-card-api/internal/infrastructure/xlsx"
)

func sampleReport() *stockcard.Report {
	p1 := &entity.Product{ID: "p1", SKU: "SKU-1", Name: "Tornillo", UomName: "Unidad"}
	p2 := &entity.Product{ID: "p2", Name: "Tuerca"}
	stock := entity.Ref{ID: "l1", Name: "WH/Stock"}
	customers := entity.Ref{ID: "l2", Name: "Clientes"}
	rows := []entity.LedgerRow{
		{
			Date: time.Date(2023, 12, 15, 9, 0, 0, 0, time.UTC), Product: p1, Reference: "IN/001",
			Source: customers, Destination: stock, IsInitial: true,
			QtyIn: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		},
		{
			Date: time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC), Product: p1, Reference: "OUT/002",
			Source: stock, Destination: customers,
			QtyOut:  decimal.NewNullDecimal(decimal.NewFromInt(4)),
			Picking: &entity.Ref{ID: "pk1", Name: "WH/OUT/0002"},
		},
	}
	return &stockcard.Report{
		CompanyName: "Ferretería Central",
		Location:    &entity.Location{ID: "l1", Name: "Stock", CompleteName: "WH/Stock"},
		Products:    []*entity.Product{p1, p2},
		DateFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		Rows:        rows,
		Sections:    ledger.BuildSections([]*entity.Product{p1, p2}, rows),
	}
}

func TestStockCardRenderer_Render(t *testing.T) {
	doc, err := xlsx.NewStockCardRenderer().Render(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.Equal(t, xlsx.ContentType, doc.ContentType)
	assert.Equal(t, "stock_card_2024-01-01_2024-01-31.xlsx", doc.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetName}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}
	cell := func(ref string) string {
		v, err := f.GetCellValue(xlsx.SheetName, ref, raw)
		require.NoError(t, err)
		return v
	}

	// encabezado
	assert.Equal(t, "Ferretería Central", cell("A1"))
	assert.Equal(t, "WH/Stock", cell("B2"))
	assert.Equal(t, "2024-01-01", cell("B3"))
	assert.Equal(t, "2024-01-31", cell("D3"))
	assert.Equal(t, "2024-02-01 08:00:00", cell("B4"))

	// producto con movimientos: inicial 10, salida 4, saldo 6
	assert.Equal(t, "[SKU-1] Tornillo", cell("A6"))
	assert.Equal(t, "Fecha", cell("A7"))
	assert.Equal(t, "Saldo", cell("I7"))
	assert.Equal(t, "Saldo inicial", cell("A8"))
	assert.Equal(t, "10", cell("I8"))
	assert.Equal(t, "2024-01-10 14:30:00", cell("A9"))
	assert.Equal(t, "OUT/002", cell("B9"))
	assert.Equal(t, "Tornillo (OUT/002)", cell("C9"))
	assert.Equal(t, "WH/OUT/0002", cell("F9"))
	assert.Equal(t, "", cell("G9"))
	assert.Equal(t, "4", cell("H9"))
	assert.Equal(t, "6", cell("I9"))
	assert.Equal(t, "Totales", cell("A10"))
	assert.Equal(t, "6", cell("I10"))

	// producto sin movimientos: aparece con ceros
	assert.Equal(t, "Tuerca", cell("A12"))
	assert.Equal(t, "0", cell("I14"))
	assert.Equal(t, "Totales", cell("A15"))
	assert.Equal(t, "0", cell("I15"))
}
