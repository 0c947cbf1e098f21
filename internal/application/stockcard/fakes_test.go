package stockcard_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Libro de movimientos en memoria con la misma semántica que la consulta SQL
// ──────────────────────────────────────────────────────────────────────────────

type memMove struct {
	id, product, src, dst, ref, state, picking string
	date                                       time.Time
	qty                                        int64
}

type memLedger struct {
	locations map[string]*entity.Location
	products  map[string]*entity.Product
	moves     []memMove

	moveErr error
	runs    int
}

var _ stockcard.TxRunner = (*memLedger)(nil)

func newMemLedger() *memLedger {
	return &memLedger{
		locations: map[string]*entity.Location{},
		products:  map[string]*entity.Product{},
	}
}

func (m *memLedger) RunReadOnly(ctx context.Context, fn func(
	repository.LocationRepository, repository.ProductRepository, repository.StockMoveRepository,
) error) error {
	m.runs++
	return fn(memLocations{m}, memProducts{m}, memMoves{m})
}

type memLocations struct{ m *memLedger }

func (r memLocations) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.m.locations[id], nil
}

func (r memLocations) Subtree(_ context.Context, rootID string) ([]string, error) {
	out := []string{rootID}
	for i := 0; i < len(out); i++ {
		for _, l := range r.m.locations {
			if l.ParentID == out[i] {
				out = append(out, l.ID)
			}
		}
	}
	return out, nil
}

type memProducts struct{ m *memLedger }

func (r memProducts) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMoves struct{ m *memLedger }

func (r memMoves) ListForStockCard(_ context.Context, f repository.StockCardFilter) ([]repository.StockCardMoveRow, error) {
	if r.m.moveErr != nil {
		return nil, r.m.moveErr
	}
	in := func(set []string, id string) bool {
		for _, s := range set {
			if s == id {
				return true
			}
		}
		return false
	}
	var out []repository.StockCardMoveRow
	for _, mv := range r.m.moves {
		if mv.state != "done" || !in(f.ProductIDs, mv.product) {
			continue
		}
		srcIn, dstIn := in(f.LocationIDs, mv.src), in(f.LocationIDs, mv.dst)
		if !srcIn && !dstIn {
			continue
		}
		day := time.Date(mv.date.UTC().Year(), mv.date.UTC().Month(), mv.date.UTC().Day(), 0, 0, 0, 0, time.UTC)
		if day.After(f.DateTo) {
			continue
		}
		q := decimal.NewFromInt(mv.qty)
		row := repository.StockCardMoveRow{
			ID: mv.id, Date: mv.date, ProductID: mv.product,
			ProductQty: q, ProductUomQty: q, UomID: "u1", UomName: "Unidades",
			Reference: mv.ref, LocationID: mv.src, LocationName: mv.src,
			LocationDestID: mv.dst, LocationDestName: mv.dst,
			IsInitial: mv.date.Before(f.DateFrom),
		}
		if dstIn {
			row.ProductIn = decimal.NewNullDecimal(q)
		}
		if srcIn {
			row.ProductOut = decimal.NewNullDecimal(q)
		}
		if mv.picking != "" {
			id, name := mv.picking, "PICK/"+mv.picking
			row.PickingID, row.PickingName = &id, &name
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Reference != out[j].Reference {
			return out[i].Reference < out[j].Reference
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Backend de documentos falso
// ──────────────────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	name   string
	err    error
	calls  int
	report *stockcard.Report
}

func (f *fakeRenderer) Render(_ context.Context, r *stockcard.Report) (*stockcard.Document, error) {
	f.calls++
	f.report = r
	if f.err != nil {
		return nil, f.err
	}
	return &stockcard.Document{Content: []byte(f.name), ContentType: "application/" + f.name, Filename: "kardex." + f.name}, nil
}
