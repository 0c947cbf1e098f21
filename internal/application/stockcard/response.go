package stockcard

import (
	"github.com/jhoicas/stock-card-api/internal/application/dto"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// ToResponse traduce el reporte armado a la vista previa JSON.
func ToResponse(r *Report) dto.StockCardResponse {
	out := dto.StockCardResponse{
		LocationID:   r.Location.ID,
		LocationName: r.Location.DisplayName(),
		DateFrom:     r.DateFrom.Format(DateLayout),
		DateTo:       r.DateTo.Format(DateLayout),
		GeneratedAt:  r.GeneratedAt.Format(dateTimeLayout),
		Products:     make([]dto.StockCardProductDTO, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		p := dto.StockCardProductDTO{
			ProductID:      s.Product.ID,
			SKU:            s.Product.SKU,
			Name:           s.Product.Name,
			Uom:            s.Product.UomName,
			InitialBalance: s.InitialBalance,
			TotalIn:        s.TotalIn,
			TotalOut:       s.TotalOut,
			EndingBalance:  s.EndingBalance,
			Lines:          make([]dto.StockCardLineDTO, 0, len(s.Lines)),
		}
		for _, l := range s.Lines {
			line := dto.StockCardLineDTO{
				Date:        l.Date.Format(dateTimeLayout),
				Reference:   l.Reference,
				DisplayName: l.DisplayName(),
				Source:      l.Source.Name,
				Destination: l.Destination.Name,
				Uom:         l.Uom.Name,
				QtyIn:       l.QtyIn,
				QtyOut:      l.QtyOut,
				Balance:     l.Balance,
			}
			if l.Picking != nil {
				line.Picking = l.Picking.Name
			}
			p.Lines = append(p.Lines, line)
		}
		out.Products = append(out.Products, p)
	}
	return out
}
