package stockcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-card-api/internal/application/dto"
	"github.com/jhoicas/stock-card-api/internal/domain"
	"github.com/jhoicas/stock-card-api/internal/domain/entity"
	"github.com/jhoicas/stock-card-api/internal/domain/ledger"
	"github.com/jhoicas/stock-card-api/internal/domain/repository"
)

// epochStart fecha inicial por defecto cuando no se envía date_from.
var epochStart = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config parámetros del caso de uso.
type Config struct {
	FallbackTZ   string        // zona usada si el usuario no tiene una; vacío = error de contexto
	QueryTimeout time.Duration // 0 = sin límite propio
	CompanyName  string
}

// UseCase genera el kardex: consulta de movimientos → normalización → armado → despacho al backend.
type UseCase struct {
	txRunner    TxRunner
	printable   Renderer
	spreadsheet Renderer
	cfg         Config
	log         zerolog.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(txRunner TxRunner, printable, spreadsheet Renderer, cfg Config, log zerolog.Logger) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		printable:   printable,
		spreadsheet: spreadsheet,
		cfg:         cfg,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// ResolveContext arma el contexto de la petición a partir de la zona horaria del usuario.
func (uc *UseCase) ResolveContext(userTZ string) (ReportContext, error) {
	return NewReportContext(userTZ, uc.cfg.FallbackTZ, uc.now())
}

// request petición ya validada.
type request struct {
	companyID  string
	dateFrom   time.Time
	dateTo     time.Time
	productIDs []string
	locationID string
}

// Build ejecuta las etapas de consulta, normalización y armado. No renderiza.
//
// Retorna:
//   - domain.ErrInvalidInput si falta la ubicación, no hay productos, o un ID/fecha es inválido.
//   - domain.ErrNotFound     si la ubicación o algún producto no existen.
//   - domain.ErrForbidden    si la ubicación o algún producto son de otra empresa.
func (uc *UseCase) Build(ctx context.Context, rc ReportContext, companyID string, in dto.StockCardRequest) (*Report, error) {
	if rc.Location == nil {
		return nil, fmt.Errorf("%w: contexto sin zona horaria", domain.ErrTimezone)
	}
	req, err := parseRequest(companyID, in, rc)
	if err != nil {
		return nil, err
	}
	if uc.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.QueryTimeout)
		defer cancel()
	}

	var (
		location *entity.Location
		products []*entity.Product
		raw      []repository.StockCardMoveRow
	)
	err = uc.txRunner.RunReadOnly(ctx, func(
		locationRepo repository.LocationRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		var err error
		if location, err = uc.loadLocation(ctx, locationRepo, req); err != nil {
			return err
		}
		if products, err = uc.loadProducts(ctx, productRepo, req); err != nil {
			return err
		}
		subtree, err := locationRepo.Subtree(ctx, location.ID)
		if err != nil {
			return fmt.Errorf("stockcard: resolver subárbol: %w", err)
		}
		raw, err = moveRepo.ListForStockCard(ctx, repository.StockCardFilter{
			ProductIDs:  req.productIDs,
			LocationIDs: subtree,
			DateFrom:    req.dateFrom,
			DateTo:      req.dateTo,
		})
		if err != nil {
			return fmt.Errorf("stockcard: consultar movimientos: %w", err)
		}
		uc.log.Debug().Int("locations", len(subtree)).Int("moves", len(raw)).Msg("movimientos consultados")
		return nil
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	rows, err := normalizeRows(raw, byID, rc.Location)
	if err != nil {
		return nil, err
	}

	return &Report{
		CompanyName: uc.cfg.CompanyName,
		Location:    location,
		Products:    products,
		DateFrom:    req.dateFrom,
		DateTo:      req.dateTo,
		GeneratedAt: naiveLocal(uc.now(), rc.Location),
		Rows:        rows,
		Sections:    ledger.BuildSections(products, rows),
	}, nil
}

// Print arma el kardex y lo despacha al backend elegido por reportType.
func (uc *UseCase) Print(ctx context.Context, rc ReportContext, companyID string, in dto.StockCardRequest) (*Document, error) {
	reportType := ParseReportType(in.ReportType)
	renderer := uc.rendererFor(reportType)

	report, err := uc.Build(ctx, rc, companyID, in)
	if err != nil {
		return nil, err
	}
	doc, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("stockcard: renderizar %s: %w", reportType, err)
	}
	uc.log.Info().
		Str("type", reportType.String()).
		Str("location_id", report.Location.ID).
		Int("products", len(report.Products)).
		Int("rows", len(report.Rows)).
		Int("bytes", len(doc.Content)).
		Msg("kardex generado")
	return doc, nil
}

func (uc *UseCase) rendererFor(t ReportType) Renderer {
	switch t {
	case ReportTypeSpreadsheet:
		return uc.spreadsheet
	default:
		return uc.printable
	}
}

func (uc *UseCase) loadLocation(ctx context.Context, repo repository.LocationRepository, req request) (*entity.Location, error) {
	location, err := repo.GetByID(ctx, req.locationID)
	if err != nil {
		return nil, fmt.Errorf("stockcard: obtener ubicación: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, req.locationID)
	}
	if location.CompanyID != req.companyID {
		return nil, domain.ErrForbidden
	}
	return location, nil
}

// loadProducts devuelve los productos en el orden solicitado.
func (uc *UseCase) loadProducts(ctx context.Context, repo repository.ProductRepository, req request) ([]*entity.Product, error) {
	found, err := repo.GetByIDs(ctx, req.productIDs)
	if err != nil {
		return nil, fmt.Errorf("stockcard: obtener productos: %w", err)
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Product, 0, len(req.productIDs))
	for _, id := range req.productIDs {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		if p.CompanyID != req.companyID {
			return nil, domain.ErrForbidden
		}
		ordered = append(ordered, p)
	}
	return ordered, nil
}

// parseRequest valida la entrada antes de tocar la base de datos y aplica los valores por defecto.
func parseRequest(companyID string, in dto.StockCardRequest, rc ReportContext) (request, error) {
	req := request{companyID: companyID, dateFrom: epochStart, dateTo: rc.Today}

	req.locationID = strings.TrimSpace(in.LocationID)
	if req.locationID == "" {
		return req, fmt.Errorf("%w: location_id es requerido", domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.locationID); err != nil {
		return req, fmt.Errorf("%w: location_id inválido", domain.ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return req, fmt.Errorf("%w: product_id inválido: %s", domain.ErrInvalidInput, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		req.productIDs = append(req.productIDs, id)
	}
	if len(req.productIDs) == 0 {
		return req, fmt.Errorf("%w: product_ids no puede estar vacío", domain.ErrInvalidInput)
	}

	var err error
	if in.DateFrom != "" {
		if req.dateFrom, err = time.Parse(DateLayout, in.DateFrom); err != nil {
			return req, fmt.Errorf("%w: date_from debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	if in.DateTo != "" {
		if req.dateTo, err = time.Parse(DateLayout, in.DateTo); err != nil {
			return req, fmt.Errorf("%w: date_to debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	if req.dateFrom.After(req.dateTo) {
		return req, fmt.Errorf("%w: date_from posterior a date_to", domain.ErrInvalidInput)
	}
	return req, nil
}
