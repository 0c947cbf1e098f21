package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-card-api/internal/application/dto"
	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain"
)

// stockCardService es lo que el handler necesita del caso de uso; lo implementa *stockcard.UseCase.
type stockCardService interface {
	ResolveContext(userTZ string) (stockcard.ReportContext, error)
	Build(ctx context.Context, rc stockcard.ReportContext, companyID string, in dto.StockCardRequest) (*stockcard.Report, error)
	Print(ctx context.Context, rc stockcard.ReportContext, companyID string, in dto.StockCardRequest) (*stockcard.Document, error)
}

// StockCardHandler expone el kardex: vista previa JSON e impresión/exportación.
type StockCardHandler struct {
	uc  stockCardService
	log zerolog.Logger
}

// NewStockCardHandler construye el handler.
func NewStockCardHandler(uc stockCardService, log zerolog.Logger) *StockCardHandler {
	return &StockCardHandler{uc: uc, log: log}
}

// Preview godoc
// @Summary      Vista previa del kardex
// @Description  Movimientos de los productos en la ubicación (y sus hijas) con saldo inicial, saldo corrido y totales.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true   "Ubicación raíz (UUID)"
// @Param        product_ids  query  string  true   "Productos (UUID); repetir el parámetro o separar por comas"
// @Param        date_from    query  string  false  "YYYY-MM-DD (por defecto 0001-01-01)"
// @Param        date_to      query  string  false  "YYYY-MM-DD (por defecto hoy en la zona del usuario)"
// @Success      200  {object}  dto.StockCardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-card [get]
func (h *StockCardHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	rc, err := h.uc.ResolveContext(GetTZ(c))
	if err != nil {
		return h.writeError(c, err)
	}
	in := dto.StockCardRequest{
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		LocationID: c.Query("location_id"),
		ProductIDs: queryList(c, "product_ids"),
	}
	report, err := h.uc.Build(c.Context(), rc, companyID, in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(stockcard.ToResponse(report))
}

// Print godoc
// @Summary      Imprimir o exportar el kardex
// @Description  report_type "xlsx" devuelve una hoja de cálculo; cualquier otro valor (o vacío) devuelve PDF.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  dto.StockCardRequest  true  "location_id, product_ids, date_from, date_to, report_type"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-card/print [post]
func (h *StockCardHandler) Print(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.StockCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rc, err := h.uc.ResolveContext(GetTZ(c))
	if err != nil {
		return h.writeError(c, err)
	}
	doc, err := h.uc.Print(c.Context(), rc, companyID, in)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Content)
}

// writeError traduce los errores de dominio a HTTP. Los 500 se registran con el error completo.
func (h *StockCardHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrTimezone):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TIMEZONE", Message: err.Error()})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Str("company_id", GetCompanyID(c)).Msg("kardex: error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error generando el kardex"})
}

// queryList junta un parámetro repetido (?a=1&a=2) y/o separado por comas (?a=1,2).
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
