package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
)

// Roles con acceso al kardex.
var stockCardRoles = []string{"admin", "bodeguero", "contador"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockCardUC *stockcard.UseCase
	JWTSecret   string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reports (protegido + RBAC)
	reports := protected.Group("/reports", RequireRole(stockCardRoles...))
	stockCardHandler := NewStockCardHandler(deps.StockCardUC, deps.Log)
	reports.Get("/stock-card", stockCardHandler.Preview)
	reports.Post("/stock-card/print", stockCardHandler.Print)
}
