package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrTimezone: el usuario no tiene zona horaria resoluble y no hay zona de respaldo.
	ErrTimezone = errors.New("zona horaria del usuario no resoluble")
)
