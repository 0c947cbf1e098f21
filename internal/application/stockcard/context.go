package stockcard

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-card-api/internal/domain"
)

// ReportContext contexto explícito de la petición: zona del usuario y "hoy" en esa zona.
type ReportContext struct {
	Location *time.Location
	Today    time.Time // fecha de calendario a medianoche, sin zona
}

// NewReportContext resuelve la zona horaria del usuario.
// Si tz viene vacío se usa fallback; si ambos están vacíos o la zona no existe, devuelve domain.ErrTimezone.
func NewReportContext(tz, fallback string, now time.Time) (ReportContext, error) {
	name := tz
	if name == "" {
		name = fallback
	}
	if name == "" {
		return ReportContext{}, fmt.Errorf("%w: el usuario no tiene zona configurada", domain.ErrTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return ReportContext{}, fmt.Errorf("%w: %q: %v", domain.ErrTimezone, name, err)
	}
	return ReportContext{Location: loc, Today: truncateDate(naiveLocal(now, loc))}, nil
}

// naiveLocal convierte t a la zona loc y descarta la zona: el reloj de pared queda expresado en UTC.
func naiveLocal(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
