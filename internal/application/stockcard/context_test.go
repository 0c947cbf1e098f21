package stockcard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-card-api/internal/application/stockcard"
	"github.com/jhoicas/stock-card-api/internal/domain"
)

func TestNewReportContext_UsaZonaDelUsuario(t *testing.T) {
	rc, err := stockcard.NewReportContext("Asia/Tokyo", "UTC", at("2024-06-30T20:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", rc.Location.String())
	assert.Equal(t, "2024-07-01", rc.Today.Format(stockcard.DateLayout))
}

func TestNewReportContext_SinZonaUsaRespaldo(t *testing.T) {
	rc, err := stockcard.NewReportContext("", "UTC", at("2024-06-30T20:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", rc.Location.String())
	assert.Equal(t, "2024-06-30", rc.Today.Format(stockcard.DateLayout))
}

func TestNewReportContext_SinZonaNiRespaldoFalla(t *testing.T) {
	_, err := stockcard.NewReportContext("", "", at("2024-06-30T20:00:00Z"))
	assert.ErrorIs(t, err, domain.ErrTimezone)
}

func TestNewReportContext_ZonaInexistenteFalla(t *testing.T) {
	_, err := stockcard.NewReportContext("Marte/Olympus", "UTC", at("2024-06-30T20:00:00Z"))
	assert.ErrorIs(t, err, domain.ErrTimezone, "una zona inválida no cae al respaldo")
}

func TestParseReportType(t *testing.T) {
	assert.Equal(t, stockcard.ReportTypeSpreadsheet, stockcard.ParseReportType("xlsx"))
	assert.Equal(t, stockcard.ReportTypePrintable, stockcard.ParseReportType(""))
	assert.Equal(t, stockcard.ReportTypePrintable, stockcard.ParseReportType("qweb-pdf"))
	assert.Equal(t, "xlsx", stockcard.ReportTypeSpreadsheet.String())
	assert.Equal(t, "pdf", stockcard.ReportTypePrintable.String())
}
