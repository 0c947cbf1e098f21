package stockcard

// ReportType backend de salida del kardex.
type ReportType int

const (
	// ReportTypePrintable página imprimible (PDF). Es el valor por defecto.
	ReportTypePrintable ReportType = iota
	// ReportTypeSpreadsheet hoja de cálculo (xlsx).
	ReportTypeSpreadsheet
)

// ParseReportType traduce el selector recibido: "xlsx" es hoja de cálculo; cualquier otro valor, incluido vacío, es PDF.
func ParseReportType(s string) ReportType {
	if s == "xlsx" {
		return ReportTypeSpreadsheet
	}
	return ReportTypePrintable
}

func (t ReportType) String() string {
	if t == ReportTypeSpreadsheet {
		return "xlsx"
	}
	return "pdf"
}
