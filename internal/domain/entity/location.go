package entity

// Location representa una ubicación de inventario dentro del árbol de bodegas.
// ParentID vacío indica una ubicación raíz.
type Location struct {
	ID           string `db:"id"`
	CompanyID    string `db:"company_id"`
	ParentID     string `db:"parent_id"`
	Name         string `db:"name"`
	CompleteName string `db:"complete_name"` // ej. "WH/Stock/Shelf 1"
}

// DisplayName devuelve el nombre completo si existe, si no el nombre corto.
func (l Location) DisplayName() string {
	if l.CompleteName != "" {
		return l.CompleteName
	}
	return l.Name
}
