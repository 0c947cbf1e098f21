package entity

// Product representa un producto del catálogo tal como lo necesita el kardex.
type Product struct {
	ID        string `db:"id"`
	CompanyID string `db:"company_id"`
	SKU       string `db:"sku"`
	Name      string `db:"name"`
	UomID     string `db:"uom_id"`
	UomName   string `db:"uom_name"`
}

// DisplayName devuelve "[SKU] Nombre" o solo el nombre si no hay SKU.
func (p Product) DisplayName() string {
	if p.SKU == "" {
		return p.Name
	}
	return "[" + p.SKU + "] " + p.Name
}
