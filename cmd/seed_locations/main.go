// seed_locations genera un script SQL idempotente para poblar stock_locations
// a partir de la exportación XML (ISO-8859-1) del árbol de bodegas del sistema anterior.
//
// Uso: go run ./cmd/seed_locations [ruta/Ubicaciones.xml] [ruta/salida.sql]
// Por defecto lee Ubicaciones.xml en el directorio actual y escribe
// internal/infrastructure/postgres/seeds/stock_locations.sql.
//
// Formato esperado:
//
//	<?xml version="1.0" encoding="ISO-8859-1"?>
//	<inventario empresa="<uuid>">
//	  <ubicaciones>
//	    <ubicacion codigo="WH" nombre="Bodega Principal"/>
//	    <ubicacion codigo="WH-STOCK" nombre="Existencias" padre="WH"/>
//	  </ubicaciones>
//	</inventario>
//
// Los IDs se derivan del código (UUID v5 por empresa), así el script puede correrse varias veces.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type inventario struct {
	Empresa     string `xml:"empresa,attr"`
	Ubicaciones struct {
		Items []ubicacion `xml:"ubicacion"`
	} `xml:"ubicaciones"`
}

type ubicacion struct {
	Codigo string `xml:"codigo,attr"`
	Nombre string `xml:"nombre,attr"`
	Padre  string `xml:"padre,attr"`
}

// seedRow fila lista para insertar. ParentID vacío = raíz.
type seedRow struct {
	ID           string
	ParentID     string
	Code         string
	Name         string
	CompleteName string
	depth        int
}

func main() {
	xmlPath := "Ubicaciones.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "seeds", "stock_locations.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}
	companyID, err := uuid.Parse(strings.TrimSpace(doc.Empresa))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Atributo empresa inválido: %v\n", err)
		os.Exit(1)
	}
	rows, err := buildRows(companyID, doc.Ubicaciones.Items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Árbol de ubicaciones: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, companyID, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d ubicaciones\n", outPath, len(rows))
}

// decode lee el XML aceptando ISO-8859-1 además de UTF-8.
func decode(r io.Reader) (*inventario, error) {
	var doc inventario
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") || strings.EqualFold(charset, "latin1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// locationID deriva un UUID estable a partir de la empresa y el código de la ubicación.
func locationID(companyID uuid.UUID, code string) string {
	return uuid.NewSHA1(companyID, []byte(code)).String()
}

// buildRows valida el árbol (códigos únicos, padres existentes, sin ciclos) y lo ordena
// padres primero; a igual profundidad, por nombre completo.
func buildRows(companyID uuid.UUID, items []ubicacion) ([]seedRow, error) {
	byCode := make(map[string]ubicacion, len(items))
	for _, it := range items {
		it.Codigo = strings.TrimSpace(it.Codigo)
		it.Nombre = strings.TrimSpace(it.Nombre)
		it.Padre = strings.TrimSpace(it.Padre)
		if it.Codigo == "" || it.Nombre == "" {
			continue
		}
		if _, dup := byCode[it.Codigo]; dup {
			return nil, fmt.Errorf("código duplicado %q", it.Codigo)
		}
		byCode[it.Codigo] = it
	}

	rows := make([]seedRow, 0, len(byCode))
	for code, it := range byCode {
		names := []string{it.Nombre}
		seen := map[string]bool{code: true}
		for parent := it.Padre; parent != ""; {
			p, ok := byCode[parent]
			if !ok {
				return nil, fmt.Errorf("ubicación %q: padre %q no existe", code, parent)
			}
			if seen[parent] {
				return nil, fmt.Errorf("ciclo en el árbol de ubicaciones en %q", parent)
			}
			seen[parent] = true
			names = append(names, p.Nombre)
			parent = p.Padre
		}
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
		row := seedRow{
			ID:           locationID(companyID, code),
			Code:         code,
			Name:         it.Nombre,
			CompleteName: strings.Join(names, "/"),
			depth:        len(names) - 1,
		}
		if it.Padre != "" {
			row.ParentID = locationID(companyID, it.Padre)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].depth != rows[j].depth {
			return rows[i].depth < rows[j].depth
		}
		if rows[i].CompleteName != rows[j].CompleteName {
			return rows[i].CompleteName < rows[j].CompleteName
		}
		return rows[i].Code < rows[j].Code
	})
	return rows, nil
}

func writeSQL(w io.Writer, companyID uuid.UUID, rows []seedRow) error {
	var b strings.Builder
	b.WriteString("-- Árbol de ubicaciones de inventario\n")
	b.WriteString("-- Generado desde la exportación XML del sistema anterior\n\n")
	for _, r := range rows {
		parent := "NULL"
		if r.ParentID != "" {
			parent = "'" + r.ParentID + "'"
		}
		fmt.Fprintf(&b, "-- %s\n", r.Code)
		b.WriteString("INSERT INTO stock_locations (id, company_id, parent_id, name, complete_name)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', %s, '%s', '%s')\n",
			r.ID, companyID, parent, escapeSQL(r.Name), escapeSQL(r.CompleteName))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET parent_id = EXCLUDED.parent_id, name = EXCLUDED.name, complete_name = EXCLUDED.complete_name;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
