package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-card-api/internal/domain/repository"
	"github.com/jhoicas/stock-card-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-card-api/pkg/config"
)

// Requiere TEST_DATABASE_URL; crea un schema propio y lo elimina al terminar.

const (
	itCompany  = "00000000-0000-0000-0000-000000000002"
	itOther    = "00000000-0000-0000-0000-000000000009"
	itWH       = "10000000-0000-0000-0000-000000000001"
	itStock    = "10000000-0000-0000-0000-000000000002"
	itShelf    = "10000000-0000-0000-0000-000000000003"
	itVendor   = "10000000-0000-0000-0000-000000000004"
	itCustomer = "10000000-0000-0000-0000-000000000005"
	itUnit     = "20000000-0000-0000-0000-000000000001"
	itP1       = "30000000-0000-0000-0000-000000000001"
	itP2       = "30000000-0000-0000-0000-000000000002"
	itPicking  = "40000000-0000-0000-0000-000000000001"
)

var itSchema = []string{
	`CREATE TABLE uoms (id uuid PRIMARY KEY, name text NOT NULL)`,
	`CREATE TABLE stock_locations (
		id uuid PRIMARY KEY, company_id uuid NOT NULL, parent_id uuid REFERENCES stock_locations(id),
		name text NOT NULL, complete_name text)`,
	`CREATE TABLE products (
		id uuid PRIMARY KEY, company_id uuid NOT NULL, sku text, name text NOT NULL, uom_id uuid REFERENCES uoms(id))`,
	`CREATE TABLE stock_pickings (id uuid PRIMARY KEY, name text NOT NULL)`,
	`CREATE TABLE stock_moves (
		id uuid PRIMARY KEY, date timestamptz NOT NULL, product_id uuid NOT NULL REFERENCES products(id),
		product_qty numeric NOT NULL, product_uom_qty numeric NOT NULL, product_uom_id uuid REFERENCES uoms(id),
		reference text, location_id uuid NOT NULL REFERENCES stock_locations(id),
		location_dest_id uuid NOT NULL REFERENCES stock_locations(id), state text NOT NULL,
		picking_id uuid REFERENCES stock_pickings(id))`,
}

var itSeed = []string{
	`INSERT INTO uoms VALUES ('` + itUnit + `', 'Unidad')`,
	`INSERT INTO stock_locations VALUES
		('` + itWH + `', '` + itCompany + `', NULL, 'WH', 'WH'),
		('` + itStock + `', '` + itCompany + `', '` + itWH + `', 'Stock', 'WH/Stock'),
		('` + itShelf + `', '` + itCompany + `', '` + itStock + `', 'Shelf 1', 'WH/Stock/Shelf 1'),
		('` + itVendor + `', '` + itCompany + `', NULL, 'Proveedores', ''),
		('` + itCustomer + `', '` + itCompany + `', NULL, 'Clientes', NULL)`,
	`INSERT INTO products VALUES
		('` + itP1 + `', '` + itCompany + `', 'SKU-1', 'Tornillo', '` + itUnit + `'),
		('` + itP2 + `', '` + itOther + `', NULL, 'Tuerca', NULL)`,
	`INSERT INTO stock_pickings VALUES ('` + itPicking + `', 'WH/OUT/0002')`,
	// inicial, salida, interno, fuera de rango, no done, ajeno al subárbol
	`INSERT INTO stock_moves VALUES
		('50000000-0000-0000-0000-000000000001', '2023-12-15 10:00:00+00', '` + itP1 + `', 10, 10, '` + itUnit + `', 'IN/001', '` + itVendor + `', '` + itStock + `', 'done', NULL),
		('50000000-0000-0000-0000-000000000002', '2024-01-10 03:30:00+00', '` + itP1 + `', 4, 4, '` + itUnit + `', 'OUT/002', '` + itShelf + `', '` + itCustomer + `', 'done', '` + itPicking + `'),
		('50000000-0000-0000-0000-000000000003', '2024-01-20 12:00:00+00', '` + itP1 + `', 2, 2, '` + itUnit + `', 'INT/003', '` + itStock + `', '` + itShelf + `', 'done', NULL),
		('50000000-0000-0000-0000-000000000004', '2024-02-01 00:00:00+00', '` + itP1 + `', 1, 1, '` + itUnit + `', 'OUT/004', '` + itStock + `', '` + itCustomer + `', 'done', NULL),
		('50000000-0000-0000-0000-000000000005', '2024-01-15 00:00:00+00', '` + itP1 + `', 7, 7, '` + itUnit + `', 'IN/005', '` + itVendor + `', '` + itStock + `', 'draft', NULL),
		('50000000-0000-0000-0000-000000000006', '2024-01-16 00:00:00+00', '` + itP1 + `', 3, 3, '` + itUnit + `', 'DROP/006', '` + itVendor + `', '` + itCustomer + `', 'done', NULL),
		('50000000-0000-0000-0000-000000000007', '2024-01-31 23:59:00+00', '` + itP1 + `', 5, 5, '` + itUnit + `', 'IN/007', '` + itVendor + `', '` + itShelf + `', 'done', NULL)`,
}

func setupIntegration(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	schema := fmt.Sprintf("stockcard_it_%d", time.Now().UnixNano())

	admin, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(context.Background())
	})

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url + sep + "search_path=" + schema})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	for _, stmt := range append(itSchema, itSeed...) {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err, stmt)
	}
	return pool
}

func TestIntegration_StockCard(t *testing.T) {
	pool := setupIntegration(t)
	ctx := context.Background()

	var rows []repository.StockCardMoveRow
	err := postgres.NewTxRunner(pool).RunReadOnly(ctx, func(
		locationRepo repository.LocationRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		loc, err := locationRepo.GetByID(ctx, itStock)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, itWH, loc.ParentID)
		assert.Equal(t, "WH/Stock", loc.DisplayName())

		missing, err := locationRepo.GetByID(ctx, "10000000-0000-0000-0000-0000000000ff")
		require.NoError(t, err)
		assert.Nil(t, missing)

		subtree, err := locationRepo.Subtree(ctx, itStock)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{itStock, itShelf}, subtree)

		products, err := productRepo.GetByIDs(ctx, []string{itP1, itP2})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Unidad", products[0].UomName)
		assert.Equal(t, itOther, products[1].CompanyID)

		rows, err = moveRepo.ListForStockCard(ctx, repository.StockCardFilter{
			ProductIDs:  []string{itP1},
			LocationIDs: subtree,
			DateFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		})
		return err
	})
	require.NoError(t, err)

	refs := make([]string, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, r.Reference)
	}
	// sin draft, sin el movimiento ajeno, sin el posterior a date_to; IN/007 entra (date_to inclusivo)
	assert.Equal(t, []string{"IN/001", "OUT/002", "INT/003", "IN/007"}, refs)

	initial := rows[0]
	assert.True(t, initial.IsInitial)
	assert.True(t, initial.ProductIn.Valid)
	assert.True(t, decimal.NewFromInt(10).Equal(initial.ProductIn.Decimal))
	assert.False(t, initial.ProductOut.Valid)
	assert.Equal(t, "Proveedores", initial.LocationName, "complete_name vacío cae al nombre")

	out := rows[1]
	assert.False(t, out.IsInitial)
	assert.False(t, out.ProductIn.Valid)
	assert.True(t, decimal.NewFromInt(4).Equal(out.ProductOut.Decimal))
	require.NotNil(t, out.PickingName)
	assert.Equal(t, "WH/OUT/0002", *out.PickingName)
	assert.Equal(t, "Unidad", out.UomName)
	assert.True(t, out.Date.Equal(time.Date(2024, 1, 10, 3, 30, 0, 0, time.UTC)))

	internal := rows[2]
	assert.True(t, internal.ProductIn.Valid)
	assert.True(t, internal.ProductOut.Valid)
	assert.Nil(t, internal.PickingID)
}
