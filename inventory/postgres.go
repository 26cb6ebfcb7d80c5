package inventory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/forecast"
	"app/models"
)

// LoadPostgres reads the product table from a products table in
// Postgres. Column constraints mirror the CSV loader: the first invalid
// row fails the load with a *forecast.MalformedRecordError. The table is
// read once; the pool can be closed as soon as this returns.
func LoadPostgres(ctx context.Context, db *pgxpool.Pool) (*Table, error) {
	query := `
		SELECT name, category, current_stock, avg_daily_sales
		FROM products
		ORDER BY id
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	row := 0
	for rows.Next() {
		row++
		var p models.Product
		if err := rows.Scan(&p.Name, &p.Category, &p.CurrentStock, &p.AvgDailySales); err != nil {
			return nil, fmt.Errorf("scan product row %d: %w", row, err)
		}
		if err := forecast.ValidateProduct(p, row); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	return NewTable(products), nil
}
