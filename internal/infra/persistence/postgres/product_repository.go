package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"backend-tracking/internal/domain/pagination"
	domproduct "backend-tracking/internal/domain/product"
)

// uniqueViolation is the SQLSTATE raised when an insert or update hits
// a unique index. The schema-level constraint backs up the services'
// check-then-insert sequence, so a racing writer still surfaces as the
// same conflict error.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const productColumns = `id, url, type, is_notify, created_at, updated_at`

// productSortColumns maps client-facing sort keys to columns. Sort keys
// are interpolated into the statement, never bound, so only values from
// this map may reach the query.
var productSortColumns = map[string]string{
	"id":        "id",
	"url":       "url",
	"type":      "type",
	"isNotify":  "is_notify",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO product (url, type, is_notify)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.URL, p.Type, p.IsNotify).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domproduct.ErrURLExists
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE product
		SET url = $1, type = $2, is_notify = $3, updated_at = CURRENT_DATE
		WHERE id = $4
		RETURNING created_at, updated_at
	`, p.URL, p.Type, p.IsNotify, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		if isUniqueViolation(err) {
			return nil, domproduct.ErrURLExists
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+` FROM product WHERE id = $1
	`, id)

	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.URL, &p.Type, &p.IsNotify, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM product ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

func (r *ProductRepository) ListByType(ctx context.Context, productType string) ([]*domproduct.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM product WHERE type = $1
	`, productType)
	if err != nil {
		return nil, fmt.Errorf("list products by type: %w", err)
	}
	return scanProducts(rows)
}

// ListPaginated runs a single statement for any filter combination: a
// nil filter collapses its clause to true instead of being dropped from
// the query.
func (r *ProductRepository) ListPaginated(ctx context.Context, filter domproduct.ListFilter, page pagination.Request) ([]*domproduct.Product, int64, error) {
	const where = `
		WHERE ($1::varchar IS NULL OR type = $1)
		  AND ($2::int IS NULL OR is_notify = $2)`

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM product`+where,
		filter.Type, filter.IsNotify).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM product` + where +
		page.OrderClause(productSortColumns, "id") +
		` LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query,
		filter.Type, filter.IsNotify, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list products paginated: %w", err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Search(ctx context.Context, filter domproduct.SearchFilter, page pagination.Request) ([]*domproduct.Product, int64, error) {
	const where = `
		WHERE ($1::varchar IS NULL OR type = $1)
		  AND ($2::varchar IS NULL OR LOWER(url) LIKE LOWER('%' || $2 || '%'))
		  AND ($3::int IS NULL OR is_notify = $3)`

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM product`+where,
		filter.Type, filter.URL, filter.IsNotify).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count product search: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM product` + where +
		page.OrderClause(productSortColumns, "id") +
		` LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query,
		filter.Type, filter.URL, filter.IsNotify, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT type FROM product WHERE type IS NOT NULL ORDER BY type
	`)
	if err != nil {
		return nil, fmt.Errorf("distinct types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM product`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) CountByNotify(ctx context.Context, isNotify int) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM product WHERE is_notify = $1`, isNotify).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by notify: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product WHERE url = $1)`, url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check url exists: %w", err)
	}
	return exists, nil
}

func scanProducts(rows pgx.Rows) ([]*domproduct.Product, error) {
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		var p domproduct.Product
		if err := rows.Scan(&p.ID, &p.URL, &p.Type, &p.IsNotify, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
