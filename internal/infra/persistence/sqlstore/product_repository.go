package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	domproduct "example.com/product-catalog/internal/domain/product"
	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

const (
	mysqlErrNoReferencedRow = 1452
	pgErrForeignKey         = "23503"
)

type productRow struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Category        string          `db:"category"`
	Price           decimal.Decimal `db:"price"`
	DateAdded       time.Time       `db:"date_added"`
	SupplierID      sql.NullInt64   `db:"supplier_id"`
	SupplierName    sql.NullString  `db:"supplier_name"`
	HeadquarterCity sql.NullString  `db:"headquarter_city"`
}

func (r productRow) toEntity() *domproduct.Product {
	p := &domproduct.Product{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Price:     r.Price,
		DateAdded: r.DateAdded,
	}
	if r.SupplierID.Valid {
		p.Supplier = &domsupplier.Supplier{
			ID:              r.SupplierID.Int64,
			SupplierName:    r.SupplierName.String,
			HeadquarterCity: r.HeadquarterCity.String,
		}
	}
	return p
}

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	query := `
        INSERT INTO products (name, category, price, date_added, supplier_id)
        VALUES (?, ?, ?, ?, ?)`
	args := []any{p.Name, p.Category, p.Price, p.DateAdded, p.SupplierID()}

	if usesReturning(r.db) {
		if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query+" RETURNING id"), args...).Scan(&p.ID); err != nil {
			return nil, mapWriteError(err, "insert product")
		}
		return p, nil
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "insert product")
	}
	p.ID = id
	return p, nil
}

// Update overwrites every column of p. MySQL reports zero affected rows
// when nothing changed, so existence is left to the caller.
func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
        UPDATE products SET name = ?, category = ?, price = ?, date_added = ?, supplier_id = ?
        WHERE id = ?`),
		p.Name, p.Category, p.Price, p.DateAdded, p.SupplierID(), p.ID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update product")
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return false, errors.Wrap(err, "delete product")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete product")
	}
	return rows > 0, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(productSelect+`
        WHERE p.id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, errors.Wrap(err, "get product")
	}
	return row.toEntity(), nil
}

func (r *ProductRepository) List(ctx context.Context, q domproduct.ListQuery) ([]*domproduct.Product, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]*domproduct.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toEntity())
	}
	return products, nil
}

// mapWriteError turns a dangling supplier reference into
// ErrSupplierNotFound and wraps everything else.
func mapWriteError(err error, op string) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrNoReferencedRow {
		return errors.Wrap(domsupplier.ErrSupplierNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKey {
		return errors.Wrap(domsupplier.ErrSupplierNotFound, op)
	}
	return errors.Wrap(err, op)
}
