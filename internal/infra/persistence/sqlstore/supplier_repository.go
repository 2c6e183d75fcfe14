package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

type supplierRow struct {
	ID              int64  `db:"id"`
	SupplierName    string `db:"supplier_name"`
	HeadquarterCity string `db:"headquarter_city"`
}

func (r supplierRow) toEntity() *domsupplier.Supplier {
	return &domsupplier.Supplier{
		ID:              r.ID,
		SupplierName:    r.SupplierName,
		HeadquarterCity: r.HeadquarterCity,
	}
}

type SupplierRepository struct {
	db *sqlx.DB
}

func NewSupplierRepository(db *sqlx.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domsupplier.Supplier, error) {
	var row supplierRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
        SELECT id, supplier_name, headquarter_city
        FROM suppliers WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(domsupplier.ErrSupplierNotFound, "supplier %d", id)
		}
		return nil, errors.Wrap(err, "get supplier")
	}
	return row.toEntity(), nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*domsupplier.Supplier, error) {
	var rows []supplierRow
	err := r.db.SelectContext(ctx, &rows, `
        SELECT id, supplier_name, headquarter_city
        FROM suppliers
        ORDER BY supplier_name, id`)
	if err != nil {
		return nil, errors.Wrap(err, "list suppliers")
	}

	suppliers := make([]*domsupplier.Supplier, 0, len(rows))
	for _, row := range rows {
		suppliers = append(suppliers, row.toEntity())
	}
	return suppliers, nil
}
