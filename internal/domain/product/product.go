package product

import (
	"time"

	"github.com/shopspring/decimal"

	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal
	DateAdded time.Time
	// Supplier is referenced, not owned. Nil when no supplier is linked.
	Supplier *domsupplier.Supplier
}

func (p *Product) SupplierID() *int64 {
	if p.Supplier == nil {
		return nil
	}
	id := p.Supplier.ID
	return &id
}
