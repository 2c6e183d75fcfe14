package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	domproduct "example.com/product-catalog/internal/domain/product"
)

// Property ids the front-end uses for ProductDto fields in sort and filter
// requests.
const (
	PropertyProductName     = "productName"
	PropertyProductCategory = "productCategory"
	PropertyProductPrice    = "productPrice"
	PropertySupplierInfo    = "supplierInfo"
)

// ProductDto flattens a product and its supplier for the front-end. It is
// never stored.
type ProductDto struct {
	ProductID       *int64  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductCategory string  `json:"productCategory"`
	ProductPrice    float64 `json:"productPrice"`
	SupplierID      *int64  `json:"supplierId"`
	SupplierInfo    string  `json:"supplierInfo"`
}

// FromEntity projects p. A product without a supplier gets a nil supplier id
// and an empty supplier info.
func FromEntity(p *domproduct.Product) ProductDto {
	supplierInfo := ""
	if p.Supplier != nil {
		supplierInfo = fmt.Sprintf("%s (%s)", p.Supplier.SupplierName, p.Supplier.HeadquarterCity)
	}
	id := p.ID
	return ProductDto{
		ProductID:       &id,
		ProductName:     p.Name,
		ProductCategory: p.Category,
		ProductPrice:    p.Price.InexactFloat64(),
		SupplierID:      p.SupplierID(),
		SupplierInfo:    supplierInfo,
	}
}

func (d ProductDto) isNew() bool {
	return d.ProductID == nil || *d.ProductID <= 0
}

func (d ProductDto) price() decimal.Decimal {
	return decimal.NewFromFloat(d.ProductPrice)
}
