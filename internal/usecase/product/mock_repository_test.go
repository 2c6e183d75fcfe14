package product

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	domproduct "example.com/product-catalog/internal/domain/product"
	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

// mockProductRepository keeps products in memory and evaluates ListQuery
// criteria the way the SQL store does.
type mockProductRepository struct {
	products  map[int64]*domproduct.Product
	nextID    int64
	created   *domproduct.Product
	updated   *domproduct.Product
	lastQuery domproduct.ListQuery
	listErr   error
	writes    int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*domproduct.Product),
		nextID:   1,
	}
}

func (m *mockProductRepository) seed(p *domproduct.Product) *domproduct.Product {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	m.writes++
	cloned := *p
	cloned.ID = m.nextID
	m.nextID++
	m.products[cloned.ID] = &cloned
	m.created = &cloned
	out := cloned
	return &out, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	m.writes++
	if _, ok := m.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	cloned := *p
	m.products[p.ID] = &cloned
	m.updated = &cloned
	out := cloned
	return &out, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	m.writes++
	delete(m.products, id)
	return true, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, q domproduct.ListQuery) ([]*domproduct.Product, error) {
	m.lastQuery = q
	if m.listErr != nil {
		return nil, m.listErr
	}

	var result []*domproduct.Product
	for _, p := range m.products {
		if matches(q.Where, p) {
			cloned := *p
			result = append(result, &cloned)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		for _, o := range q.OrderBy {
			c := compareColumn(o.Column, result[i], result[j])
			if c == 0 {
				continue
			}
			if o.Descending {
				return c > 0
			}
			return c < 0
		}
		return result[i].ID < result[j].ID
	})

	if q.Offset >= len(result) {
		return []*domproduct.Product{}, nil
	}
	end := len(result)
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return result[q.Offset:end], nil
}

func matches(c domproduct.Criteria, p *domproduct.Product) bool {
	switch v := c.(type) {
	case nil:
		return true
	case domproduct.AllOf:
		for _, item := range v {
			if !matches(item, p) {
				return false
			}
		}
		return true
	case domproduct.AnyOf:
		if len(v) == 0 {
			return true
		}
		for _, item := range v {
			if matches(item, p) {
				return true
			}
		}
		return false
	case domproduct.Condition:
		if v.Column == domproduct.ColumnPrice {
			cmp := p.Price.Cmp(v.Value.(decimal.Decimal))
			switch v.Operator {
			case domproduct.OpEqual:
				return cmp == 0
			case domproduct.OpGreaterThan:
				return cmp > 0
			case domproduct.OpLessThan:
				return cmp < 0
			}
			return false
		}
		value, ok := stringColumn(v.Column, p)
		if !ok {
			return false
		}
		return strings.Contains(value, strings.Trim(v.Value.(string), "%"))
	}
	return false
}

func stringColumn(c domproduct.Column, p *domproduct.Product) (string, bool) {
	switch c {
	case domproduct.ColumnName:
		return p.Name, true
	case domproduct.ColumnCategory:
		return p.Category, true
	case domproduct.ColumnSupplierName:
		if p.Supplier == nil {
			return "", false
		}
		return p.Supplier.SupplierName, true
	case domproduct.ColumnSupplierCity:
		if p.Supplier == nil {
			return "", false
		}
		return p.Supplier.HeadquarterCity, true
	}
	return "", false
}

func compareColumn(c domproduct.Column, a, b *domproduct.Product) int {
	if c == domproduct.ColumnPrice {
		return a.Price.Cmp(b.Price)
	}
	av, _ := stringColumn(c, a)
	bv, _ := stringColumn(c, b)
	return strings.Compare(av, bv)
}

type mockSupplierRepository struct {
	suppliers map[int64]*domsupplier.Supplier
}

func newMockSupplierRepository(suppliers ...*domsupplier.Supplier) *mockSupplierRepository {
	m := &mockSupplierRepository{suppliers: make(map[int64]*domsupplier.Supplier)}
	for _, s := range suppliers {
		m.suppliers[s.ID] = s
	}
	return m
}

func (m *mockSupplierRepository) GetByID(ctx context.Context, id int64) (*domsupplier.Supplier, error) {
	if s, ok := m.suppliers[id]; ok {
		cloned := *s
		return &cloned, nil
	}
	return nil, domsupplier.ErrSupplierNotFound
}

func (m *mockSupplierRepository) List(ctx context.Context) ([]*domsupplier.Supplier, error) {
	var out []*domsupplier.Supplier
	for _, s := range m.suppliers {
		cloned := *s
		out = append(out, &cloned)
	}
	return out, nil
}
