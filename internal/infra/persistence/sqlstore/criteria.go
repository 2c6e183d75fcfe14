package sqlstore

import (
	"fmt"
	"strings"

	domproduct "example.com/product-catalog/internal/domain/product"
)

// columns is the only way a product column reaches SQL text.
var columns = map[domproduct.Column]string{
	domproduct.ColumnID:           "p.id",
	domproduct.ColumnName:         "p.name",
	domproduct.ColumnCategory:     "p.category",
	domproduct.ColumnPrice:        "p.price",
	domproduct.ColumnSupplierName: "s.supplier_name",
	domproduct.ColumnSupplierCity: "s.headquarter_city",
}

var operators = map[domproduct.Operator]string{
	domproduct.OpLike:        "LIKE",
	domproduct.OpEqual:       "=",
	domproduct.OpGreaterThan: ">",
	domproduct.OpLessThan:    "<",
}

const productSelect = `
        SELECT p.id, p.name, p.category, p.price, p.date_added, p.supplier_id,
               s.supplier_name, s.headquarter_city
        FROM products p
        LEFT JOIN suppliers s ON s.id = p.supplier_id`

// buildListQuery renders q with '?' placeholders; callers rebind for the
// driver.
func buildListQuery(q domproduct.ListQuery) (string, []any, error) {
	var args []any

	where, err := renderCriteria(q.Where, &args)
	if err != nil {
		return "", nil, err
	}
	orderBy, err := renderOrderBy(q.OrderBy)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(productSelect)
	if where != "" {
		sb.WriteString("\n        WHERE ")
		sb.WriteString(where)
	}
	sb.WriteString("\n        ORDER BY ")
	sb.WriteString(orderBy)
	if q.Limit > 0 {
		sb.WriteString("\n        LIMIT ? OFFSET ?")
		args = append(args, q.Limit, q.Offset)
	}
	return sb.String(), args, nil
}

// renderCriteria returns "" for a criteria that matches every row.
func renderCriteria(c domproduct.Criteria, args *[]any) (string, error) {
	switch v := c.(type) {
	case nil:
		return "", nil
	case domproduct.AllOf:
		return renderGroup(v, " AND ", args)
	case domproduct.AnyOf:
		return renderGroup(v, " OR ", args)
	case domproduct.Condition:
		column, ok := columns[v.Column]
		if !ok {
			return "", fmt.Errorf("unsupported column %q", v.Column)
		}
		op, ok := operators[v.Operator]
		if !ok {
			return "", fmt.Errorf("unsupported operator %q", v.Operator)
		}
		*args = append(*args, v.Value)
		return column + " " + op + " ?", nil
	default:
		return "", fmt.Errorf("unsupported criteria %T", c)
	}
}

func renderGroup(items []domproduct.Criteria, sep string, args *[]any) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := renderCriteria(item, args)
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], nil
	default:
		return "(" + strings.Join(parts, sep) + ")", nil
	}
}

// renderOrderBy always ends with p.id so that pages are stable.
func renderOrderBy(orders []domproduct.SortOrder) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		column, ok := columns[o.Column]
		if !ok {
			return "", fmt.Errorf("unsupported sort column %q", o.Column)
		}
		dir := "ASC"
		if o.Descending {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
		if o.Column == domproduct.ColumnID {
			hasID = true
		}
	}
	if !hasID {
		parts = append(parts, "p.id ASC")
	}
	return strings.Join(parts, ", "), nil
}
