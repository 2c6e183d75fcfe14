package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"example.com/product-catalog/internal/domain/crud"
	domproduct "example.com/product-catalog/internal/domain/product"
)

var sortColumns = map[string]domproduct.Column{
	PropertyProductName:     domproduct.ColumnName,
	PropertyProductCategory: domproduct.ColumnCategory,
	PropertyProductPrice:    domproduct.ColumnPrice,
	PropertySupplierInfo:    domproduct.ColumnSupplierName,
}

var priceOperators = map[crud.Matcher]domproduct.Operator{
	crud.MatcherEquals:      domproduct.OpEqual,
	crud.MatcherGreaterThan: domproduct.OpGreaterThan,
	crud.MatcherLessThan:    domproduct.OpLessThan,
}

func createListQuery(page crud.Pageable, filter crud.Filter) (domproduct.ListQuery, error) {
	if err := page.Validate(); err != nil {
		return domproduct.ListQuery{}, err
	}
	orderBy, err := mapSort(page.Sort)
	if err != nil {
		return domproduct.ListQuery{}, err
	}
	where, err := createCriteria(filter)
	if err != nil {
		return domproduct.ListQuery{}, err
	}
	return domproduct.ListQuery{
		Offset:  page.Offset(),
		Limit:   page.Limit(),
		Where:   where,
		OrderBy: orderBy,
	}, nil
}

// mapSort maps ProductDto property ids to product columns, keeping the
// requested order and directions.
func mapSort(orders []crud.Order) ([]domproduct.SortOrder, error) {
	out := make([]domproduct.SortOrder, 0, len(orders))
	for _, o := range orders {
		column, ok := sortColumns[o.Property]
		if !ok {
			return nil, fmt.Errorf("%w %s", crud.ErrUnknownSortProperty, o.Property)
		}
		out = append(out, domproduct.SortOrder{Column: column, Descending: !o.IsAscending()})
	}
	return out, nil
}

// createCriteria walks the filter tree. A nil result means no constraint.
func createCriteria(filter crud.Filter) (domproduct.Criteria, error) {
	switch f := filter.(type) {
	case nil:
		return nil, nil
	case crud.AndFilter:
		items, err := createChildren(f.Children)
		if err != nil {
			return nil, err
		}
		return combine(items, allOf), nil
	case *crud.AndFilter:
		return createCriteria(*f)
	case crud.OrFilter:
		items, err := createChildren(f.Children)
		if err != nil {
			return nil, err
		}
		return combine(items, anyOf), nil
	case *crud.OrFilter:
		return createCriteria(*f)
	case crud.PropertyStringFilter:
		return filterProperty(f)
	case *crud.PropertyStringFilter:
		return filterProperty(*f)
	default:
		return nil, fmt.Errorf("%w %T", crud.ErrUnknownFilterType, filter)
	}
}

// createChildren drops children that impose no constraint.
func createChildren(children []crud.Filter) ([]domproduct.Criteria, error) {
	items := make([]domproduct.Criteria, 0, len(children))
	for _, child := range children {
		c, err := createCriteria(child)
		if err != nil {
			return nil, err
		}
		if c != nil {
			items = append(items, c)
		}
	}
	return items, nil
}

// combine collapses an empty list to no constraint and a single item to
// itself; otherwise wrap builds the AllOf or AnyOf node.
func combine(items []domproduct.Criteria, wrap func([]domproduct.Criteria) domproduct.Criteria) domproduct.Criteria {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	default:
		return wrap(items)
	}
}

func allOf(items []domproduct.Criteria) domproduct.Criteria { return domproduct.AllOf(items) }
func anyOf(items []domproduct.Criteria) domproduct.Criteria { return domproduct.AnyOf(items) }

func filterProperty(f crud.PropertyStringFilter) (domproduct.Criteria, error) {
	pattern := "%" + f.FilterValue + "%"

	switch f.PropertyID {
	case PropertyProductName:
		return domproduct.Condition{Column: domproduct.ColumnName, Operator: domproduct.OpLike, Value: pattern}, nil
	case PropertyProductCategory:
		return domproduct.Condition{Column: domproduct.ColumnCategory, Operator: domproduct.OpLike, Value: pattern}, nil
	case PropertyProductPrice:
		op, ok := priceOperators[f.Matcher]
		if !ok {
			return nil, fmt.Errorf("%w: %s", crud.ErrUnsupportedMatcher, f.Matcher)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(f.FilterValue))
		if err != nil {
			return nil, fmt.Errorf("%w %q for %s", crud.ErrInvalidFilterValue, f.FilterValue, PropertyProductPrice)
		}
		return domproduct.Condition{Column: domproduct.ColumnPrice, Operator: op, Value: price}, nil
	case PropertySupplierInfo:
		return domproduct.AnyOf{
			domproduct.Condition{Column: domproduct.ColumnSupplierName, Operator: domproduct.OpLike, Value: pattern},
			domproduct.Condition{Column: domproduct.ColumnSupplierCity, Operator: domproduct.OpLike, Value: pattern},
		}, nil
	default:
		// Unknown properties impose no constraint.
		return nil, nil
	}
}
