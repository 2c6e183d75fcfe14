package product

// Column names a storage attribute reachable from a product.
type Column string

const (
	ColumnID           Column = "id"
	ColumnName         Column = "name"
	ColumnCategory     Column = "category"
	ColumnPrice        Column = "price"
	ColumnSupplierName Column = "supplier.supplierName"
	ColumnSupplierCity Column = "supplier.headquarterCity"
)

type Operator string

const (
	OpLike        Operator = "LIKE"
	OpEqual       Operator = "="
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
)

// Criteria is a store neutral predicate over products. A nil Criteria
// matches every product.
type Criteria interface {
	criteria()
}

// AllOf matches when every element matches. Empty matches everything.
type AllOf []Criteria

// AnyOf matches when at least one element matches. Empty matches everything.
type AnyOf []Criteria

// Condition compares a column with a value. For OpLike the value is a
// pattern string using % wildcards; for price comparisons it is a
// decimal.Decimal.
type Condition struct {
	Column   Column
	Operator Operator
	Value    any
}

func (AllOf) criteria()     {}
func (AnyOf) criteria()     {}
func (Condition) criteria() {}

type SortOrder struct {
	Column     Column
	Descending bool
}

type ListQuery struct {
	Offset  int
	Limit   int
	Where   Criteria
	OrderBy []SortOrder
}
