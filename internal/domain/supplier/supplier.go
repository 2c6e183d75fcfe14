package supplier

type Supplier struct {
	ID              int64
	SupplierName    string
	HeadquarterCity string
}
