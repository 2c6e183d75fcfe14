package supplier

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
}
