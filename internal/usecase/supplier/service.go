package supplier

import (
	"context"
	"sort"
	"strings"

	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

// Service lists suppliers for the product editor's supplier picker.
type Service struct {
	repo domsupplier.Repository
}

func NewService(repo domsupplier.Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns every supplier ordered by name, then id.
func (s *Service) ListAll(ctx context.Context) ([]*domsupplier.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(suppliers, func(i, j int) bool {
		a, b := suppliers[i], suppliers[j]
		if c := strings.Compare(a.SupplierName, b.SupplierName); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return suppliers, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domsupplier.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}
