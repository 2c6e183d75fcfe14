package product

import (
	"context"
	"fmt"

	"example.com/product-catalog/internal/domain/crud"
	domproduct "example.com/product-catalog/internal/domain/product"
	domsupplier "example.com/product-catalog/internal/domain/supplier"
	"example.com/product-catalog/internal/pkg/clock"
	"example.com/product-catalog/internal/pkg/logger"
)

// Service is the ProductDto CRUD service exposed to the front-end.
type Service struct {
	products  domproduct.Repository
	suppliers domsupplier.Repository
	clock     clock.Clock
	log       logger.Logger
}

func NewService(products domproduct.Repository, suppliers domsupplier.Repository, clk clock.Clock, log logger.Logger) *Service {
	return &Service{
		products:  products,
		suppliers: suppliers,
		clock:     clk,
		log:       log,
	}
}

func (s *Service) List(ctx context.Context, page crud.Pageable, filter crud.Filter) ([]ProductDto, error) {
	q, err := createListQuery(page, filter)
	if err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]ProductDto, 0, len(products))
	for _, p := range products {
		out = append(out, FromEntity(p))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ProductDto, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromEntity(p)
	return &dto, nil
}

// Save creates the product when value carries no positive id and updates
// the existing one otherwise. Product and supplier are both resolved before
// anything is written.
func (s *Service) Save(ctx context.Context, value ProductDto) (*ProductDto, error) {
	var p *domproduct.Product
	if value.isNew() {
		p = &domproduct.Product{DateAdded: clock.Today(s.clock)}
	} else {
		existing, err := s.products.GetByID(ctx, *value.ProductID)
		if err != nil {
			return nil, err
		}
		p = existing
	}

	p.Name = value.ProductName
	p.Category = value.ProductCategory
	p.Price = value.price()

	if value.SupplierID == nil {
		return nil, fmt.Errorf("%w: supplier id is required", domsupplier.ErrSupplierNotFound)
	}
	supplier, err := s.suppliers.GetByID(ctx, *value.SupplierID)
	if err != nil {
		return nil, err
	}
	p.Supplier = supplier

	var saved *domproduct.Product
	if value.isNew() {
		saved, err = s.products.Create(ctx, p)
	} else {
		saved, err = s.products.Update(ctx, p)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("product saved",
		logger.Int64("product_id", saved.ID),
		logger.Int64("supplier_id", supplier.ID),
	)

	dto := FromEntity(saved)
	return &dto, nil
}

// Delete removes the product. Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.log.Debug("delete of unknown product ignored", logger.Int64("product_id", id))
	}
	return nil
}
