package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"example.com/product-catalog/internal/domain/crud"
	productuc "example.com/product-catalog/internal/usecase/product"
)

type sortRequest struct {
	Property  string `json:"property" validate:"required"`
	Direction string `json:"direction"`
}

type listProductsRequest struct {
	PageNumber int             `json:"pageNumber" validate:"gte=0"`
	PageSize   int             `json:"pageSize" validate:"gte=0,lte=1000"`
	Sort       []sortRequest   `json:"sort" validate:"dive"`
	Filter     json.RawMessage `json:"filter"`
}

func (req listProductsRequest) pageable() (crud.Pageable, error) {
	orders := make([]crud.Order, 0, len(req.Sort))
	for _, s := range req.Sort {
		dir, err := crud.ParseDirection(s.Direction)
		if err != nil {
			return crud.Pageable{}, fmt.Errorf("%w %q", err, s.Direction)
		}
		orders = append(orders, crud.Order{Property: s.Property, Direction: dir})
	}
	return crud.Pageable{
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
		Sort:       orders,
	}, nil
}

type saveProductRequest struct {
	ProductID       *int64  `json:"productId"`
	ProductName     string  `json:"productName" validate:"required,max=255"`
	ProductCategory string  `json:"productCategory" validate:"max=255"`
	ProductPrice    float64 `json:"productPrice" validate:"gte=0"`
	SupplierID      *int64  `json:"supplierId" validate:"omitempty,gt=0"`
}

func (req saveProductRequest) dto() productuc.ProductDto {
	return productuc.ProductDto{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		ProductCategory: req.ProductCategory,
		ProductPrice:    req.ProductPrice,
		SupplierID:      req.SupplierID,
	}
}

// handleListProducts serves one page of the product grid. An empty body
// asks for the first page, unsorted and unfiltered.
func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	var req listProductsRequest
	if err := a.decodeAndValidate(r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(w, err)
		return
	}

	page, err := req.pageable()
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	filter, err := crud.DecodeFilter(req.Filter)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	products, err := a.productSvc.List(r.Context(), page, filter)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": products})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.Get(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleSaveProduct(w http.ResponseWriter, r *http.Request) {
	var req saveProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	saved, err := a.productSvc.Save(r.Context(), req.dto())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if req.ProductID == nil || *req.ProductID <= 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
