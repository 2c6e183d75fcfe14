package http

import (
	"net/http"

	domsupplier "example.com/product-catalog/internal/domain/supplier"
)

func (a *API) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := a.supplierSvc.ListAll(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	resp := make([]map[string]any, 0, len(suppliers))
	for _, s := range suppliers {
		resp = append(resp, mapSupplier(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	s, err := a.supplierSvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSupplier(s))
}

func mapSupplier(s *domsupplier.Supplier) map[string]any {
	return map[string]any{
		"supplierId":      s.ID,
		"supplierName":    s.SupplierName,
		"headquarterCity": s.HeadquarterCity,
	}
}
