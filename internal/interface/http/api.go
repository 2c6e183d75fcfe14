package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"example.com/product-catalog/internal/domain/crud"
	domproduct "example.com/product-catalog/internal/domain/product"
	domsupplier "example.com/product-catalog/internal/domain/supplier"
	domuser "example.com/product-catalog/internal/domain/user"
	"example.com/product-catalog/internal/pkg/logger"
	authuc "example.com/product-catalog/internal/usecase/auth"
	productuc "example.com/product-catalog/internal/usecase/product"
	supplieruc "example.com/product-catalog/internal/usecase/supplier"
)

type API struct {
	authSvc      *authuc.Service
	productSvc   *productuc.Service
	supplierSvc  *supplieruc.Service
	validator    *validator.Validate
	log          logger.Logger
	authRequired bool
	pingStore    func(ctx context.Context) error
}

type Dependencies struct {
	AuthService     *authuc.Service
	ProductService  *productuc.Service
	SupplierService *supplieruc.Service
	Logger          logger.Logger
	// AuthRequired puts product writes behind a bearer token with a
	// writer role.
	AuthRequired bool
	PingStore    func(ctx context.Context) error
}

func NewAPI(deps Dependencies) *API {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &API{
		authSvc:      deps.AuthService,
		productSvc:   deps.ProductService,
		supplierSvc:  deps.SupplierService,
		validator:    newValidator(),
		log:          log,
		authRequired: deps.AuthRequired,
		pingStore:    deps.PingStore,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(a.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/db", a.handleStoreHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)

		r.Post("/products/list", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/suppliers", a.handleListSuppliers)
		r.Get("/suppliers/{id}", a.handleGetSupplier)

		r.Group(func(wr chi.Router) {
			if a.authRequired {
				wr.Use(a.authMiddleware)
				wr.Use(a.requireWriter)
			}
			wr.Post("/products", a.handleSaveProduct)
			wr.Delete("/products/{id}", a.handleDeleteProduct)
		})
	})

	return r
}

func (a *API) handleStoreHealth(w http.ResponseWriter, r *http.Request) {
	if a.pingStore == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	if err := a.pingStore(r.Context()); err != nil {
		a.log.Warn("store health check failed", logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var errValidation = errors.New("validation failed")

// respondBadRequest lists the failing rule per field for validation errors.
func respondBadRequest(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errValidation.Error(), Details: details})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

var errInternal = errors.New("internal server error")

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case crud.IsInvalidInput(err),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domsupplier.ErrSupplierNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	default:
		a.log.Error("request failed",
			logger.String("request_id", chimw.GetReqID(r.Context())),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
		respondError(w, http.StatusInternalServerError, errInternal)
	}
}
