package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/product-catalog/internal/domain/product"
	domsupplier "example.com/product-catalog/internal/domain/supplier"
	domuser "example.com/product-catalog/internal/domain/user"
	"example.com/product-catalog/internal/infra/security"
	"example.com/product-catalog/internal/pkg/clock"
	"example.com/product-catalog/internal/pkg/logger"
	authuc "example.com/product-catalog/internal/usecase/auth"
	productuc "example.com/product-catalog/internal/usecase/product"
	supplieruc "example.com/product-catalog/internal/usecase/supplier"
)

// fakeProductRepository records the last query and returns its rows as-is;
// criteria evaluation is covered by the usecase and store tests.
type fakeProductRepository struct {
	products  map[int64]*domproduct.Product
	nextID    int64
	lastQuery *domproduct.ListQuery
	listErr   error
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[int64]*domproduct.Product), nextID: 1}
}

func (f *fakeProductRepository) add(p *domproduct.Product) {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
}

func (f *fakeProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	cloned := *p
	cloned.ID = f.nextID
	f.nextID++
	f.products[cloned.ID] = &cloned
	return &cloned, nil
}

func (f *fakeProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	cloned := *p
	f.products[p.ID] = &cloned
	return &cloned, nil
}

func (f *fakeProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := f.products[id]
	delete(f.products, id)
	return ok, nil
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := f.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (f *fakeProductRepository) List(ctx context.Context, q domproduct.ListQuery) ([]*domproduct.Product, error) {
	f.lastQuery = &q
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domproduct.Product, 0, len(f.products))
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSupplierRepository struct {
	suppliers []*domsupplier.Supplier
}

func (f *fakeSupplierRepository) GetByID(ctx context.Context, id int64) (*domsupplier.Supplier, error) {
	for _, s := range f.suppliers {
		if s.ID == id {
			cloned := *s
			return &cloned, nil
		}
	}
	return nil, domsupplier.ErrSupplierNotFound
}

func (f *fakeSupplierRepository) List(ctx context.Context) ([]*domsupplier.Supplier, error) {
	out := make([]*domsupplier.Supplier, len(f.suppliers))
	copy(out, f.suppliers)
	return out, nil
}

type fakeUserRepository struct {
	users map[string]*domuser.User
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

const testSecret = "test-secret"

type testServer struct {
	router   http.Handler
	products *fakeProductRepository
	tokens   *security.JWTService
}

func newTestServer(t *testing.T, authRequired bool) *testServer {
	t.Helper()

	products := newFakeProductRepository()
	products.add(&domproduct.Product{
		Name:      "Laptop",
		Category:  "Electronics",
		Price:     decimal.RequireFromString("999.99"),
		DateAdded: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Supplier:  &domsupplier.Supplier{ID: 1, SupplierName: "Acme", HeadquarterCity: "Berlin"},
	})
	products.add(&domproduct.Product{
		Name:     "Lamp",
		Category: "Furniture",
		Price:    decimal.RequireFromString("25.50"),
	})

	suppliers := &fakeSupplierRepository{suppliers: []*domsupplier.Supplier{
		{ID: 2, SupplierName: "Globex", HeadquarterCity: "Springfield"},
		{ID: 1, SupplierName: "Acme", HeadquarterCity: "Berlin"},
	}}

	hasher := security.NewBcryptService(4)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	users := &fakeUserRepository{users: map[string]*domuser.User{
		"admin@example.com":  {ID: 9, Name: "Ada", Email: "admin@example.com", PasswordHash: hash, RoleCode: domuser.RoleCodeAdmin},
		"editor@example.com": {ID: 10, Name: "Eddie", Email: "editor@example.com", PasswordHash: hash, RoleCode: domuser.RoleCodeEditor},
		"viewer@example.com": {ID: 11, Name: "Vera", Email: "viewer@example.com", PasswordHash: hash, RoleCode: domuser.RoleCodeViewer},
	}}

	log := logger.NewNop()
	tokens := security.NewJWTService(testSecret, time.Hour)
	clk := clock.NewFake(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))

	api := NewAPI(Dependencies{
		AuthService:     authuc.NewService(users, hasher, tokens, log),
		ProductService:  productuc.NewService(products, suppliers, clk, log),
		SupplierService: supplieruc.NewService(suppliers),
		Logger:          log,
		AuthRequired:    authRequired,
	})

	return &testServer{router: api.Router(), products: products, tokens: tokens}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) tokenFor(t *testing.T, role domuser.RoleCode) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(&domuser.User{ID: 99, Email: "op@example.com", RoleCode: role})
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
