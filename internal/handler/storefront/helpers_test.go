package storefront

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afkcodes/storefront/internal/cart"
	"github.com/afkcodes/storefront/internal/domain"
	"github.com/afkcodes/storefront/internal/handler"
)

// stubCatalog is a canned CatalogService for handler tests.
type stubCatalog struct {
	page       *domain.ProductPage
	product    *domain.Product
	categories []domain.Category
	err        error

	calls int
}

func (s *stubCatalog) Products(ctx context.Context, limit, skip int) (*domain.ProductPage, error) {
	s.calls++
	return s.page, s.err
}

func (s *stubCatalog) Search(ctx context.Context, term string) (*domain.ProductPage, error) {
	s.calls++
	return s.page, s.err
}

func (s *stubCatalog) Product(ctx context.Context, id int) (*domain.Product, error) {
	s.calls++
	return s.product, s.err
}

func (s *stubCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	s.calls++
	return s.categories, s.err
}

// nullStore satisfies cart.Store for handlers that need a live manager.
type nullStore struct{}

func (nullStore) Load(ctx context.Context) ([]byte, error)    { return nil, cart.ErrNoSavedCart }
func (nullStore) Save(ctx context.Context, blob []byte) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager() *cart.Manager {
	return cart.NewManager(nullStore{}, testLogger())
}

func testProduct(id int, price, discount float64) domain.Product {
	return domain.Product{
		ID:                 id,
		Title:              "Test Product",
		Price:              price,
		DiscountPercentage: discount,
		Stock:              10,
	}
}

// decodeData unmarshals the data half of the response envelope into dst.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var resp struct {
		Data  json.RawMessage    `json:"data"`
		Error *handler.ErrorBody `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Nil(t, resp.Error)
	require.NoError(t, json.Unmarshal(resp.Data, dst))
}

// decodeError unmarshals the error half of the response envelope.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *handler.ErrorBody {
	t.Helper()
	var resp struct {
		Error *handler.ErrorBody `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}
