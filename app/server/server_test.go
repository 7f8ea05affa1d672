package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mytheresa/product-price/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubRepo struct {
	products []models.Product
}

func (s *stubRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (s *stubRepo) CreateProduct(ctx context.Context, p *models.Product) error { return nil }

func (s *stubRepo) UpdateProduct(ctx context.Context, p *models.Product) error { return nil }

func (s *stubRepo) DeleteProduct(ctx context.Context, id uint) error { return nil }

func TestRouterServesProducts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	repo := &stubRepo{products: []models.Product{{ID: 1, Title: "Pen", Price: decimal.RequireFromString("1.5")}}}
	r := NewRouter(repo, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Pen","price":"1.5"}]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/products", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), fields["request_id"])
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := NewRouter(&stubRepo{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := NewRouter(&stubRepo{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/products/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := New("127.0.0.1:0", NewRouter(&stubRepo{}, zap.NewNop()), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
