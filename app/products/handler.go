package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mytheresa/product-price/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Product struct {
	ID    uint            `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type ProductProvider interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	repo   ProductProvider
	logger *zap.Logger
}

func NewProductHandler(r ProductProvider, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   r,
		logger: logger,
	}
}

// productInput accepts the price as a JSON string or number. An id in an
// update body is ignored in favour of the path.
type productInput struct {
	Title string          `json:"title"`
	Price json.RawMessage `json:"price"`

	price decimal.Decimal
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("list products", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toResponse(p)
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	product := &models.Product{
		Title: input.Title,
		Price: input.price,
	}
	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		h.logger.Error("create product", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	h.writeStored(w, r, http.StatusCreated, product.ID)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	product := &models.Product{
		ID:    id,
		Title: input.Title,
		Price: input.price,
	}
	if err := h.repo.UpdateProduct(r.Context(), product); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("update product", zap.Uint("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	h.writeStored(w, r, http.StatusOK, id)
}

// writeStored answers a write with the row as persisted, so the response
// shows the price after the column's rounding.
func (h *ProductHandler) writeStored(w http.ResponseWriter, r *http.Request, status int, id uint) {
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("read back product", zap.Uint("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	writeJSON(w, status, toResponse(*product))
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("delete product", zap.Uint("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*productInput, bool) {
	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	raw := strings.Trim(string(input.Price), `"`)
	if input.Title == "" || raw == "" || raw == "null" {
		writeError(w, http.StatusBadRequest, "Missing title or price")
		return nil, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid price")
		return nil, false
	}
	input.price = price
	return &input, true
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

func toResponse(p models.Product) Product {
	return Product{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
	}
}
