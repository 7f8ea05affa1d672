package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mytheresa/product-price/app/server"
	"github.com/mytheresa/product-price/models"
	"github.com/mytheresa/product-price/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// memoryRepo keeps products in a map so the commands can run against the
// real router without a database.
type memoryRepo struct {
	mu       sync.Mutex
	products map[uint]models.Product
	nextID   uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: map[uint]models.Product{}, nextID: 1}
}

func (r *memoryRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (r *memoryRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = *p
	return nil
}

func (r *memoryRepo) UpdateProduct(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return models.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memoryRepo) DeleteProduct(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func setup(t *testing.T, seed ...models.Product) (*memoryRepo, *cobra.Command, *bytes.Buffer) {
	t.Helper()

	repo := newMemoryRepo()
	for i := range seed {
		require.NoError(t, repo.CreateProduct(context.Background(), &seed[i]))
	}
	srv := httptest.NewServer(server.NewRouter(repo, zap.NewNop()))
	t.Cleanup(srv.Close)

	logger = zap.NewNop()
	cfg = config.Config{APIURL: srv.URL + "/products", HTTPTimeout: 5 * time.Second}
	recordTitle, recordPrice = "", ""

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return repo, cmd, out
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestListCmd(t *testing.T) {
	_, cmd, out := setup(t,
		models.Product{Title: "Pen", Price: price("1.5")},
		models.Product{Title: "Book", Price: price("12")},
	)

	require.NoError(t, runList(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PRODUCT NAME")
	assert.Contains(t, lines[1], "Pen")
	assert.Contains(t, lines[1], "$1.5")
	assert.Contains(t, lines[2], "Book")
}

func TestAddCmd(t *testing.T) {
	repo, cmd, out := setup(t)
	recordTitle, recordPrice = "Pen", "1.5"

	require.NoError(t, runAdd(cmd, nil))

	products, _ := repo.ListProducts(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Title)
	assert.Contains(t, out.String(), "Pen")
}

func TestAddCmdRequiresBothFields(t *testing.T) {
	repo, cmd, _ := setup(t)
	recordTitle = "Pen"

	err := runAdd(cmd, nil)

	assert.Error(t, err)
	products, _ := repo.ListProducts(context.Background())
	assert.Empty(t, products)
}

func TestEditCmdKeepsUnsetFields(t *testing.T) {
	repo, cmd, out := setup(t, models.Product{Title: "Pen", Price: price("1.5")})
	recordPrice = "2.25"

	require.NoError(t, runEdit(cmd, []string{"1"}))

	products, _ := repo.ListProducts(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Title)
	assert.True(t, products[0].Price.Equal(price("2.25")))
	assert.Contains(t, out.String(), "$2.25")
}

func TestEditCmdUnknownID(t *testing.T) {
	_, cmd, _ := setup(t, models.Product{Title: "Pen", Price: price("1.5")})

	err := runEdit(cmd, []string{"42"})

	assert.EqualError(t, err, `no product with id "42"`)
}

func TestEditCmdStringIDs(t *testing.T) {
	var (
		mu      sync.Mutex
		title   = "Pen"
		putPath string
		putBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			fmt.Fprintf(w, `[{"id":"5","title":%q,"price":"1.5"}]`, title)
		case http.MethodPut:
			b, _ := io.ReadAll(r.Body)
			putPath, putBody = r.URL.Path, string(b)
			title = "Pencil"
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)

	logger = zap.NewNop()
	cfg = config.Config{APIURL: srv.URL + "/products", HTTPTimeout: 5 * time.Second}
	recordTitle, recordPrice = "Pencil", ""
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())

	require.NoError(t, runEdit(cmd, []string{"5"}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/products/5", putPath)
	assert.JSONEq(t, `{"id":"5","title":"Pencil","price":"1.5"}`, putBody)
	assert.Contains(t, out.String(), "Pencil")
}

func TestDeleteCmd(t *testing.T) {
	repo, cmd, out := setup(t,
		models.Product{Title: "Pen", Price: price("1.5")},
		models.Product{Title: "Book", Price: price("12")},
	)

	require.NoError(t, runDelete(cmd, []string{"1"}))

	products, _ := repo.ListProducts(context.Background())
	require.Len(t, products, 1)
	assert.NotContains(t, out.String(), "Pen")
	assert.Contains(t, out.String(), "Book")
}

func TestDeleteCmdMissingIDIsOnlyLogged(t *testing.T) {
	_, cmd, out := setup(t)

	require.NoError(t, runDelete(cmd, []string{"7"}))
	assert.Contains(t, out.String(), "PRODUCT NAME")
}

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(rootCmd))
	assert.True(t, isInteractive(tuiCmd))
	assert.False(t, isInteractive(listCmd))
	assert.False(t, isInteractive(serveCmd))
}

func TestExecuteFlushesLoggerOnError(t *testing.T) {
	buf := &bytes.Buffer{}
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(buf)}
	t.Cleanup(func() { _ = ws.Stop() })
	logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zap.InfoLevel))
	t.Cleanup(func() { logger = zap.NewNop() })

	cmd := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Error("startup failed")
			return errors.New("boom")
		},
	}
	cmd.SetArgs([]string{})

	err := execute(context.Background(), cmd)

	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "startup failed")
}

func TestMalformedEnvFileStopsStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.env")
	require.NoError(t, os.WriteFile(path, []byte("PRODUCTS_API_URL=\"http://x\n"), 0o600))

	rootCmd.SetArgs([]string{"list", "--env-file", path})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		envFile = ".env"
	})

	err := rootCmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
