package main

import (
	"fmt"

	"github.com/mytheresa/product-price/app/server"
	"github.com/mytheresa/product-price/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr   string
	databaseURL string
	migrate     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the products API backed by PostgreSQL",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $HTTP_ADDR or :8080)")
	serveCmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL DSN (default $DATABASE_URL)")
	serveCmd.Flags().BoolVar(&migrate, "migrate", true, "create or update the products table on start")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}
	dsn := cfg.DatabaseURL
	if databaseURL != "" {
		dsn = databaseURL
	}

	db, err := models.Open(dsn, migrate)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	repo := models.NewProductsRepository(db)
	srv := server.New(addr, server.NewRouter(repo, logger), logger)

	logger.Info("serving products api", zap.String("addr", addr), zap.Bool("migrate", migrate))
	return srv.Run(cmd.Context())
}
