// Command productprice lists, creates, edits and deletes products against a
// products REST API, interactively or one operation at a time.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mytheresa/product-price/app/client"
	"github.com/mytheresa/product-price/app/listview"
	"github.com/mytheresa/product-price/pkg/config"
	applog "github.com/mytheresa/product-price/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	envFile  string
	apiURL   string
	logLevel string
	logFile  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "productprice",
	Short: "Manage product prices through the products API",
	Long: `productprice talks to a products REST API (GET/POST /products,
PUT/DELETE /products/{id}).

Run without arguments to start the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(envFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("api-url") {
			cfg.APIURL = apiURL
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}

		// The terminal UI owns the screen, so its diagnostics go to a file.
		if isInteractive(cmd) && cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(os.TempDir(), "productprice.log")
		}

		logger, err = applog.New(applog.Options{
			Service: "productprice",
			Level:   cfg.LogLevel,
			File:    cfg.LogFile,
		})
		return err
	},
	RunE: runTUI,
}

func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

func newController() *listview.Controller {
	api := client.New(cfg.APIURL, client.WithTimeout(cfg.HTTPTimeout))
	return listview.NewController(api, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", config.DefaultAPIURL, "products collection URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(tuiCmd, listCmd, addCmd, editCmd, deleteCmd, serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, rootCmd); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs cmd and flushes the logger whether or not it failed; cobra
// skips post-run hooks after an error.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}
