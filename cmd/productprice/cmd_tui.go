package main

import (
	"github.com/mytheresa/product-price/app/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive product list",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger.Info("starting terminal ui", zap.String("api_url", cfg.APIURL))
	return tui.Run(cmd.Context(), newController())
}
