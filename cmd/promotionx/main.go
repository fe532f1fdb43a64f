package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brt06a/Testv5/internal/interfaces/cli/migrate"
	"github.com/brt06a/Testv5/internal/interfaces/cli/seed"
	"github.com/brt06a/Testv5/internal/interfaces/cli/server"
)

// @title PromotionX API
// @version 1.0
// @description Payment collection backend for Telegram promotion plans.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token, sent as "Bearer <sessionId>".
func main() {
	rootCmd := &cobra.Command{
		Use:   "promotionx",
		Short: "PromotionX - Telegram promotion payments",
		Long:  `PromotionX serves the plan catalogue, opens gateway checkouts, ingests payment webhooks and exposes the admin payment ledger.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
