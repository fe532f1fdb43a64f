package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	seedUsecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
	"github.com/brt06a/Testv5/internal/infrastructure/auth"
	"github.com/brt06a/Testv5/internal/infrastructure/config"
	"github.com/brt06a/Testv5/internal/infrastructure/database"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/seeds"
	"github.com/brt06a/Testv5/internal/infrastructure/repository"
	"github.com/brt06a/Testv5/internal/shared/db"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the initial plans and admin account",
		Long:  `Insert the default plan catalogue and admin account. Does nothing when plans already exist.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	gdb, err := database.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	catalog, err := seeds.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}

	uc := seedUsecases.NewSeedDataUseCase(
		repository.NewPlanRepository(gdb),
		repository.NewAdminRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		db.NewTransactionManager(gdb),
		catalog,
		log,
	)

	result, err := uc.Execute(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}
