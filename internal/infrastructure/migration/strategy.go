package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// ScriptsDir is where new migration files are written, relative to the repo root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// goose keeps its dialect and filesystem in package state
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for throwaway sqlite databases.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy applies the versioned SQL scripts embedded for one dialect.
type GooseStrategy struct {
	dialect string
	dir     string
	logger  logger.Interface
}

// NewGooseStrategy selects the script set for the database driver.
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect: dialect,
		dir:     path.Join("scripts", dialect),
		logger:  logger.NewLogger().With("component", "migration.goose"),
	}, nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withGoose runs fn against the embedded scripts with the strategy dialect.
func (s *GooseStrategy) withGoose(db *gorm.DB, fn func(sqlDB *sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scriptsFS)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(sqlDB)
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	return s.withGoose(db, func(sqlDB *sql.DB) error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			s.logger.Errorw("failed to get current version", "error", err)
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, s.dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed successfully",
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	return s.withGoose(db, func(sqlDB *sql.DB) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, s.dir); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed successfully")
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	var version int64
	err := s.withGoose(db, func(sqlDB *sql.DB) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	return s.withGoose(db, func(sqlDB *sql.DB) error {
		if err := goose.Status(sqlDB, s.dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

// Create writes an empty SQL migration for the strategy dialect on disk.
func (s *GooseStrategy) Create(name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	// new files go to the working tree, not the embedded copy
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(scriptsFS)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	dir := path.Join(ScriptsDir, s.dialect)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// gooseLogger adapts goose output to the application logger.
type gooseLogger struct {
	logger logger.Interface
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Infow(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Errorw(fmt.Sprintf(format, v...))
}
