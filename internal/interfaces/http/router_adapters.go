package http

import (
	"context"

	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/infrastructure/database"
)

// databasePingerAdapter adapts a gorm connection to handlers.DatabasePinger
type databasePingerAdapter struct {
	db *gorm.DB
}

func (a *databasePingerAdapter) Ping(ctx context.Context) error {
	return database.Ping(ctx, a.db)
}
