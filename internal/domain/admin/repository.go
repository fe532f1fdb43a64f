package admin

import (
	"context"
	"errors"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	// GetByUsername returns ErrAdminNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}
