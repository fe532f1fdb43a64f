package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brt06a/Testv5/internal/shared/biztime"
)

// Admin is a back-office operator. Only the bcrypt hash of the password is kept.
type Admin struct {
	id           string
	username     string
	passwordHash string
	email        string
	createdAt    time.Time
}

func NewAdmin(username, passwordHash, email string) (*Admin, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &Admin{
		id:           uuid.NewString(),
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAdmin(id, username, passwordHash, email string, createdAt time.Time) *Admin {
	return &Admin{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		createdAt:    createdAt,
	}
}

func (a *Admin) ID() string {
	return a.id
}

func (a *Admin) Username() string {
	return a.username
}

func (a *Admin) PasswordHash() string {
	return a.passwordHash
}

func (a *Admin) Email() string {
	return a.email
}

func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}
