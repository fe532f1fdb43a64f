package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/domain/shared/services"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// sessionLogPrefix is how much of a session id may appear in logs.
const sessionLogPrefix = 8

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	SessionID string
	ExpiresAt time.Time
}

type LoginUseCase struct {
	adminRepo admin.AdminRepository
	hasher    PasswordVerifier
	sessions  admin.SessionStore
	tokens    services.SessionTokenGenerator
	ttl       time.Duration
	logger    logger.Interface
	now       func() time.Time
}

func NewLoginUseCase(
	adminRepo admin.AdminRepository,
	hasher PasswordVerifier,
	sessions admin.SessionStore,
	tokens services.SessionTokenGenerator,
	ttl time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		sessions:  sessions,
		tokens:    tokens,
		ttl:       ttl,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// Execute checks the credentials and opens a new session. Unknown usernames
// and wrong passwords produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if strings.TrimSpace(cmd.Username) == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Invalid request data")
	}

	account, err := uc.adminRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			uc.logger.Warnw("admin login failed", "username", cmd.Username, "reason", "unknown user")
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		uc.logger.Errorw("failed to load admin", "username", cmd.Username, "error", err)
		return nil, apperrors.NewInternalError("Login failed").WithCause(err)
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("admin login failed", "username", cmd.Username, "reason", "bad password")
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	sessionID, err := uc.tokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "error", err)
		return nil, apperrors.NewInternalError("Login failed").WithCause(err)
	}

	session := admin.NewSession(sessionID, account.ID(), uc.now(), uc.ttl)
	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to store session", "admin_id", account.ID(), "error", err)
		return nil, apperrors.NewInternalError("Login failed").WithCause(err)
	}

	uc.logger.Infow("admin logged in",
		"admin_id", account.ID(),
		"session", utils.MaskToken(sessionID, sessionLogPrefix),
		"expires_at", session.ExpiresAt,
	)

	return &LoginResult{SessionID: sessionID, ExpiresAt: session.ExpiresAt}, nil
}
