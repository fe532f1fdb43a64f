package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

type AuthenticateSessionUseCase struct {
	sessions admin.SessionStore
	logger   logger.Interface
	now      func() time.Time
}

func NewAuthenticateSessionUseCase(sessions admin.SessionStore, logger logger.Interface) *AuthenticateSessionUseCase {
	return &AuthenticateSessionUseCase{sessions: sessions, logger: logger, now: biztime.NowUTC}
}

// Execute resolves a bearer token to its session. Expired sessions are
// evicted on sight.
func (uc *AuthenticateSessionUseCase) Execute(ctx context.Context, sessionID string) (*admin.Session, error) {
	if sessionID == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, admin.ErrSessionNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		uc.logger.Errorw("failed to read session", "error", err)
		return nil, apperrors.NewInternalError("Authentication failed").WithCause(err)
	}

	if session.IsExpired(uc.now()) {
		if err := uc.sessions.Delete(ctx, sessionID); err != nil {
			uc.logger.Warnw("failed to evict expired session", "error", err)
		}
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	return &session, nil
}
