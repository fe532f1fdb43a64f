package usecases

import (
	"context"

	"github.com/brt06a/Testv5/internal/domain/admin"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

type LogoutUseCase struct {
	sessions admin.SessionStore
	logger   logger.Interface
}

func NewLogoutUseCase(sessions admin.SessionStore, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: logger}
}

// Execute forgets sessionID. Unknown, expired and empty ids succeed.
func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	masked := utils.MaskToken(sessionID, sessionLogPrefix)
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "session", masked, "error", err)
		return apperrors.NewInternalError("Logout failed").WithCause(err)
	}
	uc.logger.Infow("admin logged out", "session", masked)
	return nil
}
