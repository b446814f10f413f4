package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// DeleteEntry removes one of the current user's entries. Tags links, topics
// and insights go with it via FK cascade.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", entryID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
