package journal

import (
	"context"
	"fmt"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// ListTags returns the current user's tags with usage counts, most used first.
func (s *Service) ListTags(ctx context.Context) ([]domain.TagCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counts, err := s.tags.ListWithCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return counts, nil
}
