package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// ListEntries returns one page of the current user's journal entries,
// newest first, each annotated with its tag names.
func (s *Service) ListEntries(ctx context.Context, filter domain.EntryFilter) (*EntryList, error) {
	// Step 1: Resolve the current user.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Normalize pagination.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = s.cfg.DefaultPageSize
	}
	if filter.Limit > s.cfg.MaxPageSize {
		filter.Limit = s.cfg.MaxPageSize
	}

	// Step 3: Fetch the page and the total count.
	entries, err := s.entries.Find(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	total, err := s.entries.Count(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	// Step 4: Batch-load tag names for the whole page.
	if len(entries) > 0 {
		ids := make([]uuid.UUID, len(entries))
		for i := range entries {
			ids[i] = entries[i].ID
		}
		entryTags, err := s.tags.GetNamesByEntryIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load entry tags: %w", err)
		}
		byEntry := make(map[uuid.UUID][]string, len(entries))
		for _, et := range entryTags {
			byEntry[et.EntryID] = append(byEntry[et.EntryID], et.Name)
		}
		for i := range entries {
			tags := byEntry[entries[i].ID]
			if tags == nil {
				tags = []string{}
			}
			entries[i].Tags = tags
		}
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	return &EntryList{
		Entries:    entries,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}
