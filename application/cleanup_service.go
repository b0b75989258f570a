package application

import (
	"context"

	"fotoshare/domain/contracts"
	"fotoshare/logging"
)

// CleanupService is the reconciliation sweep for the cascade's storage
// queue: it retries the deletion of binaries whose post-commit cleanup
// failed. Deletes are idempotent, so re-sweeping an entry that was
// already removed out of band just clears the row.
type CleanupService struct {
	orphans contracts.OrphanFileRepository
	files   contracts.FileStore
	thumbs  contracts.ThumbnailStore
	logger  *logging.Logger
}

// NewCleanupService creates the sweep service.
func NewCleanupService(
	orphans contracts.OrphanFileRepository,
	files contracts.FileStore,
	thumbs contracts.ThumbnailStore,
	logger *logging.Logger,
) *CleanupService {
	return &CleanupService{
		orphans: orphans,
		files:   files,
		thumbs:  thumbs,
		logger:  logger.WithComponent("cleanup"),
	}
}

// SweepOrphans attempts every queued storage deletion and returns how
// many entries were cleared. Entries that fail again stay queued.
func (s *CleanupService) SweepOrphans(ctx context.Context) (int, error) {
	queued, err := s.orphans.List(ctx)
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, orphan := range queued {
		if err := deleteStoredObject(ctx, s.files, s.thumbs, orphan); err != nil {
			s.logger.Warn("Sweep delete failed",
				"kind", orphan.Kind.String(), "name", orphan.Name, "error", err)
			continue
		}
		if err := s.orphans.Delete(ctx, orphan.ID); err != nil {
			s.logger.Warn("Sweep dequeue failed", "name", orphan.Name, "error", err)
			continue
		}
		cleared++
	}

	if cleared > 0 || len(queued) > 0 {
		s.logger.Info("Orphan sweep finished", "queued", len(queued), "cleared", cleared)
	}
	return cleared, nil
}
