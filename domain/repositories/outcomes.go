package repositories

import (
	"context"

	"github.com/voicebridge/server/domain/entities"
)

// OutcomeRepository persists per-invocation traces for diagnostics and as a
// seam for a future dedup/caching layer. The pipeline only ever writes;
// nothing in the translation path reads stored outcomes.
type OutcomeRepository interface {
	Record(ctx context.Context, rec *entities.OutcomeRecord) error
	ListRecent(ctx context.Context, limit int) ([]*entities.OutcomeRecord, error)
}
