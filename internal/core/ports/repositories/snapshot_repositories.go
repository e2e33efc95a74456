package repositories

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// SnapshotReader defines read operations for monthly snapshots
type SnapshotReader interface {
	// FindSnapshot retrieves the snapshot for (org, month), or apperrors.ErrNotFound.
	FindSnapshot(ctx context.Context, orgID string, month time.Time) (*domain.MonthlySnapshot, error)
}

// SnapshotWriter defines write operations for monthly snapshots
type SnapshotWriter interface {
	// UpsertSnapshot inserts or overwrites the snapshot keyed by (org_id, month).
	UpsertSnapshot(ctx context.Context, snapshot domain.MonthlySnapshot) error
}

// SnapshotRepositoryFacade combines snapshot read and write operations
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
