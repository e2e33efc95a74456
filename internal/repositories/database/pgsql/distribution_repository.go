package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxDistributionRepository struct {
	BaseRepository
}

// newPgxDistributionRepository creates a new repository for distributions and their buckets.
func newPgxDistributionRepository(pool *pgxpool.Pool) *PgxDistributionRepository {
	return &PgxDistributionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DistributionRepositoryFacade = (*PgxDistributionRepository)(nil)

const distributionSelect = `
SELECT
	d.distribution_id, d.org_id, d.name, d.is_default, d.edit_mode, d.base_income_mode, d.planned_income,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM distributions d
`

const upsertBucketQuery = `
	INSERT INTO distribution_buckets (
		bucket_id, distribution_id, name, percent_bps, color, icon, sort_order, is_flexible
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (bucket_id) DO UPDATE SET
		name = EXCLUDED.name,
		percent_bps = EXCLUDED.percent_bps,
		color = EXCLUDED.color,
		icon = EXCLUDED.icon,
		sort_order = EXCLUDED.sort_order,
		is_flexible = EXCLUDED.is_flexible;
`

// getDistributions runs the select with the given filter and attaches buckets in sort order.
func (r *PgxDistributionRepository) getDistributions(ctx context.Context, filterQuery string, args ...any) ([]domain.Distribution, error) {
	dists, err := queryAll[models.Distribution](ctx, r.Pool, "distributions", distributionSelect+filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(dists) == 0 {
		return []domain.Distribution{}, nil
	}

	ids := make([]string, len(dists))
	for i, d := range dists {
		ids[i] = d.DistributionID
	}
	buckets, err := queryAll[models.Bucket](ctx, r.Pool, "buckets", `
		SELECT bucket_id, distribution_id, name, percent_bps, color, icon, sort_order, is_flexible
		FROM distribution_buckets
		WHERE distribution_id = ANY($1)
		ORDER BY sort_order ASC, bucket_id ASC;`, ids)
	if err != nil {
		return nil, err
	}
	byDist := make(map[string][]models.Bucket, len(dists))
	for _, b := range buckets {
		byDist[b.DistributionID] = append(byDist[b.DistributionID], b)
	}

	result := make([]domain.Distribution, len(dists))
	for i, d := range dists {
		result[i] = mapping.ToDomainDistribution(d, byDist[d.DistributionID])
	}
	return result, nil
}

func (r *PgxDistributionRepository) FindActiveDistribution(ctx context.Context, orgID string) (*domain.Distribution, error) {
	dists, err := r.getDistributions(ctx, `WHERE d.org_id = $1 ORDER BY d.is_default DESC, d.created_at DESC LIMIT 1;`, orgID)
	if err != nil {
		return nil, err
	}
	if len(dists) == 0 {
		return nil, apperrors.NewNotFoundError("no distribution for organization " + orgID)
	}
	return &dists[0], nil
}

func (r *PgxDistributionRepository) FindDistributionByID(ctx context.Context, orgID, distributionID string) (*domain.Distribution, error) {
	dists, err := r.getDistributions(ctx, `WHERE d.org_id = $1 AND d.distribution_id = $2;`, orgID, distributionID)
	if err != nil {
		return nil, err
	}
	if len(dists) == 0 {
		return nil, apperrors.NewNotFoundError("distribution " + distributionID + " not found")
	}
	return &dists[0], nil
}

func (r *PgxDistributionRepository) ListDistributions(ctx context.Context, orgID string) ([]domain.Distribution, error) {
	return r.getDistributions(ctx, `WHERE d.org_id = $1 ORDER BY d.created_at DESC;`, orgID)
}

// SaveDistribution inserts the distribution with its buckets. A default
// distribution clears the flag on the organization's other distributions.
func (r *PgxDistributionRepository) SaveDistribution(ctx context.Context, distribution domain.Distribution) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDistribution(distribution)
	if m.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE distributions SET is_default = FALSE WHERE org_id = $1 AND is_default;`, m.OrgID); err != nil {
			return translatePgError(err, "clear default distribution")
		}
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO distributions (
			distribution_id, org_id, name, is_default, edit_mode, base_income_mode, planned_income,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.DistributionID, m.OrgID, m.Name, m.IsDefault, m.EditMode, m.BaseIncomeMode, m.PlannedIncome,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "create distribution")
	}

	if err := upsertBuckets(ctx, tx, distribution.DistributionID, distribution.Buckets); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceBuckets deletes the stored buckets missing from the incoming set and upserts the rest.
func (r *PgxDistributionRepository) ReplaceBuckets(ctx context.Context, distributionID string, buckets []domain.Bucket) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	keep := make([]string, len(buckets))
	for i, b := range buckets {
		keep[i] = b.BucketID
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM distribution_buckets
		WHERE distribution_id = $1 AND NOT (bucket_id = ANY($2));`,
		distributionID, keep,
	)
	if err != nil {
		return translatePgError(err, "delete removed buckets")
	}

	if err := upsertBuckets(ctx, tx, distributionID, buckets); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE distributions SET last_updated_at = $2 WHERE distribution_id = $1;`, distributionID, time.Now())
	if err != nil {
		return translatePgError(err, "touch distribution")
	}
	return r.Commit(ctx, tx)
}

func upsertBuckets(ctx context.Context, tx pgx.Tx, distributionID string, buckets []domain.Bucket) error {
	if len(buckets) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, b := range buckets {
		m := mapping.ToModelBucket(b)
		m.DistributionID = distributionID
		batch.Queue(upsertBucketQuery,
			m.BucketID, m.DistributionID, m.Name, m.PercentBps, m.Color, m.Icon, m.SortOrder, m.IsFlexible)
	}

	br := tx.SendBatch(ctx, batch)
	for range buckets {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return translatePgError(err, "save bucket")
		}
	}
	if err := br.Close(); err != nil {
		return translatePgError(err, "save buckets")
	}
	return nil
}

func (r *PgxDistributionRepository) SetDefault(ctx context.Context, orgID, distributionID, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		UPDATE distributions SET is_default = FALSE
		WHERE org_id = $1 AND is_default AND distribution_id <> $2;`,
		orgID, distributionID,
	)
	if err != nil {
		return translatePgError(err, "clear default distribution")
	}

	tag, err := tx.Exec(ctx, `
		UPDATE distributions SET is_default = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE org_id = $1 AND distribution_id = $2;`,
		orgID, distributionID, time.Now(), userID,
	)
	if err != nil {
		return translatePgError(err, "set default distribution")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("distribution " + distributionID + " not found")
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDistributionRepository) UpdateSettings(ctx context.Context, distribution domain.Distribution) error {
	m := mapping.ToModelDistribution(distribution)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE distributions
		SET name = $3, edit_mode = $4, base_income_mode = $5, planned_income = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE org_id = $1 AND distribution_id = $2;`,
		m.OrgID, m.DistributionID, m.Name, m.EditMode, m.BaseIncomeMode, m.PlannedIncome,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "update distribution settings")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("distribution " + m.DistributionID + " not found")
	}
	return nil
}
