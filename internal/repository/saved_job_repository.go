package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/api/internal/models"
)

type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

// Save is idempotent: saving an already-saved job is a no-op.
func (r *SavedJobRepository) Save(ctx context.Context, userID string, jobID string) error {
	const query = `
		INSERT INTO saved_jobs (user_id, job_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, job_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID, jobID)
	return err
}

func (r *SavedJobRepository) Unsave(ctx context.Context, userID string, jobID string) error {
	const query = `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`
	_, err := r.pool.Exec(ctx, query, userID, jobID)
	return err
}

func (r *SavedJobRepository) ListByUser(ctx context.Context, userID string) ([]models.Job, error) {
	const query = `
		SELECT ` + jobColumns + ` FROM jobs
		WHERE id IN (SELECT job_id FROM saved_jobs WHERE user_id = $1)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}
