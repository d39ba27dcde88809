package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/api/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `
	id, job_id, applicant_id, resume_key, cover_letter, status, notes,
	created_at, updated_at
`

func scanApplication(row pgx.Row) (models.Application, error) {
	var app models.Application
	if err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantID,
		&app.ResumeKey,
		&app.CoverLetter,
		&app.Status,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}
		return models.Application{}, err
	}
	return app, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app models.Application) error {
	const query = `
		INSERT INTO applications (
			id, job_id, applicant_id, resume_key, cover_letter, status, notes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
	`
	_, err := r.pool.Exec(ctx, query,
		app.ID,
		app.JobID,
		app.ApplicantID,
		app.ResumeKey,
		app.CoverLetter,
		app.Status,
		app.Notes,
	)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (models.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	const query = `
		SELECT ` + applicationColumns + ` FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, applicantID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	const query = `
		SELECT ` + applicationColumns + ` FROM applications
		WHERE job_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, jobID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg any) ([]models.Application, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	const query = `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// AppendNote pushes an employer note onto the application's jsonb note list.
func (r *ApplicationRepository) AppendNote(ctx context.Context, id string, note models.ApplicationNote) error {
	const query = `
		UPDATE applications
		SET notes = notes || $2::jsonb, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, []models.ApplicationNote{note})
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// WeeklyCount is one bucket of the analytics series.
type WeeklyCount struct {
	WeekStart time.Time
	Total     int
}

// CountByWeek buckets rows by week for the trailing weeks window, optionally
// restricted to a status subset. Missing weeks are filled with zeroes by the
// caller.
func (r *ApplicationRepository) CountByWeek(ctx context.Context, weeks int, statuses []models.ApplicationStatus) ([]WeeklyCount, error) {
	const query = `
		SELECT date_trunc('week', created_at) AS week_start, COUNT(*)
		FROM applications
		WHERE created_at >= NOW() - make_interval(weeks => $1)
		  AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
		GROUP BY week_start
		ORDER BY week_start
	`
	statusArgs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusArgs = append(statusArgs, string(s))
	}

	rows, err := r.pool.Query(ctx, query, weeks, statusArgs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []WeeklyCount
	for rows.Next() {
		var c WeeklyCount
		if err := rows.Scan(&c.WeekStart, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
