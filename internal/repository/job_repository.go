package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/api/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `
	id, title, company, location, type, category, description, requirements,
	responsibilities, skills, benefits, salary_min, salary_max, salary_currency,
	experience_level, education, deadline, company_logo, employer_id, status,
	views, created_at, updated_at
`

func scanJob(row pgx.Row) (models.Job, error) {
	var job models.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&job.Category,
		&job.Description,
		&job.Requirements,
		&job.Responsibilities,
		&job.Skills,
		&job.Benefits,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.SalaryCurrency,
		&job.ExperienceLevel,
		&job.Education,
		&job.Deadline,
		&job.CompanyLogo,
		&job.EmployerID,
		&job.Status,
		&job.Views,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}
		return models.Job{}, err
	}
	return job, nil
}

func (r *JobRepository) Create(ctx context.Context, job models.Job) error {
	const query = `
		INSERT INTO jobs (
			id, title, company, location, type, category, description, requirements,
			responsibilities, skills, benefits, salary_min, salary_max, salary_currency,
			experience_level, education, deadline, company_logo, employer_id, status,
			views, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, 0, NOW(), NOW()
		)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Category,
		job.Description, job.Requirements, job.Responsibilities, job.Skills,
		job.Benefits, job.SalaryMin, job.SalaryMax, job.SalaryCurrency,
		job.ExperienceLevel, job.Education, job.Deadline, job.CompanyLogo,
		job.EmployerID, job.Status,
	)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (models.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

// List applies the optional filters. Keyword search is delegated to the
// text index over title/company/description/location.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	conds = append(conds, "status = 'published'")

	if filter.Keyword != "" {
		add("search_vector @@ websearch_to_tsquery('english', $%d)", filter.Keyword)
	}
	if filter.Location != "" {
		add("location ILIKE '%%' || $%d || '%%'", filter.Location)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.ExperienceLevel != "" {
		add("experience_level = $%d", filter.ExperienceLevel)
	}
	if filter.SalaryMin > 0 {
		add("salary_min >= $%d", filter.SalaryMin)
	}
	if filter.SalaryMax > 0 {
		add("salary_max <= $%d", filter.SalaryMax)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d OFFSET %d", limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]models.Job, error) {
	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, job models.Job) error {
	const query = `
		UPDATE jobs SET
			title = $2, company = $3, location = $4, type = $5, category = $6,
			description = $7, requirements = $8, responsibilities = $9, skills = $10,
			benefits = $11, salary_min = $12, salary_max = $13, salary_currency = $14,
			experience_level = $15, education = $16, deadline = $17, company_logo = $18,
			status = $19, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Category,
		job.Description, job.Requirements, job.Responsibilities, job.Skills,
		job.Benefits, job.SalaryMin, job.SalaryMax, job.SalaryCurrency,
		job.ExperienceLevel, job.Education, job.Deadline, job.CompanyLogo,
		job.Status,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM jobs WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

// AddViews folds a batch of counted views into the persistent counter.
func (r *JobRepository) AddViews(ctx context.Context, id string, n int64) error {
	const query = `UPDATE jobs SET views = views + $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, n)
	return err
}

// CloseExpired flips published jobs whose deadline has passed to closed.
// Run by the scheduler; returns the number of postings closed.
func (r *JobRepository) CloseExpired(ctx context.Context) (int64, error) {
	const query = `
		UPDATE jobs SET status = 'closed', updated_at = NOW()
		WHERE status = 'published' AND deadline IS NOT NULL AND deadline < NOW()
	`
	cmd, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// Recommended returns published jobs sharing at least one skill with the
// user, excluding the user's own postings. A toy overlap filter, not a
// ranking model.
func (r *JobRepository) Recommended(ctx context.Context, userID string, skills []string, limit int) ([]models.Job, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	const query = `
		SELECT ` + jobColumns + ` FROM jobs
		WHERE status = 'published' AND employer_id <> $1 AND skills && $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, skills, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}
