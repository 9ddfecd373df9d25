package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

const jobColumns = `id, job_title, location, employment_type, salary_from, salary_to,
	job_description, key_responsibilities, company_name, email, logo_filename, is_open, created_at`

// JobRepository persists job postings.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error) {
	created := *p
	err := r.pool.QueryRow(ctx,
		`INSERT INTO job_posts (job_title, location, employment_type, salary_from, salary_to,
			job_description, key_responsibilities, company_name, email, logo_filename, is_open, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		p.Title, p.Location, p.EmploymentType, p.SalaryFrom, p.SalaryTo,
		p.Description, p.Responsibilities, p.CompanyName, p.OwnerEmail, p.LogoFilename, p.IsOpen, p.CreatedAt).
		Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert job post: %w", err)
	}
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_posts WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*domain.JobPosting, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM job_posts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find job posts: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]*domain.JobPosting, len(ids))
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (r *JobRepository) FindByTitle(ctx context.Context, title string) (*domain.JobPosting, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_posts WHERE job_title = $1 ORDER BY id LIMIT 1`, title)
	return scanJob(row)
}

func (r *JobRepository) Update(ctx context.Context, p *domain.JobPosting) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_posts SET job_title = $1, location = $2, employment_type = $3,
			salary_from = $4, salary_to = $5, job_description = $6, key_responsibilities = $7,
			company_name = $8, logo_filename = $9
		 WHERE id = $10`,
		p.Title, p.Location, p.EmploymentType, p.SalaryFrom, p.SalaryTo,
		p.Description, p.Responsibilities, p.CompanyName, p.LogoFilename, p.ID)
	if err != nil {
		return fmt.Errorf("update job post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostingNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostingNotFound
	}
	return nil
}

func (r *JobRepository) SetOpen(ctx context.Context, id int64, open bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE job_posts SET is_open = $1 WHERE id = $2`, open, id)
	if err != nil {
		return fmt.Errorf("toggle job post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostingNotFound
	}
	return nil
}

// Search matches the query case-insensitively against title, company name and
// location (OR semantics). Salary bounds are inclusive and a row with a null
// bound always passes the corresponding filter.
func (r *JobRepository) Search(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Query != "" {
		like := arg("%" + f.Query + "%")
		where = append(where, fmt.Sprintf(
			"(job_title ILIKE %[1]s OR company_name ILIKE %[1]s OR location ILIKE %[1]s)", like))
	}
	if f.EmploymentType != "" {
		where = append(where, fmt.Sprintf("employment_type = %s", arg(f.EmploymentType)))
	}
	if f.SalaryFrom != nil {
		where = append(where, fmt.Sprintf("(salary_from >= %s OR salary_from IS NULL)", arg(*f.SalaryFrom)))
	}
	if f.SalaryTo != nil {
		where = append(where, fmt.Sprintf("(salary_to <= %s OR salary_to IS NULL)", arg(*f.SalaryTo)))
	}

	query := `SELECT ` + jobColumns + ` FROM job_posts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search job posts: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.JobPosting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_posts WHERE email = $1 ORDER BY created_at DESC`, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) IDsByOwner(ctx context.Context, ownerEmail string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM job_posts WHERE email = $1`, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list job post ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *JobRepository) CountByOwner(ctx context.Context, ownerEmail string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM job_posts WHERE email = $1`, ownerEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count job posts: %w", err)
	}
	return count, nil
}

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var p domain.JobPosting
	err := row.Scan(&p.ID, &p.Title, &p.Location, &p.EmploymentType, &p.SalaryFrom, &p.SalaryTo,
		&p.Description, &p.Responsibilities, &p.CompanyName, &p.OwnerEmail, &p.LogoFilename, &p.IsOpen, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostingNotFound
		}
		return nil, fmt.Errorf("scan job post: %w", err)
	}
	return &p, nil
}

func collectJobs(rows pgx.Rows) ([]*domain.JobPosting, error) {
	out := []*domain.JobPosting{}
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
