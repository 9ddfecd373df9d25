package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

const appColumns = `id, seeker_name, seeker_email, job_post_id, job_title, applied_at`

// stateTables maps each lifecycle state to its table. The three tables are
// disjoint; a record is moved between them inside a single transaction.
var stateTables = map[domain.ApplicationState]string{
	domain.StateActive:   "active_applications",
	domain.StateAccepted: "accepted_applications",
	domain.StateRejected: "rejected_applications",
}

// txBeginner is the slice of pgxpool.Pool that Decide needs; tests supply a
// stub transaction through it.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ApplicationRepository persists the application state tables.
type ApplicationRepository struct {
	pool *pgxpool.Pool
	tx   txBeginner
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool, tx: pool}
}

func (r *ApplicationRepository) HasActive(ctx context.Context, seekerEmail string, jobPostID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM active_applications WHERE seeker_email = $1 AND job_post_id = $2)`,
		seekerEmail, jobPostID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active application: %w", err)
	}
	return exists, nil
}

func (r *ApplicationRepository) InsertActive(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	created := *app
	err := r.pool.QueryRow(ctx,
		`INSERT INTO active_applications (seeker_name, seeker_email, job_post_id, job_title, applied_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		app.SeekerName, app.SeekerEmail, app.JobPostID, app.JobTitle, app.AppliedAt).
		Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &created, nil
}

func (r *ApplicationRepository) ActiveBySelector(ctx context.Context, postingIDs []int64, sel ports.ApplicationSelector) (*domain.Application, error) {
	var row pgx.Row
	switch {
	case sel.AppID != 0:
		row = r.pool.QueryRow(ctx,
			`SELECT `+appColumns+` FROM active_applications
			 WHERE job_post_id = ANY($1) AND id = $2 LIMIT 1`, postingIDs, sel.AppID)
	case sel.Email != "":
		row = r.pool.QueryRow(ctx,
			`SELECT `+appColumns+` FROM active_applications
			 WHERE job_post_id = ANY($1) AND seeker_email = $2
			 ORDER BY applied_at LIMIT 1`, postingIDs, sel.Email)
	default:
		return nil, domain.ErrApplicationNotFound
	}
	return scanApplication(row)
}

// Decide moves an active application into the target state table. Insert and
// delete run inside one transaction: either both take effect or neither, so a
// record can never be duplicated or dropped by a crash mid-move.
func (r *ApplicationRepository) Decide(ctx context.Context, appID int64, state domain.ApplicationState) error {
	table, ok := stateTables[state]
	if !ok || !state.Terminal() {
		return fmt.Errorf("%w: cannot move application to %q", domain.ErrValidation, state)
	}

	tx, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin decide: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`INSERT INTO `+table+` (seeker_name, seeker_email, job_post_id, job_title, applied_at)
		 SELECT seeker_name, seeker_email, job_post_id, job_title, applied_at
		 FROM active_applications WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}

	tag, err = tx.Exec(ctx, `DELETE FROM active_applications WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("delete active application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit decide: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) ListBySeeker(ctx context.Context, seekerEmail string, state domain.ApplicationState) ([]*domain.Application, error) {
	table, ok := stateTables[state]
	if !ok {
		return nil, fmt.Errorf("%w: unknown state %q", domain.ErrValidation, state)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+appColumns+` FROM `+table+` WHERE seeker_email = $1`, seekerEmail)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListActiveByPostings(ctx context.Context, postingIDs []int64) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appColumns+` FROM active_applications
		 WHERE job_post_id = ANY($1) ORDER BY applied_at DESC`, postingIDs)
	if err != nil {
		return nil, fmt.Errorf("list active applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// ListAcceptedByPostings matches by posting id; legacy rows with a zero
// job_post_id fall back to a title match against the owner's posting titles.
// The title join can misattribute history across renamed or duplicate-titled
// postings, which is why new decision rows always carry the posting id.
func (r *ApplicationRepository) ListAcceptedByPostings(ctx context.Context, postingIDs []int64, titles []string) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appColumns+` FROM accepted_applications
		 WHERE job_post_id = ANY($1) OR (job_post_id = 0 AND job_title = ANY($2))
		 ORDER BY applied_at DESC`, postingIDs, titles)
	if err != nil {
		return nil, fmt.Errorf("list accepted applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.SeekerName, &a.SeekerEmail, &a.JobPostID, &a.JobTitle, &a.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	return &a, nil
}

func collectApplications(rows pgx.Rows) ([]*domain.Application, error) {
	out := []*domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
