package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

const resourceColumns = `id, resource_type, title, url, description, image_path, created_at, updated_at`

// ResourceRepository persists learning resources.
type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	created := *res
	err := r.pool.QueryRow(ctx,
		`INSERT INTO resources (resource_type, title, url, description, image_path, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		res.Type, res.Title, res.URL, res.Description, res.ImagePath, res.CreatedAt, res.UpdatedAt).
		Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert resource: %w", err)
	}
	return &created, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*domain.Resource, error) {
	var res domain.Resource
	err := r.pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id).
		Scan(&res.ID, &res.Type, &res.Title, &res.URL, &res.Description, &res.ImagePath, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return &res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE resources SET resource_type = $1, title = $2, url = $3, description = $4,
			image_path = $5, updated_at = $6
		 WHERE id = $7`,
		res.Type, res.Title, res.URL, res.Description, res.ImagePath, res.UpdatedAt, res.ID)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) ListByType(ctx context.Context, resourceType string) ([]*domain.Resource, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE resource_type = $1 ORDER BY created_at DESC`,
		resourceType)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	out := []*domain.Resource{}
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.Type, &res.Title, &res.URL, &res.Description,
			&res.ImagePath, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}
