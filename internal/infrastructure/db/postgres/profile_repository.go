package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ProfileRepository persists seeker and company profiles. Upserts key on the
// unique email index so the lazily-created row appears on first write.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) FindSeekerByEmail(ctx context.Context, email string) (*domain.SeekerProfile, error) {
	var p domain.SeekerProfile
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, full_name, email, phone, education, experience, skills, resume_path
		 FROM seeker_profiles WHERE email = $1`, email).
		Scan(&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Education, &p.Experience, &p.Skills, &p.ResumePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find seeker profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertSeeker(ctx context.Context, p *domain.SeekerProfile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO seeker_profiles (user_id, full_name, email, phone, education, experience, skills, resume_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO UPDATE SET
			full_name   = EXCLUDED.full_name,
			phone       = EXCLUDED.phone,
			education   = EXCLUDED.education,
			experience  = EXCLUDED.experience,
			skills      = EXCLUDED.skills,
			resume_path = EXCLUDED.resume_path
		 RETURNING id`,
		p.UserID, p.FullName, p.Email, p.Phone, p.Education, p.Experience, p.Skills, p.ResumePath).
		Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("upsert seeker profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, email, contact_name, company_name, phone, website
		 FROM company_profiles WHERE email = $1`, email).
		Scan(&p.ID, &p.UserID, &p.Email, &p.ContactName, &p.CompanyName, &p.Phone, &p.Website)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find company profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertCompany(ctx context.Context, p *domain.CompanyProfile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO company_profiles (user_id, email, contact_name, company_name, phone, website)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO UPDATE SET
			contact_name = EXCLUDED.contact_name,
			company_name = EXCLUDED.company_name,
			phone        = EXCLUDED.phone,
			website      = EXCLUDED.website
		 RETURNING id`,
		p.UserID, p.Email, p.ContactName, p.CompanyName, p.Phone, p.Website).
		Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("upsert company profile: %w", err)
	}
	return nil
}
