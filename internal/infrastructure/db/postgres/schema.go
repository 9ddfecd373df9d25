package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL creates all tables on first boot. Application state lives in three
// disjoint tables; a record is moved between them, never copied. The state
// tables deliberately carry no foreign key to job_posts so that deleting a
// posting leaves history readable (orphan-tolerant reads).
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'seeker',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seeker_profiles (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users(id),
	full_name   TEXT NOT NULL,
	email       TEXT NOT NULL UNIQUE,
	phone       TEXT NOT NULL DEFAULT '',
	education   TEXT NOT NULL DEFAULT '',
	experience  TEXT NOT NULL DEFAULT '',
	skills      TEXT NOT NULL DEFAULT '',
	resume_path TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS company_profiles (
	id           BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES users(id),
	email        TEXT NOT NULL UNIQUE,
	contact_name TEXT NOT NULL DEFAULT '',
	company_name TEXT NOT NULL DEFAULT '',
	phone        TEXT NOT NULL DEFAULT '',
	website      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS job_posts (
	id                   BIGSERIAL PRIMARY KEY,
	job_title            TEXT NOT NULL,
	location             TEXT NOT NULL,
	employment_type      TEXT NOT NULL,
	salary_from          INTEGER,
	salary_to            INTEGER,
	job_description      TEXT NOT NULL,
	key_responsibilities TEXT NOT NULL DEFAULT '',
	company_name         TEXT NOT NULL,
	email                TEXT NOT NULL,
	logo_filename        TEXT NOT NULL DEFAULT '',
	is_open              BOOLEAN NOT NULL DEFAULT TRUE,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS job_posts_email_idx ON job_posts (email);

CREATE TABLE IF NOT EXISTS active_applications (
	id           BIGSERIAL PRIMARY KEY,
	seeker_name  TEXT NOT NULL,
	seeker_email TEXT NOT NULL,
	job_post_id  BIGINT NOT NULL,
	job_title    TEXT NOT NULL,
	applied_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (seeker_email, job_post_id)
);
CREATE INDEX IF NOT EXISTS active_applications_seeker_idx ON active_applications (seeker_email);

CREATE TABLE IF NOT EXISTS accepted_applications (
	id           BIGSERIAL PRIMARY KEY,
	seeker_name  TEXT NOT NULL,
	seeker_email TEXT NOT NULL,
	job_post_id  BIGINT NOT NULL DEFAULT 0,
	job_title    TEXT NOT NULL,
	applied_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS accepted_applications_seeker_idx ON accepted_applications (seeker_email);

CREATE TABLE IF NOT EXISTS rejected_applications (
	id           BIGSERIAL PRIMARY KEY,
	seeker_name  TEXT NOT NULL,
	seeker_email TEXT NOT NULL,
	job_post_id  BIGINT NOT NULL DEFAULT 0,
	job_title    TEXT NOT NULL,
	applied_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS rejected_applications_seeker_idx ON rejected_applications (seeker_email);

CREATE TABLE IF NOT EXISTS resources (
	id            BIGSERIAL PRIMARY KEY,
	resource_type TEXT NOT NULL,
	title         TEXT NOT NULL,
	url           TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	image_path    TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
