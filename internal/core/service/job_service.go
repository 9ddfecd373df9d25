package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmatch/jobmatch-api/internal/metrics"
	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

// JobService implements posting CRUD with owner scoping and the catalog search.
type JobService struct {
	repo  ports.JobRepository
	files ports.FileStore
	log   zerolog.Logger
}

func NewJobService(repo ports.JobRepository, files ports.FileStore, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, files: files, log: log}
}

func (s *JobService) Create(ctx context.Context, ident domain.Identity, in ports.PostingInput) (*domain.JobPosting, error) {
	if err := validatePosting(in); err != nil {
		return nil, err
	}

	logo, err := s.saveLogo(in.Logo)
	if err != nil {
		return nil, err
	}

	posting := &domain.JobPosting{
		Title:            strings.TrimSpace(in.Title),
		Location:         strings.TrimSpace(in.Location),
		EmploymentType:   in.EmploymentType,
		SalaryFrom:       in.SalaryFrom,
		SalaryTo:         in.SalaryTo,
		Description:      in.Description,
		Responsibilities: in.Responsibilities,
		CompanyName:      strings.TrimSpace(in.CompanyName),
		OwnerEmail:       ident.Email,
		LogoFilename:     logo,
		IsOpen:           in.IsOpen,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, posting)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("job_post_id", created.ID).Str("owner", ident.Email).Msg("job posted")
	return created, nil
}

func (s *JobService) Update(ctx context.Context, ident domain.Identity, id int64, in ports.PostingInput) error {
	posting, err := s.owned(ctx, ident, id)
	if err != nil {
		return err
	}
	if err := validatePosting(in); err != nil {
		return err
	}

	posting.Title = strings.TrimSpace(in.Title)
	posting.Location = strings.TrimSpace(in.Location)
	posting.EmploymentType = in.EmploymentType
	posting.SalaryFrom = in.SalaryFrom
	posting.SalaryTo = in.SalaryTo
	posting.Description = in.Description
	posting.Responsibilities = in.Responsibilities
	posting.CompanyName = strings.TrimSpace(in.CompanyName)

	if in.Logo != nil {
		logo, err := s.saveLogo(in.Logo)
		if err != nil {
			return err
		}
		posting.LogoFilename = logo
	}

	return s.repo.Update(ctx, posting)
}

func (s *JobService) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if _, err := s.owned(ctx, ident, id); err != nil {
		return err
	}
	// Application rows referencing this posting are left in place; reads
	// tolerate the orphaned posting id.
	return s.repo.Delete(ctx, id)
}

func (s *JobService) Toggle(ctx context.Context, ident domain.Identity, id int64, open bool) (bool, error) {
	if _, err := s.owned(ctx, ident, id); err != nil {
		return false, err
	}
	if err := s.repo.SetOpen(ctx, id, open); err != nil {
		return false, err
	}
	return open, nil
}

func (s *JobService) Search(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	return s.repo.Search(ctx, f)
}

func (s *JobService) ListMine(ctx context.Context, ident domain.Identity) ([]*domain.JobPosting, error) {
	return s.repo.ListByOwner(ctx, ident.Email)
}

// owned loads a posting and verifies the caller owns it.
func (s *JobService) owned(ctx context.Context, ident domain.Identity, id int64) (*domain.JobPosting, error) {
	posting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.OwnerEmail != ident.Email {
		return nil, domain.ErrForbidden
	}
	return posting, nil
}

func (s *JobService) saveLogo(logo *ports.Upload) (string, error) {
	if logo == nil {
		return "", nil
	}
	stored, err := s.files.Save(logo.Filename, logo.Content)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.WithLabelValues("logo").Inc()
	return stored, nil
}

func validatePosting(in ports.PostingInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Location) == "" ||
		in.EmploymentType == "" || strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.CompanyName) == "" {
		return fmt.Errorf("%w: title, location, employment type, description and company name are required", domain.ErrValidation)
	}
	return nil
}
