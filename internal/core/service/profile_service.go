package service

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobmatch/jobmatch-api/internal/metrics"
	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

// ProfileService implements profile views and edits for both roles. Profiles
// are created lazily on first edit.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.AuthRepository
	jobs     ports.JobRepository
	files    ports.FileStore
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.AuthRepository, jobs ports.JobRepository, files ports.FileStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, jobs: jobs, files: files, log: log}
}

func (s *ProfileService) SeekerProfile(ctx context.Context, ident domain.Identity) (*ports.SeekerProfileView, error) {
	view := &ports.SeekerProfileView{FullName: ident.Name, Email: ident.Email}
	sd, err := s.profiles.FindSeekerByEmail(ctx, ident.Email)
	if err != nil {
		return view, nil
	}
	view.FullName = sd.FullName
	view.Phone = sd.Phone
	view.Education = sd.Education
	view.Experience = sd.Experience
	view.Skills = sd.Skills
	view.HasResume = sd.ResumePath != ""
	return view, nil
}

func (s *ProfileService) CompanyProfile(ctx context.Context, ident domain.Identity) (*ports.CompanyProfileView, error) {
	view := &ports.CompanyProfileView{Email: ident.Email, ContactName: ident.Name}
	if cd, err := s.profiles.FindCompanyByEmail(ctx, ident.Email); err == nil {
		if cd.ContactName != "" {
			view.ContactName = cd.ContactName
		}
		view.CompanyName = cd.CompanyName
		view.Phone = cd.Phone
		view.Website = cd.Website
	}
	count, err := s.jobs.CountByOwner(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	view.JobsPosted = count
	return view, nil
}

func (s *ProfileService) UpdateSeeker(ctx context.Context, ident domain.Identity, in ports.UpdateSeekerProfileInput) error {
	sd, err := s.profiles.FindSeekerByEmail(ctx, ident.Email)
	if err != nil {
		sd = &domain.SeekerProfile{UserID: ident.UserID, FullName: ident.Name, Email: ident.Email}
	}

	if v := strings.TrimSpace(in.FullName); v != "" {
		sd.FullName = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		sd.Phone = v
	}
	if in.Education != "" {
		sd.Education = in.Education
	}
	if in.Experience != "" {
		sd.Experience = in.Experience
	}
	if in.Skills != "" {
		sd.Skills = in.Skills
	}

	// A replaced resume is saved first and the old file removed only after the
	// row commits, so a failed commit never loses the current resume. The
	// reverse window — a saved file whose owning row never commits — leaves an
	// unreferenced random-named file behind, which is tolerated.
	oldResume := ""
	if in.Resume != nil {
		stored, err := s.files.Save(in.Resume.Filename, in.Resume.Content)
		if err != nil {
			return err
		}
		metrics.UploadsStoredTotal.WithLabelValues("resume").Inc()
		oldResume = sd.ResumePath
		sd.ResumePath = stored
	}

	if err := s.profiles.UpsertSeeker(ctx, sd); err != nil {
		return err
	}
	if oldResume != "" {
		if err := s.files.Remove(oldResume); err != nil {
			s.log.Warn().Err(err).Str("file", oldResume).Msg("failed to remove replaced resume")
		}
	}

	// Keep the account display name in sync.
	if sd.FullName != ident.Name {
		return s.users.UpdateName(ctx, ident.UserID, sd.FullName)
	}
	return nil
}

func (s *ProfileService) UpdateCompany(ctx context.Context, ident domain.Identity, in ports.UpdateCompanyProfileInput) error {
	cd, err := s.profiles.FindCompanyByEmail(ctx, ident.Email)
	if err != nil {
		cd = &domain.CompanyProfile{UserID: ident.UserID, Email: ident.Email}
	}

	if v := strings.TrimSpace(in.ContactName); v != "" {
		cd.ContactName = v
	}
	if v := strings.TrimSpace(in.CompanyName); v != "" {
		cd.CompanyName = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		cd.Phone = v
	}
	if v := strings.TrimSpace(in.Website); v != "" {
		cd.Website = v
	}

	if err := s.profiles.UpsertCompany(ctx, cd); err != nil {
		return err
	}
	if cd.ContactName != "" && cd.ContactName != ident.Name {
		return s.users.UpdateName(ctx, ident.UserID, cd.ContactName)
	}
	return nil
}

func (s *ProfileService) OpenResume(ctx context.Context, email string) (io.ReadSeekCloser, string, error) {
	sd, err := s.profiles.FindSeekerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || sd.ResumePath == "" {
		return nil, "", domain.ErrFileNotFound
	}
	f, err := s.files.Open(sd.ResumePath)
	if err != nil {
		return nil, "", err
	}
	return f, sd.ResumePath, nil
}
