package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmatch/jobmatch-api/internal/metrics"
	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

const appliedAtLayout = "2006-01-02 15:04:05"

// ApplicationService implements the application lifecycle: a single Apply
// transition into Active, and terminal Accept/Reject moves out of it.
type ApplicationService struct {
	apps     ports.ApplicationRepository
	jobs     ports.JobRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, profiles ports.ProfileRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, profiles: profiles, log: log}
}

func (s *ApplicationService) Apply(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error) {
	exists, err := s.apps.HasActive(ctx, ident.Email, jobPostID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	posting, err := s.jobs.FindByID(ctx, jobPostID)
	if err != nil {
		return nil, err
	}
	if !posting.IsOpen {
		return nil, domain.ErrPostingClosed
	}

	app, err := s.apps.InsertActive(ctx, &domain.Application{
		SeekerName:  ident.Name,
		SeekerEmail: ident.Email,
		JobPostID:   jobPostID,
		JobTitle:    posting.Title,
		AppliedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	s.log.Info().
		Int64("job_post_id", jobPostID).
		Str("seeker", ident.Email).
		Msg("application submitted")
	return app, nil
}

func (s *ApplicationService) Decide(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error {
	if !state.Terminal() {
		return fmt.Errorf("%w: %q is not a decision state", domain.ErrValidation, state)
	}

	postingIDs, err := s.jobs.IDsByOwner(ctx, ident.Email)
	if err != nil {
		return err
	}
	if len(postingIDs) == 0 {
		// A company without postings cannot own any application; reported as
		// not-found so nothing leaks about other tenants.
		return domain.ErrApplicationNotFound
	}

	sel.Email = strings.ToLower(strings.TrimSpace(sel.Email))
	app, err := s.apps.ActiveBySelector(ctx, postingIDs, sel)
	if err != nil {
		return err
	}

	if err := s.apps.Decide(ctx, app.ID, state); err != nil {
		return err
	}

	metrics.ApplicationDecisionsTotal.WithLabelValues(string(state)).Inc()
	s.log.Info().
		Int64("application_id", app.ID).
		Str("seeker", app.SeekerEmail).
		Str("decision", string(state)).
		Msg("application decided")
	return nil
}

func (s *ApplicationService) SeekerStatus(ctx context.Context, ident domain.Identity, q ports.StatusQuery) (*ports.StatusResult, error) {
	accepted, err := s.apps.ListBySeeker(ctx, ident.Email, domain.StateAccepted)
	if err != nil {
		return nil, err
	}
	rejected, err := s.apps.ListBySeeker(ctx, ident.Email, domain.StateRejected)
	if err != nil {
		return nil, err
	}
	active, err := s.apps.ListBySeeker(ctx, ident.Email, domain.StateActive)
	if err != nil {
		return nil, err
	}

	postings := s.postingIndex(ctx, accepted, rejected, active)

	pack := func(apps []*domain.Application, status domain.ApplicationState) []ports.StatusEntry {
		entries := make([]ports.StatusEntry, 0, len(apps))
		for _, a := range apps {
			entry := ports.StatusEntry{
				JobTitle:  a.JobTitle,
				AppliedAt: a.AppliedAt.Format(appliedAtLayout),
				Status:    string(status),
			}
			if p := s.resolvePosting(ctx, postings, a); p != nil {
				entry.CompanyName = p.CompanyName
				entry.JobPostID = p.ID
				entry.JobDescription = p.Description
				entry.Responsibilities = p.Responsibilities
			} else {
				entry.CompanyName = "Unknown Company"
			}
			entries = append(entries, entry)
		}
		return filterSort(entries, q)
	}

	result := &ports.StatusResult{
		Accepted:    pack(accepted, domain.StateAccepted),
		Rejected:    pack(rejected, domain.StateRejected),
		UnderReview: pack(active, domain.StateActive),
	}

	if len(q.Filters) > 0 {
		allowed := make(map[string]struct{}, len(q.Filters))
		for _, f := range q.Filters {
			allowed[f] = struct{}{}
		}
		if _, ok := allowed[string(domain.StateAccepted)]; !ok {
			result.Accepted = []ports.StatusEntry{}
		}
		if _, ok := allowed[string(domain.StateRejected)]; !ok {
			result.Rejected = []ports.StatusEntry{}
		}
		if _, ok := allowed[string(domain.StateActive)]; !ok {
			result.UnderReview = []ports.StatusEntry{}
		}
	}

	return result, nil
}

func (s *ApplicationService) ActiveForCompany(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error) {
	postingIDs, err := s.jobs.IDsByOwner(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	if len(postingIDs) == 0 {
		return []ports.CompanyApplicationView{}, nil
	}

	apps, err := s.apps.ListActiveByPostings(ctx, postingIDs)
	if err != nil {
		return nil, err
	}
	postings, err := s.jobs.FindByIDs(ctx, postingIDs)
	if err != nil {
		return nil, err
	}

	return s.companyViews(ctx, apps, postings), nil
}

func (s *ApplicationService) AcceptedForCompany(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error) {
	postings, err := s.jobs.ListByOwner(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return []ports.CompanyApplicationView{}, nil
	}

	ids := make([]int64, 0, len(postings))
	titles := make([]string, 0, len(postings))
	byID := make(map[int64]*domain.JobPosting, len(postings))
	for _, p := range postings {
		ids = append(ids, p.ID)
		titles = append(titles, p.Title)
		byID[p.ID] = p
	}

	apps, err := s.apps.ListAcceptedByPostings(ctx, ids, titles)
	if err != nil {
		return nil, err
	}

	return s.companyViews(ctx, apps, byID), nil
}

// postingIndex bulk-loads the postings referenced by id across the given
// application lists.
func (s *ApplicationService) postingIndex(ctx context.Context, lists ...[]*domain.Application) map[int64]*domain.JobPosting {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, list := range lists {
		for _, a := range list {
			if a.JobPostID == 0 {
				continue
			}
			if _, ok := seen[a.JobPostID]; ok {
				continue
			}
			seen[a.JobPostID] = struct{}{}
			ids = append(ids, a.JobPostID)
		}
	}
	if len(ids) == 0 {
		return map[int64]*domain.JobPosting{}
	}
	postings, err := s.jobs.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("posting enrichment lookup failed")
		return map[int64]*domain.JobPosting{}
	}
	return postings
}

// resolvePosting prefers the id join; legacy rows without a posting id fall
// back to a title match.
func (s *ApplicationService) resolvePosting(ctx context.Context, postings map[int64]*domain.JobPosting, a *domain.Application) *domain.JobPosting {
	if a.JobPostID != 0 {
		return postings[a.JobPostID]
	}
	p, err := s.jobs.FindByTitle(ctx, a.JobTitle)
	if err != nil {
		return nil
	}
	return p
}

func (s *ApplicationService) companyViews(ctx context.Context, apps []*domain.Application, postings map[int64]*domain.JobPosting) []ports.CompanyApplicationView {
	// Legacy decision rows carry no posting id; they matched by title, so the
	// title index below resolves them against the company's own postings.
	byTitle := make(map[string]*domain.JobPosting, len(postings))
	for _, p := range postings {
		byTitle[p.Title] = p
	}

	views := make([]ports.CompanyApplicationView, 0, len(apps))
	for _, a := range apps {
		view := ports.CompanyApplicationView{
			ID:          a.ID,
			SeekerName:  a.SeekerName,
			SeekerEmail: a.SeekerEmail,
			JobTitle:    a.JobTitle,
			AppliedAt:   a.AppliedAt.Format(appliedAtLayout),
			JobPostID:   a.JobPostID,
			CompanyName: "Unknown Company",
		}
		p := postings[a.JobPostID]
		if p == nil && a.JobPostID == 0 {
			p = byTitle[a.JobTitle]
		}
		if p != nil {
			view.CompanyName = p.CompanyName
		}
		if sd, err := s.profiles.FindSeekerByEmail(ctx, a.SeekerEmail); err == nil {
			view.Education = sd.Education
			view.Experience = sd.Experience
			view.Skills = sd.Skills
			view.HasResume = sd.ResumePath != ""
		}
		views = append(views, view)
	}
	return views
}

func filterSort(entries []ports.StatusEntry, q ports.StatusQuery) []ports.StatusEntry {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search != "" {
		kept := entries[:0]
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.JobTitle), search) ||
				strings.Contains(strings.ToLower(e.CompanyName), search) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if q.SortDesc {
			return entries[i].AppliedAt > entries[j].AppliedAt
		}
		return entries[i].AppliedAt < entries[j].AppliedAt
	})
	return entries
}
