package service

import (
	"context"
	"io"
	"strings"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type stubAuthRepo struct {
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	createFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, userID int64, hash string) error
	updateNameFn     func(ctx context.Context, userID int64, name string) error
}

func (s *stubAuthRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubAuthRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.createFn == nil {
		created := *user
		created.ID = 1
		return &created, nil
	}
	return s.createFn(ctx, user)
}

func (s *stubAuthRepo) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	if s.updatePasswordFn == nil {
		return nil
	}
	return s.updatePasswordFn(ctx, userID, hash)
}

func (s *stubAuthRepo) UpdateName(ctx context.Context, userID int64, name string) error {
	if s.updateNameFn == nil {
		return nil
	}
	return s.updateNameFn(ctx, userID, name)
}

type stubSessionStore struct {
	issueFn  func(ctx context.Context, ident domain.Identity) (string, error)
	revoked  []string
	resolved map[string]domain.Identity
}

func (s *stubSessionStore) Issue(ctx context.Context, ident domain.Identity) (string, error) {
	if s.issueFn == nil {
		return "token-1", nil
	}
	return s.issueFn(ctx, ident)
}

func (s *stubSessionStore) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	ident, ok := s.resolved[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &ident, nil
}

func (s *stubSessionStore) Revoke(ctx context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

type stubProfileRepo struct {
	seekers        map[string]*domain.SeekerProfile
	companies      map[string]*domain.CompanyProfile
	upserts        []*domain.SeekerProfile
	upsertSeekerFn func(ctx context.Context, p *domain.SeekerProfile) error
}

func (s *stubProfileRepo) FindSeekerByEmail(ctx context.Context, email string) (*domain.SeekerProfile, error) {
	if p, ok := s.seekers[email]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (s *stubProfileRepo) UpsertSeeker(ctx context.Context, p *domain.SeekerProfile) error {
	if s.upsertSeekerFn != nil {
		return s.upsertSeekerFn(ctx, p)
	}
	if s.seekers == nil {
		s.seekers = map[string]*domain.SeekerProfile{}
	}
	s.seekers[p.Email] = p
	s.upserts = append(s.upserts, p)
	return nil
}

func (s *stubProfileRepo) FindCompanyByEmail(ctx context.Context, email string) (*domain.CompanyProfile, error) {
	if p, ok := s.companies[email]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (s *stubProfileRepo) UpsertCompany(ctx context.Context, p *domain.CompanyProfile) error {
	if s.companies == nil {
		s.companies = map[string]*domain.CompanyProfile{}
	}
	s.companies[p.Email] = p
	return nil
}

type stubJobRepo struct {
	postings map[int64]*domain.JobPosting
	searchFn func(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error)
	updated  []*domain.JobPosting
	deleted  []int64
	toggled  map[int64]bool
}

func (s *stubJobRepo) Create(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error) {
	created := *p
	created.ID = int64(len(s.postings) + 1)
	if s.postings == nil {
		s.postings = map[int64]*domain.JobPosting{}
	}
	s.postings[created.ID] = &created
	return &created, nil
}

func (s *stubJobRepo) FindByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	if p, ok := s.postings[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPostingNotFound
}

func (s *stubJobRepo) FindByIDs(ctx context.Context, ids []int64) (map[int64]*domain.JobPosting, error) {
	out := map[int64]*domain.JobPosting{}
	for _, id := range ids {
		if p, ok := s.postings[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *stubJobRepo) FindByTitle(ctx context.Context, title string) (*domain.JobPosting, error) {
	for _, p := range s.postings {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, domain.ErrPostingNotFound
}

func (s *stubJobRepo) Update(ctx context.Context, p *domain.JobPosting) error {
	s.updated = append(s.updated, p)
	s.postings[p.ID] = p
	return nil
}

func (s *stubJobRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.postings[id]; !ok {
		return domain.ErrPostingNotFound
	}
	delete(s.postings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubJobRepo) SetOpen(ctx context.Context, id int64, open bool) error {
	p, ok := s.postings[id]
	if !ok {
		return domain.ErrPostingNotFound
	}
	p.IsOpen = open
	if s.toggled == nil {
		s.toggled = map[int64]bool{}
	}
	s.toggled[id] = open
	return nil
}

func (s *stubJobRepo) Search(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, f)
	}
	out := []*domain.JobPosting{}
	for _, p := range s.postings {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubJobRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.JobPosting, error) {
	out := []*domain.JobPosting{}
	for _, p := range s.postings {
		if p.OwnerEmail == ownerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubJobRepo) IDsByOwner(ctx context.Context, ownerEmail string) ([]int64, error) {
	ids := []int64{}
	for _, p := range s.postings {
		if p.OwnerEmail == ownerEmail {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (s *stubJobRepo) CountByOwner(ctx context.Context, ownerEmail string) (int, error) {
	ids, _ := s.IDsByOwner(ctx, ownerEmail)
	return len(ids), nil
}

type stubApplicationRepo struct {
	hasActiveFn    func(ctx context.Context, seekerEmail string, jobPostID int64) (bool, error)
	insertActiveFn func(ctx context.Context, app *domain.Application) (*domain.Application, error)
	bySelectorFn   func(ctx context.Context, postingIDs []int64, sel ports.ApplicationSelector) (*domain.Application, error)
	decideFn       func(ctx context.Context, appID int64, state domain.ApplicationState) error
	bySeekerFn     func(ctx context.Context, seekerEmail string, state domain.ApplicationState) ([]*domain.Application, error)
	activeFn       func(ctx context.Context, postingIDs []int64) ([]*domain.Application, error)
	acceptedFn     func(ctx context.Context, postingIDs []int64, titles []string) ([]*domain.Application, error)
}

func (s *stubApplicationRepo) HasActive(ctx context.Context, seekerEmail string, jobPostID int64) (bool, error) {
	if s.hasActiveFn == nil {
		return false, nil
	}
	return s.hasActiveFn(ctx, seekerEmail, jobPostID)
}

func (s *stubApplicationRepo) InsertActive(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if s.insertActiveFn == nil {
		created := *app
		created.ID = 1
		return &created, nil
	}
	return s.insertActiveFn(ctx, app)
}

func (s *stubApplicationRepo) ActiveBySelector(ctx context.Context, postingIDs []int64, sel ports.ApplicationSelector) (*domain.Application, error) {
	if s.bySelectorFn == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return s.bySelectorFn(ctx, postingIDs, sel)
}

func (s *stubApplicationRepo) Decide(ctx context.Context, appID int64, state domain.ApplicationState) error {
	if s.decideFn == nil {
		return nil
	}
	return s.decideFn(ctx, appID, state)
}

func (s *stubApplicationRepo) ListBySeeker(ctx context.Context, seekerEmail string, state domain.ApplicationState) ([]*domain.Application, error) {
	if s.bySeekerFn == nil {
		return []*domain.Application{}, nil
	}
	return s.bySeekerFn(ctx, seekerEmail, state)
}

func (s *stubApplicationRepo) ListActiveByPostings(ctx context.Context, postingIDs []int64) ([]*domain.Application, error) {
	if s.activeFn == nil {
		return []*domain.Application{}, nil
	}
	return s.activeFn(ctx, postingIDs)
}

func (s *stubApplicationRepo) ListAcceptedByPostings(ctx context.Context, postingIDs []int64, titles []string) ([]*domain.Application, error) {
	if s.acceptedFn == nil {
		return []*domain.Application{}, nil
	}
	return s.acceptedFn(ctx, postingIDs, titles)
}

type stubResourceRepo struct {
	resources map[int64]*domain.Resource
	nextID    int64
}

func (s *stubResourceRepo) Create(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	if s.resources == nil {
		s.resources = map[int64]*domain.Resource{}
	}
	s.nextID++
	created := *r
	created.ID = s.nextID
	s.resources[created.ID] = &created
	return &created, nil
}

func (s *stubResourceRepo) FindByID(ctx context.Context, id int64) (*domain.Resource, error) {
	if r, ok := s.resources[id]; ok {
		return r, nil
	}
	return nil, domain.ErrResourceNotFound
}

func (s *stubResourceRepo) Update(ctx context.Context, r *domain.Resource) error {
	if _, ok := s.resources[r.ID]; !ok {
		return domain.ErrResourceNotFound
	}
	s.resources[r.ID] = r
	return nil
}

func (s *stubResourceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.resources[id]; !ok {
		return domain.ErrResourceNotFound
	}
	delete(s.resources, id)
	return nil
}

func (s *stubResourceRepo) ListByType(ctx context.Context, resourceType string) ([]*domain.Resource, error) {
	out := []*domain.Resource{}
	for _, r := range s.resources {
		if r.Type == resourceType {
			out = append(out, r)
		}
	}
	return out, nil
}

// stubFileStore records saves and removals in memory.
type stubFileStore struct {
	saved   map[string]string // stored name -> content
	removed []string
	saveErr error
}

func (s *stubFileStore) Save(filename string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	content, _ := io.ReadAll(r)
	stored := "stored-" + filename
	if s.saved == nil {
		s.saved = map[string]string{}
	}
	s.saved[stored] = string(content)
	return stored, nil
}

func (s *stubFileStore) Open(stored string) (io.ReadSeekCloser, error) {
	content, ok := s.saved[stored]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	return nopReadSeekCloser{strings.NewReader(content)}, nil
}

func (s *stubFileStore) Remove(stored string) error {
	if _, ok := s.saved[stored]; !ok {
		return domain.ErrFileNotFound
	}
	delete(s.saved, stored)
	s.removed = append(s.removed, stored)
	return nil
}

type nopReadSeekCloser struct {
	*strings.Reader
}

func (nopReadSeekCloser) Close() error { return nil }
