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

// ResourceService implements the learning-resource catalog. Mutations are
// restricted to company users at the routing layer; the service re-checks.
type ResourceService struct {
	repo  ports.ResourceRepository
	files ports.FileStore
	log   zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, files ports.FileStore, log zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, files: files, log: log}
}

func (s *ResourceService) List(ctx context.Context) (*ports.ResourceCatalog, error) {
	videos, err := s.repo.ListByType(ctx, domain.ResourceVideo)
	if err != nil {
		return nil, err
	}
	books, err := s.repo.ListByType(ctx, domain.ResourceBook)
	if err != nil {
		return nil, err
	}
	websites, err := s.repo.ListByType(ctx, domain.ResourceWebsite)
	if err != nil {
		return nil, err
	}
	return &ports.ResourceCatalog{Videos: videos, Books: books, Websites: websites}, nil
}

func (s *ResourceService) Add(ctx context.Context, ident domain.Identity, in ports.ResourceInput) (*domain.Resource, error) {
	if !ident.IsCompany() {
		return nil, domain.ErrForbidden
	}
	if err := validateResource(in); err != nil {
		return nil, err
	}

	image, err := s.saveImage(in.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Resource{
		Type:        in.Type,
		Title:       strings.TrimSpace(in.Title),
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		ImagePath:   image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("resource_id", created.ID).Str("type", created.Type).Msg("resource added")
	return created, nil
}

func (s *ResourceService) Update(ctx context.Context, ident domain.Identity, id int64, in ports.ResourceInput) error {
	if !ident.IsCompany() {
		return domain.ErrForbidden
	}

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Type != "" {
		if !domain.ValidResourceType(in.Type) {
			return fmt.Errorf("%w: unknown resource type %q", domain.ErrValidation, in.Type)
		}
		res.Type = in.Type
	}
	if v := strings.TrimSpace(in.Title); v != "" {
		res.Title = v
	}
	if v := strings.TrimSpace(in.URL); v != "" {
		res.URL = v
	}
	if in.Description != "" {
		res.Description = in.Description
	}
	if in.RemoveImage {
		res.ImagePath = ""
	}
	if in.Image != nil {
		image, err := s.saveImage(in.Image)
		if err != nil {
			return err
		}
		res.ImagePath = image
	}
	res.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, res)
}

func (s *ResourceService) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.IsCompany() {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ResourceService) saveImage(image *ports.Upload) (string, error) {
	if image == nil {
		return "", nil
	}
	stored, err := s.files.Save(image.Filename, image.Content)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.WithLabelValues("resource_image").Inc()
	return stored, nil
}

func validateResource(in ports.ResourceInput) error {
	if !domain.ValidResourceType(in.Type) {
		return fmt.Errorf("%w: unknown resource type %q", domain.ErrValidation, in.Type)
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.URL) == "" {
		return fmt.Errorf("%w: title and url are required", domain.ErrValidation)
	}
	return nil
}
