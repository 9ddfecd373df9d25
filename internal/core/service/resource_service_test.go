package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

func TestResourceService_Add_SeekerForbidden(t *testing.T) {
	svc := NewResourceService(&stubResourceRepo{}, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Add(context.Background(), seekerIdent(), ports.ResourceInput{
		Type: domain.ResourceVideo, Title: "Go talk", URL: "https://example.com",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestResourceService_Add_Validation(t *testing.T) {
	svc := NewResourceService(&stubResourceRepo{}, &stubFileStore{}, zerolog.Nop())
	ctx := context.Background()

	cases := []ports.ResourceInput{
		{Type: "Podcast", Title: "t", URL: "u"},
		{Type: domain.ResourceBook, Title: " ", URL: "u"},
		{Type: domain.ResourceBook, Title: "t", URL: ""},
	}
	for i, in := range cases {
		if _, err := svc.Add(ctx, companyIdent(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestResourceService_ListGroupsByType(t *testing.T) {
	repo := &stubResourceRepo{}
	svc := NewResourceService(repo, &stubFileStore{}, zerolog.Nop())
	ctx := context.Background()

	for _, in := range []ports.ResourceInput{
		{Type: domain.ResourceVideo, Title: "Go talk", URL: "https://example.com/v"},
		{Type: domain.ResourceBook, Title: "The Go Book", URL: "https://example.com/b"},
		{Type: domain.ResourceBook, Title: "Another Book", URL: "https://example.com/b2"},
	} {
		if _, err := svc.Add(ctx, companyIdent(), in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	catalog, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(catalog.Videos) != 1 || len(catalog.Books) != 2 || len(catalog.Websites) != 0 {
		t.Fatalf("unexpected grouping: %d/%d/%d", len(catalog.Videos), len(catalog.Books), len(catalog.Websites))
	}
}

func TestResourceService_Update_RemoveImage(t *testing.T) {
	repo := &stubResourceRepo{resources: map[int64]*domain.Resource{
		1: {ID: 1, Type: domain.ResourceVideo, Title: "Go talk", URL: "u", ImagePath: "img.png"},
	}}
	svc := NewResourceService(repo, &stubFileStore{}, zerolog.Nop())

	err := svc.Update(context.Background(), companyIdent(), 1, ports.ResourceInput{RemoveImage: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.resources[1].ImagePath != "" {
		t.Fatalf("image not removed: %q", repo.resources[1].ImagePath)
	}
	if repo.resources[1].Title != "Go talk" {
		t.Fatalf("unrelated fields changed: %+v", repo.resources[1])
	}
}

func TestResourceService_Delete_NotFound(t *testing.T) {
	svc := NewResourceService(&stubResourceRepo{}, &stubFileStore{}, zerolog.Nop())
	err := svc.Delete(context.Background(), companyIdent(), 404)
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}
