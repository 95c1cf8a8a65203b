package service

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
)

// CatalogService serves the public menu and reviews
type CatalogService interface {
	Menu(ctx context.Context) ([]*domain.MenuItem, error)
	Reviews(ctx context.Context) ([]*domain.Review, error)
}

type catalogService struct {
	menuRepo   repository.MenuRepository
	reviewRepo repository.ReviewRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(menuRepo repository.MenuRepository, reviewRepo repository.ReviewRepository) CatalogService {
	return &catalogService{menuRepo: menuRepo, reviewRepo: reviewRepo}
}

func (s *catalogService) Menu(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.menu")
	defer span.End()

	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return items, nil
}

func (s *catalogService) Reviews(ctx context.Context) ([]*domain.Review, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.reviews")
	defer span.End()

	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return reviews, nil
}
