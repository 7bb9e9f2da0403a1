package services

import (
	"context"

	"github.com/odalivan/experience_storefront/internal/core/domain"
	"github.com/odalivan/experience_storefront/internal/core/ports"
)

// CatalogService is the read-only catalog reader. It holds no state and
// performs no caching: every call goes straight to the backend.
type CatalogService struct {
	catalog ports.ExperienceCatalog
}

func NewCatalogService(catalog ports.ExperienceCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.catalog.ListExperiences(ctx)
}

func (s *CatalogService) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	return s.catalog.GetExperience(ctx, id)
}
