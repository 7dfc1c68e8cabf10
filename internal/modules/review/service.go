package review

import (
	"context"

	"travelbook/internal/domain"
)

// Service is what the presentation layer talks to: the store plus the
// curated seed reviews.
type Service struct {
	store *Store
	seeds *SeedCatalog
}

func NewService(store *Store, seeds *SeedCatalog) *Service {
	return &Service{store: store, seeds: seeds}
}

func (s *Service) Create(ctx context.Context, nr NewReview) (domain.Review, error) {
	return s.store.AddReview(ctx, nr)
}

// ListForService returns seed and stored reviews for one service, deduplicated
// and newest first.
func (s *Service) ListForService(serviceID string, serviceType domain.ServiceType) []domain.Review {
	return Merge(s.seeds.For(serviceID, serviceType), s.store.GetReviewsByService(serviceID, serviceType))
}
