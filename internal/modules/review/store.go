package review

import (
	"context"
	"log/slog"

	"github.com/juju/clock"

	"travelbook/internal/domain"
	"travelbook/internal/persist"
	"travelbook/internal/pkg/ids"
	"travelbook/internal/pkg/isotime"
	"travelbook/internal/pkg/logger"
	"travelbook/internal/pkg/notify"
	"travelbook/internal/storage"
)

const ChangeAdded = "review.added"

type Change struct {
	Kind   string        `json:"kind"`
	Review domain.Review `json:"review"`
}

// Store owns the review collection. Reviews are append only.
type Store struct {
	reviews   *persist.Collection[domain.Review]
	ids       ids.Generator
	clock     clock.Clock
	log       *slog.Logger
	listeners notify.Listeners[Change]
}

type Option func(*Store)

func WithIDGenerator(g ids.Generator) Option { return func(s *Store) { s.ids = g } }
func WithClock(c clock.Clock) Option         { return func(s *Store) { s.clock = c } }
func WithLogger(l *slog.Logger) Option       { return func(s *Store) { s.log = l } }

func NewStore(ctx context.Context, p Persistence, opts ...Option) (*Store, error) {
	s := &Store{
		ids:   ids.UUID{},
		clock: clock.WallClock,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("store", "reviews")

	c, err := persist.Open[domain.Review](ctx, p, storage.ReviewsKey, "reviews", s.log)
	if err != nil {
		return nil, err
	}
	s.reviews = c
	return s, nil
}

// AddReview stamps id and date and persists. Rating and comment are stored
// as given.
func (s *Store) AddReview(ctx context.Context, nr NewReview) (domain.Review, error) {
	rv := domain.Review{
		ID:          s.ids.NewID(),
		UserID:      nr.UserID,
		UserName:    nr.UserName,
		Rating:      nr.Rating,
		Comment:     nr.Comment,
		ServiceID:   nr.ServiceID,
		ServiceType: nr.ServiceType,
		IsVerified:  nr.IsVerified,
		Date:        isotime.Format(s.clock.Now()),
	}

	published, _, err := s.reviews.Update(ctx, func(items []domain.Review) ([]domain.Review, bool) {
		return append(items, rv), true
	})
	if err != nil {
		return domain.Review{}, err
	}
	rv = published[len(published)-1]

	s.log.Info("review added", "review_id", rv.ID, "service_id", rv.ServiceID, "service_type", rv.ServiceType)
	s.listeners.Emit(Change{Kind: ChangeAdded, Review: rv})
	return rv, nil
}

// GetReviewsByService returns reviews matching both serviceID and
// serviceType, in insertion order.
func (s *Store) GetReviewsByService(serviceID string, serviceType domain.ServiceType) []domain.Review {
	out := []domain.Review{}
	for _, rv := range s.reviews.View() {
		if rv.ServiceID == serviceID && rv.ServiceType == serviceType {
			out = append(out, rv)
		}
	}
	return out
}

func (s *Store) Reviews() []domain.Review {
	return s.reviews.Items()
}

func (s *Store) OnChange(fn func(Change)) func() {
	return s.listeners.Add(fn)
}

func (s *Store) Close() error {
	return nil
}
