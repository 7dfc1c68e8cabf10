package booking

import (
	"context"
	"log/slog"
	"slices"

	"github.com/juju/clock"

	"travelbook/internal/domain"
	"travelbook/internal/persist"
	"travelbook/internal/pkg/ids"
	"travelbook/internal/pkg/isotime"
	"travelbook/internal/pkg/logger"
	"travelbook/internal/pkg/notify"
	"travelbook/internal/storage"
)

type ChangeKind string

const (
	ChangeAdded     ChangeKind = "booking.added"
	ChangeCancelled ChangeKind = "booking.cancelled"
	ChangeStatus    ChangeKind = "booking.status_updated"
)

// Change describes one committed mutation. Booking is the record as stored
// after the mutation.
type Change struct {
	Kind    ChangeKind     `json:"kind"`
	Booking domain.Booking `json:"booking"`
}

// Store owns the booking collection. Bookings are never removed; cancelling
// only flips the status.
type Store struct {
	bookings  *persist.Collection[domain.Booking]
	ids       ids.Generator
	clock     clock.Clock
	log       *slog.Logger
	listeners notify.Listeners[Change]
}

type Option func(*Store)

func WithIDGenerator(g ids.Generator) Option { return func(s *Store) { s.ids = g } }
func WithClock(c clock.Clock) Option         { return func(s *Store) { s.clock = c } }
func WithLogger(l *slog.Logger) Option       { return func(s *Store) { s.log = l } }

// NewStore loads the persisted collection once. Defaults: UUID ids, wall clock,
// discarded logs.
func NewStore(ctx context.Context, p Persistence, opts ...Option) (*Store, error) {
	s := &Store{
		ids:   ids.UUID{},
		clock: clock.WallClock,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("store", "bookings")

	c, err := persist.Open[domain.Booking](ctx, p, storage.BookingsKey, "bookings", s.log)
	if err != nil {
		return nil, err
	}
	s.bookings = c
	return s, nil
}

// AddBooking stamps a fresh id and creation time, forces status confirmed and
// persists. Field values are taken as given.
func (s *Store) AddBooking(ctx context.Context, nb NewBooking) (domain.Booking, error) {
	b := domain.Booking{
		ID:          s.ids.NewID(),
		UserID:      nb.UserID,
		ServiceID:   nb.ServiceID,
		ServiceType: nb.ServiceType,
		ServiceName: nb.ServiceName,
		Date:        nb.Date,
		Guests:      nb.Guests,
		TotalAmount: nb.TotalAmount,
		Currency:    nb.Currency,
		Status:      domain.BookingConfirmed,
		CreatedAt:   isotime.Format(s.clock.Now()),
	}

	published, _, err := s.bookings.Update(ctx, func(items []domain.Booking) ([]domain.Booking, bool) {
		return append(items, b), true
	})
	if err != nil {
		return domain.Booking{}, err
	}
	// Return the record as stored; encoding may have normalized strings.
	b = published[len(published)-1]

	s.log.Info("booking added", "booking_id", b.ID, "user_id", b.UserID, "service_id", b.ServiceID)
	s.listeners.Emit(Change{Kind: ChangeAdded, Booking: b})
	return b, nil
}

// GetUserBookings returns the user's bookings, newest createdAt first.
// Equal timestamps keep insertion order.
func (s *Store) GetUserBookings(userID string) []domain.Booking {
	out := []domain.Booking{}
	for _, b := range s.bookings.View() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Booking) int {
		return isotime.ParseOrLowest(b.CreatedAt).Compare(isotime.ParseOrLowest(a.CreatedAt))
	})
	return out
}

func (s *Store) GetBooking(id string) (domain.Booking, bool) {
	for _, b := range s.bookings.View() {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Bookings returns every booking in insertion order.
func (s *Store) Bookings() []domain.Booking {
	return s.bookings.Items()
}

// CancelBooking is UpdateBookingStatus(id, cancelled). Unknown ids are ignored.
func (s *Store) CancelBooking(ctx context.Context, bookingID string) error {
	return s.setStatus(ctx, bookingID, domain.BookingCancelled, ChangeCancelled)
}

// UpdateBookingStatus overwrites the status of bookingID. Any status may
// follow any other; unknown ids are ignored.
func (s *Store) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	return s.setStatus(ctx, bookingID, status, ChangeStatus)
}

func (s *Store) setStatus(ctx context.Context, bookingID string, status domain.BookingStatus, kind ChangeKind) error {
	idx := -1
	published, changed, err := s.bookings.Update(ctx, func(items []domain.Booking) ([]domain.Booking, bool) {
		idx = slices.IndexFunc(items, func(b domain.Booking) bool { return b.ID == bookingID })
		// Already in the target status: nothing to write.
		if idx < 0 || items[idx].Status == status {
			return items, false
		}
		items[idx].Status = status
		return items, true
	})
	if err != nil {
		return err
	}
	if !changed {
		s.log.Debug("booking status unchanged", "booking_id", bookingID, "status", status)
		return nil
	}

	s.log.Info("booking status updated", "booking_id", bookingID, "status", status)
	s.listeners.Emit(Change{Kind: kind, Booking: published[idx]})
	return nil
}

// OnChange registers fn for every committed mutation and returns its
// unsubscribe function. fn runs synchronously on the mutating goroutine.
func (s *Store) OnChange(fn func(Change)) func() {
	return s.listeners.Add(fn)
}

// Close is a no-op: state is flushed on every mutation.
func (s *Store) Close() error {
	return nil
}
