package realtime

import (
	"travelbook/internal/modules/booking"
	"travelbook/internal/modules/review"
)

// AttachBookings forwards booking changes to the booking owner's
// connections. The returned func detaches.
func (h *Hub) AttachBookings(s *booking.Store) func() {
	return s.OnChange(func(c booking.Change) {
		h.SendToUser(c.Booking.UserID, Event{Type: string(c.Kind), Data: c.Booking})
	})
}

// AttachReviews broadcasts new reviews to every connection.
func (h *Hub) AttachReviews(s *review.Store) func() {
	return s.OnChange(func(c review.Change) {
		h.Broadcast(Event{Type: c.Kind, Data: c.Review})
	})
}
