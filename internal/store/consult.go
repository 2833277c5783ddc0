package store

import "github.com/google/uuid"

// Bookings returns the user's consultation bookings, oldest first.
func (s *Store) Bookings(userID string) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

// CreateBooking records a consultation appointment.
func (s *Store) CreateBooking(userID, date, timeSlot, kind, notes string) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &Booking{
		ID:     "booking-" + uuid.NewString(),
		UserID: userID,
		Date:   date,
		Time:   timeSlot,
		Type:   kind,
		Notes:  notes,
	}
	s.bookings = append(s.bookings, b)
	return *b
}

// UpcomingConsult returns the user's next booking as "date at time", or ""
// when none is scheduled. Bookings are kept in creation order; the latest
// created one is treated as the upcoming appointment.
func (s *Store) UpcomingConsult(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.bookings) - 1; i >= 0; i-- {
		if b := s.bookings[i]; b.UserID == userID {
			return b.Date + " at " + b.Time
		}
	}
	return ""
}
