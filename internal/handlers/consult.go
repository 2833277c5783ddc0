package handlers

import (
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) bookings(w http.ResponseWriter, r *http.Request) error {
	u, err := h.currentUser(r)
	if err != nil {
		return err
	}

	bookings := h.store.Bookings(u.ID)
	out := api.BookingsResponse{Bookings: make([]api.Booking, 0, len(bookings))}
	for _, b := range bookings {
		out.Bookings = append(out.Bookings, api.Booking{
			ID:    b.ID,
			Date:  b.Date,
			Time:  b.Time,
			Type:  b.Type,
			Notes: b.Notes,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) bookConsult(w http.ResponseWriter, r *http.Request) error {
	u, err := h.currentUser(r)
	if err != nil {
		return err
	}
	if u.Plan != store.PlanPremium {
		return httpx.ErrForbidden("Only Premium users can book a consultation.")
	}

	var req api.BookingRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.Date == "" || req.Time == "" {
		return httpx.ErrBadRequest("date and time are required")
	}

	b := h.store.CreateBooking(u.ID, req.Date, req.Time, req.Type, req.Notes)
	httpx.JSON(w, http.StatusCreated, api.Booking{
		ID:    b.ID,
		Date:  b.Date,
		Time:  b.Time,
		Type:  b.Type,
		Notes: b.Notes,
	})
	return nil
}
