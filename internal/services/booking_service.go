package services

import (
	"context"
	"fmt"
	"strings"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
)

// BookingService creates, lists and cancels bookings. Bookings created in
// fallback mode are persisted to the session list and reappear on later
// reads with identical fields.
type BookingService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

func (s *BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	if in.RouteID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	if len(in.Seats) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "at least one seat"}
	}
	for _, seat := range in.Seats {
		if strings.TrimSpace(seat) == "" {
			return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "empty seat number"}
		}
	}

	return withFallback(s.RequestID, "bookings", "create", s.Demo,
		func() (models.Booking, error) {
			var out models.Booking
			err := s.Remote.Post(ctx, "/booking/bookings/", in, &out)
			return out, err
		},
		func() (models.Booking, error) {
			return s.Demo.CreateBooking(in)
		},
	)
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return withFallback(s.RequestID, "bookings", "list", s.Demo,
		func() ([]models.Booking, error) {
			var out []models.Booking
			err := s.Remote.Get(ctx, "/booking/bookings/", &out)
			return out, err
		},
		func() ([]models.Booking, error) {
			return s.Demo.Bookings(), nil
		},
	)
}

func (s *BookingService) Details(ctx context.Context, bookingID string) (models.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return models.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "bookings", "details", s.Demo,
		func() (models.Booking, error) {
			var out models.Booking
			err := s.Remote.Get(ctx, fmt.Sprintf("/booking/bookings/%s/", bookingID), &out)
			return out, err
		},
		func() (models.Booking, error) {
			return s.Demo.BookingDetails(bookingID)
		},
	)
}

// Cancel flips a booking to cancelled. In fallback mode an unknown id is a
// successful no-op, matching the always-total contract.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (models.CancelResult, error) {
	if strings.TrimSpace(bookingID) == "" {
		return models.CancelResult{}, domain.ValidationError{Field: "booking_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "bookings", "cancel", s.Demo,
		func() (models.CancelResult, error) {
			var out models.CancelResult
			err := s.Remote.Post(ctx, fmt.Sprintf("/booking/bookings/%s/cancel/", bookingID), nil, &out)
			return out, err
		},
		func() (models.CancelResult, error) {
			return s.Demo.CancelBooking(bookingID), nil
		},
	)
}
