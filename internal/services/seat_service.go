package services

import (
	"context"
	"fmt"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
)

// SeatService exposes the three seat views of a route. The demo answers are
// generated positionally from the route's seat counts.
type SeatService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

func (s *SeatService) RouteSeats(ctx context.Context, routeID int64) ([]models.Seat, error) {
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "seats", "route_seats", s.Demo,
		func() ([]models.Seat, error) {
			var out []models.Seat
			err := s.Remote.Get(ctx, fmt.Sprintf("/seats/seats/route_seats/?route_id=%d", routeID), &out)
			return out, err
		},
		func() ([]models.Seat, error) {
			return s.Demo.RouteSeats(routeID), nil
		},
	)
}

func (s *SeatService) Available(ctx context.Context, routeID int64) ([]models.Seat, error) {
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "seats", "available", s.Demo,
		func() ([]models.Seat, error) {
			var out []models.Seat
			err := s.Remote.Get(ctx, fmt.Sprintf("/seats/seats/available/?route_id=%d", routeID), &out)
			return out, err
		},
		func() ([]models.Seat, error) {
			return s.Demo.AvailableSeats(routeID), nil
		},
	)
}

func (s *SeatService) Booked(ctx context.Context, routeID int64) ([]models.Seat, error) {
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "seats", "booked", s.Demo,
		func() ([]models.Seat, error) {
			var out []models.Seat
			err := s.Remote.Get(ctx, fmt.Sprintf("/seats/seats/booked/?route_id=%d", routeID), &out)
			return out, err
		},
		func() ([]models.Seat, error) {
			return s.Demo.BookedSeats(routeID), nil
		},
	)
}
