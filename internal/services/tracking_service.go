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

// TrackingService serves GPS data. Per-booking location falls back to the
// simulated snapshots; the fleet-wide views are upstream-only.
type TrackingService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

func (s *TrackingService) BusLocation(ctx context.Context, bookingID string) (models.BusLocation, error) {
	if strings.TrimSpace(bookingID) == "" {
		return models.BusLocation{}, domain.ValidationError{Field: "booking_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "tracking", "bus_location", s.Demo,
		func() (models.BusLocation, error) {
			var out models.BusLocation
			err := s.Remote.Get(ctx, fmt.Sprintf("/tracking/bus/%s/", bookingID), &out)
			return out, err
		},
		func() (models.BusLocation, error) {
			return s.Demo.BusLocation(bookingID)
		},
	)
}

// ActiveLocations has no demo equivalent; upstream errors propagate.
func (s *TrackingService) ActiveLocations(ctx context.Context) ([]models.BusLocation, error) {
	var out []models.BusLocation
	err := s.Remote.Get(ctx, "/gps_tracking/locations/active_locations/", &out)
	return out, err
}

// BusHistory has no demo equivalent; upstream errors propagate.
func (s *TrackingService) BusHistory(ctx context.Context, busID int64) ([]models.BusLocation, error) {
	if busID <= 0 {
		return nil, domain.ValidationError{Field: "bus_id", Msg: "required"}
	}
	var out []models.BusLocation
	err := s.Remote.Get(ctx, fmt.Sprintf("/gps_tracking/locations/bus_history/?bus_id=%d", busID), &out)
	return out, err
}
