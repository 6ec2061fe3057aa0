package services

import (
	"context"
	"fmt"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
	"guzo/internal/utils"
)

// RouteService covers route search, listing, details and stop points. Every
// operation falls back to the demo layer on upstream failure.
type RouteService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

type routeSearchPayload struct {
	SourceID      int64  `json:"source_id"`
	DestinationID int64  `json:"destination_id"`
	Date          string `json:"date"`
}

// Search filters routes by source/destination city id and travel date.
// Invalid input rejects immediately; there is no synthetic answer for it.
func (s *RouteService) Search(ctx context.Context, sourceID, destinationID int64, date string) ([]models.Route, error) {
	if sourceID <= 0 {
		return nil, domain.ValidationError{Field: "source_id", Msg: "required"}
	}
	if destinationID <= 0 {
		return nil, domain.ValidationError{Field: "destination_id", Msg: "required"}
	}
	if !utils.ValidDate(date) {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}

	return withFallback(s.RequestID, "routes", "search", s.Demo,
		func() ([]models.Route, error) {
			var out []models.Route
			err := s.Remote.Post(ctx, "/bus/routes/search/", routeSearchPayload{
				SourceID:      sourceID,
				DestinationID: destinationID,
				Date:          date,
			}, &out)
			return out, err
		},
		func() ([]models.Route, error) {
			return s.Demo.SearchRoutes(sourceID, destinationID, date), nil
		},
	)
}

func (s *RouteService) All(ctx context.Context) ([]models.Route, error) {
	return withFallback(s.RequestID, "routes", "list", s.Demo,
		func() ([]models.Route, error) {
			var out []models.Route
			err := s.Remote.Get(ctx, "/bus/routes/", &out)
			return out, err
		},
		func() ([]models.Route, error) {
			return s.Demo.AllRoutes(), nil
		},
	)
}

func (s *RouteService) Details(ctx context.Context, routeID int64) (models.Route, error) {
	if routeID <= 0 {
		return models.Route{}, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "routes", "details", s.Demo,
		func() (models.Route, error) {
			var out models.Route
			err := s.Remote.Get(ctx, fmt.Sprintf("/bus/routes/%d/", routeID), &out)
			return out, err
		},
		func() (models.Route, error) {
			return s.Demo.RouteDetails(routeID)
		},
	)
}

func (s *RouteService) StopPoints(ctx context.Context, routeID int64) ([]models.StopPoint, error) {
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "routes", "stops", s.Demo,
		func() ([]models.StopPoint, error) {
			var out []models.StopPoint
			err := s.Remote.Get(ctx, fmt.Sprintf("/bus/routes/%d/stops/", routeID), &out)
			return out, err
		},
		func() ([]models.StopPoint, error) {
			return s.Demo.StopPoints(routeID), nil
		},
	)
}
