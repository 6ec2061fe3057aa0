package services

import (
	"context"

	"guzo/internal/demo"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
)

// CityService serves the static city reference set.
type CityService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

func (s *CityService) Cities(ctx context.Context) ([]models.City, error) {
	return withFallback(s.RequestID, "cities", "list", s.Demo,
		func() ([]models.City, error) {
			var out []models.City
			err := s.Remote.Get(ctx, "/cities/", &out)
			return out, err
		},
		func() ([]models.City, error) {
			return s.Demo.Cities(), nil
		},
	)
}
