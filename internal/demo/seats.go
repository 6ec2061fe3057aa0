package demo

import (
	"fmt"

	"guzo/internal/domain/models"
	"guzo/internal/utils"
)

// SeatNumber maps a positional seat id to its label: rows of four, lettered
// from A. Deterministic bijection of 1..total_seats for a fixed layout
// (1..4 -> A1..A4, 5..8 -> B1..B4, ...).
func SeatNumber(id int) string {
	row := (id-1)/4 + 1
	col := (id-1)%4 + 1
	return fmt.Sprintf("%c%d", 'A'+row-1, col)
}

// RouteSeats generates the full seat map for a route. Availability is purely
// threshold-based (id <= available_seats); there is no per-seat booking
// ledger in the demo layer. Unknown routes yield an empty list.
func (s *Store) RouteSeats(routeID int64) []models.Seat {
	s.sleep()
	route, ok := s.routeByID(routeID)
	if !ok {
		return []models.Seat{}
	}

	price, _ := utils.ParsePrice(route.Price)
	seats := make([]models.Seat, 0, route.TotalSeats)
	for i := 1; i <= route.TotalSeats; i++ {
		seats = append(seats, models.Seat{
			ID:          i,
			SeatNumber:  SeatNumber(i),
			IsAvailable: i <= route.AvailableSeats,
			Price:       price,
		})
	}
	return seats
}

// AvailableSeats lists only the open positions (ids 1..available_seats).
func (s *Store) AvailableSeats(routeID int64) []models.Seat {
	s.sleep()
	route, ok := s.routeByID(routeID)
	if !ok {
		return []models.Seat{}
	}

	price, _ := utils.ParsePrice(route.Price)
	seats := make([]models.Seat, 0, route.AvailableSeats)
	for i := 1; i <= route.AvailableSeats; i++ {
		seats = append(seats, models.Seat{
			ID:          i,
			SeatNumber:  SeatNumber(i),
			IsAvailable: true,
			Price:       price,
		})
	}
	return seats
}

// BookedSeats lists the taken positions (ids available_seats+1..total).
func (s *Store) BookedSeats(routeID int64) []models.Seat {
	s.sleep()
	route, ok := s.routeByID(routeID)
	if !ok {
		return []models.Seat{}
	}

	price, _ := utils.ParsePrice(route.Price)
	seats := make([]models.Seat, 0, route.TotalSeats-route.AvailableSeats)
	for i := route.AvailableSeats + 1; i <= route.TotalSeats; i++ {
		seats = append(seats, models.Seat{
			ID:         i,
			SeatNumber: SeatNumber(i),
			Price:      price,
		})
	}
	return seats
}
