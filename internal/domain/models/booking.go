package models

import "guzo/internal/domain"

// Passenger is owned by its booking; no independent lifecycle.
type Passenger struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	SeatNumber string `json:"seat_number"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"` // male / female
}

// Booking ids look like "BK001"; the sequence is per session.
type Booking struct {
	ID            string               `json:"id"`
	RouteID       int64                `json:"route_id"`
	From          string               `json:"from"`
	To            string               `json:"to"`
	Date          string               `json:"date"`
	Seats         []string             `json:"seats"`
	Passengers    []Passenger          `json:"passengers"`
	TotalPrice    float64              `json:"totalPrice"`
	Status        domain.BookingStatus `json:"status"`
	BookingDate   string               `json:"bookingDate"`
	BusName       string               `json:"bus_name"`
	OperatorName  string               `json:"operator_name"`
	DepartureTime string               `json:"departure_time"`
	ArrivalTime   string               `json:"arrival_time"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// BookingInput is what callers supply to create a booking; id, status and
// timestamps are assigned by the service.
type BookingInput struct {
	RouteID       int64       `json:"route_id"`
	From          string      `json:"from"`
	To            string      `json:"to"`
	Date          string      `json:"date"`
	Seats         []string    `json:"seats"`
	Passengers    []Passenger `json:"passengers"`
	TotalPrice    float64     `json:"totalPrice"`
	BusName       string      `json:"bus_name"`
	OperatorName  string      `json:"operator_name"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
}

// CancelResult mirrors the upstream cancel response shape.
type CancelResult struct {
	Success bool `json:"success"`
}
