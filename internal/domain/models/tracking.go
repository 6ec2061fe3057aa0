package models

import "time"

// BusLocation is a tracking snapshot keyed by booking id.
type BusLocation struct {
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Speed       float64   `json:"speed"`
	LastUpdated time.Time `json:"lastUpdated"`
	BusNumber   string    `json:"bus_number"`
	Operator    string    `json:"operator"`
	Route       string    `json:"route"`
	ETA         string    `json:"eta"`
	Progress    int       `json:"progress"`
}

// Feedback is passed through to the upstream; there is no demo equivalent.
type Feedback struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
