package models

// City is static reference data; the set never changes at runtime.
type City struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Route describes one scheduled bus trip. Price stays a decimal-as-string to
// match the upstream wire format.
type Route struct {
	ID              int64    `json:"id"`
	BusName         string   `json:"bus_name"`
	OperatorName    string   `json:"operator_name"`
	SourceName      string   `json:"source_name"`
	DestinationName string   `json:"destination_name"`
	DepartureTime   string   `json:"departure_time"`
	ArrivalTime     string   `json:"arrival_time"`
	Date            string   `json:"date"`
	Price           string   `json:"price"`
	AvailableSeats  int      `json:"available_seats"`
	BusType         string   `json:"bus_type"`
	Amenities       []string `json:"amenities"`
	Rating          float64  `json:"rating"`
	TotalSeats      int      `json:"total_seats"`
}

// StopPoint is an intermediate halt on a route.
type StopPoint struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
	Type string `json:"type"` // departure, stop, arrival
}

// Seat is derived positionally from a route's seat counts; it is never
// persisted on its own.
type Seat struct {
	ID          int     `json:"id"`
	SeatNumber  string  `json:"seat_number"`
	IsAvailable bool    `json:"is_available"`
	Price       float64 `json:"price"`
}
