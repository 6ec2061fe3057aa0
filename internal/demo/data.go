package demo

import (
	"time"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
)

// Static seed data for the fallback layer. These values are templates: they
// are copied into the store at construction time and into the session on
// first seeding, never mutated in place.

func seedCities() []models.City {
	return []models.City{
		{ID: 1, Name: "Addis Ababa", Region: "Addis Ababa"},
		{ID: 2, Name: "Bahir Dar", Region: "Amhara"},
		{ID: 3, Name: "Gondar", Region: "Amhara"},
		{ID: 4, Name: "Mekelle", Region: "Tigray"},
		{ID: 5, Name: "Hawassa", Region: "Sidama"},
		{ID: 6, Name: "Dire Dawa", Region: "Dire Dawa"},
		{ID: 7, Name: "Jimma", Region: "Oromia"},
		{ID: 8, Name: "Dessie", Region: "Amhara"},
		{ID: 9, Name: "Jijiga", Region: "Somali"},
		{ID: 10, Name: "Shashamane", Region: "Oromia"},
		{ID: 11, Name: "Bishoftu", Region: "Oromia"},
		{ID: 12, Name: "Arba Minch", Region: "SNNPR"},
		{ID: 13, Name: "Hosaena", Region: "SNNPR"},
		{ID: 14, Name: "Harar", Region: "Harari"},
		{ID: 15, Name: "Dilla", Region: "SNNPR"},
	}
}

func seedRoutes() []models.Route {
	return []models.Route{
		{
			ID: 1, BusName: "Sky Bus Premium", OperatorName: "Sky Bus",
			SourceName: "Addis Ababa", DestinationName: "Bahir Dar",
			DepartureTime: "06:00", ArrivalTime: "12:30", Date: "2024-01-15",
			Price: "850", AvailableSeats: 12, BusType: "Premium",
			Amenities: []string{"WiFi", "AC", "USB Charging", "Refreshments"},
			Rating:    4.8, TotalSeats: 45,
		},
		{
			ID: 2, BusName: "Selam Bus Express", OperatorName: "Selam Bus",
			SourceName: "Addis Ababa", DestinationName: "Bahir Dar",
			DepartureTime: "07:30", ArrivalTime: "14:00", Date: "2024-01-15",
			Price: "750", AvailableSeats: 8, BusType: "Standard",
			Amenities: []string{"AC", "USB Charging"},
			Rating:    4.5, TotalSeats: 50,
		},
		{
			ID: 3, BusName: "Ethio Bus Deluxe", OperatorName: "Ethio Bus",
			SourceName: "Addis Ababa", DestinationName: "Gondar",
			DepartureTime: "08:00", ArrivalTime: "16:30", Date: "2024-01-15",
			Price: "950", AvailableSeats: 15, BusType: "Deluxe",
			Amenities: []string{"WiFi", "AC", "USB Charging", "Refreshments", "Reclining Seats"},
			Rating:    4.9, TotalSeats: 40,
		},
		{
			ID: 4, BusName: "Abay Bus Standard", OperatorName: "Abay Bus",
			SourceName: "Addis Ababa", DestinationName: "Mekelle",
			DepartureTime: "06:30", ArrivalTime: "18:00", Date: "2024-01-15",
			Price: "1200", AvailableSeats: 6, BusType: "Standard",
			Amenities: []string{"AC"},
			Rating:    4.3, TotalSeats: 55,
		},
		{
			ID: 5, BusName: "Tana Bus Premium", OperatorName: "Tana Bus",
			SourceName: "Addis Ababa", DestinationName: "Hawassa",
			DepartureTime: "09:00", ArrivalTime: "14:30", Date: "2024-01-15",
			Price: "650", AvailableSeats: 20, BusType: "Premium",
			Amenities: []string{"WiFi", "AC", "USB Charging", "Refreshments"},
			Rating:    4.6, TotalSeats: 45,
		},
		{
			ID: 6, BusName: "Rift Valley Express", OperatorName: "Rift Valley Bus",
			SourceName: "Addis Ababa", DestinationName: "Jimma",
			DepartureTime: "07:00", ArrivalTime: "12:00", Date: "2024-01-15",
			Price: "550", AvailableSeats: 18, BusType: "Standard",
			Amenities: []string{"AC", "USB Charging"},
			Rating:    4.4, TotalSeats: 50,
		},
		{
			ID: 7, BusName: "Blue Nile Deluxe", OperatorName: "Blue Nile Bus",
			SourceName: "Bahir Dar", DestinationName: "Gondar",
			DepartureTime: "08:30", ArrivalTime: "10:30", Date: "2024-01-15",
			Price: "350", AvailableSeats: 25, BusType: "Deluxe",
			Amenities: []string{"WiFi", "AC", "USB Charging", "Refreshments"},
			Rating:    4.7, TotalSeats: 45,
		},
		{
			ID: 8, BusName: "Axum Express", OperatorName: "Axum Bus",
			SourceName: "Mekelle", DestinationName: "Addis Ababa",
			DepartureTime: "06:00", ArrivalTime: "17:30", Date: "2024-01-15",
			Price: "1100", AvailableSeats: 10, BusType: "Standard",
			Amenities: []string{"AC", "USB Charging"},
			Rating:    4.2, TotalSeats: 55,
		},
	}
}

func seedUser() models.User {
	return models.User{
		ID:          1,
		FirstName:   "Abebe",
		LastName:    "Kebede",
		PhoneNumber: "+251911234567",
		Email:       "abebe.kebede@email.com",
		Address:     "Bole, Addis Ababa, Ethiopia",
		DateOfBirth: "1990-05-15",
		CreatedAt:   "2023-01-15T10:30:00Z",
	}
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{
			ID: "BK001", RouteID: 1, From: "Addis Ababa", To: "Bahir Dar",
			Date: "2024-01-15", Seats: []string{"A1", "A2"},
			Passengers: []models.Passenger{
				{ID: "P001", Name: "Abebe Kebede", Phone: "+251911234567", SeatNumber: "A1", Age: 34, Gender: "male"},
				{ID: "P002", Name: "Tigist Haile", Phone: "+251922345678", SeatNumber: "A2", Age: 28, Gender: "female"},
			},
			TotalPrice: 1700, Status: domain.BookingConfirmed,
			BookingDate: "2024-01-10T14:30:00Z",
			BusName:     "Sky Bus Premium", OperatorName: "Sky Bus",
			DepartureTime: "06:00", ArrivalTime: "12:30",
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID: "BK002", RouteID: 3, From: "Addis Ababa", To: "Gondar",
			Date: "2024-01-20", Seats: []string{"B3"},
			Passengers: []models.Passenger{
				{ID: "P003", Name: "Abebe Kebede", Phone: "+251911234567", SeatNumber: "B3", Age: 34, Gender: "male"},
			},
			TotalPrice: 950, Status: domain.BookingConfirmed,
			BookingDate: "2024-01-12T09:15:00Z",
			BusName:     "Ethio Bus Deluxe", OperatorName: "Ethio Bus",
			DepartureTime: "08:00", ArrivalTime: "16:30",
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID: "BK003", RouteID: 5, From: "Addis Ababa", To: "Hawassa",
			Date: "2024-01-08", Seats: []string{"C5", "C6", "C7"},
			Passengers: []models.Passenger{
				{ID: "P004", Name: "Abebe Kebede", Phone: "+251911234567", SeatNumber: "C5", Age: 34, Gender: "male"},
				{ID: "P005", Name: "Tigist Haile", Phone: "+251922345678", SeatNumber: "C6", Age: 28, Gender: "female"},
				{ID: "P006", Name: "Yohannes Tadesse", Phone: "+251933456789", SeatNumber: "C7", Age: 45, Gender: "male"},
			},
			TotalPrice: 1950, Status: domain.BookingCompleted,
			BookingDate: "2024-01-05T11:20:00Z",
			BusName:     "Tana Bus Premium", OperatorName: "Tana Bus",
			DepartureTime: "09:00", ArrivalTime: "14:30",
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID: "BK004", RouteID: 2, From: "Addis Ababa", To: "Bahir Dar",
			Date: "2024-01-12", Seats: []string{"D2"},
			Passengers: []models.Passenger{
				{ID: "P007", Name: "Abebe Kebede", Phone: "+251911234567", SeatNumber: "D2", Age: 34, Gender: "male"},
			},
			TotalPrice: 750, Status: domain.BookingCancelled,
			BookingDate: "2024-01-08T16:45:00Z",
			BusName:     "Selam Bus Express", OperatorName: "Selam Bus",
			DepartureTime: "07:30", ArrivalTime: "14:00",
			PaymentStatus: domain.PaymentPaid,
		},
	}
}

func seedLocations() map[string]models.BusLocation {
	now := time.Now()
	return map[string]models.BusLocation{
		"BK001": {
			Lat: 9.145, Lng: 40.4897, Speed: 65, LastUpdated: now,
			BusNumber: "ET-1234", Operator: "Sky Bus",
			Route: "Addis Ababa → Bahir Dar", ETA: "12:30", Progress: 65,
		},
		"BK002": {
			Lat: 9.0192, Lng: 38.7525, Speed: 0, LastUpdated: now,
			BusNumber: "ET-5678", Operator: "Ethio Bus",
			Route: "Addis Ababa → Gondar", ETA: "16:30", Progress: 0,
		},
	}
}

func seedStopPoints() []models.StopPoint {
	return []models.StopPoint{
		{ID: 1, Name: "Addis Ababa", Time: "06:00", Type: "departure"},
		{ID: 2, Name: "Debre Berhan", Time: "08:30", Type: "stop"},
		{ID: 3, Name: "Bahir Dar", Time: "12:30", Type: "arrival"},
	}
}
