package demo

import (
	"fmt"
	"sync"
	"time"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/session"
	"guzo/internal/utils"
)

// Store is the process-scoped fallback data layer. It owns the static seed
// collections and answers every facade operation when the upstream is
// unreachable, reading and writing durable state through the session.
//
// Constructed once at startup; Reset exists only for tests.
type Store struct {
	mu      sync.Mutex
	session *session.Session
	latency time.Duration

	cities    []models.City
	routes    []models.Route
	user      models.User
	bookings  []models.Booking
	locations map[string]models.BusLocation
	stops     []models.StopPoint
}

func NewStore(sess *session.Session, latency time.Duration) *Store {
	s := &Store{session: sess, latency: latency}
	s.load()
	return s
}

func (s *Store) load() {
	s.cities = seedCities()
	s.routes = seedRoutes()
	s.user = seedUser()
	s.bookings = seedBookings()
	s.locations = seedLocations()
	s.stops = seedStopPoints()
}

// Reset restores the seed state. Test hook only.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

// EnsureSeeded copies the canonical demo bookings into the session once.
// Idempotent: an already-present booking list is never overwritten.
func (s *Store) EnsureSeeded() {
	_ = s.session.SeedBookings(seedBookings())
}

// sleep applies the configured artificial latency. It exists purely for
// UI-perceived realism and has no correctness role.
func (s *Store) sleep() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// Cities returns the static city list.
func (s *Store) Cities() []models.City {
	s.sleep()
	out := make([]models.City, len(s.cities))
	copy(out, s.cities)
	return out
}

// SearchRoutes filters the static routes by city names (resolved from the
// ids) and exact date match. Unknown city ids yield an empty list.
func (s *Store) SearchRoutes(sourceID, destinationID int64, date string) []models.Route {
	s.sleep()

	source, okSrc := s.cityByID(sourceID)
	dest, okDst := s.cityByID(destinationID)
	if !okSrc || !okDst {
		return []models.Route{}
	}

	out := []models.Route{}
	for _, r := range s.routes {
		if r.SourceName == source.Name && r.DestinationName == dest.Name && r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AllRoutes() []models.Route {
	s.sleep()
	out := make([]models.Route, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *Store) RouteDetails(routeID int64) (models.Route, error) {
	s.sleep()
	r, ok := s.routeByID(routeID)
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	return r, nil
}

// StopPoints returns the static stop list regardless of route; the demo
// layer carries a single representative itinerary.
func (s *Store) StopPoints(routeID int64) []models.StopPoint {
	s.sleep()
	out := make([]models.StopPoint, len(s.stops))
	copy(out, s.stops)
	return out
}

// Bookings returns the session's persisted list when present, otherwise the
// canonical demo bookings.
func (s *Store) Bookings() []models.Booking {
	s.sleep()
	if list, ok := s.session.Bookings(); ok {
		return list
	}
	return seedBookings()
}

func (s *Store) BookingDetails(bookingID string) (models.Booking, error) {
	s.sleep()
	if list, ok := s.session.Bookings(); ok {
		for _, b := range list {
			if b.ID == bookingID {
				return b, nil
			}
		}
	}
	for _, b := range seedBookings() {
		if b.ID == bookingID {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// CreateBooking allocates the next sequential id from the session list
// length, stamps it confirmed/paid and persists the updated list.
func (s *Store) CreateBooking(in models.BookingInput) (models.Booking, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	list, _ := s.session.Bookings()

	booking := models.Booking{
		ID:            fmt.Sprintf("BK%03d", len(list)+1),
		RouteID:       in.RouteID,
		From:          in.From,
		To:            in.To,
		Date:          in.Date,
		Seats:         in.Seats,
		Passengers:    in.Passengers,
		TotalPrice:    in.TotalPrice,
		Status:        domain.BookingConfirmed,
		BookingDate:   utils.NowISO(),
		BusName:       in.BusName,
		OperatorName:  in.OperatorName,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		PaymentStatus: domain.PaymentPaid,
	}

	list = append(list, booking)
	if err := s.session.SaveBookings(list); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// CancelBooking flips the booking's status inside the persisted session
// list. An unknown id is a successful no-op.
func (s *Store) CancelBooking(bookingID string) models.CancelResult {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.session.Bookings()
	if !ok {
		return models.CancelResult{Success: true}
	}
	for i := range list {
		if list[i].ID == bookingID {
			list[i].Status = domain.BookingCancelled
			_ = s.session.SaveBookings(list)
			break
		}
	}
	return models.CancelResult{Success: true}
}

// UserProfile prefers the synthetic identity persisted by a fallback login;
// otherwise the canonical demo user.
func (s *Store) UserProfile() models.User {
	s.sleep()
	if u, ok := s.session.DemoUser(); ok {
		return u
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// UpdateProfile merges non-nil fields into the active identity. A synthetic
// identity is updated in the session; the canonical demo user only in the
// store's own state.
func (s *Store) UpdateProfile(in models.UserUpdate) models.User {
	s.sleep()
	if u, ok := s.session.DemoUser(); ok {
		applyUserUpdate(&u, in)
		_ = s.session.SetDemoUser(u)
		return u
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	applyUserUpdate(&s.user, in)
	return s.user
}

func applyUserUpdate(u *models.User, in models.UserUpdate) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = *in.DateOfBirth
	}
}

// CreatePayment fabricates a successful payment record.
func (s *Store) CreatePayment(in models.PaymentInput) models.Payment {
	s.sleep()
	now := time.Now()
	return models.Payment{
		ID:            fmt.Sprintf("PAY%d", now.UnixMilli()),
		Status:        "success",
		TransactionID: fmt.Sprintf("TXN%d", now.UnixMilli()),
		Amount:        in.Amount,
		Currency:      "ETB",
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     utils.NowISO(),
	}
}

func (s *Store) VerifyPayment(in models.PaymentInput) models.PaymentVerification {
	s.sleep()
	return models.PaymentVerification{
		Verified:      true,
		TransactionID: in.TransactionID,
		Status:        "completed",
	}
}

// BusLocation returns the tracking snapshot for a booking.
func (s *Store) BusLocation(bookingID string) (models.BusLocation, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[bookingID]
	if !ok {
		return models.BusLocation{}, domain.NotFoundError{Resource: "bus location"}
	}
	return loc, nil
}

func (s *Store) cityByID(id int64) (models.City, bool) {
	for _, c := range s.cities {
		if c.ID == id {
			return c, true
		}
	}
	return models.City{}, false
}

func (s *Store) routeByID(id int64) (models.Route, bool) {
	for _, r := range s.routes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Route{}, false
}
