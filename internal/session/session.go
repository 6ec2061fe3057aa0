package session

import (
	"encoding/json"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
)

// Session wraps a Store with the typed accessors the facade reads and
// writes. It owns the durable copies of the user identity, token pair and
// booking list.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Tokens returns the persisted token pair. Both are empty when logged out.
func (s *Session) Tokens() (access, refresh string) {
	access, _, _ = s.store.Get(KeyAccessToken)
	refresh, _, _ = s.store.Get(KeyRefreshToken)
	return access, refresh
}

// SetTokens persists a token pair; the two keys are always written together.
func (s *Session) SetTokens(pair models.TokenPair) error {
	if err := s.store.Set(KeyAccessToken, pair.Access); err != nil {
		return domain.InternalError{Msg: "persist access token", Err: err}
	}
	if err := s.store.Set(KeyRefreshToken, pair.Refresh); err != nil {
		return domain.InternalError{Msg: "persist refresh token", Err: err}
	}
	return nil
}

// ClearTokens removes both token keys, i.e. marks the session logged out.
func (s *Session) ClearTokens() {
	_ = s.store.Remove(KeyAccessToken)
	_ = s.store.Remove(KeyRefreshToken)
}

// DemoUser returns the synthetic identity if one is active. When present it
// is authoritative over any upstream profile fetch.
func (s *Session) DemoUser() (models.User, bool) {
	raw, ok, err := s.store.Get(KeyDemoUser)
	if err != nil || !ok {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false
	}
	return u, true
}

func (s *Session) SetDemoUser(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return domain.InternalError{Msg: "encode demo user", Err: err}
	}
	return s.store.Set(KeyDemoUser, string(raw))
}

// SetDemoCredentials stores the diagnostic echo of the last fallback login.
func (s *Session) SetDemoCredentials(c models.DemoCredentials) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return domain.InternalError{Msg: "encode demo credentials", Err: err}
	}
	return s.store.Set(KeyDemoCredentials, string(raw))
}

// Bookings returns the persisted booking list. The bool distinguishes "never
// seeded" from an empty list.
func (s *Session) Bookings() ([]models.Booking, bool) {
	raw, ok, err := s.store.Get(KeyUserBookings)
	if err != nil || !ok {
		return nil, false
	}
	var out []models.Booking
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *Session) SaveBookings(list []models.Booking) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return domain.InternalError{Msg: "encode bookings", Err: err}
	}
	return s.store.Set(KeyUserBookings, string(raw))
}

// SeedBookings writes the canonical demo bookings once. A no-op when the key
// already exists, so an established session is never overwritten.
func (s *Session) SeedBookings(seed []models.Booking) error {
	if _, ok, _ := s.store.Get(KeyUserBookings); ok {
		return nil
	}
	return s.SaveBookings(seed)
}

// ClearSession removes every session key. Removes are sequential with no
// rollback; the store is local and removes are not expected to fail.
func (s *Session) ClearSession() {
	for _, k := range sessionKeys {
		_ = s.store.Remove(k)
	}
}
