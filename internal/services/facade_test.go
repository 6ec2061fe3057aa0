package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
	"guzo/internal/session"
)

// deadRemote returns a client whose upstream refuses every connection.
func deadRemote(t *testing.T, sess *session.Session) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return remote.NewClient(srv.URL, 500*time.Millisecond, sess)
}

func newFallbackEnv(t *testing.T) (*session.Session, *demo.Store, *remote.Client) {
	t.Helper()
	fs, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("file store init error: %v", err)
	}
	sess := session.New(fs)
	store := demo.NewStore(sess, 0)
	return sess, store, deadRemote(t, sess)
}

func TestRouteSearchFallsBackTransparently(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &RouteService{Remote: client, Demo: store, RequestID: "test"}

	routes, err := svc.Search(context.Background(), 1, 2, "2024-01-15")
	if err != nil {
		t.Fatalf("fallback must hide the upstream failure: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected demo search result, got %d routes", len(routes))
	}
}

func TestRouteSearchValidationSkipsFallback(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &RouteService{Remote: client, Demo: store, RequestID: "test"}

	if _, err := svc.Search(context.Background(), 0, 2, "2024-01-15"); !domain.IsValidation(err) {
		t.Fatalf("missing source must be a validation error, got %v", err)
	}
	if _, err := svc.Search(context.Background(), 1, 2, "15-01-2024"); !domain.IsValidation(err) {
		t.Fatalf("malformed date must be a validation error, got %v", err)
	}
}

func TestRouteDetailsFallbackNotFound(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &RouteService{Remote: client, Demo: store, RequestID: "test"}

	if _, err := svc.Details(context.Background(), 999); !domain.IsNotFound(err) {
		t.Fatalf("unknown route should surface not-found from the demo layer, got %v", err)
	}
}

func TestBookingCreateFallbackSeedsThenAppends(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	svc := &BookingService{Remote: client, Demo: store, RequestID: "test"}

	created, err := svc.Create(context.Background(), models.BookingInput{
		RouteID:    1,
		From:       "Addis Ababa",
		To:         "Bahir Dar",
		Date:       "2024-01-15",
		Seats:      []string{"A3"},
		TotalPrice: 850,
	})
	if err != nil {
		t.Fatalf("fallback create error: %v", err)
	}
	// The fallback path seeds the four demo bookings before creating.
	if created.ID != "BK005" {
		t.Fatalf("expected id after the seeded list, got %s", created.ID)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("fallback list error: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 4 seeded + 1 created, got %d", len(list))
	}

	persisted, ok := sess.Bookings()
	if !ok || len(persisted) != 5 {
		t.Fatalf("created booking must be in the session list")
	}
}

func TestBookingCancelFallbackFlipsStatus(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &BookingService{Remote: client, Demo: store, RequestID: "test"}

	result, err := svc.Cancel(context.Background(), "BK001")
	if err != nil {
		t.Fatalf("fallback cancel error: %v", err)
	}
	if !result.Success {
		t.Fatalf("cancel should report success")
	}

	b, err := svc.Details(context.Background(), "BK001")
	if err != nil {
		t.Fatalf("details error: %v", err)
	}
	if b.Status != domain.BookingCancelled {
		t.Fatalf("BK001 should read back cancelled, got %s", b.Status)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &BookingService{Remote: client, Demo: store, RequestID: "test"}

	if _, err := svc.Create(context.Background(), models.BookingInput{RouteID: 1}); !domain.IsValidation(err) {
		t.Fatalf("no seats must be a validation error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), models.BookingInput{RouteID: 1, Seats: []string{" "}}); !domain.IsValidation(err) {
		t.Fatalf("blank seat must be a validation error, got %v", err)
	}
}

func TestLoginFallbackSynthesizesIdentity(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	svc := &AuthService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	result, err := svc.Login(context.Background(), "+251911234567", "secret")
	if err != nil {
		t.Fatalf("fallback login must succeed: %v", err)
	}
	if !result.DemoMode {
		t.Fatalf("fallback login should be flagged demo mode")
	}
	if result.User.Email != "251911234567@demo.com" {
		t.Fatalf("email should derive from the phone number, got %s", result.User.Email)
	}
	if result.User.ID <= 0 {
		t.Fatalf("synthetic user id should be timestamp-derived, got %d", result.User.ID)
	}
	if !strings.HasPrefix(result.Tokens.Access, "demo_access_token_") ||
		!strings.HasPrefix(result.Tokens.Refresh, "demo_refresh_token_") {
		t.Fatalf("unexpected demo token pair: %+v", result.Tokens)
	}

	access, refresh := sess.Tokens()
	if access != result.Tokens.Access || refresh != result.Tokens.Refresh {
		t.Fatalf("token pair must be persisted to the session")
	}
	if u, ok := sess.DemoUser(); !ok || u.ID != result.User.ID {
		t.Fatalf("synthetic identity must be persisted to the session")
	}
}

func TestLoginValidation(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	svc := &AuthService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	if _, err := svc.Login(context.Background(), "  ", "secret"); !domain.IsValidation(err) {
		t.Fatalf("blank phone must be a validation error, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "+251911234567", ""); !domain.IsValidation(err) {
		t.Fatalf("empty password must be a validation error, got %v", err)
	}
}

func TestRegisterFallbackSplitsName(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	svc := &AuthService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	result, err := svc.Register(context.Background(), "Tigist Haile Mariam", "+251922345678", "secret")
	if err != nil {
		t.Fatalf("fallback register must succeed: %v", err)
	}
	if result.User.FirstName != "Tigist" || result.User.LastName != "Haile Mariam" {
		t.Fatalf("name should split on the first space, got %s / %s", result.User.FirstName, result.User.LastName)
	}
}

func TestLogoutRevertsProfileToCanonicalUser(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	auth := &AuthService{Remote: client, Demo: store, Session: sess, RequestID: "test"}
	users := &UserService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	if _, err := auth.Login(context.Background(), "+251911000000", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	u, err := users.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile error: %v", err)
	}
	if u.FirstName != "Demo" {
		t.Fatalf("expected synthetic identity before logout, got %s", u.FirstName)
	}

	auth.Logout()

	u, err = users.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile after logout error: %v", err)
	}
	if u.FirstName != "Abebe" || u.LastName != "Kebede" {
		t.Fatalf("logout should revert to the canonical demo user, got %s %s", u.FirstName, u.LastName)
	}
}

func TestProfileUpdatePersistsForDemoIdentity(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	auth := &AuthService{Remote: client, Demo: store, Session: sess, RequestID: "test"}
	users := &UserService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	if _, err := auth.Login(context.Background(), "+251911000000", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	first := "Kalkidan"
	updated, err := users.Update(context.Background(), models.UserUpdate{FirstName: &first})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.FirstName != "Kalkidan" {
		t.Fatalf("update did not apply, got %s", updated.FirstName)
	}

	again, err := users.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile error: %v", err)
	}
	if again.FirstName != "Kalkidan" {
		t.Fatalf("updated identity must persist in the session, got %s", again.FirstName)
	}
}

func TestDeleteAccountHasNoFallback(t *testing.T) {
	sess, store, client := newFallbackEnv(t)
	users := &UserService{Remote: client, Demo: store, Session: sess, RequestID: "test"}

	if err := users.DeleteAccount(context.Background()); !domain.IsUnavailable(err) {
		t.Fatalf("delete must surface the upstream failure, got %v", err)
	}
}
