package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
	"guzo/internal/session"
	"guzo/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login, registration and logout. Backend failures never
// block a login: the service synthesizes a local demo identity instead.
type AuthService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	Session   *session.Session
	RequestID string
}

// LoginResult is what the presentation layer gets back from login/register.
type LoginResult struct {
	User     models.User      `json:"user"`
	Tokens   models.TokenPair `json:"tokens"`
	DemoMode bool             `json:"demo_mode"`
}

type loginPayload struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Login authenticates against the upstream; when it is unreachable the call
// still succeeds with a synthetic identity persisted to the session.
func (s *AuthService) Login(ctx context.Context, phoneNumber, password string) (LoginResult, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return LoginResult{}, domain.ValidationError{Field: "phone_number", Msg: "required"}
	}
	if password == "" {
		return LoginResult{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	var pair models.TokenPair
	err := s.Remote.Post(ctx, "/users/token/", loginPayload{PhoneNumber: phoneNumber, Password: password}, &pair)
	if err == nil {
		if err := s.Session.SetTokens(pair); err != nil {
			return LoginResult{}, err
		}
		var user models.User
		if err := s.Remote.Get(ctx, "/users/profile/", &user); err == nil {
			return LoginResult{User: user, Tokens: pair}, nil
		}
		// Tokens are valid even if the profile fetch failed; fall through to
		// the demo profile so login still completes.
		s.Demo.EnsureSeeded()
		return LoginResult{User: s.Demo.UserProfile(), Tokens: pair}, nil
	}

	utils.LogFallback(s.RequestID, "auth", "login", err)
	return s.fallbackIdentity("Demo", "User", phoneNumber, password)
}

// Register creates an account upstream and logs in; on failure it follows
// the same synthesis path as login, splitting the full name on the first
// space.
func (s *AuthService) Register(ctx context.Context, name, phoneNumber, password string) (LoginResult, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return LoginResult{}, domain.ValidationError{Field: "phone_number", Msg: "required"}
	}
	if password == "" {
		return LoginResult{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	err := s.Remote.Post(ctx, "/users/register/", loginPayload{PhoneNumber: phoneNumber, Password: password}, nil)
	if err == nil {
		return s.Login(ctx, phoneNumber, password)
	}

	utils.LogFallback(s.RequestID, "auth", "register", err)
	first, last := utils.SplitName(name)
	if first == "" {
		first = "Demo"
	}
	return s.fallbackIdentity(first, last, phoneNumber, password)
}

// fallbackIdentity fabricates and persists a demo session: timestamp-derived
// user id, placeholder email, demo token pair and a bcrypt-hashed credential
// echo.
func (s *AuthService) fallbackIdentity(firstName, lastName, phoneNumber, password string) (LoginResult, error) {
	ts := time.Now().UnixMilli()

	user := models.User{
		ID:          ts,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		Email:       utils.DemoEmail(phoneNumber),
		UserType:    "REGULAR",
		Role:        "USER",
	}
	pair := models.TokenPair{
		Access:  fmt.Sprintf("demo_access_token_%d", ts),
		Refresh: fmt.Sprintf("demo_refresh_token_%d", ts),
	}

	if err := s.Session.SetTokens(pair); err != nil {
		return LoginResult{}, err
	}
	if err := s.Session.SetDemoUser(user); err != nil {
		return LoginResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "hash demo credentials", Err: err}
	}
	if err := s.Session.SetDemoCredentials(models.DemoCredentials{
		PhoneNumber:  phoneNumber,
		PasswordHash: string(hash),
	}); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: user, Tokens: pair, DemoMode: true}, nil
}

// Logout destroys the whole session: tokens, demo identity, credentials and
// the accumulated booking list.
func (s *AuthService) Logout() {
	s.Session.ClearSession()
	utils.LogEvent(s.RequestID, "auth", "logout", "session cleared")
}
