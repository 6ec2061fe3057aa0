package services

import (
	"context"

	"guzo/internal/demo"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
	"guzo/internal/session"
	"guzo/internal/utils"
)

// UserService reads and updates the active profile. A synthetic demo
// identity in the session is authoritative over any upstream fetch.
type UserService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	Session   *session.Session
	RequestID string
}

func (s *UserService) Profile(ctx context.Context) (models.User, error) {
	if u, ok := s.Session.DemoUser(); ok {
		return u, nil
	}
	return withFallback(s.RequestID, "users", "profile", s.Demo,
		func() (models.User, error) {
			var out models.User
			err := s.Remote.Get(ctx, "/users/profile/", &out)
			return out, err
		},
		func() (models.User, error) {
			return s.Demo.UserProfile(), nil
		},
	)
}

func (s *UserService) Update(ctx context.Context, in models.UserUpdate) (models.User, error) {
	if _, ok := s.Session.DemoUser(); ok {
		return s.Demo.UpdateProfile(in), nil
	}
	return withFallback(s.RequestID, "users", "update", s.Demo,
		func() (models.User, error) {
			var out models.User
			err := s.Remote.Put(ctx, "/users/profile/", in, &out)
			return out, err
		},
		func() (models.User, error) {
			return s.Demo.UpdateProfile(in), nil
		},
	)
}

// DeleteAccount is administrative: no fallback, and a success clears the
// whole local session.
func (s *UserService) DeleteAccount(ctx context.Context) error {
	if err := s.Remote.Delete(ctx, "/users/delete/", nil); err != nil {
		return err
	}
	s.Session.ClearSession()
	utils.LogEvent(s.RequestID, "users", "delete_account", "account deleted, session cleared")
	return nil
}
