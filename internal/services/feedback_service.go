package services

import (
	"context"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
)

// FeedbackService is upstream-only: feedback has no meaningful demo answer,
// so errors propagate to the caller.
type FeedbackService struct {
	Remote    *remote.Client
	RequestID string
}

func (s *FeedbackService) Create(ctx context.Context, in models.Feedback) error {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be 1-5"}
	}
	return s.Remote.Post(ctx, "/booking/feedbacks/", in, nil)
}

func (s *FeedbackService) Statistics(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	err := s.Remote.Get(ctx, "/booking/feedbacks/statistics/", &out)
	return out, err
}
