package services

import (
	"context"
	"fmt"
	"strings"

	"guzo/internal/demo"
	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/remote"
)

// PaymentService runs the mock payment flow. Create/Verify fall back to a
// simulated success; CompletePayment is administrative and propagates
// upstream errors directly.
type PaymentService struct {
	Remote    *remote.Client
	Demo      *demo.Store
	RequestID string
}

func (s *PaymentService) Create(ctx context.Context, in models.PaymentInput) (models.Payment, error) {
	if in.Amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return models.Payment{}, domain.ValidationError{Field: "payment_method", Msg: "required"}
	}
	return withFallback(s.RequestID, "payments", "create", s.Demo,
		func() (models.Payment, error) {
			var out models.Payment
			err := s.Remote.Post(ctx, "/payments/", in, &out)
			return out, err
		},
		func() (models.Payment, error) {
			return s.Demo.CreatePayment(in), nil
		},
	)
}

func (s *PaymentService) Verify(ctx context.Context, in models.PaymentInput) (models.PaymentVerification, error) {
	if strings.TrimSpace(in.TransactionID) == "" {
		return models.PaymentVerification{}, domain.ValidationError{Field: "transaction_id", Msg: "required"}
	}
	return withFallback(s.RequestID, "payments", "verify", s.Demo,
		func() (models.PaymentVerification, error) {
			var out models.PaymentVerification
			err := s.Remote.Post(ctx, "/payments/verify/", in, &out)
			return out, err
		},
		func() (models.PaymentVerification, error) {
			return s.Demo.VerifyPayment(in), nil
		},
	)
}

// Complete marks a booking's payment finished upstream. No fallback: without
// a backend there is nothing meaningful to complete.
func (s *PaymentService) Complete(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return domain.ValidationError{Field: "booking_id", Msg: "required"}
	}
	return s.Remote.Post(ctx, fmt.Sprintf("/booking/bookings/%s/complete_payment/", bookingID), nil, nil)
}
