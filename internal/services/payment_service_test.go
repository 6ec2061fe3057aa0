package services

import (
	"context"
	"strings"
	"testing"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
)

func TestPaymentCreateFallbackSimulatesSuccess(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &PaymentService{Remote: client, Demo: store, RequestID: "test"}

	p, err := svc.Create(context.Background(), models.PaymentInput{
		Amount:        850,
		PaymentMethod: "telebirr",
	})
	if err != nil {
		t.Fatalf("fallback payment must succeed: %v", err)
	}
	if p.Status != "success" {
		t.Fatalf("expected simulated success, got %s", p.Status)
	}
	if p.Currency != "ETB" {
		t.Fatalf("expected ETB currency, got %s", p.Currency)
	}
	if !strings.HasPrefix(p.ID, "PAY") || !strings.HasPrefix(p.TransactionID, "TXN") {
		t.Fatalf("unexpected payment identifiers: %s / %s", p.ID, p.TransactionID)
	}
	if p.Amount != 850 || p.PaymentMethod != "telebirr" {
		t.Fatalf("input fields must be echoed back: %+v", p)
	}
}

func TestPaymentCreateValidation(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &PaymentService{Remote: client, Demo: store, RequestID: "test"}

	if _, err := svc.Create(context.Background(), models.PaymentInput{Amount: 0, PaymentMethod: "telebirr"}); !domain.IsValidation(err) {
		t.Fatalf("zero amount must be a validation error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), models.PaymentInput{Amount: 100}); !domain.IsValidation(err) {
		t.Fatalf("missing method must be a validation error, got %v", err)
	}
}

func TestPaymentVerifyFallback(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &PaymentService{Remote: client, Demo: store, RequestID: "test"}

	v, err := svc.Verify(context.Background(), models.PaymentInput{TransactionID: "TXN123"})
	if err != nil {
		t.Fatalf("fallback verify must succeed: %v", err)
	}
	if !v.Verified || v.Status != "completed" {
		t.Fatalf("expected verified/completed, got %+v", v)
	}
	if v.TransactionID != "TXN123" {
		t.Fatalf("transaction id must be echoed back, got %s", v.TransactionID)
	}
}

func TestPaymentCompleteHasNoFallback(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	svc := &PaymentService{Remote: client, Demo: store, RequestID: "test"}

	if err := svc.Complete(context.Background(), "BK001"); !domain.IsUnavailable(err) {
		t.Fatalf("complete must surface the upstream failure, got %v", err)
	}
}
