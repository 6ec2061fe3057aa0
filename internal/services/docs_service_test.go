package services

import (
	"bytes"
	"context"
	"testing"

	"guzo/internal/domain"
)

func TestETicketRendersForFallbackBooking(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	bookings := &BookingService{Remote: client, Demo: store, RequestID: "test"}
	svc := &DocsService{Bookings: bookings, RequestID: "test"}

	pdf, filename, err := svc.ETicket(context.Background(), "BK001")
	if err != nil {
		t.Fatalf("e-ticket error: %v", err)
	}
	if filename != "ETICKET_BK001.pdf" {
		t.Fatalf("unexpected filename %s", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestETicketUnknownBookingNotFound(t *testing.T) {
	_, store, client := newFallbackEnv(t)
	bookings := &BookingService{Remote: client, Demo: store, RequestID: "test"}
	svc := &DocsService{Bookings: bookings, RequestID: "test"}

	if _, _, err := svc.ETicket(context.Background(), "BK404"); !domain.IsNotFound(err) {
		t.Fatalf("unknown booking should be not-found, got %v", err)
	}
}
