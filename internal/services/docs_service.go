package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"guzo/internal/domain/models"
	"guzo/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a downloadable e-ticket PDF for a booking. The data
// comes through the booking facade, so it works identically in demo mode.
type DocsService struct {
	Bookings  *BookingService
	RequestID string
}

func (s *DocsService) ETicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	booking, err := s.Bookings.Details(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+booking.ID)
	return buildETicketPDF(booking)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : %s", b.ID),
		fmt.Sprintf("Operator       : %s", safe(b.OperatorName, "-")),
		fmt.Sprintf("Bus            : %s", safe(b.BusName, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(b.From, "-"), safe(b.To, "-")),
		fmt.Sprintf("Date / Time    : %s %s", safe(b.Date, "-"), safe(b.DepartureTime, "-")),
		fmt.Sprintf("Arrival        : %s", safe(b.ArrivalTime, "-")),
		fmt.Sprintf("Seats          : %s", safe(strings.Join(b.Seats, ", "), "-")),
		fmt.Sprintf("Status         : %s", string(b.Status)),
		fmt.Sprintf("Total          : %s", utils.FormatBirr(b.TotalPrice)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(b.Passengers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Passengers:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range b.Passengers {
			pdf.Cell(0, 6, fmt.Sprintf("%s  seat %s  %s", safe(p.Name, "-"), safe(p.SeatNumber, "-"), safe(p.Phone, "")))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at boarding. One ticket covers all listed seats.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(strings.TrimSpace(s))
}
