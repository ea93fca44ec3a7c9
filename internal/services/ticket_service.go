package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"busport/backend/internal/repositories"
	"busport/backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders PDF e-tickets for confirmed bookings.
type TicketService struct {
	BookingRepo repositories.BookingRepository
	SeatRepo    repositories.BookingSeatRepository
	BusRepo     repositories.BusRepository
	RequestID   string
}

func (s TicketService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	seats, err := s.SeatRepo.ListByBookingID(bookingID)
	if err != nil {
		return nil, "", err
	}
	company := ""
	if bus, err := s.BusRepo.GetByID(b.BusID); err == nil {
		company = bus.CompanyName
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(b, seats, company)
}

func buildETicketPDF(b repositories.Booking, seats []string, company string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Operator    : %s", safe(company, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(b.Source, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Date/Time   : %s %s", safe(b.TripDate, "-"), safe(b.DepartureTime, "-")),
		fmt.Sprintf("Seats       : %s", safe(strings.Join(seats, ", "), "-")),
		fmt.Sprintf("Per Seat    : %s", utils.FormatRupiah(b.PricePerSeat)),
		fmt.Sprintf("Total       : %s", utils.FormatRupiah(b.Total)),
		fmt.Sprintf("Booking Ref : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Issued      : %s", utils.FormatDate(time.Now())),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at boarding. Valid for the listed seats only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
