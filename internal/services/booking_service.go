package services

import (
	"context"
	"fmt"

	"busport/backend/internal/booking"
	"busport/backend/internal/repositories"
	"busport/backend/internal/utils"

	"github.com/google/uuid"
)

type BookingService struct {
	BusSvc      BusService
	SeatSvc     SeatService
	BookingRepo repositories.BookingRepository
	SeatRepo    repositories.BookingSeatRepository
	RequestID   string
}

// BookingDetail is a persisted booking together with its seats.
type BookingDetail struct {
	Booking repositories.Booking `json:"booking"`
	Seats   []string             `json:"seats"`
}

// Create recomputes the draft server-side from the stored route and mappings
// (client totals are never trusted), checks every seat against the bus's
// layout, and persists the booking with its seats.
func (s BookingService) Create(ctx context.Context, userID, busID int64, source, destination, date string, seats []string) (BookingDetail, error) {
	calc, err := s.BusSvc.CalculatorFor(busID)
	if err != nil {
		return BookingDetail{}, err
	}
	draft, err := booking.Build(calc, userID, busID, source, destination, date, seats)
	if err != nil {
		return BookingDetail{}, err
	}
	if err := s.SeatSvc.ValidateSeats(ctx, busID, draft.Seats); err != nil {
		return BookingDetail{}, err
	}

	reference := uuid.NewString()
	id, err := s.BookingRepo.Create(draft, reference)
	if err != nil {
		return BookingDetail{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("booking_id=%d bus_id=%d %s->%s date=%s seats=%d total=%d",
			id, busID, draft.Source, draft.Destination, draft.Date, len(draft.Seats), draft.Total))

	return BookingDetail{
		Booking: repositories.Booking{
			ID:            id,
			Reference:     reference,
			UserID:        draft.UserID,
			BusID:         draft.BusID,
			Source:        draft.Source,
			Destination:   draft.Destination,
			TripDate:      draft.Date,
			DepartureTime: draft.Time,
			PricePerSeat:  draft.PricePerSeat,
			Total:         draft.Total,
			Status:        "confirmed",
		},
		Seats: draft.Seats,
	}, nil
}

func (s BookingService) Detail(bookingID int64) (BookingDetail, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	seats, err := s.SeatRepo.ListByBookingID(bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	return BookingDetail{Booking: b, Seats: seats}, nil
}

func (s BookingService) ListByUser(userID int64) ([]repositories.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}
