package services

import (
	"context"
	"fmt"

	"busport/backend/internal/domain"
	"busport/backend/internal/repositories"
	"busport/backend/internal/seatmap"
	"busport/backend/internal/utils"
)

// QuoteRequest asks for the fare and departure time of a sub-journey. Seats
// are optional at quote time; when present they are availability-checked and
// priced into the total.
type QuoteRequest struct {
	BusID       int64    `json:"busId"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Seats       []string `json:"seats"`
}

type QuoteResult struct {
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	Date          string   `json:"date"`
	DepartureTime string   `json:"departureTime"`
	PricePerSeat  int64    `json:"pricePerSeat"`
	Seats         []string `json:"seats,omitempty"`
	Total         int64    `json:"total"`
}

type QuoteService struct {
	BusSvc    BusService
	SeatSvc   SeatService
	SeatRepo  repositories.BookingSeatRepository
	RequestID string
}

func (s QuoteService) Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error) {
	if !utils.ValidDate(req.Date) {
		return QuoteResult{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}

	seats := utils.NormalizeSeats(req.Seats)
	if len(seats) > seatmap.MaxSeats {
		return QuoteResult{}, domain.SelectionLimitError{Limit: seatmap.MaxSeats}
	}
	if utils.HasDuplicateSeats(seats) {
		return QuoteResult{}, domain.ValidationError{Field: "seats", Msg: "duplicate seat labels"}
	}

	calc, err := s.BusSvc.CalculatorFor(req.BusID)
	if err != nil {
		return QuoteResult{}, err
	}
	q, err := calc.Quote(req.Source, req.Destination)
	if err != nil {
		return QuoteResult{}, err
	}

	seatCount := len(seats)
	if seatCount > 0 {
		if err := s.SeatSvc.ValidateSeats(ctx, req.BusID, seats); err != nil {
			return QuoteResult{}, err
		}
		taken, found, err := s.SeatRepo.FirstTaken(req.BusID, req.Date, seats)
		if err != nil {
			return QuoteResult{}, err
		}
		if found {
			return QuoteResult{}, domain.ConflictError{Resource: "seat",
				Msg: fmt.Sprintf("seat %s is already booked for this date", taken)}
		}
	} else {
		// Price preview before any seat is picked.
		seatCount = 1
	}

	utils.LogEvent(s.RequestID, "quote", "computed",
		fmt.Sprintf("bus_id=%d %s->%s seats=%d per_seat=%d", req.BusID, q.Source, q.Destination, len(seats), q.PricePerSeat))

	return QuoteResult{
		Source:        q.Source,
		Destination:   q.Destination,
		Date:          req.Date,
		DepartureTime: q.DepartureTime,
		PricePerSeat:  q.PricePerSeat,
		Seats:         seats,
		Total:         q.TotalFor(seatCount),
	}, nil
}
