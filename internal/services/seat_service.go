package services

import (
	"context"
	"fmt"
	"strings"

	"busport/backend/internal/domain"
	"busport/backend/internal/repositories"
	"busport/backend/internal/seatmap"
	"busport/backend/internal/utils"
)

// SeatService adapts the repositories to the seatmap fetcher interfaces and
// serves the combined seat-selection snapshot.
type SeatService struct {
	BusRepo    repositories.BusRepository
	LayoutRepo repositories.SeatLayoutRepository
	SeatRepo   repositories.BookingSeatRepository
	RequestID  string
}

// SeatLayout implements seatmap.LayoutFetcher.
func (s SeatService) SeatLayout(ctx context.Context, busID int64) (seatmap.Layout, error) {
	bus, err := s.BusRepo.GetByID(busID)
	if err != nil {
		return seatmap.Layout{}, err
	}
	return s.LayoutRepo.GetByName(bus.LayoutName)
}

// BookedSeats implements seatmap.BookedFetcher.
func (s SeatService) BookedSeats(ctx context.Context, busID int64, date string) (map[string]bool, error) {
	if !utils.ValidDate(date) {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}
	return s.SeatRepo.Booked(busID, date)
}

// ValidateSeats rejects labels that exist in no cell of the bus's layout.
// Runs before any availability check so a label with a typo never reaches
// booking_seats.
func (s SeatService) ValidateSeats(ctx context.Context, busID int64, seats []string) error {
	layout, err := s.SeatLayout(ctx, busID)
	if err != nil {
		return err
	}
	known := map[string]bool{}
	for _, label := range layout.Seats() {
		known[label] = true
	}
	for _, seat := range seats {
		if !known[strings.ToUpper(strings.TrimSpace(seat))] {
			return domain.ValidationError{Field: "seats",
				Msg: fmt.Sprintf("no seat %s in layout %s", seat, layout.Name)}
		}
	}
	return nil
}

// SelectionSnapshot holds everything the seat modal needs to render.
type SelectionSnapshot struct {
	Layout      seatmap.Layout `json:"layout"`
	BookedSeats []string       `json:"bookedSeats"`
	MaxSeats    int            `json:"maxSeats"`
}

// Snapshot opens a fresh seat session (both fetches joined, the booked set
// never reused from an earlier open) and returns its view of the bus.
func (s SeatService) Snapshot(ctx context.Context, busID int64, date string) (SelectionSnapshot, error) {
	sess := seatmap.NewSession(s, s)
	if err := sess.Open(ctx, busID, date); err != nil {
		return SelectionSnapshot{}, err
	}
	snap := SelectionSnapshot{
		Layout:      sess.Layout(),
		BookedSeats: sess.Booked(),
		MaxSeats:    seatmap.MaxSeats,
	}
	sess.Cancel()
	return snap, nil
}
