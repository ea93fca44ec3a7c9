package services

import (
	"context"
	"testing"

	"busport/backend/internal/domain"
	"busport/backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingCreateRecomputesPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectDemoBus(mock)
	expectDemoLayout(mock)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	svc := BookingService{
		BusSvc: BusService{BusRepo: repositories.BusRepository{DB: db}},
		SeatSvc: SeatService{
			BusRepo:    repositories.BusRepository{DB: db},
			LayoutRepo: repositories.SeatLayoutRepository{DB: db},
		},
		BookingRepo: repositories.BookingRepository{DB: db},
		SeatRepo:    repositories.BookingSeatRepository{DB: db},
	}
	detail, err := svc.Create(context.Background(), 7, 3, "B", "D", "2025-06-01", []string{"B1", "B2"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if detail.Booking.ID != 42 {
		t.Fatalf("id = %d, want 42", detail.Booking.ID)
	}
	if detail.Booking.Reference == "" {
		t.Fatalf("reference should be generated")
	}
	if detail.Booking.DepartureTime != "08:30" {
		t.Fatalf("departure = %s, want 08:30", detail.Booking.DepartureTime)
	}
	if detail.Booking.PricePerSeat != 230 || detail.Booking.Total != 460 {
		t.Fatalf("price = %d / %d, want 230 / 460", detail.Booking.PricePerSeat, detail.Booking.Total)
	}
	if len(detail.Seats) != 2 {
		t.Fatalf("seats = %v", detail.Seats)
	}
}

func TestBookingCreateRejectsSeatMissingFromLayout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectDemoBus(mock)
	expectDemoLayout(mock)

	svc := BookingService{
		BusSvc: BusService{BusRepo: repositories.BusRepository{DB: db}},
		SeatSvc: SeatService{
			BusRepo:    repositories.BusRepository{DB: db},
			LayoutRepo: repositories.SeatLayoutRepository{DB: db},
		},
		BookingRepo: repositories.BookingRepository{DB: db},
		SeatRepo:    repositories.BookingSeatRepository{DB: db},
	}
	// No tx expectations are set: reaching Begin would fail the test, so a
	// validation error here also proves nothing was persisted.
	_, err = svc.Create(context.Background(), 7, 3, "B", "D", "2025-06-01", []string{"ZZ99"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown seat, got %v", err)
	}
}

func TestBookingCreateRejectsReverseJourney(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectDemoBus(mock)

	svc := BookingService{
		BusSvc:      BusService{BusRepo: repositories.BusRepository{DB: db}},
		BookingRepo: repositories.BookingRepository{DB: db},
		SeatRepo:    repositories.BookingSeatRepository{DB: db},
	}
	if _, err := svc.Create(context.Background(), 7, 3, "D", "B", "2025-06-01", []string{"B1"}); !domain.IsInvalidSelection(err) {
		t.Fatalf("expected InvalidSelectionError, got %v", err)
	}
}
