package services

import (
	"context"
	"testing"

	"busport/backend/internal/domain"
	"busport/backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSnapshotJoinsLayoutAndBooked(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM buses").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "company_name", "category", "license_no", "start_time", "layout_name", "photo_url"}).
			AddRow(3, "Riau Express", "Executive", "BM 1234 XY", "08:00", "Executive 2x1", ""))
	mock.ExpectQuery("FROM seat_layouts").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Executive"))
	mock.ExpectQuery("FROM seat_layout_rows").
		WillReturnRows(sqlmock.NewRows([]string{"cells"}).
			AddRow("A1,,A2").
			AddRow("B1,,B2"))
	mock.ExpectQuery("FROM booking_seats").
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}).AddRow("A2"))

	svc := SeatService{
		BusRepo:    repositories.BusRepository{DB: db},
		LayoutRepo: repositories.SeatLayoutRepository{DB: db},
		SeatRepo:   repositories.BookingSeatRepository{DB: db},
	}
	snap, err := svc.Snapshot(context.Background(), 3, "2025-06-01")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Layout.Name != "Executive 2x1" {
		t.Fatalf("layout name = %q", snap.Layout.Name)
	}
	if len(snap.BookedSeats) != 1 || snap.BookedSeats[0] != "A2" {
		t.Fatalf("booked = %v", snap.BookedSeats)
	}
	if snap.MaxSeats != 4 {
		t.Fatalf("max seats = %d, want 4", snap.MaxSeats)
	}
}

func TestSnapshotFailsWhenEitherFetchFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	// Unknown bus kills the layout side of the join; booked side may or may
	// not run before the group is cancelled.
	mock.ExpectQuery("FROM buses").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("FROM booking_seats").
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}))

	svc := SeatService{
		BusRepo:    repositories.BusRepository{DB: db},
		LayoutRepo: repositories.SeatLayoutRepository{DB: db},
		SeatRepo:   repositories.BookingSeatRepository{DB: db},
	}
	if _, err := svc.Snapshot(context.Background(), 99, "2025-06-01"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestValidateSeatsAgainstLayout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM buses").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "company_name", "category", "license_no", "start_time", "layout_name", "photo_url"}).
			AddRow(3, "Riau Express", "Executive", "BM 1234 XY", "08:00", "Executive 2x1", ""))
	mock.ExpectQuery("FROM seat_layouts").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Executive"))
	mock.ExpectQuery("FROM seat_layout_rows").
		WillReturnRows(sqlmock.NewRows([]string{"cells"}).
			AddRow("A1,,A2").
			AddRow("B1,,B2"))

	svc := SeatService{
		BusRepo:    repositories.BusRepository{DB: db},
		LayoutRepo: repositories.SeatLayoutRepository{DB: db},
	}
	if err := svc.ValidateSeats(context.Background(), 3, []string{"B1", "A2"}); err != nil {
		t.Fatalf("known seats rejected: %v", err)
	}

	mock.ExpectQuery("FROM buses").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "company_name", "category", "license_no", "start_time", "layout_name", "photo_url"}).
			AddRow(3, "Riau Express", "Executive", "BM 1234 XY", "08:00", "Executive 2x1", ""))
	mock.ExpectQuery("FROM seat_layouts").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Executive"))
	mock.ExpectQuery("FROM seat_layout_rows").
		WillReturnRows(sqlmock.NewRows([]string{"cells"}).AddRow("A1,,A2"))

	if err := svc.ValidateSeats(context.Background(), 3, []string{"ZZ99"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown seat, got %v", err)
	}
}

func TestBookedSeatsRejectsBadDate(t *testing.T) {
	svc := SeatService{}
	if _, err := svc.BookedSeats(context.Background(), 3, "June 1st"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
