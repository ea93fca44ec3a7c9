package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookedNormalizesLabels(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_seats").
		WithArgs(int64(3), "2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}).
			AddRow(" a1 ").
			AddRow("B2"))

	booked, err := BookingSeatRepository{DB: db}.Booked(3, "2025-06-01")
	if err != nil {
		t.Fatalf("Booked: %v", err)
	}
	if !booked["A1"] || !booked["B2"] || len(booked) != 2 {
		t.Fatalf("booked = %v", booked)
	}
}

func TestFirstTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_seats").
		WithArgs(int64(3), "2025-06-01", "B1", "B2").
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}).AddRow("B2"))

	taken, found, err := BookingSeatRepository{DB: db}.FirstTaken(3, "2025-06-01", []string{"B1", "B2"})
	if err != nil {
		t.Fatalf("FirstTaken: %v", err)
	}
	if !found || taken != "B2" {
		t.Fatalf("taken=%q found=%v", taken, found)
	}
}

func TestFirstTakenNoneTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_seats").
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}))

	_, found, err := BookingSeatRepository{DB: db}.FirstTaken(3, "2025-06-01", []string{"B1"})
	if err != nil {
		t.Fatalf("FirstTaken: %v", err)
	}
	if found {
		t.Fatalf("no seat should be taken")
	}
}

func TestFirstTakenEmptyList(t *testing.T) {
	_, found, err := BookingSeatRepository{}.FirstTaken(3, "2025-06-01", nil)
	if err != nil || found {
		t.Fatalf("empty list should short-circuit, got found=%v err=%v", found, err)
	}
}
