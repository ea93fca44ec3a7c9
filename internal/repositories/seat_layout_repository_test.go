package repositories

import (
	"testing"

	"busport/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSeatLayoutGetByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM seat_layouts").
		WithArgs("Executive 2x1").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Executive"))
	mock.ExpectQuery("FROM seat_layout_rows").
		WithArgs("Executive 2x1").
		WillReturnRows(sqlmock.NewRows([]string{"cells"}).
			AddRow("a1,,A2").
			AddRow("B1,,B2"))

	layout, err := SeatLayoutRepository{DB: db}.GetByName("Executive 2x1")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if layout.Category != "Executive" {
		t.Fatalf("category = %q", layout.Category)
	}
	if len(layout.Grid) != 2 || len(layout.Grid[0]) != 3 {
		t.Fatalf("grid shape = %v", layout.Grid)
	}
	// Empty cells between commas are aisles and must survive the split.
	if layout.Grid[0][0] != "A1" || layout.Grid[0][1] != "" || layout.Grid[0][2] != "A2" {
		t.Fatalf("row 0 = %v", layout.Grid[0])
	}
	if err := layout.Validate(); err != nil {
		t.Fatalf("loaded layout should validate: %v", err)
	}
}

func TestSeatLayoutUnknownName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM seat_layouts").
		WillReturnRows(sqlmock.NewRows([]string{"category"}))

	_, err = SeatLayoutRepository{DB: db}.GetByName("Nope")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
