package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"busport/backend/internal/booking"
	"busport/backend/internal/config"
	"busport/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type Booking struct {
	ID            int64
	Reference     string
	UserID        int64
	BusID         int64
	Source        string
	Destination   string
	TripDate      string
	DepartureTime string
	PricePerSeat  int64
	Total         int64
	Status        string
	CreatedAt     string
}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Create persists a draft and its seats in one transaction. A duplicate seat
// for the same bus/date hits the unique index and maps to a conflict.
func (r BookingRepository) Create(d booking.Draft, reference string) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings
		(reference, user_id, bus_id, source, destination, trip_date, departure_time, price_per_seat, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'confirmed', NOW())
	`,
		reference,
		d.UserID,
		d.BusID,
		d.Source,
		d.Destination,
		d.Date,
		d.Time,
		d.PricePerSeat,
		d.Total,
	)
	if err != nil {
		return 0, err
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, seat := range d.Seats {
		_, err := tx.Exec(`
			INSERT INTO booking_seats
			(booking_id, bus_id, trip_date, seat_code, created_at)
			VALUES (?, ?, ?, ?, NOW())
		`,
			bookingID,
			d.BusID,
			d.Date,
			seat,
		)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 {
				return 0, domain.ConflictError{Resource: "seat",
					Msg: fmt.Sprintf("seat %s is already booked for this date", seat), Err: err}
			}
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return bookingID, nil
}

func (r BookingRepository) GetByID(id int64) (Booking, error) {
	var b Booking
	err := r.db().QueryRow(`
		SELECT id, reference, user_id, bus_id, source, destination, trip_date, departure_time, price_per_seat, total, status, created_at
		FROM bookings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(
		&b.ID, &b.Reference, &b.UserID, &b.BusID,
		&b.Source, &b.Destination, &b.TripDate, &b.DepartureTime,
		&b.PricePerSeat, &b.Total, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return b, err
	}
	return b, nil
}

// ListByUser returns the user's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]Booking, error) {
	rows, err := r.db().Query(`
		SELECT id, reference, user_id, bus_id, source, destination, trip_date, departure_time, price_per_seat, total, status, created_at
		FROM bookings
		WHERE user_id = ?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.UserID, &b.BusID,
			&b.Source, &b.Destination, &b.TripDate, &b.DepartureTime,
			&b.PricePerSeat, &b.Total, &b.Status, &b.CreatedAt,
		); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
