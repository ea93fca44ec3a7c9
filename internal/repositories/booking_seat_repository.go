package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"busport/backend/internal/config"
)

type BookingSeatRepository struct {
	DB *sql.DB
}

func (r BookingSeatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Booked returns the seats already reserved for the bus on a date.
func (r BookingSeatRepository) Booked(busID int64, date string) (map[string]bool, error) {
	rows, err := r.db().Query(`
		SELECT seat_code
		FROM booking_seats
		WHERE bus_id = ?
		  AND trip_date = ?
	`, busID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return out, err
		}
		out[strings.ToUpper(strings.TrimSpace(seat))] = true
	}
	return out, rows.Err()
}

// FirstTaken reports the first of the given seats already reserved for the
// bus/date, if any. Used as a pre-check before the transactional insert.
func (r BookingSeatRepository) FirstTaken(busID int64, date string, seats []string) (string, bool, error) {
	if len(seats) == 0 {
		return "", false, nil
	}
	placeholders := make([]string, len(seats))
	args := make([]any, 0, 2+len(seats))
	args = append(args, busID, date)
	for i, s := range seats {
		placeholders[i] = "?"
		args = append(args, s)
	}

	q := `
		SELECT seat_code
		FROM booking_seats
		WHERE bus_id = ?
		  AND trip_date = ?
		  AND seat_code IN (` + strings.Join(placeholders, ",") + `)
		LIMIT 1
	`
	var taken string
	err := r.db().QueryRow(q, args...).Scan(&taken)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(taken), true, nil
}

// ListByBookingID returns the seats of one booking in insertion order.
func (r BookingSeatRepository) ListByBookingID(bookingID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_code
		FROM booking_seats
		WHERE booking_id = ?
		ORDER BY id ASC
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return out, err
		}
		out = append(out, strings.TrimSpace(seat))
	}
	return out, rows.Err()
}
