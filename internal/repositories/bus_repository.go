package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"busport/backend/internal/config"
	"busport/backend/internal/domain"
	"busport/backend/internal/fare"
)

type Bus struct {
	ID          int64
	CompanyName string
	Category    string
	LicenseNo   string
	StartTime   string
	LayoutName  string
	PhotoURL    string
}

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r BusRepository) List() ([]Bus, error) {
	rows, err := r.db().Query(`
		SELECT id, company_name, category, license_no, start_time, layout_name, COALESCE(photo_url,'')
		FROM buses
		ORDER BY company_name ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Bus{}
	for rows.Next() {
		var b Bus
		if err := rows.Scan(&b.ID, &b.CompanyName, &b.Category, &b.LicenseNo, &b.StartTime, &b.LayoutName, &b.PhotoURL); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) GetByID(id int64) (Bus, error) {
	var b Bus
	err := r.db().QueryRow(`
		SELECT id, company_name, category, license_no, start_time, layout_name, COALESCE(photo_url,'')
		FROM buses
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&b.ID, &b.CompanyName, &b.Category, &b.LicenseNo, &b.StartTime, &b.LayoutName, &b.PhotoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "bus", Err: err}
		}
		return b, err
	}
	return b, nil
}

// Stops returns the route in traversal order.
func (r BusRepository) Stops(busID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT name
		FROM bus_stops
		WHERE bus_id = ?
		ORDER BY position ASC
	`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return out, err
		}
		out = append(out, strings.TrimSpace(name))
	}
	return out, rows.Err()
}

func (r BusRepository) PriceEntries(busID int64) ([]fare.PriceEntry, error) {
	rows, err := r.db().Query(`
		SELECT stop_a, stop_b, price
		FROM segment_fares
		WHERE bus_id = ?
	`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []fare.PriceEntry{}
	for rows.Next() {
		var e fare.PriceEntry
		if err := rows.Scan(&e.Stop1, &e.Stop2, &e.Price); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r BusRepository) TimeEntries(busID int64) ([]fare.TimeEntry, error) {
	rows, err := r.db().Query(`
		SELECT stop_a, stop_b, duration_min
		FROM segment_times
		WHERE bus_id = ?
	`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []fare.TimeEntry{}
	for rows.Next() {
		var e fare.TimeEntry
		if err := rows.Scan(&e.Stop1, &e.Stop2, &e.Duration); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
