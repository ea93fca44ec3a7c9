package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"busport/backend/internal/config"
	"busport/backend/internal/domain"
	"busport/backend/internal/seatmap"
)

type SeatLayoutRepository struct {
	DB *sql.DB
}

func (r SeatLayoutRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// GetByName loads a layout grid. Rows are stored as comma-separated cells;
// an empty cell between commas is an aisle and must be preserved.
func (r SeatLayoutRepository) GetByName(name string) (seatmap.Layout, error) {
	out := seatmap.Layout{Name: strings.TrimSpace(name)}

	err := r.db().QueryRow(`
		SELECT category
		FROM seat_layouts
		WHERE name = ?
		LIMIT 1
	`, out.Name).Scan(&out.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "seat layout", Err: err}
		}
		return out, err
	}

	rows, err := r.db().Query(`
		SELECT cells
		FROM seat_layout_rows
		WHERE layout_name = ?
		ORDER BY row_index ASC
	`, out.Name)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return out, err
		}
		out.Grid = append(out.Grid, splitRow(cells))
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	if len(out.Grid) == 0 {
		return out, domain.NotFoundError{Resource: "seat layout rows"}
	}
	return out, nil
}

func splitRow(cells string) []string {
	parts := strings.Split(cells, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	return out
}
