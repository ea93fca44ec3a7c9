package repositories

import (
	"database/sql"

	"busport/backend/internal/config"
)

type Review struct {
	ID        int64
	BusID     int64
	UserID    int64
	UserName  string
	Rating    int
	Comment   string
	CreatedAt string
}

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r ReviewRepository) ListByBus(busID int64) ([]Review, error) {
	rows, err := r.db().Query(`
		SELECT r.id, r.bus_id, r.user_id, COALESCE(u.name,''), r.rating, r.comment, r.created_at
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.bus_id = ?
		ORDER BY r.id DESC
	`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BusID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r ReviewRepository) Create(rv Review) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (bus_id, user_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, rv.BusID, rv.UserID, rv.Rating, rv.Comment)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
