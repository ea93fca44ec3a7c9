package repositories

import (
	"database/sql"
	"errors"

	"busport/backend/internal/config"
	"busport/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         string
	Status       string
	PasswordHash string
}

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r UserRepository) GetByEmail(email string) (User, error) {
	var u User
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role, status, password_hash
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

func (r UserRepository) GetByID(id int64) (User, error) {
	var u User
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role, status, password_hash
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

// Create inserts a new user; a duplicate email hits the unique index.
func (r UserRepository) Create(u User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'user', 'active', NOW(), NOW())
	`, u.Name, u.Email, u.Phone, u.PasswordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) UpdateProfile(id int64, name, phone string) error {
	res, err := r.db().Exec(`
		UPDATE users
		SET name = ?, phone = ?, updated_at = NOW()
		WHERE id = ?
	`, name, phone, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
