package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"brasserie/internal/domain"
)

func (r *PostgresRepository) GetStaffByUsername(username string) (*domain.StaffUser, error) {
	var u domain.StaffUser
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, COALESCE(full_name, ''), created_at
		FROM staff_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("staff %s: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetStaff(id int) (*domain.StaffUser, error) {
	var u domain.StaffUser
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, COALESCE(full_name, ''), created_at
		FROM staff_users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("staff %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateStaff(u *domain.StaffUser) error {
	return r.DB.QueryRow(`
		INSERT INTO staff_users (username, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		u.Username, u.PasswordHash, u.FullName,
	).Scan(&u.ID, &u.CreatedAt)
}
