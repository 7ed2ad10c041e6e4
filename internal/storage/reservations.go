package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"brasserie/internal/domain"
)

func (r *PostgresRepository) CreateReservation(res *domain.Reservation) error {
	return r.DB.QueryRow(`
		INSERT INTO reservations (client_name, client_phone, client_email, table_id, party_size, reserved_for, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		res.ClientName, res.ClientPhone, res.ClientEmail, res.TableID,
		res.PartySize, res.ReservedFor, res.Status, res.Notes,
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *PostgresRepository) GetReservation(id int) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.DB.QueryRow(`
		SELECT r.id, r.client_name, r.client_phone, r.client_email, r.table_id, t.number,
		       r.party_size, r.reserved_for, r.status, r.notes, r.created_at
		FROM reservations r
		JOIN dining_tables t ON r.table_id = t.id
		WHERE r.id = $1`, id,
	).Scan(&res.ID, &res.ClientName, &res.ClientPhone, &res.ClientEmail, &res.TableID,
		&res.TableNumber, &res.PartySize, &res.ReservedFor, &res.Status, &res.Notes, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresRepository) ListReservations(filter domain.ReservationFilter) ([]domain.Reservation, error) {
	query := `
		SELECT r.id, r.client_name, r.client_phone, r.client_email, r.table_id, t.number,
		       r.party_size, r.reserved_for, r.status, r.notes, r.created_at
		FROM reservations r
		JOIN dining_tables t ON r.table_id = t.id
		WHERE 1=1`
	args := []interface{}{}

	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND r.reserved_for::date = $%d::date", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	query += " ORDER BY r.reserved_for DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.ClientName, &res.ClientPhone, &res.ClientEmail, &res.TableID,
			&res.TableNumber, &res.PartySize, &res.ReservedFor, &res.Status, &res.Notes, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PostgresRepository) UpdateReservationStatus(id int, status string) error {
	result, err := r.DB.Exec("UPDATE reservations SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) CountReservationsOn(date string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM reservations WHERE reserved_for::date = $1::date", date,
	).Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentReservationsOn(date string, limit int) ([]domain.Reservation, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.client_name, r.client_phone, r.client_email, r.table_id, t.number,
		       r.party_size, r.reserved_for, r.status, r.notes, r.created_at
		FROM reservations r
		JOIN dining_tables t ON r.table_id = t.id
		WHERE r.reserved_for::date = $1::date
		ORDER BY r.reserved_for DESC
		LIMIT $2`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.ClientName, &res.ClientPhone, &res.ClientEmail, &res.TableID,
			&res.TableNumber, &res.PartySize, &res.ReservedFor, &res.Status, &res.Notes, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
