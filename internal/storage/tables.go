package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"brasserie/internal/domain"
)

func (r *PostgresRepository) CreateTable(table *domain.Table) error {
	err := r.DB.QueryRow(
		"INSERT INTO dining_tables (number, capacity, available) VALUES ($1, $2, $3) RETURNING id",
		table.Number, table.Capacity, table.Available,
	).Scan(&table.ID)
	if uniqueViolation(err, "dining_tables_number_key") {
		return fmt.Errorf("table number %d: %w", table.Number, domain.ErrTableNumberTaken)
	}
	return err
}

func (r *PostgresRepository) ListTables() ([]domain.Table, error) {
	rows, err := r.DB.Query("SELECT id, number, capacity, available FROM dining_tables ORDER BY number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Available); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(id int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(
		"SELECT id, number, capacity, available FROM dining_tables WHERE id = $1", id,
	).Scan(&t.ID, &t.Number, &t.Capacity, &t.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToggleTable flips the availability flag and returns the updated row.
func (r *PostgresRepository) ToggleTable(id int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		UPDATE dining_tables SET available = NOT available
		WHERE id = $1
		RETURNING id, number, capacity, available`, id,
	).Scan(&t.ID, &t.Number, &t.Capacity, &t.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) CountOccupiedTables() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM dining_tables WHERE available = FALSE").Scan(&count)
	return count, err
}
