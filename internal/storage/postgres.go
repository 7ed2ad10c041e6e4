package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// PostgresRepository implements every repository interface consumed by the
// service layer on top of a single database handle.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// uniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint.
func uniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && string(pqErr.Constraint) == constraint
	}
	return false
}
