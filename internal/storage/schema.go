package storage

import "fmt"

// EnsureSchema creates the tables the service needs. Statements are
// idempotent so startup can always run them.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name VARCHAR(200) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			image_url TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dining_tables (
			id SERIAL PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			capacity INTEGER NOT NULL CHECK (capacity >= 1),
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS staff_users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name VARCHAR(200) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			client_name VARCHAR(200) NOT NULL,
			client_phone VARCHAR(20) NOT NULL,
			client_email VARCHAR(254) NOT NULL DEFAULT '',
			table_id INTEGER NOT NULL REFERENCES dining_tables(id) ON DELETE CASCADE,
			party_size INTEGER NOT NULL CHECK (party_size >= 1),
			reserved_for TIMESTAMPTZ NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_id INTEGER NOT NULL REFERENCES dining_tables(id) ON DELETE CASCADE,
			server_id INTEGER REFERENCES staff_users(id) ON DELETE SET NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'OPEN',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
			unit_price NUMERIC(10,2) NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			numero VARCHAR(50) NOT NULL,
			montant_total NUMERIC(10,2) NOT NULL,
			tva NUMERIC(10,2) NOT NULL DEFAULT 0,
			montant_ttc NUMERIC(10,2) NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			qr_code BYTEA,
			CONSTRAINT invoices_order_id_key UNIQUE (order_id),
			CONSTRAINT invoices_numero_key UNIQUE (numero)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
