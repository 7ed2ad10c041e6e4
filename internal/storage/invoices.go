package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"brasserie/internal/domain"
)

// CreateInvoice persists the invoice, marks the order PAID and frees the
// table in one transaction, so no intermediate state is ever observable.
func (r *PostgresRepository) CreateInvoice(inv *domain.Invoice) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var tableID int
	err = tx.QueryRow(
		"SELECT table_id FROM orders WHERE id = $1 FOR UPDATE", inv.OrderID,
	).Scan(&tableID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("order %d: %w", inv.OrderID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	err = tx.QueryRow(`
		INSERT INTO invoices (order_id, numero, montant_total, tva, montant_ttc, payment_method, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, issued_at`,
		inv.OrderID, inv.Number, inv.PreTax, inv.Tax, inv.Total, inv.PaymentMethod, inv.Paid,
	).Scan(&inv.ID, &inv.IssuedAt)
	if uniqueViolation(err, "invoices_order_id_key") {
		return fmt.Errorf("order %d: %w", inv.OrderID, domain.ErrInvoiceExists)
	}
	if uniqueViolation(err, "invoices_numero_key") {
		return fmt.Errorf("numero %s: %w", inv.Number, domain.ErrInvoiceNumberTaken)
	}
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	if _, err := tx.Exec("UPDATE orders SET status = $1 WHERE id = $2", domain.OrderPaid, inv.OrderID); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if _, err := tx.Exec("UPDATE dining_tables SET available = TRUE WHERE id = $1", tableID); err != nil {
		return fmt.Errorf("release table: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetInvoice(id int) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.DB.QueryRow(`
		SELECT i.id, i.order_id, t.number, i.numero, i.montant_total, i.tva, i.montant_ttc,
		       i.payment_method, i.issued_at, i.paid
		FROM invoices i
		JOIN orders o ON i.order_id = o.id
		JOIN dining_tables t ON o.table_id = t.id
		WHERE i.id = $1`, id,
	).Scan(&inv.ID, &inv.OrderID, &inv.TableNumber, &inv.Number, &inv.PreTax, &inv.Tax,
		&inv.Total, &inv.PaymentMethod, &inv.IssuedAt, &inv.Paid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PostgresRepository) ListInvoices() ([]domain.Invoice, error) {
	rows, err := r.DB.Query(`
		SELECT i.id, i.order_id, t.number, i.numero, i.montant_total, i.tva, i.montant_ttc,
		       i.payment_method, i.issued_at, i.paid
		FROM invoices i
		JOIN orders o ON i.order_id = o.id
		JOIN dining_tables t ON o.table_id = t.id
		ORDER BY i.issued_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.OrderID, &inv.TableNumber, &inv.Number, &inv.PreTax,
			&inv.Tax, &inv.Total, &inv.PaymentMethod, &inv.IssuedAt, &inv.Paid); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *PostgresRepository) SumInvoices() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRow("SELECT COALESCE(SUM(montant_ttc), 0) FROM invoices").Scan(&total)
	return total, err
}

func (r *PostgresRepository) RevenueSince(t time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRow(
		"SELECT COALESCE(SUM(montant_ttc), 0) FROM invoices WHERE issued_at >= $1", t,
	).Scan(&total)
	return total, err
}

func (r *PostgresRepository) SaveInvoiceQRCode(invoiceID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE invoices SET qr_code = $1 WHERE id = $2", qr, invoiceID)
	return err
}

func (r *PostgresRepository) GetInvoiceQRCode(invoiceID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM invoices WHERE id = $1", invoiceID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice %d: %w", invoiceID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}
