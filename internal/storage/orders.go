package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"brasserie/internal/domain"
)

// OpenOrder creates an order for an available table and flips the table to
// occupied in the same transaction. The row lock on the table guarantees at
// most one of two concurrent opens succeeds.
func (r *PostgresRepository) OpenOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available bool
	err = tx.QueryRow(
		"SELECT available FROM dining_tables WHERE id = $1 FOR UPDATE", order.TableID,
	).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("table %d: %w", order.TableID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("table %d: %w", order.TableID, domain.ErrTableUnavailable)
	}

	err = tx.QueryRow(`
		INSERT INTO orders (table_id, server_id, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		order.TableID, order.ServerID, order.Status, order.Notes,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.Exec("UPDATE dining_tables SET available = FALSE WHERE id = $1", order.TableID); err != nil {
		return fmt.Errorf("occupy table: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var o domain.Order
	var serverName sql.NullString
	err := r.DB.QueryRow(`
		SELECT o.id, o.table_id, t.number, o.server_id, s.full_name, o.status, o.notes, o.created_at
		FROM orders o
		JOIN dining_tables t ON o.table_id = t.id
		LEFT JOIN staff_users s ON o.server_id = s.id
		WHERE o.id = $1`, id,
	).Scan(&o.ID, &o.TableID, &o.TableNumber, &o.ServerID, &serverName, &o.Status, &o.Notes, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	o.ServerName = serverName.String

	items, err := r.listOrderItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT i.id, i.order_id, i.dish_id, d.name, i.quantity, i.unit_price, i.notes
		FROM order_items i
		JOIN dishes d ON i.dish_id = d.id
		WHERE i.order_id = $1
		ORDER BY i.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.DishName,
			&item.Quantity, &item.UnitPrice, &item.Notes); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOrders(status string) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.table_id, t.number, o.server_id, s.full_name, o.status, o.notes, o.created_at
		FROM orders o
		JOIN dining_tables t ON o.table_id = t.id
		LEFT JOIN staff_users s ON o.server_id = s.id`
	args := []interface{}{}
	if status != "" {
		query += " WHERE o.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var serverName sql.NullString
		if err := rows.Scan(&o.ID, &o.TableID, &o.TableNumber, &o.ServerID, &serverName,
			&o.Status, &o.Notes, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.ServerName = serverName.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) AddOrderItem(item *domain.OrderItem) error {
	return r.DB.QueryRow(`
		INSERT INTO order_items (order_id, dish_id, quantity, unit_price, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		item.OrderID, item.DishID, item.Quantity, item.UnitPrice, item.Notes,
	).Scan(&item.ID)
}

// OrderTotal computes the running total server-side with an aggregate sum,
// so it always reflects the latest item set.
func (r *PostgresRepository) OrderTotal(orderID int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(quantity * unit_price), 0)
		FROM order_items
		WHERE order_id = $1`, orderID,
	).Scan(&total)
	return total, err
}

func (r *PostgresRepository) SetOrderStatus(orderID int, status string) error {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) CountOrdersSince(t time.Time) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE created_at >= $1", t).Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentOrdersSince(t time.Time, limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.table_id, t.number, o.server_id, s.full_name, o.status, o.notes, o.created_at
		FROM orders o
		JOIN dining_tables t ON o.table_id = t.id
		LEFT JOIN staff_users s ON o.server_id = s.id
		WHERE o.created_at >= $1
		ORDER BY o.created_at DESC
		LIMIT $2`, t, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var serverName sql.NullString
		if err := rows.Scan(&o.ID, &o.TableID, &o.TableNumber, &o.ServerID, &serverName,
			&o.Status, &o.Notes, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.ServerName = serverName.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
