package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"brasserie/internal/domain"
)

func (r *PostgresRepository) CreateCategory(category *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id",
		category.Name, category.Description,
	).Scan(&category.ID)
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query("SELECT id, name, description FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow(
		"SELECT id, name, description FROM categories WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (category_id, name, description, price, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		dish.CategoryID, dish.Name, dish.Description, dish.Price, dish.ImageURL, dish.Available,
	).Scan(&dish.ID, &dish.CreatedAt)
}

// ListDishes applies the menu filters: optional category, optional free-text
// search over name and description, and the public availability cut.
func (r *PostgresRepository) ListDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	query := `
		SELECT id, category_id, name, description, price, COALESCE(image_url, ''), available, created_at
		FROM dishes
		WHERE 1=1`
	args := []interface{}{}

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.OnlyAvailable {
		query += " AND available = TRUE"
	}
	query += " ORDER BY category_id, name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var d domain.Dish
		if err := rows.Scan(&d.ID, &d.CategoryID, &d.Name, &d.Description, &d.Price, &d.ImageURL, &d.Available, &d.CreatedAt); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var d domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, category_id, name, description, price, COALESCE(image_url, ''), available, created_at
		FROM dishes WHERE id = $1`, id,
	).Scan(&d.ID, &d.CategoryID, &d.Name, &d.Description, &d.Price, &d.ImageURL, &d.Available, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	result, err := r.DB.Exec(`
		UPDATE dishes
		SET category_id = $1, name = $2, description = $3, price = $4, available = $5
		WHERE id = $6`,
		dish.CategoryID, dish.Name, dish.Description, dish.Price, dish.Available, dish.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("dish %d: %w", dish.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) UpdateDishImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE dishes SET image_url = $1 WHERE id = $2", imageURL, id)
	return err
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
