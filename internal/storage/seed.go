package storage

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type seedDish struct {
	name, description, category string
	price                       string
}

var seedCategories = map[string]string{
	"Entrées":          "Petites entrées pour commencer",
	"Plats principaux": "Plats chauds et consistants",
	"Desserts":         "Douceurs sucrées",
	"Boissons":         "Boissons fraîches et chaudes",
}

var seedDishes = []seedDish{
	{"Salade César", "Salade croquante avec poulet grillé", "Entrées", "2500"},
	{"Soupe du jour", "Préparée quotidiennement", "Entrées", "1800"},
	{"Poulet braisé", "Poulet assaisonné et grillé", "Plats principaux", "5000"},
	{"Steak frites", "Steak tendre + Frites maison", "Plats principaux", "6500"},
	{"Riz au poisson", "Spécialité locale", "Plats principaux", "4000"},
	{"Tarte aux pommes", "Tarte faite maison", "Desserts", "2000"},
	{"Crème glacée", "3 boules au choix", "Desserts", "1500"},
	{"Coca-Cola", "Bouteille 33cl", "Boissons", "700"},
	{"Jus naturel", "Fait maison", "Boissons", "1200"},
}

// Seed loads the reference dataset: categories, dishes, ten tables and the
// serveur1 staff account. Inserts are skipped when the row already exists.
func (r *PostgresRepository) Seed() error {
	categoryIDs := make(map[string]int)
	for name, description := range seedCategories {
		var id int
		err := r.DB.QueryRow(
			"SELECT id FROM categories WHERE name = $1", name,
		).Scan(&id)
		if err != nil {
			err = r.DB.QueryRow(
				"INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id",
				name, description,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("seed category %s: %w", name, err)
			}
		}
		categoryIDs[name] = id
	}

	for _, d := range seedDishes {
		_, err := r.DB.Exec(`
			INSERT INTO dishes (category_id, name, description, price)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM dishes WHERE name = $2)`,
			categoryIDs[d.category], d.name, d.description, d.price)
		if err != nil {
			return fmt.Errorf("seed dish %s: %w", d.name, err)
		}
	}

	for number := 1; number <= 10; number++ {
		capacity := 4
		if number > 5 {
			capacity = 6
		}
		_, err := r.DB.Exec(`
			INSERT INTO dining_tables (number, capacity)
			VALUES ($1, $2)
			ON CONFLICT (number) DO NOTHING`, number, capacity)
		if err != nil {
			return fmt.Errorf("seed table %d: %w", number, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed staff password: %w", err)
	}
	_, err = r.DB.Exec(`
		INSERT INTO staff_users (username, password_hash, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`,
		"serveur1", string(hash), "Ali Serveur")
	if err != nil {
		return fmt.Errorf("seed staff user: %w", err)
	}

	return nil
}
