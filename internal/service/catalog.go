package service

import (
	"fmt"

	"brasserie/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Menu returns the category list alongside the dishes matching the filter.
func (s *CatalogService) Menu(filter domain.DishFilter) ([]domain.Category, []domain.Dish, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, nil, err
	}
	dishes, err := s.repo.ListDishes(filter)
	if err != nil {
		return nil, nil, err
	}
	return categories, dishes, nil
}

func (s *CatalogService) CreateCategory(category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name is required: %w", domain.ErrValidation)
	}
	return s.repo.CreateCategory(category)
}

func (s *CatalogService) DeleteCategory(id int) (int64, error) {
	return s.repo.DeleteCategory(id)
}

func (s *CatalogService) CreateDish(dish *domain.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	if _, err := s.repo.GetCategory(dish.CategoryID); err != nil {
		return err
	}
	return s.repo.CreateDish(dish)
}

func (s *CatalogService) GetDish(id int) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *CatalogService) UpdateDish(dish *domain.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	return s.repo.UpdateDish(dish)
}

func (s *CatalogService) UpdateDishImage(id int, imageURL string) error {
	return s.repo.UpdateDishImage(id, imageURL)
}

func (s *CatalogService) DeleteDish(id int) (int64, error) {
	return s.repo.DeleteDish(id)
}

func validateDish(dish *domain.Dish) error {
	if dish.Name == "" {
		return fmt.Errorf("dish name is required: %w", domain.ErrValidation)
	}
	if !dish.Price.IsPositive() {
		return fmt.Errorf("dish price must be strictly positive: %w", domain.ErrValidation)
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
