package service

import (
	"fmt"

	"brasserie/internal/domain"
)

type TableService struct {
	repo TableRepository
}

func NewTableService(repo TableRepository) *TableService {
	return &TableService{repo: repo}
}

func (s *TableService) Create(table *domain.Table) error {
	if table.Number < 1 {
		return fmt.Errorf("table number must be at least 1: %w", domain.ErrValidation)
	}
	if table.Capacity < 1 {
		return fmt.Errorf("table capacity must be at least 1: %w", domain.ErrValidation)
	}
	return s.repo.CreateTable(table)
}

func (s *TableService) List() ([]domain.Table, error) {
	return s.repo.ListTables()
}

// Toggle flips availability manually. The order lifecycle flips the flag on
// its own at open and billing; this is the staff override.
func (s *TableService) Toggle(id int) (*domain.Table, error) {
	return s.repo.ToggleTable(id)
}

var _ TableServiceInterface = (*TableService)(nil)
