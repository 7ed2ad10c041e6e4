package service

import (
	"fmt"

	"brasserie/internal/domain"
)

type ReservationService struct {
	repo ReservationRepository
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

// Create validates and stores a public booking request. Reserving a table
// does not mark it unavailable; occupancy is owned by the order lifecycle.
func (s *ReservationService) Create(res *domain.Reservation) error {
	if res.ClientName == "" {
		return fmt.Errorf("client name is required: %w", domain.ErrValidation)
	}
	if res.ClientPhone == "" {
		return fmt.Errorf("client phone is required: %w", domain.ErrValidation)
	}
	if res.PartySize < 1 {
		return fmt.Errorf("party size must be at least 1: %w", domain.ErrValidation)
	}
	if res.ReservedFor.IsZero() {
		return fmt.Errorf("reservation datetime is required: %w", domain.ErrValidation)
	}
	if _, err := s.repo.GetTable(res.TableID); err != nil {
		return err
	}
	if res.Status == "" {
		res.Status = domain.ReservationPending
	}
	if !domain.ValidReservationStatus(res.Status) {
		return fmt.Errorf("unknown reservation status %q: %w", res.Status, domain.ErrValidation)
	}
	return s.repo.CreateReservation(res)
}

func (s *ReservationService) Get(id int) (*domain.Reservation, error) {
	return s.repo.GetReservation(id)
}

func (s *ReservationService) List(filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.Status != "" && !domain.ValidReservationStatus(filter.Status) {
		return nil, fmt.Errorf("unknown reservation status %q: %w", filter.Status, domain.ErrValidation)
	}
	return s.repo.ListReservations(filter)
}

func (s *ReservationService) UpdateStatus(id int, status string) error {
	if !domain.ValidReservationStatus(status) {
		return fmt.Errorf("unknown reservation status %q: %w", status, domain.ErrValidation)
	}
	return s.repo.UpdateReservationStatus(id, status)
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
