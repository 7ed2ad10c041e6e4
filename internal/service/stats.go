package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"brasserie/internal/domain"
)

const recentLimit = 5

type StatsService struct {
	repo  StatsRepository
	cache StatsCache
}

func NewStatsService(repo StatsRepository, cache StatsCache) *StatsService {
	return &StatsService{repo: repo, cache: cache}
}

// Dashboard assembles the day snapshot. Revenue is served from the counter
// maintained by the event consumer when present, otherwise from the store.
func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today := now.Format("2006-01-02")

	stats := &domain.DashboardStats{}

	var err error
	if stats.OrdersToday, err = s.repo.CountOrdersSince(midnight); err != nil {
		return nil, err
	}
	if stats.ReservationsToday, err = s.repo.CountReservationsOn(today); err != nil {
		return nil, err
	}
	if stats.OccupiedTables, err = s.repo.CountOccupiedTables(); err != nil {
		return nil, err
	}

	stats.RevenueToday, err = s.revenue(ctx, today, midnight)
	if err != nil {
		return nil, err
	}

	if stats.RecentOrders, err = s.repo.RecentOrdersSince(midnight, recentLimit); err != nil {
		return nil, err
	}
	if stats.RecentReservations, err = s.repo.RecentReservationsOn(today, recentLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) revenue(ctx context.Context, today string, midnight time.Time) (decimal.Decimal, error) {
	if s.cache != nil {
		amount, found, err := s.cache.Revenue(ctx, today)
		if err != nil {
			log.WithError(err).Warn("Failed to read revenue counter, falling back to store")
		} else if found {
			return decimal.NewFromFloat(amount).Round(2), nil
		}
	}
	return s.repo.RevenueSince(midnight)
}

var _ StatsServiceInterface = (*StatsService)(nil)
