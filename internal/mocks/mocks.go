// Package mocks holds hand-maintained testify mocks for the repository and
// collaborator interfaces defined in internal/service.
package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"brasserie/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) CreateCategory(category *domain.Category) error {
	return m.Called(category).Error(0)
}

func (m *CatalogRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogRepository) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogRepository) DeleteCategory(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *CatalogRepository) ListDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	args := m.Called(filter)
	var r0 []domain.Dish
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Dish)
	}
	return r0, args.Error(1)
}

func (m *CatalogRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var r0 *domain.Dish
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Dish)
	}
	return r0, args.Error(1)
}

func (m *CatalogRepository) UpdateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *CatalogRepository) UpdateDishImage(id int, imageURL string) error {
	return m.Called(id, imageURL).Error(0)
}

func (m *CatalogRepository) DeleteDish(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func (m *TableRepository) CreateTable(table *domain.Table) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) ListTables() ([]domain.Table, error) {
	args := m.Called()
	var r0 []domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) ToggleTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) CountOccupiedTables() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) CreateReservation(res *domain.Reservation) error {
	return m.Called(res).Error(0)
}

func (m *ReservationRepository) GetReservation(id int) (*domain.Reservation, error) {
	args := m.Called(id)
	var r0 *domain.Reservation
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Reservation)
	}
	return r0, args.Error(1)
}

func (m *ReservationRepository) ListReservations(filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(filter)
	var r0 []domain.Reservation
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Reservation)
	}
	return r0, args.Error(1)
}

func (m *ReservationRepository) UpdateReservationStatus(id int, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *ReservationRepository) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func (m *StaffRepository) GetStaffByUsername(username string) (*domain.StaffUser, error) {
	args := m.Called(username)
	var r0 *domain.StaffUser
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.StaffUser)
	}
	return r0, args.Error(1)
}

func (m *StaffRepository) GetStaff(id int) (*domain.StaffUser, error) {
	args := m.Called(id)
	var r0 *domain.StaffUser
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.StaffUser)
	}
	return r0, args.Error(1)
}

func (m *StaffRepository) CreateStaff(u *domain.StaffUser) error {
	return m.Called(u).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) OpenOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) ListOrders(status string) ([]domain.Order, error) {
	args := m.Called(status)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) AddOrderItem(item *domain.OrderItem) error {
	return m.Called(item).Error(0)
}

func (m *OrderRepository) OrderTotal(orderID int) (decimal.Decimal, error) {
	args := m.Called(orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *OrderRepository) SetOrderStatus(orderID int, status string) error {
	return m.Called(orderID, status).Error(0)
}

func (m *OrderRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var r0 *domain.Dish
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Dish)
	}
	return r0, args.Error(1)
}

type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) CreateInvoice(inv *domain.Invoice) error {
	return m.Called(inv).Error(0)
}

func (m *InvoiceRepository) GetInvoice(id int) (*domain.Invoice, error) {
	args := m.Called(id)
	var r0 *domain.Invoice
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Invoice)
	}
	return r0, args.Error(1)
}

func (m *InvoiceRepository) ListInvoices() ([]domain.Invoice, error) {
	args := m.Called()
	var r0 []domain.Invoice
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Invoice)
	}
	return r0, args.Error(1)
}

func (m *InvoiceRepository) SumInvoices() (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *InvoiceRepository) OrderTotal(orderID int) (decimal.Decimal, error) {
	args := m.Called(orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *InvoiceRepository) SaveInvoiceQRCode(invoiceID int, qr []byte) error {
	return m.Called(invoiceID, qr).Error(0)
}

func (m *InvoiceRepository) GetInvoiceQRCode(invoiceID int) ([]byte, error) {
	args := m.Called(invoiceID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) CountOrdersSince(t time.Time) (int, error) {
	args := m.Called(t)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountReservationsOn(date string) (int, error) {
	args := m.Called(date)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountOccupiedTables() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) RevenueSince(t time.Time) (decimal.Decimal, error) {
	args := m.Called(t)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *StatsRepository) RecentOrdersSince(t time.Time, limit int) ([]domain.Order, error) {
	args := m.Called(t, limit)
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *StatsRepository) RecentReservationsOn(date string, limit int) ([]domain.Reservation, error) {
	args := m.Called(date, limit)
	var r0 []domain.Reservation
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Reservation)
	}
	return r0, args.Error(1)
}

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Put(ctx context.Context, token string, staffID int) error {
	return m.Called(ctx, token, staffID).Error(0)
}

func (m *SessionStore) Get(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type StatsCache struct {
	mock.Mock
}

func (m *StatsCache) IncrRevenue(ctx context.Context, date string, amount float64) error {
	return m.Called(ctx, date, amount).Error(0)
}

func (m *StatsCache) IncrInvoiceCount(ctx context.Context, date string) error {
	return m.Called(ctx, date).Error(0)
}

func (m *StatsCache) Revenue(ctx context.Context, date string) (float64, bool, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(invoiceID int) ([]byte, error) {
	args := m.Called(invoiceID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}
