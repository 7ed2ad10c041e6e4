package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"brasserie/internal/domain"
)

type CatalogRepository interface {
	CreateCategory(category *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	DeleteCategory(id int) (int64, error)
	CreateDish(dish *domain.Dish) error
	ListDishes(filter domain.DishFilter) ([]domain.Dish, error)
	GetDish(id int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	UpdateDishImage(id int, imageURL string) error
	DeleteDish(id int) (int64, error)
}

type TableRepository interface {
	CreateTable(table *domain.Table) error
	ListTables() ([]domain.Table, error)
	GetTable(id int) (*domain.Table, error)
	ToggleTable(id int) (*domain.Table, error)
	CountOccupiedTables() (int, error)
}

type ReservationRepository interface {
	CreateReservation(res *domain.Reservation) error
	GetReservation(id int) (*domain.Reservation, error)
	ListReservations(filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateReservationStatus(id int, status string) error
	GetTable(id int) (*domain.Table, error)
}

type StaffRepository interface {
	GetStaffByUsername(username string) (*domain.StaffUser, error)
	GetStaff(id int) (*domain.StaffUser, error)
	CreateStaff(u *domain.StaffUser) error
}

type OrderRepository interface {
	OpenOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(status string) ([]domain.Order, error)
	AddOrderItem(item *domain.OrderItem) error
	OrderTotal(orderID int) (decimal.Decimal, error)
	SetOrderStatus(orderID int, status string) error
	GetDish(id int) (*domain.Dish, error)
}

type InvoiceRepository interface {
	CreateInvoice(inv *domain.Invoice) error
	GetInvoice(id int) (*domain.Invoice, error)
	ListInvoices() ([]domain.Invoice, error)
	SumInvoices() (decimal.Decimal, error)
	OrderTotal(orderID int) (decimal.Decimal, error)
	SaveInvoiceQRCode(invoiceID int, qr []byte) error
	GetInvoiceQRCode(invoiceID int) ([]byte, error)
}

type StatsRepository interface {
	CountOrdersSince(t time.Time) (int, error)
	CountReservationsOn(date string) (int, error)
	CountOccupiedTables() (int, error)
	RevenueSince(t time.Time) (decimal.Decimal, error)
	RecentOrdersSince(t time.Time, limit int) ([]domain.Order, error)
	RecentReservationsOn(date string, limit int) ([]domain.Reservation, error)
}

type SessionStore interface {
	Put(ctx context.Context, token string, staffID int) error
	Get(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.OrderEvent) error
}

type StatsCache interface {
	IncrRevenue(ctx context.Context, date string, amount float64) error
	IncrInvoiceCount(ctx context.Context, date string) error
	Revenue(ctx context.Context, date string) (float64, bool, error)
}

type QRGenerator interface {
	Generate(invoiceID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	Menu(filter domain.DishFilter) ([]domain.Category, []domain.Dish, error)
	CreateCategory(category *domain.Category) error
	DeleteCategory(id int) (int64, error)
	CreateDish(dish *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	UpdateDishImage(id int, imageURL string) error
	DeleteDish(id int) (int64, error)
}

type TableServiceInterface interface {
	Create(table *domain.Table) error
	List() ([]domain.Table, error)
	Toggle(id int) (*domain.Table, error)
}

type ReservationServiceInterface interface {
	Create(res *domain.Reservation) error
	Get(id int) (*domain.Reservation, error)
	List(filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateStatus(id int, status string) error
}

type OrderServiceInterface interface {
	Open(ctx context.Context, tableID, serverID int, notes string) (*domain.Order, error)
	AddItem(ctx context.Context, orderID, dishID, quantity int, unitPrice decimal.Decimal, notes string) (*domain.OrderItem, error)
	Get(orderID int) (*domain.Order, error)
	List(status string) ([]domain.Order, error)
	Total(orderID int) (decimal.Decimal, error)
	SetStatus(orderID int, status string) error
}

type InvoiceServiceInterface interface {
	Generate(ctx context.Context, orderID int, paymentMethod string) (*domain.Invoice, error)
	Get(id int) (*domain.Invoice, error)
	List() ([]domain.Invoice, decimal.Decimal, error)
	GetQRCode(id int) ([]byte, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.StaffUser, error)
}

type StatsServiceInterface interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
