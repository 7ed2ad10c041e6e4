package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. No transition graph is enforced: staff may correct a
// status manually, PAID is normally reached through invoice generation.
const (
	OrderOpen   = "OPEN"
	OrderReady  = "READY"
	OrderServed = "SERVED"
	OrderPaid   = "PAID"
)

// Reservation statuses, driven externally by staff.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"
)

// Payment methods accepted at invoice generation.
const (
	PayCash        = "CASH"
	PayCard        = "CARD"
	PayMobileMoney = "MOBILE_MONEY"
)

// TaxRate is the flat VAT rate applied to every invoice.
var TaxRate = decimal.RequireFromString("0.18")

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Dishes      []Dish `json:"dishes,omitempty"`
}

type Dish struct {
	ID          int             `json:"id"`
	CategoryID  int             `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Table struct {
	ID        int  `json:"id"`
	Number    int  `json:"number"`
	Capacity  int  `json:"capacity"`
	Available bool `json:"available"`
}

type Reservation struct {
	ID          int       `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email"`
	TableID     int       `json:"table_id"`
	TableNumber int       `json:"table_number,omitempty"`
	PartySize   int       `json:"party_size"`
	ReservedFor time.Time `json:"reserved_for"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type StaffUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID          int         `json:"id"`
	TableID     int         `json:"table_id"`
	TableNumber int         `json:"table_number,omitempty"`
	ServerID    *int        `json:"server_id"`
	ServerName  string      `json:"server_name,omitempty"`
	Status      string      `json:"status"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items,omitempty"`
}

// Total sums quantity x unit price over the loaded items. It is recomputed
// on every call, never cached.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type OrderItem struct {
	ID       int    `json:"id"`
	OrderID  int    `json:"order_id"`
	DishID   int    `json:"dish_id"`
	DishName string `json:"dish_name,omitempty"`
	Quantity int    `json:"quantity"`
	// UnitPrice is snapshotted from the dish price when the item is added;
	// later dish price changes do not touch it.
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Invoice keeps the legacy francophone wire field names: downstream billing
// tooling reads numero_facture, montant_total, tva, montant_ttc.
type Invoice struct {
	ID            int             `json:"id"`
	OrderID       int             `json:"commande_id"`
	TableNumber   int             `json:"table_number,omitempty"`
	Number        string          `json:"numero_facture"`
	PreTax        decimal.Decimal `json:"montant_total"`
	Tax           decimal.Decimal `json:"tva"`
	Total         decimal.Decimal `json:"montant_ttc"`
	PaymentMethod string          `json:"methode_paiement"`
	IssuedAt      time.Time       `json:"date_emission"`
	// Paid is a separate later payment-confirmation signal; generating the
	// invoice marks the order PAID but leaves this false.
	Paid bool `json:"payee"`
}

// DashboardStats is the staff landing-page snapshot for the current day.
type DashboardStats struct {
	OrdersToday        int             `json:"orders_today"`
	ReservationsToday  int             `json:"reservations_today"`
	RevenueToday       decimal.Decimal `json:"revenue_today"`
	OccupiedTables     int             `json:"occupied_tables"`
	RecentOrders       []Order         `json:"recent_orders"`
	RecentReservations []Reservation   `json:"recent_reservations"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderOpen, OrderReady, OrderServed, OrderPaid:
		return true
	}
	return false
}

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

func ValidPaymentMethod(s string) bool {
	switch s {
	case PayCash, PayCard, PayMobileMoney:
		return true
	}
	return false
}
