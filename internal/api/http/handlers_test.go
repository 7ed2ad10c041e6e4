package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	httpapi "brasserie/internal/api/http"
	"brasserie/internal/domain"
	"brasserie/internal/mocks"
	"brasserie/internal/service"
)

type testEnv struct {
	catalog      *mocks.CatalogRepository
	tables       *mocks.TableRepository
	reservations *mocks.ReservationRepository
	staff        *mocks.StaffRepository
	orders       *mocks.OrderRepository
	invoices     *mocks.InvoiceRepository
	stats        *mocks.StatsRepository
	sessions     *mocks.SessionStore
	cache        *mocks.StatsCache
	server       http.Handler
}

// newTestEnv wires real services over repository mocks, mirroring the
// production composition in main.
func newTestEnv() *testEnv {
	env := &testEnv{
		catalog:      new(mocks.CatalogRepository),
		tables:       new(mocks.TableRepository),
		reservations: new(mocks.ReservationRepository),
		staff:        new(mocks.StaffRepository),
		orders:       new(mocks.OrderRepository),
		invoices:     new(mocks.InvoiceRepository),
		stats:        new(mocks.StatsRepository),
		sessions:     new(mocks.SessionStore),
		cache:        new(mocks.StatsCache),
	}

	handler := httpapi.NewHandler(
		service.NewCatalogService(env.catalog),
		service.NewTableService(env.tables),
		service.NewReservationService(env.reservations),
		service.NewOrderService(env.orders, nil),
		service.NewInvoiceService(env.invoices, nil, nil),
		service.NewAuthService(env.staff, env.sessions),
		service.NewStatsService(env.stats, env.cache),
	)
	env.server = httpapi.NewRouter(handler)
	return env
}

// authorize makes the bearer token "tok" resolve to staff user 1 for any
// number of requests.
func (env *testEnv) authorize() {
	env.sessions.On("Get", mock.Anything, "tok").Return(1, nil)
	env.staff.On("GetStaff", 1).Return(&domain.StaffUser{ID: 1, Username: "serveur1"}, nil)
}

func (env *testEnv) do(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	env.server.ServeHTTP(recorder, req)
	return recorder
}

func TestManagementRoutesRequireAuth(t *testing.T) {
	env := newTestEnv()

	for _, target := range []string{"/api/dashboard", "/api/tables", "/api/orders", "/api/invoices"} {
		recorder := env.do(http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, target)
		assert.Contains(t, recorder.Body.String(), "Authentication required")
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	env.staff.On("GetStaffByUsername", "serveur1").
		Return(&domain.StaffUser{ID: 1, Username: "serveur1", PasswordHash: string(hash)}, nil).Once()
	env.sessions.On("Put", mock.Anything, mock.AnythingOfType("string"), 1).Return(nil).Once()

	recorder := env.do(http.MethodPost, "/api/login", "", map[string]string{
		"username": "serveur1",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.NotEmpty(t, payload.Token)

	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, payload.Token, cookies[0].Value)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv()

	env.staff.On("GetStaffByUsername", "serveur1").Return(nil, domain.ErrNotFound).Once()

	recorder := env.do(http.MethodPost, "/api/login", "", map[string]string{
		"username": "serveur1",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetMenuIsPublic(t *testing.T) {
	env := newTestEnv()

	env.catalog.On("ListCategories").Return([]domain.Category{{ID: 1, Name: "Entrées"}}, nil).Once()
	env.catalog.On("ListDishes", domain.DishFilter{CategoryID: 1, Search: "salade", OnlyAvailable: true}).
		Return([]domain.Dish{{ID: 1, Name: "Salade César"}}, nil).Once()

	recorder := env.do(http.MethodGet, "/api/menu?categorie=1&search=salade", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Categories []domain.Category `json:"categories"`
		Dishes     []domain.Dish     `json:"dishes"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.Len(t, payload.Categories, 1)
	assert.Len(t, payload.Dishes, 1)
	env.catalog.AssertExpectations(t)
}

func TestCreateReservationIsPublic(t *testing.T) {
	env := newTestEnv()

	env.reservations.On("GetTable", 3).Return(&domain.Table{ID: 3, Number: 3}, nil).Once()
	env.reservations.On("CreateReservation", mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()

	recorder := env.do(http.MethodPost, "/api/reservations", "", map[string]interface{}{
		"client_name":  "Awa Diop",
		"client_phone": "+221770000000",
		"table_id":     3,
		"party_size":   4,
		"reserved_for": "2026-09-01T20:00:00Z",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	env.reservations.AssertExpectations(t)
}

func TestOpenOrderCreated(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.orders.On("OpenOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once().
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*domain.Order)
			order.ID = 42
			assert.Equal(t, 3, order.TableID)
			assert.Equal(t, 1, *order.ServerID)
		})

	recorder := env.do(http.MethodPost, "/api/tables/3/orders", "tok", map[string]string{"notes": "fenêtre"})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var order domain.Order
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&order))
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, domain.OrderOpen, order.Status)
	env.orders.AssertExpectations(t)
}

func TestOpenOrderOccupiedTableConflicts(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.orders.On("OpenOrder", mock.AnythingOfType("*domain.Order")).
		Return(domain.ErrTableUnavailable).Once()

	recorder := env.do(http.MethodPost, "/api/tables/3/orders", "tok", nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestAddOrderItemReturnsRunningTotal(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	dish := &domain.Dish{ID: 2, Name: "Poulet braisé", Price: decimal.NewFromInt(5000)}
	env.orders.On("GetOrder", 1).Return(&domain.Order{ID: 1}, nil).Once()
	env.orders.On("GetDish", 2).Return(dish, nil).Once()
	env.orders.On("AddOrderItem", mock.AnythingOfType("*domain.OrderItem")).Return(nil).Once()
	env.orders.On("OrderTotal", 1).Return(decimal.NewFromInt(10000), nil).Once()

	recorder := env.do(http.MethodPost, "/api/orders/1/items", "tok", map[string]interface{}{
		"dish_id":  2,
		"quantity": 2,
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var payload struct {
		Item  domain.OrderItem `json:"item"`
		Total decimal.Decimal  `json:"total"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.True(t, payload.Item.UnitPrice.Equal(decimal.NewFromInt(5000)))
	assert.True(t, payload.Total.Equal(decimal.NewFromInt(10000)))
	env.orders.AssertExpectations(t)
}

func TestAddOrderItemNegativeQuantityRejected(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	recorder := env.do(http.MethodPost, "/api/orders/1/items", "tok", map[string]interface{}{
		"dish_id":  2,
		"quantity": -2,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env.orders.AssertNotCalled(t, "AddOrderItem", mock.Anything)
}

func TestGenerateInvoice(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.invoices.On("OrderTotal", 1).Return(decimal.NewFromInt(10000), nil).Once()
	env.invoices.On("CreateInvoice", mock.AnythingOfType("*domain.Invoice")).Return(nil).Once().
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Invoice).ID = 5
		})

	recorder := env.do(http.MethodPost, "/api/orders/1/invoice", "tok", map[string]string{
		"methode_paiement": "CASH",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.Equal(t, "11800", payload["montant_ttc"])
	assert.Equal(t, "1800", payload["tva"])
	assert.Equal(t, "CASH", payload["methode_paiement"])
	assert.Equal(t, false, payload["payee"])
	assert.Contains(t, payload["numero_facture"], "FAC-")
	env.invoices.AssertExpectations(t)
}

func TestGenerateInvoiceTwiceConflicts(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.invoices.On("OrderTotal", 1).Return(decimal.NewFromInt(10000), nil).Once()
	env.invoices.On("CreateInvoice", mock.AnythingOfType("*domain.Invoice")).
		Return(domain.ErrInvoiceExists).Once()

	recorder := env.do(http.MethodPost, "/api/orders/1/invoice", "tok", map[string]string{
		"methode_paiement": "CARD",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGenerateInvoiceUnknownPaymentMethod(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	recorder := env.do(http.MethodPost, "/api/orders/1/invoice", "tok", map[string]string{
		"methode_paiement": "CHEQUE",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env.invoices.AssertNotCalled(t, "CreateInvoice", mock.Anything)
}

func TestGetInvoiceQRCode(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.invoices.On("GetInvoiceQRCode", 5).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil).Once()

	recorder := env.do(http.MethodGet, "/api/invoices/5/qrcode", "tok", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, recorder.Body.Bytes())
}

func TestGetTablesSplitsAvailability(t *testing.T) {
	env := newTestEnv()
	env.authorize()

	env.tables.On("ListTables").Return([]domain.Table{
		{ID: 1, Number: 1, Available: true},
		{ID: 2, Number: 2, Available: false},
	}, nil).Once()

	recorder := env.do(http.MethodGet, "/api/tables", "tok", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Tables    []domain.Table `json:"tables"`
		Available []domain.Table `json:"available"`
		Occupied  []domain.Table `json:"occupied"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.Len(t, payload.Tables, 2)
	assert.Len(t, payload.Available, 1)
	assert.Len(t, payload.Occupied, 1)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}
