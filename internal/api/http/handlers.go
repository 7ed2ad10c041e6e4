package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"brasserie/internal/domain"
	"brasserie/internal/service"
)

type Handler struct {
	Catalog      service.CatalogServiceInterface
	Tables       service.TableServiceInterface
	Reservations service.ReservationServiceInterface
	Orders       service.OrderServiceInterface
	Invoices     service.InvoiceServiceInterface
	Auth         service.AuthServiceInterface
	Stats        service.StatsServiceInterface
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	tables service.TableServiceInterface,
	reservations service.ReservationServiceInterface,
	orders service.OrderServiceInterface,
	invoices service.InvoiceServiceInterface,
	auth service.AuthServiceInterface,
	stats service.StatsServiceInterface,
) *Handler {
	return &Handler{
		Catalog:      catalog,
		Tables:       tables,
		Reservations: reservations,
		Orders:       orders,
		Invoices:     invoices,
		Auth:         auth,
		Stats:        stats,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Public surface: menu browsing, reservations, login.
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")

	// Everything below requires a staff session.
	m := r.PathPrefix("/api").Subrouter()
	m.Use(h.RequireAuth)

	m.HandleFunc("/dashboard", h.getDashboard).Methods("GET")

	m.HandleFunc("/tables", h.getTables).Methods("GET")
	m.HandleFunc("/tables", h.createTable).Methods("POST")
	m.HandleFunc("/tables/{id}/toggle", h.toggleTable).Methods("POST")

	m.HandleFunc("/admin/reservations", h.listReservations).Methods("GET")
	m.HandleFunc("/admin/reservations/{id}/status", h.updateReservationStatus).Methods("PUT")

	m.HandleFunc("/admin/dishes", h.listAllDishes).Methods("GET")
	m.HandleFunc("/categories", h.createCategory).Methods("POST")
	m.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")
	m.HandleFunc("/dishes", h.createDish).Methods("POST")
	m.HandleFunc("/dishes/{id}", h.updateDish).Methods("PUT")
	m.HandleFunc("/dishes/{id}", h.deleteDish).Methods("DELETE")
	m.HandleFunc("/dishes/{id}/image", h.uploadDishImage).Methods("POST")

	m.HandleFunc("/orders", h.listOrders).Methods("GET")
	m.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	m.HandleFunc("/tables/{id}/orders", h.openOrder).Methods("POST")
	m.HandleFunc("/orders/{id}/items", h.addOrderItem).Methods("POST")
	m.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	m.HandleFunc("/invoices", h.listInvoices).Methods("GET")
	m.HandleFunc("/invoices/{id}", h.getInvoice).Methods("GET")
	m.HandleFunc("/invoices/{id}/qrcode", h.getInvoiceQRCode).Methods("GET")
	m.HandleFunc("/orders/{id}/invoice", h.generateInvoice).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "brasserie",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError translates the domain error taxonomy into HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrTableUnavailable),
		errors.Is(err, domain.ErrTableNumberTaken),
		errors.Is(err, domain.ErrInvoiceExists),
		errors.Is(err, domain.ErrInvoiceNumberTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrAuthRequired):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// --- auth ---

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, staff, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"staff": staff,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), sessionToken(r)); err != nil {
		writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

// --- menu ---

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("categorie"))
	filter := domain.DishFilter{
		CategoryID:    categoryID,
		Search:        r.URL.Query().Get("search"),
		OnlyAvailable: true,
	}

	categories, dishes, err := h.Catalog.Menu(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"dishes":     dishes,
	})
}

func (h *Handler) listAllDishes(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("categorie"))
	filter := domain.DishFilter{
		CategoryID: categoryID,
		Search:     r.URL.Query().Get("search"),
	}

	categories, dishes, err := h.Catalog.Menu(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"dishes":     dishes,
	})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateCategory(&category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Catalog.DeleteCategory(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.Available = true
	if err := h.Catalog.CreateDish(&dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = pathID(r)
	if err := h.Catalog.UpdateDish(&dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Catalog.DeleteDish(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request) {
	dishID := pathID(r)
	if _, err := h.Catalog.GetDish(dishID); err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	if !allowedTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	uploadDir := "./uploads"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}

	filename := "dish_" + strconv.Itoa(dishID) + "_" + header.Filename
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Catalog.UpdateDishImage(dishID, imageURL); err != nil {
		http.Error(w, "Failed to update dish", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

// --- tables ---

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List()
	if err != nil {
		writeError(w, err)
		return
	}

	available := []domain.Table{}
	occupied := []domain.Table{}
	for _, t := range tables {
		if t.Available {
			available = append(available, t)
		} else {
			occupied = append(occupied, t)
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tables":    tables,
		"available": available,
		"occupied":  occupied,
	})
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table.Available = true
	if err := h.Tables.Create(&table); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) toggleTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Toggle(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// --- reservations ---

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Reservations.Create(&res); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReservationFilter{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("statut"),
	}
	reservations, err := h.Reservations.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Reservations.UpdateStatus(pathID(r), req.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- orders ---

func (h *Handler) openOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	staff := staffFromContext(r.Context())
	order, err := h.Orders.Open(r.Context(), pathID(r), staff.ID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
		"total": order.Total(),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.URL.Query().Get("statut"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) addOrderItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DishID    int             `json:"dish_id"`
		Quantity  int             `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unit_price"`
		Notes     string          `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	orderID := pathID(r)
	item, err := h.Orders.AddItem(r.Context(), orderID, req.DishID, req.Quantity, req.UnitPrice, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	total, err := h.Orders.Total(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"item":  item,
		"total": total,
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.SetStatus(pathID(r), req.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- invoices ---

func (h *Handler) generateInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod string `json:"methode_paiement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice, err := h.Invoices.Generate(r.Context(), pathID(r), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.Invoices.Get(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, total, err := h.Invoices.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"total":    total,
	})
}

func (h *Handler) getInvoiceQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Invoices.GetQRCode(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

// --- dashboard ---

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
