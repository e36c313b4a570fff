// Package apitest provides an in-memory stand-in for the shop backend so
// client and controller tests can exercise the full load/submit/refresh
// loop without a real server. It applies the backend's authoritative rules:
// stock decrements, the debt ledger and report rows all live here.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Product mirrors the backend's product record.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// Customer mirrors the backend's customer record.
type Customer struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BorrowRecord mirrors one history entry.
type BorrowRecord struct {
	ProductName string    `json:"productName"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
}

// Batch mirrors one stock lot.
type Batch struct {
	ID                int64           `json:"id"`
	Product           string          `json:"product"`
	ProductID         int64           `json:"productId"`
	QuantityRemaining int64           `json:"quantityRemaining"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
}

type forcedFailure struct {
	status  int
	message string
}

// Server is the fake backend. Zero-value fields are usable after NewServer.
type Server struct {
	mu sync.Mutex

	Products  []Product
	Customers []Customer
	Batches   []Batch
	History   map[int64][]BorrowRecord

	ReportLines json.RawMessage
	Summary     json.RawMessage
	LineSeries  json.RawMessage
	PieSlices   json.RawMessage
	TopProducts json.RawMessage

	ExcelExport []byte
	PDFExport   []byte

	// SigningKey signs issued tokens; tokens are returned by login and
	// register and expire an hour out.
	SigningKey []byte

	nextID   int64
	failures map[string]forcedFailure
	requests map[string]int

	LastAuthorization  string
	LastIdempotencyKey string
}

// NewServer returns a fake backend with empty state.
func NewServer() *Server {
	return &Server{
		History:     map[int64][]BorrowRecord{},
		ReportLines: json.RawMessage("[]"),
		Summary:     json.RawMessage("{}"),
		LineSeries:  json.RawMessage("[]"),
		PieSlices:   json.RawMessage("[]"),
		TopProducts: json.RawMessage("[]"),
		ExcelExport: []byte("excel-bytes"),
		PDFExport:   []byte("pdf-bytes"),
		SigningKey:  []byte("apitest-secret"),
		nextID:      1000,
		failures:    map[string]forcedFailure{},
		requests:    map[string]int{},
	}
}

// FailWith forces every request to method+path to fail with the given
// status and error message until cleared.
func (s *Server) FailWith(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = forcedFailure{status: status, message: message}
}

// ClearFailures removes all forced failures.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = map[string]forcedFailure{}
}

// RequestCount returns how many requests hit method+path.
func (s *Server) RequestCount(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

// IssueToken returns a signed token the way login does, expiring an hour
// from now.
func (s *Server) IssueToken(name string) string {
	claims := jwt.MapClaims{
		"name": name,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.SigningKey)
	if err != nil {
		panic(fmt.Sprintf("apitest: sign token: %v", err))
	}
	return token
}

// Handler returns the router implementing the backend surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Get("/products", s.listProducts)
	r.Post("/products", s.createProduct)

	r.Get("/customers", s.listCustomers)
	r.Get("/customers/debtors", s.listDebtors)
	r.Get("/customers/{id}/history", s.customerHistory)
	r.Post("/customers/credit-sale", s.creditSale)
	r.Post("/customers/pay-debt", s.payDebt)
	r.Post("/customers/borrow", s.borrow)

	r.Get("/replenish", s.listBatches)
	r.Post("/replenish", s.createBatch)

	r.Post("/sales", s.recordSale)

	r.Get("/reports/products", s.raw(&s.ReportLines))
	r.Get("/reports/export/excel", s.blob(&s.ExcelExport, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	r.Get("/reports/export/pdf", s.blob(&s.PDFExport, "application/pdf"))

	r.Get("/dashboard/summary", s.raw(&s.Summary))
	r.Get("/dashboard/line", s.raw(&s.LineSeries))
	r.Get("/dashboard/pie", s.raw(&s.PieSlices))
	r.Get("/dashboard/products", s.raw(&s.TopProducts))

	r.Post("/auth/login", s.login)
	r.Post("/auth/register", s.login)
	r.Post("/auth/forgot-password", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.Method+" "+r.URL.Path]++
		s.LastAuthorization = r.Header.Get("Authorization")
		if key := r.Header.Get("Idempotency-Key"); key != "" {
			s.LastIdempotencyKey = key
		}
		failure, forced := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if forced {
			writeError(w, failure.status, failure.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Products)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req Product
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed product")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.allocID()
	s.Products = append(s.Products, req)
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) listCustomers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Customers)
}

func (s *Server) listDebtors(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debtors := make([]Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		if c.Balance.Sign() > 0 {
			debtors = append(debtors, c)
		}
	}
	writeJSON(w, http.StatusOK, debtors)
}

func (s *Server) customerHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad customer id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.History[id]
	if records == nil {
		records = []BorrowRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) creditSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string          `json:"name"`
		ProductID  int64           `json:"productId"`
		Quantity   int64           `json:"quantity"`
		AmountPaid decimal.Decimal `json:"amountPaid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed credit sale")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.product(req.ProductID)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if req.Quantity > product.Quantity {
		writeError(w, http.StatusBadRequest, "insufficient stock")
		return
	}
	product.Quantity -= req.Quantity

	total := product.SellingPrice.Mul(decimal.NewFromInt(req.Quantity))
	balance := total.Sub(req.AmountPaid)
	if balance.Sign() < 0 {
		balance = decimal.Zero
	}
	customer := Customer{ID: s.allocID(), Name: req.Name, Balance: balance}
	s.Customers = append(s.Customers, customer)
	s.History[customer.ID] = append(s.History[customer.ID], BorrowRecord{
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Date:        time.Now(),
	})
	writeJSON(w, http.StatusCreated, customer)
}

func (s *Server) payDebt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID int64           `json:"customerId"`
		Amount     decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payment")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customer(req.CustomerID)
	if customer == nil {
		writeError(w, http.StatusNotFound, "customer not found")
		return
	}
	if req.Amount.Sign() <= 0 || req.Amount.GreaterThan(customer.Balance) {
		writeError(w, http.StatusBadRequest, "cannot pay more than balance")
		return
	}
	customer.Balance = customer.Balance.Sub(req.Amount)
	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) borrow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID int64 `json:"customerId"`
		ProductID  int64 `json:"productId"`
		Quantity   int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed borrow")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customer(req.CustomerID)
	product := s.product(req.ProductID)
	if customer == nil || product == nil {
		writeError(w, http.StatusNotFound, "customer or product not found")
		return
	}
	if req.Quantity > product.Quantity {
		writeError(w, http.StatusBadRequest, "insufficient stock")
		return
	}
	product.Quantity -= req.Quantity
	customer.Balance = customer.Balance.Add(product.SellingPrice.Mul(decimal.NewFromInt(req.Quantity)))
	s.History[customer.ID] = append(s.History[customer.ID], BorrowRecord{
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Date:        time.Now(),
	})
	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) listBatches(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Batches)
}

func (s *Server) createBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID    int64           `json:"productId"`
		Quantity     int64           `json:"quantity"`
		CostPrice    decimal.Decimal `json:"costPrice"`
		SellingPrice decimal.Decimal `json:"sellingPrice"`
		ExpiryDate   *time.Time      `json:"expiryDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed batch")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.product(req.ProductID)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	product.Quantity += req.Quantity
	batch := Batch{
		ID:                s.allocID(),
		Product:           product.Name,
		ProductID:         req.ProductID,
		QuantityRemaining: req.Quantity,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		ExpiryDate:        req.ExpiryDate,
	}
	s.Batches = append(s.Batches, batch)
	writeJSON(w, http.StatusCreated, batch)
}

func (s *Server) recordSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID    int64            `json:"productId"`
		Quantity     int64            `json:"quantity"`
		CustomerID   *int64           `json:"customerId"`
		CreditAmount *decimal.Decimal `json:"creditAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed sale")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.product(req.ProductID)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if req.Quantity > product.Quantity {
		writeError(w, http.StatusBadRequest, "insufficient stock")
		return
	}
	product.Quantity -= req.Quantity

	qty := decimal.NewFromInt(req.Quantity)
	revenue := product.SellingPrice.Mul(qty)
	profit := revenue.Sub(product.CostPrice.Mul(qty))

	if req.CustomerID != nil && req.CreditAmount != nil {
		if customer := s.customer(*req.CustomerID); customer != nil {
			customer.Balance = customer.Balance.Add(*req.CreditAmount)
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        s.allocID(),
		"productId": req.ProductID,
		"quantity":  req.Quantity,
		"revenue":   revenue,
		"profit":    profit,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed credentials")
		return
	}
	name := req.Name
	if name == "" {
		name = req.Email
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": s.IssueToken(name)})
}

func (s *Server) raw(payload *json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(*payload)
	}
}

func (s *Server) blob(payload *[]byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(*payload)
	}
}

func (s *Server) product(id int64) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

func (s *Server) customer(id int64) *Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
