package debtors

import (
	"context"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the customer endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the customer API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// ListCustomers fetches every customer.
func (a *API) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := a.client.Get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ListDebtors fetches customers with an outstanding balance.
func (a *API) ListDebtors(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := a.client.Get(ctx, "/customers/debtors", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// History fetches one customer's borrow history.
func (a *API) History(ctx context.Context, customerID int64) ([]BorrowRecord, error) {
	var records []BorrowRecord
	path := fmt.Sprintf("/customers/%d/history", customerID)
	if err := a.client.Get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreditSale creates a debt via a sale to a new customer.
func (a *API) CreditSale(ctx context.Context, req CreditSaleRequest) (*Customer, error) {
	var customer Customer
	if err := a.client.Post(ctx, "/customers/credit-sale", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// PayDebt reduces a customer's balance.
func (a *API) PayDebt(ctx context.Context, req PayDebtRequest) error {
	return a.client.Post(ctx, "/customers/pay-debt", req, nil)
}

// Borrow increases a customer's balance via additional borrowing.
func (a *API) Borrow(ctx context.Context, req BorrowRequest) error {
	return a.client.Post(ctx, "/customers/borrow", req, nil)
}

// Find returns the customer with the given id from an already fetched list.
func Find(customers []Customer, id int64) *Customer {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}
