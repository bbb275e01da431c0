// Package orders submits checkouts and reads order history; both are
// thin, validated passes over the API.
package orders

import (
	"context"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/cart"
	"srinu_foods_client/internal/models"
	"srinu_foods_client/internal/session"
)

type DeliveryInfo struct {
	Address             string `json:"delivery_address"`
	Phone               string `json:"phone"`
	PaymentMethod       string `json:"payment_method"`
	SpecialInstructions string `json:"special_instructions"`
}

type Workflow struct {
	api     *api.Client
	session *session.Manager
	cart    *cart.Synchronizer
}

func NewWorkflow(client *api.Client, sess *session.Manager, basket *cart.Synchronizer) *Workflow {
	return &Workflow{api: client, session: sess, cart: basket}
}

// Checkout validates locally, submits the order, and on success clears
// the local cart display — the server has already emptied the cart.
// A server rejection leaves everything unchanged so the user can retry.
func (w *Workflow) Checkout(ctx context.Context, info DeliveryInfo) (models.OrderConfirmation, error) {
	if !w.session.LoggedIn() {
		return models.OrderConfirmation{}, session.ErrNoSession
	}
	if info.Address == "" || info.Phone == "" {
		return models.OrderConfirmation{}, api.Validation("Please fill in required fields")
	}
	if info.PaymentMethod == "" {
		info.PaymentMethod = "cod"
	}

	var resp struct {
		Order models.OrderConfirmation `json:"order"`
	}
	if err := w.api.Post(ctx, "/api/orders/create/", info, &resp); err != nil {
		return models.OrderConfirmation{}, err
	}

	w.cart.Reset()
	return resp.Order, nil
}

// ListMine fetches the caller's order history, newest first.
func (w *Workflow) ListMine(ctx context.Context) ([]models.Order, error) {
	if !w.session.LoggedIn() {
		return nil, session.ErrNoSession
	}

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := w.api.Get(ctx, "/api/orders/my-orders/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// Get fetches one order. The server enforces ownership; admins may
// fetch any order.
func (w *Workflow) Get(ctx context.Context, orderID string) (models.Order, error) {
	if !w.session.LoggedIn() {
		return models.Order{}, session.ErrNoSession
	}

	var resp struct {
		Order models.Order `json:"order"`
	}
	if err := w.api.Get(ctx, "/api/orders/"+orderID+"/", nil, &resp); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}
