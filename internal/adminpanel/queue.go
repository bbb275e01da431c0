// Package adminpanel manages the dashboard's order queue and stats.
// Status transitions are never validated locally; the client forwards
// every request and defers to the server's acceptance or rejection.
package adminpanel

import (
	"context"
	"net/url"
	"sync"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/models"
)

type Queue struct {
	api *api.Client

	mu     sync.Mutex
	filter string
	orders []models.Order
	stats  models.DashboardStats
}

func NewQueue(client *api.Client) *Queue {
	return &Queue{api: client}
}

// LoadOrders fetches all orders, optionally narrowed to one status,
// and replaces the in-memory list wholesale. Overlapping loads apply
// in arrival order; the last response wins.
func (q *Queue) LoadOrders(ctx context.Context, statusFilter string) error {
	query := url.Values{}
	if statusFilter != "" {
		query.Set("status", statusFilter)
	}

	var resp struct {
		Orders []models.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	if err := q.api.Get(ctx, "/api/orders/admin/all/", query, &resp); err != nil {
		return err
	}

	q.mu.Lock()
	q.filter = statusFilter
	q.orders = resp.Orders
	q.mu.Unlock()
	return nil
}

// SetOrderStatus forwards a transition request regardless of the
// order's current status. On success both the order list and the stats
// are reloaded; on rejection the local list stays as it was until the
// next explicit reload.
func (q *Queue) SetOrderStatus(ctx context.Context, orderID, newStatus string) error {
	err := q.api.Put(ctx, "/api/orders/admin/"+orderID+"/update-status/", map[string]string{
		"status": newStatus,
	}, nil)
	if err != nil {
		return err
	}

	if err := q.LoadOrders(ctx, q.Filter()); err != nil {
		return err
	}
	return q.LoadStats(ctx)
}

// LoadStats refreshes the aggregate counters and the bounded
// recent-orders list. Everything is server-computed; nothing is summed
// locally.
func (q *Queue) LoadStats(ctx context.Context) error {
	var resp struct {
		Stats models.DashboardStats `json:"stats"`
	}
	if err := q.api.Get(ctx, "/api/orders/admin/dashboard/stats/", nil, &resp); err != nil {
		return err
	}

	q.mu.Lock()
	q.stats = resp.Stats
	q.mu.Unlock()
	return nil
}

func (q *Queue) Orders() []models.Order {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.Order, len(q.orders))
	copy(out, q.orders)
	return out
}

func (q *Queue) Stats() models.DashboardStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}

func (q *Queue) Filter() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.filter
}
