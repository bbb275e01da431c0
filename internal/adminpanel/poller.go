package adminpanel

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Poller refreshes the dashboard on a fixed cadence, the system's only
// autonomous control flow. It does not pause for in-flight requests,
// so a tick can overlap a manual refresh; results land in arrival
// order.
type Poller struct {
	queue        *Queue
	interval     time.Duration
	ordersActive atomic.Bool
}

func NewPoller(queue *Queue, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{queue: queue, interval: interval}
}

// SetOrdersActive marks whether the order list is the active view;
// when it is, ticks refresh the list alongside the stats.
func (p *Poller) SetOrdersActive(active bool) {
	p.ordersActive.Store(active)
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	if err := p.queue.LoadStats(ctx); err != nil {
		log.Printf("❌ Dashboard stats refresh failed: %v", err)
	}
	if p.ordersActive.Load() {
		if err := p.queue.LoadOrders(ctx, p.queue.Filter()); err != nil {
			log.Printf("❌ Order list refresh failed: %v", err)
		}
	}
}
