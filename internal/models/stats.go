package models

// DashboardStats are server-computed aggregates; the client performs
// no accumulation of its own.
type DashboardStats struct {
	TotalOrders     int     `json:"total_orders"`
	TodayOrders     int     `json:"today_orders"`
	PendingOrders   int     `json:"pending_orders"`
	PreparingOrders int     `json:"preparing_orders"`
	TodayRevenue    float64 `json:"today_revenue"`
	RecentOrders    []Order `json:"recent_orders"`
}
