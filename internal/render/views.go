// Package render turns state snapshots into view descriptions. The
// functions here are pure: no I/O, no store access. A thin binder
// (text.go) applies the descriptions to the display surface.
package render

import (
	"fmt"
	"strings"

	"srinu_foods_client/internal/models"
)

// AuthView describes the header's auth region.
type AuthView struct {
	ShowAuthButtons bool
	ShowUserMenu    bool
	UserName        string
}

func Auth(sess models.Session) AuthView {
	if sess.LoggedIn() {
		return AuthView{ShowUserMenu: true, UserName: sess.User.DisplayName()}
	}
	return AuthView{ShowAuthButtons: true}
}

type MenuLine struct {
	ID       string
	Name     string
	Price    string
	Badge    string // VEG / NON-VEG
	Rating   string
	PrepTime string
}

type MenuView struct {
	Empty bool
	Lines []MenuLine
}

func Menu(items []models.MenuItem) MenuView {
	if len(items) == 0 {
		return MenuView{Empty: true}
	}

	view := MenuView{Lines: make([]MenuLine, 0, len(items))}
	for _, item := range items {
		badge := "NON-VEG"
		if item.IsVeg {
			badge = "VEG"
		}
		view.Lines = append(view.Lines, MenuLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    rupees(item.Price),
			Badge:    badge,
			Rating:   fmt.Sprintf("%.1f", item.Rating),
			PrepTime: fmt.Sprintf("%d mins", item.PreparationTime),
		})
	}
	return view
}

type CartLine struct {
	ItemID   string
	Name     string
	Quantity int
	Price    string
	LineSum  string
}

type CartView struct {
	Empty       bool
	Lines       []CartLine
	TotalItems  int
	Subtotal    string
	DeliveryFee string
	Total       string
}

func Cart(c models.Cart) CartView {
	if len(c.Items) == 0 {
		return CartView{Empty: true}
	}

	view := CartView{
		Lines:       make([]CartLine, 0, len(c.Items)),
		TotalItems:  c.TotalItems,
		Subtotal:    rupees(c.Subtotal),
		DeliveryFee: rupees(c.DeliveryFee),
		Total:       rupees(c.TotalAmount),
	}
	for _, item := range c.Items {
		view.Lines = append(view.Lines, CartLine{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    rupees(item.Price),
			LineSum:  rupees(item.Price * float64(item.Quantity)),
		})
	}
	return view
}

type OrderLine struct {
	ID          string
	OrderNumber string
	Status      string
	Customer    string
	Total       string
	CreatedAt   string
	NextAction  string // forward-moving shortcut, "" when none
}

type OrdersView struct {
	Empty bool
	Lines []OrderLine
}

func Orders(orders []models.Order) OrdersView {
	if len(orders) == 0 {
		return OrdersView{Empty: true}
	}

	view := OrdersView{Lines: make([]OrderLine, 0, len(orders))}
	for _, o := range orders {
		view.Lines = append(view.Lines, OrderLine{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      statusLabel(o.Status),
			Customer:    o.CustomerName,
			Total:       rupees(o.TotalAmount),
			CreatedAt:   o.CreatedAt,
			NextAction:  models.NextStatus(o.Status),
		})
	}
	return view
}

type StatsView struct {
	TotalOrders   string
	TodayOrders   string
	PendingOrders string
	TodayRevenue  string
	RecentOrders  OrdersView
}

func Stats(s models.DashboardStats) StatsView {
	return StatsView{
		TotalOrders:   fmt.Sprintf("%d", s.TotalOrders),
		TodayOrders:   fmt.Sprintf("%d", s.TodayOrders),
		PendingOrders: fmt.Sprintf("%d", s.PendingOrders),
		TodayRevenue:  rupees(s.TodayRevenue),
		RecentOrders:  Orders(s.RecentOrders),
	}
}

func rupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// statusLabel makes a status human readable: underscores become
// spaces.
func statusLabel(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}
