package render

import (
	"fmt"
	"io"
)

// The text binder: writes view descriptions to a terminal. Kept apart
// from the view builders so the state logic stays testable without any
// display surface.

func WriteAuth(w io.Writer, v AuthView) {
	if v.ShowUserMenu {
		fmt.Fprintf(w, "Logged in as %s\n", v.UserName)
		return
	}
	fmt.Fprintln(w, "Not logged in — use 'login' or 'register'")
}

func WriteMenu(w io.Writer, v MenuView) {
	if v.Empty {
		fmt.Fprintln(w, "No items found")
		return
	}
	for _, line := range v.Lines {
		fmt.Fprintf(w, "%-10s %-24s %9s  %-7s ★%s  %s\n",
			line.ID, line.Name, line.Price, line.Badge, line.Rating, line.PrepTime)
	}
}

func WriteCart(w io.Writer, v CartView) {
	if v.Empty {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}
	for _, line := range v.Lines {
		fmt.Fprintf(w, "%-24s x%-3d %9s\n", line.Name, line.Quantity, line.LineSum)
	}
	fmt.Fprintf(w, "Subtotal:     %s\n", v.Subtotal)
	fmt.Fprintf(w, "Delivery fee: %s\n", v.DeliveryFee)
	fmt.Fprintf(w, "Total:        %s (%d items)\n", v.Total, v.TotalItems)
}

func WriteOrders(w io.Writer, v OrdersView) {
	if v.Empty {
		fmt.Fprintln(w, "No orders found")
		return
	}
	for _, line := range v.Lines {
		fmt.Fprintf(w, "#%-10s %-16s %9s  %-20s %s\n",
			line.OrderNumber, line.Status, line.Total, line.Customer, line.CreatedAt)
		if line.NextAction != "" {
			fmt.Fprintf(w, "    → status %s %s\n", line.ID, line.NextAction)
		}
	}
}

func WriteStats(w io.Writer, v StatsView) {
	fmt.Fprintf(w, "Total orders:   %s\n", v.TotalOrders)
	fmt.Fprintf(w, "Today's orders: %s\n", v.TodayOrders)
	fmt.Fprintf(w, "Pending orders: %s\n", v.PendingOrders)
	fmt.Fprintf(w, "Today's revenue: %s\n", v.TodayRevenue)
	fmt.Fprintln(w, "Recent orders:")
	WriteOrders(w, v.RecentOrders)
}
