package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srinu_foods_client/internal/models"
	"srinu_foods_client/internal/render"
)

func TestAuthViewLoggedIn(t *testing.T) {
	view := render.Auth(models.Session{
		Token: "T",
		User:  &models.User{Username: "u1", FirstName: "Usha"},
	})

	assert.False(t, view.ShowAuthButtons, "auth buttons hide once logged in")
	assert.True(t, view.ShowUserMenu)
	assert.Equal(t, "Usha", view.UserName)
}

func TestAuthViewLoggedOut(t *testing.T) {
	view := render.Auth(models.Session{})
	assert.True(t, view.ShowAuthButtons)
	assert.False(t, view.ShowUserMenu)
}

func TestAuthViewFallsBackToUsername(t *testing.T) {
	view := render.Auth(models.Session{Token: "T", User: &models.User{Username: "u1"}})
	assert.Equal(t, "u1", view.UserName)
}

func TestCartView(t *testing.T) {
	view := render.Cart(models.Cart{
		Items: []models.CartItem{
			{ItemID: "paneer-tikka", Name: "Paneer Tikka", Price: 180, Quantity: 2},
		},
		TotalItems:  2,
		Subtotal:    360,
		DeliveryFee: 50,
		TotalAmount: 410,
	})

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "₹360.00", view.Lines[0].LineSum)
	assert.Equal(t, "₹50.00", view.DeliveryFee)
	assert.Equal(t, "₹410.00", view.Total)
	assert.Equal(t, 2, view.TotalItems)
}

func TestCartViewEmpty(t *testing.T) {
	assert.True(t, render.Cart(models.Cart{}).Empty)
}

func TestOrdersViewStatusLabelAndNextAction(t *testing.T) {
	view := render.Orders([]models.Order{
		{ID: "a", OrderNumber: "SF000001", Status: models.StatusOutForDelivery, TotalAmount: 200},
		{ID: "b", OrderNumber: "SF000002", Status: models.StatusPreparing, TotalAmount: 300},
	})

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "out for delivery", view.Lines[0].Status)
	assert.Empty(t, view.Lines[0].NextAction)
	assert.Equal(t, models.StatusReady, view.Lines[1].NextAction)
}

func TestMenuViewBadges(t *testing.T) {
	view := render.Menu([]models.MenuItem{
		{ID: "a", Name: "Dal Tadka", IsVeg: true, Price: 150, Rating: 4.6, PreparationTime: 15},
		{ID: "b", Name: "Chicken Tikka", IsVeg: false, Price: 220, Rating: 4.9, PreparationTime: 20},
	})

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "VEG", view.Lines[0].Badge)
	assert.Equal(t, "NON-VEG", view.Lines[1].Badge)
	assert.Equal(t, "₹150.00", view.Lines[0].Price)
}

func TestStatsView(t *testing.T) {
	view := render.Stats(models.DashboardStats{
		TotalOrders:   10,
		TodayOrders:   3,
		PendingOrders: 2,
		TodayRevenue:  1234.5,
		RecentOrders:  []models.Order{{OrderNumber: "SF000007", Status: models.StatusPending}},
	})

	assert.Equal(t, "10", view.TotalOrders)
	assert.Equal(t, "₹1234.50", view.TodayRevenue)
	require.Len(t, view.RecentOrders.Lines, 1)
	assert.Equal(t, "SF000007", view.RecentOrders.Lines[0].OrderNumber)
}

func TestWriteCartBinderOutput(t *testing.T) {
	var sb strings.Builder
	render.WriteCart(&sb, render.Cart(models.Cart{}))
	assert.Contains(t, sb.String(), "Your cart is empty")
}
