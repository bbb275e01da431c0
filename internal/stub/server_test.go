package stub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srinu_foods_client/internal/models"
)

func TestCartTotals(t *testing.T) {
	payload := cartJSON([]models.CartItem{
		{ItemID: "a", Price: 180, Quantity: 2},
		{ItemID: "b", Price: 80, Quantity: 1},
	})

	assert.Equal(t, 3, payload["total_items"])
	assert.Equal(t, 440.0, payload["subtotal"])
	assert.Equal(t, 50.0, payload["delivery_fee"])
	assert.Equal(t, 490.0, payload["total_amount"])
}

func TestCartTotalsFreeDelivery(t *testing.T) {
	payload := cartJSON([]models.CartItem{{ItemID: "a", Price: 350, Quantity: 2}})
	assert.Equal(t, 0.0, payload["delivery_fee"])
	assert.Equal(t, 700.0, payload["total_amount"])
}

func TestCartTotalsEmpty(t *testing.T) {
	payload := cartJSON(nil)
	assert.Equal(t, 0.0, payload["delivery_fee"])
	assert.Equal(t, 0.0, payload["total_amount"])
}

func TestStatsTodayWindow(t *testing.T) {
	store := NewOrderStore()
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	store.Insert(models.Order{Status: models.StatusPending, TotalAmount: 100}, now)
	store.Insert(models.Order{Status: models.StatusDelivered, TotalAmount: 250}, now.Add(-48*time.Hour))

	stats := store.Stats(now)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 100.0, stats.TodayRevenue, "only today's orders count toward today's revenue")
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestMenuStoreFilters(t *testing.T) {
	server := New("test-secret", nil)
	server.Seed()

	veg := true
	items := server.Menu().Items("", "Appetizers", &veg)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.True(t, item.IsVeg)
		assert.Equal(t, "Appetizers", item.Category)
	}

	assert.Empty(t, server.Menu().Items("no such dish", "", nil))
}

func TestUserStoreAuthenticate(t *testing.T) {
	server := New("test-secret", nil)
	server.Seed()

	_, ok := server.Users().Authenticate("admin", "admin123")
	assert.True(t, ok)
	_, ok = server.Users().Authenticate("admin", "wrong")
	assert.False(t, ok)

	_, err := server.Users().Create(Account{Username: "admin"}, "x")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
