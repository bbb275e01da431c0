package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/catalog"
	"srinu_foods_client/internal/models"
	"srinu_foods_client/internal/stub"
)

func newBrowser(t *testing.T) *catalog.Browser {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := stub.New("test-secret", nil)
	server.Seed()
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return catalog.NewBrowser(api.New(ts.URL))
}

func TestLoadCategoriesSortedByOrder(t *testing.T) {
	b := newBrowser(t)
	require.NoError(t, b.LoadCategories(context.Background()))

	categories := b.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "Appetizers", categories[0].Name)
	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].SortOrder, categories[i].SortOrder)
	}
}

func TestSearchFilter(t *testing.T) {
	b := newBrowser(t)
	require.NoError(t, b.LoadItems(context.Background(), catalog.Filter{Search: "biryani"}))

	items := b.Items()
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Contains(t, item.Name, "Biryani")
	}
}

func TestCategoryFilter(t *testing.T) {
	b := newBrowser(t)
	require.NoError(t, b.LoadItems(context.Background(), catalog.Filter{Category: "South Indian"}))

	items := b.Items()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "South Indian", item.Category)
	}
}

func TestVegFilter(t *testing.T) {
	b := newBrowser(t)
	require.NoError(t, b.LoadItems(context.Background(), catalog.Filter{VegOnly: true}))

	items := b.Items()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.True(t, item.IsVeg)
	}
}

func TestItemLookup(t *testing.T) {
	b := newBrowser(t)

	item, err := b.Item(context.Background(), "masala-dosa")
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", item.Name)

	_, err = b.Item(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "Item not found", err.Error())
}

// TestSupersededResponseDiscarded pins the redesign behavior: when a
// newer filter change overtakes an in-flight request, the slow
// response must not overwrite the newer items.
func TestSupersededResponseDiscarded(t *testing.T) {
	slowEntered := make(chan struct{})
	releaseSlow := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := []models.MenuItem{{ID: "fast", Name: "Fast Result", IsAvailable: true}}
		if r.URL.Query().Get("search") == "slow" {
			close(slowEntered)
			<-releaseSlow
			items = []models.MenuItem{{ID: "slow", Name: "Slow Result", IsAvailable: true}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"items":   items,
			"count":   len(items),
		})
	}))
	defer ts.Close()

	b := catalog.NewBrowser(api.New(ts.URL))

	slowDone := make(chan error)
	go func() {
		slowDone <- b.LoadItems(context.Background(), catalog.Filter{Search: "slow"})
	}()

	<-slowEntered
	require.NoError(t, b.LoadItems(context.Background(), catalog.Filter{Search: "fast"}))
	close(releaseSlow)
	require.NoError(t, <-slowDone)

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fast", items[0].ID, "the superseded response must be discarded")
}
