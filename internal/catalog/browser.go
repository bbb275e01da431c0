// Package catalog loads categories and menu items and re-fetches them
// whenever a filter changes. Filtering happens server-side; the client
// just forwards query parameters.
package catalog

import (
	"context"
	"net/url"
	"sync"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/models"
)

// Filter mirrors the search box, category select and veg checkbox.
type Filter struct {
	Search   string
	Category string
	VegOnly  bool
}

func (f Filter) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.VegOnly {
		q.Set("is_veg", "true")
	}
	return q
}

type Browser struct {
	api *api.Client

	mu         sync.Mutex
	gen        uint64
	filter     Filter
	categories []models.Category
	items      []models.MenuItem
}

func NewBrowser(client *api.Client) *Browser {
	return &Browser{api: client}
}

func (b *Browser) LoadCategories(ctx context.Context) error {
	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := b.api.Get(ctx, "/api/menu/categories/", nil, &resp); err != nil {
		return err
	}

	b.mu.Lock()
	b.categories = resp.Categories
	b.mu.Unlock()
	return nil
}

// LoadItems fetches the menu for the given filter and replaces the
// item list wholesale. A response belonging to a request that a newer
// LoadItems call superseded is discarded instead of overwriting the
// newer state.
func (b *Browser) LoadItems(ctx context.Context, filter Filter) error {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.filter = filter
	b.mu.Unlock()

	var resp struct {
		Items []models.MenuItem `json:"items"`
		Count int               `json:"count"`
	}
	if err := b.api.Get(ctx, "/api/menu/items/", filter.query(), &resp); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return nil // superseded by a newer filter change
	}
	b.items = resp.Items
	return nil
}

// Item fetches a single menu item by ID.
func (b *Browser) Item(ctx context.Context, itemID string) (models.MenuItem, error) {
	var resp struct {
		Item models.MenuItem `json:"item"`
	}
	if err := b.api.Get(ctx, "/api/menu/items/"+itemID+"/", nil, &resp); err != nil {
		return models.MenuItem{}, err
	}
	return resp.Item, nil
}

func (b *Browser) Categories() []models.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Category, len(b.categories))
	copy(out, b.categories)
	return out
}

func (b *Browser) Items() []models.MenuItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.MenuItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Browser) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}
