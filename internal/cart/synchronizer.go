// Package cart keeps the local basket in sync with the server. The
// server is the sole source of truth: every mutation is followed by a
// full reload, and Reload is the only path that replaces the state.
package cart

import (
	"context"
	"sync"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/models"
	"srinu_foods_client/internal/session"
)

type Synchronizer struct {
	api     *api.Client
	session *session.Manager

	mu    sync.Mutex
	gen   uint64
	state models.Cart
}

func NewSynchronizer(client *api.Client, sess *session.Manager) *Synchronizer {
	return &Synchronizer{api: client, session: sess}
}

// Add puts quantity units of an item in the server-side cart and
// reloads. Without a session it fails before any network call.
func (s *Synchronizer) Add(ctx context.Context, itemID string, quantity int) error {
	if !s.session.LoggedIn() {
		return session.ErrNoSession
	}
	if quantity < 1 {
		quantity = 1
	}

	err := s.api.Post(ctx, "/api/menu/cart/add/", map[string]any{
		"item_id":  itemID,
		"quantity": quantity,
	}, nil)
	if err != nil {
		return err
	}
	return s.Reload(ctx)
}

// SetQuantity updates a line item's quantity; anything below 1 is a
// removal.
func (s *Synchronizer) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, itemID)
	}
	if !s.session.LoggedIn() {
		return session.ErrNoSession
	}

	err := s.api.Put(ctx, "/api/menu/cart/update/"+itemID+"/", map[string]any{
		"quantity": quantity,
	}, nil)
	if err != nil {
		return err
	}
	return s.Reload(ctx)
}

func (s *Synchronizer) Remove(ctx context.Context, itemID string) error {
	if !s.session.LoggedIn() {
		return session.ErrNoSession
	}

	if err := s.api.Delete(ctx, "/api/menu/cart/remove/"+itemID+"/", nil); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Clear empties the server-side cart entirely.
func (s *Synchronizer) Clear(ctx context.Context) error {
	if !s.session.LoggedIn() {
		return session.ErrNoSession
	}

	if err := s.api.Delete(ctx, "/api/menu/cart/clear/", nil); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Reload fetches the authoritative cart and replaces the local state
// wholesale. A reload superseded by a newer one is discarded.
func (s *Synchronizer) Reload(ctx context.Context) error {
	if !s.session.LoggedIn() {
		return session.ErrNoSession
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	var resp struct {
		Cart models.Cart `json:"cart"`
	}
	if err := s.api.Get(ctx, "/api/menu/cart/", nil, &resp); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil
	}
	s.state = resp.Cart
	return nil
}

// Reset drops the local cart display without touching the server,
// used after checkout (the cart is already empty server-side) and on
// logout.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	s.gen++
	s.state = models.Cart{}
	s.mu.Unlock()
}

func (s *Synchronizer) State() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = make([]models.CartItem, len(s.state.Items))
	copy(st.Items, s.state.Items)
	return st
}
