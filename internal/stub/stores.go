package stub

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"srinu_foods_client/internal/models"
)

var ErrUsernameTaken = errors.New("username already taken")

// Account is a stub-side user record.
type Account struct {
	ID           int
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	PasswordHash []byte
	IsStaff      bool
}

type UserStore struct {
	mu         sync.Mutex
	byUsername map[string]*Account
	byID       map[int]*Account
	nextID     int
}

func NewUserStore() *UserStore {
	return &UserStore{
		byUsername: make(map[string]*Account),
		byID:       make(map[int]*Account),
		nextID:     1,
	}
}

func (s *UserStore) Create(a Account, password string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[a.Username]; exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	a.ID = s.nextID
	s.nextID++
	a.PasswordHash = hash

	stored := a
	s.byUsername[a.Username] = &stored
	s.byID[a.ID] = &stored
	return &stored, nil
}

func (s *UserStore) Authenticate(username, password string) (*Account, bool) {
	s.mu.Lock()
	account, ok := s.byUsername[username]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return nil, false
	}
	return account, true
}

func (s *UserStore) Get(id int) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.byID[id]
	return account, ok
}

func (s *UserStore) Update(id int, mutate func(*Account)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.byID[id]
	if ok {
		mutate(account)
	}
	return ok
}

type MenuStore struct {
	mu         sync.Mutex
	categories []models.Category
	items      []models.MenuItem
}

func NewMenuStore() *MenuStore { return &MenuStore{} }

func (s *MenuStore) AddCategory(c models.Category) {
	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()
}

func (s *MenuStore) AddItem(i models.MenuItem) {
	s.mu.Lock()
	s.items = append(s.items, i)
	s.mu.Unlock()
}

// Categories returns active categories by sort order.
func (s *MenuStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// Items filters available items the way the real backend does:
// case-insensitive substring search on name/description, exact
// category, optional veg flag.
func (s *MenuStore) Items(search, category string, veg *bool) []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(search)
	out := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if !item.IsAvailable {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		if veg != nil && item.IsVeg != *veg {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *MenuStore) Item(id string) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// CartStore abstracts where carts live so the stub can run on memory
// (tests) or Redis (dev, matching the production backend's scheme).
type CartStore interface {
	Get(ctx context.Context, userID int) ([]models.CartItem, error)
	Set(ctx context.Context, userID int, items []models.CartItem) error
	Clear(ctx context.Context, userID int) error
}

type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[int][]models.CartItem
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[int][]models.CartItem)}
}

func (s *MemoryCartStore) Get(_ context.Context, userID int) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.carts[userID]))
	copy(items, s.carts[userID])
	return items, nil
}

func (s *MemoryCartStore) Set(_ context.Context, userID int, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	s.carts[userID] = stored
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

type storedOrder struct {
	order   models.Order
	created time.Time
}

type OrderStore struct {
	mu     sync.Mutex
	orders []storedOrder
}

func NewOrderStore() *OrderStore { return &OrderStore{} }

func (s *OrderStore) Insert(order models.Order, created time.Time) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.NewString()
	s.orders = append(s.orders, storedOrder{order: order, created: created})
	return order
}

func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, so := range s.orders {
		if so.order.ID == id {
			return so.order, true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) ByUser(userID int) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0)
	for _, so := range s.orders {
		if so.order.UserID == userID {
			out = append(out, so.order)
		}
	}
	reverseOrders(out)
	return out
}

func (s *OrderStore) All(status string, limit int) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0)
	for _, so := range s.orders {
		if status != "" && so.order.Status != status {
			continue
		}
		out = append(out, so.order)
	}
	reverseOrders(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *OrderStore) UpdateStatus(id, status string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].order.ID == id {
			s.orders[i].order.Status = status
			s.orders[i].order.UpdatedAt = now.Format(time.RFC3339)
			return true
		}
	}
	return false
}

// Stats aggregates the dashboard counters; revenue excludes cancelled
// orders, mirroring the backend's pipeline.
func (s *OrderStore) Stats(now time.Time) models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	stats := models.DashboardStats{RecentOrders: []models.Order{}}
	for _, so := range s.orders {
		stats.TotalOrders++
		today := !so.created.Before(dayStart) && so.created.Before(dayEnd)
		if today {
			stats.TodayOrders++
			if so.order.Status != models.StatusCancelled {
				stats.TodayRevenue += so.order.TotalAmount
			}
		}
		switch so.order.Status {
		case models.StatusPending:
			stats.PendingOrders++
		case models.StatusConfirmed, models.StatusPreparing:
			stats.PreparingOrders++
		}
	}

	recent := make([]models.Order, 0, len(s.orders))
	for _, so := range s.orders {
		recent = append(recent, so.order)
	}
	reverseOrders(recent)
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentOrders = recent
	return stats
}

// reverseOrders flips insertion order into newest-first.
func reverseOrders(orders []models.Order) {
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
}
