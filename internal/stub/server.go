// Package stub is an in-process fake of the Srinu Foods REST API for
// development and tests. Tests run it behind httptest, cmd/stubserver
// runs it standalone.
package stub

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"srinu_foods_client/internal/models"
)

const (
	freeDeliveryThreshold = 500.0
	deliveryFee           = 50.0
)

type Server struct {
	secret []byte
	users  *UserStore
	menu   *MenuStore
	carts  CartStore
	orders *OrderStore

	now         func() time.Time
	orderNumber func() string

	hits atomic.Int64
}

func New(jwtSecret string, carts CartStore) *Server {
	if carts == nil {
		carts = NewMemoryCartStore()
	}
	return &Server{
		secret: []byte(jwtSecret),
		users:  NewUserStore(),
		menu:   NewMenuStore(),
		carts:  carts,
		orders: NewOrderStore(),
		now:    time.Now,
		orderNumber: func() string {
			return fmt.Sprintf("SF%06d", 100000+rand.Intn(900000))
		},
	}
}

func (s *Server) Users() *UserStore  { return s.users }
func (s *Server) Menu() *MenuStore   { return s.menu }
func (s *Server) Orders() *OrderStore { return s.orders }

// Hits counts every request the server saw, for tests that assert an
// action stayed local.
func (s *Server) Hits() int64 { return s.hits.Load() }

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(func(c *gin.Context) {
		s.hits.Add(1)
		c.Next()
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register/", s.register)
		auth.POST("/login/", s.login)
		auth.GET("/profile/", s.authRequired(), s.profile)
		auth.PUT("/profile/", s.authRequired(), s.updateProfile)
		auth.POST("/logout/", s.authRequired(), s.logout)
	}

	menu := r.Group("/api/menu")
	{
		menu.GET("/categories/", s.categories)
		menu.GET("/items/", s.menuItems)
		menu.GET("/items/:item_id/", s.menuItem)

		cart := menu.Group("/cart", s.authRequired())
		cart.GET("/", s.getCart)
		cart.POST("/add/", s.addToCart)
		cart.PUT("/update/:item_id/", s.updateCartItem)
		cart.DELETE("/remove/:item_id/", s.removeFromCart)
		cart.DELETE("/clear/", s.clearCart)
	}

	orders := r.Group("/api/orders", s.authRequired())
	{
		orders.POST("/create/", s.createOrder)
		orders.GET("/my-orders/", s.myOrders)
		orders.GET("/:order_id/", s.orderDetail)

		admin := orders.Group("/admin", s.adminRequired())
		admin.GET("/all/", s.allOrders)
		admin.PUT("/:order_id/update-status/", s.updateOrderStatus)
		admin.GET("/dashboard/stats/", s.dashboardStats)
	}

	return r
}

func userJSON(a *Account) gin.H {
	return gin.H{
		"id":         a.ID,
		"username":   a.Username,
		"email":      a.Email,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"phone":      a.Phone,
		"address":    a.Address,
		"is_staff":   a.IsStaff,
	}
}

func (s *Server) register(c *gin.Context) {
	var input struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Phone           string `json:"phone"`
		Address         string `json:"address"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	errs := gin.H{}
	if input.Username == "" {
		errs["username"] = []string{"This field is required."}
	}
	if input.Email == "" {
		errs["email"] = []string{"This field is required."}
	}
	if len(input.Password) < 6 {
		errs["password"] = []string{"Ensure this field has at least 6 characters."}
	}
	if input.Password != input.ConfirmPassword {
		errs["non_field_errors"] = []string{"Passwords don't match"}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
		return
	}

	account, err := s.users.Create(Account{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Address:   input.Address,
	}, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{
			"username": []string{"A user with that username already exists."},
		}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    userJSON(account),
		"tokens":  s.tokens(account),
	})
}

func (s *Server) login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	account, ok := s.users.Authenticate(input.Username, input.Password)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{
			"non_field_errors": []string{"Invalid credentials"},
		}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    userJSON(account),
		"tokens":  s.tokens(account),
	})
}

func (s *Server) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userJSON(currentAccount(c))})
}

func (s *Server) updateProfile(c *gin.Context) {
	var input struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	s.users.Update(currentAccount(c).ID, func(a *Account) {
		if input.FirstName != nil {
			a.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			a.LastName = *input.LastName
		}
		if input.Email != nil {
			a.Email = *input.Email
		}
		if input.Phone != nil {
			a.Phone = *input.Phone
		}
		if input.Address != nil {
			a.Address = *input.Address
		}
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
}

func (s *Server) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully logged out"})
}

func (s *Server) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": s.menu.Categories()})
}

func (s *Server) menuItems(c *gin.Context) {
	var veg *bool
	if raw := c.Query("is_veg"); raw != "" {
		flag := raw == "true"
		veg = &flag
	}

	items := s.menu.Items(c.Query("search"), c.Query("category"), veg)
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items, "count": len(items)})
}

func (s *Server) menuItem(c *gin.Context) {
	item, ok := s.menu.Item(c.Param("item_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// cartJSON computes all totals server-side; clients display them
// without recomputing.
func cartJSON(items []models.CartItem) gin.H {
	subtotal := 0.0
	totalItems := 0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}

	fee := deliveryFee
	if subtotal >= freeDeliveryThreshold || subtotal == 0 {
		fee = 0
	}

	return gin.H{
		"items":                   items,
		"total_items":             totalItems,
		"subtotal":                subtotal,
		"delivery_fee":            fee,
		"total_amount":            subtotal + fee,
		"free_delivery_threshold": freeDeliveryThreshold,
	}
}

func (s *Server) getCart(c *gin.Context) {
	items, err := s.carts.Get(c.Request.Context(), currentAccount(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cartJSON(items)})
}

func (s *Server) addToCart(c *gin.Context) {
	var input struct {
		ItemID              string `json:"item_id"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" || input.Quantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Item ID and quantity are required"})
		return
	}

	item, ok := s.menu.Item(input.ItemID)
	if !ok || !item.IsAvailable {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found or not available"})
		return
	}

	userID := currentAccount(c).ID
	items, err := s.carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding item to cart"})
		return
	}

	merged := false
	for i := range items {
		if items[i].ItemID == input.ItemID {
			items[i].Quantity += input.Quantity
			items[i].SpecialInstructions = input.SpecialInstructions
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ItemID:              item.ID,
			Name:                item.Name,
			Price:               item.Price,
			Quantity:            input.Quantity,
			SpecialInstructions: input.SpecialInstructions,
			ImageURL:            item.ImageURL,
			IsVeg:               item.IsVeg,
		})
	}

	if err := s.carts.Set(c.Request.Context(), userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding item to cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart successfully"})
}

func (s *Server) updateCartItem(c *gin.Context) {
	var input struct {
		Quantity            *int    `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	userID := currentAccount(c).ID
	itemID := c.Param("item_id")
	items, err := s.carts.Get(c.Request.Context(), userID)
	if err != nil || len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
		return
	}

	for i := range items {
		if items[i].ItemID == itemID {
			if input.Quantity != nil {
				items[i].Quantity = *input.Quantity
			}
			if input.SpecialInstructions != nil {
				items[i].SpecialInstructions = *input.SpecialInstructions
			}
			break
		}
	}

	if err := s.carts.Set(c.Request.Context(), userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item updated"})
}

func (s *Server) removeFromCart(c *gin.Context) {
	userID := currentAccount(c).ID
	itemID := c.Param("item_id")

	items, err := s.carts.Get(c.Request.Context(), userID)
	if err != nil || len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
		return
	}

	kept := items[:0]
	for _, item := range items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}

	if err := s.carts.Set(c.Request.Context(), userID, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error removing item from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.carts.Clear(c.Request.Context(), currentAccount(c).ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error clearing cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully"})
}

func (s *Server) createOrder(c *gin.Context) {
	var input struct {
		DeliveryAddress     string `json:"delivery_address"`
		Phone               string `json:"phone"`
		PaymentMethod       string `json:"payment_method"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if input.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Delivery Address is required"})
		return
	}
	if input.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone is required"})
		return
	}

	account := currentAccount(c)
	items, err := s.carts.Get(c.Request.Context(), account.ID)
	if err != nil || len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	fee := deliveryFee
	if subtotal >= freeDeliveryThreshold {
		fee = 0
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	customerName := strings.TrimSpace(account.FirstName + " " + account.LastName)
	if customerName == "" {
		customerName = account.Username
	}

	now := s.now()
	order := s.orders.Insert(models.Order{
		OrderNumber:           s.orderNumber(),
		UserID:                account.ID,
		CustomerName:          customerName,
		CustomerEmail:         account.Email,
		CustomerPhone:         input.Phone,
		DeliveryAddress:       input.DeliveryAddress,
		Items:                 items,
		Subtotal:              subtotal,
		DeliveryFee:           fee,
		TotalAmount:           subtotal + fee,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         "pending",
		Status:                models.StatusPending,
		SpecialInstructions:   input.SpecialInstructions,
		CreatedAt:             now.Format(time.RFC3339),
		UpdatedAt:             now.Format(time.RFC3339),
		EstimatedDeliveryTime: now.Add(45 * time.Minute).Format(time.RFC3339),
	}, now)

	if err := s.carts.Clear(c.Request.Context(), account.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error placing order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order": gin.H{
			"id":                      order.ID,
			"order_number":            order.OrderNumber,
			"total_amount":            order.TotalAmount,
			"status":                  order.Status,
			"estimated_delivery_time": order.EstimatedDeliveryTime,
		},
	})
}

func (s *Server) myOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": s.orders.ByUser(currentAccount(c).ID)})
}

func (s *Server) orderDetail(c *gin.Context) {
	order, ok := s.orders.Get(c.Param("order_id"))
	account := currentAccount(c)
	if !ok || (!account.IsStaff && order.UserID != account.ID) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (s *Server) allOrders(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	orders := s.orders.All(c.Query("status"), limit)
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "count": len(orders)})
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	valid := false
	for _, status := range models.ValidStatuses() {
		if input.Status == status {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	if !s.orders.UpdateStatus(c.Param("order_id"), input.Status, s.now()) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated to " + input.Status,
	})
}

func (s *Server) dashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": s.orders.Stats(s.now())})
}
