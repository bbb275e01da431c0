package models

// Order statuses as the server knows them. The client never checks
// transition legality; the list exists for UI affordances and the stub.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

func ValidStatuses() []string {
	return []string{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusReady,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// NextStatus returns the forward-moving shortcut the dashboard offers
// for an order in the given status, or "" when there is none. It is a
// UI affordance only, never an enforced transition.
func NextStatus(status string) string {
	switch status {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	default:
		return ""
	}
}

// Order timestamps stay as the ISO strings the server sends; the
// client only ever displays them.
type Order struct {
	ID                    string     `json:"id"`
	OrderNumber           string     `json:"order_number"`
	UserID                int        `json:"user_id"`
	CustomerName          string     `json:"customer_name"`
	CustomerEmail         string     `json:"customer_email"`
	CustomerPhone         string     `json:"customer_phone"`
	DeliveryAddress       string     `json:"delivery_address"`
	Items                 []CartItem `json:"items"`
	Subtotal              float64    `json:"subtotal"`
	DeliveryFee           float64    `json:"delivery_fee"`
	TotalAmount           float64    `json:"total_amount"`
	PaymentMethod         string     `json:"payment_method"`
	PaymentStatus         string     `json:"payment_status"`
	Status                string     `json:"status"`
	SpecialInstructions   string     `json:"special_instructions"`
	CreatedAt             string     `json:"created_at"`
	UpdatedAt             string     `json:"updated_at"`
	EstimatedDeliveryTime string     `json:"estimated_delivery_time"`
}

// OrderConfirmation is the trimmed order the create endpoint returns.
type OrderConfirmation struct {
	ID                    string  `json:"id"`
	OrderNumber           string  `json:"order_number"`
	TotalAmount           float64 `json:"total_amount"`
	Status                string  `json:"status"`
	EstimatedDeliveryTime string  `json:"estimated_delivery_time"`
}
