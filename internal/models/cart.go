package models

type CartItem struct {
	ItemID              string  `json:"item_id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions"`
	ImageURL            string  `json:"image_url"`
	IsVeg               bool    `json:"is_veg"`
}

// Cart is the server's authoritative view of the basket. The client
// never computes these totals itself.
type Cart struct {
	Items                 []CartItem `json:"items"`
	TotalItems            int        `json:"total_items"`
	Subtotal              float64    `json:"subtotal"`
	DeliveryFee           float64    `json:"delivery_fee"`
	TotalAmount           float64    `json:"total_amount"`
	FreeDeliveryThreshold float64    `json:"free_delivery_threshold"`
}
