package models

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

type MenuItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"image_url"`
	IsVeg           bool    `json:"is_veg"`
	Rating          float64 `json:"rating"`
	PreparationTime int     `json:"preparation_time"`
	IsAvailable     bool    `json:"is_available"`
}
