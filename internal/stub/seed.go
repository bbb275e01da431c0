package stub

import "srinu_foods_client/internal/models"

// Seed loads the demo accounts and menu the setup script ships with.
func (s *Server) Seed() {
	s.users.Create(Account{
		Username:  "admin",
		Email:     "admin@srinufoods.com",
		FirstName: "Srinu",
		LastName:  "Admin",
		Phone:     "+91-9876543210",
		Address:   "123 Admin Street, Food City, FC 12345",
		IsStaff:   true,
	}, "admin123")

	s.users.Create(Account{
		Username:  "customer",
		Email:     "customer@example.com",
		FirstName: "Regular",
		LastName:  "Customer",
		Phone:     "+91-9876543211",
		Address:   "456 Customer Lane, Food City, FC 12346",
	}, "customer123")

	categories := []models.Category{
		{ID: "cat-appetizers", Name: "Appetizers", Description: "Start your meal with our delicious appetizers", IsActive: true, SortOrder: 1},
		{ID: "cat-main-course", Name: "Main Course", Description: "Hearty and satisfying main dishes", IsActive: true, SortOrder: 2},
		{ID: "cat-biryanis", Name: "Biryanis", Description: "Fragrant rice dishes with aromatic spices", IsActive: true, SortOrder: 3},
		{ID: "cat-south-indian", Name: "South Indian", Description: "Authentic South Indian specialties", IsActive: true, SortOrder: 4},
		{ID: "cat-beverages", Name: "Beverages", Description: "Refreshing drinks and beverages", IsActive: true, SortOrder: 5},
		{ID: "cat-desserts", Name: "Desserts", Description: "Sweet endings to your meal", IsActive: true, SortOrder: 6},
	}
	for _, c := range categories {
		s.menu.AddCategory(c)
	}

	items := []models.MenuItem{
		{ID: "paneer-tikka", Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Price: 180, Category: "Appetizers", IsVeg: true, Rating: 4.8, PreparationTime: 15, IsAvailable: true},
		{ID: "chicken-tikka", Name: "Chicken Tikka", Description: "Tender grilled chicken pieces", Price: 220, Category: "Appetizers", IsVeg: false, Rating: 4.9, PreparationTime: 20, IsAvailable: true},
		{ID: "vegetable-samosa", Name: "Vegetable Samosa", Description: "Crispy pastry with spiced vegetables", Price: 80, Category: "Appetizers", IsVeg: true, Rating: 4.5, PreparationTime: 10, IsAvailable: true},
		{ID: "butter-chicken", Name: "Butter Chicken", Description: "Creamy tomato-based chicken curry", Price: 320, Category: "Main Course", IsVeg: false, Rating: 4.9, PreparationTime: 25, IsAvailable: true},
		{ID: "paneer-butter-masala", Name: "Paneer Butter Masala", Description: "Rich cottage cheese curry", Price: 280, Category: "Main Course", IsVeg: true, Rating: 4.7, PreparationTime: 20, IsAvailable: true},
		{ID: "dal-tadka", Name: "Dal Tadka", Description: "Tempered yellow lentils", Price: 150, Category: "Main Course", IsVeg: true, Rating: 4.6, PreparationTime: 15, IsAvailable: true},
		{ID: "chicken-biryani", Name: "Chicken Biryani", Description: "Aromatic basmati rice with chicken", Price: 350, Category: "Biryanis", IsVeg: false, Rating: 4.9, PreparationTime: 45, IsAvailable: true},
		{ID: "mutton-biryani", Name: "Mutton Biryani", Description: "Slow-cooked mutton with fragrant rice", Price: 420, Category: "Biryanis", IsVeg: false, Rating: 4.8, PreparationTime: 60, IsAvailable: true},
		{ID: "vegetable-biryani", Name: "Vegetable Biryani", Description: "Mixed vegetables with basmati rice", Price: 250, Category: "Biryanis", IsVeg: true, Rating: 4.5, PreparationTime: 35, IsAvailable: true},
		{ID: "masala-dosa", Name: "Masala Dosa", Description: "Crispy crepe with potato filling", Price: 120, Category: "South Indian", IsVeg: true, Rating: 4.8, PreparationTime: 20, IsAvailable: true},
		{ID: "idli-sambar", Name: "Idli Sambar", Description: "Steamed rice cakes with lentil soup", Price: 90, Category: "South Indian", IsVeg: true, Rating: 4.6, PreparationTime: 15, IsAvailable: true},
	}
	for _, item := range items {
		s.menu.AddItem(item)
	}
}
