package models

// User mirrors the account payload returned by the auth endpoints.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsStaff   bool   `json:"is_staff"`
}

// DisplayName is what the header greeting shows: first name when set,
// username otherwise.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
