package models

// Session is the client's belief about its authentication state.
// A user is only ever present together with a token.
type Session struct {
	Token string
	User  *User
}

func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

func (s Session) IsAdmin() bool {
	return s.LoggedIn() && s.User.IsStaff
}
