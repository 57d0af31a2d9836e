package dto

import "github.com/finadvise/auth-service/internal/domain"

// LoginResponse is the exact login success body:
// {"id": int, "username": string, "role": string, "token": string}.
// The password hash never appears in any view type.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

func NewLoginResponse(u domain.User, token string) LoginResponse {
	return LoginResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Token:    token,
	}
}

// UserView is the identity shape returned by protected endpoints.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

func NewUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

// MeData wraps the caller's own identity.
type MeData struct {
	User UserView `json:"user"`
}

// ClientsData is the advisor book view.
type ClientsData struct {
	Clients []UserView `json:"clients"`
}

// UsersData is the admin listing.
type UsersData struct {
	Users []UserView `json:"users"`
}
