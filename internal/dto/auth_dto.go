package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Pin      string `json:"pin"      validate:"required,len=4,numeric"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Pin      string `json:"pin"      validate:"required,len=4,numeric"`
	IsAdmin  bool   `json:"is_admin"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}
