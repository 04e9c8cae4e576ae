package model

// RegisterRequest represents the self-service registration body.
// Self-registered accounts are always students.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=64"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse represents the login response body.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	User      *User  `json:"user"`
}
