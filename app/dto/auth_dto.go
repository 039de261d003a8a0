package dto

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=5,max=255" example:"reception1"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
}

// LoginResultDTO carries the issued token and user identity
type LoginResultDTO struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Username string `json:"username" example:"reception1"`
	Role     string `json:"role" example:"user"`
}

// SignupRequest represents the request payload for user creation
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=5,max=255" example:"reception1"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user" example:"user"`
}

// UserDTO represents user data for API responses
type UserDTO struct {
	UserID   uint   `json:"user_id" example:"12"`
	Username string `json:"username" example:"reception1"`
	Role     string `json:"role" example:"user"`
}
