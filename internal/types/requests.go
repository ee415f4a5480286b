package types

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse is returned by login and signup
type AuthResponse struct {
	Token string       `json:"token" validate:"required"`
	ID    string       `json:"id" validate:"required"`
	User  *UserProfile `json:"user,omitempty" validate:"omitempty"`
}

// ErrorResponse is the error payload shape used by the backend
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
