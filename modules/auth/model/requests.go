package model

// RegisterRequest represents an account registration request. Role
// defaults to DRIVER when omitted; ADMIN/MANAGER accounts are expected
// to be provisioned by an existing admin, but the core does not
// enforce that restriction at this boundary (out of scope per the
// teacher's auth module, which never restricted role assignment
// either).
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a refresh token request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
