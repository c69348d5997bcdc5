package models

// LoginRequest defines the structure for admin login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is returned on a successful admin login
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// UpdatePasswordRequest defines the structure for admin password changes
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
