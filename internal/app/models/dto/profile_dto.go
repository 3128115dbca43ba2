package dto

// ProfileResponse represents the authenticated admin's profile view
type ProfileResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name" example:"Meera Pillai"`
	Email  string `json:"email" example:"admin@campusboard.edu"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdateProfileRequest represents a profile update payload
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// ChangePasswordRequest represents a password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
